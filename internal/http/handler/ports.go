package handler

import (
	"context"
	"math/big"
	"net/http"

	"tokenrelay/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	SendTokens(ctx context.Context, req core.SendTokensRequest) (core.SendResult, error)
	SendTip(ctx context.Context, req core.TipRequest) (core.TipResult, error)
	SendRawTransaction(ctx context.Context, req core.RawTransactionRequest) (string, error)
	BindAddress(ctx context.Context, req core.BindAddressRequest) error
	WalletAddress(ctx context.Context, userID string) (string, error)
	Balance(ctx context.Context, userID string) (*big.Int, error)
	SendHistory(ctx context.Context, userID string) ([]core.SendHistoryItem, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
