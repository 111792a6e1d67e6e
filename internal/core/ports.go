package core

import (
	"context"
	"encoding/json"
	"math/big"

	"tokenrelay/internal/privatechain"
	"tokenrelay/internal/publisher"
	"tokenrelay/internal/repository"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateSendRecord(ctx context.Context, record repository.SendRecord) error
	UpdateRelayTransaction(ctx context.Context, userID string, sortKey int64, transactionHash string) error
	UpdateSendStatus(ctx context.Context, userID string, sortKey int64, status string) error
	SumSendValue(ctx context.Context, userID, targetDate string, statuses []string) (decimal.Decimal, error)
	ListSendRecords(ctx context.Context, userID string) ([]repository.SendRecord, error)
	ListSendRecordsByStatus(ctx context.Context, status string) ([]repository.SendRecord, error)
	GetUser(ctx context.Context, userID string) (repository.User, error)
	UpdateUserEthAddress(ctx context.Context, userID, address string) error
}

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	GetTransactionCount(ctx context.Context, address string) (string, error)
	GetAllowance(ctx context.Context, owner string) (*big.Int, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	Approve(ctx context.Context, from string, value *big.Int, nonce uint64) (string, error)
	Relay(ctx context.Context, from, recipient string, value *big.Int, nonce uint64) (string, error)
	Tip(ctx context.Context, from, recipient string, value *big.Int, nonce uint64) (string, error)
	SendRawTransaction(ctx context.Context, rawTransaction string) (string, error)
}

//counterfeiter:generate -o fake -fake-name ConfirmationPoller . ConfirmationPoller
type ConfirmationPoller interface {
	IsCompleted(ctx context.Context, transactionHash string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name PinVerifier . PinVerifier
type PinVerifier interface {
	VerifyPin(ctx context.Context, userID, accessToken, pin string) error
}

//counterfeiter:generate -o fake -fake-name TransactionCodec . TransactionCodec
type TransactionCodec interface {
	DecodeAndValidate(rawTransaction, expectedNonce string) (string, error)
}

//counterfeiter:generate -o fake -fake-name CallDataValidator . CallDataValidator
type CallDataValidator interface {
	ValidateTransfer(data, expectedToAddress string) error
	ValidateApprove(data string) error
}

//counterfeiter:generate -o fake -fake-name SignatureVerifier . SignatureVerifier
type SignatureVerifier interface {
	VerifyMessageSignature(message, signature, expectedAddress string) error
	VerifyTransactionSignature(rawTransaction, expectedAddress string) error
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	PublishSendEvent(ctx context.Context, event publisher.SendEvent) error
}

//counterfeiter:generate -o fake -fake-name RelayEventSource . RelayEventSource
type RelayEventSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	GetBlockByNumber(ctx context.Context, number uint64) (*privatechain.Block, error)
	RelayEvents(ctx context.Context, fromBlock, toBlock uint64) (json.RawMessage, error)
	ApplyRelayEvents(ctx context.Context, events json.RawMessage) error
}
