package privatechain

import (
	"context"
	"encoding/json"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// HTTPDoer is satisfied by *http.Client.
//
//counterfeiter:generate -o fake -fake-name HTTPDoer . HTTPDoer
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

//counterfeiter:generate -o fake -fake-name Sender . Sender
type Sender interface {
	Send(ctx context.Context, path string, payload any) (json.RawMessage, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptFetcher . ReceiptFetcher
type ReceiptFetcher interface {
	Receipt(ctx context.Context, transactionHash string) (*Receipt, error)
}
