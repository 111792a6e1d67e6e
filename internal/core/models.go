package core

import (
	"math/big"
)

type SendTokensRequest struct {
	UserID           string
	FromAddress      string
	RecipientAddress string
	SendValue        *big.Int
	PinCode          string
	AccessToken      string
}

type SendResult struct {
	IsCompleted bool `json:"is_completed"`
}

type TipRequest struct {
	UserID           string
	FromAddress      string
	RecipientAddress string
	TipValue         *big.Int
	PinCode          string
	AccessToken      string
}

type TipResult struct {
	TransactionHash string `json:"transaction_hash"`
	IsCompleted     bool   `json:"is_completed"`
}

type RawTransactionRequest struct {
	FromAddress    string
	RawTransaction string
	// ToAddress is the expected recipient of a transfer. Other methods ignore it.
	ToAddress string
}

type BindAddressRequest struct {
	UserID    string
	Address   string
	Signature string
}

type SendHistoryItem struct {
	SortKey                int64   `json:"sort_key"`
	SendValue              string  `json:"send_value"`
	SendStatus             string  `json:"send_status"`
	ApproveTransactionHash string  `json:"approve_transaction_hash"`
	RelayTransactionHash   *string `json:"relay_transaction_hash"`
	TargetDate             string  `json:"target_date"`
	CreatedAt              int64   `json:"created_at"`
}
