package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"tokenrelay/internal/apperr"
	"tokenrelay/internal/ethereum"
	"tokenrelay/internal/identity"
	"tokenrelay/internal/publisher"
	"tokenrelay/internal/repository"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	targetDateLayout = "2006-01-02"

	// DefaultStaleAfter is how long a record may stay doing without a relay hash
	// before it is reported for manual settlement.
	DefaultStaleAfter = 10 * time.Minute
)

// quotaStatuses are the send statuses counted towards the daily limit.
var quotaStatuses = []string{repository.SendStatusDoing, repository.SendStatusDone}

type WalletDeps struct {
	Repo       Repository
	Chain      ChainClient
	Poller     ConfirmationPoller
	Pins       PinVerifier
	Codec      TransactionCodec
	Validator  CallDataValidator
	Signatures SignatureVerifier
	Events     EventPublisher
}

type WalletConfig struct {
	DailyLimit *big.Int
	SendValue  ethereum.ValueRange
	TipValue   ethereum.ValueRange
	StaleAfter time.Duration
}

// Wallet moves tokens on the private chain on behalf of users and keeps the
// send records that audit every relay.
type Wallet struct {
	logs       *zap.SugaredLogger
	repo       Repository
	chain      ChainClient
	poller     ConfirmationPoller
	pins       PinVerifier
	codec      TransactionCodec
	validator  CallDataValidator
	signatures SignatureVerifier
	events     EventPublisher
	dailyLimit decimal.Decimal
	sendValue  ethereum.ValueRange
	tipValue   ethereum.ValueRange
	staleAfter time.Duration
	now        func() time.Time
}

func NewWallet(logger *zap.SugaredLogger, deps WalletDeps, cfg WalletConfig) *Wallet {
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}

	return &Wallet{
		logs:       logger,
		repo:       deps.Repo,
		chain:      deps.Chain,
		poller:     deps.Poller,
		pins:       deps.Pins,
		codec:      deps.Codec,
		validator:  deps.Validator,
		signatures: deps.Signatures,
		events:     deps.Events,
		dailyLimit: decimal.NewFromBigInt(cfg.DailyLimit, 0),
		sendValue:  cfg.SendValue,
		tipValue:   cfg.TipValue,
		staleAfter: cfg.StaleAfter,
		now:        time.Now,
	}
}

// SendTokens approves the bridge for req.SendValue and relays it to the recipient.
// A send that is not confirmed within the poll budget stays doing and is
// picked up by ReconcilePending.
func (w *Wallet) SendTokens(ctx context.Context, req SendTokensRequest) (SendResult, error) {
	if req.SendValue == nil || !w.sendValue.Contains(req.SendValue) {
		return SendResult{}, apperr.NewValidationError("send_value is invalid")
	}

	if err := w.verifyPin(ctx, req.UserID, req.AccessToken, req.PinCode); err != nil {
		return SendResult{}, err
	}

	now := w.now().UTC()
	targetDate := now.Format(targetDateLayout)
	value := decimal.NewFromBigInt(req.SendValue, 0)

	if err := w.checkDailyLimit(ctx, req.UserID, targetDate, value); err != nil {
		return SendResult{}, err
	}

	nonce, err := w.transactionCount(ctx, req.FromAddress)
	if err != nil {
		return SendResult{}, err
	}

	allowance, err := w.chain.GetAllowance(ctx, req.FromAddress)
	if err != nil {
		return SendResult{}, fmt.Errorf("get allowance: %w", err)
	}

	if allowance.Sign() != 0 {
		w.logs.Infow("resetting stale allowance",
			"user_id", req.UserID,
			"allowance", allowance.String())

		if _, err := w.chain.Approve(ctx, req.FromAddress, new(big.Int), nonce); err != nil {
			return SendResult{}, fmt.Errorf("reset allowance: %w", err)
		}
		nonce++
	}

	approveHash, err := w.chain.Approve(ctx, req.FromAddress, req.SendValue, nonce)
	if err != nil {
		return SendResult{}, fmt.Errorf("approve: %w", err)
	}

	record := repository.SendRecord{
		UserID:                 req.UserID,
		SortKey:                now.UnixMicro(),
		SendValue:              value,
		ApproveTransactionHash: approveHash,
		SendStatus:             repository.SendStatusDoing,
		TargetDate:             targetDate,
		CreatedAt:              now.Unix(),
	}
	if err := w.repo.CreateSendRecord(ctx, record); err != nil {
		return SendResult{}, fmt.Errorf("create send record: %w", err)
	}

	nonce++
	relayHash, err := w.chain.Relay(ctx, req.FromAddress, req.RecipientAddress, req.SendValue, nonce)
	if err != nil {
		var sendErr *apperr.SendTransactionError
		if errors.As(err, &sendErr) {
			w.failRecord(ctx, record)
		}
		return SendResult{}, fmt.Errorf("relay: %w", err)
	}

	if err := w.repo.UpdateRelayTransaction(ctx, record.UserID, record.SortKey, relayHash); err != nil {
		return SendResult{}, fmt.Errorf("update relay transaction: %w", err)
	}
	record.RelayTransactionHash = &relayHash

	completed, err := w.poller.IsCompleted(ctx, relayHash)
	if err != nil {
		if isFatalReceipt(err) {
			w.logs.Infow("relay transaction failed on chain",
				"user_id", record.UserID,
				"relay_transaction_hash", relayHash,
				"error", err)
			w.failRecord(ctx, record)
			return SendResult{}, apperr.NewValidationError("send_value")
		}
		return SendResult{}, fmt.Errorf("poll relay transaction: %w", err)
	}

	if completed {
		if err := w.finish(ctx, record, repository.SendStatusDone); err != nil {
			return SendResult{}, err
		}
	}

	w.logs.Infow("tokens sent",
		"user_id", record.UserID,
		"sort_key", record.SortKey,
		"is_completed", completed)

	return SendResult{IsCompleted: completed}, nil
}

// SendTip transfers a tip from the user's wallet signed by the execution
// service. Tips are not counted towards the daily limit.
func (w *Wallet) SendTip(ctx context.Context, req TipRequest) (TipResult, error) {
	if req.TipValue == nil || !w.tipValue.Contains(req.TipValue) {
		return TipResult{}, apperr.NewValidationError("tip_value is invalid")
	}

	if err := w.verifyPin(ctx, req.UserID, req.AccessToken, req.PinCode); err != nil {
		return TipResult{}, err
	}

	nonce, err := w.transactionCount(ctx, req.FromAddress)
	if err != nil {
		return TipResult{}, err
	}

	txHash, err := w.chain.Tip(ctx, req.FromAddress, req.RecipientAddress, req.TipValue, nonce)
	if err != nil {
		return TipResult{}, fmt.Errorf("tip: %w", err)
	}

	completed, err := w.poller.IsCompleted(ctx, txHash)
	if err != nil {
		if isFatalReceipt(err) {
			w.logs.Infow("tip transaction failed on chain",
				"user_id", req.UserID,
				"transaction_hash", txHash,
				"error", err)
			return TipResult{}, apperr.NewValidationError("tip_value")
		}
		return TipResult{}, fmt.Errorf("poll tip transaction: %w", err)
	}

	w.logs.Infow("tip sent",
		"user_id", req.UserID,
		"transaction_hash", txHash,
		"is_completed", completed)

	return TipResult{TransactionHash: txHash, IsCompleted: completed}, nil
}

// SendRawTransaction validates a transaction signed by the caller and forwards it to the chain.
func (w *Wallet) SendRawTransaction(ctx context.Context, req RawTransactionRequest) (string, error) {
	count, err := w.chain.GetTransactionCount(ctx, req.FromAddress)
	if err != nil {
		return "", fmt.Errorf("get transaction count: %w", err)
	}

	data, err := w.codec.DecodeAndValidate(req.RawTransaction, count)
	if err != nil {
		return "", err
	}

	switch ethereum.SelectorOf(data) {
	case ethereum.TransferSelector:
		err = w.validator.ValidateTransfer(data, req.ToAddress)
	case ethereum.ApproveSelector:
		err = w.validator.ValidateApprove(data)
	case ethereum.RelaySelector:
		// Relays move value and only go out through SendTokens, which holds
		// the daily quota and the send record.
		err = apperr.NewValidationError("relay must be sent as a token send")
	default:
		err = apperr.NewValidationError("method is invalid")
	}
	if err != nil {
		return "", err
	}

	if err := w.signatures.VerifyTransactionSignature(req.RawTransaction, req.FromAddress); err != nil {
		return "", err
	}

	hash, err := w.chain.SendRawTransaction(ctx, req.RawTransaction)
	if err != nil {
		return "", fmt.Errorf("send raw transaction: %w", err)
	}

	w.logs.Infow("raw transaction sent", "transaction_hash", hash)
	return hash, nil
}

// BindAddress registers the address a user proved to own by signing it.
func (w *Wallet) BindAddress(ctx context.Context, req BindAddressRequest) error {
	if !ethereum.IsAddress(req.Address) {
		return apperr.NewValidationError("eth_address is invalid")
	}

	user, err := w.repo.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.ErrForbidden
		}
		return fmt.Errorf("get user: %w", err)
	}

	if user.EthAddress != nil {
		return apperr.NewValidationError("eth_address is already registered")
	}

	if err := w.signatures.VerifyMessageSignature(req.Address, req.Signature, req.Address); err != nil {
		return err
	}

	if err := w.repo.UpdateUserEthAddress(ctx, req.UserID, ethereum.CanonicalAddress(req.Address)); err != nil {
		return fmt.Errorf("update eth address: %w", err)
	}

	w.logs.Infow("eth address registered", "user_id", req.UserID)
	return nil
}

// WalletAddress returns the registered address of the user, or apperr.ErrForbidden.
func (w *Wallet) WalletAddress(ctx context.Context, userID string) (string, error) {
	user, err := w.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", apperr.ErrForbidden
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if user.EthAddress == nil || *user.EthAddress == "" {
		return "", apperr.ErrForbidden
	}

	return *user.EthAddress, nil
}

func (w *Wallet) Balance(ctx context.Context, userID string) (*big.Int, error) {
	address, err := w.WalletAddress(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := w.chain.Balance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

func (w *Wallet) SendHistory(ctx context.Context, userID string) ([]SendHistoryItem, error) {
	records, err := w.repo.ListSendRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list send records: %w", err)
	}

	items := make([]SendHistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, SendHistoryItem{
			SortKey:                rec.SortKey,
			SendValue:              rec.SendValue.String(),
			SendStatus:             rec.SendStatus,
			ApproveTransactionHash: rec.ApproveTransactionHash,
			RelayTransactionHash:   rec.RelayTransactionHash,
			TargetDate:             rec.TargetDate,
			CreatedAt:              rec.CreatedAt,
		})
	}

	return items, nil
}

// ReconcilePending settles doing records left behind by sends whose poll budget ran out.
// A record without a relay hash may still have a relay on chain, so it is never
// settled here. Once it is older than the stale period it is reported for manual
// settlement and keeps counting toward the daily quota.
func (w *Wallet) ReconcilePending(ctx context.Context) error {
	records, err := w.repo.ListSendRecordsByStatus(ctx, repository.SendStatusDoing)
	if err != nil {
		return fmt.Errorf("list doing records: %w", err)
	}

	cutoff := w.now().Add(-w.staleAfter).Unix()
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		if rec.RelayTransactionHash == nil {
			if rec.CreatedAt <= cutoff {
				w.logs.Errorw("relay outcome unknown, needs manual settlement",
					"user_id", rec.UserID,
					"sort_key", rec.SortKey,
					"approve_transaction_hash", rec.ApproveTransactionHash,
					"created_at", rec.CreatedAt)
			}
			continue
		}

		completed, err := w.poller.IsCompleted(ctx, *rec.RelayTransactionHash)
		if err != nil {
			if isFatalReceipt(err) {
				w.failRecord(ctx, rec)
				continue
			}
			w.logs.Errorw("polling doing record",
				"user_id", rec.UserID,
				"sort_key", rec.SortKey,
				"error", err)
			continue
		}

		if completed {
			if err := w.finish(ctx, rec, repository.SendStatusDone); err != nil {
				w.logs.Errorw("completing doing record",
					"user_id", rec.UserID,
					"sort_key", rec.SortKey,
					"error", err)
			}
		}
	}

	return nil
}

func (w *Wallet) verifyPin(ctx context.Context, userID, accessToken, pin string) error {
	err := w.pins.VerifyPin(ctx, userID, accessToken, pin)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, identity.ErrInvalidAccessToken):
		return apperr.NewValidationError("Invalid access token")
	case errors.Is(err, identity.ErrInvalidPinCode), errors.Is(err, identity.ErrPinCodeExpired):
		return apperr.NewValidationError("Invalid pin code")
	case errors.Is(err, identity.ErrLimitExceeded):
		return apperr.NewValidationError("Pin code verification limit exceeded")
	}
	return fmt.Errorf("verify pin: %w", err)
}

func (w *Wallet) checkDailyLimit(ctx context.Context, userID, targetDate string, value decimal.Decimal) error {
	sum, err := w.repo.SumSendValue(ctx, userID, targetDate, quotaStatuses)
	if err != nil {
		return fmt.Errorf("sum today's send value: %w", err)
	}

	if sum.Add(value).GreaterThan(w.dailyLimit) {
		return apperr.NewValidationError("Token withdrawal limit has been exceeded.")
	}

	return nil
}

func (w *Wallet) transactionCount(ctx context.Context, address string) (uint64, error) {
	count, err := w.chain.GetTransactionCount(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("get transaction count: %w", err)
	}

	nonce, err := hexutil.DecodeUint64(count)
	if err != nil {
		return 0, fmt.Errorf("decode transaction count %q: %w", count, err)
	}

	return nonce, nil
}

// failRecord marks rec as fail. Errors are logged since the caller is already
// returning a more relevant one.
func (w *Wallet) failRecord(ctx context.Context, rec repository.SendRecord) {
	if err := w.finish(ctx, rec, repository.SendStatusFail); err != nil {
		w.logs.Errorw("failing send record",
			"user_id", rec.UserID,
			"sort_key", rec.SortKey,
			"error", err)
	}
}

// finish moves rec out of doing and publishes the outcome. A record another
// worker already settled is left alone and no event is published for it.
func (w *Wallet) finish(ctx context.Context, rec repository.SendRecord, status string) error {
	if err := w.repo.UpdateSendStatus(ctx, rec.UserID, rec.SortKey, status); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			w.logs.Infow("send record already settled",
				"user_id", rec.UserID,
				"sort_key", rec.SortKey,
				"send_status", status)
			return nil
		}
		return fmt.Errorf("update send status: %w", err)
	}

	event := publisher.SendEvent{
		UserID:     rec.UserID,
		SortKey:    rec.SortKey,
		SendStatus: status,
		SendValue:  rec.SendValue.String(),
	}
	if rec.RelayTransactionHash != nil {
		event.RelayTransactionHash = *rec.RelayTransactionHash
	}

	if err := w.events.PublishSendEvent(ctx, event); err != nil {
		w.logs.Errorw("publishing send event",
			"user_id", rec.UserID,
			"sort_key", rec.SortKey,
			"error", err)
	}

	return nil
}

func isFatalReceipt(err error) bool {
	var receiptErr *apperr.ReceiptError
	return errors.As(err, &receiptErr) && receiptErr.Kind != apperr.Transient
}
