package privatechain

import (
	"context"
	"time"

	"tokenrelay/internal/apperr"

	"go.uber.org/zap"
)

const (
	DefaultReceiptRetries  = 3
	DefaultReceiptInterval = time.Second
)

// revertedStatus is the receipt status of an executed but reverted transaction.
const revertedStatus = "0x0"

type PollerConfig struct {
	Retries  int
	Interval time.Duration
	// Sleep waits between attempts. Defaults to a context aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// ConfirmationPoller queries a transaction receipt until every log is mined
// or the retry budget runs out.
type ConfirmationPoller struct {
	logs     *zap.SugaredLogger
	receipts ReceiptFetcher
	retries  int
	interval time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewConfirmationPoller(logger *zap.SugaredLogger, receipts ReceiptFetcher, cfg PollerConfig) *ConfirmationPoller {
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultReceiptRetries
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultReceiptInterval
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleepContext
	}

	return &ConfirmationPoller{
		logs:     logger,
		receipts: receipts,
		retries:  cfg.Retries,
		interval: cfg.Interval,
		sleep:    cfg.Sleep,
	}
}

// IsCompleted reports whether every log of the transaction receipt is mined.
// It returns false without error when the retry budget is exhausted.
func (p *ConfirmationPoller) IsCompleted(ctx context.Context, transactionHash string) (bool, error) {
	for attempt := 1; attempt <= p.retries; attempt++ {
		receipt, err := p.receipts.Receipt(ctx, transactionHash)
		if err != nil {
			return false, &apperr.ReceiptError{
				Kind:    apperr.Transient,
				Message: "get receipt",
				Err:     err,
			}
		}

		if receipt != nil {
			if receipt.Status == revertedStatus {
				return false, &apperr.ReceiptError{
					Kind:    apperr.OutOfRange,
					Message: "Transaction reverted.",
				}
			}

			if len(receipt.Logs) == 0 {
				return false, &apperr.ReceiptError{
					Kind:    apperr.Malformed,
					Message: "Receipt exists, but Not exists mined logs.",
				}
			}

			if allMined(receipt.Logs) {
				return true, nil
			}
		}

		p.logs.Infow("transaction not mined yet",
			"transaction_hash", transactionHash,
			"attempt", attempt)

		if err := p.sleep(ctx, p.interval); err != nil {
			return false, err
		}
	}

	return false, nil
}

func allMined(logs []ReceiptLog) bool {
	for _, log := range logs {
		if log.Type != ReceiptLogMined {
			return false
		}
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
