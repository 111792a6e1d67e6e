package repository

import (
	"context"
	"errors"
	"fmt"

	"tokenrelay/internal/db"

	"github.com/shopspring/decimal"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrRecordExists error = errors.New("send record already exists")
var ErrRecordNotFound error = errors.New("send record not found")

type WalletRepository struct {
	db Storage
}

func NewWalletRepository(db Storage) *WalletRepository {
	return &WalletRepository{
		db: db,
	}
}

func (r *WalletRepository) Migrate(ctx context.Context) error {
	err := r.db.MigrateTable(ctx, &User{}, &SendRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateSendRecord inserts record only if no record has the same user id and sort key.
func (r *WalletRepository) CreateSendRecord(ctx context.Context, record SendRecord) error {
	err := r.db.Insert(ctx, &record)
	if err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return ErrRecordExists
		}
		return fmt.Errorf("create send record: %w", err)
	}

	return nil
}

func (r *WalletRepository) UpdateRelayTransaction(ctx context.Context, userID string, sortKey int64, transactionHash string) error {
	conds := map[string]any{
		"user_id":  userID,
		"sort_key": sortKey,
	}
	return r.updateSendRecord(ctx, conds, map[string]any{
		"relay_transaction_hash": transactionHash,
	})
}

// UpdateSendStatus moves a doing record to status. It returns ErrRecordNotFound
// when the record does not exist or has already left doing.
func (r *WalletRepository) UpdateSendStatus(ctx context.Context, userID string, sortKey int64, status string) error {
	conds := map[string]any{
		"user_id":     userID,
		"sort_key":    sortKey,
		"send_status": SendStatusDoing,
	}
	return r.updateSendRecord(ctx, conds, map[string]any{
		"send_status": status,
	})
}

func (r *WalletRepository) updateSendRecord(ctx context.Context, conds, values map[string]any) error {

	err := r.db.UpdateWhere(ctx, &SendRecord{}, conds, values)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("update send record: %w", err)
	}

	return nil
}

// SumSendValue adds up the send values of the user's records on targetDate with one of statuses.
func (r *WalletRepository) SumSendValue(ctx context.Context, userID, targetDate string, statuses []string) (decimal.Decimal, error) {
	conds := map[string]any{
		"user_id":     userID,
		"target_date": targetDate,
		"send_status": statuses,
	}

	sum, err := r.db.SumWhere(ctx, &SendRecord{}, "send_value", conds)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum send value: %w", err)
	}

	return sum, nil
}

// ListSendRecords returns the user's records, newest first.
func (r *WalletRepository) ListSendRecords(ctx context.Context, userID string) ([]SendRecord, error) {
	records := []SendRecord{}
	err := r.db.FindWhere(ctx, map[string]any{"user_id": userID}, "sort_key desc", &records)
	if err != nil {
		return nil, fmt.Errorf("list send records: %w", err)
	}

	return records, nil
}

// ListSendRecordsByStatus returns every record in status, oldest first.
func (r *WalletRepository) ListSendRecordsByStatus(ctx context.Context, status string) ([]SendRecord, error) {
	records := []SendRecord{}
	err := r.db.FindWhere(ctx, map[string]any{"send_status": status}, "sort_key asc", &records)
	if err != nil {
		return nil, fmt.Errorf("list send records by status: %w", err)
	}

	return records, nil
}

func (r *WalletRepository) GetUser(ctx context.Context, userID string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", userID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// SaveUser creates the user or replaces its pin.
func (r *WalletRepository) SaveUser(ctx context.Context, user User) error {
	err := r.db.Upsert(ctx, &user, "pin_hash", "pin_expires_at")
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

func (r *WalletRepository) UpdateUserEthAddress(ctx context.Context, userID, address string) error {
	err := r.db.UpdateWhere(ctx, &User{}, map[string]any{"id": userID}, map[string]any{"eth_address": address})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update user eth address: %w", err)
	}

	return nil
}
