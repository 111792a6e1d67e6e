package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SendStatusDoing = "doing"
	SendStatusDone  = "done"
	SendStatusFail  = "fail"
)

// SendRecord tracks one token send from approve to relay confirmation.
// Records are never deleted.
type SendRecord struct {
	UserID                 string          `gorm:"primaryKey;size:64;index:idx_target_date_user_id,priority:2"`
	SortKey                int64           `gorm:"primaryKey;autoIncrement:false"` // creation time in microseconds
	SendValue              decimal.Decimal `gorm:"type:numeric(78,0);not null"`
	ApproveTransactionHash string          `gorm:"size:66;not null"`
	RelayTransactionHash   *string         `gorm:"size:66"`
	SendStatus             string          `gorm:"size:8;not null;index"`
	TargetDate             string          `gorm:"size:10;not null;index:idx_target_date_user_id,priority:1"` // UTC YYYY-MM-DD
	CreatedAt              int64           `gorm:"not null"`                                                  // unix seconds
}

func (SendRecord) TableName() string {
	return "token_send_records"
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PinHash      string
	PinExpiresAt *time.Time
	EthAddress   *string `gorm:"size:40;uniqueIndex"` // canonical, lowercase without 0x
}
