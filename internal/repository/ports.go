package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(ctx context.Context, tbl ...any) error
	Insert(ctx context.Context, record any) error
	Upsert(ctx context.Context, record any, columns ...string) error
	UpdateWhere(ctx context.Context, model any, conds map[string]any, values map[string]any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindWhere(ctx context.Context, conds map[string]any, order string, entities any) error
	SumWhere(ctx context.Context, model any, column string, conds map[string]any) (decimal.Decimal, error)
}
