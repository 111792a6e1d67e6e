package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrAlreadyExists = errors.New("record already exists")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(ctx context.Context, tbl ...any) error {
	err := f.DB.WithContext(ctx).AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates record and fails with ErrAlreadyExists when its primary key is taken.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// Upsert creates record or overwrites the given columns of the existing row.
func (f *PostgresDB) Upsert(ctx context.Context, record any, columns ...string) error {
	err := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		UpdateAll: len(columns) == 0,
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

// UpdateWhere sets values on every row of model matching conds.
// It returns ErrNotFound when no row matched.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, conds map[string]any, values map[string]any) error {
	tx := f.DB.WithContext(ctx).Model(model).Where(conds).Updates(values)
	if tx.Error != nil {
		return fmt.Errorf("update table: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// FindWhere loads every row matching conds into entities, sorted by order when set.
func (f *PostgresDB) FindWhere(ctx context.Context, conds map[string]any, order string, entities any) error {
	tx := f.DB.WithContext(ctx).Where(conds)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("find records: %w", err)
	}
	return nil
}

// SumWhere adds up column over the rows of model matching conds. No rows sum to zero.
func (f *PostgresDB) SumWhere(ctx context.Context, model any, column string, conds map[string]any) (decimal.Decimal, error) {
	var sum decimal.Decimal

	row := f.DB.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column)).
		Where(conds).
		Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum %q: %w", column, err)
	}

	return sum, nil
}
