package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager hands gorm handles to the usecase layer: a plain context-scoped
// DB for reads and a transaction for multi-write sequences. Usecases depend
// on this interface instead of *gorm.DB directly so they can be unit tested
// with mocks.
type TxManager interface {
	DB(ctx context.Context) *gorm.DB
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) DB(ctx context.Context) *gorm.DB {
	return m.db.WithContext(ctx)
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
