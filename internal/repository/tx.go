package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs fn inside one database transaction. Returning an error from
// fn rolls back every write made through tx.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct{ db *gorm.DB }

func NewTxManager(db *gorm.DB) TxManager { return &gormTxManager{db: db} }

func (m *gormTxManager) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
