package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner runs fn inside one database transaction; every repo reachable
// through the handed-back Repository shares that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *Repository) error) error
}

type txRunner struct{ db *gorm.DB }

func NewTxRunner(db *gorm.DB) TxRunner { return &txRunner{db: db} }

func (r *txRunner) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}
