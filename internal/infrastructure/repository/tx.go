package repository

import (
	"context"

	"github.com/zatca-bridge/invoicing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ctxKey string

// txKey is the context key carrying the transaction handle
const txKey ctxKey = "gorm_tx"

// WithTx returns a context carrying the given transaction. Repositories
// created from the same base DB pick it up and join the transaction.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// dbFrom returns the transaction from ctx when present, else the base DB
func dbFrom(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a gorm-backed unit of work
func NewUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn inside a single database transaction. The transaction handle is
// injected into the context so repository calls made within fn share it.
// When ctx already carries a transaction the inner unit becomes a savepoint,
// so a failed inner write (e.g. a duplicate-key insert) can be recovered from
// without poisoning the outer transaction.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx).Transaction(func(nested *gorm.DB) error {
			return fn(WithTx(ctx, nested))
		})
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
