package repository

import (
	"context"

	"gorm.io/gorm"
)

type txCtxKey struct{}

// gormTransactor runs a function inside a database transaction. The
// transaction handle travels through the context so that repositories
// called from the function join the same transaction transparently.
type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *gormTransactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txCtxKey{}, tx))
	})
}

// dbFrom returns the transaction bound to ctx if one exists, otherwise
// the repository's own handle.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
