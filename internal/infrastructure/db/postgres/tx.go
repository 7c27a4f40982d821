package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

type txKey struct{}

// Transactor implements ports.Transactor on a GORM handle.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise. A ctx that
// already carries a transaction is passed through unchanged.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db scoped to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// translate maps GORM sentinel errors onto the domain taxonomy. Anything else
// is a store failure and is returned as is.
func translate(err error, kind domain.Kind, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(kind, id)
	default:
		return err
	}
}

// conflictOr maps a unique-key violation to domain.ErrConflict on field.
func conflictOr(err error, kind domain.Kind, field, value string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Conflict(kind, field, value)
	}
	return err
}
