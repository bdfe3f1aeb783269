package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samber/oops"

	"github.com/sbilibin2017/gw-game-roster/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor returns the transaction carried by ctx, or db when there is none.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// Transactor runs a function inside a database transaction.
type Transactor struct {
	db *sqlx.DB
}

// NewTransactor creates a new Transactor.
func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx runs fn with a transaction stored in its context. The transaction is
// committed when fn returns nil and rolled back on error or panic. Nested calls
// join the outer transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to begin transaction", "error", err)
		return oops.In("repository").Wrapf(err, "begin transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err = fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
			logger.FromContext(ctx).Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.FromContext(ctx).Errorw("failed to commit transaction", "error", err)
		return oops.In("repository").Wrapf(err, "commit transaction")
	}
	return nil
}
