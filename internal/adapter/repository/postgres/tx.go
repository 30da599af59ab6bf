package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

// allocationLockKey identifies the advisory lock that serialises every
// ledger unit of work, so two requests can never allocate the same capacity
const allocationLockKey int64 = 0x6368617269747921

type txKey struct{}

// transactor implements domain.Transactor
type transactor struct {
	db *DB
}

// NewTransactor creates a new transactor bound to db
func NewTransactor(db *DB) domain.Transactor {
	return &transactor{db: db}
}

// WithinTransaction runs fn in a database transaction holding the allocation
// lock. Calls nested in an existing transaction join it.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	dbTx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is a no-op once Commit succeeded and also covers panics in fn
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, allocationLockKey); err != nil {
		return fmt.Errorf("failed to acquire allocation lock: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, dbTx)); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
