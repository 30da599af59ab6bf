package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq" // PostgreSQL driver
	"github.com/shopspring/decimal"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

// uniqueViolation is the SQLSTATE raised by a UNIQUE constraint
const uniqueViolation = "23505"

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString accepts both URL ("postgres://...") and key/value
// ("host=localhost port=5432 ...") formats understood by lib/pq
func NewDB(ctx context.Context, connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// querier is the subset of *sql.DB and *sql.Tx used by the repositories
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction bound to ctx, or the pool when there is none
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

type scanner interface {
	Scan(dest ...any) error
}

// parseInvestment fills the financial fields scanned as text
func parseInvestment(inv *domain.Investment, fullStr, investedStr string, closeDate sql.NullTime) error {
	full, err := decimal.NewFromString(fullStr)
	if err != nil {
		return fmt.Errorf("failed to parse full_amount: %w", err)
	}
	invested, err := decimal.NewFromString(investedStr)
	if err != nil {
		return fmt.Errorf("failed to parse invested_amount: %w", err)
	}

	inv.FullAmount = full
	inv.InvestedAmount = invested
	if closeDate.Valid {
		closedAt := closeDate.Time
		inv.CloseDate = &closedAt
	}
	return nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func checkAffected(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return nil
}
