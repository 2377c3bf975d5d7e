package db

import (
	"context"
	"database/sql"
)

// DBTX is the query interface shared by *sql.DB and *sql.Tx. Repositories
// take a DBTX rather than a concrete handle so the same repository type
// works standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
