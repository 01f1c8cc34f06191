package repository

import (
	"context"
	"database/sql"
)

// DBTX is the handle repositories run their statements on. Both *sql.DB and
// *sql.Tx satisfy it, so a repository can join a transaction opened by the
// caller.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
