package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO datasets(id, name) VALUES ('x', 'doomed');`)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM datasets`).Scan(&n))
	require.Equal(t, 0, n, "rolled-back insert must not persist")
}

func TestWithTxCommits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO datasets(id, name) VALUES ('x', 'kept');`)
		return err
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM datasets`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, db))
	require.NoError(t, SeedDemo(ctx, db))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM measure_rows`).Scan(&n))
	require.Equal(t, 7, n, "reseeding must not duplicate the demo rows")
}

func TestSeedDemoStampsRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, db))

	var distinct int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT created_at) FROM measure_rows`).Scan(&distinct))
	require.Equal(t, 1, distinct, "all seed rows share one creation stamp")

	var stamp string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT MIN(created_at) FROM measure_rows`).Scan(&stamp))
	require.NotEmpty(t, stamp)
}
