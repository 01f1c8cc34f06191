package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the slicer database at path. Foreign keys stay on so dropping a
// dataset cascades to its measure rows; the busy timeout lets the seed write
// while a snapshot query holds the lock.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// Single connection: sqlite allows one writer.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn inside a transaction, rolling back if fn returns an error.
// Seeding uses it so a partial demo dataset never reaches the snapshot loop.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now returns UTC time truncated to seconds, the resolution SQLite keeps for
// timestamp columns.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
