package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrDatasetNotFound is returned when a dataset name resolves to nothing.
var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetRepo handles datasets.
type DatasetRepo struct {
	db DBTX
}

func NewDatasetRepo(db DBTX) *DatasetRepo {
	return &DatasetRepo{db: db}
}

func (r *DatasetRepo) Upsert(ctx context.Context, d Dataset) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO datasets(id, name)
	VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name;
	`, d.ID, d.Name)
	return err
}

func (r *DatasetRepo) List(ctx context.Context) ([]Dataset, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM datasets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Dataset
	for rows.Next() {
		var d Dataset
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DatasetRepo) GetByName(ctx context.Context, name string) (Dataset, error) {
	var d Dataset
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM datasets WHERE name = ?`, name,
	).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Dataset{}, ErrDatasetNotFound
	}
	if err != nil {
		return Dataset{}, err
	}
	return d, nil
}
