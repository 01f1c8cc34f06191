package repository

import (
	"context"
	"database/sql"
	"strings"
)

// MeasureRepo handles measure rows.
type MeasureRepo struct {
	db DBTX
}

func NewMeasureRepo(db DBTX) *MeasureRepo {
	return &MeasureRepo{db: db}
}

// Insert stores one measure row. CreatedAt is written as given when set,
// otherwise SQLite stamps it.
func (r *MeasureRepo) Insert(ctx context.Context, m MeasureRow) error {
	var value sql.NullFloat64
	if m.Value != nil {
		value = sql.NullFloat64{Float64: *m.Value, Valid: true}
	}
	if m.CreatedAt.IsZero() {
		_, err := r.db.ExecContext(ctx, `
		INSERT INTO measure_rows(id, dataset_id, category, value, note)
		VALUES (?, ?, ?, ?, ?);
		`, m.ID, m.DatasetID, m.Category, value, m.Note)
		return err
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO measure_rows(id, dataset_id, category, value, note, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, m.ID, m.DatasetID, m.Category, value, m.Note, m.CreatedAt)
	return err
}

// AggregateByCategory rolls measure rows up to one SUM per category, in
// first-appearance order of each category. Categories whose values are all
// NULL aggregate to a nil Total.
func (r *MeasureRepo) AggregateByCategory(ctx context.Context, datasetID string) ([]CategoryAggregate, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT category, SUM(value)
	FROM measure_rows
	WHERE dataset_id = ?
	GROUP BY category
	ORDER BY MIN(rowid)`, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CategoryAggregate
	for rows.Next() {
		var agg CategoryAggregate
		var total sql.NullFloat64
		if err := rows.Scan(&agg.Category, &total); err != nil {
			return nil, err
		}
		if total.Valid {
			v := total.Float64
			agg.Total = &v
		}
		out = append(out, agg)
	}
	return out, rows.Err()
}

// ListByCategories returns the measure rows for the given categories, in
// insertion order. An empty category list returns every row in the dataset.
func (r *MeasureRepo) ListByCategories(ctx context.Context, datasetID string, categories []string) ([]MeasureRow, error) {
	query := `SELECT id, dataset_id, category, value, note, created_at FROM measure_rows WHERE dataset_id = ?`
	args := []any{datasetID}
	if len(categories) > 0 {
		placeholders := strings.Repeat("?,", len(categories))
		query += ` AND category IN (` + placeholders[:len(placeholders)-1] + `)`
		for _, c := range categories {
			args = append(args, c)
		}
	}
	query += ` ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MeasureRow
	for rows.Next() {
		var m MeasureRow
		var value sql.NullFloat64
		if err := rows.Scan(&m.ID, &m.DatasetID, &m.Category, &value, &m.Note, &m.CreatedAt); err != nil {
			return nil, err
		}
		if value.Valid {
			v := value.Float64
			m.Value = &v
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
