package repository

import "context"

// ObjectRepo handles persisted visual object properties.
type ObjectRepo struct {
	db DBTX
}

func NewObjectRepo(db DBTX) *ObjectRepo {
	return &ObjectRepo{db: db}
}

func (r *ObjectRepo) Set(ctx context.Context, object, property, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO visual_objects(object, property, value)
	VALUES (?, ?, ?)
	ON CONFLICT(object, property) DO UPDATE SET value=excluded.value;
	`, object, property, value)
	return err
}

// All returns every stored property, keyed object -> property -> value.
func (r *ObjectRepo) All(ctx context.Context) (map[string]map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT object, property, value FROM visual_objects`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]map[string]string)
	for rows.Next() {
		var object, property, value string
		if err := rows.Scan(&object, &property, &value); err != nil {
			return nil, err
		}
		if out[object] == nil {
			out[object] = make(map[string]string)
		}
		out[object][property] = value
	}
	return out, rows.Err()
}
