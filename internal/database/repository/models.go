package repository

import "time"

// Dataset represents a datasets row.
type Dataset struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// MeasureRow represents one recorded fact. Value is nil when the source
// recorded a blank (NULL) measure.
type MeasureRow struct {
	ID        string
	DatasetID string
	Category  string
	Value     *float64
	Note      string
	CreatedAt time.Time
}

// CategoryAggregate is one row of the per-category rollup the host queries
// for a slicer view. Total is nil when every underlying value was NULL.
type CategoryAggregate struct {
	Category string
	Total    *float64
}
