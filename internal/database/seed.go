package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tmarchant/vslice/internal/database/repository"
)

// DemoDataset is the dataset seeded into empty databases so the slicer has
// something to show out of the box.
const DemoDataset = "branch-returns"

type seedRow struct {
	category string
	value    *float64
	note     string
}

func fv(v float64) *float64 { return &v }

// SeedDemo ensures a small demo dataset exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	dsRepo := repository.NewDatasetRepo(db)
	existing, err := dsRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	dsID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("ds:"+DemoDataset)).String()

	// Several branches share the same monthly total so slicing by measure
	// value actually groups more than one category. Thornbury's returns are
	// still unprocessed (NULL), so it never shows up in the slicer.
	rows := []seedRow{
		{category: "Northcote", value: fv(3), note: "week 1-2"},
		{category: "Northcote", value: fv(2), note: "week 3-4"},
		{category: "Fitzroy", value: fv(5), note: "full month"},
		{category: "Brunswick", value: fv(4), note: "full month"},
		{category: "Thornbury", value: nil, note: "awaiting stocktake"},
		{category: "Preston", value: fv(1), note: "week 1"},
		{category: "Preston", value: fv(4), note: "week 2-4"},
	}

	// One transaction: either the whole demo dataset lands or none of it.
	stamp := Now()
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := repository.NewDatasetRepo(tx).Upsert(ctx, repository.Dataset{ID: dsID, Name: DemoDataset}); err != nil {
			return fmt.Errorf("seed dataset: %w", err)
		}
		measureRepo := repository.NewMeasureRepo(tx)
		for idx, r := range rows {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("row:%s:%d", DemoDataset, idx))).String()
			m := repository.MeasureRow{
				ID:        id,
				DatasetID: dsID,
				Category:  r.category,
				Value:     r.value,
				Note:      r.note,
				CreatedAt: stamp,
			}
			if err := measureRepo.Insert(ctx, m); err != nil {
				return fmt.Errorf("seed row %d: %w", idx, err)
			}
		}
		return nil
	})
}
