package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/tmarchant/vslice/internal/database/repository"
)

// ResolveDataset looks a dataset up by name. On a miss it suggests the
// closest known name when one is plausibly a typo away.
func ResolveDataset(ctx context.Context, repo *repository.DatasetRepo, name string) (repository.Dataset, error) {
	ds, err := repo.GetByName(ctx, name)
	if err == nil {
		return ds, nil
	}
	if !errors.Is(err, repository.ErrDatasetNotFound) {
		return repository.Dataset{}, err
	}

	all, listErr := repo.List(ctx)
	if listErr != nil || len(all) == 0 {
		return repository.Dataset{}, fmt.Errorf("unknown dataset %q", name)
	}
	if suggestion, ok := closestDatasetName(name, all); ok {
		return repository.Dataset{}, fmt.Errorf("unknown dataset %q (did you mean %q?)", name, suggestion)
	}
	return repository.Dataset{}, fmt.Errorf("unknown dataset %q", name)
}

func closestDatasetName(name string, all []repository.Dataset) (string, bool) {
	best := ""
	bestDist := -1
	for _, ds := range all {
		d := levenshtein.ComputeDistance(name, ds.Name)
		if bestDist < 0 || d < bestDist {
			best = ds.Name
			bestDist = d
		}
	}
	// Only suggest near misses; a wildly different name is not a typo.
	if bestDist >= 0 && bestDist <= len(best)/2 {
		return best, true
	}
	return "", false
}
