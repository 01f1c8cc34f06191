package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/tmarchant/vslice/internal/database/repository"
)

// Service is the reference host: it runs the query loop that turns stored
// measure rows into the DataView a visual consumes, owns the active report
// filter, and resolves selection identities back to category rows.
//
// Selection calls arrive from command goroutines, so the filter state is
// mutex-guarded even though updates themselves are serialized by the UI loop.
type Service struct {
	mu       sync.Mutex
	dataset  repository.Dataset
	measures *repository.MeasureRepo
	objects  *ObjectStore
	ids      *identityIndex

	// active is the category filter. nil means no filter at all, which is
	// distinct from an empty filter that matches nothing.
	active []string
}

// Snapshot is the result of one host query cycle.
type Snapshot struct {
	DataView DataView
	Objects  ObjectMap
	Report   []repository.MeasureRow
	Filtered bool
}

func NewService(dataset repository.Dataset, measures *repository.MeasureRepo, objects *ObjectStore) *Service {
	return &Service{
		dataset:  dataset,
		measures: measures,
		objects:  objects,
		ids:      newIdentityIndex(),
	}
}

// Dataset returns the dataset this host is serving.
func (s *Service) Dataset() repository.Dataset { return s.dataset }

// IdentityFor implements IdentityBuilder. Minted identities are remembered
// so later Select calls can be resolved to category rows.
func (s *Service) IdentityFor(col *CategoryColumn, row int) SelectionID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.IdentityFor(col, row)
}

// Snapshot runs one query cycle: the per-category rollup that feeds the
// slicer view, the persisted object properties, and the report rows passing
// the active filter.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	aggregates, err := s.measures.AggregateByCategory(ctx, s.dataset.ID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("aggregate %s: %w", s.dataset.Name, err)
	}

	categories := make([]string, 0, len(aggregates))
	values := make([]any, 0, len(aggregates))
	for _, agg := range aggregates {
		categories = append(categories, agg.Category)
		if agg.Total == nil {
			values = append(values, nil)
		} else {
			values = append(values, *agg.Total)
		}
	}

	objects, err := s.objects.Snapshot(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	report, err := s.measures.ListByCategories(ctx, s.dataset.ID, active)
	if err != nil {
		return Snapshot{}, fmt.Errorf("report rows: %w", err)
	}
	if active != nil && len(active) == 0 {
		// A filter that matches nothing: ListByCategories treats an empty
		// list as "everything", so empty the report here.
		report = nil
	}

	dv := DataView{
		Categorical: &CategoricalView{
			Category: &CategoryColumn{
				QueryName:   s.dataset.Name + ".category",
				DisplayName: "Category",
				Values:      categories,
			},
			Values: &ValueColumn{
				QueryName:   s.dataset.Name + ".value",
				DisplayName: "Total",
				Values:      values,
			},
		},
	}

	return Snapshot{DataView: dv, Objects: objects, Report: report, Filtered: active != nil}, nil
}

// Select applies a selection as the report filter. Unknown identities are
// dropped; the returned slice is the set actually applied, which is the
// confirmation the visual re-syncs from.
func (s *Service) Select(ctx context.Context, ids []SelectionID) ([]SelectionID, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := make([]SelectionID, 0, len(ids))
	categories := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		cat, ok := s.ids.categoryFor(id)
		if !ok {
			continue
		}
		applied = append(applied, id)
		if !seen[cat] {
			seen[cat] = true
			categories = append(categories, cat)
		}
	}
	s.active = categories
	return applied, nil
}

// Clear removes the report filter entirely.
func (s *Service) Clear(ctx context.Context) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	return nil
}

// SetProperty persists one visual object property.
func (s *Service) SetProperty(ctx context.Context, object, property, value string) error {
	return s.objects.Set(ctx, object, property, value)
}

// ActiveCategories returns the categories currently in the filter, or nil
// when no filter is applied.
func (s *Service) ActiveCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	out := make([]string, len(s.active))
	copy(out, s.active)
	return out
}
