package host

import (
	"context"
	"fmt"

	"github.com/tmarchant/vslice/internal/database/repository"
)

// Properties is a flat property bag for one object group.
type Properties map[string]any

// ObjectMap carries every persisted object group handed to a visual on
// update. Visuals read their settings out of it and fall back to defaults
// for anything missing or malformed.
type ObjectMap map[string]Properties

// Property is one enumerated property, as surfaced to the property pane.
type Property struct {
	Name  string
	Value any
}

// ObjectStore is the host-persisted property system. Values live in sqlite
// so they survive restarts; config only seeds them on first run.
type ObjectStore struct {
	repo *repository.ObjectRepo
}

func NewObjectStore(repo *repository.ObjectRepo) *ObjectStore {
	return &ObjectStore{repo: repo}
}

// Seed writes defaults for properties that have never been set. Existing
// values win, so user edits persist across restarts and config changes.
func (s *ObjectStore) Seed(ctx context.Context, object string, props map[string]string) error {
	existing, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("read objects: %w", err)
	}
	for name, value := range props {
		if _, ok := existing[object][name]; ok {
			continue
		}
		if err := s.repo.Set(ctx, object, name, value); err != nil {
			return fmt.Errorf("seed %s.%s: %w", object, name, err)
		}
	}
	return nil
}

// Set persists one property value.
func (s *ObjectStore) Set(ctx context.Context, object, property, value string) error {
	return s.repo.Set(ctx, object, property, value)
}

// Snapshot reads every persisted object group. Values are kept as the raw
// stored strings; coercion is the reading visual's concern.
func (s *ObjectStore) Snapshot(ctx context.Context) (ObjectMap, error) {
	raw, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read objects: %w", err)
	}
	out := make(ObjectMap, len(raw))
	for object, props := range raw {
		bag := make(Properties, len(props))
		for name, value := range props {
			bag[name] = value
		}
		out[object] = bag
	}
	return out, nil
}
