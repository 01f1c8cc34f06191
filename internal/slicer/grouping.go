package slicer

import "github.com/tmarchant/vslice/internal/host"

// Grouping maps each distinct measure value to the selection identities of
// the category rows that produced it. Keys keep first-occurrence order and
// identities keep source row order; identities are never deduplicated. A key
// only exists once at least one row carried it, so no key ever maps to an
// empty list.
type Grouping struct {
	keys []string
	ids  map[string][]host.SelectionID
}

func NewGrouping() *Grouping {
	return &Grouping{ids: make(map[string][]host.SelectionID)}
}

// Add appends id under key, creating the key on first occurrence.
func (g *Grouping) Add(key string, id host.SelectionID) {
	if _, ok := g.ids[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.ids[key] = append(g.ids[key], id)
}

// Keys returns the distinct measure values in first-occurrence order.
func (g *Grouping) Keys() []string { return g.keys }

// IDs returns the selection identities recorded under key.
func (g *Grouping) IDs(key string) []host.SelectionID { return g.ids[key] }

// Has reports whether key exists in the grouping.
func (g *Grouping) Has(key string) bool {
	_, ok := g.ids[key]
	return ok
}

// Len returns the number of distinct measure values.
func (g *Grouping) Len() int { return len(g.keys) }
