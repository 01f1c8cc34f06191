package host

import (
	"fmt"

	"github.com/google/uuid"
)

// SelectionID is an opaque handle for one category row. Visuals collect and
// hand these back to the selection manager; only the host can resolve one to
// the row it names.
type SelectionID struct {
	key uuid.UUID
}

// IsZero reports whether the ID was never minted.
func (id SelectionID) IsZero() bool { return id.key == uuid.Nil }

func (id SelectionID) String() string { return id.key.String() }

// IdentityBuilder mints selection identities for rows of a category column.
type IdentityBuilder interface {
	IdentityFor(col *CategoryColumn, row int) SelectionID
}

// NewIdentityBuilder returns a standalone deterministic builder, for
// building view models detached from a live host.
func NewIdentityBuilder() IdentityBuilder { return newIdentityIndex() }

// identityIndex mints deterministic per-(column,row) identities and remembers
// which category each one names so Select calls can be resolved later.
// Identities are stable across updates for the same column and row, the same
// way seeded category IDs stay stable across runs.
type identityIndex struct {
	categories map[uuid.UUID]string
}

func newIdentityIndex() *identityIndex {
	return &identityIndex{categories: make(map[uuid.UUID]string)}
}

func (ix *identityIndex) IdentityFor(col *CategoryColumn, row int) SelectionID {
	key := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("sel:%s:%d", col.QueryName, row)))
	if row >= 0 && row < len(col.Values) {
		ix.categories[key] = col.Values[row]
	}
	return SelectionID{key: key}
}

// categoryFor resolves an identity back to its category name.
func (ix *identityIndex) categoryFor(id SelectionID) (string, bool) {
	cat, ok := ix.categories[id.key]
	return cat, ok
}
