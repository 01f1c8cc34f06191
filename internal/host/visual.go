package host

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Visual is the lifecycle contract a hosted control conforms to: constructed
// once, updated on every data or viewport change, and asked to enumerate its
// effective object properties for the property pane. Update may return a
// follow-up command (e.g. dispatching a seeded default selection) for the
// program loop to run.
type Visual interface {
	Update(opts UpdateOptions) tea.Cmd
	EnumerateObjects(object string) []Property
}

// SelectionManager applies a visual's selection against the active report
// filter. Select returns the identities actually applied — the confirmation
// a visual re-syncs its rendered state from. Clear removes the filter
// entirely, which is distinct from selecting an empty list.
type SelectionManager interface {
	Select(ctx context.Context, ids []SelectionID) ([]SelectionID, error)
	Clear(ctx context.Context) error
}
