package slicer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmarchant/vslice/internal/host"
)

// AppliedMsg is the selection service's confirmation for one request.
type AppliedMsg struct {
	Seq     uint64
	Applied []host.SelectionID
	Cleared bool
	Err     error
}

// selectionState is the user's current multi-selection: checked measure
// values mapped to the identity lists captured when each was checked, in the
// order the keys were added. A *selectionState that is nil means the
// selection was never initialized this session, which is a different state
// from an initialized-but-empty selection.
type selectionState struct {
	order []string
	ids   map[string][]host.SelectionID
}

func newSelectionState() *selectionState {
	return &selectionState{ids: make(map[string][]host.SelectionID)}
}

func (st *selectionState) has(key string) bool {
	_, ok := st.ids[key]
	return ok
}

func (st *selectionState) add(key string, ids []host.SelectionID) {
	if st.has(key) {
		return
	}
	st.order = append(st.order, key)
	st.ids[key] = ids
}

func (st *selectionState) remove(key string) {
	if !st.has(key) {
		return
	}
	delete(st.ids, key)
	for i, k := range st.order {
		if k == key {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
}

func (st *selectionState) clear() {
	st.order = nil
	st.ids = make(map[string][]host.SelectionID)
}

// flatten combines every checked key's identity list, in the order the keys
// were added.
func (st *selectionState) flatten() []host.SelectionID {
	var out []host.SelectionID
	for _, key := range st.order {
		out = append(out, st.ids[key]...)
	}
	return out
}

// Slicer is the interactive measure-value slicer visual. It is constructed
// once, receives Update on every data or viewport change, and owns the
// user's selection for the lifetime of the instance. selected is the single
// source of truth; the rendered checkbox states are a pure projection of it.
type Slicer struct {
	ctx       context.Context
	selection host.SelectionManager

	vm       ViewModel
	viewport host.Viewport
	selected *selectionState

	cursor int
	offset int

	// seq tags outgoing selection requests so confirmations arriving out of
	// order can be recognized and stale ones dropped.
	seq       uint64
	confirmed uint64
}

var _ host.Visual = (*Slicer)(nil)

func New(ctx context.Context, selection host.SelectionManager) *Slicer {
	return &Slicer{
		ctx:       ctx,
		selection: selection,
		vm:        ViewModel{Grouping: NewGrouping(), Settings: defaultSettings()},
	}
}

// Update is the host-driven refresh: rebuild the view model from scratch,
// clamp the cursor into the new row set, and — while the selection is still
// uninitialized — seed it from the configured default value when that value
// exists in the fresh grouping. Seeding happens at most once per instance;
// once any selection exists, even one the user cleared to empty, later
// updates never re-apply the default.
//
// The returned command, when non-nil, carries the seeded default to the
// selection service.
func (s *Slicer) Update(opts host.UpdateOptions) tea.Cmd {
	s.viewport = opts.Viewport
	s.vm = BuildViewModel(opts.DataView, opts.Objects, s.identities())
	s.clampCursor()

	if s.selected != nil {
		return nil
	}
	def := s.vm.Settings.DefaultSelection
	if def == "" || !s.vm.Grouping.Has(def) {
		return nil
	}
	s.selected = newSelectionState()
	s.selected.add(def, s.vm.Grouping.IDs(def))
	return s.dispatch()
}

// identities picks the identity builder for this update cycle. The selection
// manager doubles as the builder when it can mint identities (the reference
// host does); otherwise a standalone deterministic builder keeps the view
// model buildable in isolation.
func (s *Slicer) identities() host.IdentityBuilder {
	if b, ok := s.selection.(host.IdentityBuilder); ok {
		return b
	}
	return host.NewIdentityBuilder()
}

// Toggle flips the checkbox under the cursor. Without the additive modifier
// a newly checked key replaces the whole selection; with it the key joins
// the selection. A key that is already checked is unchecked either way.
// The selection state mutates synchronously; the returned command carries
// the resulting request to the selection service.
func (s *Slicer) Toggle(additive bool) tea.Cmd {
	keys := s.vm.Grouping.Keys()
	if s.cursor < 0 || s.cursor >= len(keys) {
		return nil
	}
	key := keys[s.cursor]

	if s.selected == nil {
		s.selected = newSelectionState()
	}
	switch {
	case s.selected.has(key):
		s.selected.remove(key)
	default:
		if !additive {
			s.selected.clear()
		}
		s.selected.add(key, s.vm.Grouping.IDs(key))
	}
	return s.dispatch()
}

// dispatch issues the current combined selection to the host. An empty
// combined list clears the filter rather than selecting nothing.
func (s *Slicer) dispatch() tea.Cmd {
	s.seq++
	seq := s.seq
	ids := s.selected.flatten()
	ctx := s.ctx
	selection := s.selection

	if len(ids) == 0 {
		return func() tea.Msg {
			err := selection.Clear(ctx)
			return AppliedMsg{Seq: seq, Cleared: true, Err: err}
		}
	}
	return func() tea.Msg {
		applied, err := selection.Select(ctx, ids)
		return AppliedMsg{Seq: seq, Applied: applied, Err: err}
	}
}

// Applied consumes a selection confirmation. It reports whether the
// confirmation was the latest issued request; stale completions from
// superseded requests are ignored so they cannot roll the view back to an
// outdated selection.
func (s *Slicer) Applied(msg AppliedMsg) bool {
	if msg.Seq != s.seq || msg.Seq <= s.confirmed {
		return false
	}
	s.confirmed = msg.Seq
	return true
}

// CursorUp moves the cursor one row up, scrolling as needed.
func (s *Slicer) CursorUp() {
	if s.cursor > 0 {
		s.cursor--
	}
	s.clampCursor()
}

// CursorDown moves the cursor one row down, scrolling as needed.
func (s *Slicer) CursorDown() {
	if s.cursor < s.vm.Grouping.Len()-1 {
		s.cursor++
	}
	s.clampCursor()
}

func (s *Slicer) clampCursor() {
	n := s.vm.Grouping.Len()
	if n == 0 {
		s.cursor = 0
		s.offset = 0
		return
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	visible := s.visibleRows()
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}
	maxOffset := n - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// EnumerateObjects returns the effective properties for one object group, a
// pure read of the last-applied settings. Unrecognized group names yield an
// empty list.
func (s *Slicer) EnumerateObjects(object string) []host.Property {
	if object != ObjectGeneral {
		return []host.Property{}
	}
	return []host.Property{
		{Name: "textSize", Value: s.vm.Settings.TextSize},
		{Name: "defaultSelectionValue", Value: s.vm.Settings.DefaultSelection},
	}
}

// IsChecked reports whether key is in the current selection. An
// uninitialized selection checks nothing.
func (s *Slicer) IsChecked(key string) bool {
	return s.selected != nil && s.selected.has(key)
}

// SelectedKeys returns the checked measure values in the order they were
// added, or nil while the selection is uninitialized.
func (s *Slicer) SelectedKeys() []string {
	if s.selected == nil {
		return nil
	}
	out := make([]string, len(s.selected.order))
	copy(out, s.selected.order)
	return out
}

// Keys exposes the distinct measure values currently displayed.
func (s *Slicer) Keys() []string { return s.vm.Grouping.Keys() }

// Settings returns the settings resolved by the last update.
func (s *Slicer) Settings() Settings { return s.vm.Settings }
