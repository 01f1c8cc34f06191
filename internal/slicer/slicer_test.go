package slicer

import (
	"context"
	"strings"
	"testing"

	"github.com/tmarchant/vslice/internal/host"
)

// fakeSelection records what the visual asks the selection service to do.
type fakeSelection struct {
	selects [][]host.SelectionID
	clears  int
}

func (f *fakeSelection) Select(_ context.Context, ids []host.SelectionID) ([]host.SelectionID, error) {
	f.selects = append(f.selects, ids)
	return ids, nil
}

func (f *fakeSelection) Clear(_ context.Context) error {
	f.clears++
	return nil
}

func testOptions(categories []string, values []any, objects host.ObjectMap) host.UpdateOptions {
	return host.UpdateOptions{
		DataView: sliceView(categories, values),
		Viewport: host.Viewport{Width: 40, Height: 10},
		Objects:  objects,
	}
}

func newTestSlicer(t *testing.T) (*Slicer, *fakeSelection) {
	t.Helper()
	sel := &fakeSelection{}
	return New(context.Background(), sel), sel
}

func TestToggleReplacesExistingSelection(t *testing.T) {
	s, sel := newTestSlicer(t)
	s.Update(testOptions([]string{"a", "b", "c"}, []any{"one", "two", "one"}, nil))

	if cmd := s.Toggle(false); cmd == nil {
		t.Fatal("expected a selection command")
	} else {
		cmd()
	}
	s.CursorDown()
	if cmd := s.Toggle(false); cmd == nil {
		t.Fatal("expected a selection command")
	} else {
		cmd()
	}

	keys := s.SelectedKeys()
	if len(keys) != 1 || keys[0] != "two" {
		t.Fatalf("expected selection to be replaced by %q, got %q", "two", keys)
	}
	if len(sel.selects) != 2 {
		t.Fatalf("expected 2 select calls, got %d", len(sel.selects))
	}
	// Second request carries only the replacement key's single identity.
	if len(sel.selects[1]) != 1 {
		t.Fatalf("expected 1 identity in replacement request, got %d", len(sel.selects[1]))
	}
}

func TestAdditiveToggleUnionsInOrder(t *testing.T) {
	s, sel := newTestSlicer(t)
	s.Update(testOptions([]string{"a", "b", "c"}, []any{"one", "two", "one"}, nil))

	s.Toggle(false)()
	s.CursorDown()
	s.Toggle(true)()

	keys := s.SelectedKeys()
	if len(keys) != 2 || keys[0] != "one" || keys[1] != "two" {
		t.Fatalf("expected selection [one two], got %q", keys)
	}
	// "one" groups two rows, "two" one row; the combined request flattens
	// them in the order the keys were added.
	last := sel.selects[len(sel.selects)-1]
	if len(last) != 3 {
		t.Fatalf("expected 3 identities in combined request, got %d", len(last))
	}
	ids := s.vm.Grouping.IDs("one")
	if last[0] != ids[0] || last[1] != ids[1] {
		t.Fatal("combined request does not start with the first key's identities")
	}
}

func TestToggleSelectedKeyDeselectsAndClears(t *testing.T) {
	s, sel := newTestSlicer(t)
	s.Update(testOptions([]string{"a", "b"}, []any{"one", "two"}, nil))

	s.Toggle(false)()
	if msg := s.Toggle(false)(); msg == nil {
		t.Fatal("expected a clear command result")
	} else if applied, ok := msg.(AppliedMsg); !ok || !applied.Cleared {
		t.Fatalf("expected clear confirmation, got %#v", msg)
	}

	if keys := s.SelectedKeys(); len(keys) != 0 {
		t.Fatalf("expected empty selection, got %q", keys)
	}
	if sel.clears != 1 {
		t.Fatalf("expected the filter to be cleared once, got %d", sel.clears)
	}
	// Deselecting the last key clears; it must not select an empty list.
	for _, req := range sel.selects {
		if len(req) == 0 {
			t.Fatal("empty select request issued instead of clear")
		}
	}
}

func TestDeselectIgnoresAdditiveModifier(t *testing.T) {
	s, sel := newTestSlicer(t)
	s.Update(testOptions([]string{"a", "b"}, []any{"one", "two"}, nil))

	s.Toggle(false)()
	s.Toggle(true)()

	if keys := s.SelectedKeys(); len(keys) != 0 {
		t.Fatalf("additive toggle on a selected key must deselect, got %q", keys)
	}
	if sel.clears != 1 {
		t.Fatalf("expected clear after deselect, got %d clears", sel.clears)
	}
}

func TestDefaultSelectionSeedsExactlyOnce(t *testing.T) {
	s, sel := newTestSlicer(t)
	objects := host.ObjectMap{
		ObjectGeneral: host.Properties{"defaultSelectionValue": "two"},
	}

	cmd := s.Update(testOptions([]string{"a", "b"}, []any{"one", "two"}, objects))
	if cmd == nil {
		t.Fatal("expected the default selection to be dispatched")
	}
	cmd()
	if keys := s.SelectedKeys(); len(keys) != 1 || keys[0] != "two" {
		t.Fatalf("expected seeded selection [two], got %q", keys)
	}
	if len(sel.selects) != 1 {
		t.Fatalf("expected 1 select call, got %d", len(sel.selects))
	}

	// The user clears everything; the selection is now initialized-but-empty.
	s.CursorDown()
	s.Toggle(false)()

	// Later refreshes never re-apply the default, even though the key is
	// still present in the fresh grouping.
	if cmd := s.Update(testOptions([]string{"a", "b"}, []any{"one", "two"}, objects)); cmd != nil {
		t.Fatal("default selection must not re-seed after user interaction")
	}
	if keys := s.SelectedKeys(); len(keys) != 0 {
		t.Fatalf("expected selection to stay empty, got %q", keys)
	}
}

func TestDefaultSelectionSkippedWhenKeyAbsent(t *testing.T) {
	s, _ := newTestSlicer(t)
	objects := host.ObjectMap{
		ObjectGeneral: host.Properties{"defaultSelectionValue": "missing"},
	}
	if cmd := s.Update(testOptions([]string{"a"}, []any{"one"}, objects)); cmd != nil {
		t.Fatal("absent default key must not seed a selection")
	}
	if s.SelectedKeys() != nil {
		t.Fatal("selection should remain uninitialized")
	}

	// The selection stayed unset, so a later update where the key does
	// exist may still seed it.
	if cmd := s.Update(testOptions([]string{"a", "b"}, []any{"one", "missing"}, objects)); cmd == nil {
		t.Fatal("expected seeding once the default key appears")
	}
}

func TestStaleConfirmationIgnored(t *testing.T) {
	s, _ := newTestSlicer(t)
	s.Update(testOptions([]string{"a", "b"}, []any{"one", "two"}, nil))

	first := s.Toggle(false)().(AppliedMsg)
	s.CursorDown()
	second := s.Toggle(true)().(AppliedMsg)

	// Completions arrive out of order: the newer request's confirmation
	// lands first, then the superseded one trickles in.
	if !s.Applied(second) {
		t.Fatal("latest confirmation must be accepted")
	}
	if s.Applied(first) {
		t.Fatal("stale confirmation must be ignored")
	}
	// Replays of an already-consumed confirmation are also ignored.
	if s.Applied(second) {
		t.Fatal("duplicate confirmation must be ignored")
	}
}

func TestEnumerateObjects(t *testing.T) {
	s, _ := newTestSlicer(t)
	objects := host.ObjectMap{
		ObjectGeneral: host.Properties{"textSize": "14", "defaultSelectionValue": "x"},
	}
	s.Update(testOptions([]string{"a"}, []any{"x"}, objects))

	props := s.EnumerateObjects(ObjectGeneral)
	got := make(map[string]any, len(props))
	for _, p := range props {
		got[p.Name] = p.Value
	}
	if got["textSize"] != 14.0 {
		t.Fatalf("expected textSize 14, got %v", got["textSize"])
	}
	if got["defaultSelectionValue"] != "x" {
		t.Fatalf("expected default %q, got %v", "x", got["defaultSelectionValue"])
	}

	if props := s.EnumerateObjects("styling"); len(props) != 0 {
		t.Fatalf("unknown object group must enumerate empty, got %v", props)
	}
}

func TestViewProjectsSelection(t *testing.T) {
	s, _ := newTestSlicer(t)
	s.Update(testOptions([]string{"a", "b", "c"}, []any{"one", "two", ""}, nil))

	// The view renders exactly the displayed keys, in grouping order.
	if got := s.Keys(); len(got) != 3 || got[0] != "one" || got[1] != "two" || got[2] != "" {
		t.Fatalf("expected displayed keys [one two \"\"], got %q", got)
	}

	out := s.View(40)
	if want := "[ ] one"; !contains(out, want) {
		t.Fatalf("expected %q in view:\n%s", want, out)
	}

	s.Toggle(false)()
	out = s.View(40)
	if !contains(out, "[x]") {
		t.Fatalf("expected a checked row after toggle:\n%s", out)
	}
	// The empty-string key renders as a placeholder row, not nothing.
	if !contains(out, "(empty)") {
		t.Fatalf("expected empty-string key to render:\n%s", out)
	}
}

func TestViewScrollsWithCursor(t *testing.T) {
	s, _ := newTestSlicer(t)
	categories := make([]string, 30)
	values := make([]any, 30)
	for i := range categories {
		categories[i] = string(rune('a' + i))
		values[i] = float64(i)
	}
	opts := testOptions(categories, values, nil)
	opts.Viewport.Height = 5
	s.Update(opts)

	for i := 0; i < 12; i++ {
		s.CursorDown()
	}
	first, last, total := s.ScrollStatus()
	if total != 30 {
		t.Fatalf("expected 30 rows, got %d", total)
	}
	if first == 1 {
		t.Fatal("expected the window to have scrolled")
	}
	if last-first+1 != 5 {
		t.Fatalf("expected a 5-row window, got %d-%d", first, last)
	}
	if !contains(s.View(40), "12") {
		t.Fatalf("expected cursor row value visible:\n%s", s.View(40))
	}
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }
