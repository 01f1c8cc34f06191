package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmarchant/vslice/internal/database/repository"
	"github.com/tmarchant/vslice/internal/host"
	"github.com/tmarchant/vslice/internal/slicer"
)

const appName = "vslice"

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type snapshotMsg struct {
	snap host.Snapshot
	err  error
}

type propertySavedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type modalState string

const (
	modalNone       modalState = ""
	modalProperties modalState = "properties"
)

// property pane rows, in display order
var propertyNames = []string{"textSize", "defaultSelectionValue"}

// App hosts the slicer visual: it runs the query loop, feeds update cycles
// into the visual, routes key input to it, and reflects the active filter in
// the report pane.
type App struct {
	ctx    context.Context
	svc    *host.Service
	visual *slicer.Slicer

	keys      keyMap
	modalKeys modalKeyMap

	width   int
	height  int
	ready   bool
	status  string
	loading bool

	report   []repository.MeasureRow
	filtered bool
	lastSnap *host.Snapshot

	modal       modalState
	modalCursor int
	editing     bool
	inputBuffer string
}

func New(ctx context.Context, svc *host.Service) *App {
	return &App{
		ctx:       ctx,
		svc:       svc,
		visual:    slicer.New(ctx, svc),
		keys:      newKeyMap(),
		modalKeys: modalKeyMap{keyMap: newKeyMap()},
		status:    "Loading...",
		loading:   true,
	}
}

// Visual exposes the hosted slicer, mainly for tests.
func (a *App) Visual() *slicer.Slicer { return a.visual }

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (a *App) Init() tea.Cmd {
	return a.refreshCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return a, a.handleSnapshot(msg)
	case slicer.AppliedMsg:
		return a, a.handleApplied(msg)
	case propertySavedMsg:
		return a, a.handlePropertySaved(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.lastSnap == nil {
			return a, nil
		}
		// Resize is an update cycle too: same data, new viewport.
		return a, a.visual.Update(a.updateOptions(*a.lastSnap))
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a, a.updateModal(msg)
		}
		return a, a.updateMain(msg)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (a *App) refreshCmd() tea.Cmd {
	ctx, svc := a.ctx, a.svc
	return func() tea.Msg {
		snap, err := svc.Snapshot(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (a *App) handleSnapshot(msg snapshotMsg) tea.Cmd {
	if msg.err != nil {
		a.loading = false
		a.status = fmt.Sprintf("Query error: %v", msg.err)
		return nil
	}
	a.lastSnap = &msg.snap
	a.report = msg.snap.Report
	a.filtered = msg.snap.Filtered
	a.ready = true
	// Replace a pending load status, but keep the last action's outcome
	// ("Filter applied...") when the snapshot is a follow-up re-query.
	if a.loading {
		a.loading = false
		a.status = "Ready. space toggles, a adds, o opens properties."
	}
	return a.visual.Update(a.updateOptions(msg.snap))
}

func (a *App) handleApplied(msg slicer.AppliedMsg) tea.Cmd {
	if msg.Err != nil {
		a.status = fmt.Sprintf("Selection error: %v", msg.Err)
		return nil
	}
	if !a.visual.Applied(msg) {
		// Superseded by a newer request; its own confirmation will follow.
		return nil
	}
	if msg.Cleared {
		a.status = "Filter cleared."
	} else {
		a.status = fmt.Sprintf("Filter applied to %d row(s).", len(msg.Applied))
	}
	return a.refreshCmd()
}

func (a *App) handlePropertySaved(msg propertySavedMsg) tea.Cmd {
	if msg.err != nil {
		a.status = fmt.Sprintf("Save failed: %v", msg.err)
		return nil
	}
	a.status = "Property saved."
	return a.refreshCmd()
}

// ---------------------------------------------------------------------------
// Key-input handlers
// ---------------------------------------------------------------------------

func (a *App) updateMain(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		a.visual.CursorUp()
	case "down", "j":
		a.visual.CursorDown()
	case " ":
		return a.visual.Toggle(false)
	case "a":
		return a.visual.Toggle(true)
	case "o":
		a.modal = modalProperties
		a.modalCursor = 0
		a.editing = false
		a.inputBuffer = ""
	case "r":
		a.status = "Reloading..."
		a.loading = true
		return a.refreshCmd()
	}
	return nil
}

func (a *App) updateModal(msg tea.KeyMsg) tea.Cmd {
	if a.editing {
		return a.updateModalInput(msg)
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		a.modal = modalNone
	case "up", "k":
		if a.modalCursor > 0 {
			a.modalCursor--
		}
	case "down", "j":
		if a.modalCursor < len(propertyNames)-1 {
			a.modalCursor++
		}
	case "enter":
		a.editing = true
		a.inputBuffer = a.currentPropertyValue()
	}
	return nil
}

func (a *App) updateModalInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.editing = false
		a.inputBuffer = ""
	case "enter":
		name := propertyNames[a.modalCursor]
		value := a.inputBuffer
		a.editing = false
		a.inputBuffer = ""
		a.modal = modalNone
		ctx, svc := a.ctx, a.svc
		return func() tea.Msg {
			err := svc.SetProperty(ctx, slicer.ObjectGeneral, name, value)
			return propertySavedMsg{err: err}
		}
	case "backspace":
		if len(a.inputBuffer) > 0 {
			runes := []rune(a.inputBuffer)
			a.inputBuffer = string(runes[:len(runes)-1])
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			a.inputBuffer += string(msg.Runes)
		case tea.KeySpace:
			a.inputBuffer += " "
		}
	}
	return nil
}

// currentPropertyValue reads the effective value for the property under the
// modal cursor out of the visual's enumeration, the same read the host
// property pane performs.
func (a *App) currentPropertyValue() string {
	props := a.visual.EnumerateObjects(slicer.ObjectGeneral)
	name := propertyNames[a.modalCursor]
	for _, p := range props {
		if p.Name == name {
			return fmt.Sprintf("%v", p.Value)
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (a *App) updateOptions(snap host.Snapshot) host.UpdateOptions {
	return host.UpdateOptions{
		DataView: snap.DataView,
		Viewport: a.slicerViewport(),
		Objects:  snap.Objects,
	}
}

// slicerViewport is the drawable area the slicer pane grants the visual.
func (a *App) slicerViewport() host.Viewport {
	w, h := a.slicerPaneSize()
	return host.Viewport{Width: w - 4, Height: h - 2}
}

func (a *App) slicerPaneSize() (width, height int) {
	width = a.width * 2 / 5
	if width < 30 {
		width = 30
	}
	height = a.paneHeight()
	return width, height
}

func (a *App) paneHeight() int {
	// header + gap + status + footer
	h := a.height - 4
	if h < 5 {
		h = 5
	}
	return h
}
