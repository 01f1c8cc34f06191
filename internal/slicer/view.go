package slicer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c2e7")).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// View renders the checkbox rows as a pure projection of the grouping and
// the current selection. It is recomputed on every frame; nothing is ever
// read back out of previously rendered output.
func (s *Slicer) View(width int) string {
	keys := s.vm.Grouping.Keys()
	if len(keys) == 0 {
		return emptyStyle.Render("No values to slice yet.")
	}

	visible := s.visibleRows()
	end := s.offset + visible
	if end > len(keys) {
		end = len(keys)
	}

	gap := ""
	if s.rowStep() > 1 {
		gap = "\n"
	}

	var b strings.Builder
	for i := s.offset; i < end; i++ {
		key := keys[i]
		prefix := "  "
		if i == s.cursor {
			prefix = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if s.IsChecked(key) {
			check = checkedStyle.Render("[x]")
		}
		label := key
		if label == "" {
			label = emptyStyle.Render("(empty)")
		} else {
			label = labelStyle.Render(ansi.Truncate(label, max(1, width-6), "…"))
		}
		if i > s.offset {
			b.WriteString(gap)
			b.WriteString("\n")
		}
		b.WriteString(prefix + check + " " + label)
	}
	return b.String()
}

// visibleRows derives how many checkbox rows fit in the viewport the host
// pinned the container to.
func (s *Slicer) visibleRows() int {
	h := s.viewport.Height
	if h <= 0 {
		return 10
	}
	rows := h / s.rowStep()
	if rows < 1 {
		rows = 1
	}
	return rows
}

// rowStep maps the text size in points onto terminal cells: large sizes get
// a blank spacer line per row, the closest a cell grid comes to taller rows.
func (s *Slicer) rowStep() int {
	if s.vm.Settings.TextSize >= 16 {
		return 2
	}
	return 1
}

// ScrollStatus describes the window position for a pane title, e.g. "3-8/21".
func (s *Slicer) ScrollStatus() (first, last, total int) {
	total = s.vm.Grouping.Len()
	if total == 0 {
		return 0, 0, 0
	}
	first = s.offset + 1
	last = s.offset + s.visibleRows()
	if last > total {
		last = total
	}
	return first, last, total
}
