package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmarchant/vslice/internal/database/repository"
	"github.com/tmarchant/vslice/internal/slicer"
)

func (a *App) View() string {
	if !a.ready {
		return statusStyle.Render(a.status)
	}

	header := a.renderHeader()
	body := a.renderPanes()
	statusLine := statusStyle.Render(a.status)
	footer := a.renderFooter()

	if a.modal != modalNone {
		return a.renderModal(header, statusLine, footer)
	}
	return header + "\n" + body + "\n" + statusLine + "\n" + footer
}

func (a *App) renderHeader() string {
	name := titleStyle.Render(appName)
	ds := dimStyle.Render(" · " + a.svc.Dataset().Name)
	return name + ds
}

func (a *App) renderPanes() string {
	slicerW, paneH := a.slicerPaneSize()
	reportW := a.width - slicerW - 1
	if reportW < 20 {
		reportW = 20
	}

	first, last, total := a.visual.ScrollStatus()
	slicerTitle := "Slicer"
	if total > 0 {
		slicerTitle = fmt.Sprintf("Slicer %d-%d/%d", first, last, total)
	}
	left := pane{
		title:   slicerTitle,
		content: a.visual.View(slicerW - 4),
		focused: true,
	}.render(slicerW, paneH)

	reportTitle := "Report"
	if a.filtered {
		reportTitle = "Report (filtered)"
	}
	right := pane{
		title:   reportTitle,
		content: a.renderReport(reportW - 4),
	}.render(reportW, paneH)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (a *App) renderReport(width int) string {
	if len(a.report) == 0 {
		if a.filtered {
			return dimStyle.Render("No rows match the current filter.")
		}
		return dimStyle.Render("No rows in this dataset.")
	}

	catW := 14
	for _, r := range a.report {
		if len(r.Category) > catW {
			catW = len(r.Category)
		}
	}
	if catW > width/2 {
		catW = width / 2
	}

	var b strings.Builder
	for i, r := range a.report {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(padRight(r.Category, catW))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(padRight(formatMeasure(r), 8)))
		if r.Note != "" {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(r.Note))
		}
	}
	return b.String()
}

func formatMeasure(r repository.MeasureRow) string {
	if r.Value == nil {
		return "—"
	}
	return strconv.FormatFloat(*r.Value, 'f', -1, 64)
}

func (a *App) renderFooter() string {
	bindings := a.keys.ShortHelp()
	if a.modal != modalNone {
		bindings = a.modalKeys.ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return footerStyle.Render(strings.Join(parts, " · "))
}

// renderModal draws the property pane: the slicer's enumerated object
// properties with one row editable at a time.
func (a *App) renderModal(header, statusLine, footer string) string {
	props := a.visual.EnumerateObjects(slicer.ObjectGeneral)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Slicer properties"))
	b.WriteString("\n\n")
	for i, name := range propertyNames {
		prefix := "  "
		if i == a.modalCursor {
			prefix = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
		}
		value := ""
		for _, p := range props {
			if p.Name == name {
				value = fmt.Sprintf("%v", p.Value)
			}
		}
		if i == a.modalCursor && a.editing {
			value = a.inputBuffer + "█"
		}
		b.WriteString(prefix + padRight(name, 22) + valueStyle.Render(value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if a.editing {
		b.WriteString(dimStyle.Render("enter saves, esc cancels"))
	} else {
		b.WriteString(dimStyle.Render("enter edits the highlighted property"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFocus).
		Padding(1, 2).
		Render(b.String())

	body := lipgloss.Place(a.width, a.paneHeight(), lipgloss.Center, lipgloss.Center, box)
	return header + "\n" + body + "\n" + statusLine + "\n" + footer
}
