package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type pane struct {
	title   string
	content string
	focused bool
}

// render draws a titled, bordered pane at exactly width x height cells.
func (p pane) render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := colorOverlay0
	if p.focused {
		border = colorFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	paneTitleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	titleText := " " + strings.TrimSpace(p.title) + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(strings.TrimSpace(p.title), max(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		paneTitleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	v := borderStyle.Render("│")
	var lines []string
	if strings.TrimSpace(p.content) != "" {
		lines = strings.Split(p.content, "\n")
	}

	innerHeight := height - 2
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰")+borderStyle.Render(strings.Repeat("─", innerWidth))+borderStyle.Render("╯"))

	return strings.Join(rows, "\n")
}

// padRight pads s with spaces to the given display width, ANSI-aware.
func padRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
