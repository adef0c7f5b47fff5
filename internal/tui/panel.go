package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPanel draws content inside a rounded border whose top edge carries
// the panel's key tag and title: ╭─[tag]─title──╮. An empty tag is omitted.
// Content lines are cut or padded to the inner area.
func renderPanel(tag, title, content string, width, height int, active bool) string {
	if width < 4 || height < 2 {
		return ""
	}

	borderColor := colorBlue
	if active {
		borderColor = primaryColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	label := lipgloss.NewStyle().Foreground(borderColor).Bold(active)

	tl, tr, bl, br := "╭", "╮", "╰", "╯"
	h, v := "─", "│"

	var heading string
	if tag != "" {
		heading = label.Render("["+tag+"]") + border.Render(h)
	}
	heading += label.Render(title)
	heading = ansiFit(heading, width-3)

	fill := width - 3 - lipgloss.Width(heading)
	if fill < 0 {
		fill = 0
	}
	top := border.Render(tl+h) + heading + border.Render(strings.Repeat(h, fill)+tr)
	bottom := border.Render(bl + strings.Repeat(h, width-2) + br)
	side := border.Render(v)

	innerWidth := width - 4
	innerHeight := height - 2

	lines := strings.Split(content, "\n")
	rows := make([]string, 0, innerHeight)
	for i := 0; i < innerHeight; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, side+" "+FitToWidth(line, innerWidth)+" "+side)
	}

	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}

// ansiFit truncates s to width cells without padding it.
func ansiFit(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return FitToWidth(s, width)
}
