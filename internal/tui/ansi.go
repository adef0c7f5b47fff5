// ansi.go - ANSI-aware text fitting for panel content and icon art

package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// cursorSequenceRegex matches cursor movement and screen control sequences.
// Icon art exported from terminal drawing tools often carries them, and they
// would move the cursor out of the panel the icon is drawn in.
var cursorSequenceRegex = regexp.MustCompile(
	`\x1b\[` +
		`(?:` +
		`\d*[ABCDEFGH]` + // up/down/forward/back/next line/prev line/column/position
		`|\d*;\d*[Hf]` + // row;col
		`|[suKJ]` + // save/restore, erase
		`|\d*[KJ]` +
		`|\?(?:25[hl]|\d+[hl])` + // private modes
		`)`,
)

// StripCursorSequences removes cursor movement and erase sequences while
// keeping color codes.
func StripCursorSequences(s string) string {
	return cursorSequenceRegex.ReplaceAllString(s, "")
}

// FitToWidth pads or truncates s to exactly width cells. Color codes survive
// both.
func FitToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// FitCellContent is FitToWidth for table cells: overlong text ends in an
// ellipsis.
func FitCellContent(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		if width <= 1 {
			return "…"
		}
		return ansi.Truncate(s, width-1, "") + "…"
	}
	return FitToWidth(s, width)
}

// WrapLines word-wraps s to width and returns the resulting lines. Words
// longer than width are cut hard.
func WrapLines(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wordwrap.String(s, width)
	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		line = strings.TrimRight(line, " ")
		for lipgloss.Width(line) > width {
			lines = append(lines, ansi.Truncate(line, width, ""))
			line = truncateLeft(line, width)
		}
		lines = append(lines, line)
	}
	return lines
}

// placeOverlay draws fg on top of bg with its top left corner at (x, y).
func placeOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fgLine := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}

		bgLine := bgLines[row]
		var b strings.Builder

		if x > 0 {
			left := ansi.Truncate(bgLine, x, "")
			b.WriteString(left)
			if w := ansi.StringWidth(left); w < x {
				b.WriteString(strings.Repeat(" ", x-w))
			}
		}

		b.WriteString(fgLine)

		if rest := x + ansi.StringWidth(fgLine); rest < ansi.StringWidth(bgLine) {
			b.WriteString(truncateLeft(bgLine, rest))
		}

		bgLines[row] = b.String()
	}

	return strings.Join(bgLines, "\n")
}

// truncateLeft drops the first n cells of s, keeping escape sequences that
// follow the cut.
func truncateLeft(s string, n int) string {
	if n <= 0 {
		return s
	}

	var out, esc strings.Builder
	width := 0
	inEscape := false

	for _, r := range s {
		if inEscape {
			esc.WriteRune(r)
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
				if width >= n {
					out.WriteString(esc.String())
				}
				esc.Reset()
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			esc.WriteRune(r)
			continue
		}

		cw := 1
		if r > 127 {
			cw = ansi.StringWidth(string(r))
		}
		if width >= n {
			out.WriteRune(r)
		}
		width += cw
	}

	return out.String()
}
