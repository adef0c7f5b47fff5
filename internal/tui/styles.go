package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/monsterdex/monsterdex/internal/monster"
)

// Terminal theme colors (ANSI 0-15)
// These adapt to the user's terminal color scheme
var (
	colorBlack   = lipgloss.Color("0")
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorWhite   = lipgloss.Color("7")

	colorBrightBlack   = lipgloss.Color("8")
	colorBrightRed     = lipgloss.Color("9")
	colorBrightMagenta = lipgloss.Color("13")
	colorBrightCyan    = lipgloss.Color("14")

	// Semantic aliases
	primaryColor   = colorYellow
	successColor   = colorGreen
	dangerColor    = colorRed
	highlightColor = colorMagenta
	mutedColor     = colorBrightBlack
	fgColor        = colorWhite

	statusBarStyle = lipgloss.NewStyle().
			Foreground(fgColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Selection uses bright black background
	selectionBg = colorBrightBlack

	selectedStyle = lipgloss.NewStyle().
			Background(selectionBg).
			Foreground(colorWhite).
			Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(highlightColor)

	idSelectedStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Background(selectionBg)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	headerRowStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Underline(true)

	akaStyle = lipgloss.NewStyle().
			Foreground(colorBrightBlack).
			Italic(true)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Padding(0, 2)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(colorBlack).
				Background(primaryColor).
				Bold(true).
				Padding(0, 2)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	effectiveStyle = lipgloss.NewStyle().
			Foreground(successColor)

	ineffectiveStyle = lipgloss.NewStyle().
				Foreground(dangerColor)
)

// elementColors maps each element to the color its name is drawn in.
var elementColors = map[monster.Element]lipgloss.Color{
	monster.ElementFire:    colorRed,
	monster.ElementWater:   colorBlue,
	monster.ElementThunder: colorYellow,
	monster.ElementIce:     colorBrightCyan,
	monster.ElementDragon:  colorBrightRed,
	monster.ElementPoison:  colorBrightMagenta,
}

func elementStyle(e monster.Element) lipgloss.Style {
	c, ok := elementColors[e]
	if !ok {
		return mutedStyle
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

var questColors = map[monster.QuestType]lipgloss.Color{
	monster.QuestAssignments: primaryColor,
	monster.QuestOptional:    colorGreen,
	monster.QuestEvent:       colorMagenta,
	monster.QuestArena:       colorCyan,
}

func questStyle(q monster.QuestType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(questColors[q])
}
