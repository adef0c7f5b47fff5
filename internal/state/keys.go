package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Enter         key.Binding
	Quit          key.Binding
	Back          key.Binding
	Filter        key.Binding
	ToggleDamage  key.Binding
	ToggleAilment key.Binding
	ToggleSource  key.Binding
	ToggleRank    key.Binding
	DescDown      key.Binding
	DescUp        key.Binding
	HabitatNext   key.Binding
	HabitatPrev   key.Binding
	QuestNext     key.Binding
	QuestPrev     key.Binding
	WeaknessNext  key.Binding
	WeaknessPrev  key.Binding
	DropNext      key.Binding
	DropPrev      key.Binding
	Copy          key.Binding
	Help          key.Binding
	Commit        key.Binding
	Cancel        key.Binding
}

// Keys is the key map shared by the router and the help bar.
var Keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ToggleDamage: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "weapon/element"),
	),
	ToggleAilment: key.NewBinding(
		key.WithKeys("$"),
		key.WithHelp("$", "ailment/item"),
	),
	ToggleSource: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "drop source"),
	),
	ToggleRank: key.NewBinding(
		key.WithKeys("%"),
		key.WithHelp("%", "rank"),
	),
	DescDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J/K", "scroll description"),
	),
	DescUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "scroll description up"),
	),
	HabitatNext: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("h/l", "habitat page"),
	),
	HabitatPrev: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "previous habitat"),
	),
	QuestNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n/N", "quest"),
	),
	QuestPrev: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous quest"),
	),
	WeaknessNext: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w/W", "weakness row"),
	),
	WeaknessPrev: key.NewBinding(
		key.WithKeys("W"),
		key.WithHelp("W", "previous weakness row"),
	),
	DropNext: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m/M", "drop row"),
	),
	DropPrev: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "previous drop row"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy name"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// MenuHelp is the help key map for the main menu.
type MenuHelp struct{}

func (MenuHelp) ShortHelp() []key.Binding {
	return []key.Binding{Keys.Up, Keys.Down, Keys.Enter, Keys.Quit}
}

func (h MenuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// BrowserHelp is the help key map for the monster screen.
type BrowserHelp struct{}

func (BrowserHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		Keys.Up, Keys.Down, Keys.Filter, Keys.ToggleDamage, Keys.ToggleAilment,
		Keys.ToggleSource, Keys.ToggleRank, Keys.Back, Keys.Quit, Keys.Help,
	}
}

func (BrowserHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Keys.Up, Keys.Down, Keys.Filter, Keys.Back, Keys.Quit},
		{Keys.ToggleDamage, Keys.ToggleAilment, Keys.ToggleSource, Keys.ToggleRank},
		{Keys.DescDown, Keys.HabitatNext, Keys.QuestNext, Keys.WeaknessNext, Keys.DropNext},
		{Keys.Copy, Keys.Help},
	}
}

// EditingHelp is the help key map while typing a search.
type EditingHelp struct{}

func (EditingHelp) ShortHelp() []key.Binding {
	return []key.Binding{Keys.Commit, Keys.Cancel}
}

func (h EditingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// PlaceholderHelp is the help key map for screens that are not available.
type PlaceholderHelp struct{}

func (PlaceholderHelp) ShortHelp() []key.Binding {
	return []key.Binding{Keys.Back, Keys.Quit}
}

func (h PlaceholderHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
