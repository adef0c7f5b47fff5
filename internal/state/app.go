package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/monsterdex/monsterdex/internal/monster"
)

// Screen is the top level view being shown.
type Screen uint8

const (
	ScreenMain Screen = iota
	ScreenMonster
	ScreenQuest
	ScreenWeapon
	ScreenArmor
)

func (s Screen) String() string {
	switch s {
	case ScreenMonster:
		return "Monster"
	case ScreenQuest:
		return "Quest"
	case ScreenWeapon:
		return "Weapon"
	case ScreenArmor:
		return "Armor"
	default:
		return "Main"
	}
}

// Available reports whether the screen has content. The quest, weapon and
// armor screens are reachable but empty.
func (s Screen) Available() bool {
	return s == ScreenMain || s == ScreenMonster
}

// InputMode says whether keys drive navigation or the search box.
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModeEditing
)

func (m InputMode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "normal"
}

// MenuOption is an entry of the main menu.
type MenuOption uint8

const (
	MenuMonster MenuOption = iota
	MenuQuest
	MenuWeapon
	MenuArmor
)

// MenuOptions lists the main menu entries in display order.
var MenuOptions = []MenuOption{MenuMonster, MenuQuest, MenuWeapon, MenuArmor}

func (o MenuOption) Next() MenuOption {
	return (o + 1) % MenuOption(len(MenuOptions))
}

func (o MenuOption) Prev() MenuOption {
	n := MenuOption(len(MenuOptions))
	return (o + n - 1) % n
}

// Screen returns the screen the option opens.
func (o MenuOption) Screen() Screen {
	switch o {
	case MenuQuest:
		return ScreenQuest
	case MenuWeapon:
		return ScreenWeapon
	case MenuArmor:
		return ScreenArmor
	default:
		return ScreenMonster
	}
}

func (o MenuOption) String() string {
	return o.Screen().String()
}

// App is the whole interactive state: which screen and mode are active, the
// main menu highlight, the search box and the monster browser.
type App struct {
	Screen  Screen
	Mode    InputMode
	Menu    MenuOption
	Input   textinput.Model
	Browser *Browser
}

// New returns the initial state over ds: main menu, normal mode, first
// monster selected.
func New(ds *monster.Dataset) *App {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = ""
	ti.CharLimit = 64

	return &App{
		Input:   ti,
		Browser: NewBrowser(ds),
	}
}

// Open enters the screen of the highlighted menu entry.
func (a *App) Open() {
	a.Screen = a.Menu.Screen()
	if a.Screen == ScreenMonster {
		a.Browser.Reset()
	}
}

// BeginFilter switches to editing the search box.
func (a *App) BeginFilter() {
	a.Mode = ModeEditing
	a.Input.Focus()
}

// CommitFilter leaves editing mode keeping the filter.
func (a *App) CommitFilter() {
	a.Mode = ModeNormal
	a.Input.Blur()
}

// Reset returns to normal mode with an empty search box, the unfiltered
// list and every panel at its initial position. The screen is not changed.
func (a *App) Reset() {
	a.Mode = ModeNormal
	a.Input.Reset()
	a.Input.Blur()
	a.Browser.ClearFilter()
	a.Browser.Reset()
}

// HelpKeys returns the bindings relevant to the current screen and mode.
func (a *App) HelpKeys() help.KeyMap {
	switch {
	case a.Mode == ModeEditing:
		return EditingHelp{}
	case a.Screen == ScreenMain:
		return MenuHelp{}
	case a.Screen == ScreenMonster:
		return BrowserHelp{}
	default:
		return PlaceholderHelp{}
	}
}
