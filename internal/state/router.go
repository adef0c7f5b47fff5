package state

import "github.com/charmbracelet/bubbles/key"

// Result tells the event loop whether to keep running.
type Result uint8

const (
	Continue Result = iota
	Exit
)

// HandleKey applies one key event to the state. Every derived length is
// refreshed before it returns.
func (a *App) HandleKey(ev KeyEvent) Result {
	if ev.Kind == KeyRelease {
		return Continue
	}

	if a.Mode == ModeEditing {
		a.handleEditing(ev)
		return Continue
	}

	switch a.Screen {
	case ScreenMain:
		return a.handleMain(ev)
	case ScreenMonster:
		return a.handleMonster(ev)
	default:
		return a.handleUnavailable(ev)
	}
}

func (a *App) handleEditing(ev KeyEvent) {
	switch {
	case key.Matches(ev, Keys.Cancel):
		a.Reset()
	case key.Matches(ev, Keys.Commit):
		a.CommitFilter()
	default:
		a.Input, _ = a.Input.Update(ev.Msg())
		a.Browser.SetFilter(a.Input.Value())
	}
}

func (a *App) handleMain(ev KeyEvent) Result {
	// Control chords are reserved on the menu.
	if ev.Ctrl() {
		return Continue
	}

	switch {
	case key.Matches(ev, Keys.Quit):
		return Exit
	case key.Matches(ev, Keys.Down):
		a.Menu = a.Menu.Next()
	case key.Matches(ev, Keys.Up):
		a.Menu = a.Menu.Prev()
	case key.Matches(ev, Keys.Enter):
		a.Open()
	}
	return Continue
}

func (a *App) handleMonster(ev KeyEvent) Result {
	b := a.Browser

	switch {
	case key.Matches(ev, Keys.Quit):
		return Exit
	case key.Matches(ev, Keys.Down):
		b.Next()
	case key.Matches(ev, Keys.Up):
		b.Prev()
	case key.Matches(ev, Keys.ToggleDamage):
		b.Weakness.ToggleTab()
	case key.Matches(ev, Keys.ToggleAilment):
		b.Weakness.ToggleAilment()
	case key.Matches(ev, Keys.ToggleSource):
		b.Drops.ToggleSource()
	case key.Matches(ev, Keys.ToggleRank):
		b.Drops.ToggleRank()
	case key.Matches(ev, Keys.Filter):
		a.BeginFilter()
	case key.Matches(ev, Keys.Back):
		a.Reset()
		a.Screen = ScreenMain
	case key.Matches(ev, Keys.DescDown):
		b.Description.ScrollDown()
	case key.Matches(ev, Keys.DescUp):
		b.Description.ScrollUp()
	case key.Matches(ev, Keys.HabitatNext):
		b.Habitats.Next()
	case key.Matches(ev, Keys.HabitatPrev):
		b.Habitats.Prev()
	case key.Matches(ev, Keys.QuestNext):
		b.Quests.Next()
	case key.Matches(ev, Keys.QuestPrev):
		b.Quests.Prev()
	case key.Matches(ev, Keys.WeaknessNext):
		b.Weakness.Rows.Next()
	case key.Matches(ev, Keys.WeaknessPrev):
		b.Weakness.Rows.Prev()
	case key.Matches(ev, Keys.DropNext):
		b.Drops.Rows.Next()
	case key.Matches(ev, Keys.DropPrev):
		b.Drops.Rows.Prev()
	}
	return Continue
}

func (a *App) handleUnavailable(ev KeyEvent) Result {
	switch {
	case key.Matches(ev, Keys.Quit):
		return Exit
	case key.Matches(ev, Keys.Back):
		a.Reset()
		a.Screen = ScreenMain
	}
	return Continue
}
