package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/monsterdex/monsterdex/internal/monster"
)

func press(a *App, keys ...KeyEvent) Result {
	res := Continue
	for _, k := range keys {
		res = a.HandleKey(k)
	}
	return res
}

func openBrowser(t *testing.T, records []monster.Record) *App {
	t.Helper()
	a := New(newDataset(t, records))
	press(a, Special(tea.KeyEnter))
	if a.Screen != ScreenMonster {
		t.Fatalf("Enter on main menu opened %v, want Monster", a.Screen)
	}
	return a
}

func TestHandleKey_ListWraparound(t *testing.T) {
	a := openBrowser(t, named("A", "B", "C"))

	press(a, Special(tea.KeyDown), Runes("j"))
	if got := selectedName(a.Browser); got != "C" {
		t.Fatalf("after two downs = %q, want C", got)
	}

	press(a, Special(tea.KeyDown))
	if got := selectedName(a.Browser); got != "A" {
		t.Errorf("after wrap = %q, want A", got)
	}

	press(a, Runes("k"))
	if got := selectedName(a.Browser); got != "C" {
		t.Errorf("up from first = %q, want C", got)
	}
}

func TestHandleKey_FilterThenCancel(t *testing.T) {
	a := openBrowser(t, named("A", "B", "C"))

	press(a, Runes("/"))
	if a.Mode != ModeEditing {
		t.Fatalf("'/' mode = %v, want editing", a.Mode)
	}

	press(a, Runes("b"))
	items := a.Browser.List.Items()
	if len(items) != 1 || items[0].Name.Name != "B" {
		t.Fatalf("filter 'b' view = %d items, want [B]", len(items))
	}
	if index, ok := a.Browser.List.Cursor.Index(); !ok || index != 0 {
		t.Errorf("filter 'b' index = (%d, %v), want (0, true)", index, ok)
	}
	if got := selectedName(a.Browser); got != "B" {
		t.Errorf("filter 'b' Current() = %q, want B", got)
	}

	press(a, Special(tea.KeyEsc))
	if a.Mode != ModeNormal || a.Screen != ScreenMonster {
		t.Errorf("Esc while editing = (%v, %v), want (normal, Monster)", a.Mode, a.Screen)
	}
	if a.Browser.List.Len() != 3 || a.Input.Value() != "" {
		t.Errorf("Esc while editing view = %d items input %q, want 3 and empty", a.Browser.List.Len(), a.Input.Value())
	}
	if got := selectedName(a.Browser); got != "A" {
		t.Errorf("Esc while editing Current() = %q, want A", got)
	}
}

func TestHandleKey_EditingKeysAreText(t *testing.T) {
	a := openBrowser(t, named("Rathalos", "Rathian", "Diablos"))

	// q, j and 4 are commands in normal mode but text while editing.
	res := press(a, Runes("/"), Runes("q"), Runes("j"), Runes("4"))
	if res != Continue {
		t.Fatalf("typing q while editing exited")
	}
	if got := a.Input.Value(); got != "qj4" {
		t.Errorf("Input.Value() = %q, want qj4", got)
	}
	if a.Browser.Weakness.Tab != TabWeapon {
		t.Errorf("typing 4 toggled the weakness tab")
	}
}

func TestHandleKey_CommitKeepsFilter(t *testing.T) {
	a := openBrowser(t, named("Rathalos", "Rathian", "Diablos"))

	press(a, Runes("/"), Runes("r"), Runes("a"), Runes("t"), Special(tea.KeyBackspace), Runes("t"), Runes("h"))
	press(a, Special(tea.KeyEnter))

	if a.Mode != ModeNormal {
		t.Errorf("Enter while editing mode = %v, want normal", a.Mode)
	}
	if a.Browser.List.Query() != "rath" || a.Browser.List.Len() != 2 {
		t.Errorf("Enter while editing query = %q len %d, want rath and 2", a.Browser.List.Query(), a.Browser.List.Len())
	}

	press(a, Runes("j"))
	if got := selectedName(a.Browser); got != "Rathian" {
		t.Errorf("down in filtered view = %q, want Rathian", got)
	}
	press(a, Runes("j"))
	if got := selectedName(a.Browser); got != "Rathalos" {
		t.Errorf("wrap in filtered view = %q, want Rathalos", got)
	}
}

func TestHandleKey_FilterResetsPanels(t *testing.T) {
	a := openBrowser(t, []monster.Record{richRecord(1, "Rathalos"), richRecord(2, "Rathian")})
	press(a, Runes("4"), Runes("%"), Runes("n"))

	press(a, Runes("/"), Runes("r"))

	b := a.Browser
	if b.Weakness.Tab != TabWeapon || b.Drops.Rank != monster.LowRank || rowIndex(b.Quests) != 0 {
		t.Errorf("typing did not reset panels: tab %v rank %v quest %d", b.Weakness.Tab, b.Drops.Rank, rowIndex(b.Quests))
	}
}

func TestHandleKey_DropCursorScenario(t *testing.T) {
	a := openBrowser(t, []monster.Record{richRecord(1, "Rathalos")})
	drops := &a.Browser.Drops

	press(a, Runes("5"))
	if drops.Source != monster.SourceBrokenPart || drops.Rows.Count() != 5 {
		t.Fatalf("'5' = %v with %d rows, want broken part with 5", drops.Source, drops.Rows.Count())
	}

	for i := 0; i < 5; i++ {
		press(a, Runes("m"))
	}
	if got := rowIndex(drops.Rows); got != 0 {
		t.Errorf("5 x next drop row = %d, want 0", got)
	}

	press(a, Runes("m"), Runes("m"), Runes("m"))
	press(a, Runes("%"))
	if got := rowIndex(drops.Rows); got != 0 {
		t.Errorf("'%%' mid-cycle row = %d, want 0", got)
	}
	if drops.Rows.Count() != 3 {
		t.Errorf("'%%' row count = %d, want 3", drops.Rows.Count())
	}
}

func TestHandleKey_MonsterTabs(t *testing.T) {
	a := openBrowser(t, []monster.Record{richRecord(1, "Rathalos")})
	b := a.Browser

	press(a, Runes("w"), Runes("w"), Runes("4"))
	if b.Weakness.Tab != TabElement || rowIndex(b.Weakness.Rows) != 0 {
		t.Errorf("'4' = tab %v row %d, want Element and 0", b.Weakness.Tab, rowIndex(b.Weakness.Rows))
	}

	press(a, Runes("W"), Runes("$"))
	if b.Weakness.Ailment != TabItem || rowIndex(b.Weakness.Rows) != 0 {
		t.Errorf("'$' = tab %v row %d, want Item and 0", b.Weakness.Ailment, rowIndex(b.Weakness.Rows))
	}
}

func TestHandleKey_PanelNavigation(t *testing.T) {
	a := openBrowser(t, []monster.Record{richRecord(1, "Rathalos")})
	b := a.Browser
	b.Description.SetHeight(5)

	press(a, Runes("J"), Runes("J"), Runes("J"), Runes("J"), Runes("K"))
	if b.Description.Offset != 2 {
		t.Errorf("description offset = %d, want 2", b.Description.Offset)
	}

	press(a, Runes("l"), Special(tea.KeyRight), Runes("l"))
	if b.Habitats.Current() != 0 {
		t.Errorf("3 x next habitat of 3 = %d, want 0", b.Habitats.Current())
	}
	press(a, Runes("h"))
	if b.Habitats.Current() != 2 {
		t.Errorf("prev habitat from first = %d, want 2", b.Habitats.Current())
	}

	press(a, Runes("N"))
	if got := rowIndex(b.Quests); got != 3 {
		t.Errorf("prev quest from first = %d, want 3", got)
	}
}

func TestHandleKey_EscReturnsToMain(t *testing.T) {
	a := openBrowser(t, named("A", "B", "C"))
	press(a, Runes("/"), Runes("c"), Special(tea.KeyEnter))

	press(a, Special(tea.KeyEsc))
	if a.Screen != ScreenMain {
		t.Fatalf("Esc screen = %v, want Main", a.Screen)
	}
	if a.Browser.List.Query() != "" || a.Browser.List.Len() != 3 {
		t.Errorf("Esc left filter %q", a.Browser.List.Query())
	}

	// Re-entering starts from reset panels.
	press(a, Special(tea.KeyEnter))
	if a.Screen != ScreenMonster || a.Browser.Weakness.Tab != TabWeapon {
		t.Errorf("re-enter = %v tab %v", a.Screen, a.Browser.Weakness.Tab)
	}
}

func TestHandleKey_ResetSelectsFirst(t *testing.T) {
	tests := []struct {
		name string
		keys []KeyEvent
		mode InputMode
	}{
		{"esc then reopen", []KeyEvent{Special(tea.KeyEsc), Special(tea.KeyEnter)}, ModeNormal},
		{"cancel empty search", []KeyEvent{Runes("/"), Special(tea.KeyEsc)}, ModeNormal},
		{"caret movement while editing", []KeyEvent{Runes("/"), Special(tea.KeyLeft)}, ModeEditing},
		{"home while editing", []KeyEvent{Runes("/"), Special(tea.KeyHome)}, ModeEditing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := openBrowser(t, []monster.Record{richRecord(1, "A"), richRecord(2, "B"), richRecord(3, "C")})
			press(a, Special(tea.KeyDown), Special(tea.KeyDown), Runes("4"), Runes("%"), Runes("n"))
			if got := selectedName(a.Browser); got != "C" {
				t.Fatalf("after two downs = %q, want C", got)
			}

			press(a, tt.keys...)

			b := a.Browser
			if a.Screen != ScreenMonster || a.Mode != tt.mode {
				t.Errorf("state = (%v, %v), want (Monster, %v)", a.Screen, a.Mode, tt.mode)
			}
			if got := selectedName(b); got != "A" {
				t.Errorf("Current() = %q, want A", got)
			}
			if index, ok := b.List.Cursor.Index(); !ok || index != 0 {
				t.Errorf("index = (%d, %v), want (0, true)", index, ok)
			}
			if b.Weakness.Tab != TabWeapon || b.Drops.Rank != monster.LowRank || rowIndex(b.Quests) != 0 {
				t.Errorf("panels not reset: tab %v rank %v quest %d", b.Weakness.Tab, b.Drops.Rank, rowIndex(b.Quests))
			}
		})
	}
}

func TestHandleKey_Main(t *testing.T) {
	tests := []struct {
		name       string
		keys       []KeyEvent
		wantMenu   MenuOption
		wantScreen Screen
		wantResult Result
	}{
		{"down", []KeyEvent{Runes("j")}, MenuQuest, ScreenMain, Continue},
		{"up wraps", []KeyEvent{Special(tea.KeyUp)}, MenuArmor, ScreenMain, Continue},
		{"full cycle", []KeyEvent{Runes("j"), Runes("j"), Runes("j"), Runes("j")}, MenuMonster, ScreenMain, Continue},
		{"open weapon", []KeyEvent{Runes("j"), Runes("j"), Special(tea.KeyEnter)}, MenuWeapon, ScreenWeapon, Continue},
		{"quit", []KeyEvent{Runes("q")}, MenuMonster, ScreenMain, Exit},
		{"ctrl chord ignored", []KeyEvent{Special(tea.KeyCtrlC)}, MenuMonster, ScreenMain, Continue},
		{"ctrl j ignored", []KeyEvent{Special(tea.KeyCtrlJ)}, MenuMonster, ScreenMain, Continue},
		{"unknown key ignored", []KeyEvent{Runes("x")}, MenuMonster, ScreenMain, Continue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(newDataset(t, named("A")))
			res := press(a, tt.keys...)
			if res != tt.wantResult {
				t.Errorf("HandleKey() = %v, want %v", res, tt.wantResult)
			}
			if a.Menu != tt.wantMenu || a.Screen != tt.wantScreen {
				t.Errorf("HandleKey() menu %v screen %v, want %v %v", a.Menu, a.Screen, tt.wantMenu, tt.wantScreen)
			}
		})
	}
}

func TestHandleKey_UnavailableScreens(t *testing.T) {
	a := New(newDataset(t, named("A")))
	press(a, Runes("k"), Special(tea.KeyEnter))
	if a.Screen != ScreenArmor || a.Screen.Available() {
		t.Fatalf("screen = %v, want unavailable Armor", a.Screen)
	}

	press(a, Runes("j"), Runes("/"), Runes("4"))
	if a.Screen != ScreenArmor || a.Mode != ModeNormal {
		t.Errorf("keys on unavailable screen changed state: %v %v", a.Screen, a.Mode)
	}

	press(a, Special(tea.KeyEsc))
	if a.Screen != ScreenMain {
		t.Errorf("Esc on unavailable screen = %v, want Main", a.Screen)
	}

	press(a, Special(tea.KeyEnter))
	if res := press(a, Runes("q")); res != Exit {
		t.Errorf("q on unavailable screen = %v, want Exit", res)
	}
}

func TestHandleKey_QuitFromBrowser(t *testing.T) {
	a := openBrowser(t, named("A"))
	if res := press(a, Runes("q")); res != Exit {
		t.Errorf("q = %v, want Exit", res)
	}
}

func TestHandleKey_IgnoresRelease(t *testing.T) {
	a := openBrowser(t, named("A", "B"))
	ev := Runes("j")
	ev.Kind = KeyRelease
	press(a, ev)
	if got := selectedName(a.Browser); got != "A" {
		t.Errorf("release moved selection to %q", got)
	}

	ev.Kind = KeyRepeat
	press(a, ev)
	if got := selectedName(a.Browser); got != "B" {
		t.Errorf("repeat did not move selection, got %q", got)
	}
}

func TestHandleKey_EmptyFilterNavigation(t *testing.T) {
	a := openBrowser(t, []monster.Record{richRecord(1, "Rathalos")})
	press(a, Runes("/"), Runes("z"), Special(tea.KeyEnter))

	res := press(a, Runes("j"), Runes("k"), Runes("4"), Runes("$"), Runes("5"), Runes("%"),
		Runes("J"), Runes("l"), Runes("n"), Runes("w"), Runes("m"))
	if res != Continue {
		t.Fatalf("navigation on empty view = %v", res)
	}
	if a.Browser.HasSelection() {
		t.Errorf("navigation on empty view selected a record")
	}
}

func TestHelpKeys(t *testing.T) {
	a := New(newDataset(t, named("A")))
	if _, ok := a.HelpKeys().(MenuHelp); !ok {
		t.Errorf("HelpKeys() on main = %T, want MenuHelp", a.HelpKeys())
	}
	press(a, Special(tea.KeyEnter))
	if _, ok := a.HelpKeys().(BrowserHelp); !ok {
		t.Errorf("HelpKeys() on monster = %T, want BrowserHelp", a.HelpKeys())
	}
	press(a, Runes("/"))
	if _, ok := a.HelpKeys().(EditingHelp); !ok {
		t.Errorf("HelpKeys() while editing = %T, want EditingHelp", a.HelpKeys())
	}
}
