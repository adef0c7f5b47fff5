package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/state"
)

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	ds, err := monster.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	m := New(ds, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

func send(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestViewBeforeSize(t *testing.T) {
	ds, err := monster.Default()
	if err != nil {
		t.Fatal(err)
	}
	if got := New(ds, "").View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestMenuView(t *testing.T) {
	m := newTestModel(t, 120, 40)
	view := m.View()
	for _, want := range []string{"Monster", "Quest", "Weapon", "Armor", "6 monsters"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
	if got := lipgloss.Height(view); got != 40 {
		t.Errorf("menu view height = %d, want 40", got)
	}
}

func TestOpenMonsterScreen(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m, _ = send(t, m, enter)

	if m.app.Screen != state.ScreenMonster {
		t.Fatalf("screen = %v, want Monster", m.app.Screen)
	}
	view := m.View()
	for _, want := range []string{"Rathalos", "Basic Info", "Monsters 6/6", "Low Rank"} {
		if !strings.Contains(view, want) {
			t.Errorf("monster view missing %q", want)
		}
	}
	if got := lipgloss.Height(view); got != 40 {
		t.Errorf("monster view height = %d, want 40", got)
	}
	for i, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 120 {
			t.Errorf("line %d is %d wide", i, w)
		}
	}
}

func TestMonsterNavigationRenders(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m, _ = send(t, m, enter, runes("j"))

	if name := m.app.Browser.Current().Name.Name; name != "Rathian" {
		t.Fatalf("after j selected %q, want Rathian", name)
	}
	if !strings.Contains(m.View(), "Rathian") {
		t.Error("view does not show the selected monster")
	}

	// Every panel toggle must still render.
	m, _ = send(t, m, runes("4"), runes("$"), runes("5"), runes("%"), runes("n"), runes("w"), runes("m"), runes("l"))
	view := m.View()
	for _, want := range []string{"Element", "Item", "High Rank", "Broken Part"} {
		if !strings.Contains(view, want) {
			t.Errorf("toggled view missing %q", want)
		}
	}
}

func TestFilterWithNoMatches(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m, _ = send(t, m, enter, runes("/"), runes("z"), runes("z"), runes("z"))

	if m.app.Mode != state.ModeEditing {
		t.Fatalf("mode = %v, want editing", m.app.Mode)
	}
	if m.app.Browser.HasSelection() {
		t.Fatal("empty filter result should clear the selection")
	}
	view := m.View()
	if !strings.Contains(view, "No matches") {
		t.Error("view should say the list has no matches")
	}

	// Navigation keys on an empty view are harmless.
	m, _ = send(t, m, enter, runes("j"), runes("k"), runes("n"), runes("m"), runes("J"))
	_ = m.View()

	m, _ = send(t, m, esc)
	if m.app.Screen != state.ScreenMain {
		t.Errorf("esc from monster screen went to %v", m.app.Screen)
	}
}

func TestUnavailableScreen(t *testing.T) {
	m := newTestModel(t, 100, 30)
	m, _ = send(t, m, runes("j"), enter)

	if m.app.Screen != state.ScreenQuest {
		t.Fatalf("screen = %v, want Quest", m.app.Screen)
	}
	if !strings.Contains(m.View(), "not yet available") {
		t.Error("quest screen should be a placeholder")
	}

	m, _ = send(t, m, esc)
	if m.app.Screen != state.ScreenMain {
		t.Errorf("esc went to %v, want Main", m.app.Screen)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 100, 30)
	_, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command = %T, want tea.QuitMsg", cmd())
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m, _ = send(t, m, enter, runes("?"))

	if !m.showHelp {
		t.Fatal("? should open the help overlay")
	}
	if !strings.Contains(m.View(), "press esc or ? to close") {
		t.Error("help overlay not drawn")
	}

	// Keys are swallowed while help is open.
	m, _ = send(t, m, runes("j"))
	if name := m.app.Browser.Current().Name.Name; name != "Rathalos" {
		t.Errorf("key leaked through help overlay: selected %q", name)
	}

	m, _ = send(t, m, esc)
	if m.showHelp || m.app.Screen != state.ScreenMonster {
		t.Errorf("esc should only close help: showHelp=%v screen=%v", m.showHelp, m.app.Screen)
	}
}

func TestQuestionMarkWhileEditingIsText(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m, _ = send(t, m, enter, runes("/"), runes("?"))
	if m.showHelp {
		t.Error("? while editing should not open help")
	}
	if got := m.app.Input.Value(); got != "?" {
		t.Errorf("input = %q, want ?", got)
	}
}

func TestCopyWithoutSelection(t *testing.T) {
	m := newTestModel(t, 120, 40)
	m, _ = send(t, m, enter, runes("/"), runes("q"), runes("q"), enter, runes("y"))

	if !m.isError || m.message != "No monster selected" {
		t.Errorf("copy with empty view: message %q isError %v", m.message, m.isError)
	}
}

func TestSyncExtents(t *testing.T) {
	m := newTestModel(t, 120, 40)
	l := newLayout(120, 40)
	b := m.app.Browser

	if got := b.List.Cursor.VisibleRows; got != l.listRows() {
		t.Errorf("list visible rows = %d, want %d", got, l.listRows())
	}

	// A narrow terminal wraps the description further, so it must scroll.
	m = newTestModel(t, 80, 24)
	l = newLayout(80, 24)
	lines := len(descriptionLines(m.app.Browser.Current(), l.descWidth()))
	if lines > l.descLines() && m.app.Browser.Description.Height() != lines {
		t.Errorf("description height = %d, want %d", m.app.Browser.Description.Height(), lines)
	}
}

func TestTerminalTooSmall(t *testing.T) {
	m := newTestModel(t, 40, 10)
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal should show a size notice")
	}
}

func TestLayoutFillsTerminal(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {120, 40}, {200, 60}, {97, 31}} {
		l := newLayout(size[0], size[1])
		if got := l.leftWidth + l.rightWidth + l.listWidth; got != size[0] {
			t.Errorf("%v: widths sum to %d", size, got)
		}
		if got := l.nameHeight + l.descHeight; got != l.body {
			t.Errorf("%v: left column is %d tall, want %d", size, got, l.body)
		}
		if got := infoHeight + habitatHeight + l.damageHeight + l.dropsHeight; got != l.body {
			t.Errorf("%v: middle column is %d tall, want %d", size, got, l.body)
		}
		if got := searchHeight + l.listHeight; got != l.body {
			t.Errorf("%v: list column is %d tall, want %d", size, got, l.body)
		}
	}
}

func TestRenderPanel(t *testing.T) {
	out := renderPanel("4", "Weakness", "Head\nTail", 20, 5, true)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("panel has %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
	if !strings.Contains(lines[0], "[4]") || !strings.Contains(lines[0], "Weakness") {
		t.Errorf("top border = %q", lines[0])
	}

	// A title longer than the panel is cut, not wrapped.
	out = renderPanel("", strings.Repeat("x", 50), "", 12, 3, false)
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("long title line width = %d, want 12", w)
		}
	}
}

func TestIconIsDrawn(t *testing.T) {
	ds, err := monster.Default()
	if err != nil {
		t.Fatal(err)
	}
	rec := ds.Records()[0]
	if rec.IconCode == "" {
		t.Skip("first record has no icon code")
	}

	dir := t.TempDir()
	art := "\x1b[2J\x1b[31m/\\_/\\\x1b[0m\n( o.o )\n"
	if err := os.WriteFile(filepath.Join(dir, rec.IconCode), []byte(art), 0o600); err != nil {
		t.Fatal(err)
	}

	m := New(ds, dir)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	m, _ = send(t, m, enter)

	view := m.View()
	if !strings.Contains(view, "( o.o )") {
		t.Error("icon art not drawn")
	}
	if strings.Contains(view, "\x1b[2J") {
		t.Error("screen clear sequence leaked into the view")
	}
}
