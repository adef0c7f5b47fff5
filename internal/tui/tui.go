package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/monsterdex/monsterdex/internal/logging"
	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/state"
	"github.com/monsterdex/monsterdex/internal/telemetry"
	"github.com/monsterdex/monsterdex/internal/version"
)

// messageTTL is how long a status message replaces the key hints.
const messageTTL = 3 * time.Second

// Model adapts the application state to bubbletea. All navigation lives in
// state.App; the model owns only what concerns the terminal.
type Model struct {
	app      *state.App
	dataset  *monster.Dataset
	iconsDir string

	width       int
	height      int
	ready       bool
	showHelp    bool
	message     string
	messageTime time.Time
	isError     bool

	help help.Model
}

// New creates a TUI model over ds. iconsDir may be empty.
func New(ds *monster.Dataset, iconsDir string) Model {
	return Model{
		app:      state.New(ds),
		dataset:  ds,
		iconsDir: iconsDir,
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("monsterdex")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width - 1
		m.syncExtents()

	case tea.KeyMsg:
		if time.Since(m.messageTime) > messageTTL {
			m.message = ""
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, state.Keys.Help, state.Keys.Back, state.Keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.app.Mode == state.ModeNormal {
		switch {
		case key.Matches(msg, state.Keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, state.Keys.Copy) && m.app.Screen == state.ScreenMonster:
			m.copyName()
			return m, nil
		}
	}

	before := m.app.Screen
	if m.app.HandleKey(state.FromMsg(msg)) == state.Exit {
		return m, tea.Quit
	}
	if after := m.app.Screen; after != before {
		logging.Logger.Debug("screen changed", "from", before.String(), "to", after.String())
		telemetry.TUIScreenOpen(after.String())
	}
	m.syncExtents()

	return m, nil
}

func (m *Model) copyName() {
	m.messageTime = time.Now()
	if !m.app.Browser.HasSelection() {
		m.message = "No monster selected"
		m.isError = true
		return
	}

	name := m.app.Browser.Current().Name.Name
	if err := clipboard.WriteAll(name); err != nil {
		logging.Logger.Warn("clipboard write failed", "error", err)
		m.message = "Failed to copy: " + err.Error()
		m.isError = true
		return
	}
	telemetry.TUIActionExecute("copy_name")
	m.message = name + " copied to clipboard"
	m.isError = false
}

// syncExtents reports the current panel geometry back to the state so that
// scrolling is clamped against what is actually on screen.
func (m *Model) syncExtents() {
	if !m.ready {
		return
	}
	l := newLayout(m.width, m.height)
	b := m.app.Browser

	lines := len(descriptionLines(b.Current(), l.descWidth()))
	if lines > l.descLines() {
		b.Description.SetHeight(lines)
	} else {
		b.Description.SetHeight(0)
	}
	b.Description.Clamp()

	b.List.Cursor.SetVisibleRows(l.listRows())
	b.Quests.SetVisibleRows(l.questRows())
	b.Weakness.Rows.SetVisibleRows(l.damageRows())
	b.Drops.Rows.SetVisibleRows(l.dropRows())
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", minWidth, minHeight, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, errorStyle.Render(msg))
	}

	var body string
	switch {
	case m.app.Screen == state.ScreenMain:
		body = m.renderMenu()
	case m.app.Screen == state.ScreenMonster:
		body = m.renderMonster()
	default:
		body = m.renderUnavailable()
	}

	view := body + "\n" + m.renderStatusBar()
	if m.showHelp {
		view = m.renderHelpModal(view)
	}
	return view
}

func (m Model) renderMenu() string {
	title := titleStyle.Render("M O N S T E R D E X")
	sub := mutedStyle.Render(fmt.Sprintf("%d monsters · %s", m.dataset.Len(), version.Version))

	items := make([]string, 0, len(state.MenuOptions))
	for _, opt := range state.MenuOptions {
		if opt == m.app.Menu {
			items = append(items, menuSelectedStyle.Render("▸ "+opt.String()))
			continue
		}
		items = append(items, menuItemStyle.Render("  "+opt.String()))
	}

	box := lipgloss.JoinVertical(lipgloss.Center,
		title,
		sub,
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
	)
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderUnavailable() string {
	content := dialogTitleStyle.Render(m.app.Screen.String()) + "\n\n" +
		"This screen is not yet available."
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, dialogStyle.Render(content))
}

func (m Model) renderStatusBar() string {
	var content string
	if m.message != "" && time.Since(m.messageTime) < messageTTL {
		style := successStyle
		if m.isError {
			style = errorStyle
		}
		content = " " + style.Render(m.message)
	} else {
		content = " " + m.help.View(m.app.HelpKeys())
	}
	return statusBarStyle.Render(FitToWidth(content, m.width))
}

func (m Model) renderHelpModal(background string) string {
	keys := m.app.HelpKeys()
	content := dialogTitleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		m.help.FullHelpView(keys.FullHelp()) + "\n\n" +
		mutedStyle.Render("press esc or ? to close")
	modal := dialogStyle.Render(content)

	x := (m.width - lipgloss.Width(modal)) / 2
	y := (m.height - lipgloss.Height(modal)) / 2
	return placeOverlay(max(x, 0), max(y, 0), modal, background)
}

// Start runs the TUI over ds until the user quits.
func Start(ds *monster.Dataset, iconsDir string) error {
	telemetry.TUISessionStart(ds.Len())
	defer telemetry.TUISessionEnd()

	logging.Logger.Info("tui session started", "monsters", ds.Len(), "icons", iconsDir)

	p := tea.NewProgram(New(ds, iconsDir), tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		telemetry.Error(err, "surface", "tui")
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
