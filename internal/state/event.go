package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyKind distinguishes press, repeat and release events. Terminals that
// cannot report releases only ever produce presses.
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a key plus its kind. It stringifies like tea.Key so it can be
// matched against key bindings directly.
type KeyEvent struct {
	tea.Key
	Kind KeyKind
}

// FromMsg converts a bubbletea key message into a press event.
func FromMsg(msg tea.KeyMsg) KeyEvent {
	return KeyEvent{Key: tea.Key(msg)}
}

// Runes builds a press event for typed text.
func Runes(s string) KeyEvent {
	return KeyEvent{Key: tea.Key{Type: tea.KeyRunes, Runes: []rune(s)}}
}

// Special builds a press event for a non-text key such as tea.KeyEnter.
func Special(t tea.KeyType) KeyEvent {
	return KeyEvent{Key: tea.Key{Type: t}}
}

// Ctrl reports whether the control modifier was held.
func (e KeyEvent) Ctrl() bool {
	return strings.HasPrefix(e.String(), "ctrl+")
}

// Msg converts the event back into a message for bubbles components.
func (e KeyEvent) Msg() tea.KeyMsg {
	return tea.KeyMsg(e.Key)
}
