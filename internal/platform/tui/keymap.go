package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// KeyMap defines the key bindings for a snake session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Reset key.Binding
	Quit  key.Binding

	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Reset, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns arrows/WASD for steering, p or space to pause,
// r to reset, ctrl+s for a screenshot and q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// steer reports the letter key when msg is the WASD letter for a
// direction and the arrow key for anything else bound to it.
func steer(msg tea.KeyMsg, arrow core.Key, letter string, letterKey core.Key) core.KeyEvent {
	if msg.String() == letter {
		return core.Pressed(letterKey)
	}
	return core.Pressed(arrow)
}

// KeyMapper translates Bubble Tea key messages to game key events.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message. Terminals only report presses, so every
// event it returns is a press. ok is false for unbound keys; isQuit is true
// for the host's quit binding, which never reaches the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.KeyEvent, ok bool, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyEvent{}, false, true
	case key.Matches(msg, km.keys.Pause):
		return core.Pressed(core.KeyPause), true, false
	case key.Matches(msg, km.keys.Reset):
		return core.Pressed(core.KeyReset), true, false
	case key.Matches(msg, km.keys.Up):
		return steer(msg, core.KeyUp, "w", core.KeyW), true, false
	case key.Matches(msg, km.keys.Down):
		return steer(msg, core.KeyDown, "s", core.KeyS), true, false
	case key.Matches(msg, km.keys.Left):
		return steer(msg, core.KeyLeft, "a", core.KeyA), true, false
	case key.Matches(msg, km.keys.Right):
		return steer(msg, core.KeyRight, "d", core.KeyD), true, false
	}
	return core.KeyEvent{}, false, false
}
