package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Key
		ok     bool
		isQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true, false},
		{"w", runeKey('w'), core.KeyW, true, false},
		{"a", runeKey('a'), core.KeyA, true, false},
		{"s", runeKey('s'), core.KeyS, true, false},
		{"d", runeKey('d'), core.KeyD, true, false},
		{"p", runeKey('p'), core.KeyPause, true, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyPause, true, false},
		{"r", runeKey('r'), core.KeyReset, true, false},
		{"q", runeKey('q'), core.KeyUnknown, false, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyUnknown, false, true},
		{"unbound", runeKey('x'), core.KeyUnknown, false, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, isQuit := km.MapKey(tt.msg)
			if ok != tt.ok || isQuit != tt.isQuit {
				t.Fatalf("MapKey() ok=%v quit=%v, want ok=%v quit=%v", ok, isQuit, tt.ok, tt.isQuit)
			}
			if !ok {
				return
			}
			if ev.Key != tt.want {
				t.Errorf("MapKey() key = %v, want %v", ev.Key, tt.want)
			}
			if ev.State != core.Press {
				t.Errorf("MapKey() state = %v, want press", ev.State)
			}
		})
	}
}

func TestKeyMapperReboundKeys(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Up = key.NewBinding(key.WithKeys("k", "up"))
	keys.Down = key.NewBinding(key.WithKeys("j"))
	keys.Left = key.NewBinding(key.WithKeys("h", "s"))
	km := NewKeyMapper(keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"k steers up", runeKey('k'), core.KeyUp},
		{"arrow still steers up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"j steers down", runeKey('j'), core.KeyDown},
		{"h steers left", runeKey('h'), core.KeyLeft},
		{"s rebound to left", runeKey('s'), core.KeyLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, _ := km.MapKey(tt.msg)
			if !ok {
				t.Fatalf("MapKey(%q) dropped a bound key", tt.msg.String())
			}
			if ev.Key != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), ev.Key, tt.want)
			}
		})
	}

	if _, ok, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyDown}); ok {
		t.Error("unbound arrow should be dropped")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if got := len(keys.ShortHelp()); got != 7 {
		t.Errorf("ShortHelp() has %d bindings, want 7", got)
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() has %d bindings, want 8", total)
	}
}
