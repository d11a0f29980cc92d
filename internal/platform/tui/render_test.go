package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/torus-snake/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.Paint(2, 0, '█', core.RGB(0x33, 0xcc, 0x33))
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "█", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestStyleForCaches(t *testing.T) {
	cache := make(map[core.Color]lipgloss.Style)

	styleFor(cache, core.Color{})
	styleFor(cache, core.RGB(1, 2, 3))
	styleFor(cache, core.RGB(1, 2, 3))
	translucent := core.Color{R: 0xff, A: 0x80}
	styleFor(cache, translucent)

	if len(cache) != 3 {
		t.Errorf("cache has %d styles, want 3", len(cache))
	}
	for _, c := range []core.Color{{}, translucent} {
		if _, ok := cache[c].GetForeground().(lipgloss.NoColor); !ok {
			t.Errorf("%+v should keep the default foreground", c)
		}
	}
	if fg, ok := cache[core.RGB(1, 2, 3)].GetForeground().(lipgloss.Color); !ok || fg != "#010203" {
		t.Errorf("opaque color foreground = %v, want #010203", cache[core.RGB(1, 2, 3)].GetForeground())
	}
}
