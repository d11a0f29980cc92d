package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// styleFor returns the lipgloss style for a cell color. Colors that are not
// opaque use the terminal's default foreground.
func styleFor(cache map[core.Color]lipgloss.Style, c core.Color) lipgloss.Style {
	if style, ok := cache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if c.Opaque() {
		style = style.Foreground(lipgloss.Color(c.Hex()))
	}
	cache[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(styles, startColor).Render(run.String()))
		}
	}
	return sb.String()
}
