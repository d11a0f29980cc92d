package config

import (
	_ "embed"

	"github.com/vovakirdan/torus-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded configuration. It mirrors
// defaults/snake.yaml and is used when the embedded document cannot be read.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 18,
		},
		Render: RenderConfig{
			CellSize:   20,
			EdgeBuffer: 2,
		},
		Timing: TimingConfig{
			TickInterval: 0.25,
		},
		Start: StartConfig{
			Head: Cell{X: 5, Y: 9},
			Food: Cell{X: 20, Y: 9},
		},
		Colors: ColorsConfig{
			Background: "#1a1a1a",
			Snake:      "#33cc33",
			Food:       "#e63946",
		},
		Palette: Palette{
			Background: core.RGB(0x1a, 0x1a, 0x1a),
			Snake:      core.RGB(0x33, 0xcc, 0x33),
			Food:       core.RGB(0xe6, 0x39, 0x46),
		},
	}
}
