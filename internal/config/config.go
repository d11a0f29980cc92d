// Package config provides the build-time constants for the snake game.
// The constants live in an embedded YAML document so they can be read and
// reviewed in one place, but they are not runtime-configurable.
package config

import "github.com/vovakirdan/torus-snake/internal/core"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Render RenderConfig `yaml:"render"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
	Colors ColorsConfig `yaml:"colors"`

	// Palette holds Colors resolved to RGBA. Filled by Parse.
	Palette Palette `yaml:"-"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines pixel geometry for the render projector.
type RenderConfig struct {
	CellSize   int `yaml:"cell_size"`
	EdgeBuffer int `yaml:"edge_buffer"`
}

// TimingConfig defines the simulation rate.
type TimingConfig struct {
	TickInterval float64 `yaml:"tick_interval"` // Seconds between simulation steps
}

// Cell is a grid coordinate as written in YAML.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// StartConfig defines the positions used at game start and after reset.
type StartConfig struct {
	Head Cell `yaml:"head"`
	Food Cell `yaml:"food"`
}

// ColorsConfig holds hex color strings ("#rrggbb").
type ColorsConfig struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Food       string `yaml:"food"`
}

// Palette is ColorsConfig resolved to RGBA values.
type Palette struct {
	Background core.Color
	Snake      core.Color
	Food       core.Color
}
