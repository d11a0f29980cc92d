package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// Load returns the build-time configuration from the embedded YAML.
// If the document fails to decode or validate, the hardcoded defaults are
// returned together with the error so the caller can report it.
func Load() (SnakeConfig, error) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("config: embedded defaults rejected: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document, validates it and resolves its colors.
func Parse(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	palette, err := cfg.Colors.Resolve()
	if err != nil {
		return cfg, err
	}
	cfg.Palette = palette
	return cfg, nil
}

// Validate checks every constraint and reports all violations at once.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("config: grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Render.EdgeBuffer < 0 {
		errs = append(errs, fmt.Errorf("config: edge_buffer must not be negative, got %d", c.Render.EdgeBuffer))
	}
	if c.Render.CellSize <= 2*c.Render.EdgeBuffer {
		errs = append(errs, fmt.Errorf("config: cell_size %d leaves no room inside edge_buffer %d",
			c.Render.CellSize, c.Render.EdgeBuffer))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: tick_interval must be positive, got %v", c.Timing.TickInterval))
	}
	if !c.inGrid(c.Start.Head) {
		errs = append(errs, fmt.Errorf("config: start head %+v outside grid", c.Start.Head))
	}
	if !c.inGrid(c.Start.Food) {
		errs = append(errs, fmt.Errorf("config: start food %+v outside grid", c.Start.Food))
	}
	if c.Start.Head == c.Start.Food {
		errs = append(errs, errors.New("config: start head and food share a cell"))
	}
	if _, err := c.Colors.Resolve(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c SnakeConfig) inGrid(p Cell) bool {
	return p.X >= 0 && p.X < c.Grid.Width && p.Y >= 0 && p.Y < c.Grid.Height
}

// Resolve converts the hex strings into RGBA colors.
func (c ColorsConfig) Resolve() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = parseHex("background", c.Background); err != nil {
		return p, err
	}
	if p.Snake, err = parseHex("snake", c.Snake); err != nil {
		return p, err
	}
	if p.Food, err = parseHex("food", c.Food); err != nil {
		return p, err
	}
	return p, nil
}

func parseHex(name, s string) (core.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("config: color %s %q: %w", name, s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

// Marshal encodes the config back to YAML.
func Marshal(c SnakeConfig) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return out, nil
}
