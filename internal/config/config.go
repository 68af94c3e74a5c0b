// Package config provides YAML-based configuration loading for the
// Blocks puzzle.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidGrid      = errors.New("grid width and height must be positive")
	ErrEmptyPalette     = errors.New("palette must list at least one colour")
	ErrInvalidCellWidth = errors.New("cell width must be at least 1")
)

// BlocksConfig contains all configuration for the Blocks puzzle.
type BlocksConfig struct {
	Grid    GridConfig   `yaml:"grid"`
	Palette []string     `yaml:"palette"`
	Render  RenderConfig `yaml:"render"`
}

// GridConfig defines the size of a randomly generated board.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines how blocks are drawn in the terminal.
type RenderConfig struct {
	CellWidth int  `yaml:"cell_width"` // Terminal columns per block
	ShowHUD   bool `yaml:"show_hud"`
}

// Validate checks the config for values the game cannot use.
// Colour names are checked by the game when it builds its palette.
func (c BlocksConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid %dx%d: %w", c.Grid.Width, c.Grid.Height, ErrInvalidGrid)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("config: %w", ErrEmptyPalette)
	}
	if c.Render.CellWidth < 1 {
		return fmt.Errorf("config: cell width %d: %w", c.Render.CellWidth, ErrInvalidCellWidth)
	}
	return nil
}
