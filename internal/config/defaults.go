package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration: a 10x10 board
// in the classic red, green, blue and yellow palette.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 10,
		},
		Palette: []string{"red", "green", "blue", "yellow"},
		Render: RenderConfig{
			CellWidth: 2,
			ShowHUD:   true,
		},
	}
}
