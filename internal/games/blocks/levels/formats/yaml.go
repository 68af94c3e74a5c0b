// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// ErrMissingID is returned for level files without an id.
var ErrMissingID = errors.New("level has no id")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Palette  []string          `yaml:"palette,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Palette  core.Palette // Nil when the file does not declare one
	Rows     []string     // Top row first, as in core.ParseRows
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, ErrMissingID
	}

	// Validate the rows up front so a bad fixture fails at load time.
	grid, err := core.ParseRows(yl.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    grid.Width(),
		Height:   grid.Height(),
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	if len(yl.Palette) > 0 {
		palette, err := core.ParsePalette(yl.Palette)
		if err != nil {
			return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
		}
		if err := checkPalette(grid, palette); err != nil {
			return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
		}
		level.Palette = palette
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// checkPalette reports the first block whose colour the palette lacks.
func checkPalette(grid *core.Grid, palette core.Palette) error {
	for x, col := range grid.Columns() {
		for y, cell := range col {
			if cell != nil && !palette.Contains(cell.Colour) {
				return fmt.Errorf("block (%d,%d) colour %s not in palette: %w", x, y, cell.Colour, core.ErrUnknownColour)
			}
		}
	}
	return nil
}
