package core

import (
	"fmt"
	"math/rand"
)

// Grid is a width x height board of optional cells.
// Storage is column-major: cols[x][y], nil meaning absent.
type Grid struct {
	width  int
	height int
	cols   [][]*Cell
}

// New creates a grid filled with cells whose colours are drawn
// uniformly from palette.
func New(width, height int, palette Palette, rng *rand.Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("blocks: %dx%d: %w", width, height, ErrInvalidSize)
	}
	if err := palette.Validate(); err != nil {
		return nil, fmt.Errorf("blocks: %w", err)
	}

	cols := make([][]*Cell, width)
	for x := range width {
		col := make([]*Cell, height)
		for y := range height {
			col[y] = NewCell(x, y, palette.Random(rng))
		}
		cols[x] = col
	}

	return &Grid{width: width, height: height, cols: cols}, nil
}

// FromColumns adopts cols as the grid contents without copying or validation.
// Width is len(cols) and height is the length of the first column.
func FromColumns(cols [][]*Cell) *Grid {
	g := &Grid{width: len(cols), cols: cols}
	if len(cols) > 0 {
		g.height = len(cols[0])
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y), or nil if absent or out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cols[x][y]
}

// Columns returns a snapshot of the column slices.
// The cells themselves are shared with the grid and must not be modified.
func (g *Grid) Columns() [][]*Cell {
	out := make([][]*Cell, g.width)
	for x, col := range g.cols {
		out[x] = append([]*Cell(nil), col...)
	}
	return out
}

// Remaining returns the number of live cells.
func (g *Grid) Remaining() int {
	n := 0
	for _, col := range g.cols {
		for _, c := range col {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether every position is absent.
func (g *Grid) IsEmpty() bool {
	return g.Remaining() == 0
}
