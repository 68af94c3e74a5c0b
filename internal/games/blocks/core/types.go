// Package core provides the grid engine for the Blocks puzzle.
// This package is UI-agnostic and deterministic: it holds grid state, finds
// same-colour regions and compacts columns, and reports what changed through
// the Renderer interface. It never draws anything itself.
package core

import "errors"

// Construction errors.
var (
	ErrInvalidSize     = errors.New("grid dimensions must be positive")
	ErrEmptyPalette    = errors.New("palette has no colours")
	ErrUnknownColour   = errors.New("unknown colour")
	ErrDuplicateColour = errors.New("duplicate colour")
	ErrRaggedRows      = errors.New("rows have different lengths")
)

// Cell is a coloured block. X is the column and Y the row within the column,
// with Y = 0 at the end the column settles toward.
// While a cell is live in a Grid, the grid stores it at (X, Y).
type Cell struct {
	X      int
	Y      int
	Colour Colour
}

// NewCell creates a cell at (x, y).
func NewCell(x, y int, c Colour) *Cell {
	return &Cell{X: x, Y: y, Colour: c}
}

// Relocation describes a cell moved within its column by compaction.
type Relocation struct {
	X     int
	FromY int
	ToY   int
}

// Renderer is notified of grid changes made by HandleSelection.
type Renderer interface {
	// CellRemoved is called once per removed cell with its position before removal.
	CellRemoved(x, y int)
	// CellRelocated is called once per cell moved down its column by compaction.
	CellRelocated(x, fromY, toY int)
}

// RendererFuncs adapts plain functions to the Renderer interface.
// Nil fields are ignored.
type RendererFuncs struct {
	Removed   func(x, y int)
	Relocated func(x, fromY, toY int)
}

// CellRemoved implements Renderer.
func (f RendererFuncs) CellRemoved(x, y int) {
	if f.Removed != nil {
		f.Removed(x, y)
	}
}

// CellRelocated implements Renderer.
func (f RendererFuncs) CellRelocated(x, fromY, toY int) {
	if f.Relocated != nil {
		f.Relocated(x, fromY, toY)
	}
}
