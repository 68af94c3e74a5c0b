package core

// EvaluateClick removes the region containing cell if it has more than one member.
// The region is taken from the cell's position and colour. Removed cells are
// returned in discovery order and keep their pre-removal coordinates.
// An isolated cell, an absent position or an out-of-bounds position leaves the
// grid untouched and returns nothing.
func (g *Grid) EvaluateClick(cell *Cell) []*Cell {
	if cell == nil || g.At(cell.X, cell.Y) == nil {
		return nil
	}

	region := g.findRegion(cell.X, cell.Y, cell.Colour)
	if len(region) <= 1 {
		return nil
	}

	removed := g.cellsAt(region)
	for _, p := range region {
		g.cols[p.x][p.y] = nil
	}
	return removed
}

// Compact lets every column settle toward y = 0, keeping the relative order
// of its cells, and rewrites each cell's Y. It returns one Relocation for
// every cell whose Y changed, column by column in ascending order.
func (g *Grid) Compact() []Relocation {
	var moved []Relocation

	for x, col := range g.cols {
		write := 0
		for _, c := range col {
			if c == nil {
				continue
			}
			if c.Y != write {
				moved = append(moved, Relocation{X: x, FromY: c.Y, ToY: write})
			}
			c.Y = write
			col[write] = c
			write++
		}
		for y := write; y < len(col); y++ {
			col[y] = nil
		}
	}

	return moved
}

// HandleSelection runs one complete selection: evaluate, remove, notify,
// compact. r receives CellRemoved for each removed cell (pre-removal position)
// followed by CellRelocated for each cell moved by compaction; it may be nil.
//
// Selecting a cell that is no longer live at its position (for example one
// removed by an earlier selection) is a no-op.
func (g *Grid) HandleSelection(cell *Cell, r Renderer) []*Cell {
	if cell == nil || g.At(cell.X, cell.Y) != cell {
		return nil
	}

	removed := g.EvaluateClick(cell)
	if r != nil {
		for _, c := range removed {
			r.CellRemoved(c.X, c.Y)
		}
	}

	moved := g.Compact()
	if r != nil {
		for _, m := range moved {
			r.CellRelocated(m.X, m.FromY, m.ToY)
		}
	}

	return removed
}
