package core

// neighbours lists the traversal order used by region discovery:
// right, left, up, down.
var neighbours = [4][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// Region returns the cells connected to (x, y) through same-colour
// 4-directional neighbours, in depth-first pre-order. The grid is not modified.
// Returns nil if (x, y) is absent or out of bounds.
func (g *Grid) Region(x, y int) []*Cell {
	start := g.At(x, y)
	if start == nil {
		return nil
	}
	return g.cellsAt(g.findRegion(x, y, start.Colour))
}

// pos is a grid position.
type pos struct {
	x, y int
}

// cellsAt returns the cells stored at the given positions.
func (g *Grid) cellsAt(ps []pos) []*Cell {
	cells := make([]*Cell, len(ps))
	for i, p := range ps {
		cells[i] = g.cols[p.x][p.y]
	}
	return cells
}

// findRegion walks the region of colour reachable from (x, y) and returns
// the visited positions. The caller guarantees (x, y) holds a cell.
func (g *Grid) findRegion(x, y int, colour Colour) []pos {
	visited := make([][]bool, g.width)
	for i := range visited {
		visited[i] = make([]bool, g.height)
	}

	var region []pos
	var visit func(x, y int)
	visit = func(x, y int) {
		visited[x][y] = true
		region = append(region, pos{x, y})

		for _, d := range neighbours {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) || visited[nx][ny] {
				continue
			}
			if n := g.cols[nx][ny]; n != nil && n.Colour == colour {
				visit(nx, ny)
			}
		}
	}
	visit(x, y)

	return region
}
