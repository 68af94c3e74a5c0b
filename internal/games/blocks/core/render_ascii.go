package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EmptyChar marks an absent cell in the ASCII format.
const EmptyChar = '.'

// String renders the grid as ASCII rows, top row first, so that y = 0 is the
// last line. Absent cells are '.', present cells use Colour.Char.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)

	for y := g.height - 1; y >= 0; y-- {
		for x := range g.width {
			if c := g.cols[x][y]; c != nil {
				sb.WriteRune(c.Colour.Char())
			} else {
				sb.WriteRune(EmptyChar)
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Rows returns String split into lines.
func (g *Grid) Rows() []string {
	if g.height == 0 {
		return nil
	}
	return strings.Split(g.String(), "\n")
}

// ParseRows builds a grid from ASCII rows in the String format.
// Every row must have the same length; '.' and ' ' mean absent.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("blocks: no rows: %w", ErrInvalidSize)
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("blocks: empty row: %w", ErrInvalidSize)
	}
	height := len(rows)

	cols := make([][]*Cell, width)
	for x := range cols {
		cols[x] = make([]*Cell, height)
	}

	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("blocks: row %d has %d cells, want %d: %w", i, n, width, ErrRaggedRows)
		}
		y := height - 1 - i
		x := 0
		for _, r := range row {
			if r != EmptyChar && r != ' ' {
				c, ok := ParseColour(string(r))
				if !ok {
					return nil, fmt.Errorf("blocks: row %d column %d %q: %w", i, x, r, ErrUnknownColour)
				}
				cols[x][y] = NewCell(x, y, c)
			}
			x++
		}
	}

	return FromColumns(cols), nil
}
