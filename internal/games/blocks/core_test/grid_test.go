package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func TestNewGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	palette := core.Palette{core.Red, core.Blue}

	g, err := core.New(6, 4, palette, rng)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.Width() != 6 || g.Height() != 4 {
		t.Errorf("expected 6x4 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Remaining() != 24 {
		t.Errorf("expected 24 cells, got %d", g.Remaining())
	}

	for x := range g.Width() {
		for y := range g.Height() {
			c := g.At(x, y)
			if c == nil {
				t.Fatalf("expected cell at (%d,%d)", x, y)
			}
			if c.X != x || c.Y != y {
				t.Errorf("cell at (%d,%d) reports (%d,%d)", x, y, c.X, c.Y)
			}
			if !palette.Contains(c.Colour) {
				t.Errorf("cell at (%d,%d) has colour %v outside palette", x, y, c.Colour)
			}
		}
	}
}

func TestNewGridDeterministic(t *testing.T) {
	a, err := core.New(10, 10, core.DefaultPalette, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := core.New(10, 10, core.DefaultPalette, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("same seed produced different grids:\n%s\n\n%s", a, b)
	}
}

func TestNewGridErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		w, h    int
		palette core.Palette
		want    error
	}{
		{"zero width", 0, 5, core.DefaultPalette, core.ErrInvalidSize},
		{"negative height", 5, -1, core.DefaultPalette, core.ErrInvalidSize},
		{"empty palette", 5, 5, nil, core.ErrEmptyPalette},
		{"duplicate colour", 5, 5, core.Palette{core.Red, core.Red}, core.ErrDuplicateColour},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.New(tc.w, tc.h, tc.palette, rng)
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGridColumnsIsSnapshot(t *testing.T) {
	g, err := core.ParseRows([]string{"RG"})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	cols := g.Columns()
	cols[0][0] = nil

	if g.At(0, 0) == nil {
		t.Error("modifying Columns() result should not affect the grid")
	}
}

// referenceRegion computes a region with breadth-first search, independent of
// the engine's traversal.
func referenceRegion(g *core.Grid, x, y int) map[*core.Cell]bool {
	start := g.At(x, y)
	seen := map[*core.Cell]bool{start: true}
	queue := []*core.Cell{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			n := g.At(c.X+d[0], c.Y+d[1])
			if n != nil && n.Colour == start.Colour && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// checkSettled verifies the compaction invariant for every column.
func checkSettled(t *testing.T, g *core.Grid) {
	t.Helper()

	for x, col := range g.Columns() {
		gap := false
		for y, c := range col {
			if c == nil {
				gap = true
				continue
			}
			if gap {
				t.Fatalf("column %d has a cell at %d above a gap", x, y)
			}
			if c.X != x || c.Y != y {
				t.Fatalf("cell stored at (%d,%d) reports (%d,%d)", x, y, c.X, c.Y)
			}
		}
	}
}

func TestRandomSelectionProperties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := core.New(8, 7, core.Palette{core.Red, core.Green, core.Blue}, rng)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		for step := 0; step < 40 && !g.IsEmpty(); step++ {
			x, y := rng.Intn(g.Width()), rng.Intn(g.Height())
			cell := g.At(x, y)
			if cell == nil {
				continue
			}

			expected := referenceRegion(g, x, y)
			region := g.Region(x, y)
			if len(region) != len(expected) {
				t.Fatalf("seed %d: Region size %d, want %d", seed, len(region), len(expected))
			}
			visited := make(map[*core.Cell]bool, len(region))
			for _, c := range region {
				if visited[c] {
					t.Fatalf("seed %d: cell (%d,%d) visited twice", seed, c.X, c.Y)
				}
				if !expected[c] {
					t.Fatalf("seed %d: cell (%d,%d) not in region", seed, c.X, c.Y)
				}
				visited[c] = true
			}

			// Relative order of survivors in each column must be preserved.
			survivors := make(map[int][]*core.Cell)
			for cx, col := range g.Columns() {
				for _, c := range col {
					if c != nil && (len(expected) < 2 || !expected[c]) {
						survivors[cx] = append(survivors[cx], c)
					}
				}
			}

			before := g.Remaining()
			removed := g.HandleSelection(cell, nil)

			if len(expected) < 2 {
				if len(removed) != 0 {
					t.Fatalf("seed %d: isolated cell removed %d cells", seed, len(removed))
				}
			} else if len(removed) != len(expected) {
				t.Fatalf("seed %d: removed %d cells, want %d", seed, len(removed), len(expected))
			}
			if g.Remaining() != before-len(removed) {
				t.Fatalf("seed %d: remaining %d, want %d", seed, g.Remaining(), before-len(removed))
			}

			checkSettled(t, g)

			for cx, want := range survivors {
				for i, c := range want {
					if g.At(cx, i) != c {
						t.Fatalf("seed %d: column %d order not preserved at %d", seed, cx, i)
					}
				}
			}
		}
	}
}
