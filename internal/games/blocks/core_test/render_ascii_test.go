package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func TestParseRows(t *testing.T) {
	g, err := core.ParseRows([]string{
		"R.B",
		"GGY",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.Width(), g.Height())
	}

	tests := []struct {
		x, y   int
		filled bool
		colour core.Colour
	}{
		{0, 1, true, core.Red},
		{1, 1, false, 0},
		{2, 1, true, core.Blue},
		{0, 0, true, core.Green},
		{2, 0, true, core.Yellow},
	}
	for _, tc := range tests {
		c := g.At(tc.x, tc.y)
		if (c != nil) != tc.filled {
			t.Errorf("at (%d,%d): filled = %v, want %v", tc.x, tc.y, c != nil, tc.filled)
			continue
		}
		if c != nil && (c.Colour != tc.colour || c.X != tc.x || c.Y != tc.y) {
			t.Errorf("at (%d,%d): got %+v, want colour %v", tc.x, tc.y, *c, tc.colour)
		}
	}

	if got := g.String(); got != "R.B\nGGY" {
		t.Errorf("String() = %q, want %q", got, "R.B\nGGY")
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, core.ErrInvalidSize},
		{"empty row", []string{""}, core.ErrInvalidSize},
		{"ragged", []string{"RG", "R"}, core.ErrRaggedRows},
		{"unknown colour", []string{"RX"}, core.ErrUnknownColour},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseRows(tc.rows); !errors.Is(err, tc.want) {
				t.Errorf("ParseRows() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestStringAfterSelection(t *testing.T) {
	g, err := core.ParseRows([]string{
		"BRR",
		"GGR",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	g.HandleSelection(g.At(2, 0), nil)

	want := strings.Join([]string{
		"B..",
		"GG.",
	}, "\n")
	if got := g.String(); got != want {
		t.Errorf("String() after selection:\n%s\nwant\n%s", got, want)
	}
	if rows := g.Rows(); len(rows) != 2 || rows[0] != "B.." {
		t.Errorf("Rows() = %q", rows)
	}
}
