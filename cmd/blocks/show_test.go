package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

func TestParseClicks(t *testing.T) {
	got, err := parseClicks([]string{"1,0", " 2 , 3 "})
	if err != nil {
		t.Fatalf("parseClicks failed: %v", err)
	}
	if diff := cmp.Diff([][2]int{{1, 0}, {2, 3}}, got); diff != "" {
		t.Errorf("clicks mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"1", "a,b", "1,"} {
		if _, err := parseClicks([]string{bad}); !errors.Is(err, errBadClick) {
			t.Errorf("parseClicks(%q) error = %v, want %v", bad, err, errBadClick)
		}
	}
}

func TestRunSelections(t *testing.T) {
	grid, err := core.ParseRows([]string{"RRG", "RGR", "GGR"})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runSelections(&out, grid, [][2]int{{2, 2}, {1, 0}, {1, 2}}, true); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	for _, want := range []string{
		"select (2,2) green\nremoved 0, moved 0, remaining 9",
		"  removed (1,0)\n",
		"  moved (0,2) -> (0,1)\n",
		"removed 3, moved 3, remaining 6\n..G\nR.R\nRRR",
		"select (1,2): empty",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}
