package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// Colour identifies the colour of a block.
type Colour uint8

const (
	Red Colour = iota
	Green
	Blue
	Yellow
	Purple
	Orange
	colourCount // Sentinel value for iteration
)

// DefaultPalette is the classic four-colour palette.
var DefaultPalette = Palette{Red, Green, Blue, Yellow}

// String returns the colour name.
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Purple:
		return "purple"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Char returns the single character used by the ASCII format.
func (c Colour) Char() rune {
	switch c {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Purple:
		return 'P'
	case Orange:
		return 'O'
	default:
		return '?'
	}
}

// Valid reports whether c is a known colour.
func (c Colour) Valid() bool {
	return c < colourCount
}

// ParseColour converts a name or single-letter code to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, true
	case "green", "g":
		return Green, true
	case "blue", "b":
		return Blue, true
	case "yellow", "y":
		return Yellow, true
	case "purple", "p":
		return Purple, true
	case "orange", "o":
		return Orange, true
	default:
		return Red, false
	}
}

// AllColours returns every known colour.
func AllColours() []Colour {
	return []Colour{Red, Green, Blue, Yellow, Purple, Orange}
}

// Palette is the set of colours a random grid draws from.
type Palette []Colour

// ParsePalette converts colour names into a Palette.
func ParsePalette(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, name := range names {
		c, ok := ParseColour(name)
		if !ok {
			return nil, fmt.Errorf("blocks: colour %q: %w", name, ErrUnknownColour)
		}
		p = append(p, c)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the palette is non-empty and has no duplicates.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	seen := make(map[Colour]bool, len(p))
	for _, c := range p {
		if !c.Valid() {
			return fmt.Errorf("blocks: colour %d: %w", c, ErrUnknownColour)
		}
		if seen[c] {
			return fmt.Errorf("blocks: colour %s listed twice: %w", c, ErrDuplicateColour)
		}
		seen[c] = true
	}
	return nil
}

// Contains reports whether c is part of the palette.
func (p Palette) Contains(c Colour) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Random picks a colour uniformly from the palette.
func (p Palette) Random(rng *rand.Rand) Colour {
	return p[rng.Intn(len(p))]
}

// Names returns the colour names in palette order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.String()
	}
	return names
}
