package nxcube

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// Colors lists every color in declaration order.
var Colors = [6]Color{White, Yellow, Green, Blue, Red, Orange}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// ParseColor parses a color letter (W, Y, G, B, R, O) or a color name.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "y", "yellow":
		return Yellow, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	case "r", "red":
		return Red, nil
	case "o", "orange":
		return Orange, nil
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidState, s)
}

// ColorSet is an unordered set of colors. It is the value of a part's
// colors id and position id.
type ColorSet uint8

// NewColorSet returns the set holding the given colors.
func NewColorSet(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s = s.With(c)
	}
	return s
}

// With returns s plus c.
func (s ColorSet) With(c Color) ColorSet {
	return s | 1<<c
}

// Has reports whether c is in s.
func (s ColorSet) Has(c Color) bool {
	return s&(1<<c) != 0
}

// Len returns the number of colors in s.
func (s ColorSet) Len() int {
	n := 0
	for _, c := range Colors {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// String lists the colors of s in declaration order, e.g. "WGR".
func (s ColorSet) String() string {
	var b strings.Builder
	for _, c := range Colors {
		if s.Has(c) {
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// Scheme assigns a color to every face.
type Scheme [6]Color

// DefaultScheme is the standard Western scheme: white up, green front.
var DefaultScheme = Scheme{
	U: White,
	D: Yellow,
	F: Green,
	B: Blue,
	R: Red,
	L: Orange,
}

// Validate checks that the scheme uses six distinct colors.
func (s Scheme) Validate() error {
	var seen ColorSet
	for f, c := range s {
		if c > Orange {
			return fmt.Errorf("%w: face %s has color %d", ErrInvalidScheme, FaceName(f), c)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: color %s used twice", ErrInvalidScheme, c)
		}
		seen = seen.With(c)
	}
	return nil
}

// FaceOf returns the face painted with c under s.
func (s Scheme) FaceOf(c Color) (FaceName, bool) {
	for f, fc := range s {
		if fc == c {
			return FaceName(f), true
		}
	}
	return 0, false
}
