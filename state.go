package nxcube

import (
	"fmt"
	"strings"
)

// StateOrder is the face order of State strings.
var StateOrder = [6]FaceName{U, R, F, D, L, B}

// State returns the cube's colors as 6·N² color letters: the faces in
// StateOrder, each in row-major order from its bottom-left facelet.
func (c *Cube) State() string {
	var b strings.Builder
	b.Grow(len(c.facelets))
	for _, f := range StateOrder {
		base := c.index(f, 0, 0)
		for i := 0; i < c.n*c.n; i++ {
			b.WriteString(c.facelets[base+faceletID(i)].color.String())
		}
	}
	return b.String()
}

// Restore repaints the cube from a State string. Moving attributes are
// dropped since the string does not say where the pieces came from. The
// string must hold each color exactly N² times.
func (c *Cube) Restore(state string) error {
	if err := c.writable(); err != nil {
		return err
	}
	nn := c.n * c.n
	if len(state) != 6*nn {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidState, len(state), 6*nn)
	}

	colors := make([]Color, len(c.facelets))
	for fi, f := range StateOrder {
		base := int(c.index(f, 0, 0))
		for i := 0; i < nn; i++ {
			col, err := ParseColor(state[fi*nn+i : fi*nn+i+1])
			if err != nil {
				return fmt.Errorf("%w: position %d", err, fi*nn+i)
			}
			colors[base+i] = col
		}
	}

	var counts [6]int
	for _, col := range colors {
		counts[col]++
	}
	for _, col := range Colors {
		if counts[col] != nn {
			return fmt.Errorf("%w: color %s appears %d times, want %d", ErrInvalidState, col, counts[col], nn)
		}
	}

	for i := range c.facelets {
		c.facelets[i].color = colors[i]
		c.facelets[i].clearTier(Moving)
	}
	c.refreshFaceColors()
	return nil
}

// String returns the cube as a cross net: U above F, D below it, and
// L F R B side by side. Each face prints its top row first.
func (c *Cube) String() string {
	n := c.n
	var b strings.Builder
	pad := strings.Repeat("  ", n)

	row := func(f FaceName, r int) {
		for col := 0; col < n; col++ {
			b.WriteString(c.facelets[c.index(f, r, col)].color.String())
			b.WriteByte(' ')
		}
	}

	for r := n - 1; r >= 0; r-- {
		b.WriteString(pad)
		row(U, r)
		b.WriteByte('\n')
	}
	for r := n - 1; r >= 0; r-- {
		for _, f := range []FaceName{L, F, R, B} {
			row(f, r)
		}
		b.WriteByte('\n')
	}
	for r := n - 1; r >= 0; r-- {
		b.WriteString(pad)
		row(D, r)
		b.WriteByte('\n')
	}
	return b.String()
}
