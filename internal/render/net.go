// Package render draws a cube as a colored cross net in the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/nxcube"
)

// Palette maps each sticker color to a terminal color.
type Palette map[nxcube.Color]lipgloss.Color

// DefaultPalette uses the 256-color codes closest to real stickers.
var DefaultPalette = Palette{
	nxcube.White:  lipgloss.Color("15"),
	nxcube.Yellow: lipgloss.Color("226"),
	nxcube.Green:  lipgloss.Color("34"),
	nxcube.Blue:   lipgloss.Color("27"),
	nxcube.Red:    lipgloss.Color("196"),
	nxcube.Orange: lipgloss.Color("208"),
}

// netRows is the cross layout: U above F, then L F R B, then D below F.
var netRows = [][]nxcube.FaceName{
	{-1, nxcube.U},
	{nxcube.L, nxcube.F, nxcube.R, nxcube.B},
	{-1, nxcube.D},
}

// Renderer draws cube nets.
type Renderer struct {
	styles map[nxcube.Color]lipgloss.Style
	blank  string
	plain  bool
}

// New creates a renderer for palette. A nil palette uses DefaultPalette.
func New(palette Palette) *Renderer {
	if palette == nil {
		palette = DefaultPalette
	}
	r := &Renderer{styles: make(map[nxcube.Color]lipgloss.Style, len(palette))}
	for c, tc := range palette {
		r.styles[c] = lipgloss.NewStyle().Background(tc).Foreground(lipgloss.Color("0"))
	}
	r.blank = "  "
	return r
}

// Plain returns a renderer that prints color letters without styling.
func Plain() *Renderer {
	return &Renderer{blank: "  ", plain: true}
}

// letters reports whether cells are drawn as color letters. A styled
// renderer falls back to letters when the output has no color support.
func (r *Renderer) letters() bool {
	return r.plain || lipgloss.ColorProfile() == termenv.Ascii
}

// Cell renders one sticker.
func (r *Renderer) Cell(c nxcube.Color) string {
	if r.letters() {
		return c.String() + " "
	}
	st, ok := r.styles[c]
	if !ok {
		return c.String() + " "
	}
	return st.Render("  ")
}

// FaceRow renders row of face f, left to right. Row n-1 is the top.
func (r *Renderer) FaceRow(c *nxcube.Cube, f nxcube.FaceName, row int) string {
	var b strings.Builder
	face := c.Face(f)
	for col := 0; col < c.Size(); col++ {
		b.WriteString(r.Cell(face.Facelet(row, col).Color()))
	}
	return b.String()
}

// Net renders the whole cube, top row of every face first.
func (r *Renderer) Net(c *nxcube.Cube) string {
	n := c.Size()
	pad := strings.Repeat(r.blank, n)
	trim := r.letters()

	var b strings.Builder
	for _, faces := range netRows {
		for row := n - 1; row >= 0; row-- {
			var line strings.Builder
			for _, f := range faces {
				if f < 0 {
					line.WriteString(pad)
					continue
				}
				line.WriteString(r.FaceRow(c, f, row))
			}
			if trim {
				b.WriteString(strings.TrimRight(line.String(), " "))
			} else {
				b.WriteString(line.String())
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Face renders a single face as a square block.
func (r *Renderer) Face(c *nxcube.Cube, f nxcube.FaceName) string {
	var rows []string
	for row := c.Size() - 1; row >= 0; row-- {
		rows = append(rows, r.FaceRow(c, f, row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
