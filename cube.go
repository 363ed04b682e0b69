package nxcube

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Cube is an N×N×N puzzle: six faces, twelve edges, eight corners and six
// centers, all fixed for the cube's lifetime. Rotations repaint facelets in
// place; no facelet, part or face ever moves.
//
// Faces, edges and corners live in arenas owned by the cube and refer to
// each other by handle, so an edge is shared by its two faces and a corner
// by its three without copies.
//
// A Cube is not safe for concurrent use. Readers must not run while a
// rotation is in progress.
type Cube struct {
	n        int
	facelets []Facelet // face*n*n + row*n + col
	faces    [6]Face
	parts    []Part
	byID     map[FaceSet]partID

	scheme     Scheme
	faceColors [6]Color

	checks bool
	halted error
	logger *log.Logger
}

// New creates a solved cube of size n.
func New(n int, opts ...Option) (*Cube, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.scheme.Validate(); err != nil {
		return nil, err
	}

	c := &Cube{
		n:      n,
		scheme: cfg.scheme,
		checks: cfg.checks,
		logger: cfg.logger,
	}
	c.build()
	c.paint()
	return c, nil
}

// build lays out the arenas. The structure depends only on n.
func (c *Cube) build() {
	n := c.n
	c.facelets = make([]Facelet, 6*n*n)
	c.byID = make(map[FaceSet]partID, 26)

	for _, f := range FaceNames {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				fl := &c.facelets[c.index(f, row, col)]
				fl.face, fl.row, fl.col = f, row, col
				fl.fixed = Attrs{
					AttrFace: f,
					AttrRow:  row,
					AttrCol:  col,
					AttrKind: slotKind(row, col, n),
				}
			}
		}
		c.faces[f] = Face{
			cube:    c,
			name:    f,
			edges:   [4]partID{noPart, noPart, noPart, noPart},
			corners: [4]partID{noPart, noPart, noPart, noPart},
			center:  noPart,
		}
	}

	if n > 2 {
		c.buildEdges()
	}
	c.buildCorners()
	if n > 2 {
		c.buildCenters()
	}
}

func slotKind(row, col, n int) PartKind {
	onRow := row == 0 || row == n-1
	onCol := col == 0 || col == n-1
	switch {
	case onRow && onCol:
		return KindCorner
	case onRow || onCol:
		return KindEdge
	default:
		return KindCenter
	}
}

func (c *Cube) addPart(p Part) partID {
	id := partID(len(c.parts))
	c.parts = append(c.parts, p)
	c.byID[p.faces] = id
	return id
}

// buildEdges creates the twelve edges. Wing i of an edge sits at index i+1
// along the border in the frame of the edge's first face.
func (c *Cube) buildEdges() {
	n := c.n
	for ai, a := range FaceNames {
		for _, b := range FaceNames[ai+1:] {
			sa := topology.sideOf[a][b]
			if sa == noSide {
				continue
			}
			sb := topology.sideOf[b][a]

			p := Part{cube: c, kind: KindEdge, faces: NewFaceSet(a, b)}
			for i := 0; i < n-2; i++ {
				k := i + 1
				ra, ca := sideCell(sa, k, 0, n)
				rb, cb := sideCell(sb, translate(a, b, k, n), 0, n)
				p.slices = append(p.slices, PartSlice{
					cube:     c,
					id:       SliceID{Faces: p.faces, Index: i},
					facelets: []faceletID{c.index(a, ra, ca), c.index(b, rb, cb)},
				})
			}

			id := c.addPart(p)
			c.faces[a].edges[sa] = id
			c.faces[b].edges[sb] = id
		}
	}
}

func (c *Cube) buildCorners() {
	n := c.n
	for _, x := range FaceNames {
		for s := Top; s <= Left; s++ {
			set := NewFaceSet(x, topology.neighbor[x][s], topology.neighbor[x][s.next()])
			id, ok := c.byID[set]
			if !ok {
				slice := PartSlice{cube: c, id: SliceID{Faces: set}}
				for _, f := range set.Faces() {
					g, h := set.others(f)
					row, col := cornerCell(cornerBetween(topology.sideOf[f][g], topology.sideOf[f][h]), n)
					slice.facelets = append(slice.facelets, c.index(f, row, col))
				}
				id = c.addPart(Part{cube: c, kind: KindCorner, faces: set, slices: []PartSlice{slice}})
			}
			c.faces[x].corners[s] = id
		}
	}
}

func (c *Cube) buildCenters() {
	n := c.n
	for _, f := range FaceNames {
		p := Part{cube: c, kind: KindCenter, faces: NewFaceSet(f)}
		for row := 1; row < n-1; row++ {
			for col := 1; col < n-1; col++ {
				p.slices = append(p.slices, PartSlice{
					cube:     c,
					id:       SliceID{Faces: p.faces, Index: (row-1)*(n-2) + (col - 1)},
					facelets: []faceletID{c.index(f, row, col)},
				})
			}
		}
		c.faces[f].center = c.addPart(p)
	}
}

// paint colors every face with its scheme color and forgets moving
// attributes.
func (c *Cube) paint() {
	for i := range c.facelets {
		fl := &c.facelets[i]
		fl.color = c.scheme[fl.face]
		fl.clearTier(Moving)
	}
	c.faceColors = c.scheme
}

func (c *Cube) index(f FaceName, row, col int) faceletID {
	return faceletID((int(f)*c.n+row)*c.n + col)
}

func (c *Cube) part(id partID) *Part {
	if id == noPart {
		return nil
	}
	return &c.parts[id]
}

// others returns the two members of a three-face set other than f.
func (s FaceSet) others(f FaceName) (FaceName, FaceName) {
	var out [2]FaceName
	i := 0
	for _, g := range s.Faces() {
		if g != f && i < 2 {
			out[i] = g
			i++
		}
	}
	return out[0], out[1]
}

// first returns the lowest face in s.
func (s FaceSet) first() FaceName {
	for _, f := range FaceNames {
		if s.Has(f) {
			return f
		}
	}
	return U
}

// Size returns N.
func (c *Cube) Size() int { return c.n }

// Scheme returns the colors of the solved cube.
func (c *Cube) Scheme() Scheme { return c.scheme }

// Face returns the face named f.
func (c *Cube) Face(f FaceName) *Face {
	if !f.Valid() {
		return nil
	}
	return &c.faces[f]
}

// Faces returns the six faces in declaration order.
func (c *Cube) Faces() []*Face {
	out := make([]*Face, 6)
	for i := range c.faces {
		out[i] = &c.faces[i]
	}
	return out
}

// FaceColor returns the logical color of face f. On odd cubes it is the
// color of the middle center piece. Even cubes have no fixed center, so the
// color starts from the scheme, follows whole-cube rotations and can be
// overridden with SetFaceColor.
func (c *Cube) FaceColor(f FaceName) Color {
	return c.faceColors[f]
}

// SetFaceColor overrides the logical color of face f. On odd cubes the
// next rotation recomputes it from the middle center.
func (c *Cube) SetFaceColor(f FaceName, color Color) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, f)
	}
	if color > Orange {
		return fmt.Errorf("%w: color %d", ErrInvalidState, color)
	}
	c.faceColors[f] = color
	return nil
}

// refreshFaceColors reads the face colors off the middle centers of an odd
// cube.
func (c *Cube) refreshFaceColors() {
	if c.n%2 == 0 {
		return
	}
	m := c.n / 2
	for _, f := range FaceNames {
		c.faceColors[f] = c.facelets[c.index(f, m, m)].color
	}
}

// IsSolved reports whether every face shows a single color. It holds in
// any orientation.
func (c *Cube) IsSolved() bool {
	for i := range c.faces {
		if !c.faces[i].Uniform() {
			return false
		}
	}
	return true
}

// Reset returns the cube to the solved state in the scheme orientation.
// Moving attributes are dropped, anchored ones kept, and a halted cube is
// released.
func (c *Cube) Reset() {
	c.paint()
	c.halted = nil
}

// Clone returns a deep copy of the cube, attributes included.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		n:      c.n,
		scheme: c.scheme,
		checks: c.checks,
		halted: c.halted,
		logger: c.logger,
	}
	clone.build()
	for i := range c.facelets {
		src, dst := &c.facelets[i], &clone.facelets[i]
		dst.color = src.color
		dst.moving = copyAttrs(src.moving)
		dst.anchored = copyAttrs(src.anchored)
	}
	clone.faceColors = c.faceColors
	return clone
}

func copyAttrs(a Attrs) Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
