package nxcube

import "fmt"

func (c *Cube) checkCell(face FaceName, row, col int) error {
	if !face.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, face)
	}
	if row < 0 || row >= c.n || col < 0 || col >= c.n {
		return fmt.Errorf("%w: %s[%d,%d] on a %dx%d face", ErrOutOfBounds, face, row, col, c.n, c.n)
	}
	return nil
}

// Facelet returns the facelet at (row, col) of face.
func (c *Cube) Facelet(face FaceName, row, col int) (*Facelet, error) {
	if err := c.checkCell(face, row, col); err != nil {
		return nil, err
	}
	return &c.facelets[c.index(face, row, col)], nil
}

// ColorAt returns the color at (row, col) of face.
func (c *Cube) ColorAt(face FaceName, row, col int) (Color, error) {
	fl, err := c.Facelet(face, row, col)
	if err != nil {
		return 0, err
	}
	return fl.color, nil
}

// Part returns the part whose fixed id is id.
func (c *Cube) Part(id FaceSet) (*Part, error) {
	pid, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPart, id)
	}
	return &c.parts[pid], nil
}

// SliceByID returns the part slice identified by id.
func (c *Cube) SliceByID(id SliceID) (*PartSlice, error) {
	p, err := c.Part(id.Faces)
	if err != nil {
		return nil, err
	}
	if id.Index < 0 || id.Index >= len(p.slices) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPart, id)
	}
	return &p.slices[id.Index], nil
}

// PartOf returns the part and slice holding the facelet at (row, col) of
// face.
func (c *Cube) PartOf(face FaceName, row, col int) (*Part, *PartSlice, error) {
	if err := c.checkCell(face, row, col); err != nil {
		return nil, nil, err
	}
	fid := c.index(face, row, col)
	for pi := range c.parts {
		p := &c.parts[pi]
		if !p.faces.Has(face) {
			continue
		}
		for si := range p.slices {
			for _, id := range p.slices[si].facelets {
				if id == fid {
					return p, &p.slices[si], nil
				}
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: no part holds %s[%d,%d]", ErrInvariant, face, row, col)
}

// Parts returns every part of the given kind.
func (c *Cube) Parts(kind PartKind) []*Part {
	var out []*Part
	for i := range c.parts {
		if c.parts[i].kind == kind {
			out = append(out, &c.parts[i])
		}
	}
	return out
}

// Edges returns the twelve edges, none on a 2×2 cube.
func (c *Cube) Edges() []*Part { return c.Parts(KindEdge) }

// Corners returns the eight corners.
func (c *Cube) Corners() []*Part { return c.Parts(KindCorner) }

// Centers returns the six centers, none on a 2×2 cube.
func (c *Cube) Centers() []*Part { return c.Parts(KindCenter) }

// ColorsID returns the colors painted on the part with fixed id id.
func (c *Cube) ColorsID(id FaceSet) (ColorSet, error) {
	p, err := c.Part(id)
	if err != nil {
		return 0, err
	}
	return p.ColorsID(), nil
}

// PositionID returns the face colors surrounding the part with fixed id id.
func (c *Cube) PositionID(id FaceSet) (ColorSet, error) {
	p, err := c.Part(id)
	if err != nil {
		return 0, err
	}
	return p.PositionID(), nil
}

// InPosition reports whether the part with fixed id id holds the colors
// its location expects.
func (c *Cube) InPosition(id FaceSet) (bool, error) {
	p, err := c.Part(id)
	if err != nil {
		return false, err
	}
	return p.InPosition(), nil
}

// MatchFaces reports whether every facelet of the part with fixed id id
// shows its face's color.
func (c *Cube) MatchFaces(id FaceSet) (bool, error) {
	p, err := c.Part(id)
	if err != nil {
		return false, err
	}
	return p.MatchFaces(), nil
}
