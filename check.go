package nxcube

import "fmt"

// Check verifies the structural invariants of the cube: every facelet sits
// at its own (face, row, col), every part keeps its fixed id, every slice
// touches exactly the faces of its part, the parts cover each facelet once,
// and each color appears N² times. A failure wraps ErrInvariant and means
// the engine itself is broken.
func (c *Cube) Check() error {
	n := c.n

	for i := range c.facelets {
		fl := &c.facelets[i]
		if c.index(fl.face, fl.row, fl.col) != faceletID(i) {
			return fmt.Errorf("%w: facelet %d claims %s[%d,%d]", ErrInvariant, i, fl.face, fl.row, fl.col)
		}
	}

	var kinds [3]int
	owners := make([]int, len(c.facelets))
	for pi := range c.parts {
		p := &c.parts[pi]
		kinds[p.kind]++
		if c.byID[p.faces] != partID(pi) {
			return fmt.Errorf("%w: part %s is not indexed under its fixed id", ErrInvariant, p)
		}
		want := p.kind.facelets()
		for si := range p.slices {
			s := &p.slices[si]
			if s.id.Faces != p.faces || s.id.Index != si {
				return fmt.Errorf("%w: slice %s filed under part %s at %d", ErrInvariant, s.id, p, si)
			}
			if len(s.facelets) != want {
				return fmt.Errorf("%w: slice %s holds %d facelets, want %d", ErrInvariant, s.id, len(s.facelets), want)
			}
			var faces FaceSet
			for _, fid := range s.facelets {
				faces |= NewFaceSet(c.facelets[fid].face)
				owners[fid]++
			}
			if faces != p.faces {
				return fmt.Errorf("%w: slice %s touches %s", ErrInvariant, s.id, faces)
			}
		}
	}

	wantEdges, wantCenters := 12, 6
	if n == 2 {
		wantEdges, wantCenters = 0, 0
	}
	if kinds[KindEdge] != wantEdges || kinds[KindCorner] != 8 || kinds[KindCenter] != wantCenters {
		return fmt.Errorf("%w: %d edges, %d corners, %d centers", ErrInvariant,
			kinds[KindEdge], kinds[KindCorner], kinds[KindCenter])
	}

	for i, k := range owners {
		if k != 1 {
			fl := &c.facelets[i]
			return fmt.Errorf("%w: facelet %s[%d,%d] belongs to %d slices", ErrInvariant, fl.face, fl.row, fl.col, k)
		}
	}

	if err := checkColorCounts(c.facelets, n); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	return nil
}

func checkColorCounts(facelets []Facelet, n int) error {
	var counts [6]int
	for i := range facelets {
		col := facelets[i].color
		if col > Orange {
			return fmt.Errorf("facelet %d has color %d", i, col)
		}
		counts[col]++
	}
	for _, col := range Colors {
		if counts[col] != n*n {
			return fmt.Errorf("color %s appears %d times, want %d", col, counts[col], n*n)
		}
	}
	return nil
}
