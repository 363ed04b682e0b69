package nxcube

import "fmt"

// transfer moves the content of one facelet into another.
type transfer struct {
	from, to faceletID
}

// apply runs a batch of transfers. Every source is read before any
// destination is written, so a batch describing a permutation never reads
// content it has already overwritten.
func (c *Cube) apply(ts []transfer) {
	snap := make([]content, len(ts))
	for i, t := range ts {
		snap[i] = c.facelets[t.from].content()
	}
	for i, t := range ts {
		c.facelets[t.to].setContent(snap[i])
	}
}

// quarters converts a turn count to clockwise quarter turns.
func quarters(turns int) (int, error) {
	switch turns {
	case 1:
		return 1, nil
	case 2, -2:
		return 2, nil
	case -1:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidTurns, turns)
}

// writable refuses mutation once a consistency check has failed.
func (c *Cube) writable() error {
	if c.halted != nil {
		return fmt.Errorf("%w: %v", ErrHalted, c.halted)
	}
	return nil
}

// finish runs after every public rotation.
func (c *Cube) finish() error {
	c.refreshFaceColors()
	if !c.checks {
		return nil
	}
	if err := c.Check(); err != nil {
		c.halted = err
		c.logger.Error("consistency check failed, cube halted", "err", err)
		return err
	}
	return nil
}

// RotateFace turns face by turns quarter turns, clockwise as seen from
// outside the face for positive counts. turns must be -2, -1, 1 or 2.
func (c *Cube) RotateFace(face FaceName, turns int) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !face.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, face)
	}
	q, err := quarters(turns)
	if err != nil {
		return err
	}

	for i := 0; i < q; i++ {
		c.quarterFace(face)
	}
	c.logger.Debug("rotate face", "face", face, "turns", turns)
	return c.finish()
}

// quarterFace turns face x one quarter clockwise. The face's own centers
// rotate in place, and its four edges and four corners hand their content
// to the next one clockwise.
func (c *Cube) quarterFace(x FaceName) {
	n := c.n
	fc := &c.faces[x]
	ts := make([]transfer, 0, n*n+8*n)

	for row := 1; row < n-1; row++ {
		for col := 1; col < n-1; col++ {
			ts = append(ts, transfer{c.index(x, row, col), c.index(x, n-1-col, row)})
		}
	}

	for s := Top; s <= Left; s++ {
		src, dst := c.part(fc.edges[s]), c.part(fc.edges[s.next()])
		if src == nil {
			break
		}
		ys, yd := topology.neighbor[x][s], topology.neighbor[x][s.next()]
		for k := 1; k < n-1; k++ {
			from := &src.slices[c.wingIndex(src, x, k)]
			to := &dst.slices[c.wingIndex(dst, x, turnIndex(s, k, n))]
			ts = append(ts,
				transfer{from.faceletOn(x), to.faceletOn(x)},
				transfer{from.faceletOn(ys), to.faceletOn(yd)},
			)
		}
	}

	for s := Top; s <= Left; s++ {
		from := &c.part(fc.corners[s]).slices[0]
		to := &c.part(fc.corners[s.next()]).slices[0]
		a, b, d := topology.neighbor[x][s], topology.neighbor[x][s.next()], topology.neighbor[x][s.next().next()]
		ts = append(ts,
			transfer{from.faceletOn(x), to.faceletOn(x)},
			transfer{from.faceletOn(a), to.faceletOn(b)},
			transfer{from.faceletOn(b), to.faceletOn(d)},
		)
	}

	c.apply(ts)
}

// wingIndex returns the wing of edge found at index k along the edge in
// face x's frame. Wings are numbered in the frame of the edge's first face.
func (c *Cube) wingIndex(edge *Part, x FaceName, k int) int {
	a := edge.faces.first()
	if x == a {
		return k - 1
	}
	return translate(x, a, k, c.n) - 1
}
