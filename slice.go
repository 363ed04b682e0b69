package nxcube

import "fmt"

// RotateSlice turns inner slice index around axis. Slice 0 is the one next
// to the axis's reference face, and positive turns follow that face's
// clockwise direction. index must lie in [0, N-3].
//
// The two faces the axis passes through are never touched.
func (c *Cube) RotateSlice(axis Axis, index, turns int) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	if index < 0 || index > c.n-3 {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrSliceIndex, index, c.n-3)
	}
	q, err := quarters(turns)
	if err != nil {
		return err
	}

	for i := 0; i < q; i++ {
		c.quarterSlice(axis, index)
	}
	c.logger.Debug("rotate slice", "axis", axis, "index", index, "turns", turns)
	return c.finish()
}

// quarterSlice turns one slice a quarter in the reference face's clockwise
// direction. It walks the four side faces in the order the reference face
// sees them clockwise and hands each strip to the next face.
func (c *Cube) quarterSlice(axis Axis, index int) {
	n := c.n
	ref := axis.Reference()
	depth := index + 1
	ts := make([]transfer, 0, 4*n)

	for s := Top; s <= Left; s++ {
		src := c.strip(topology.neighbor[ref][s], ref, depth)
		dst := c.strip(topology.neighbor[ref][s.next()], ref, depth)
		for k := 0; k < n; k++ {
			ts = append(ts, transfer{src[k], dst[turnIndex(s, k, n)]})
		}
	}

	c.apply(ts)
}

// strip returns the row or column of face lying depth cells away from its
// border with ref, indexed along that border in ref's frame. A row edge
// (top or bottom) yields a row, a column edge a column. Both ends of the
// strip are edge wings, the rest are center pieces.
func (c *Cube) strip(face, ref FaceName, depth int) []faceletID {
	n := c.n
	side := topology.sideOf[face][ref]
	out := make([]faceletID, n)
	for k := 0; k < n; k++ {
		row, col := sideCell(side, translate(ref, face, k, n), depth, n)
		out[k] = c.index(face, row, col)
	}
	return out
}
