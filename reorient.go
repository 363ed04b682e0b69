package nxcube

import "fmt"

// Reorient rotates the whole cube around axis, following the clockwise
// direction of the axis's positive face (R for x, U for y, F for z).
//
// It is the two outer face turns plus every inner slice turn, so no color
// adjacency changes; only which face colors surround each part does.
func (c *Cube) Reorient(axis Axis, turns int) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	q, err := quarters(turns)
	if err != nil {
		return err
	}

	pos := axis.Positive()
	back := (4 - q) % 4
	slice := q
	if axis.Reference() != pos {
		slice = back
	}

	for i := 0; i < q; i++ {
		c.quarterFace(pos)
	}
	for i := 0; i < back; i++ {
		c.quarterFace(pos.Opposite())
	}
	for index := 0; index < c.n-2; index++ {
		for i := 0; i < slice; i++ {
			c.quarterSlice(axis, index)
		}
	}
	if c.n%2 == 0 {
		for i := 0; i < q; i++ {
			c.cycleFaceColors(pos)
		}
	}

	c.logger.Debug("reorient", "axis", axis, "turns", turns)
	return c.finish()
}

// cycleFaceColors moves the logical face colors one quarter clockwise
// around face p.
func (c *Cube) cycleFaceColors(p FaceName) {
	old := c.faceColors
	for s := Top; s <= Left; s++ {
		c.faceColors[topology.neighbor[p][s.next()]] = old[topology.neighbor[p][s]]
	}
}
