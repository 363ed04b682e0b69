package nxcube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestFixedAttributes(t *testing.T) {
	c, err := nxcube.New(4)
	require.NoError(t, err)

	fl, err := c.Facelet(nxcube.R, 0, 1)
	require.NoError(t, err)
	face, ok := fl.Get(nxcube.Fixed, nxcube.AttrFace)
	require.True(t, ok)
	assert.Equal(t, nxcube.R, face)
	kind, _ := fl.Get(nxcube.Fixed, nxcube.AttrKind)
	assert.Equal(t, nxcube.KindEdge, kind)

	assert.ErrorIs(t, fl.Set(nxcube.Fixed, nxcube.AttrFace, nxcube.U), nxcube.ErrFixedAttribute)
	assert.ErrorIs(t, fl.Delete(nxcube.Fixed, nxcube.AttrRow), nxcube.ErrFixedAttribute)

	fixed := fl.Attributes(nxcube.Fixed)
	fixed[nxcube.AttrFace] = nxcube.U
	face, _ = fl.Get(nxcube.Fixed, nxcube.AttrFace)
	assert.Equal(t, nxcube.R, face, "Attributes returns a copy")
}

func TestMovingAndAnchoredAttributes(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)

	corner, err := c.Facelet(nxcube.U, 0, 0)
	require.NoError(t, err)
	require.NoError(t, corner.Set(nxcube.Moving, "tag", "piece"))
	require.NoError(t, corner.Set(nxcube.Anchored, "mark", "slot"))

	// A clockwise U turn carries U[0,0] to U[2,0].
	require.NoError(t, c.RotateFace(nxcube.U, 1))

	_, ok := corner.Get(nxcube.Moving, "tag")
	assert.False(t, ok, "moving attribute left with the color")
	mark, ok := corner.Get(nxcube.Anchored, "mark")
	assert.True(t, ok)
	assert.Equal(t, "slot", mark)

	moved, err := c.Facelet(nxcube.U, 2, 0)
	require.NoError(t, err)
	tag, ok := moved.Get(nxcube.Moving, "tag")
	assert.True(t, ok)
	assert.Equal(t, "piece", tag)
	_, ok = moved.Get(nxcube.Anchored, "mark")
	assert.False(t, ok)

	require.NoError(t, moved.Delete(nxcube.Moving, "tag"))
	_, ok = moved.Get(nxcube.Moving, "tag")
	assert.False(t, ok)
}

func TestResetKeepsAnchoredDropsMoving(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)
	fl, err := c.Facelet(nxcube.F, 1, 1)
	require.NoError(t, err)
	require.NoError(t, fl.Set(nxcube.Moving, "m", 1))
	require.NoError(t, fl.Set(nxcube.Anchored, "a", 2))

	c.Reset()
	_, ok := fl.Get(nxcube.Moving, "m")
	assert.False(t, ok)
	v, ok := fl.Get(nxcube.Anchored, "a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestFaceletQueries(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)

	col, err := c.ColorAt(nxcube.F, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, nxcube.Green, col)

	_, err = c.ColorAt(nxcube.F, 3, 0)
	assert.ErrorIs(t, err, nxcube.ErrOutOfBounds)
	_, err = c.Facelet(nxcube.FaceName(7), 0, 0)
	assert.ErrorIs(t, err, nxcube.ErrInvalidFace)

	facelets := c.Face(nxcube.L).Facelets()
	require.Len(t, facelets, 9)
	assert.Equal(t, 0, facelets[0].Row())
	assert.Equal(t, 0, facelets[0].Col())
	assert.Equal(t, 0, facelets[2].Row())
	assert.Equal(t, 2, facelets[2].Col())
	assert.Equal(t, 1, facelets[3].Row())
}
