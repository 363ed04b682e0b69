package nxcube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func mustFaceSet(t *testing.T, s string) nxcube.FaceSet {
	t.Helper()
	set, err := nxcube.ParseFaceSet(s)
	require.NoError(t, err)
	return set
}

func TestPartLookup(t *testing.T) {
	c, err := nxcube.New(4)
	require.NoError(t, err)

	edge, err := c.Part(mustFaceSet(t, "UF"))
	require.NoError(t, err)
	assert.Equal(t, nxcube.KindEdge, edge.Kind())
	assert.Equal(t, 2, edge.Len())
	assert.Equal(t, mustFaceSet(t, "FU"), edge.FixedID(), "fixed ids are unordered")

	corner, err := c.Part(mustFaceSet(t, "RFU"))
	require.NoError(t, err)
	assert.Equal(t, nxcube.KindCorner, corner.Kind())
	assert.Equal(t, "UFR", corner.FixedID().String())

	center, err := c.Part(mustFaceSet(t, "D"))
	require.NoError(t, err)
	assert.Equal(t, nxcube.KindCenter, center.Kind())
	assert.Equal(t, 4, center.Len())

	_, err = c.Part(mustFaceSet(t, "UD"))
	assert.ErrorIs(t, err, nxcube.ErrUnknownPart)

	s, err := c.SliceByID(nxcube.SliceID{Faces: mustFaceSet(t, "UF"), Index: 1})
	require.NoError(t, err)
	assert.Equal(t, "UF#1", s.ID().String())
	assert.Len(t, s.Facelets(), 2)
	assert.NotNil(t, s.FaceletOn(nxcube.U))
	assert.Nil(t, s.FaceletOn(nxcube.R))

	_, err = c.SliceByID(nxcube.SliceID{Faces: mustFaceSet(t, "UF"), Index: 2})
	assert.ErrorIs(t, err, nxcube.ErrUnknownPart)
}

func TestPartOf(t *testing.T) {
	c, err := nxcube.New(5)
	require.NoError(t, err)

	p, s, err := c.PartOf(nxcube.F, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, "UF", p.FixedID().String())
	assert.Equal(t, 1, s.ID().Index)

	p, _, err = c.PartOf(nxcube.F, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, "DFR", p.FixedID().String())

	p, _, err = c.PartOf(nxcube.B, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, nxcube.KindCenter, p.Kind())
}

func TestIdentitiesOnSolvedCube(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		c, err := nxcube.New(n)
		require.NoError(t, err)
		for _, kind := range []nxcube.PartKind{nxcube.KindEdge, nxcube.KindCorner, nxcube.KindCenter} {
			for _, p := range c.Parts(kind) {
				assert.Equal(t, p.PositionID(), p.ColorsID(), "%dx%d %s", n, n, p)
				assert.True(t, p.InPosition())
				assert.True(t, p.MatchFaces())
				assert.True(t, p.Uniform())
			}
		}
	}
}

func TestFaceTurnKeepsPositionIDs(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)
	uf := mustFaceSet(t, "UF")
	before, err := c.PositionID(uf)
	require.NoError(t, err)

	require.NoError(t, c.Apply(nxcube.MoveF))
	after, err := c.PositionID(uf)
	require.NoError(t, err)
	assert.Equal(t, before, after, "face turns never change position ids")

	// F carries the FL edge up into UF.
	colors, err := c.ColorsID(uf)
	require.NoError(t, err)
	assert.Equal(t, nxcube.NewColorSet(nxcube.Green, nxcube.Orange), colors)
	in, err := c.InPosition(uf)
	require.NoError(t, err)
	assert.False(t, in)
	match, err := c.MatchFaces(uf)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestSliceTurnChangesPositionIDs(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)
	uf := mustFaceSet(t, "UF")

	// M follows L: F moves down to D, U moves to F.
	require.NoError(t, c.Apply(nxcube.MoveM))
	pos, err := c.PositionID(uf)
	require.NoError(t, err)
	assert.Equal(t, nxcube.NewColorSet(nxcube.Blue, nxcube.White), pos)
	colors, err := c.ColorsID(uf)
	require.NoError(t, err)
	assert.Equal(t, nxcube.NewColorSet(nxcube.Blue, nxcube.White), colors)
	in, err := c.InPosition(uf)
	require.NoError(t, err)
	assert.True(t, in, "the UB edge followed the B center up")
}

func TestReorientRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		for _, axis := range nxcube.Axes {
			c, err := nxcube.New(n, nxcube.WithConsistencyChecks(true))
			require.NoError(t, err)
			require.NoError(t, c.ApplyNotation("R U F'"))
			state := c.State()

			require.NoError(t, c.Reorient(axis, 1))
			assert.NotEqual(t, state, c.State())
			require.NoError(t, c.Reorient(axis, -1))
			assert.Equal(t, state, c.State(), "%dx%d %s then %s'", n, n, axis, axis)
			for _, f := range nxcube.FaceNames {
				assert.Equal(t, c.Scheme()[f], c.FaceColor(f))
			}
		}
	}
}

func TestReorientKeepsEveryPartInPosition(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		for _, mv := range []nxcube.Move{nxcube.MoveX, nxcube.MoveYPrime, nxcube.RotationMove(nxcube.AxisZ, nxcube.Double)} {
			c, err := nxcube.New(n)
			require.NoError(t, err)
			require.NoError(t, c.Apply(mv))
			assert.True(t, c.IsSolved())
			for _, kind := range []nxcube.PartKind{nxcube.KindEdge, nxcube.KindCorner, nxcube.KindCenter} {
				for _, p := range c.Parts(kind) {
					assert.True(t, p.InPosition(), "%dx%d %s: %s", n, n, mv, p)
					assert.True(t, p.MatchFaces(), "%dx%d %s: %s", n, n, mv, p)
				}
			}
		}
	}
}

func TestReorientFaceColors(t *testing.T) {
	// x follows R: F comes up to U.
	for _, n := range []int{3, 4} {
		c, err := nxcube.New(n)
		require.NoError(t, err)
		require.NoError(t, c.Apply(nxcube.MoveX))
		assert.Equal(t, nxcube.Green, c.FaceColor(nxcube.U), "%dx%d", n, n)
		assert.Equal(t, nxcube.Yellow, c.FaceColor(nxcube.F), "%dx%d", n, n)
		assert.Equal(t, nxcube.Red, c.FaceColor(nxcube.R), "%dx%d", n, n)
		assert.Equal(t, nxcube.Blue, c.FaceColor(nxcube.D), "%dx%d", n, n)
	}
}
