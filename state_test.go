package nxcube_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestStateOfSolvedCube(t *testing.T) {
	c, err := nxcube.New(2)
	require.NoError(t, err)
	assert.Equal(t, "WWWWRRRRGGGGYYYYOOOOBBBB", c.State())
}

func TestRestoreRoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		c, err := nxcube.New(n)
		require.NoError(t, err)
		_, err = c.Scramble(rand.New(rand.NewSource(int64(n))), 30)
		require.NoError(t, err)

		other, err := nxcube.New(n, nxcube.WithConsistencyChecks(true))
		require.NoError(t, err)
		require.NoError(t, other.Restore(c.State()))
		assert.Equal(t, c.State(), other.State())
		assert.Equal(t, c.String(), other.String())
		require.NoError(t, other.Check())
	}
}

func TestRestoreRejectsBadStates(t *testing.T) {
	c, err := nxcube.New(2)
	require.NoError(t, err)
	solved := c.State()

	tests := map[string]string{
		"short":       solved[1:],
		"long":        solved + "W",
		"bad letter":  "Q" + solved[1:],
		"bad counts":  "Y" + solved[1:],
		"empty":       "",
		"lower wrong": strings.Repeat("x", len(solved)),
	}
	for name, state := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.Restore(state), nxcube.ErrInvalidState)
			assert.Equal(t, solved, c.State(), "failed restore must not change the cube")
		})
	}
}

func TestRestoreFollowsOddCenters(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)
	require.NoError(t, c.Apply(nxcube.MoveY))

	other, err := nxcube.New(3)
	require.NoError(t, err)
	require.NoError(t, other.Restore(c.State()))
	for _, f := range nxcube.FaceNames {
		assert.Equal(t, c.FaceColor(f), other.FaceColor(f), "face %s", f)
	}
	assert.True(t, other.IsSolved())
}

func TestScrambleAvoidsRepeatedAxis(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6} {
		moves := nxcube.Scramble(rand.New(rand.NewSource(42)), n, 60)
		require.Len(t, moves, 60)
		for i, m := range moves {
			if n <= 3 {
				assert.Equal(t, nxcube.FaceTurn, m.Kind, "%dx%d scramble uses face turns", n, n)
			}
			if m.Kind == nxcube.SliceTurn {
				assert.GreaterOrEqual(t, m.Slice, 0)
				assert.LessOrEqual(t, m.Slice, n-3)
			}
			if i > 0 {
				assert.NotEqual(t, axisOf(moves[i-1]), axisOf(m), "moves %d and %d share an axis", i-1, i)
			}
		}
	}
}

func TestScrambleIsDeterministic(t *testing.T) {
	a := nxcube.Scramble(rand.New(rand.NewSource(1)), 4, 25)
	b := nxcube.Scramble(rand.New(rand.NewSource(1)), 4, 25)
	assert.Equal(t, nxcube.FormatMoves(a), nxcube.FormatMoves(b))
}

func TestScrambleRejectsNegativeLength(t *testing.T) {
	assert.Empty(t, nxcube.Scramble(rand.New(rand.NewSource(1)), 3, -4))

	c, err := nxcube.New(3)
	require.NoError(t, err)
	moves, err := c.Scramble(rand.New(rand.NewSource(1)), -1)
	assert.ErrorIs(t, err, nxcube.ErrInvalidLength)
	assert.Nil(t, moves)
	assert.True(t, c.IsSolved())
}

func axisOf(m nxcube.Move) nxcube.Axis {
	if m.Kind == nxcube.FaceTurn {
		return nxcube.AxisOf(m.Face)
	}
	return m.Axis
}
