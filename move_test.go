package nxcube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want nxcube.Move
	}{
		{"R", nxcube.MoveR},
		{"R'", nxcube.MoveRPrime},
		{"R`", nxcube.MoveRPrime},
		{"R2", nxcube.MoveR2},
		{"R2'", nxcube.MoveR2},
		{"B", nxcube.MoveB},
		{"M", nxcube.MoveM},
		{"E'", nxcube.MoveEPrime},
		{"S2", nxcube.SliceMove(nxcube.AxisZ, nxcube.AllSlices, nxcube.Double)},
		{"M[1]'", nxcube.SliceMove(nxcube.AxisX, 1, nxcube.CCW)},
		{"E[0]", nxcube.SliceMove(nxcube.AxisY, 0, nxcube.CW)},
		{"x", nxcube.MoveX},
		{"y'", nxcube.MoveYPrime},
		{"z2", nxcube.RotationMove(nxcube.AxisZ, nxcube.Double)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := nxcube.ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveRejects(t *testing.T) {
	for _, in := range []string{"", "Q", "R3", "r", "M[", "M[-1]", "M[a]", "X", "Rw"} {
		_, err := nxcube.ParseMove(in)
		assert.ErrorIs(t, err, nxcube.ErrInvalidNotation, "ParseMove(%q)", in)
	}
}

func TestParseMovesIsStrict(t *testing.T) {
	_, err := nxcube.ParseMoves("R U Q U'")
	require.ErrorIs(t, err, nxcube.ErrInvalidNotation)
	assert.Contains(t, err.Error(), "move 3")
	assert.Contains(t, err.Error(), `"Q"`)

	moves, err := nxcube.ParseMoves("  R  U R'\tU' ")
	require.NoError(t, err)
	assert.Equal(t, nxcube.SexyMove, moves)
}

func TestFormatMovesRoundTrip(t *testing.T) {
	const seq = "R U' F2 M[1]' E S2 x y' z2 M"
	moves, err := nxcube.ParseMoves(seq)
	require.NoError(t, err)
	assert.Equal(t, seq, nxcube.FormatMoves(moves))
	assert.Equal(t, "", nxcube.FormatMoves(nil))
}

func TestInverse(t *testing.T) {
	assert.Equal(t, nxcube.MoveRPrime, nxcube.MoveR.Inverse())
	assert.Equal(t, nxcube.MoveR, nxcube.MoveRPrime.Inverse())
	assert.Equal(t, nxcube.MoveR2, nxcube.MoveR2.Inverse())
	assert.Equal(t, nxcube.MoveM, nxcube.MoveMPrime.Inverse())
	assert.Equal(t, nxcube.InverseSexyMove, nxcube.InvertMoves(nxcube.SexyMove))
	assert.Empty(t, nxcube.InvertMoves(nil))
}

func TestMergeMoves(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R2", ""},
		{"R R R", "R'"},
		{"U R R' U'", ""},
		{"R L", "R L"},
		{"M[0] M[1]", "M[0] M[1]"},
		{"M[1] M[1]", "M[1]2"},
		{"x x'", ""},
		{"F2 F", "F'"},
	}
	for _, tt := range tests {
		moves, err := nxcube.ParseMoves(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, nxcube.FormatMoves(nxcube.MergeMoves(moves)), "MergeMoves(%s)", tt.in)
	}
}

func TestApplyInverseRestoresState(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		c, err := nxcube.New(n, nxcube.WithConsistencyChecks(true))
		require.NoError(t, err)
		seq := "R U M[0] x F' E2 S' y2 B D L' z"
		require.NoError(t, c.ApplyNotation(seq))
		assert.False(t, c.IsSolved())

		moves, err := nxcube.ParseMoves(seq)
		require.NoError(t, err)
		require.NoError(t, c.Apply(nxcube.InvertMoves(moves)...))
		assert.True(t, c.IsSolved(), "%dx%d after inverse:\n%s", n, n, c)
	}
}

func TestApplyStopsAtInvalidSlice(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)
	err = c.ApplyNotation("R M[1] U")
	require.ErrorIs(t, err, nxcube.ErrSliceIndex)
	assert.Contains(t, err.Error(), "M[1]")

	small, err := nxcube.New(2)
	require.NoError(t, err)
	assert.ErrorIs(t, small.Apply(nxcube.MoveM), nxcube.ErrSliceIndex)
}
