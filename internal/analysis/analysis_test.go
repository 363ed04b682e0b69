package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

func parse(t *testing.T, s string) []nxcube.Move {
	t.Helper()
	moves, err := nxcube.ParseMoves(s)
	require.NoError(t, err)
	return moves
}

// timed stamps moves at the given millisecond offsets.
func timed(t *testing.T, s string, offsets ...int64) []nxcube.Move {
	t.Helper()
	moves := parse(t, s)
	require.Len(t, offsets, len(moves))
	base := time.UnixMilli(1_700_000_000_000)
	for i := range moves {
		moves[i] = moves[i].WithTime(base.Add(time.Duration(offsets[i]) * time.Millisecond))
	}
	return moves
}

func TestMineNGrams(t *testing.T) {
	moves := parse(t, "R U R' U' R U R' U' F")
	report := MineNGrams(moves, 2, 4, 3)

	four := report.TopNGrams[4]
	require.Len(t, four, 1)
	assert.Equal(t, "R U R' U'", four[0].Notation())
	assert.Equal(t, 2, four[0].Count)
	assert.Equal(t, 0, four[0].Occurrences[0].StartIndex)
	assert.Equal(t, 4, four[0].Occurrences[1].StartIndex)

	two := report.TopNGrams[2]
	require.Len(t, two, 3)
	assert.Equal(t, "R U", two[0].Notation())
	assert.Equal(t, "U R'", two[1].Notation())
	assert.Equal(t, "R' U'", two[2].Notation())
}

func TestMineNGramsKeepsSlicesApart(t *testing.T) {
	moves := parse(t, "M[0] U M[1] U M[0] U")
	report := MineNGrams(moves, 2, 2, 5)
	require.Len(t, report.TopNGrams[2], 1)
	assert.Equal(t, "M[0] U", report.TopNGrams[2][0].Notation())
	assert.Equal(t, 2, report.TopNGrams[2][0].Count)
}

func TestMineNGramsShortInput(t *testing.T) {
	assert.Empty(t, MineNGrams(nil, 2, 4, 3).TopNGrams)
	assert.Empty(t, MineNGrams(parse(t, "R"), 2, 4, 3).TopNGrams)
	assert.Empty(t, MineNGrams(parse(t, "R U F D"), 2, 4, 3).TopNGrams, "nothing repeats")
}

func TestRollingHashMatchesFreshHash(t *testing.T) {
	rolled := NewRollingHash(3)
	for _, tok := range []uint16{4, 8, 15, 16, 23} {
		rolled.Roll(tok)
	}
	fresh := NewRollingHash(3)
	for _, tok := range []uint16{15, 16, 23} {
		fresh.Roll(tok)
	}
	assert.True(t, rolled.Ready())
	assert.Equal(t, fresh.Hash(), rolled.Hash())
	assert.Equal(t, []uint16{15, 16, 23}, rolled.Window())
}

func TestDetectTools(t *testing.T) {
	moves := parse(t, "F R U R' U R U2 R' U R U R' U'")
	report := DetectTools(moves, AllTools)

	require.Len(t, report.Matches, 2)
	assert.Equal(t, "Sune", report.Matches[0].ToolName)
	assert.Equal(t, 1, report.Matches[0].StartIndex)
	assert.Equal(t, 7, report.Matches[0].EndIndex)
	assert.Equal(t, "Sexy Move", report.Matches[1].ToolName)
	assert.Equal(t, 9, report.Matches[1].StartIndex)
	assert.Equal(t, 2, report.UnmatchedMoves)
	assert.Equal(t, 0, report.ConsecutiveRepeats)
	assert.ElementsMatch(t, []string{"Sune", "Sexy Move"}, report.Names())
}

func TestDetectToolsPrefersLongerSequence(t *testing.T) {
	report := DetectTools(nxcube.TPerm, AllTools)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "T-Perm", report.Matches[0].ToolName)
	assert.Equal(t, 0, report.UnmatchedMoves)

	report = DetectTools(parse(t, "R U R' U' R U R' U'"), AllTools)
	assert.Equal(t, 2, report.Counts["Sexy Move"])
	assert.Equal(t, 1, report.ConsecutiveRepeats)
}

func TestSummarize(t *testing.T) {
	moves := timed(t, "R R U U'", 0, 500, 3000, 3500)
	marks := []storage.PhaseMark{
		{MoveIndex: 2, PhaseKey: "reduced"},
		{MoveIndex: 4, PhaseKey: "solved"},
	}
	s := Summarize(&storage.Session{SessionID: "abc", Size: 3}, moves, marks, DefaultPauseThreshold)

	assert.Equal(t, "abc", s.SessionID)
	assert.Equal(t, 4, s.TotalMoves)
	assert.Equal(t, 1, s.OptimizedMoves, "R R merges and U U' cancels")
	assert.InDelta(t, 0.25, s.Efficiency, 1e-9)
	assert.Equal(t, int64(3500), s.DurationMs)
	assert.InDelta(t, 4/3.5, s.TPSOverall, 1e-9)
	assert.Equal(t, int64(2500), s.LongestPauseMs)
	require.Len(t, s.Pauses, 1)
	assert.Equal(t, 1, s.Pauses[0].AfterMoveIndex)

	require.Len(t, s.PhaseStats, 2)
	assert.Equal(t, "Edges Paired", s.PhaseStats[0].DisplayName)
	assert.Equal(t, 2, s.PhaseStats[0].MoveCount)
	assert.Equal(t, int64(500), s.PhaseStats[0].DurationMs)
	assert.Equal(t, "Solved", s.PhaseStats[1].DisplayName)
	assert.Equal(t, int64(3000), s.PhaseStats[1].DurationMs)

	assert.Equal(t, "R", s.Profile.MostUsedLayer)
	assert.Equal(t, 2, s.Profile.LayerCounts["U"])
	assert.Equal(t, 1, s.Profile.LayerPairs["R U"])
	assert.Equal(t, 4, s.Profile.KindCounts[nxcube.FaceTurn])
}

func TestSummarizeUntimedMoves(t *testing.T) {
	s := Summarize(&storage.Session{SessionID: "x", Size: 4}, parse(t, "R U"), nil, DefaultPauseThreshold)
	assert.Zero(t, s.DurationMs)
	assert.Zero(t, s.TPSOverall)
	assert.Empty(t, s.Pauses)
	assert.Empty(t, s.PhaseStats)
}
