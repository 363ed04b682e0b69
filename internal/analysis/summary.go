package analysis

import (
	"sort"
	"time"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// DefaultPauseThreshold is the gap after which a break between moves
// counts as a pause.
const DefaultPauseThreshold = 1500 * time.Millisecond

// SessionSummary contains statistics for a recorded session.
type SessionSummary struct {
	SessionID         string           `json:"session_id"`
	Size              int              `json:"size"`
	TotalMoves        int              `json:"total_moves"`
	OptimizedMoves    int              `json:"optimized_moves"`
	Efficiency        float64          `json:"efficiency"`
	DurationMs        int64            `json:"duration_ms"`
	TPSOverall        float64          `json:"tps_overall"`
	AvgMoveDurationMs float64          `json:"avg_move_duration_ms"`
	LongestPauseMs    int64            `json:"longest_pause_ms"`
	Pauses            []PauseInfo      `json:"pauses,omitempty"`
	PhaseStats        []PhaseStats     `json:"phase_stats,omitempty"`
	Profile           *MovementProfile `json:"profile"`
}

// PhaseStats covers the moves made between two phase marks.
type PhaseStats struct {
	PhaseKey    string  `json:"phase_key"`
	DisplayName string  `json:"display_name"`
	StartIndex  int     `json:"start_index"`
	EndIndex    int     `json:"end_index"`
	MoveCount   int     `json:"move_count"`
	DurationMs  int64   `json:"duration_ms"`
	TPS         float64 `json:"tps"`
}

// PauseInfo represents a pause during solving.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// Summarize builds the summary of a session from its moves and phase marks.
// A mark's move index is the number of moves after which the phase was
// reached.
func Summarize(session *storage.Session, moves []nxcube.Move, marks []storage.PhaseMark, pauseThreshold time.Duration) *SessionSummary {
	s := &SessionSummary{
		SessionID:      session.SessionID,
		Size:           session.Size,
		TotalMoves:     len(moves),
		OptimizedMoves: len(nxcube.MergeMoves(moves)),
		Profile:        AnalyzeMovementProfile(moves),
	}
	if s.TotalMoves > 0 {
		s.Efficiency = float64(s.OptimizedMoves) / float64(s.TotalMoves)
	}
	if len(moves) > 1 {
		s.DurationMs = gap(moves[0], moves[len(moves)-1])
	}
	s.TPSOverall = CalculateTPS(len(moves), s.DurationMs)
	s.AvgMoveDurationMs = CalculateAvgMoveDuration(moves)
	s.LongestPauseMs = FindLongestPause(moves)
	s.Pauses = AnalyzePauses(moves, pauseThreshold)
	s.PhaseStats = SplitPhases(moves, marks)
	return s
}

// SplitPhases cuts the move list at each phase mark.
func SplitPhases(moves []nxcube.Move, marks []storage.PhaseMark) []PhaseStats {
	var stats []PhaseStats
	start := 0
	for _, mark := range marks {
		end := mark.MoveIndex
		if end > len(moves) {
			end = len(moves)
		}
		if end < start {
			continue
		}
		ps := PhaseStats{
			PhaseKey:    mark.PhaseKey,
			DisplayName: displayName(mark.PhaseKey),
			StartIndex:  start,
			EndIndex:    end,
			MoveCount:   end - start,
		}
		if end > 0 {
			from := start - 1
			if from < 0 {
				from = 0
			}
			ps.DurationMs = gap(moves[from], moves[end-1])
		}
		ps.TPS = CalculateTPS(ps.MoveCount, ps.DurationMs)
		stats = append(stats, ps)
		start = end
	}
	return stats
}

func displayName(key string) string {
	p, err := nxcube.ParsePhase(key)
	if err != nil {
		return key
	}
	return p.DisplayName()
}

func gap(a, b nxcube.Move) int64 {
	if a.Time.IsZero() || b.Time.IsZero() {
		return 0
	}
	return b.Time.Sub(a.Time).Milliseconds()
}

// AnalyzePauses finds all gaps of at least threshold between moves.
func AnalyzePauses(moves []nxcube.Move, threshold time.Duration) []PauseInfo {
	var pauses []PauseInfo
	for i := 1; i < len(moves); i++ {
		g := gap(moves[i-1], moves[i])
		if g >= threshold.Milliseconds() {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     g,
				TsMs:           timestamp(moves[i-1]),
			})
		}
	}
	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moves int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moves) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []nxcube.Move) float64 {
	if len(moves) < 2 {
		return 0
	}
	return float64(gap(moves[0], moves[len(moves)-1])) / float64(len(moves)-1)
}

// FindLongestPause finds the longest gap between two moves.
func FindLongestPause(moves []nxcube.Move) int64 {
	var longest int64
	for i := 1; i < len(moves); i++ {
		if g := gap(moves[i-1], moves[i]); g > longest {
			longest = g
		}
	}
	return longest
}

// MovementProfile counts which layers and turn amounts are used.
type MovementProfile struct {
	LayerCounts   map[string]int          `json:"layer_counts"` // R, M[1], x ...
	TurnCounts    map[nxcube.Turn]int     `json:"turn_counts"`
	KindCounts    map[nxcube.MoveKind]int `json:"kind_counts"`
	MostUsedLayer string                  `json:"most_used_layer"`
	LayerPairs    map[string]int          `json:"layer_pairs"` // e.g. "R U" -> count
}

// layer names the layer a move turns, without its turn amount.
func layer(m nxcube.Move) string {
	m.Turn = nxcube.CW
	return m.Notation()
}

// AnalyzeMovementProfile analyzes which layers and turns are most used.
func AnalyzeMovementProfile(moves []nxcube.Move) *MovementProfile {
	profile := &MovementProfile{
		LayerCounts: make(map[string]int),
		TurnCounts:  make(map[nxcube.Turn]int),
		KindCounts:  make(map[nxcube.MoveKind]int),
		LayerPairs:  make(map[string]int),
	}

	for i, m := range moves {
		profile.LayerCounts[layer(m)]++
		profile.TurnCounts[m.Turn]++
		profile.KindCounts[m.Kind]++
		if i > 0 {
			profile.LayerPairs[layer(moves[i-1])+" "+layer(m)]++
		}
	}

	layers := make([]string, 0, len(profile.LayerCounts))
	for l := range profile.LayerCounts {
		layers = append(layers, l)
	}
	sort.Strings(layers)
	best := 0
	for _, l := range layers {
		if profile.LayerCounts[l] > best {
			best = profile.LayerCounts[l]
			profile.MostUsedLayer = l
		}
	}
	return profile
}
