package analysis

import (
	"sort"

	"github.com/SeamusWaldron/nxcube"
)

// Tool is a named move sequence to look for in a session.
type Tool struct {
	Name     string
	Sequence []nxcube.Move
}

func mustTool(name, notation string) Tool {
	moves, err := nxcube.ParseMoves(notation)
	if err != nil {
		panic(err)
	}
	return Tool{Name: name, Sequence: moves}
}

// Known tools, longest first so the matcher prefers the longer sequence.
var (
	ToolTPerm       = Tool{Name: "T-Perm", Sequence: nxcube.TPerm}
	ToolSune        = mustTool("Sune", "R U R' U R U2 R'")
	ToolAntiSune    = mustTool("Anti-Sune", "R U2 R' U' R U' R'")
	ToolLeftSune    = mustTool("Left Sune", "L' U' L U' L' U2 L")
	ToolSexy        = Tool{Name: "Sexy Move", Sequence: nxcube.SexyMove}
	ToolSledge      = mustTool("Sledgehammer", "R' F R F'")
	ToolInverseSexy = Tool{Name: "Inverse Sexy", Sequence: nxcube.InverseSexyMove}
)

// AllTools lists the known tools in matching order.
var AllTools = []Tool{ToolTPerm, ToolSune, ToolAntiSune, ToolLeftSune, ToolSexy, ToolSledge, ToolInverseSexy}

// ToolMatch is one occurrence of a tool.
type ToolMatch struct {
	ToolName   string `json:"tool_name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	TsMs       int64  `json:"ts_ms"`
}

// ToolReport summarizes tool usage over a move list.
type ToolReport struct {
	Matches            []ToolMatch    `json:"matches"`
	Counts             map[string]int `json:"counts"`
	UnmatchedMoves     int            `json:"unmatched_moves"`
	ConsecutiveRepeats int            `json:"consecutive_repeats"`
	AvgTimeBetweenMs   float64        `json:"avg_time_between_ms"`
}

// Names returns the tools found, most used first.
func (r *ToolReport) Names() []string {
	names := make([]string, 0, len(r.Counts))
	for n := range r.Counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if r.Counts[names[i]] != r.Counts[names[j]] {
			return r.Counts[names[i]] > r.Counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// DetectTools scans moves left to right for non-overlapping tool matches.
func DetectTools(moves []nxcube.Move, tools []Tool) *ToolReport {
	report := &ToolReport{Counts: make(map[string]int)}

	lastEnd := -1
	var gaps []int64
	for i := 0; i < len(moves); i++ {
		tool, ok := matchAt(moves, i, tools)
		if !ok {
			report.UnmatchedMoves++
			continue
		}
		end := i + len(tool.Sequence) - 1
		report.Matches = append(report.Matches, ToolMatch{
			ToolName:   tool.Name,
			StartIndex: i,
			EndIndex:   end,
			TsMs:       timestamp(moves[i]),
		})
		report.Counts[tool.Name]++

		if lastEnd >= 0 {
			if lastEnd == i-1 {
				report.ConsecutiveRepeats++
			}
			gaps = append(gaps, gap(moves[lastEnd], moves[i]))
		}
		lastEnd = end
		i = end
	}

	if len(gaps) > 0 {
		var total int64
		for _, g := range gaps {
			total += g
		}
		report.AvgTimeBetweenMs = float64(total) / float64(len(gaps))
	}
	return report
}

func matchAt(moves []nxcube.Move, start int, tools []Tool) (Tool, bool) {
	for _, t := range tools {
		if matchesTool(moves, start, t.Sequence) {
			return t, true
		}
	}
	return Tool{}, false
}

// matchesTool checks if the move sequence starting at start matches seq.
func matchesTool(moves []nxcube.Move, start int, seq []nxcube.Move) bool {
	if len(seq) == 0 || start+len(seq) > len(moves) {
		return false
	}
	for i, t := range seq {
		if !sameMove(moves[start+i], t) {
			return false
		}
	}
	return true
}

func sameMove(a, b nxcube.Move) bool {
	return a.Kind == b.Kind && a.Face == b.Face && a.Axis == b.Axis &&
		a.Slice == b.Slice && a.Turn == b.Turn
}
