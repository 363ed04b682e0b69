package cli

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/analysis"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var (
	statsMinN  int
	statsMaxN  int
	statsTopK  int
	statsPause time.Duration
)

var sessionStatsCmd = &cobra.Command{
	Use:   "stats <session-id|latest>",
	Short: "Show timing, phase and pattern statistics for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, db, err := openSessionEnv(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		s, err := resolveSession(db, args[0])
		if err != nil {
			return err
		}
		records, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
		if err != nil {
			return err
		}
		moves, err := storage.ToMoves(records)
		if err != nil {
			return err
		}
		marks, err := storage.NewPhaseRepository(db).GetPhaseMarks(s.SessionID)
		if err != nil {
			return err
		}

		sum := analysis.Summarize(s, moves, marks, statsPause)
		e.printf("Session:     %s (%dx%d)\n", sum.SessionID, sum.Size, sum.Size)
		e.printf("Moves:       %d (%d after merging, %.0f%%)\n", sum.TotalMoves, sum.OptimizedMoves, sum.Efficiency*100)
		e.printf("Duration:    %s\n", time.Duration(sum.DurationMs)*time.Millisecond)
		e.printf("TPS:         %.2f\n", sum.TPSOverall)
		e.printf("Pauses:      %d over %s (longest %s)\n", len(sum.Pauses), statsPause,
			time.Duration(sum.LongestPauseMs)*time.Millisecond)
		if sum.Profile.MostUsedLayer != "" {
			e.printf("Most used:   %s (%d)\n", sum.Profile.MostUsedLayer, sum.Profile.LayerCounts[sum.Profile.MostUsedLayer])
		}

		if len(sum.PhaseStats) > 0 {
			e.printf("\n%-16s  %-6s  %-10s  %s\n", "Phase", "Moves", "Duration", "TPS")
			for _, ps := range sum.PhaseStats {
				e.printf("%-16s  %-6d  %-10s  %.2f\n", ps.DisplayName, ps.MoveCount,
					time.Duration(ps.DurationMs)*time.Millisecond, ps.TPS)
			}
		}

		tools := analysis.DetectTools(moves, analysis.AllTools)
		if len(tools.Matches) > 0 {
			e.printf("\nAlgorithms:\n")
			for _, name := range tools.Names() {
				e.printf("  %-14s x%d\n", name, tools.Counts[name])
			}
		}

		report := analysis.MineNGrams(moves, statsMinN, statsMaxN, statsTopK)
		if len(report.TopNGrams) > 0 {
			e.printf("\nRepeated sequences:\n")
			ns := make([]int, 0, len(report.TopNGrams))
			for n := range report.TopNGrams {
				ns = append(ns, n)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(ns)))
			for _, n := range ns {
				for _, g := range report.TopNGrams[n] {
					e.printf("  x%-3d %s\n", g.Count, g.Notation())
				}
			}
		}
		return nil
	},
}

func init() {
	sessionStatsCmd.Flags().IntVar(&statsMinN, "min-n", 4, "Shortest repeated sequence to report")
	sessionStatsCmd.Flags().IntVar(&statsMaxN, "max-n", 8, "Longest repeated sequence to report")
	sessionStatsCmd.Flags().IntVar(&statsTopK, "top", 3, "Sequences to report per length")
	sessionStatsCmd.Flags().DurationVar(&statsPause, "pause", analysis.DefaultPauseThreshold, "Gap that counts as a pause")
	sessionCmd.AddCommand(sessionStatsCmd)
}
