package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/recorder"
	"github.com/SeamusWaldron/nxcube/internal/render"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var sessionLimit int

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect recorded sessions",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, db, err := openSessionEnv(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		sessions, err := storage.NewSessionRepository(db).List(sessionLimit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			e.printf("No sessions recorded. Start one with: nxcube play --record\n")
			return nil
		}

		moves := storage.NewMoveRepository(db)
		e.printf("%-36s  %-7s  %-6s  %-19s  %s\n", "ID", "Size", "Moves", "Created", "Notes")
		e.printf("%s\n", strings.Repeat("-", 90))
		for _, s := range sessions {
			count, err := moves.Count(s.SessionID)
			if err != nil {
				return err
			}
			e.printf("%-36s  %-7s  %-6d  %-19s  %s\n",
				s.SessionID, fmt.Sprintf("%dx%d", s.Size, s.Size), count,
				s.CreatedAt.Local().Format(time.DateTime), deref(s.Notes))
		}
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id|latest>",
	Short: "Show a session's moves and phase marks",
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

		e.printf("Session:  %s\n", s.SessionID)
		e.printf("Size:     %dx%d\n", s.Size, s.Size)
		e.printf("Created:  %s\n", s.CreatedAt.Local().Format(time.DateTime))
		if s.Scramble != nil {
			e.printf("Scramble: %s\n", *s.Scramble)
		}
		if s.Notes != nil {
			e.printf("Notes:    %s\n", *s.Notes)
		}
		e.printf("Moves:    %d\n", len(moves))
		if len(moves) > 0 {
			e.printf("\n%s\n", nxcube.FormatMoves(moves))
		}
		if len(marks) > 0 {
			e.printf("\nPhases:\n")
			for _, m := range marks {
				e.printf("  move %-5d %s\n", m.MoveIndex, m.PhaseKey)
			}
		}
		return nil
	},
}

var sessionReplayCmd = &cobra.Command{
	Use:   "replay <session-id|latest>",
	Short: "Rebuild a session's cube and print it",
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
		opts, err := e.cubeOptions()
		if err != nil {
			return err
		}
		res, err := recorder.Replay(db, s.SessionID, opts...)
		if err != nil {
			return err
		}

		r := render.New(nil)
		if plainNet {
			r = render.Plain()
		}
		e.printf("%s\n", r.Net(res.Cube))
		e.printf("Replayed %d moves (from snapshot at %d)\n", res.Moves, res.FromSnapshot)
		e.printf("Phase: %s\n", res.Cube.DetectPhase().DisplayName())
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and everything recorded for it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, db, err := openSessionEnv(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSessionRepository(db)
		if _, err := repo.Get(args[0]); err != nil {
			return err
		}
		if err := repo.Delete(args[0]); err != nil {
			return err
		}
		e.printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	sessionListCmd.Flags().IntVar(&sessionLimit, "limit", 20, "Number of sessions to list")
	sessionReplayCmd.Flags().BoolVar(&plainNet, "plain", false, "Print color letters without terminal colors")

	sessionCmd.AddCommand(sessionListCmd, sessionShowCmd, sessionReplayCmd, sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}

func openSessionEnv(cmd *cobra.Command) (*env, *storage.DB, error) {
	e, err := loadEnv(cmd)
	if err != nil {
		return nil, nil, err
	}
	db, err := e.openDB()
	if err != nil {
		return nil, nil, err
	}
	return e, db, nil
}

// resolveSession accepts a session id or "latest".
func resolveSession(db *storage.DB, id string) (*storage.Session, error) {
	repo := storage.NewSessionRepository(db)
	if id == "latest" {
		return repo.Latest()
	}
	return repo.Get(id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
