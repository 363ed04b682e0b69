package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/recorder"
	"github.com/SeamusWaldron/nxcube/internal/tui"
)

var (
	playRecord bool
	playResume string
	playNotes  string
	playSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Start an interactive screen: type moves in standard notation and press
enter to apply them.

Keyboard shortcuts:
  enter   - Apply the typed moves
  ctrl+z  - Undo the last move
  ctrl+r  - Reset to solved
  ctrl+s  - Scramble
  esc     - Quit

With --record every move is stored in a new session; --resume continues
a stored one.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&cubeSize, "size", "n", 0, "Cube size (default from config)")
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Record moves to a new session")
	playCmd.Flags().StringVar(&playResume, "resume", "", "Resume a session by id, or 'latest'")
	playCmd.Flags().StringVar(&playNotes, "notes", "", "Notes stored with a new session")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "RNG seed for scrambles (0 = random based on time)")
	rootCmd.AddCommand(playCmd)
}

// tuiLogger keeps log lines off the screen while a program owns it.
func (e *env) tuiLogger() *log.Logger {
	if verbose {
		return e.logger
	}
	return log.New(io.Discard)
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	n := cubeSize
	if n == 0 {
		n = e.cfg.Size
	}

	backend, title, cleanup, err := playBackend(e, n, fmt.Sprintf("nxcube %dx%d", n, n))
	if err != nil {
		return err
	}
	defer cleanup()

	model := tui.New(backend, tui.Options{
		Title:          title,
		ScrambleLength: e.cfg.ScrambleLength,
		Rand:           newRand(playSeed),
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// playBackend picks a plain or recording backend from the flags.
func playBackend(e *env, n int, title string) (tui.Backend, string, func(), error) {
	opts, err := e.cubeOptions()
	if err != nil {
		return nil, "", nil, err
	}

	if !playRecord && playResume == "" {
		b, err := tui.NewLocalBackend(n, opts...)
		return b, title, func() {}, err
	}

	db, err := e.openDB()
	if err != nil {
		return nil, "", nil, err
	}
	session := recorder.NewSession(db, e.tuiLogger(), opts...)

	if playResume != "" {
		s, err := resolveSession(db, playResume)
		if err != nil {
			db.Close()
			return nil, "", nil, err
		}
		if err := session.Resume(s.SessionID); err != nil {
			db.Close()
			return nil, "", nil, err
		}
		n = s.Size
	} else if _, err := session.Start(n, nil, playNotes); err != nil {
		db.Close()
		return nil, "", nil, err
	}

	cleanup := func() {
		if err := session.End(); err != nil && !errors.Is(err, recorder.ErrNotRecording) {
			e.logger.Warn("failed to end session", "error", err)
		}
		db.Close()
		e.logger.Info("session saved", "session", session.SessionID(), "moves", session.MoveCount())
	}
	title = fmt.Sprintf("nxcube %dx%d  [recording %s]", n, n, shortID(session.SessionID()))
	return tui.NewSessionBackend(session, n), title, cleanup, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

