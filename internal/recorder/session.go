// Package recorder ties a live cube to its stored session: every move is
// persisted as it is played, phase milestones are marked, and the cube is
// snapshotted periodically so long sessions replay quickly.
package recorder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// DefaultSnapshotEvery is how many moves pass between snapshots.
const DefaultSnapshotEvery = 50

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateFailed
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrNotRecording is returned by operations that need an open session.
var ErrNotRecording = errors.New("recorder: no session in progress")

// Session records the moves played on a cube. It is safe for concurrent use;
// moves from a smart cube arrive on the BLE goroutine while the UI reads.
type Session struct {
	logger *log.Logger
	opts   []nxcube.Option

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	tracker   *nxcube.Tracker
	moveIndex int
	every     int
	pending   []nxcube.Phase

	sessions  *storage.SessionRepository
	moves     *storage.MoveRepository
	snapshots *storage.SnapshotRepository
	phases    *storage.PhaseRepository

	onMove  func(nxcube.Move)
	onPhase func(nxcube.Phase)
}

// NewSession creates a new session manager. opts configure every cube the
// session creates.
func NewSession(db *storage.DB, logger *log.Logger, opts ...nxcube.Option) *Session {
	return &Session{
		logger:    logger,
		opts:      opts,
		state:     StateIdle,
		every:     DefaultSnapshotEvery,
		sessions:  storage.NewSessionRepository(db),
		moves:     storage.NewMoveRepository(db),
		snapshots: storage.NewSnapshotRepository(db),
		phases:    storage.NewPhaseRepository(db),
	}
}

// SetSnapshotEvery changes the snapshot interval. n <= 0 disables snapshots.
func (s *Session) SetSnapshotEvery(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.every = n
}

// SetMoveCallback sets the callback for new moves.
func (s *Session) SetMoveCallback(cb func(nxcube.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// SetPhaseCallback sets the callback for newly reached phases.
func (s *Session) SetPhaseCallback(cb func(nxcube.Phase)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhase = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Cube returns a copy of the session's cube.
func (s *Session) Cube() *nxcube.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tracker == nil {
		return nil
	}
	return s.tracker.Cube().Clone()
}

// Start creates a session for a solved cube of size n, applies scramble
// to it and records the scramble moves.
func (s *Session) Start(n int, scramble []nxcube.Move, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session %s already in progress", s.sessionID)
	}

	tracker, err := nxcube.NewTracker(n, s.opts...)
	if err != nil {
		return "", err
	}

	id, err := s.sessions.Create(n, nxcube.FormatMoves(scramble), notes)
	if err != nil {
		return "", err
	}

	s.sessionID = id
	s.tracker = tracker
	s.moveIndex = 0
	s.state = StateRecording
	tracker.SetPhaseCallback(s.markPhase)

	if len(scramble) > 0 {
		if err := s.record(scramble); err != nil {
			if delErr := s.sessions.Delete(id); delErr != nil {
				s.logger.Warn("failed to drop session", "session", id, "error", delErr)
			}
			s.state = StateIdle
			s.sessionID = ""
			s.tracker = nil
			s.moveIndex = 0
			return "", err
		}
	}

	s.logger.Info("session started", "session", id, "size", n)
	return id, nil
}

// Resume reopens a stored session, rebuilding its cube by replay.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return fmt.Errorf("session %s already in progress", s.sessionID)
	}

	res, err := replay(s.sessions, s.moves, s.snapshots, sessionID, s.opts...)
	if err != nil {
		return err
	}
	tracker, err := nxcube.NewTracker(res.Session.Size, s.opts...)
	if err != nil {
		return err
	}
	if err := tracker.Cube().Restore(res.Cube.State()); err != nil {
		return fmt.Errorf("failed to restore cube: %w", err)
	}
	highest, err := s.highestMarked(sessionID)
	if err != nil {
		return err
	}
	tracker.SetHighestPhase(highest)
	tracker.SetPhaseCallback(s.markPhase)

	s.sessionID = sessionID
	s.tracker = tracker
	s.moveIndex = res.Moves
	s.state = StateRecording

	s.logger.Info("session resumed", "session", sessionID, "moves", res.Moves)
	return nil
}

// highestMarked returns the highest phase stored for a session.
func (s *Session) highestMarked(sessionID string) (nxcube.Phase, error) {
	marks, err := s.phases.GetPhaseMarks(sessionID)
	if err != nil {
		return nxcube.PhaseScrambled, err
	}
	highest := nxcube.PhaseScrambled
	for _, m := range marks {
		p, err := nxcube.ParsePhase(m.PhaseKey)
		if err != nil {
			s.logger.Warn("unknown phase mark", "session", sessionID, "phase", m.PhaseKey)
			continue
		}
		if p > highest {
			highest = p
		}
	}
	return highest, nil
}

// Apply plays moves on the session's cube and records them. A move the
// engine rejects is neither applied nor stored.
func (s *Session) Apply(moves ...nxcube.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	return s.record(moves)
}

// record must be called with s.mu held.
func (s *Session) record(moves []nxcube.Move) error {
	for _, m := range moves {
		highest := s.tracker.HighestPhase()
		s.pending = s.pending[:0]
		if err := s.tracker.ApplyMove(m); err != nil {
			if errors.Is(err, nxcube.ErrInvariant) {
				s.state = StateFailed
			}
			return err
		}
		if err := s.moves.CreateBatch(s.sessionID, []nxcube.Move{m}, s.moveIndex); err != nil {
			// The move is on the cube but not on disk; take it back along
			// with any phase it reached.
			s.pending = s.pending[:0]
			if _, undoErr := s.tracker.Undo(); undoErr != nil {
				s.state = StateFailed
			}
			s.tracker.SetHighestPhase(highest)
			return fmt.Errorf("failed to store move: %w", err)
		}
		s.moveIndex++
		s.flushPhases()

		if s.every > 0 && s.moveIndex%s.every == 0 {
			if err := s.snapshots.Save(s.sessionID, s.moveIndex, s.tracker.Cube().State()); err != nil {
				s.logger.Warn("snapshot failed", "session", s.sessionID, "error", err)
			}
		}

		if s.onMove != nil {
			go s.onMove(m)
		}
	}
	return nil
}

// markPhase runs inside the tracker's callback, so s.mu is already held.
// The phase is written once the triggering move is stored.
func (s *Session) markPhase(p nxcube.Phase) {
	s.pending = append(s.pending, p)
}

// flushPhases stores the phases reached by the last stored move.
func (s *Session) flushPhases() {
	for _, p := range s.pending {
		if _, err := s.phases.CreatePhaseMark(s.sessionID, s.moveIndex, p.String()); err != nil {
			s.logger.Warn("phase mark failed", "session", s.sessionID, "phase", p, "error", err)
		}
		s.logger.Info("phase reached", "session", s.sessionID, "phase", p.DisplayName())
		if s.onPhase != nil {
			go s.onPhase(p)
		}
	}
	s.pending = s.pending[:0]
}

// End closes the session. The stored data stays.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return ErrNotRecording
	}
	if s.tracker != nil && s.every > 0 {
		if err := s.snapshots.Save(s.sessionID, s.moveIndex, s.tracker.Cube().State()); err != nil {
			return err
		}
	}
	s.logger.Info("session ended", "session", s.sessionID, "moves", s.moveIndex)
	s.state = StateIdle
	s.tracker = nil
	return nil
}
