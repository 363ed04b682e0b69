package tui

import (
	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/recorder"
)

// Backend owns the cube the play screen drives.
type Backend interface {
	Apply(moves ...nxcube.Move) error
	Reset() error
	Cube() *nxcube.Cube
}

// LocalBackend plays on an in-memory tracker.
type LocalBackend struct {
	tracker *nxcube.Tracker
}

// NewLocalBackend creates a backend for a solved cube of size n.
func NewLocalBackend(n int, opts ...nxcube.Option) (*LocalBackend, error) {
	t, err := nxcube.NewTracker(n, opts...)
	if err != nil {
		return nil, err
	}
	return &LocalBackend{tracker: t}, nil
}

func (b *LocalBackend) Apply(moves ...nxcube.Move) error { return b.tracker.ApplyMoves(moves) }

func (b *LocalBackend) Reset() error {
	b.tracker.Reset()
	return nil
}

func (b *LocalBackend) Cube() *nxcube.Cube { return b.tracker.Cube() }

// SessionBackend records every move to a stored session. Reset ends the
// session and starts a fresh one of the same size.
type SessionBackend struct {
	session *recorder.Session
	size    int
}

// NewSessionBackend wraps a session that is already recording.
func NewSessionBackend(s *recorder.Session, size int) *SessionBackend {
	return &SessionBackend{session: s, size: size}
}

func (b *SessionBackend) Apply(moves ...nxcube.Move) error { return b.session.Apply(moves...) }

func (b *SessionBackend) Reset() error {
	if err := b.session.End(); err != nil {
		return err
	}
	_, err := b.session.Start(b.size, nil, "")
	return err
}

func (b *SessionBackend) Cube() *nxcube.Cube { return b.session.Cube() }
