package recorder

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// ReplayResult is a stored session rebuilt in memory.
type ReplayResult struct {
	Session *storage.Session
	Cube    *nxcube.Cube
	// Moves is the number of stored moves the cube reflects.
	Moves int
	// FromSnapshot is the move index the replay started from.
	FromSnapshot int
}

// Replay rebuilds the cube of a stored session from its latest snapshot and
// the moves recorded after it.
func Replay(db *storage.DB, sessionID string, opts ...nxcube.Option) (*ReplayResult, error) {
	return replay(
		storage.NewSessionRepository(db),
		storage.NewMoveRepository(db),
		storage.NewSnapshotRepository(db),
		sessionID, opts...,
	)
}

func replay(sessions *storage.SessionRepository, moves *storage.MoveRepository, snapshots *storage.SnapshotRepository, sessionID string, opts ...nxcube.Option) (*ReplayResult, error) {
	session, err := sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	cube, err := nxcube.New(session.Size, opts...)
	if err != nil {
		return nil, err
	}

	from := 0
	snap, err := snapshots.Latest(sessionID)
	switch {
	case err == nil:
		if err := cube.Restore(snap.State); err != nil {
			return nil, fmt.Errorf("snapshot at move %d: %w", snap.MoveIndex, err)
		}
		from = snap.MoveIndex
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, err
	}

	records, err := moves.GetFrom(sessionID, from)
	if err != nil {
		return nil, err
	}
	list, err := storage.ToMoves(records)
	if err != nil {
		return nil, err
	}
	if err := cube.Apply(list...); err != nil {
		return nil, fmt.Errorf("replay session %s: %w", sessionID, err)
	}

	return &ReplayResult{
		Session:      session,
		Cube:         cube,
		Moves:        from + len(list),
		FromSnapshot: from,
	}, nil
}
