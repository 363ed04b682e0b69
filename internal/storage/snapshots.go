package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Snapshot is a cube state saved after the first MoveIndex moves of a
// session.
type Snapshot struct {
	SessionID string
	MoveIndex int
	State     string
	CreatedAt time.Time
}

// SnapshotRepository stores and loads cube states.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores the state reached after moveIndex moves.
func (r *SnapshotRepository) Save(sessionID string, moveIndex int, state string) error {
	_, err := r.db.Exec(`
		INSERT INTO snapshots (session_id, move_index, state, created_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, moveIndex, state, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Latest returns the snapshot with the highest move index, or ErrNotFound.
func (r *SnapshotRepository) Latest(sessionID string) (*Snapshot, error) {
	var s Snapshot
	var createdAtStr string
	err := r.db.QueryRow(`
		SELECT session_id, move_index, state, created_at
		FROM snapshots
		WHERE session_id = ?
		ORDER BY move_index DESC, snapshot_id DESC
		LIMIT 1
	`, sessionID).Scan(&s.SessionID, &s.MoveIndex, &s.State, &createdAtStr)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot for %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	s.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
	return &s, nil
}
