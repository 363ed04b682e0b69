package storage

import (
	"fmt"
	"time"
)

// PhaseMark records the move at which a session first reached a phase.
type PhaseMark struct {
	PhaseMarkID int64
	SessionID   string
	MoveIndex   int
	PhaseKey    string
	TsMs        int64
}

// PhaseRepository provides CRUD operations for phase marks.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// CreatePhaseMark creates a new phase mark.
func (r *PhaseRepository) CreatePhaseMark(sessionID string, moveIndex int, phaseKey string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO phase_marks (session_id, move_index, phase_key, ts_ms)
		VALUES (?, ?, ?, ?)
	`, sessionID, moveIndex, phaseKey, time.Now().UnixMilli())

	if err != nil {
		return 0, fmt.Errorf("failed to create phase mark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get phase mark ID: %w", err)
	}

	return id, nil
}

// GetPhaseMarks retrieves all phase marks for a session.
func (r *PhaseRepository) GetPhaseMarks(sessionID string) ([]PhaseMark, error) {
	rows, err := r.db.Query(`
		SELECT phase_mark_id, session_id, move_index, phase_key, ts_ms
		FROM phase_marks
		WHERE session_id = ?
		ORDER BY move_index, phase_mark_id
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get phase marks: %w", err)
	}
	defer rows.Close()

	var marks []PhaseMark
	for rows.Next() {
		var m PhaseMark
		if err := rows.Scan(&m.PhaseMarkID, &m.SessionID, &m.MoveIndex, &m.PhaseKey, &m.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan phase mark: %w", err)
		}
		marks = append(marks, m)
	}

	return marks, rows.Err()
}
