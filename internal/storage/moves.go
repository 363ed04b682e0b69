package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Notation  string
	TsMs      int64
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

func moveTime(m nxcube.Move) int64 {
	if m.Time.IsZero() {
		return time.Now().UnixMilli()
	}
	return m.Time.UnixMilli()
}

// CreateBatch creates multiple moves in a single transaction, numbered from
// startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, moves []nxcube.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, notation, ts_ms)
				VALUES (?, ?, ?, ?)
			`, sessionID, startIndex+i, move.Notation(), moveTime(move))
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// Append stores moves after the last recorded one and returns the index
// given to the first of them.
func (r *MoveRepository) Append(sessionID string, moves ...nxcube.Move) (int, error) {
	next, err := r.NextIndex(sessionID)
	if err != nil {
		return 0, err
	}
	return next, r.CreateBatch(sessionID, moves, next)
}

func scanMoves(rows *sql.Rows) ([]MoveRecord, error) {
	defer rows.Close()
	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Notation, &m.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	return r.GetFrom(sessionID, 0)
}

// GetFrom retrieves the moves of a session from index on, in order.
func (r *MoveRepository) GetFrom(sessionID string, index int) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation, ts_ms
		FROM moves
		WHERE session_id = ? AND move_index >= ?
		ORDER BY move_index
	`, sessionID, index)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	return scanMoves(rows)
}

// NextIndex returns the next move index for a session.
func (r *MoveRepository) NextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves parses MoveRecords back into moves.
func ToMoves(records []MoveRecord) ([]nxcube.Move, error) {
	moves := make([]nxcube.Move, len(records))
	for i, r := range records {
		m, err := nxcube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m.WithTime(time.UnixMilli(r.TsMs))
	}
	return moves, nil
}
