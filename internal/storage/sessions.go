package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("storage: not found")

// Session is one cube of a given size and the moves played on it.
type Session struct {
	SessionID string
	Size      int
	CreatedAt time.Time
	Scramble  *string
	Notes     *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(size int, scramble, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, size, created_at, scramble, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, size, createdAt.Format(timeFormat), scramblePtr, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var createdAtStr string
	if err := row.Scan(&s.SessionID, &s.Size, &createdAtStr, &s.Scramble, &s.Notes); err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
	return &s, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT session_id, size, created_at, scramble, notes
		FROM sessions
		WHERE session_id = ?
	`, sessionID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// Latest retrieves the most recent session.
func (r *SessionRepository) Latest() (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT session_id, size, created_at, scramble, notes
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest session: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, size, created_at, scramble, notes
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and all related data (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
