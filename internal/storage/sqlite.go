// Package storage provides SQLite-based persistence for the board session
// journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/panelboard/internal/engine"
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished board session. Only counters are kept; box
// geometry is never persisted.
type SessionRecord struct {
	ID          int64
	SessionID   string // uuid, generated on save when empty
	Arrangement string
	Origin      string // "local" or "ssh"
	Stats       engine.Stats
	StartedAt   time.Time
	EndedAt     time.Time
}

// Duration returns how long the session lasted.
func (r SessionRecord) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Totals aggregates the journal for one arrangement, or for all of them.
type Totals struct {
	Arrangement string // Empty for every arrangement
	Sessions    int
	Stats       engine.Stats
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			arrangement TEXT NOT NULL,
			origin TEXT NOT NULL DEFAULT 'local',
			added INTEGER NOT NULL DEFAULT 0,
			closed INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			resizes INTEGER NOT NULL DEFAULT 0,
			snaps INTEGER NOT NULL DEFAULT 0,
			rescales INTEGER NOT NULL DEFAULT 0,
			collisions INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_arrangement ON sessions(arrangement);
		CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns it with ID and
// SessionID filled in.
func (s *Store) SaveSession(rec SessionRecord) (SessionRecord, error) {
	if rec.SessionID == "" {
		rec.SessionID = uuid.NewString()
	}
	if rec.Origin == "" {
		rec.Origin = "local"
	}

	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, arrangement, origin, added, closed, moves, resizes, snaps, rescales, collisions, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.Arrangement,
		rec.Origin,
		rec.Stats.Added,
		rec.Stats.Closed,
		rec.Stats.Moves,
		rec.Stats.Resizes,
		rec.Stats.Snaps,
		rec.Stats.Rescales,
		rec.Stats.Collisions,
		formatTime(rec.StartedAt),
		formatTime(rec.EndedAt),
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return rec, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id
	return rec, nil
}

const sessionColumns = `id, session_id, arrangement, origin,
	added, closed, moves, resizes, snaps, rescales, collisions,
	started_at, ended_at`

// SessionByID retrieves a session by its uuid. Returns nil if not found.
func (s *Store) SessionByID(sessionID string) (*SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`,
		sessionID,
	)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// RecentSessions retrieves the most recently finished sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Totals aggregates the journal. An empty arrangement covers every session.
func (s *Store) Totals(arrangement string) (*Totals, error) {
	t := &Totals{Arrangement: arrangement}

	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(added), 0), COALESCE(SUM(closed), 0),
		        COALESCE(SUM(moves), 0), COALESCE(SUM(resizes), 0),
		        COALESCE(SUM(snaps), 0), COALESCE(SUM(rescales), 0),
		        COALESCE(SUM(collisions), 0), MAX(ended_at)
		 FROM sessions
		 WHERE ? = '' OR arrangement = ?`,
		arrangement, arrangement,
	).Scan(
		&t.Sessions,
		&t.Stats.Added,
		&t.Stats.Closed,
		&t.Stats.Moves,
		&t.Stats.Resizes,
		&t.Stats.Snaps,
		&t.Stats.Rescales,
		&t.Stats.Collisions,
		&lastPlayed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	if lastPlayed.Valid {
		t.LastPlayed = parseTime(lastPlayed.String)
	}

	return t, nil
}

// Clear deletes the sessions of one arrangement, or all of them when
// arrangement is empty. Returns the number of deleted sessions.
func (s *Store) Clear(arrangement string) (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM sessions WHERE ? = '' OR arrangement = ?",
		arrangement, arrangement,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted sessions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionRecord, error) {
	var rec SessionRecord
	var startedAt, endedAt string
	err := sc.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.Arrangement,
		&rec.Origin,
		&rec.Stats.Added,
		&rec.Stats.Closed,
		&rec.Stats.Moves,
		&rec.Stats.Resizes,
		&rec.Stats.Snaps,
		&rec.Stats.Rescales,
		&rec.Stats.Collisions,
		&startedAt,
		&endedAt,
	)
	if err != nil {
		return rec, err
	}
	rec.StartedAt = parseTime(startedAt)
	rec.EndedAt = parseTime(endedAt)
	return rec, nil
}

// Timestamps are stored as UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles the stored layout and the sqlite CURRENT_TIMESTAMP one.
func parseTime(v string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
