// Package storage provides SQLite-based persistence for completed solutions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrInvalidSolution is returned when a solution has no moves or contains
// characters other than u, d, l, r in either case.
var ErrInvalidSolution = errors.New("invalid solution")

// Store manages the SQLite database connection for the solution log.
type Store struct {
	db *sql.DB
}

// Solution represents one completed run of a level.
type Solution struct {
	ID        int64
	LevelID   string
	Moves     string
	MoveCount int
	PushCount int
	CreatedAt time.Time
}

// LevelSummary describes a level with at least one recorded solution.
type LevelSummary struct {
	LevelID   string
	Solutions int
	BestMoves int // Fewest moves among recorded solutions
	LastAt    time.Time
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
		CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			moves TEXT NOT NULL,
			move_count INTEGER NOT NULL,
			push_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_level_id ON solutions(level_id);
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

// SaveSolution records a completed solution for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolution(levelID, moves string, moveCount, pushCount int) (int64, error) {
	if err := validateMoves(moves); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(
		"INSERT INTO solutions (level_id, moves, move_count, push_count) VALUES (?, ?, ?, ?)",
		levelID, moves, moveCount, pushCount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Solutions retrieves up to limit solutions for the level, newest first.
func (s *Store) Solutions(levelID string, limit int) ([]Solution, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, moves, move_count, push_count, created_at
		 FROM solutions
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var entries []Solution
	for rows.Next() {
		var e Solution
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Moves, &e.MoveCount, &e.PushCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LatestSolution returns the most recent solution for the level,
// or nil if none exists.
func (s *Store) LatestSolution(levelID string) (*Solution, error) {
	var e Solution
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, level_id, moves, move_count, push_count, created_at
		 FROM solutions
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		levelID,
	).Scan(&e.ID, &e.LevelID, &e.Moves, &e.MoveCount, &e.PushCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solution: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// SolvedLevels summarizes every level with a recorded solution,
// ordered by level ID.
func (s *Store) SolvedLevels() ([]LevelSummary, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(move_count), MAX(created_at)
		 FROM solutions
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	var result []LevelSummary
	for rows.Next() {
		var e LevelSummary
		var lastAt any
		if err := rows.Scan(&e.LevelID, &e.Solutions, &e.BestMoves, &lastAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.LastAt = parseTime(lastAt)
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// IsSolved reports whether the level has at least one recorded solution.
func (s *Store) IsSolved(levelID string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM solutions WHERE level_id = ?", levelID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	return n > 0, nil
}

// ClearSolutions deletes all solutions for the given level.
func (s *Store) ClearSolutions(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solutions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solutions: %w", err)
	}
	return nil
}

func validateMoves(moves string) error {
	if moves == "" {
		return fmt.Errorf("storage: %w: no moves", ErrInvalidSolution)
	}
	if i := strings.IndexFunc(moves, func(r rune) bool {
		return !strings.ContainsRune("udlrUDLR", r)
	}); i >= 0 {
		return fmt.Errorf("storage: %w: bad move at %d", ErrInvalidSolution, i)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
