// Package storage provides SQLite-based persistence for rally results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for rally persistence.
type Store struct {
	db *sql.DB
}

// RallyEntry is a single finished (or abandoned) rally record.
type RallyEntry struct {
	ID          int64
	VariantID   string
	Score       int
	Won         bool
	WinTimeSecs float64 // 0 when the rally was not won
	Level       int
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS rallies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			win_time_secs REAL NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rallies_variant ON rallies(variant_id);
		CREATE INDEX IF NOT EXISTS idx_rallies_best ON rallies(variant_id, won, win_time_secs ASC);
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

// SaveRally records a finished rally. Returns the ID of the inserted record.
func (s *Store) SaveRally(e RallyEntry) (int64, error) {
	won := 0
	if e.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO rallies (variant_id, score, won, win_time_secs, level)
		 VALUES (?, ?, ?, ?, ?)`,
		e.VariantID, e.Score, won, e.WinTimeSecs, e.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save rally: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestRallies retrieves the top N won rallies for the given variant,
// fastest win first.
func (s *Store) BestRallies(variantID string, limit int) ([]RallyEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant_id, score, won, win_time_secs, level, created_at
		 FROM rallies
		 WHERE variant_id = ? AND won = 1
		 ORDER BY win_time_secs ASC
		 LIMIT ?`,
		variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rallies: %w", err)
	}
	defer rows.Close()

	return scanRallies(rows)
}

// RecentRallies retrieves the most recent rallies for the given variant,
// won or not.
func (s *Store) RecentRallies(variantID string, limit int) ([]RallyEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant_id, score, won, win_time_secs, level, created_at
		 FROM rallies
		 WHERE variant_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rallies: %w", err)
	}
	defer rows.Close()

	return scanRallies(rows)
}

// BestTime returns the fastest win time in seconds for the given variant.
// Returns 0 if no won rallies exist.
func (s *Store) BestTime(variantID string) (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MIN(win_time_secs) FROM rallies WHERE variant_id = ? AND won = 1",
		variantID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Float64, nil
}

// ClearRallies deletes all rallies for the given variant.
func (s *Store) ClearRallies(variantID string) error {
	_, err := s.db.Exec("DELETE FROM rallies WHERE variant_id = ?", variantID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rallies: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	VariantID  string
	Rallies    int
	Wins       int
	BestTime   float64
	AvgScore   float64
	LastPlayed time.Time
}

// GetVariantStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetVariantStats(variantID string) (*VariantStats, error) {
	stats := &VariantStats{VariantID: variantID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN win_time_secs END), 0),
		        COALESCE(AVG(score), 0)
		 FROM rallies WHERE variant_id = ?`,
		variantID,
	).Scan(&stats.Rallies, &stats.Wins, &stats.BestTime, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rallies WHERE variant_id = ? ORDER BY created_at DESC LIMIT 1`,
		variantID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

func scanRallies(rows *sql.Rows) ([]RallyEntry, error) {
	var entries []RallyEntry
	for rows.Next() {
		var e RallyEntry
		var won int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.VariantID, &e.Score, &won, &e.WinTimeSecs, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Won = won != 0
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles both time.Time and string values the sqlite
// driver may hand back for DATETIME columns.
func parseCreatedAt(v any) time.Time {
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
