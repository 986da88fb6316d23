// Package storage provides best-score persistence backends: a JSON file and
// a SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultGameID is the row key used for the 2048 best score.
const DefaultGameID = "2048"

// Store manages the SQLite database connection for best-score persistence.
type Store struct {
	db     *sql.DB
	path   string
	gameID string
}

// BestEntry is a stored best score with the time it was last written.
type BestEntry struct {
	GameID    string
	Best      int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
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

	store := &Store{db: db, path: dbPath, gameID: DefaultGameID}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_scores (
			game_id TEXT PRIMARY KEY,
			best INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Path returns the resolved database path.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadBest returns the stored best score, or 0 when none was saved yet.
func (s *Store) LoadBest() (int, error) {
	entry, err := s.Entry()
	if err != nil {
		return 0, err
	}
	return entry.Best, nil
}

// SaveBest upserts the best score row.
func (s *Store) SaveBest(best int) error {
	if best < 0 {
		return fmt.Errorf("storage: negative best score %d", best)
	}

	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, best, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET best = excluded.best, updated_at = excluded.updated_at`,
		s.gameID, best,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Entry returns the best-score row including its update time.
// A missing row yields a zero entry.
func (s *Store) Entry() (BestEntry, error) {
	entry := BestEntry{GameID: s.gameID}

	var updatedAt any
	err := s.db.QueryRow(
		"SELECT best, updated_at FROM best_scores WHERE game_id = ?",
		s.gameID,
	).Scan(&entry.Best, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entry, nil
	}
	if err != nil {
		return BestEntry{}, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		entry.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			entry.UpdatedAt = parsed
		}
	}

	return entry, nil
}
