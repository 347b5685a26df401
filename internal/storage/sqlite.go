// Package storage provides SQLite-based persistence for cave run
// records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry records one completed or failed cave attempt.
type RunEntry struct {
	ID         int64
	Cave       int
	Difficulty int
	Diamonds   int
	Score      int
	Ticks      uint64
	Cleared    bool
	CreatedAt  time.Time
}

// CaveStats contains aggregated statistics for one cave.
type CaveStats struct {
	Cave      int
	Runs      int
	Clears    int
	HighScore int
	AvgScore  float64
	BestTicks uint64 // fastest clear, 0 when the cave was never cleared
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cave INTEGER NOT NULL,
			difficulty INTEGER NOT NULL,
			diamonds INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_cave ON runs(cave);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(cave, score DESC);
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

// SaveRun records a finished attempt. Returns the inserted record ID.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (cave, difficulty, diamonds, score, ticks, cleared) VALUES (?, ?, ?, ?, ?, ?)",
		e.Cave, e.Difficulty, e.Diamonds, e.Score, e.Ticks, e.Cleared,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given cave, ordered by score
// descending.
func (s *Store) TopRuns(cave, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, cave, difficulty, diamonds, score, ticks, cleared, created_at
		 FROM runs
		 WHERE cave = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		cave, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all caves.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, cave, difficulty, diamonds, score, ticks, cleared, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Cave, &e.Difficulty, &e.Diamonds, &e.Score, &e.Ticks, &e.Cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
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

// HighScore returns the highest score recorded for the given cave.
// Returns 0 if no runs exist.
func (s *Store) HighScore(cave int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE cave = ?",
		cave,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given cave.
func (s *Store) ClearRuns(cave int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE cave = ?", cave)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific cave.
func (s *Store) Stats(cave int) (*CaveStats, error) {
	stats := &CaveStats{Cave: cave}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(cleared), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM runs WHERE cave = ?`,
		cave,
	).Scan(&stats.Runs, &stats.Clears, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get cave stats: %w", err)
	}

	var best sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MIN(ticks) FROM runs WHERE cave = ? AND cleared = 1`,
		cave,
	).Scan(&best)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get best time: %w", err)
	}
	if best.Valid {
		stats.BestTicks = uint64(best.Int64)
	}

	return stats, nil
}

// AllStats retrieves statistics for every cave that has been played,
// keyed by cave id.
func (s *Store) AllStats() (map[int]*CaveStats, error) {
	rows, err := s.db.Query(
		`SELECT cave, COUNT(*), COALESCE(SUM(cleared), 0), MAX(score), AVG(score),
		        COALESCE(MIN(CASE WHEN cleared = 1 THEN ticks END), 0)
		 FROM runs
		 GROUP BY cave`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*CaveStats)
	for rows.Next() {
		var cs CaveStats
		if err := rows.Scan(&cs.Cave, &cs.Runs, &cs.Clears, &cs.HighScore, &cs.AvgScore, &cs.BestTicks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[cs.Cave] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
