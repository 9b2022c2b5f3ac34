// Package storage provides SQLite-based persistence for human high scores
// and agent episode results.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record from human play.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// EpisodeRecord is the summary of one agent episode.
type EpisodeRecord struct {
	ID              int64
	EnvID           string
	Policy          string
	Seed            int64
	Steps           int
	Score           int
	TotalReward     float64
	ObstaclesPassed int
	Terminated      bool
	Truncated       bool
	CreatedAt       time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			env_id TEXT NOT NULL,
			policy TEXT NOT NULL,
			seed INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total_reward REAL NOT NULL,
			obstacles_passed INTEGER NOT NULL DEFAULT 0,
			terminated INTEGER NOT NULL DEFAULT 0,
			truncated INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_env ON episodes(env_id, policy);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(env_id, total_reward DESC);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, player string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score) VALUES (?, ?, ?)",
		gameID, player, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &createdAt); err != nil {
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

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveEpisodes records a batch of episode results in a single transaction.
func (s *Store) SaveEpisodes(records []EpisodeRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO episodes
		 (env_id, policy, seed, steps, score, total_reward, obstacles_passed, terminated, truncated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare episode insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(
			r.EnvID, r.Policy, r.Seed, r.Steps, r.Score, r.TotalReward,
			r.ObstaclesPassed, r.Terminated, r.Truncated,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save episode (seed %d): %w", r.Seed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit episodes: %w", err)
	}
	return nil
}

// TopEpisodes retrieves the best episodes for an environment by total reward.
// An empty envID matches every environment.
func (s *Store) TopEpisodes(envID string, limit int) ([]EpisodeRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, env_id, policy, seed, steps, score, total_reward,
		        obstacles_passed, terminated, truncated, created_at
		 FROM episodes
		 WHERE ? = '' OR env_id = ?
		 ORDER BY total_reward DESC, id ASC
		 LIMIT ?`,
		envID, envID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var records []EpisodeRecord
	for rows.Next() {
		var r EpisodeRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.EnvID, &r.Policy, &r.Seed, &r.Steps, &r.Score, &r.TotalReward,
			&r.ObstaclesPassed, &r.Terminated, &r.Truncated, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// PolicyStats contains aggregated episode statistics for one env/policy pair.
type PolicyStats struct {
	EnvID     string
	Policy    string
	Episodes  int
	AvgReward float64
	MaxReward float64
	AvgSteps  float64
	MaxScore  int
	LastRun   time.Time
}

// GetPolicyStats aggregates all stored episodes per environment and policy.
func (s *Store) GetPolicyStats() ([]PolicyStats, error) {
	rows, err := s.db.Query(
		`SELECT env_id, policy, COUNT(*), AVG(total_reward), MAX(total_reward),
		        AVG(steps), MAX(score), MAX(created_at)
		 FROM episodes
		 GROUP BY env_id, policy
		 ORDER BY env_id, policy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get policy stats: %w", err)
	}
	defer rows.Close()

	var stats []PolicyStats
	for rows.Next() {
		var ps PolicyStats
		var lastRun any
		if err := rows.Scan(
			&ps.EnvID, &ps.Policy, &ps.Episodes, &ps.AvgReward, &ps.MaxReward,
			&ps.AvgSteps, &ps.MaxScore, &lastRun,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastRun = parseTime(lastRun)
		stats = append(stats, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearEpisodes deletes all stored episodes for envID, or every episode when
// envID is empty.
func (s *Store) ClearEpisodes(envID string) error {
	_, err := s.db.Exec("DELETE FROM episodes WHERE ? = '' OR env_id = ?", envID, envID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear episodes: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
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
