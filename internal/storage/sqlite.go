// Package storage persists high scores and the delivery ledger in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/heavy-haul/internal/haul"
)

// DefaultPath is the database location used when --db is not given.
const DefaultPath = "~/.haul/haul.db"

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
// It is safe for concurrent use by multiple SSH sessions.
type Store struct {
	db *sql.DB
}

var _ haul.Ledger = (*Store)(nil)

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}
	if dbPath[0] == '~' {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS deliveries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			cargo TEXT NOT NULL,
			class TEXT NOT NULL,
			deadline_hours INTEGER NOT NULL DEFAULT 0,
			miles REAL NOT NULL DEFAULT 0,
			payout INTEGER NOT NULL DEFAULT 0,
			time_bonus INTEGER NOT NULL DEFAULT 0,
			penalties INTEGER NOT NULL DEFAULT 0,
			payment INTEGER NOT NULL DEFAULT 0,
			delivered INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL DEFAULT '',
			mission_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_deliveries_game_id ON deliveries(game_id, id DESC);
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

// parseTime accepts the driver's time.Time or SQLite's text timestamp.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
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
	return s.queryScores(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC`,
		gameID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
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
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated score statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// SaveDelivery appends a finished mission to the ledger.
func (s *Store) SaveDelivery(d haul.Delivery) error {
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO deliveries
		 (game_id, origin, destination, cargo, class, deadline_hours, miles,
		  payout, time_bonus, penalties, payment, delivered, reason, mission_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.GameID, d.Origin, d.Destination, d.Cargo, d.Class, d.DeadlineHours, d.Miles,
		d.Payout, d.TimeBonus, d.Penalties, d.Payment, d.Delivered, d.Reason, d.MissionSeconds,
		createdAt.UTC().Format(sqliteTime),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save delivery: %w", err)
	}
	return nil
}

// RecentDeliveries returns the newest ledger entries first. An empty gameID
// matches every mode.
func (s *Store) RecentDeliveries(gameID string, limit int) ([]haul.Delivery, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT game_id, origin, destination, cargo, class, deadline_hours, miles,
		        payout, time_bonus, penalties, payment, delivered, reason, mission_secs, created_at
		 FROM deliveries
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query deliveries: %w", err)
	}
	defer rows.Close()

	var out []haul.Delivery
	for rows.Next() {
		var d haul.Delivery
		var createdAt any
		if err := rows.Scan(
			&d.GameID, &d.Origin, &d.Destination, &d.Cargo, &d.Class, &d.DeadlineHours, &d.Miles,
			&d.Payout, &d.TimeBonus, &d.Penalties, &d.Payment, &d.Delivered, &d.Reason, &d.MissionSeconds,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan delivery: %w", err)
		}
		d.CreatedAt = parseTime(createdAt)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// DeliveryStats aggregates the ledger for one mode.
type DeliveryStats struct {
	GameID    string
	Missions  int
	Delivered int
	Failed    int
	Earned    int64 // Sum of all payments, penalties included
	Penalties int64
	Miles     float64
	BestPay   int // Highest payment of a delivered run, 0 if none
}

// SuccessRate returns delivered missions as a fraction of all missions.
func (st DeliveryStats) SuccessRate() float64 {
	if st.Missions == 0 {
		return 0
	}
	return float64(st.Delivered) / float64(st.Missions)
}

// GetDeliveryStats aggregates the ledger for a game. An empty gameID covers
// every mode.
func (s *Store) GetDeliveryStats(gameID string) (*DeliveryStats, error) {
	st := &DeliveryStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(delivered), 0),
		        COALESCE(SUM(payment), 0),
		        COALESCE(SUM(penalties), 0),
		        COALESCE(SUM(CASE WHEN delivered = 1 THEN miles ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN delivered = 1 THEN payment END), 0)
		 FROM deliveries
		 WHERE ? = '' OR game_id = ?`,
		gameID, gameID,
	).Scan(&st.Missions, &st.Delivered, &st.Earned, &st.Penalties, &st.Miles, &st.BestPay)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get delivery stats: %w", err)
	}
	st.Failed = st.Missions - st.Delivered
	return st, nil
}
