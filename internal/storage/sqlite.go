package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Store manages the SQLite database connection for best-score persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Each game keeps exactly one row: its best score.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0 CHECK (score >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// BestScore returns the stored best score for the given game.
// Returns 0 if none was stored.
func (s *Store) BestScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore overwrites the best score for the given game.
func (s *Store) SetBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ClearBestScore deletes the best score for the given game.
func (s *Store) ClearBestScore(gameID string) error {
	_, err := s.db.Exec("DELETE FROM best_scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}

// gameStore binds a Store to one game as a BestScoreStore.
type gameStore struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// ForGame returns a BestScoreStore for one game backed by this database.
// Closing it closes the database.
func (s *Store) ForGame(gameID string, logger *log.Logger) BestScoreStore {
	return &gameStore{store: s, gameID: gameID, logger: orDefault(logger)}
}

func (g *gameStore) LoadBest() int {
	score, err := g.store.BestScore(g.gameID)
	if err != nil {
		g.logger.Warn("best score unavailable, starting from 0", "game", g.gameID, "error", err)
		return 0
	}
	return score
}

func (g *gameStore) SaveBest(score int) error {
	return g.store.SetBestScore(g.gameID, max(score, 0))
}

func (g *gameStore) ResetBest() error {
	return g.store.ClearBestScore(g.gameID)
}

func (g *gameStore) Location() string {
	return "sqlite:" + g.gameID
}

func (g *gameStore) Close() error {
	return g.store.Close()
}
