// Package storage persists the single best-score integer, either as a
// text file or in a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// BestScoreStore is read once at startup and written once at shutdown.
type BestScoreStore interface {
	// LoadBest returns the stored best score, or 0 when it is missing or
	// unreadable. Problems are logged, never returned.
	LoadBest() int

	// SaveBest replaces the stored best score.
	SaveBest(score int) error

	// ResetBest forgets the stored best score.
	ResetBest() error

	// Location describes where the score is kept, for messages.
	Location() string

	Close() error
}

var (
	_ BestScoreStore = (*ScoreFile)(nil)
	_ BestScoreStore = (*gameStore)(nil)
)

// OpenBest opens the store selected by cfg for the given game.
func OpenBest(cfg config.StorageConfig, gameID string, logger *log.Logger) (BestScoreStore, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewScoreFile(cfg.Path, logger), nil
	case config.BackendSQLite:
		store, err := Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store.ForGame(gameID, logger), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

func orDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
