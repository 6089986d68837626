package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	score, err := store.BestScore("tetris")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for an empty database, got %d", score)
	}

	if err := store.SetBestScore("tetris", 120); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if err := store.SetBestScore("tetris", 80); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if err := store.SetBestScore("other", 999); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	// The last write wins; games are independent
	score, _ = store.BestScore("tetris")
	if score != 80 {
		t.Errorf("Expected 80, got %d", score)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM best_scores WHERE game_id = ?", "tetris").Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("Expected exactly one row per game, got %d", rows)
	}

	if err := store.ClearBestScore("tetris"); err != nil {
		t.Fatalf("ClearBestScore() failed: %v", err)
	}
	score, _ = store.BestScore("tetris")
	if score != 0 {
		t.Errorf("Expected 0 after clear, got %d", score)
	}
	score, _ = store.BestScore("other")
	if score != 999 {
		t.Errorf("Clearing one game should not affect another, got %d", score)
	}
}

func TestStorePersistence(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	// First session
	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	best := store1.ForGame("tetris", quietLogger())
	if got := best.LoadBest(); got != 0 {
		t.Errorf("LoadBest() = %d, expected 0", got)
	}
	if err := best.SaveBest(42); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	best.Close()

	// Second session
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	best = store2.ForGame("tetris", quietLogger())
	defer best.Close()

	if got := best.LoadBest(); got != 42 {
		t.Errorf("Score should persist across sessions: got %d", got)
	}
}

func TestOpenBestSelectsBackend(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.StorageConfig{
		Backend: config.BackendSQLite,
		Path:    filepath.Join(tmpDir, "best_score"),
		DBPath:  filepath.Join(tmpDir, "scores.db"),
	}

	s, err := OpenBest(cfg, "tetris", quietLogger())
	if err != nil {
		t.Fatalf("OpenBest(sqlite) failed: %v", err)
	}
	if err := s.SaveBest(7); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if _, err := os.Stat(cfg.Path); !os.IsNotExist(err) {
		t.Error("sqlite backend should not touch the score file")
	}

	cfg.Backend = config.BackendFile
	s, err = OpenBest(cfg, "tetris", quietLogger())
	if err != nil {
		t.Fatalf("OpenBest(file) failed: %v", err)
	}
	if _, ok := s.(*ScoreFile); !ok {
		t.Errorf("file backend returned %T", s)
	}

	cfg.Backend = "redis"
	if _, err := OpenBest(cfg, "tetris", quietLogger()); err == nil {
		t.Error("unknown backend should fail")
	}
}
