package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScoreFileMissingIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "best_score")
	f := NewScoreFile(path, quietLogger())

	if got := f.LoadBest(); got != 0 {
		t.Errorf("LoadBest() = %d, expected 0 for a missing file", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("missing score file should be created: %v", err)
	}
	// The freshly created empty file still reads as 0
	if got := f.LoadBest(); got != 0 {
		t.Errorf("LoadBest() on empty file = %d, expected 0", got)
	}
}

func TestScoreFileContents(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected int
	}{
		{"plain", "1234", 1234},
		{"trailing newline", "56\n", 56},
		{"garbage", "high score!", 0},
		{"negative", "-3", 0},
		{"float", "12.5", 0},
		{"empty", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "best_score")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatal(err)
			}

			got := NewScoreFile(path, quietLogger()).LoadBest()
			if got != tc.expected {
				t.Errorf("LoadBest() with %q = %d, expected %d", tc.contents, got, tc.expected)
			}
		})
	}
}

func TestScoreFileSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score")
	f := NewScoreFile(path, quietLogger())

	if err := f.SaveBest(123456); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := f.SaveBest(78); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "78" {
		t.Errorf("file contents = %q, expected %q", data, "78")
	}
	if got := f.LoadBest(); got != 78 {
		t.Errorf("LoadBest() = %d, expected 78", got)
	}

	if err := f.ResetBest(); err != nil {
		t.Fatal(err)
	}
	if got := f.LoadBest(); got != 0 {
		t.Errorf("LoadBest() after reset = %d, expected 0", got)
	}
}

func TestScoreFileUnreadableFallsBack(t *testing.T) {
	// A directory at the score path cannot be read as a file
	path := t.TempDir()
	f := NewScoreFile(path, quietLogger())

	if got := f.LoadBest(); got != 0 {
		t.Errorf("LoadBest() = %d, expected 0", got)
	}
	if err := f.SaveBest(5); err == nil {
		t.Error("SaveBest() over a directory should fail")
	}
}
