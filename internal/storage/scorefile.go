package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// ScoreFile keeps the best score as decimal text in a single file.
type ScoreFile struct {
	path   string
	logger *log.Logger
}

// NewScoreFile returns a store for the file at path. A leading "~/" is
// expanded. Nothing is touched on disk until LoadBest or SaveBest.
func NewScoreFile(path string, logger *log.Logger) *ScoreFile {
	return &ScoreFile{path: config.ExpandHome(path), logger: orDefault(logger)}
}

// Path returns the resolved file path.
func (f *ScoreFile) Path() string {
	return f.path
}

// LoadBest reads the best score. A missing file is created empty and
// yields 0; unreadable or malformed contents also yield 0.
func (f *ScoreFile) LoadBest() int {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := f.create(); err != nil {
			f.logger.Warn("cannot create score file", "path", f.path, "error", err)
		} else {
			f.logger.Debug("created score file", "path", f.path)
		}
		return 0
	}
	if err != nil {
		f.logger.Warn("cannot read score file, starting from 0", "path", f.path, "error", err)
		return 0
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		f.logger.Warn("malformed score file, starting from 0", "path", f.path, "contents", text)
		return 0
	}
	return n
}

// SaveBest overwrites the file with the score.
func (f *ScoreFile) SaveBest(score int) error {
	if err := f.ensureDir(); err != nil {
		return err
	}
	data := []byte(strconv.Itoa(max(score, 0)))
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write score file %s: %w", f.path, err)
	}
	return nil
}

// ResetBest stores 0.
func (f *ScoreFile) ResetBest() error {
	return f.SaveBest(0)
}

// Location describes where the score lives.
func (f *ScoreFile) Location() string {
	return f.path
}

// Close is a no-op; the file is only open while reading or writing.
func (f *ScoreFile) Close() error {
	return nil
}

func (f *ScoreFile) create() error {
	if err := f.ensureDir(); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot create score file %s: %w", f.path, err)
	}
	return file.Close()
}

func (f *ScoreFile) ensureDir() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}
