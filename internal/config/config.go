// Package config provides YAML-based configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Input   InputConfig   `yaml:"input"`
}

// TimingConfig defines the fixed tick rate and all in-game durations.
// Durations are in seconds and are accumulated per tick.
type TimingConfig struct {
	TickRate         int     `yaml:"tick_rate"`
	FallInterval     float64 `yaml:"fall_interval"`
	DropInterval     float64 `yaml:"drop_interval"`
	ClearStep        float64 `yaml:"clear_step"`
	SideMoveDelay    float64 `yaml:"side_move_delay"`
	SideMoveInterval float64 `yaml:"side_move_interval"`
}

// StorageConfig selects where the best score is kept.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // score file for the file backend
	DBPath  string `yaml:"db_path"` // database for the sqlite backend
}

// InputConfig holds presentation input settings.
type InputConfig struct {
	// KeyHoldMS is how long a terminal key counts as held after its last
	// press or auto-repeat event.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// Validate checks that the configuration can drive a game session.
func (c TetrisConfig) Validate() error {
	t := c.Timing
	if t.TickRate <= 0 {
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, t.TickRate)
	}

	durations := []struct {
		name string
		val  float64
	}{
		{"timing.fall_interval", t.FallInterval},
		{"timing.drop_interval", t.DropInterval},
		{"timing.clear_step", t.ClearStep},
		{"timing.side_move_delay", t.SideMoveDelay},
		{"timing.side_move_interval", t.SideMoveInterval},
	}
	for _, d := range durations {
		if d.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, d.name, d.val)
		}
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage.path is required for the file backend", ErrInvalidConfig)
		}
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return fmt.Errorf("%w: storage.db_path is required for the sqlite backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Input.KeyHoldMS < 0 {
		return fmt.Errorf("%w: input.key_hold_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}
