package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickRate:         120,
			FallInterval:     1.5,
			DropInterval:     0.05,
			ClearStep:        0.05,
			SideMoveDelay:    0.25,
			SideMoveInterval: 0.05,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    "~/.tetris/best_score",
			DBPath:  "~/.tetris/scores.db",
		},
		Input: InputConfig{
			KeyHoldMS: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
