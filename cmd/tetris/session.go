package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// session is the setup shared by the game commands.
type session struct {
	cfg     config.TetrisConfig
	store   storage.BestScoreStore
	runtime core.RuntimeConfig
}

// loadConfig resolves the config file and hands the global flags to the
// game package.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	return cfg, nil
}

// openSession loads the config and the persisted best score.
func openSession(logger *log.Logger, screenW, screenH int) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenBest(cfg.Storage, tetris.ID, logger)
	if err != nil {
		return nil, err
	}
	best := store.LoadBest()
	logger.Debug("best score loaded", "best", best, "location", store.Location())

	tickRate := cfg.Timing.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &session{
		cfg:   cfg,
		store: store,
		runtime: core.RuntimeConfig{
			ScreenW:   screenW,
			ScreenH:   screenH,
			TickRate:  tickRate,
			Seed:      seed,
			BestScore: best,
		},
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
