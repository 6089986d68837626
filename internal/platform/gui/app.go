// Package gui runs the game in a desktop window with Ebiten. Unlike
// terminals, Ebiten reports real key-up events, so input edges are exact.
package gui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options configures a window session.
type Options struct {
	// Store receives the best score once the window closes. May be nil.
	Store storage.BestScoreStore

	Logger *log.Logger

	// Scale multiplies the logical window size. Values below 1 mean 1.
	Scale int
}

// App adapts a tetris.Game to ebiten.Game.
type App struct {
	ctx    context.Context
	game   *tetris.Game
	keys   keySource
	logger *log.Logger
	ticks  int
}

var _ ebiten.Game = (*App)(nil)

func newApp(ctx context.Context, game *tetris.Game, keys keySource, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{ctx: ctx, game: game, keys: keys, logger: logger}
}

// Update advances the game by exactly one tick. It ends the loop once
// the context is cancelled.
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		a.logger.Debug("window session cancelled", "error", context.Cause(a.ctx))
		return ebiten.Termination
	}
	frame := readFrame(a.keys, defaultBindings)
	if frame.IsPressed(core.ActionQuit) {
		return ebiten.Termination
	}

	before := a.game.State()
	after := a.game.Step(frame).State
	a.ticks++

	if after.GameOver && !before.GameOver {
		a.logger.Info("game over", "score", after.Score, "best", after.BestScore, "ticks", a.ticks)
	}
	return nil
}

// Draw renders the current view.
func (a *App) Draw(screen *ebiten.Image) {
	drawView(screen, a.game.View())
}

// Layout returns the fixed logical size; Ebiten scales it to the window.
func (a *App) Layout(_, _ int) (screenWidth, screenHeight int) {
	return logicalWidth, logicalHeight
}

// Run opens the window and blocks until it is closed, Q is pressed or
// ctx is cancelled. The best score is saved afterwards; a failed save is
// only logged.
func Run(ctx context.Context, game *tetris.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	scale := max(1, opts.Scale)

	game.Reset(cfg)
	opts.Logger.Debug("window session started", "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(logicalWidth*scale, logicalHeight*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newApp(ctx, game, ebitenKeys{}, opts.Logger)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	if err := saveBest(game, opts); err != nil {
		opts.Logger.Warn("best score not saved", "error", err)
	}
	return nil
}

// saveBest writes the session best score to the store, if any.
func saveBest(game *tetris.Game, opts Options) error {
	if opts.Store == nil {
		return nil
	}
	best := game.State().BestScore
	if err := opts.Store.SaveBest(best); err != nil {
		return fmt.Errorf("gui: cannot save best score to %s: %w", opts.Store.Location(), err)
	}
	opts.Logger.Debug("best score saved", "best", best, "location", opts.Store.Location())
	return nil
}
