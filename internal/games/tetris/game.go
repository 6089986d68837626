// Package tetris implements the falling-block puzzle: the pure
// simulation engine and its registry.Game adapter.
package tetris

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "tetris"

// pcgStream is the second PCG word; the seed supplies the first.
const pcgStream = 0x9e3779b97f4a7c15

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadTiming resolves the session timing from the config search path and
// the difficulty preset. tickRate overrides the configured rate when positive.
func LoadTiming(tickRate int) Timing {
	cfg, err := config.LoadTetris(configPath)
	if err != nil || cfg.Validate() != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	t := TimingFromConfig(cfg.Timing)
	if tickRate > 0 {
		t.TickRate = tickRate
	}
	return t
}

// NewSource returns the deterministic random source for a seed.
func NewSource(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), uint64(seed)^pcgStream)
}

// Game adapts a State to the platform: pause, rendering and the
// registry.Game interface.
type Game struct {
	state   *State
	paused  bool
	screenW int
	screenH int
}

// New creates a game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetWithTiming(cfg, LoadTiming(cfg.TickRate))
}

// ResetWithTiming starts a new session with explicit timing.
func (g *Game) ResetWithTiming(cfg core.RuntimeConfig, timing Timing) {
	best := cfg.BestScore
	if g.state != nil {
		best = max(best, g.state.Best())
	}
	g.state = NewState(timing, NewSource(cfg.Seed), best)
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle pause toggle
	if in.IsPressed(core.ActionPause) && g.state.Phase() != PhaseGameOver {
		g.paused = !g.paused
	}

	if !g.paused {
		g.state.Tick(in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.state.Score(),
		BestScore: g.state.Best(),
		GameOver:  g.state.Phase() == PhaseGameOver,
		Paused:    g.paused,
	}
}

// View returns the drawable state.
func (g *Game) View() View {
	v := g.state.View()
	v.Paused = g.paused
	return v
}

// Engine exposes the underlying session.
func (g *Game) Engine() *State {
	return g.state
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
