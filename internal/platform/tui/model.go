package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options configures a terminal session beyond the game's runtime config.
type Options struct {
	// Store receives the best score once the program exits cleanly.
	// May be nil.
	Store storage.BestScoreStore

	// Logger must not write to the terminal while the program runs.
	Logger *log.Logger

	// KeyHoldMS is how long a key counts as held after its last
	// press or auto-repeat event.
	KeyHoldMS int

	// ScreenshotDir receives ctrl+s dumps of the screen.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	tracker  *core.KeyTracker
	ticks    int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.KeyHoldMS <= 0 {
		opts.KeyHoldMS = config.DefaultTetrisConfig().Input.KeyHoldMS
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		config:  cfg,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    h,
		tracker: core.NewKeyTracker(holdTicks(opts.KeyHoldMS, cfg.TickRate)).WithTapGap(tapTicks(cfg.TickRate)),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key events; they reach the game on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.tracker.Touch(action)
	return m, nil
}

// handleResize keeps the game running; the game renders a notice when
// the terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick consumes exactly one input frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	frame := m.tracker.Frame()
	before := m.game.State()
	after := m.game.Step(frame).State
	m.ticks++

	if after.GameOver && !before.GameOver {
		m.opts.Logger.Info("game over", "score", after.Score, "best", after.BestScore, "ticks", m.ticks)
	}
	if before.GameOver && !after.GameOver {
		m.opts.Logger.Debug("restarted", "best", after.BestScore)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and saves the best score when it
// exits cleanly. Only program errors are returned.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	// A failed save never fails the session
	if err := saveBest(game, model.opts); err != nil {
		model.opts.Logger.Warn("best score not saved", "error", err)
	}
	return nil
}

// saveBest writes the session best score to the store, if any.
func saveBest(game registry.Game, opts Options) error {
	if opts.Store == nil {
		return nil
	}
	best := game.State().BestScore
	if err := opts.Store.SaveBest(best); err != nil {
		return fmt.Errorf("tui: cannot save best score to %s: %w", opts.Store.Location(), err)
	}
	opts.Logger.Debug("best score saved", "best", best, "location", opts.Store.Location())
	return nil
}
