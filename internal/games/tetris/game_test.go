package tetris

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newTestGame(best int) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	cfg.BestScore = best
	g.ResetWithTiming(cfg, DefaultTiming())
	return g
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))

	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(0)
	g2 := newTestGame(0)

	for _, f := range randomFrames(3, 5000) {
		g1.Step(f)
		g2.Step(f)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestPauseStopsTicks(t *testing.T) {
	g := newTestGame(0)

	res := g.Step(pressed(core.ActionPause))
	require.True(t, res.State.Paused)
	before := g.Snapshot()

	for range 500 {
		g.Step(pressed(core.ActionHardDrop))
	}
	assert.Equal(t, before, g.Snapshot())
	assert.True(t, g.View().Paused)

	res = g.Step(pressed(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestBestScoreCarriedIntoState(t *testing.T) {
	g := newTestGame(50)
	assert.Equal(t, 50, g.State().BestScore)
	assert.Equal(t, 0, g.State().Score)

	g.Step(pressed(core.ActionHardDrop))
	assert.Equal(t, 1, g.State().Score)
	assert.Equal(t, 50, g.State().BestScore)
}

func TestResetKeepsSessionBest(t *testing.T) {
	g := newTestGame(0)
	for range 3 {
		g.Step(pressed(core.ActionHardDrop))
		g.Step(released(core.ActionHardDrop))
	}
	require.Equal(t, 3, g.State().BestScore)

	g.ResetWithTiming(core.DefaultConfig(), DefaultTiming())
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, 3, g.State().BestScore)
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(7)
	scr := core.NewScreen(80, 30)

	g.Render(scr)
	out := scr.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Best: 7")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "Hold")
	assert.Contains(t, out, "░", "ghost should be drawn")
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(0)
	for i := 0; g.Engine().Phase() != PhaseGameOver; i++ {
		require.Less(t, i, 2000)
		g.Step(pressed(core.ActionHardDrop))
		g.Step(released(core.ActionHardDrop))
	}
	scr := core.NewScreen(80, 30)

	g.Render(scr)
	out := scr.String()

	assert.Contains(t, out, "Game over!")
	assert.Contains(t, out, "Last score: "+strconv.Itoa(g.State().Score))
	assert.Contains(t, out, "Best score: "+strconv.Itoa(g.State().BestScore))
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(0)
	scr := core.NewScreen(20, 10)

	g.Render(scr)

	assert.True(t, strings.Contains(scr.String(), "Window too small"))
}

func TestRuntimeTickRateOverridesConfig(t *testing.T) {
	timing := LoadTiming(60)
	assert.Equal(t, 60, timing.TickRate)
	assert.InDelta(t, 1.0/60, timing.Delta(), 1e-12)
}
