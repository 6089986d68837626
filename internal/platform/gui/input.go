package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// keyBinding ties a physical key to a game action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// defaultBindings mirrors the terminal key map.
var defaultBindings = []keyBinding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyW, core.ActionRotate},
	{ebiten.KeyArrowDown, core.ActionSoftDrop},
	{ebiten.KeyS, core.ActionSoftDrop},
	{ebiten.KeySpace, core.ActionHardDrop},
	{ebiten.KeyC, core.ActionHold},
	{ebiten.KeyShiftLeft, core.ActionHold},
	{ebiten.KeyShiftRight, core.ActionHold},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
}

// keySource reports key levels and edges for the current tick.
type keySource interface {
	IsPressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard state.
type ebitenKeys struct{}

func (ebitenKeys) IsPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// readFrame builds the input frame for one tick. An action bound to
// several keys is down while any of them is held, pressed only when none
// was held before, and released only when the last one goes up.
func readFrame(src keySource, bindings []keyBinding) core.InputFrame {
	var down, justDown, heldBefore, justUp core.ActionSet
	for _, b := range bindings {
		pressed := src.IsPressed(b.key)
		just := src.JustPressed(b.key)
		if pressed {
			down = down.With(b.action)
		}
		if just {
			justDown = justDown.With(b.action)
		}
		if pressed && !just {
			heldBefore = heldBefore.With(b.action)
		}
		if src.JustReleased(b.key) {
			justUp = justUp.With(b.action)
		}
	}

	return core.InputFrame{
		Down:     down,
		Pressed:  justDown &^ heldBefore,
		Released: justUp &^ down,
	}
}
