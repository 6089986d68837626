package tetris

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the engine's top-level state.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseLineClearing
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseLineClearing:
		return "line_clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Scoring.
const (
	pointsPerPiece = 1
	pointsPerRow   = 10
)

// timeEpsilon absorbs float drift when summing the tick delta.
const timeEpsilon = 1e-9

// Timing holds the tick rate and all durations, in seconds.
type Timing struct {
	TickRate         int
	FallInterval     float64
	DropInterval     float64
	ClearStep        float64
	SideMoveDelay    float64
	SideMoveInterval float64
}

// DefaultTiming returns the standard timing at 120 ticks per second.
func DefaultTiming() Timing {
	return TimingFromConfig(config.DefaultTetrisConfig().Timing)
}

// TimingFromConfig converts the YAML timing section.
func TimingFromConfig(c config.TimingConfig) Timing {
	return Timing{
		TickRate:         c.TickRate,
		FallInterval:     c.FallInterval,
		DropInterval:     c.DropInterval,
		ClearStep:        c.ClearStep,
		SideMoveDelay:    c.SideMoveDelay,
		SideMoveInterval: c.SideMoveInterval,
	}
}

// Delta returns the fixed tick duration.
func (t Timing) Delta() float64 {
	if t.TickRate <= 0 {
		return 1.0 / 120
	}
	return 1 / float64(t.TickRate)
}

func elapsed(timer, interval float64) bool {
	return timer+timeEpsilon >= interval
}

// State is a complete game session. It is advanced only by Tick and
// reset by Restart; the best score survives restarts.
type State struct {
	timing Timing
	dt     float64
	bag    *Bag

	grid  Grid
	piece Piece
	phase Phase

	score  int
	best   int
	pieces int
	lines  int
	ticks  uint64

	// Line clear animation
	clearRows []int
	clearCols int

	// Timers, in seconds
	fallTimer  float64
	dropTimer  float64
	clearTimer float64
	sideTimer  float64
	sideDir    int // -1 left, +1 right, 0 none

	hold     PieceType
	hasHold  bool
	holdUsed bool
}

// NewState starts a session. src feeds the piece bag; best is the
// persisted best score.
func NewState(timing Timing, src rand.Source, best int) *State {
	s := &State{
		timing: timing,
		dt:     timing.Delta(),
		bag:    NewBag(src),
		best:   max(best, 0),
	}
	s.reset()
	return s
}

// Restart begins a new game, keeping the best score and continuing the
// random stream.
func (s *State) Restart() {
	s.bag.Reset()
	s.reset()
}

func (s *State) reset() {
	s.grid = Grid{}
	s.phase = PhaseFalling
	s.score = 0
	s.pieces = 0
	s.lines = 0
	s.ticks = 0
	s.clearRows = nil
	s.clearCols = 0
	s.fallTimer, s.dropTimer, s.clearTimer, s.sideTimer = 0, 0, 0, 0
	s.sideDir = 0
	s.hold, s.hasHold, s.holdUsed = 0, false, false
	s.spawn(s.bag.Current())
}

// Tick advances the session by one fixed step.
func (s *State) Tick(in core.InputFrame) {
	s.ticks++
	defer s.updateBest()

	switch s.phase {
	case PhaseGameOver:
		if in.IsPressed(core.ActionRestart) {
			s.Restart()
		}
		return
	case PhaseLineClearing:
		s.stepLineClear()
		return
	}

	s.fallTimer += s.dt
	s.dropTimer += s.dt
	if s.sideDir != 0 {
		s.sideTimer -= s.dt
	}

	s.handleSidePress(in)
	s.handleHold(in)
	s.handleRotate(in)
	if in.IsPressed(core.ActionHardDrop) {
		s.piece = dropUntilBlocked(s.piece, &s.grid).Moved(0, 1)
	}
	s.handleSideRepeat(in)
	s.handleSoftDrop(in)

	if elapsed(s.fallTimer, s.timing.FallInterval) {
		s.fallTimer = 0
		s.piece = s.piece.Moved(0, 1)
	}

	if s.piece.Collides(&s.grid) {
		s.lock()
	}
}

func (s *State) updateBest() {
	if s.score > s.best {
		s.best = s.score
	}
}

// stepLineClear advances the erase animation one tick. Columns are peeled
// from the centre outward; the rows are removed once all are empty.
func (s *State) stepLineClear() {
	s.fallTimer, s.dropTimer = 0, 0
	s.clearTimer += s.dt
	if !elapsed(s.clearTimer, s.timing.ClearStep) {
		return
	}
	s.clearTimer = 0
	s.clearCols--
	s.grid.PeelColumns(s.clearRows, s.clearCols)
	if s.clearCols > 0 {
		return
	}
	s.grid.ClearRows(s.clearRows)
	s.clearRows = nil
	s.piece = liftUntilFree(s.piece, &s.grid)
	s.phase = PhaseFalling
}

// tryShift moves the piece sideways unless that collides.
func (s *State) tryShift(dx int) {
	if next := s.piece.Moved(float64(dx), 0); !next.Collides(&s.grid) {
		s.piece = next
	}
}

func (s *State) handleSidePress(in core.InputFrame) {
	if in.IsPressed(core.ActionLeft) {
		s.tryShift(-1)
		s.sideDir = -1
		s.sideTimer = s.timing.SideMoveDelay
	}
	if in.IsPressed(core.ActionRight) {
		s.tryShift(1)
		s.sideDir = 1
		s.sideTimer = s.timing.SideMoveDelay
	}
	if (in.IsReleased(core.ActionLeft) && s.sideDir == -1) ||
		(in.IsReleased(core.ActionRight) && s.sideDir == 1) {
		s.sideDir = 0
	}
}

// handleSideRepeat repeats the held side move once the delay has run out.
func (s *State) handleSideRepeat(in core.InputFrame) {
	if s.sideDir == 0 || s.sideTimer > timeEpsilon {
		return
	}
	s.sideTimer = s.timing.SideMoveInterval
	switch {
	case s.sideDir == -1 && in.IsDown(core.ActionLeft):
		s.tryShift(-1)
	case s.sideDir == 1 && in.IsDown(core.ActionRight):
		s.tryShift(1)
	}
}

// handleHold banks the active piece. The first hold of a game stores the
// piece and draws the next one; later holds swap. One hold per lock.
func (s *State) handleHold(in core.InputFrame) {
	if !in.IsPressed(core.ActionHold) || s.holdUsed {
		return
	}
	s.holdUsed = true
	if !s.hasHold {
		s.hold, s.hasHold = s.piece.Type, true
		s.bag.Advance()
		s.spawn(s.bag.Current())
		return
	}
	held := s.hold
	s.hold = s.piece.Type
	s.spawn(held)
}

// handleRotate turns the piece and resolves collisions with a one-cell kick:
//
//	only left free  -> shift left
//	only right free -> shift right
//	both free       -> lift one row in place if free, else shift right
//	neither free    -> undo the rotation
func (s *State) handleRotate(in core.InputFrame) {
	if !in.IsPressed(core.ActionRotate) || s.piece.Type == PieceO {
		return
	}
	turned := s.piece.Rotated()
	if !turned.Collides(&s.grid) {
		s.piece = turned
		return
	}

	left, right := turned.Moved(-1, 0), turned.Moved(1, 0)
	leftFree, rightFree := !left.Collides(&s.grid), !right.Collides(&s.grid)
	switch {
	case leftFree && !rightFree:
		s.piece = left
	case rightFree && !leftFree:
		s.piece = right
	case leftFree && rightFree:
		if up := turned.Moved(0, -1); !up.Collides(&s.grid) {
			s.piece = up
		} else {
			s.piece = right
		}
	}
}

// handleSoftDrop steps the piece down on the drop interval while held.
// A blocked step is undone and leaves the gravity timer untouched.
func (s *State) handleSoftDrop(in core.InputFrame) {
	if !elapsed(s.dropTimer, s.timing.DropInterval) {
		return
	}
	s.dropTimer = 0
	if !in.IsDown(core.ActionSoftDrop) {
		return
	}
	next := s.piece.Moved(0, 1)
	if next.Collides(&s.grid) {
		return
	}
	s.piece = next
	s.fallTimer = 0
}

// lock settles the colliding piece at its resting row.
func (s *State) lock() {
	s.fallTimer, s.dropTimer, s.sideTimer = 0, 0, 0
	s.sideDir = 0

	s.piece = liftUntilFree(s.piece, &s.grid)
	if s.piece.ToppedOut() {
		s.phase = PhaseGameOver
		return
	}

	s.grid.Imprint(s.piece)
	s.holdUsed = false
	s.bag.Advance()
	s.spawn(s.bag.Current())

	if rows := s.grid.FullRows(); len(rows) > 0 {
		s.clearRows = rows
		s.clearCols = (Width + 1) / 2
		s.clearTimer = 0
		s.phase = PhaseLineClearing
		s.score += pointsPerRow * len(rows)
		s.lines += len(rows)
	}
	s.score += pointsPerPiece
	s.pieces++
}

// spawn makes a fresh piece of type t active, lifted clear of any
// settled cells.
func (s *State) spawn(t PieceType) {
	s.piece = liftUntilFree(NewPiece(t), &s.grid)
}

// Ghost returns where the active piece would land if dropped now.
func (s *State) Ghost() Piece {
	return dropUntilBlocked(s.piece, &s.grid)
}

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Best returns the best score, including the current game.
func (s *State) Best() int { return s.best }

// Piece returns the active piece.
func (s *State) Piece() Piece { return s.piece }

// Grid returns a copy of the playfield.
func (s *State) Grid() Grid { return s.grid }

// Bag returns the piece queue. Callers must not advance it.
func (s *State) Bag() *Bag { return s.bag }

// Hold returns the held piece type, if any.
func (s *State) Hold() (PieceType, bool) { return s.hold, s.hasHold }

// HoldUsed reports whether hold was already used for the active piece.
func (s *State) HoldUsed() bool { return s.holdUsed }

// Timing returns the session timing.
func (s *State) Timing() Timing { return s.timing }
