package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ErrInvariant is wrapped by every invariant violation.
var ErrInvariant = errors.New("invariant violated")

// checker validates a session after each tick.
type checker struct {
	lastScore int
	restarts  int
}

// after checks s once Tick has run. wasOver is the phase before the tick.
func (c *checker) after(s *tetris.State, wasOver bool) error {
	q := s.Bag().Queue()
	if !tetris.IsPermutation(q[:]) {
		return fmt.Errorf("%w: queue %v is not a permutation", ErrInvariant, q)
	}
	if s.Best() < s.Score() {
		return fmt.Errorf("%w: best %d below score %d", ErrInvariant, s.Best(), s.Score())
	}

	restarted := wasOver && s.Phase() != tetris.PhaseGameOver
	switch {
	case restarted:
		c.restarts++
		if s.Score() != 0 {
			return fmt.Errorf("%w: score %d after restart", ErrInvariant, s.Score())
		}
	case s.Score() < c.lastScore:
		return fmt.Errorf("%w: score fell from %d to %d", ErrInvariant, c.lastScore, s.Score())
	}
	c.lastScore = s.Score()

	g := s.Grid()
	for i, v := range g.Cells() {
		if v > tetris.PieceZ.CellValue() {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvariant, i, v)
		}
	}
	if s.Phase() == tetris.PhaseFalling {
		if p := s.Piece(); p.Collides(&g) {
			return fmt.Errorf("%w: active %s overlaps the grid at %v", ErrInvariant, p.Type, p.Cells())
		}
	}
	return nil
}
