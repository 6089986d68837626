package tetris

// View is the read-only picture of a session handed to renderers.
type View struct {
	Cells        [Width * Height]uint8
	Piece        Piece
	PieceVisible bool // false while rows are being cleared or after game over
	Ghost        Piece
	Next         [2]PieceType
	Hold         PieceType
	HasHold      bool
	HoldUsed     bool
	Score        int
	Best         int
	Lines        int
	Phase        Phase
	GameOver     bool
	Paused       bool
}

// View captures the current state for drawing.
func (s *State) View() View {
	return View{
		Cells:        s.grid.Cells(),
		Piece:        s.piece,
		PieceVisible: s.phase == PhaseFalling,
		Ghost:        s.Ghost(),
		Next:         [2]PieceType{s.bag.Peek(1), s.bag.Peek(2)},
		Hold:         s.hold,
		HasHold:      s.hasHold,
		HoldUsed:     s.holdUsed,
		Score:        s.score,
		Best:         s.best,
		Lines:        s.lines,
		Phase:        s.phase,
		GameOver:     s.phase == PhaseGameOver,
	}
}

// Cell returns the settled value at (x, y), or 0 outside the playfield.
func (v *View) Cell(x, y int) uint8 {
	if !InBounds(x, y) {
		return 0
	}
	return v.Cells[y*Width+x]
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Best      int
	Pieces    int
	Lines     int
	Filled    int
	PieceType PieceType
	PieceX    float64
	PieceY    float64
	Rot       int
	Queue     [QueueLen]PieceType
	Hold      PieceType
	HasHold   bool
	Grid      [Width * Height]uint8
}

// Snapshot returns the current snapshot for determinism verification.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.ticks,
		Phase:     s.phase,
		Score:     s.score,
		Best:      s.best,
		Pieces:    s.pieces,
		Lines:     s.lines,
		Filled:    s.grid.Filled(),
		PieceType: s.piece.Type,
		PieceX:    s.piece.Pos.X,
		PieceY:    s.piece.Pos.Y,
		Rot:       s.piece.Rot,
		Queue:     s.bag.Queue(),
		Hold:      s.hold,
		HasHold:   s.hasHold,
		Grid:      s.grid.Cells(),
	}
}
