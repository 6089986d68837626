package tetris

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ

	pieceTypeCount
)

// PieceTypes returns all piece types in table order.
func PieceTypes() [pieceTypeCount]PieceType {
	return [pieceTypeCount]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}
}

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	if t >= pieceTypeCount {
		return "?"
	}
	return string("IJLOSTZ"[t])
}

// CellValue is the value a settled cell of this type holds in the grid.
func (t PieceType) CellValue() uint8 {
	return uint8(t) + 1
}

// Color returns the terminal color of the piece.
func (t PieceType) Color() core.Color {
	if t >= pieceTypeCount {
		return core.ColorDefault
	}
	return pieceColor[t]
}

// RGB returns the window color of the piece.
func (t PieceType) RGB() RGB {
	if t >= pieceTypeCount {
		return RGB{255, 255, 255}
	}
	return pieceRGB[t]
}

// TypeFromCell converts a nonzero grid cell value back to its piece type.
func TypeFromCell(v uint8) (PieceType, bool) {
	if v == 0 || v > uint8(pieceTypeCount) {
		return 0, false
	}
	return PieceType(v - 1), true
}

// PreviewCells returns the spawn shape of t shifted so its bounding box
// starts at (0, 0).
func (t PieceType) PreviewCells() [4]Point {
	cells := NewPiece(t).Cells()
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	for i := range cells {
		cells[i].X -= minX
		cells[i].Y -= minY
	}
	return cells
}

// Point is an integer grid cell.
type Point struct {
	X, Y int
}

// Piece is the active tetromino: pivot position, rotation and type.
type Piece struct {
	Pos  Vec
	Rot  int // 0..3, quarter turns counter-clockwise
	Type PieceType
}

// NewPiece returns a piece of type t in its spawn transform.
func NewPiece(t PieceType) Piece {
	return Piece{Pos: SpawnPosition(t), Type: t}
}

// Moved returns a copy shifted by (dx, dy) cells.
func (p Piece) Moved(dx, dy float64) Piece {
	p.Pos = p.Pos.Add(Vec{X: dx, Y: dy})
	return p
}

// Rotated returns a copy turned one step counter-clockwise.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) % 4
	return p
}

// Cells returns the four grid cells the piece covers.
func (p Piece) Cells() [4]Point {
	var out [4]Point
	for i, off := range BlockOffsets[p.Type] {
		c := p.Pos.Add(Rotate90(off, p.Rot))
		out[i] = Point{X: int(math.Round(c.X)), Y: int(math.Round(c.Y))}
	}
	return out
}

// Collides reports whether the piece overlaps a wall, the floor or a
// settled cell. Cells above the top row only collide with the side walls.
func (p Piece) Collides(g *Grid) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return true
		}
		if c.Y >= 0 && g.At(c.X, c.Y) != 0 {
			return true
		}
	}
	return false
}

// ToppedOut reports whether any cell is above the visible top.
func (p Piece) ToppedOut() bool {
	for _, c := range p.Cells() {
		if c.Y < 0 {
			return true
		}
	}
	return false
}

// liftUntilFree moves p up until it no longer collides.
func liftUntilFree(p Piece, g *Grid) Piece {
	for p.Collides(g) {
		p.Pos.Y--
	}
	return p
}

// dropUntilBlocked moves p down to the last row where it does not collide.
func dropUntilBlocked(p Piece, g *Grid) Piece {
	for {
		next := p.Moved(0, 1)
		if next.Collides(g) {
			return p
		}
		p = next
	}
}
