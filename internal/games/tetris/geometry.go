package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Vec is a 2D offset or position in grid units. Components are always
// whole or half-integer so rounding to cells is exact.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rotate90 rotates v by steps quarter turns counter-clockwise.
// Only sign flips and swaps are used, so four turns return v exactly.
func Rotate90(v Vec, steps int) Vec {
	switch ((steps % 4) + 4) % 4 {
	case 1:
		return Vec{X: -v.Y, Y: v.X}
	case 2:
		return Vec{X: -v.X, Y: -v.Y}
	case 3:
		return Vec{X: v.Y, Y: -v.X}
	default:
		return v
	}
}

// BlockOffsets holds the four cell offsets of each piece around its pivot,
// indexed by PieceType. Rows grow downwards.
var BlockOffsets = [pieceTypeCount][4]Vec{
	PieceI: {{-1.5, -0.5}, {-0.5, -0.5}, {0.5, -0.5}, {1.5, -0.5}},
	PieceJ: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
	PieceL: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	PieceO: {{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}},
	PieceS: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
	PieceT: {{-1, 0}, {0, 0}, {0, -1}, {1, 0}},
	PieceZ: {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
}

// Spawn pivots. Pieces with an even footprint sit on half cells.
var (
	spawnCentered = Vec{X: 4, Y: 1}
	spawnHalf     = Vec{X: 4.5, Y: 0.5}
)

// SpawnPosition returns the pivot a new piece of type t starts at.
func SpawnPosition(t PieceType) Vec {
	if t == PieceI || t == PieceO {
		return spawnHalf
	}
	return spawnCentered
}

// RGB is a display color for window renderers.
type RGB struct {
	R, G, B uint8
}

var pieceRGB = [pieceTypeCount]RGB{
	PieceI: {0, 255, 255},
	PieceJ: {0, 0, 255},
	PieceL: {255, 127, 0},
	PieceO: {255, 255, 0},
	PieceS: {0, 255, 0},
	PieceT: {255, 0, 255},
	PieceZ: {255, 0, 0},
}

var pieceColor = [pieceTypeCount]core.Color{
	PieceI: core.ColorCyan,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
	PieceO: core.ColorYellow,
	PieceS: core.ColorGreen,
	PieceT: core.ColorMagenta,
	PieceZ: core.ColorRed,
}
