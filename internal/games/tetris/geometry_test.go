package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate90Formulas(t *testing.T) {
	v := Vec{X: 1.5, Y: -0.5}

	tests := []struct {
		steps    int
		expected Vec
	}{
		{0, Vec{1.5, -0.5}},
		{1, Vec{0.5, 1.5}},
		{2, Vec{-1.5, 0.5}},
		{3, Vec{-0.5, -1.5}},
		{4, Vec{1.5, -0.5}},
		{-1, Vec{-0.5, -1.5}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Rotate90(v, tc.steps), "steps=%d", tc.steps)
	}
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	for _, pt := range PieceTypes() {
		for _, off := range BlockOffsets[pt] {
			for steps := range 4 {
				v := off
				for range 4 {
					v = Rotate90(v, steps)
				}
				assert.Equal(t, off, v, "piece %s offset %v steps %d", pt, off, steps)
			}
		}
	}
}

func TestSpawnCells(t *testing.T) {
	tests := []struct {
		piece PieceType
		cells [4]Point
	}{
		{PieceI, [4]Point{{3, 0}, {4, 0}, {5, 0}, {6, 0}}},
		{PieceO, [4]Point{{4, 0}, {5, 0}, {4, 1}, {5, 1}}},
		{PieceT, [4]Point{{3, 1}, {4, 1}, {4, 0}, {5, 1}}},
		{PieceJ, [4]Point{{3, 1}, {4, 1}, {5, 1}, {5, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.piece.String(), func(t *testing.T) {
			p := NewPiece(tc.piece)
			assert.Equal(t, tc.cells, p.Cells())
			assert.False(t, p.ToppedOut())
			assert.False(t, p.Collides(&Grid{}))
		})
	}
}

func TestRotationKeepsCellsOnLattice(t *testing.T) {
	for _, pt := range PieceTypes() {
		p := NewPiece(pt)
		for rot := range 4 {
			p.Rot = rot
			cells := p.Cells()
			seen := map[Point]bool{}
			for _, c := range cells {
				seen[c] = true
			}
			assert.Len(t, seen, 4, "piece %s rot %d has overlapping cells", pt, rot)
		}
	}
}

func TestCollidesOutOfBoundsRegardlessOfGrid(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	var full Grid
	for i := range full.cells {
		if rng.IntN(2) == 0 {
			full.cells[i] = 1
		}
	}

	for _, g := range []*Grid{{}, &full} {
		for _, pt := range PieceTypes() {
			for rot := range 4 {
				for x := -4; x <= Width+4; x++ {
					for y := -4; y <= Height+4; y++ {
						p := NewPiece(pt)
						p.Rot = rot
						p.Pos = p.Pos.Add(Vec{X: float64(x - 4), Y: float64(y)})

						outside := false
						for _, c := range p.Cells() {
							if c.X < 0 || c.X >= Width || c.Y >= Height {
								outside = true
							}
						}
						if outside {
							require.True(t, p.Collides(g), "piece %s rot %d at %v", pt, rot, p.Pos)
						}
					}
				}
			}
		}
	}
}

func TestCollidesAboveTopIsAllowed(t *testing.T) {
	p := NewPiece(PieceT).Moved(0, -5)

	assert.False(t, p.Collides(&Grid{}))
	assert.True(t, p.ToppedOut())
}

func TestCollidesWithSettledCell(t *testing.T) {
	var g Grid
	g.Set(4, 1, PieceZ.CellValue())

	assert.True(t, NewPiece(PieceT).Collides(&g))
	assert.False(t, NewPiece(PieceT).Moved(0, -2).Collides(&g))
}

func TestPieceTypeCellValues(t *testing.T) {
	for i, pt := range PieceTypes() {
		assert.Equal(t, uint8(i+1), pt.CellValue())
		back, ok := TypeFromCell(pt.CellValue())
		assert.True(t, ok)
		assert.Equal(t, pt, back)
	}
	_, ok := TypeFromCell(0)
	assert.False(t, ok)
	_, ok = TypeFromCell(8)
	assert.False(t, ok)
}

func TestPreviewCellsStartAtOrigin(t *testing.T) {
	assert.Equal(t, [4]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, PieceI.PreviewCells())
	assert.Equal(t, [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, PieceO.PreviewCells())
	assert.Equal(t, [4]Point{{0, 1}, {1, 1}, {1, 0}, {2, 1}}, PieceT.PreviewCells())
}
