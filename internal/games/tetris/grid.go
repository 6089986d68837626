package tetris

import "slices"

// Playfield dimensions in cells.
const (
	Width  = 10
	Height = 24
)

// Grid is the playfield of settled cells, stored row-major.
// A cell is 0 when empty, otherwise the CellValue of the piece that
// settled there.
type Grid struct {
	cells [Width * Height]uint8
}

// InBounds reports whether (x, y) is a playfield cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the cell value at (x, y), or 0 outside the playfield.
func (g *Grid) At(x, y int) uint8 {
	if !InBounds(x, y) {
		return 0
	}
	return g.cells[y*Width+x]
}

// Set writes a cell value. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v uint8) {
	if !InBounds(x, y) {
		return
	}
	g.cells[y*Width+x] = v
}

// Cells returns a copy of the whole playfield.
func (g *Grid) Cells() [Width * Height]uint8 {
	return g.cells
}

// Filled returns the number of nonzero cells.
func (g *Grid) Filled() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Imprint settles the piece's cells into the grid. Cells outside the
// playfield, such as those above the top row, are skipped.
func (g *Grid) Imprint(p Piece) {
	v := p.Type.CellValue()
	for _, c := range p.Cells() {
		g.Set(c.X, c.Y, v)
	}
}

// FullRows returns the indices of rows with every column filled, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < Height; y++ {
		if g.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

func (g *Grid) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if g.cells[y*Width+x] == 0 {
			return false
		}
	}
	return true
}

// ClearRows removes the given rows. Rows are processed in ascending order;
// each removal shifts every row above it down by one and empties row 0.
func (g *Grid) ClearRows(rows []int) {
	for _, r := range sortedRows(rows) {
		if r < 0 || r >= Height {
			continue
		}
		copy(g.cells[Width:(r+1)*Width], g.cells[:r*Width])
		clear(g.cells[:Width])
	}
}

// PeelColumns empties column col and its mirror Width-1-col in each row.
func (g *Grid) PeelColumns(rows []int, col int) {
	for _, r := range rows {
		g.Set(col, r, 0)
		g.Set(Width-1-col, r, 0)
	}
}

// sortedRows returns an ascending copy of rows without duplicates.
func sortedRows(rows []int) []int {
	out := slices.Clone(rows)
	slices.Sort(out)
	return slices.Compact(out)
}
