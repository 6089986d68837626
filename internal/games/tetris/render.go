package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellChars  = 2  // terminal columns per grid cell
	panelWidth = 14 // side panel width including border
	hudHeight  = 2

	boardW = Width*cellChars + 2 // +2 for border
	boardH = Height + 2
)

// MinScreenSize returns the smallest terminal that fits the full layout.
func MinScreenSize() (w, h int) {
	return boardW + 1 + panelWidth, hudHeight + boardH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	v := g.View()
	boardX := (dst.Width() - minW) / 2
	boardY := hudHeight

	renderHUD(dst, &v, boardX)
	renderBoard(dst, &v, boardX, boardY)
	renderPanel(dst, &v, boardX+boardW+1, boardY)

	switch {
	case v.GameOver:
		renderOverlay(dst, "Game over!",
			fmt.Sprintf("Last score: %d", v.Score),
			fmt.Sprintf("Best score: %d", v.Best),
			"Press R to restart")
	case v.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title line and separator.
func renderHUD(dst *core.Screen, v *View, x int) {
	hud := fmt.Sprintf("Tetris | Score: %d  Best: %d", v.Score, v.Best)
	dst.DrawText(x, 0, hud)
	for i := range dst.Width() {
		dst.SetColored(i, 1, '─', core.ColorDarkGray)
	}
}

// renderBoard draws the well, settled cells, the ghost and the active piece.
func renderBoard(dst *core.Screen, v *View, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH), core.ColorWhite)

	for y := range Height {
		for x := range Width {
			if t, ok := TypeFromCell(v.Cell(x, y)); ok {
				drawCell(dst, x0, y0, x, y, '█', t.Color())
			} else {
				drawCell(dst, x0, y0, x, y, '·', core.ColorDarkGray)
			}
		}
	}

	if !v.PieceVisible {
		return
	}
	for _, c := range v.Ghost.Cells() {
		drawCell(dst, x0, y0, c.X, c.Y, '░', v.Ghost.Type.Color())
	}
	for _, c := range v.Piece.Cells() {
		drawCell(dst, x0, y0, c.X, c.Y, '█', v.Piece.Type.Color())
	}
}

// drawCell paints one grid cell; cells above the well are skipped.
func drawCell(dst *core.Screen, x0, y0, x, y int, r rune, c core.Color) {
	if !InBounds(x, y) {
		return
	}
	px := x0 + 1 + x*cellChars
	py := y0 + 1 + y
	if r == '·' {
		dst.SetColored(px, py, ' ', c)
		dst.SetColored(px+1, py, r, c)
		return
	}
	for i := range cellChars {
		dst.SetColored(px+i, py, r, c)
	}
}

// renderPanel draws the next pieces, the hold slot and counters.
func renderPanel(dst *core.Screen, v *View, x, y int) {
	dst.DrawBox(core.NewRect(x, y, panelWidth, 10), core.ColorWhite)
	dst.DrawText(x+2, y, " Next ")
	drawPreview(dst, x+2, y+2, v.Next[0], core.ColorDefault)
	drawPreview(dst, x+2, y+6, v.Next[1], core.ColorDefault)

	holdY := y + 11
	dst.DrawBox(core.NewRect(x, holdY, panelWidth, 6), core.ColorWhite)
	dst.DrawText(x+2, holdY, " Hold ")
	if v.HasHold {
		c := core.ColorDefault
		if v.HoldUsed {
			c = core.ColorGray
		}
		drawPreview(dst, x+2, holdY+2, v.Hold, c)
	}

	infoY := holdY + 7
	dst.DrawText(x+1, infoY, fmt.Sprintf("Score %6d", v.Score))
	dst.DrawText(x+1, infoY+1, fmt.Sprintf("Best  %6d", v.Best))
	dst.DrawText(x+1, infoY+2, fmt.Sprintf("Lines %6d", v.Lines))
}

// drawPreview draws a piece in its spawn shape with its top-left cell at
// (x, y). A non-default override color replaces the piece color.
func drawPreview(dst *core.Screen, x, y int, t PieceType, override core.Color) {
	color := t.Color()
	if override != core.ColorDefault {
		color = override
	}
	for _, c := range t.PreviewCells() {
		px := x + c.X*cellChars
		py := y + c.Y
		dst.SetColored(px, py, '█', color)
		dst.SetColored(px+1, py, '█', color)
	}
}

// renderOverlay draws a centered box with one line of text per row.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
