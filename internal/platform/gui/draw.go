package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Layout in logical pixels.
const (
	cellPx   = 24
	marginPx = 16
	hudPx    = 24
	panelPx  = 6 * cellPx
	glyphW   = 6 // ebitenutil debug font
	glyphH   = 16

	boardX = marginPx
	boardY = marginPx + hudPx
	panelX = boardX + tetris.Width*cellPx + marginPx

	logicalWidth  = panelX + panelPx + marginPx
	logicalHeight = boardY + tetris.Height*cellPx + marginPx
)

const ghostAlpha = 70

var (
	backgroundColor = color.RGBA{0x14, 0x14, 0x1c, 0xff}
	boardColor      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	gridLineColor   = color.RGBA{0x24, 0x24, 0x30, 0xff}
	frameColor      = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	usedHoldColor   = color.RGBA{0x60, 0x60, 0x60, 0xff}
	overlayColor    = color.NRGBA{0x00, 0x00, 0x00, 0xb0}
)

// pieceColor converts a piece color, alpha not premultiplied.
func pieceColor(t tetris.PieceType, alpha uint8) color.NRGBA {
	c := t.RGB()
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func drawView(screen *ebiten.Image, v tetris.View) {
	screen.Fill(backgroundColor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d   Best: %d", v.Score, v.Best), boardX, marginPx)

	drawBoard(screen, &v)
	drawPanel(screen, &v)

	switch {
	case v.GameOver:
		drawOverlay(screen,
			"Game over!",
			fmt.Sprintf("Last score: %d", v.Score),
			fmt.Sprintf("Best score: %d", v.Best),
			"Press R to restart")
	case v.Paused:
		drawOverlay(screen, "Paused", "Press P to continue")
	}
}

func drawBoard(screen *ebiten.Image, v *tetris.View) {
	w := float32(tetris.Width * cellPx)
	h := float32(tetris.Height * cellPx)
	vector.DrawFilledRect(screen, boardX, boardY, w, h, boardColor, false)
	for x := 1; x < tetris.Width; x++ {
		lx := float32(boardX + x*cellPx)
		vector.StrokeLine(screen, lx, boardY, lx, boardY+h, 1, gridLineColor, false)
	}
	for y := 1; y < tetris.Height; y++ {
		ly := float32(boardY + y*cellPx)
		vector.StrokeLine(screen, boardX, ly, boardX+w, ly, 1, gridLineColor, false)
	}
	vector.StrokeRect(screen, boardX-1, boardY-1, w+2, h+2, 2, frameColor, false)

	for y := range tetris.Height {
		for x := range tetris.Width {
			if t, ok := tetris.TypeFromCell(v.Cell(x, y)); ok {
				drawCell(screen, boardX, boardY, x, y, pieceColor(t, 0xff))
			}
		}
	}

	if !v.PieceVisible {
		return
	}
	for _, c := range v.Ghost.Cells() {
		if c.Y >= 0 {
			drawCell(screen, boardX, boardY, c.X, c.Y, pieceColor(v.Ghost.Type, ghostAlpha))
		}
	}
	for _, c := range v.Piece.Cells() {
		if c.Y >= 0 {
			drawCell(screen, boardX, boardY, c.X, c.Y, pieceColor(v.Piece.Type, 0xff))
		}
	}
}

// drawCell fills one grid cell, leaving a one-pixel gap.
func drawCell(screen *ebiten.Image, x0, y0, x, y int, clr color.Color) {
	px := float32(x0 + x*cellPx + 1)
	py := float32(y0 + y*cellPx + 1)
	vector.DrawFilledRect(screen, px, py, cellPx-2, cellPx-2, clr, false)
}

func drawPanel(screen *ebiten.Image, v *tetris.View) {
	y := boardY
	ebitenutil.DebugPrintAt(screen, "Next", panelX, y)
	drawPreview(screen, panelX, y+glyphH+4, v.Next[0], pieceColor(v.Next[0], 0xff))
	drawPreview(screen, panelX, y+glyphH+4+3*cellPx, v.Next[1], pieceColor(v.Next[1], 0xff))

	y += glyphH + 4 + 6*cellPx + marginPx
	ebitenutil.DebugPrintAt(screen, "Hold", panelX, y)
	if v.HasHold {
		var c color.Color = pieceColor(v.Hold, 0xff)
		if v.HoldUsed {
			c = usedHoldColor
		}
		drawPreview(screen, panelX, y+glyphH+4, v.Hold, c)
	}

	y += glyphH + 4 + 3*cellPx + marginPx
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score %d", v.Score), panelX, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best  %d", v.Best), panelX, y+glyphH)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines %d", v.Lines), panelX, y+2*glyphH)
}

func drawPreview(screen *ebiten.Image, x, y int, t tetris.PieceType, clr color.Color) {
	for _, c := range t.PreviewCells() {
		drawCell(screen, x, y, c.X, c.Y, clr)
	}
}

// drawOverlay dims the board and prints centered lines over it.
func drawOverlay(screen *ebiten.Image, lines ...string) {
	boxH := (len(lines) + 2) * glyphH
	boxY := boardY + (tetris.Height*cellPx-boxH)/2
	vector.DrawFilledRect(screen, boardX, float32(boxY), tetris.Width*cellPx, float32(boxH), overlayColor, false)

	for i, l := range lines {
		x := boardX + (tetris.Width*cellPx-len(l)*glyphW)/2
		ebitenutil.DebugPrintAt(screen, l, x, boxY+(i+1)*glyphH)
	}
}
