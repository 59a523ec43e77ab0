package t2048

import (
	"fmt"
	"strconv"

	"github.com/mkorolik/tui2048/internal/core"
)

const (
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
	minCellW   = 5
)

// cellWidth returns the cell width needed to fit the largest tile.
func (g *Game) cellWidth() int {
	w := minCellW
	if g.eng != nil {
		if need := len(strconv.Itoa(g.eng.Board().MaxTile())) + 2; need > w {
			w = need
		}
	}
	return w
}

// tileColor maps tile values to a terminal color ramp.
func tileColor(value int) core.Color {
	switch {
	case value <= 0:
		return core.ColorDefault
	case value <= 4:
		return core.ColorWhite
	case value <= 16:
		return core.ColorYellow
	case value <= 64:
		return core.ColorOrange
	case value <= 256:
		return core.ColorRed
	case value <= 1024:
		return core.ColorMagenta
	default:
		return core.ColorCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cellW := g.cellWidth()
	boardW := g.boardSize*cellW + 1
	boardH := g.boardSize*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, cellW)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score and best tile info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	if g.goalTile > 0 {
		infoStr = fmt.Sprintf("Max: %d  Goal: %d", g.eng.Board().MaxTile(), g.goalTile)
	} else {
		infoStr = fmt.Sprintf("Max: %d", g.eng.Board().MaxTile())
	}

	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	sizeStr := fmt.Sprintf("%dx%d", g.boardSize, g.boardSize)
	sizeX := boardX + (boardW-len(sizeStr))/2
	dst.DrawText(sizeX, 2, sizeStr)
}

// renderBoard draws the NxN grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, cellW int) {
	n := g.boardSize

	// Draw grid borders
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := boardX + x*cellW
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < n {
				for i := 1; i < cellW; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	board := g.eng.Board()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			val := board.At(x, y).Value
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellW + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellW - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.eng.Finished() {
		maxStr := fmt.Sprintf("Max tile: %d", g.eng.Board().MaxTile())
		if g.eng.Won() {
			g.drawOverlay(dst, centerX, centerY, "YOU WIN", maxStr, "Press R to restart")
		} else {
			g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		}
		return
	}

	if g.eng.Won() {
		// Goal reached but the board still has moves.
		banner := fmt.Sprintf("Goal %d reached! Keep going", g.goalTile)
		dst.DrawTextCentered(boardY+boardH+1, banner)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
