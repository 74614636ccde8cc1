package seabattle

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

const (
	cellW    = 3 // Columns per board cell
	labelW   = 3 // Row-number gutter
	boardGap = 6 // Space between the two boards

	titleY  = 0
	statusY = 2
	gridY   = 6 // First board row; headings sit above it
)

// layoutSize returns the smallest screen that fits a match on a board of the given size.
func layoutSize(size int) (w, h int) {
	w = 2*boardWidth(size) + boardGap + 2
	h = gridY + size + 3 + logLines + 1
	return w, h
}

func boardWidth(size int) int {
	return labelW + size*cellW
}

// cellGlyph returns how a cell state is drawn on screen.
func cellGlyph(state core.CellState) (rune, platformcore.Color) {
	switch state {
	case core.CellShip:
		return '■', platformcore.ColorWhite
	case core.CellHit:
		return 'X', platformcore.ColorBrightRed
	case core.CellMiss:
		return '•', platformcore.ColorBrightWhite
	case core.CellNearMiss:
		return '·', platformcore.ColorGray
	default:
		return '~', platformcore.ColorBlue
	}
}

func outcomeColor(o core.Outcome) platformcore.Color {
	switch o {
	case core.Hit:
		return platformcore.ColorOrange
	case core.Sunk:
		return platformcore.ColorBrightRed
	default:
		return platformcore.ColorGray
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextCenteredWithColor(titleY, g.Title(), platformcore.ColorBrightCyan)

	if g.match == nil || g.match.Board(core.SideHuman) == nil {
		dst.DrawTextCenteredWithColor(statusY+2, g.message, g.messageColor)
		dst.DrawTextCentered(statusY+4, "Press R to try again")
		return
	}

	size := g.cfg.Board.Size
	totalW := 2*boardWidth(size) + boardGap
	leftX := (g.screenW - totalW) / 2
	rightX := leftX + boardWidth(size) + boardGap

	g.renderStatus(dst)

	leftTitle, rightTitle := "Your fleet", "Enemy waters"
	if g.watch {
		leftTitle, rightTitle = "Autopilot fleet", "Computer fleet"
	}
	human := g.match.Board(core.SideHuman)
	cpu := g.match.Board(core.SideAutomated)
	g.renderBoard(dst, leftX, leftTitle, human, false)
	g.renderBoard(dst, rightX, rightTitle, cpu, g.humanTurn() && !g.gameOver)

	g.renderFooter(dst, leftX, gridY+size+1)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := layoutSize(g.cfg.Board.Size)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderStatus draws whose turn it is and the fleet counts.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	var turn string
	switch {
	case g.gameOver:
		turn = "Battle over"
	case g.match.CurrentSide() == core.SideAutomated:
		turn = "Computer is aiming..."
	case g.watch:
		turn = "Autopilot is aiming..."
	default:
		turn = "Your turn"
	}

	human := g.match.Board(core.SideHuman)
	cpu := g.match.Board(core.SideAutomated)
	status := fmt.Sprintf("%s   Afloat: %d vs %d   Shots: %d vs %d",
		turn, human.Afloat(), cpu.Afloat(),
		g.match.Shots(core.SideHuman), g.match.Shots(core.SideAutomated))
	dst.DrawTextCenteredWithColor(statusY, status, platformcore.ColorWhite)
}

// renderBoard draws one board with its heading and row/column numbers.
func (g *Game) renderBoard(dst *platformcore.Screen, x int, title string, b *core.Board, cursor bool) {
	size := b.Size()
	dst.DrawTextWithColor(x+labelW, gridY-2, title, platformcore.ColorBrightWhite)

	for col := range size {
		dst.DrawTextWithColor(x+labelW+col*cellW+1, gridY-1, strconv.Itoa(col+1), platformcore.ColorGray)
	}

	for row := range size {
		dst.DrawTextWithColor(x, gridY+row, fmt.Sprintf("%2d", row+1), platformcore.ColorGray)
		for col := range size {
			glyph, color := cellGlyph(b.VisibleCell(core.C(row, col)))
			dst.SetWithColor(x+labelW+col*cellW+1, gridY+row, glyph, color)
		}
	}

	if cursor {
		cx := x + labelW + g.cursor.Col*cellW
		cy := gridY + g.cursor.Row
		dst.SetWithColor(cx, cy, '[', platformcore.ColorBrightYellow)
		dst.SetWithColor(cx+2, cy, ']', platformcore.ColorBrightYellow)
	}
}

// renderFooter draws the status message, the shot log and the controls.
func (g *Game) renderFooter(dst *platformcore.Screen, x, y int) {
	dst.DrawTextWithColor(x, y, g.message, g.messageColor)

	for i, entry := range g.log {
		dst.DrawTextWithColor(x, y+2+i, entry.text, platformcore.ColorGray)
	}

	dst.DrawTextCenteredWithColor(g.screenH-1, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws pause and game-over boxes.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	centerX := g.screenW / 2
	centerY := gridY + g.cfg.Board.Size/2

	if g.paused {
		drawOverlay(dst, centerX, centerY, platformcore.ColorBrightCyan, "PAUSED", "Press P to resume")
		return
	}

	if !g.gameOver || !g.match.Finished() {
		return
	}

	shots := fmt.Sprintf("Shots fired: %d", g.match.Shots(core.SideHuman))
	switch {
	case g.watch:
		drawOverlay(dst, centerX, centerY, platformcore.ColorBrightYellow,
			g.verdict(), "Press R for another battle")
	case g.match.Winner() == core.SideHuman:
		drawOverlay(dst, centerX, centerY, platformcore.ColorBrightGreen,
			"VICTORY", fmt.Sprintf("Score: %d", g.Score()), shots, "Press R for a new match")
	default:
		drawOverlay(dst, centerX, centerY, platformcore.ColorBrightRed,
			"DEFEAT", shots, "Press R for a new match")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *platformcore.Screen, centerX, centerY int, color platformcore.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, color)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, color)
	}
}
