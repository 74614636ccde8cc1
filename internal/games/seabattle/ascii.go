package seabattle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

// asciiGlyph returns the plain-text mark for a cell.
func asciiGlyph(state core.CellState) string {
	switch state {
	case core.CellShip:
		return "■"
	case core.CellHit:
		return "X"
	case core.CellMiss:
		return "T"
	case core.CellNearMiss:
		return "."
	default:
		return "O"
	}
}

// RenderASCII draws a board as plain text, one row per line:
//
//	    1   2   3
//	 1 |O| |■| |X|
//
// With reveal false a concealed board hides its intact ship cells.
func RenderASCII(b *core.Board, reveal bool) string {
	var sb strings.Builder
	size := b.Size()

	sb.WriteString("   ")
	for col := range size {
		sb.WriteString(fmt.Sprintf(" %-3d", col+1))
	}

	for row := range size {
		sb.WriteString(fmt.Sprintf("\n%2d ", row+1))
		for col := range size {
			c := core.C(row, col)
			state := b.VisibleCell(c)
			if reveal {
				state = b.Cell(c)
			}
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("|" + asciiGlyph(state) + "|")
		}
	}

	lines := strings.Split(sb.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}
