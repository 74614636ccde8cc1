package core

import "fmt"

// Coord is a 0-indexed position on a board.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// FromOneIndexed converts a player-facing 1-indexed row/column pair into a Coord.
// Callers are expected to have validated that both values are well-formed integers;
// range checking is left to the board.
func FromOneIndexed(row, col int) Coord {
	return Coord{Row: row - 1, Col: col - 1}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Label returns the 1-indexed "row col" form players type and read.
func (c Coord) Label() string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

// Add returns a new Coord offset by (drow, dcol).
func (c Coord) Add(drow, dcol int) Coord {
	return Coord{Row: c.Row + drow, Col: c.Col + dcol}
}

// neighborhood lists the 8 surrounding offsets plus the cell itself.
var neighborhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
