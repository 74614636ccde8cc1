package core

import "fmt"

// DefaultBoardSize is the classic board dimension.
const DefaultBoardSize = 6

// Board is one side's playing surface: the fleet, which cells are unavailable
// for placement, and which cells have been fired upon.
//
// Placement memory (occupied) and targeting memory (firedAt) are separate sets.
// occupied lives for the whole match; firedAt is cleared once after setup.
type Board struct {
	size      int
	concealed bool
	sunk      int

	occupied map[Coord]struct{}
	firedAt  map[Coord]struct{}
	vessels  []*Vessel
	marks    []CellState // row-major visual state, length size*size
}

// NewBoard creates an empty square board.
func NewBoard(size int) *Board {
	if size <= 0 {
		size = DefaultBoardSize
	}
	return &Board{
		size:     size,
		occupied: make(map[Coord]struct{}),
		firedAt:  make(map[Coord]struct{}),
		marks:    make([]CellState, size*size),
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Concealed reports whether intact ship cells should be hidden when displayed.
func (b *Board) Concealed() bool {
	return b.concealed
}

// SetConcealed sets the display-only concealment flag.
func (b *Board) SetConcealed(concealed bool) {
	b.concealed = concealed
}

// SunkCount returns the number of vessels with no hit points left.
func (b *Board) SunkCount() int {
	return b.sunk
}

// Vessels returns the placed vessels in placement order.
func (b *Board) Vessels() []*Vessel {
	out := make([]*Vessel, len(b.vessels))
	copy(out, b.vessels)
	return out
}

// Afloat returns the number of vessels still alive.
func (b *Board) Afloat() int {
	return len(b.vessels) - b.sunk
}

// AllSunk reports whether a non-empty fleet has been destroyed entirely.
func (b *Board) AllSunk() bool {
	return len(b.vessels) > 0 && b.sunk == len(b.vessels)
}

// IsOutOfBounds reports whether c lies outside [0, size) on either axis.
func (b *Board) IsOutOfBounds(c Coord) bool {
	return c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size
}

// index converts a coordinate to a flat marks index.
func (b *Board) index(c Coord) int {
	return c.Row*b.size + c.Col
}

// PlaceVessel adds v to the fleet.
// Every cell is validated before anything is mutated, so a rejected vessel
// leaves the board untouched.
func (b *Board) PlaceVessel(v *Vessel) error {
	for _, c := range v.Cells() {
		if b.IsOutOfBounds(c) {
			return fmt.Errorf("%w: %s is outside the board", ErrWrongPlacement, c)
		}
		if _, busy := b.occupied[c]; busy {
			return fmt.Errorf("%w: %s is taken or touches another vessel", ErrWrongPlacement, c)
		}
	}

	for _, c := range v.Cells() {
		b.occupied[c] = struct{}{}
		b.marks[b.index(c)] = CellShip
	}
	b.vessels = append(b.vessels, v)
	b.applyHalo(v, false)
	return nil
}

// applyHalo marks the one-cell ring around v.
//
// During placement (reveal=false) the ring joins the placement memory so no
// other vessel can touch v, even diagonally. After v is sunk (reveal=true) the
// ring is shown as near-misses and joins the targeting memory, since those
// cells are known to be water.
func (b *Board) applyHalo(v *Vessel, reveal bool) {
	for _, cell := range v.Cells() {
		for _, d := range neighborhood {
			c := cell.Add(d[0], d[1])
			if b.IsOutOfBounds(c) {
				continue
			}
			if !reveal {
				b.occupied[c] = struct{}{}
				continue
			}
			if _, fired := b.firedAt[c]; fired {
				continue
			}
			b.firedAt[c] = struct{}{}
			b.marks[b.index(c)] = CellNearMiss
		}
	}
}

// ResolveShot fires at target and reports the outcome.
// Out-of-bounds and repeated targets are rejected without changing any state.
func (b *Board) ResolveShot(target Coord) (Outcome, error) {
	if b.IsOutOfBounds(target) {
		return Miss, fmt.Errorf("%w: %s", ErrOutOfBounds, target)
	}
	if _, fired := b.firedAt[target]; fired {
		return Miss, fmt.Errorf("%w: %s", ErrAlreadyTargeted, target)
	}

	b.firedAt[target] = struct{}{}

	for _, v := range b.vessels {
		if !v.IsHitBy(target) {
			continue
		}
		v.damage()
		b.marks[b.index(target)] = CellHit
		if v.Alive() {
			return Hit, nil
		}
		b.sunk++
		b.applyHalo(v, true)
		return Sunk, nil
	}

	b.marks[b.index(target)] = CellMiss
	return Miss, nil
}

// ResetTargeting clears the targeting memory only. Placement memory and the
// fleet are kept. Called once per board after setup.
func (b *Board) ResetTargeting() {
	b.firedAt = make(map[Coord]struct{})
}

// Targeted reports whether target has been fired upon (or revealed as water).
func (b *Board) Targeted(target Coord) bool {
	_, fired := b.firedAt[target]
	return fired
}

// Untargeted returns every in-bounds cell not yet fired upon, row by row.
func (b *Board) Untargeted() []Coord {
	cells := make([]Coord, 0, b.size*b.size-len(b.firedAt))
	for row := range b.size {
		for col := range b.size {
			c := C(row, col)
			if !b.Targeted(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// Cell returns the true state of a cell regardless of concealment.
// Out-of-bounds coordinates report CellEmpty.
func (b *Board) Cell(c Coord) CellState {
	if b.IsOutOfBounds(c) {
		return CellEmpty
	}
	return b.marks[b.index(c)]
}

// VisibleCell returns the state a renderer should show: intact ship cells
// read as empty water on a concealed board.
func (b *Board) VisibleCell(c Coord) CellState {
	state := b.Cell(c)
	if b.concealed && state == CellShip {
		return CellEmpty
	}
	return state
}
