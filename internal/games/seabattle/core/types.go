// Package core provides the core game logic for Sea Battle.
// This package is UI-agnostic and deterministic: all randomness flows through
// an injected *rand.Rand and nothing here formats text for display.
package core

// Orientation is the direction a vessel extends from its origin.
type Orientation uint8

const (
	Horizontal Orientation = iota // cells step along columns
	Vertical                      // cells step along rows
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Delta returns the (drow, dcol) step between consecutive vessel cells.
func (o Orientation) Delta() (drow, dcol int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Outcome is the result of a single resolved shot.
type Outcome uint8

const (
	Miss Outcome = iota
	Hit          // vessel damaged but still afloat
	Sunk         // vessel's hit points reached zero
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

// Repeat reports whether the shooter fires again after this outcome.
func (o Outcome) Repeat() bool {
	return o == Hit
}

// CellState is what a renderer needs to know about a single board cell.
type CellState uint8

const (
	CellEmpty    CellState = iota
	CellShip               // intact vessel cell
	CellHit                // vessel cell that has been shot
	CellMiss               // water that has been shot
	CellNearMiss           // clearance ring revealed around a sunk vessel
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	case CellNearMiss:
		return "NearMiss"
	default:
		return "Unknown"
	}
}
