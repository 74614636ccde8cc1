package core

import (
	"fmt"
	"math/rand"
)

// ClassicFleet lists the vessel lengths every board carries:
// one three-deck, two two-deck and four single-deck vessels.
var ClassicFleet = []int{3, 2, 2, 1, 1, 1, 1}

// FleetSize is the number of vessels a side must lose to be defeated.
func FleetSize() int {
	return len(ClassicFleet)
}

// RandomVessel draws a vessel of the given length with a uniformly random
// orientation and an origin anywhere on the board. Vessels that run off the
// edge are rejected by PlaceVessel's bounds check.
func RandomVessel(rng *rand.Rand, size, length int) *Vessel {
	origin := C(rng.Intn(size), rng.Intn(size))
	o := Orientation(rng.Intn(2))
	return NewVessel(origin, length, o)
}

// tryBoard makes one whole-board attempt, giving up after maxAttempts
// placement attempts across all lengths.
func tryBoard(rng *rand.Rand, size, maxAttempts int) (*Board, bool) {
	board := NewBoard(size)
	attempts := 0
	for _, length := range ClassicFleet {
		for {
			attempts++
			if attempts >= maxAttempts {
				return nil, false
			}
			if err := board.PlaceVessel(RandomVessel(rng, size, length)); err == nil {
				break
			}
		}
	}
	return board, true
}

// GenerateBoard places the classic fleet at random.
// Each whole-board attempt is abandoned after rules.MaxPlacementAttempts and
// restarted from an empty board; after rules.MaxBoardRestarts failed attempts
// ErrFleetUnplaceable is returned. The returned board has empty targeting memory.
func GenerateBoard(rng *rand.Rand, rules Rules) (*Board, error) {
	rules = rules.withDefaults()
	for range rules.MaxBoardRestarts {
		board, ok := tryBoard(rng, rules.Size, rules.MaxPlacementAttempts)
		if !ok {
			continue
		}
		board.ResetTargeting()
		return board, nil
	}
	return nil, fmt.Errorf("%w: %d restarts on a %dx%d board",
		ErrFleetUnplaceable, rules.MaxBoardRestarts, rules.Size, rules.Size)
}
