package config

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

func TestBoardSizeLimitsFitFleet(t *testing.T) {
	tests := []struct {
		size  int
		seeds int64
	}{
		{MinBoardSize, 3},
		{MaxBoardSize, 5},
	}

	for _, tc := range tests {
		cfg := DefaultSeaBattleConfig()
		cfg.Board.Size = tc.size
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(size=%d) = %v, expected nil", tc.size, err)
		}
		rules := core.Rules{
			Size:                 cfg.Board.Size,
			MaxPlacementAttempts: cfg.Placement.MaxAttempts,
			MaxBoardRestarts:     cfg.Placement.MaxRestarts,
			MaxTargetRetries:     cfg.Targeting.MaxRetries,
		}

		for seed := int64(1); seed <= tc.seeds; seed++ {
			t.Run(fmt.Sprintf("size %d seed %d", tc.size, seed), func(t *testing.T) {
				b, err := core.GenerateBoard(rand.New(rand.NewSource(seed)), rules)
				if err != nil {
					t.Fatalf("GenerateBoard() failed: %v", err)
				}
				if len(b.Vessels()) != core.FleetSize() {
					t.Errorf("%d vessels, expected %d", len(b.Vessels()), core.FleetSize())
				}
			})
		}
	}
}

func TestBoardBelowMinimumCannotFitFleet(t *testing.T) {
	rules := core.Rules{
		Size:                 MinBoardSize - 1,
		MaxPlacementAttempts: 200,
		MaxBoardRestarts:     20,
	}
	if _, err := core.GenerateBoard(rand.New(rand.NewSource(1)), rules); err == nil {
		t.Errorf("GenerateBoard(size=%d) succeeded, expected MinBoardSize to be the smallest fitting size", rules.Size)
	}
}
