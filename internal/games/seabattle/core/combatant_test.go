package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

func TestAutomatedCoversEveryCell(t *testing.T) {
	b := core.NewBoard(6)
	cpu := core.NewAutomated(core.SideAutomated, 6, rand.New(rand.NewSource(42)))

	seen := make(map[core.Coord]bool)
	for i := range 36 {
		result, err := core.TakeTurn(cpu, b, 10000)
		if err != nil {
			t.Fatalf("turn %d: TakeTurn() failed: %v", i, err)
		}
		if result.Outcome != core.Miss {
			t.Errorf("turn %d: outcome = %v on an empty board", i, result.Outcome)
		}
		if seen[result.Target] {
			t.Errorf("turn %d: %v accepted twice", i, result.Target)
		}
		seen[result.Target] = true
		for _, r := range result.Rejected {
			if !errors.Is(r.Err, core.ErrAlreadyTargeted) {
				t.Errorf("turn %d: unexpected rejection %v", i, r.Err)
			}
		}
	}

	if len(seen) != 36 {
		t.Errorf("covered %d cells, expected 36", len(seen))
	}
	if len(b.Untargeted()) != 0 {
		t.Errorf("%d cells left untargeted", len(b.Untargeted()))
	}

	_, err := core.TakeTurn(cpu, b, 100)
	if !errors.Is(err, core.ErrTargetingExhausted) {
		t.Errorf("TakeTurn() on a full board error = %v, expected ErrTargetingExhausted", err)
	}
}

func TestInteractiveAwaitsInput(t *testing.T) {
	b := core.NewBoard(6)
	queue := core.NewTargetQueue()
	human := core.NewInteractive(core.SideHuman, queue)

	result, err := core.TakeTurn(human, b, 10)
	if !core.Awaiting(err) {
		t.Fatalf("TakeTurn() error = %v, expected ErrAwaitingInput", err)
	}
	if len(result.Rejected) != 0 {
		t.Errorf("Rejected = %v, expected none", result.Rejected)
	}
}

func TestInteractiveRetriesAfterRejection(t *testing.T) {
	b := core.NewBoard(6)
	queue := core.NewTargetQueue()
	human := core.NewInteractive(core.SideHuman, queue)

	queue.Push(7, 1)
	queue.Push(1, 1)

	result, err := core.TakeTurn(human, b, 10)
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if result.Target != core.C(0, 0) {
		t.Errorf("Target = %v, expected (0,0)", result.Target)
	}
	if len(result.Rejected) != 1 || !errors.Is(result.Rejected[0].Err, core.ErrOutOfBounds) {
		t.Errorf("Rejected = %v, expected one ErrOutOfBounds", result.Rejected)
	}
	if queue.Len() != 0 {
		t.Errorf("queue has %d pending targets, expected 0", queue.Len())
	}

	// A repeated target is refused and the turn waits for more input.
	queue.Push(1, 1)
	result, err = core.TakeTurn(human, b, 10)
	if !core.Awaiting(err) {
		t.Fatalf("TakeTurn() error = %v, expected ErrAwaitingInput", err)
	}
	last, ok := result.LastRejection()
	if !ok || !errors.Is(last.Err, core.ErrAlreadyTargeted) {
		t.Errorf("LastRejection() = %v, %v; expected ErrAlreadyTargeted", last, ok)
	}
}

func TestTargetQueueOrder(t *testing.T) {
	q := core.NewTargetQueue()
	q.Push(1, 2)
	q.Push(3, 4)

	row, col, ok := q.NextTarget()
	if !ok || row != 1 || col != 2 {
		t.Errorf("NextTarget() = %d, %d, %v; expected 1, 2, true", row, col, ok)
	}

	q.Clear()
	if _, _, ok := q.NextTarget(); ok {
		t.Error("NextTarget() after Clear() should report no input")
	}
}

func TestSideOpponent(t *testing.T) {
	if core.SideHuman.Opponent() != core.SideAutomated {
		t.Error("SideHuman.Opponent() should be SideAutomated")
	}
	if core.SideAutomated.Opponent() != core.SideHuman {
		t.Error("SideAutomated.Opponent() should be SideHuman")
	}
}
