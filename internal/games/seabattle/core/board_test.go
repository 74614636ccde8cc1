package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

func TestVesselCells(t *testing.T) {
	tests := []struct {
		name   string
		origin core.Coord
		length int
		o      core.Orientation
		want   []core.Coord
	}{
		{"single deck", core.C(2, 3), 1, core.Horizontal, []core.Coord{core.C(2, 3)}},
		{"horizontal steps columns", core.C(0, 0), 3, core.Horizontal,
			[]core.Coord{core.C(0, 0), core.C(0, 1), core.C(0, 2)}},
		{"vertical steps rows", core.C(1, 4), 3, core.Vertical,
			[]core.Coord{core.C(1, 4), core.C(2, 4), core.C(3, 4)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := core.NewVessel(tc.origin, tc.length, tc.o)
			cells := v.Cells()
			if len(cells) != tc.length {
				t.Fatalf("Cells() has %d elements, expected %d", len(cells), tc.length)
			}
			for i := range cells {
				if cells[i] != tc.want[i] {
					t.Errorf("Cells()[%d] = %v, expected %v", i, cells[i], tc.want[i])
				}
			}
			if v.HitPoints() != tc.length || !v.Alive() {
				t.Errorf("new vessel has %d hit points, alive=%v", v.HitPoints(), v.Alive())
			}
		})
	}
}

func TestVesselIsHitBy(t *testing.T) {
	v := core.NewVessel(core.C(1, 1), 2, core.Vertical)

	if !v.IsHitBy(core.C(1, 1)) || !v.IsHitBy(core.C(2, 1)) {
		t.Error("IsHitBy should be true for both vessel cells")
	}
	if v.IsHitBy(core.C(1, 2)) {
		t.Error("IsHitBy(1,2) should be false for a vertical vessel")
	}
	if v.IsHitBy(core.C(3, 1)) {
		t.Error("IsHitBy(3,1) should be false past the stern")
	}
}

func TestSingleDeckSunkThenAlreadyTargeted(t *testing.T) {
	b := core.NewBoard(6)
	if err := b.PlaceVessel(core.NewVessel(core.C(0, 0), 1, core.Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	outcome, err := b.ResolveShot(core.C(0, 0))
	if err != nil {
		t.Fatalf("ResolveShot() failed: %v", err)
	}
	if outcome != core.Sunk {
		t.Errorf("ResolveShot() = %v, expected Sunk", outcome)
	}
	if b.SunkCount() != 1 {
		t.Errorf("SunkCount() = %d, expected 1", b.SunkCount())
	}

	_, err = b.ResolveShot(core.C(0, 0))
	if !errors.Is(err, core.ErrAlreadyTargeted) {
		t.Errorf("second ResolveShot() error = %v, expected ErrAlreadyTargeted", err)
	}
	if b.SunkCount() != 1 {
		t.Errorf("SunkCount() = %d after repeat shot, expected 1", b.SunkCount())
	}
}

func TestPlacementHaloRejectsDiagonalNeighbor(t *testing.T) {
	b := core.NewBoard(6)
	if err := b.PlaceVessel(core.NewVessel(core.C(0, 0), 2, core.Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	tests := []struct {
		name    string
		origin  core.Coord
		wantErr bool
	}{
		{"diagonal neighbor", core.C(1, 1), true},
		{"touching the stern", core.C(0, 2), true},
		{"below the bow", core.C(1, 0), true},
		{"overlap", core.C(0, 1), true},
		{"one cell of clearance", core.C(0, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := b.PlaceVessel(core.NewVessel(tc.origin, 1, core.Horizontal))
			if tc.wantErr && !errors.Is(err, core.ErrWrongPlacement) {
				t.Errorf("PlaceVessel(%v) error = %v, expected ErrWrongPlacement", tc.origin, err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("PlaceVessel(%v) failed: %v", tc.origin, err)
			}
		})
	}
}

func TestPlaceVesselIsAtomic(t *testing.T) {
	b := core.NewBoard(6)

	// Two cells in bounds, the third hangs off the right edge.
	err := b.PlaceVessel(core.NewVessel(core.C(0, 4), 3, core.Horizontal))
	if !errors.Is(err, core.ErrWrongPlacement) {
		t.Fatalf("PlaceVessel() error = %v, expected ErrWrongPlacement", err)
	}
	if len(b.Vessels()) != 0 {
		t.Errorf("rejected vessel was added to the fleet")
	}
	if b.Cell(core.C(0, 4)) != core.CellEmpty || b.Cell(core.C(0, 5)) != core.CellEmpty {
		t.Error("rejected vessel left ship cells behind")
	}

	// Nothing from the rejected vessel should block this placement.
	if err := b.PlaceVessel(core.NewVessel(core.C(0, 5), 1, core.Horizontal)); err != nil {
		t.Errorf("PlaceVessel() after rejection failed: %v", err)
	}
}

func TestResolveShotOutOfBounds(t *testing.T) {
	b := core.NewBoard(6)

	targets := []core.Coord{core.C(6, 0), core.C(0, 6), core.C(-1, 0), core.C(0, -1)}
	for _, target := range targets {
		_, err := b.ResolveShot(target)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("ResolveShot(%v) error = %v, expected ErrOutOfBounds", target, err)
		}
		if !core.IsRecoverable(err) {
			t.Errorf("ResolveShot(%v) error should be recoverable", target)
		}
	}
	if len(b.Untargeted()) != 36 {
		t.Errorf("out-of-bounds shots changed targeting memory: %d untargeted", len(b.Untargeted()))
	}
}

func TestHitThenSunkRevealsHalo(t *testing.T) {
	b := core.NewBoard(6)
	v := core.NewVessel(core.C(2, 2), 2, core.Vertical)
	if err := b.PlaceVessel(v); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	outcome, err := b.ResolveShot(core.C(2, 2))
	if err != nil || outcome != core.Hit {
		t.Fatalf("first shot = %v, %v; expected Hit", outcome, err)
	}
	if !outcome.Repeat() {
		t.Error("Hit should earn a repeat shot")
	}
	if v.HitPoints() != 1 {
		t.Errorf("HitPoints() = %d, expected 1", v.HitPoints())
	}
	if b.Cell(core.C(1, 1)) == core.CellNearMiss {
		t.Error("halo revealed before the vessel sank")
	}

	outcome, err = b.ResolveShot(core.C(3, 2))
	if err != nil || outcome != core.Sunk {
		t.Fatalf("second shot = %v, %v; expected Sunk", outcome, err)
	}
	if outcome.Repeat() {
		t.Error("Sunk should not earn a repeat shot")
	}
	if v.Alive() {
		t.Error("vessel should be sunk")
	}

	ring := []core.Coord{
		core.C(1, 1), core.C(1, 2), core.C(1, 3),
		core.C(2, 1), core.C(2, 3),
		core.C(3, 1), core.C(3, 3),
		core.C(4, 1), core.C(4, 2), core.C(4, 3),
	}
	for _, c := range ring {
		if b.Cell(c) != core.CellNearMiss {
			t.Errorf("Cell(%v) = %v, expected NearMiss", c, b.Cell(c))
		}
		if !b.Targeted(c) {
			t.Errorf("revealed cell %v should count as targeted", c)
		}
	}
	for _, c := range v.Cells() {
		if b.Cell(c) != core.CellHit {
			t.Errorf("Cell(%v) = %v, expected Hit", c, b.Cell(c))
		}
	}

	if _, err := b.ResolveShot(core.C(1, 1)); !errors.Is(err, core.ErrAlreadyTargeted) {
		t.Errorf("shot into revealed ring error = %v, expected ErrAlreadyTargeted", err)
	}
}

func TestRepeatShotDoesNotMutate(t *testing.T) {
	b := core.NewBoard(6)
	if err := b.PlaceVessel(core.NewVessel(core.C(4, 0), 3, core.Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	if outcome, err := b.ResolveShot(core.C(4, 1)); err != nil || outcome != core.Hit {
		t.Fatalf("first shot = %v, %v; expected Hit", outcome, err)
	}
	before := len(b.Untargeted())
	hp := b.Vessels()[0].HitPoints()

	if _, err := b.ResolveShot(core.C(4, 1)); !errors.Is(err, core.ErrAlreadyTargeted) {
		t.Fatalf("repeat shot error = %v, expected ErrAlreadyTargeted", err)
	}
	if got := b.Vessels()[0].HitPoints(); got != hp {
		t.Errorf("repeat shot changed hit points: %d -> %d", hp, got)
	}
	if got := len(b.Untargeted()); got != before {
		t.Errorf("repeat shot changed targeting memory: %d -> %d", before, got)
	}
}

func TestSunkRequiresEveryCell(t *testing.T) {
	b := core.NewBoard(6)
	v := core.NewVessel(core.C(0, 5), 3, core.Vertical)
	if err := b.PlaceVessel(v); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}

	cells := v.Cells()
	for i, c := range cells {
		outcome, err := b.ResolveShot(c)
		if err != nil {
			t.Fatalf("ResolveShot(%v) failed: %v", c, err)
		}
		last := i == len(cells)-1
		if last && outcome != core.Sunk {
			t.Errorf("last cell outcome = %v, expected Sunk", outcome)
		}
		if !last && outcome != core.Hit {
			t.Errorf("cell %d outcome = %v, expected Hit", i, outcome)
		}
		if !last && b.SunkCount() != 0 {
			t.Errorf("SunkCount() = %d before every cell was hit", b.SunkCount())
		}
	}
	if b.SunkCount() != 1 {
		t.Errorf("SunkCount() = %d, expected 1", b.SunkCount())
	}
	if !b.AllSunk() {
		t.Error("AllSunk() should be true with the only vessel sunk")
	}
}

func TestMissMarksWater(t *testing.T) {
	b := core.NewBoard(6)
	outcome, err := b.ResolveShot(core.C(3, 3))
	if err != nil || outcome != core.Miss {
		t.Fatalf("ResolveShot() = %v, %v; expected Miss", outcome, err)
	}
	if b.Cell(core.C(3, 3)) != core.CellMiss {
		t.Errorf("Cell() = %v, expected Miss", b.Cell(core.C(3, 3)))
	}
}

func TestResetTargetingKeepsPlacementMemory(t *testing.T) {
	b := core.NewBoard(6)
	if err := b.PlaceVessel(core.NewVessel(core.C(2, 2), 1, core.Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	if _, err := b.ResolveShot(core.C(5, 5)); err != nil {
		t.Fatalf("ResolveShot() failed: %v", err)
	}

	b.ResetTargeting()

	if b.Targeted(core.C(5, 5)) {
		t.Error("ResetTargeting() should clear targeting memory")
	}
	if err := b.PlaceVessel(core.NewVessel(core.C(3, 3), 1, core.Horizontal)); !errors.Is(err, core.ErrWrongPlacement) {
		t.Errorf("halo should survive ResetTargeting(), got %v", err)
	}
	if len(b.Vessels()) != 1 {
		t.Errorf("ResetTargeting() changed the fleet: %d vessels", len(b.Vessels()))
	}
}

func TestConcealment(t *testing.T) {
	b := core.NewBoard(6)
	if err := b.PlaceVessel(core.NewVessel(core.C(0, 0), 2, core.Horizontal)); err != nil {
		t.Fatalf("PlaceVessel() failed: %v", err)
	}
	if _, err := b.ResolveShot(core.C(0, 0)); err != nil {
		t.Fatalf("ResolveShot() failed: %v", err)
	}

	if b.VisibleCell(core.C(0, 1)) != core.CellShip {
		t.Error("uncovered board should show ship cells")
	}

	b.SetConcealed(true)

	tests := []struct {
		coord    core.Coord
		expected core.CellState
	}{
		{core.C(0, 0), core.CellHit},
		{core.C(0, 1), core.CellEmpty},
		{core.C(3, 3), core.CellEmpty},
	}
	for _, tc := range tests {
		if got := b.VisibleCell(tc.coord); got != tc.expected {
			t.Errorf("VisibleCell(%v) = %v, expected %v", tc.coord, got, tc.expected)
		}
	}
	if b.Cell(core.C(0, 1)) != core.CellShip {
		t.Error("Cell() should ignore concealment")
	}
}

func TestCoordConversions(t *testing.T) {
	c := core.FromOneIndexed(1, 6)
	if c != core.C(0, 5) {
		t.Errorf("FromOneIndexed(1, 6) = %v, expected (0,5)", c)
	}
	if c.Label() != "1 6" {
		t.Errorf("Label() = %q, expected %q", c.Label(), "1 6")
	}
	if c.String() != "(0,5)" {
		t.Errorf("String() = %q, expected %q", c.String(), "(0,5)")
	}
}
