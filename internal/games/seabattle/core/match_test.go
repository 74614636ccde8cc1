package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

func TestAdvanceTurnBeforeStart(t *testing.T) {
	m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(1)), nil)

	if m.Phase() != core.PhaseSetup {
		t.Errorf("Phase() = %v, expected Setup", m.Phase())
	}
	if _, err := m.AdvanceTurn(); !errors.Is(err, core.ErrMatchNotStarted) {
		t.Errorf("AdvanceTurn() error = %v, expected ErrMatchNotStarted", err)
	}
}

func TestStartTwice(t *testing.T) {
	m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(1)), nil)
	if err := m.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := m.Start(); err == nil {
		t.Error("second Start() should fail")
	}
}

func TestStartConcealsAutomatedBoard(t *testing.T) {
	m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(5)), core.NewTargetQueue())
	if err := m.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if m.Phase() != core.PhaseInProgress {
		t.Errorf("Phase() = %v, expected InProgress", m.Phase())
	}
	if m.Board(core.SideHuman).Concealed() {
		t.Error("human board should not be concealed")
	}
	if !m.Board(core.SideAutomated).Concealed() {
		t.Error("automated board should be concealed")
	}
	if _, ok := m.Combatant(core.SideHuman).(*core.Interactive); !ok {
		t.Errorf("human combatant is %T, expected *core.Interactive", m.Combatant(core.SideHuman))
	}
	if _, ok := m.Combatant(core.SideAutomated).(*core.Automated); !ok {
		t.Errorf("automated combatant is %T, expected *core.Automated", m.Combatant(core.SideAutomated))
	}
	if m.CurrentSide() != core.SideHuman {
		t.Errorf("CurrentSide() = %v, expected Human", m.CurrentSide())
	}
}

func playOut(t *testing.T, m *core.Match) []core.TurnResult {
	t.Helper()

	var results []core.TurnResult
	for i := 0; !m.Finished(); i++ {
		if i > 100000 {
			t.Fatal("match did not finish")
		}
		result, err := m.AdvanceTurn()
		if err != nil {
			t.Fatalf("AdvanceTurn() failed: %v", err)
		}
		results = append(results, result)
	}
	return results
}

func TestAutoplayTerminates(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(seed)), nil)
		if err := m.Start(); err != nil {
			t.Fatalf("seed %d: Start() failed: %v", seed, err)
		}

		for i := 0; !m.Finished(); i++ {
			if i > 100000 {
				t.Fatalf("seed %d: match did not finish", seed)
			}
			result, err := m.AdvanceTurn()
			if err != nil {
				t.Fatalf("seed %d: AdvanceTurn() failed: %v", seed, err)
			}
			if result.Repeat != (result.Outcome == core.Hit) {
				t.Errorf("seed %d: Repeat = %v for %v", seed, result.Repeat, result.Outcome)
			}
			if result.Repeat && m.CurrentSide() != result.Side {
				t.Errorf("seed %d: hit did not keep the turn", seed)
			}
			if !result.Repeat && m.CurrentSide() == result.Side {
				t.Errorf("seed %d: %v did not pass the turn", seed, result.Outcome)
			}
		}

		winner := m.Winner()
		if got := m.Board(winner.Opponent()).SunkCount(); got != core.FleetSize() {
			t.Errorf("seed %d: loser has %d sunk vessels, expected %d", seed, got, core.FleetSize())
		}
		if got := m.Board(winner).SunkCount(); got >= core.FleetSize() {
			t.Errorf("seed %d: winner lost its whole fleet", seed)
		}
		if got := len(m.History()); got != m.Shots(core.SideHuman)+m.Shots(core.SideAutomated) {
			t.Errorf("seed %d: history has %d shots, counters say %d", seed, got,
				m.Shots(core.SideHuman)+m.Shots(core.SideAutomated))
		}
		if _, err := m.AdvanceTurn(); !errors.Is(err, core.ErrMatchFinished) {
			t.Errorf("seed %d: AdvanceTurn() after finish error = %v, expected ErrMatchFinished", seed, err)
		}
	}
}

func TestMatchDeterministic(t *testing.T) {
	run := func() (core.Snapshot, []core.Shot) {
		m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(99)), nil)
		if err := m.Start(); err != nil {
			t.Fatalf("Start() failed: %v", err)
		}
		playOut(t, m)
		return m.Snapshot(), m.History()
	}

	snapA, histA := run()
	snapB, histB := run()

	if snapA.Turn != snapB.Turn || snapA.Winner != snapB.Winner ||
		snapA.HumanShots != snapB.HumanShots || snapA.CPUShots != snapB.CPUShots {
		t.Errorf("snapshots differ: %+v vs %+v", snapA, snapB)
	}
	if !snapA.Human.Equal(snapB.Human) || !snapA.Automated.Equal(snapB.Automated) {
		t.Error("board snapshots differ between identical seeds")
	}
	if len(histA) != len(histB) {
		t.Fatalf("history lengths differ: %d vs %d", len(histA), len(histB))
	}
	for i := range histA {
		if histA[i] != histB[i] {
			t.Fatalf("history[%d] = %+v vs %+v", i, histA[i], histB[i])
		}
	}
}

func TestInteractiveTurnFlow(t *testing.T) {
	queue := core.NewTargetQueue()
	m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(21)), queue)
	if err := m.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if _, err := m.AdvanceTurn(); !core.Awaiting(err) {
		t.Fatalf("AdvanceTurn() error = %v, expected ErrAwaitingInput", err)
	}
	if m.Turn() != 0 || m.Shots(core.SideHuman) != 0 {
		t.Errorf("waiting for input changed the match: turn %d, shots %d", m.Turn(), m.Shots(core.SideHuman))
	}

	cpuBoard := m.Board(core.SideAutomated)
	bow := cpuBoard.Vessels()[0].Cells()[0]
	queue.Push(bow.Row+1, bow.Col+1)

	result, err := m.AdvanceTurn()
	if err != nil {
		t.Fatalf("AdvanceTurn() failed: %v", err)
	}
	if result.Outcome != core.Hit {
		t.Fatalf("shot at the three-deck bow = %v, expected Hit", result.Outcome)
	}
	if m.CurrentSide() != core.SideHuman || m.Turn() != 0 {
		t.Errorf("hit should keep the turn: side %v, turn %d", m.CurrentSide(), m.Turn())
	}

	var water core.Coord
	found := false
	for _, c := range cpuBoard.Untargeted() {
		if cpuBoard.Cell(c) == core.CellEmpty {
			water, found = c, true
			break
		}
	}
	if !found {
		t.Fatal("no open water on the automated board")
	}
	queue.Push(water.Row+1, water.Col+1)

	result, err = m.AdvanceTurn()
	if err != nil {
		t.Fatalf("AdvanceTurn() failed: %v", err)
	}
	if result.Outcome != core.Miss {
		t.Fatalf("shot at open water = %v, expected Miss", result.Outcome)
	}
	if m.CurrentSide() != core.SideAutomated || m.Turn() != 1 {
		t.Errorf("miss should pass the turn: side %v, turn %d", m.CurrentSide(), m.Turn())
	}
	if m.Shots(core.SideHuman) != 2 {
		t.Errorf("Shots(Human) = %d, expected 2", m.Shots(core.SideHuman))
	}
}

func TestHumanVictoryScore(t *testing.T) {
	queue := core.NewTargetQueue()
	m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(8)), queue)
	if err := m.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	var targets []core.Coord
	for _, v := range m.Board(core.SideAutomated).Vessels() {
		targets = append(targets, v.Cells()...)
	}

	for i := 0; !m.Finished(); i++ {
		if i > 10000 {
			t.Fatal("match did not finish")
		}
		if m.CurrentSide() == core.SideHuman && queue.Len() == 0 {
			next := targets[0]
			targets = targets[1:]
			queue.Push(next.Row+1, next.Col+1)
		}
		if _, err := m.AdvanceTurn(); err != nil {
			t.Fatalf("AdvanceTurn() failed: %v", err)
		}
	}

	if m.Winner() != core.SideHuman {
		t.Fatalf("Winner() = %v, expected Human", m.Winner())
	}
	if m.Shots(core.SideHuman) != 11 {
		t.Errorf("Shots(Human) = %d, expected 11", m.Shots(core.SideHuman))
	}

	cpu := m.Board(core.SideAutomated)
	human := m.Board(core.SideHuman)
	expected := len(cpu.Untargeted())*10 + human.Afloat()*25
	if m.Score() != expected {
		t.Errorf("Score() = %d, expected %d", m.Score(), expected)
	}
	if m.Score() <= 0 {
		t.Errorf("Score() = %d, expected a positive score", m.Score())
	}
}

func TestScoreZeroUnlessHumanWins(t *testing.T) {
	m := core.NewMatch(core.DefaultRules(), rand.New(rand.NewSource(2)), nil)
	if m.Score() != 0 {
		t.Errorf("Score() before start = %d, expected 0", m.Score())
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	playOut(t, m)
	if m.Winner() == core.SideAutomated && m.Score() != 0 {
		t.Errorf("Score() = %d for an automated win, expected 0", m.Score())
	}
}
