package seabattle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

// SimResult is the outcome of one headless match.
type SimResult struct {
	Seed       int64
	Winner     core.Side
	Turns      int
	HumanShots int
	CPUShots   int
	Match      *core.Match
}

// SimTotals aggregates a batch of headless matches.
type SimTotals struct {
	Played     int
	HumanWins  int
	TotalTurns int
	TotalShots int
}

// Add folds one result into the totals.
func (t *SimTotals) Add(r SimResult) {
	t.Played++
	if r.Winner == core.SideHuman {
		t.HumanWins++
	}
	t.TotalTurns += r.Turns
	t.TotalShots += r.HumanShots + r.CPUShots
}

// AvgTurns returns the mean turn counter per match.
func (t SimTotals) AvgTurns() float64 {
	if t.Played == 0 {
		return 0
	}
	return float64(t.TotalTurns) / float64(t.Played)
}

// AvgShots returns the mean number of shots per match, both sides together.
func (t SimTotals) AvgShots() float64 {
	if t.Played == 0 {
		return 0
	}
	return float64(t.TotalShots) / float64(t.Played)
}

// Simulate plays one match between two automated combatants to the end.
// The same rules and seed always produce the same match.
func Simulate(rules core.Rules, seed int64) (SimResult, error) {
	m := core.NewMatch(rules, rand.New(rand.NewSource(seed)), nil)
	if err := m.Start(); err != nil {
		return SimResult{Seed: seed}, err
	}

	for !m.Finished() {
		if _, err := m.AdvanceTurn(); err != nil {
			return SimResult{Seed: seed, Match: m}, fmt.Errorf("turn %d: %w", m.Turn(), err)
		}
	}

	return SimResult{
		Seed:       seed,
		Winner:     m.Winner(),
		Turns:      m.Turn(),
		HumanShots: m.Shots(core.SideHuman),
		CPUShots:   m.Shots(core.SideAutomated),
		Match:      m,
	}, nil
}
