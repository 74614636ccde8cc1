package core

import (
	"fmt"
	"math/rand"
)

// Phase is the lifecycle stage of a match.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhaseFinished
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseInProgress:
		return "InProgress"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Shot is one accepted shot in the match history.
type Shot struct {
	Side    Side
	Target  Coord
	Outcome Outcome
}

// Match owns both boards and both combatants and alternates turns between them.
// Even turn counters belong to the human side, odd ones to the automated side.
type Match struct {
	rules Rules
	rng   *rand.Rand
	input InputSource // nil puts the human side on autopilot

	phase   Phase
	boards  [2]*Board // indexed by the side that owns the board
	players [2]Combatant
	turn    int
	winner  Side
	shots   [2]int
	history []Shot
}

// NewMatch creates a match in the Setup phase.
// When input is nil the human side is played by an Automated combatant,
// which is how watch and simulation modes run.
func NewMatch(rules Rules, rng *rand.Rand, input InputSource) *Match {
	return &Match{
		rules: rules.withDefaults(),
		rng:   rng,
		input: input,
		phase: PhaseSetup,
	}
}

// Start generates both fleets and moves the match to InProgress.
// The human board is generated first, then the automated side's board, which
// is concealed.
func (m *Match) Start() error {
	if m.phase != PhaseSetup {
		return fmt.Errorf("start: match is %s", m.phase)
	}

	human, err := GenerateBoard(m.rng, m.rules)
	if err != nil {
		return fmt.Errorf("start: human board: %w", err)
	}
	cpu, err := GenerateBoard(m.rng, m.rules)
	if err != nil {
		return fmt.Errorf("start: automated board: %w", err)
	}
	cpu.SetConcealed(true)

	m.boards[SideHuman] = human
	m.boards[SideAutomated] = cpu

	if m.input != nil {
		m.players[SideHuman] = NewInteractive(SideHuman, m.input)
	} else {
		m.players[SideHuman] = NewAutomated(SideHuman, m.rules.Size, m.rng)
	}
	m.players[SideAutomated] = NewAutomated(SideAutomated, m.rules.Size, m.rng)

	m.turn = 0
	m.phase = PhaseInProgress
	return nil
}

// Rules returns the rules the match was created with.
func (m *Match) Rules() Rules {
	return m.rules
}

// Phase returns the current lifecycle stage.
func (m *Match) Phase() Phase {
	return m.phase
}

// Finished reports whether the match has a winner.
func (m *Match) Finished() bool {
	return m.phase == PhaseFinished
}

// Winner returns the winning side. Only meaningful once Finished.
func (m *Match) Winner() Side {
	return m.winner
}

// Turn returns the raw turn counter.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentSide returns the side whose turn it is.
func (m *Match) CurrentSide() Side {
	if m.turn%2 == 0 {
		return SideHuman
	}
	return SideAutomated
}

// Board returns the board owned by side. Nil before Start.
func (m *Match) Board(side Side) *Board {
	return m.boards[side]
}

// Combatant returns the combatant playing side. Nil before Start.
func (m *Match) Combatant(side Side) Combatant {
	return m.players[side]
}

// Shots returns how many accepted shots side has fired.
func (m *Match) Shots(side Side) int {
	return m.shots[side]
}

// History returns every accepted shot in order.
func (m *Match) History() []Shot {
	out := make([]Shot, len(m.history))
	copy(out, m.history)
	return out
}

// AdvanceTurn plays one turn for the current side.
//
// On a hit the same side moves again; otherwise the turn passes. When the
// current combatant is interactive and has no pending target, the result
// holds any rejected shots and ErrAwaitingInput is returned with the turn
// unchanged.
func (m *Match) AdvanceTurn() (TurnResult, error) {
	switch m.phase {
	case PhaseSetup:
		return TurnResult{}, ErrMatchNotStarted
	case PhaseFinished:
		return TurnResult{}, ErrMatchFinished
	}

	side := m.CurrentSide()
	result, err := TakeTurn(m.players[side], m.boards[side.Opponent()], m.rules.MaxTargetRetries)
	if err != nil {
		return result, err
	}

	m.shots[side]++
	m.history = append(m.history, Shot{Side: side, Target: result.Target, Outcome: result.Outcome})

	if !result.Repeat {
		m.turn++
	}

	m.checkFinished(side)
	return result, nil
}

// checkFinished moves the match to Finished when a fleet is destroyed.
// The automated board is checked first, so the human side wins a simultaneous
// finish unless the rules ask for the shooter to win.
func (m *Match) checkFinished(shooter Side) {
	fleet := FleetSize()
	cpuDown := m.boards[SideAutomated].SunkCount() == fleet
	humanDown := m.boards[SideHuman].SunkCount() == fleet

	switch {
	case cpuDown && humanDown:
		m.winner = SideHuman
		if m.rules.TieBreak == TieBreakShooter {
			m.winner = shooter
		}
	case cpuDown:
		m.winner = SideHuman
	case humanDown:
		m.winner = SideAutomated
	default:
		return
	}
	m.phase = PhaseFinished
}

// Score rates a human victory: 10 points per cell of the automated board left
// untouched plus 25 per own vessel still afloat. Zero for anything else.
func (m *Match) Score() int {
	if m.phase != PhaseFinished || m.winner != SideHuman {
		return 0
	}
	untouched := len(m.boards[SideAutomated].Untargeted())
	return untouched*10 + m.boards[SideHuman].Afloat()*25
}
