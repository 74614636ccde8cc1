package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// Side identifies one of the two participants of a match.
type Side uint8

const (
	SideHuman Side = iota
	SideAutomated
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideHuman:
		return "Human"
	case SideAutomated:
		return "Automated"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideAutomated
	}
	return SideHuman
}

// Combatant chooses where its side fires next.
type Combatant interface {
	// Side returns which side this combatant plays.
	Side() Side

	// SelectTarget returns the next coordinate to fire at.
	// Interactive combatants return ErrAwaitingInput when no target is pending.
	SelectTarget() (Coord, error)
}

// Automated fires at uniformly random cells. It keeps no memory of earlier
// shots and relies on the board rejecting repeats.
type Automated struct {
	side Side
	size int
	rng  *rand.Rand
}

// NewAutomated creates a random-firing combatant for a board of the given size.
func NewAutomated(side Side, size int, rng *rand.Rand) *Automated {
	return &Automated{side: side, size: size, rng: rng}
}

// Side returns the side this combatant plays.
func (a *Automated) Side() Side {
	return a.side
}

// SelectTarget draws a random in-bounds coordinate.
func (a *Automated) SelectTarget() (Coord, error) {
	return C(a.rng.Intn(a.size), a.rng.Intn(a.size)), nil
}

// InputSource supplies player-entered targets as 1-indexed row/column pairs.
// Malformed text never reaches it; range errors are the board's job.
type InputSource interface {
	NextTarget() (row, col int, ok bool)
}

// Interactive fires wherever its InputSource says.
type Interactive struct {
	side  Side
	input InputSource
}

// NewInteractive creates a combatant driven by external input.
func NewInteractive(side Side, input InputSource) *Interactive {
	return &Interactive{side: side, input: input}
}

// Side returns the side this combatant plays.
func (p *Interactive) Side() Side {
	return p.side
}

// SelectTarget converts the next pending pair into a Coord.
func (p *Interactive) SelectTarget() (Coord, error) {
	row, col, ok := p.input.NextTarget()
	if !ok {
		return Coord{}, ErrAwaitingInput
	}
	return FromOneIndexed(row, col), nil
}

// TargetQueue is a FIFO InputSource fed by a UI.
type TargetQueue struct {
	pending [][2]int
}

// NewTargetQueue creates an empty queue.
func NewTargetQueue() *TargetQueue {
	return &TargetQueue{}
}

// Push enqueues a 1-indexed row/column pair.
func (q *TargetQueue) Push(row, col int) {
	q.pending = append(q.pending, [2]int{row, col})
}

// NextTarget pops the oldest pending pair.
func (q *TargetQueue) NextTarget() (row, col int, ok bool) {
	if len(q.pending) == 0 {
		return 0, 0, false
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	return next[0], next[1], true
}

// Len returns the number of pending targets.
func (q *TargetQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending targets.
func (q *TargetQueue) Clear() {
	q.pending = nil
}

// Rejection records a shot the board refused.
type Rejection struct {
	Target Coord
	Err    error
}

// TurnResult describes one resolved turn.
type TurnResult struct {
	Side     Side
	Target   Coord
	Outcome  Outcome
	Repeat   bool        // Side fires again
	Rejected []Rejection // Refused targets tried before the accepted one
}

// TakeTurn asks c for targets until opponent accepts one.
// Recoverable board errors are recorded in the result and the same combatant
// selects again, up to maxRetries times. If c runs out of input the partial
// result is returned with ErrAwaitingInput.
func TakeTurn(c Combatant, opponent *Board, maxRetries int) (TurnResult, error) {
	result := TurnResult{Side: c.Side()}

	for len(result.Rejected) <= maxRetries {
		target, err := c.SelectTarget()
		if err != nil {
			return result, err
		}

		outcome, err := opponent.ResolveShot(target)
		if err != nil {
			if !IsRecoverable(err) {
				return result, err
			}
			result.Rejected = append(result.Rejected, Rejection{Target: target, Err: err})
			continue
		}

		result.Target = target
		result.Outcome = outcome
		result.Repeat = outcome.Repeat()
		return result, nil
	}

	return result, fmt.Errorf("%w: %s gave up after %d rejected shots",
		ErrTargetingExhausted, c.Side(), len(result.Rejected))
}

// LastRejection returns the most recent refusal, if any.
func (r TurnResult) LastRejection() (Rejection, bool) {
	if len(r.Rejected) == 0 {
		return Rejection{}, false
	}
	return r.Rejected[len(r.Rejected)-1], true
}

// Awaiting reports whether err means the turn is waiting for player input.
func Awaiting(err error) bool {
	return errors.Is(err, ErrAwaitingInput)
}
