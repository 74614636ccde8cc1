package core

// TieBreak decides the winner when both fleets are destroyed by the same turn.
type TieBreak uint8

const (
	// TieBreakHuman awards the match to the human side. This matches the
	// order the classic game checks the boards in.
	TieBreakHuman TieBreak = iota

	// TieBreakShooter awards the match to the side that fired the last shot.
	TieBreakShooter
)

// String returns the config name of the policy.
func (t TieBreak) String() string {
	switch t {
	case TieBreakHuman:
		return "human"
	case TieBreakShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// ParseTieBreak maps a config name to a policy.
func ParseTieBreak(name string) (TieBreak, bool) {
	switch name {
	case "", "human":
		return TieBreakHuman, true
	case "shooter":
		return TieBreakShooter, true
	default:
		return TieBreakHuman, false
	}
}

// Rules holds the tunable limits of a match. The fleet itself is fixed.
type Rules struct {
	Size                 int      // Board dimension
	MaxPlacementAttempts int      // Placement attempts per whole-board try
	MaxBoardRestarts     int      // Whole-board tries before giving up
	MaxTargetRetries     int      // Rejected shots tolerated within one turn
	TieBreak             TieBreak // Simultaneous-defeat policy
}

// DefaultRules returns the classic 6x6 rules.
func DefaultRules() Rules {
	return Rules{
		Size:                 DefaultBoardSize,
		MaxPlacementAttempts: 2000,
		MaxBoardRestarts:     500,
		MaxTargetRetries:     10000,
		TieBreak:             TieBreakHuman,
	}
}

// withDefaults fills zero fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.Size <= 0 {
		r.Size = d.Size
	}
	if r.MaxPlacementAttempts <= 0 {
		r.MaxPlacementAttempts = d.MaxPlacementAttempts
	}
	if r.MaxBoardRestarts <= 0 {
		r.MaxBoardRestarts = d.MaxBoardRestarts
	}
	if r.MaxTargetRetries <= 0 {
		r.MaxTargetRetries = d.MaxTargetRetries
	}
	return r
}
