package core

import "errors"

// Placement and shot errors. All of them are recoverable: the caller retries
// with a new vessel or a new target.
var (
	ErrWrongPlacement  = errors.New("vessel cannot be placed there")
	ErrOutOfBounds     = errors.New("target is off the board")
	ErrAlreadyTargeted = errors.New("cell has already been targeted")
)

// Match flow errors.
var (
	ErrAwaitingInput      = errors.New("waiting for a target from the player")
	ErrTargetingExhausted = errors.New("no valid target found within the retry limit")
	ErrFleetUnplaceable   = errors.New("fleet could not be placed on the board")
	ErrMatchNotStarted    = errors.New("match has not been started")
	ErrMatchFinished      = errors.New("match is already finished")
)

// IsRecoverable reports whether err belongs to the shot/placement taxonomy
// that is handled by retrying rather than aborting.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrWrongPlacement) ||
		errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrAlreadyTargeted)
}
