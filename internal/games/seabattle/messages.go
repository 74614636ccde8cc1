package seabattle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
)

// Player-facing texts.
const (
	msgMiss        = "Miss!"
	msgDamaged     = "Ship damaged!"
	msgDestroyed   = "Ship destroyed!"
	msgOffBoard    = "You are shooting off the board!"
	msgRepeat      = "You already fired at that cell!"
	msgNotTwo      = "Enter exactly two numbers"
	msgNotNumbers  = "Those are not numbers"
	msgNotYourTurn = "Wait for your turn"
)

// Prompt input errors. Their text is shown to the player as is.
var (
	ErrNotTwoNumbers = errors.New(msgNotTwo)
	ErrNotNumbers    = errors.New(msgNotNumbers)
)

// OutcomeMessage returns the announcement for a resolved shot.
func OutcomeMessage(o core.Outcome) string {
	switch o {
	case core.Hit:
		return msgDamaged
	case core.Sunk:
		return msgDestroyed
	default:
		return msgMiss
	}
}

// RejectionMessage explains why the board refused a shot.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrOutOfBounds):
		return msgOffBoard
	case errors.Is(err, core.ErrAlreadyTargeted):
		return msgRepeat
	default:
		return err.Error()
	}
}

// Greeting returns the instructions shown when a match starts.
func Greeting(size int) string {
	return fmt.Sprintf("Your move. Aim with the arrows or type ':' and a row and column from 1 to %d.", size)
}

// ParseTarget reads a "row col" pair typed by the player.
// Commas work as separators too. Both values must be unsigned integers of at
// least 1; the upper bound is left to the board.
func ParseTarget(input string) (row, col int, err error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, ErrNotTwoNumbers
	}

	row, err = parsePositive(fields[0])
	if err != nil {
		return 0, 0, err
	}
	col, err = parsePositive(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// parsePositive accepts digits only, so signs are rejected before Atoi sees them.
func parsePositive(field string) (int, error) {
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, ErrNotNumbers
		}
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 {
		return 0, ErrNotNumbers
	}
	return n, nil
}
