// Package config provides YAML-based game configuration loading and
// validation for Sea Battle.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 5
	MaxBoardSize = 12
)

// SeaBattleConfig contains all configuration for Sea Battle.
type SeaBattleConfig struct {
	Board     BoardConfig     `yaml:"board" envPrefix:"BOARD_"`
	Placement PlacementConfig `yaml:"placement" envPrefix:"PLACEMENT_"`
	Targeting TargetingConfig `yaml:"targeting" envPrefix:"TARGETING_"`
	Pacing    PacingConfig    `yaml:"pacing" envPrefix:"PACING_"`
	Rules     RulesConfig     `yaml:"rules" envPrefix:"RULES_"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size" env:"SIZE"`
}

// PlacementConfig bounds random fleet generation.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts" env:"MAX_ATTEMPTS"` // Vessel draws per whole-board try
	MaxRestarts int `yaml:"max_restarts" env:"MAX_RESTARTS"` // Whole-board tries
}

// TargetingConfig bounds shot selection within a turn.
type TargetingConfig struct {
	MaxRetries int `yaml:"max_retries" env:"MAX_RETRIES"`
}

// PacingConfig controls on-screen delays, in milliseconds.
type PacingConfig struct {
	CPUThinkMs int `yaml:"cpu_think_ms" env:"CPU_THINK_MS"`
	ResultMs   int `yaml:"result_ms" env:"RESULT_MS"`
}

// RulesConfig holds match rules that are not limits.
type RulesConfig struct {
	TieBreak string `yaml:"tie_break" env:"TIE_BREAK"` // "human" or "shooter"
}

// CPUThink returns the pause before an automated shot.
func (c SeaBattleConfig) CPUThink() time.Duration {
	return time.Duration(c.Pacing.CPUThinkMs) * time.Millisecond
}

// ResultDelay returns how long a shot result is shown.
func (c SeaBattleConfig) ResultDelay() time.Duration {
	return time.Duration(c.Pacing.ResultMs) * time.Millisecond
}

// Validate reports every problem with the configuration.
func (c SeaBattleConfig) Validate() error {
	var errs []error

	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size %d outside [%d, %d]", c.Board.Size, MinBoardSize, MaxBoardSize))
	}
	if c.Placement.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("placement.max_attempts must be positive, got %d", c.Placement.MaxAttempts))
	}
	if c.Placement.MaxRestarts <= 0 {
		errs = append(errs, fmt.Errorf("placement.max_restarts must be positive, got %d", c.Placement.MaxRestarts))
	}
	if c.Targeting.MaxRetries <= 0 {
		errs = append(errs, fmt.Errorf("targeting.max_retries must be positive, got %d", c.Targeting.MaxRetries))
	}
	if c.Pacing.CPUThinkMs < 0 || c.Pacing.ResultMs < 0 {
		errs = append(errs, errors.New("pacing delays must not be negative"))
	}
	switch c.Rules.TieBreak {
	case "", "human", "shooter":
	default:
		errs = append(errs, fmt.Errorf("rules.tie_break %q is not one of human, shooter", c.Rules.TieBreak))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
