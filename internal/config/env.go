package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the override variables, e.g. SEABATTLE_BOARD_SIZE or
// SEABATTLE_PACING_CPU_THINK_MS.
const EnvPrefix = "SEABATTLE_"

// ApplyEnv overrides cfg with every SEABATTLE_* variable that is set and
// validates the result. Unset variables leave their fields untouched.
func ApplyEnv(cfg *SeaBattleConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}
