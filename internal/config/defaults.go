package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultSeaBattleYAML []byte

// DefaultSeaBattleConfig returns the hardcoded Sea Battle configuration.
// It matches defaults/seabattle.yaml and is used if the embedded file cannot be parsed.
func DefaultSeaBattleConfig() SeaBattleConfig {
	return SeaBattleConfig{
		Board: BoardConfig{
			Size: 6,
		},
		Placement: PlacementConfig{
			MaxAttempts: 2000,
			MaxRestarts: 500,
		},
		Targeting: TargetingConfig{
			MaxRetries: 10000,
		},
		Pacing: PacingConfig{
			CPUThinkMs: 600,
			ResultMs:   900,
		},
		Rules: RulesConfig{
			TieBreak: "human",
		},
	}
}
