package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const seaBattleFile = "seabattle.yaml"

// LoadSeaBattle loads Sea Battle configuration.
// Search order: customPath -> ~/.seabattle/configs/seabattle.yaml ->
// ./configs/seabattle.yaml -> embedded default -> hardcoded default.
// SEABATTLE_* environment variables are applied on top of the chosen file.
//
// Files are parsed over the defaults, so a partial file only overrides the
// keys it sets. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped silently when unusable.
func LoadSeaBattle(customPath string) (SeaBattleConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile picks the first usable config file in search order.
func loadFile(customPath string) (SeaBattleConfig, error) {
	if customPath != "" {
		cfg := baseSeaBattle()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(seaBattleFile),
		filepath.Join("configs", seaBattleFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	return baseSeaBattle(), nil
}

// baseSeaBattle returns the embedded defaults, or the hardcoded ones if the
// embedded YAML is unusable.
func baseSeaBattle() SeaBattleConfig {
	var cfg SeaBattleConfig
	if err := yaml.Unmarshal(defaultSeaBattleYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSeaBattleConfig()
	}
	return cfg
}

// tryLoad reads one optional config file.
func tryLoad(path string) (SeaBattleConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeaBattleConfig{}, false
	}
	cfg := baseSeaBattle()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SeaBattleConfig{}, false
	}
	if cfg.Validate() != nil {
		return SeaBattleConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seabattle", "configs", filename)
}
