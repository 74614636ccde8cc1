package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	if got, expected := baseSeaBattle(), DefaultSeaBattleConfig(); got != expected {
		t.Errorf("embedded defaults = %+v, expected %+v", got, expected)
	}
}

func TestLoadSeaBattleDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSeaBattle("")
	if err != nil {
		t.Fatalf("LoadSeaBattle() failed: %v", err)
	}
	if cfg != DefaultSeaBattleConfig() {
		t.Errorf("LoadSeaBattle() = %+v, expected defaults", cfg)
	}
	if cfg.CPUThink() != 600*time.Millisecond {
		t.Errorf("CPUThink() = %v, expected 600ms", cfg.CPUThink())
	}
	if cfg.ResultDelay() != 900*time.Millisecond {
		t.Errorf("ResultDelay() = %v, expected 900ms", cfg.ResultDelay())
	}
}

func TestLoadSeaBattleCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 8\nrules:\n  tie_break: shooter\n")

	cfg, err := LoadSeaBattle(path)
	if err != nil {
		t.Fatalf("LoadSeaBattle() failed: %v", err)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("Board.Size = %d, expected 8", cfg.Board.Size)
	}
	if cfg.Rules.TieBreak != "shooter" {
		t.Errorf("Rules.TieBreak = %q, expected shooter", cfg.Rules.TieBreak)
	}
	if cfg.Placement.MaxAttempts != 2000 {
		t.Errorf("unset keys should keep defaults, Placement.MaxAttempts = %d", cfg.Placement.MaxAttempts)
	}
}

func TestLoadSeaBattleCustomErrors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [not, a, map")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  size: 30\n")

	tests := []struct {
		name    string
		path    string
		errPart string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"broken yaml", broken, "failed to parse"},
		{"out of range", invalid, "board.size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSeaBattle(tc.path)
			if err == nil {
				t.Fatal("LoadSeaBattle() should fail")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadSeaBattleUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".seabattle", "configs", seaBattleFile), "board:\n  size: 10\n")

	cfg, err := LoadSeaBattle("")
	if err != nil {
		t.Fatalf("LoadSeaBattle() failed: %v", err)
	}
	if cfg.Board.Size != 10 {
		t.Errorf("Board.Size = %d, expected 10 from user config", cfg.Board.Size)
	}
}

func TestLoadSeaBattleSkipsInvalidUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".seabattle", "configs", seaBattleFile), "board:\n  size: 2\n")

	cfg, err := LoadSeaBattle("")
	if err != nil {
		t.Fatalf("LoadSeaBattle() failed: %v", err)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, expected the default after an invalid user file", cfg.Board.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SeaBattleConfig)
		valid  bool
	}{
		{"defaults", func(*SeaBattleConfig) {}, true},
		{"smallest board", func(c *SeaBattleConfig) { c.Board.Size = MinBoardSize }, true},
		{"largest board", func(c *SeaBattleConfig) { c.Board.Size = MaxBoardSize }, true},
		{"board too small", func(c *SeaBattleConfig) { c.Board.Size = 3 }, false},
		{"board too small for the fleet", func(c *SeaBattleConfig) { c.Board.Size = 4 }, false},
		{"board too large", func(c *SeaBattleConfig) { c.Board.Size = 13 }, false},
		{"zero attempts", func(c *SeaBattleConfig) { c.Placement.MaxAttempts = 0 }, false},
		{"zero restarts", func(c *SeaBattleConfig) { c.Placement.MaxRestarts = 0 }, false},
		{"zero retries", func(c *SeaBattleConfig) { c.Targeting.MaxRetries = 0 }, false},
		{"negative pacing", func(c *SeaBattleConfig) { c.Pacing.ResultMs = -1 }, false},
		{"no pacing", func(c *SeaBattleConfig) { c.Pacing = PacingConfig{} }, true},
		{"empty tie break", func(c *SeaBattleConfig) { c.Rules.TieBreak = "" }, true},
		{"unknown tie break", func(c *SeaBattleConfig) { c.Rules.TieBreak = "coin" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSeaBattleConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}
