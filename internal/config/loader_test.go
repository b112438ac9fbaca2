package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SpacedOutConfig
	if err := yaml.Unmarshal(defaultSpacedOutYAML, &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if fromYAML != DefaultSpacedOutConfig() {
		t.Errorf("embedded yaml = %+v\nexpected %+v", fromYAML, DefaultSpacedOutConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("enemy:\n  speed: 120\n  life: 30\nspaceout:\n  duration: 2.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSpacedOut(path)
	if err != nil {
		t.Fatalf("LoadSpacedOut: %v", err)
	}
	if cfg.Enemy.Speed != 120 || cfg.Enemy.Life != 30 {
		t.Errorf("enemy = %+v, expected speed 120 life 30", cfg.Enemy)
	}
	if cfg.Spaceout.Duration != 2.5 {
		t.Errorf("Spaceout.Duration = %v, expected 2.5", cfg.Spaceout.Duration)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Enemy.SpawnRadius != 670 {
		t.Errorf("Enemy.SpawnRadius = %v, expected default 670", cfg.Enemy.SpawnRadius)
	}
	if cfg.Rewards.StartingMoney != 100 {
		t.Errorf("Rewards.StartingMoney = %d, expected default 100", cfg.Rewards.StartingMoney)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSpacedOut(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enemy: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadSpacedOut(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad yaml error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  fire_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadSpacedOut(invalid)
	if err == nil || !strings.Contains(err.Error(), "fire_rate") {
		t.Errorf("invalid value error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SpacedOutConfig)
		wantErr string
	}{
		{"defaults", func(*SpacedOutConfig) {}, ""},
		{"no lasers", func(c *SpacedOutConfig) { c.Player.NumLasers = 0 }, "num_lasers"},
		{"spawn interval", func(c *SpacedOutConfig) { c.Enemy.SpawnInterval = -1 }, "spawn_interval"},
		{"spiral factor", func(c *SpacedOutConfig) { c.Enemy.SpiralFactor = 1.5 }, "spiral_factor"},
		{"max charge", func(c *SpacedOutConfig) { c.Spaceout.MaxCharge = 0 }, "max_charge"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSpacedOutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSpacedOutConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Enemy.Life != 20 {
		t.Errorf("Enemy.Life = %d, expected 20", cfg.Enemy.Life)
	}

	cfg = DefaultSpacedOutConfig()
	cfg.Difficulty.Enabled = true
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSpacedOutConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultSpacedOutConfig() {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("normal"); got != DifficultyNormal {
		t.Errorf("ParsePreset(normal) = %q", got)
	}
	if got := ParsePreset("nightmare"); got != "" {
		t.Errorf("ParsePreset(nightmare) = %q, expected empty", got)
	}
}
