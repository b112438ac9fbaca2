package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlags() {
	flagFPS = 60
	flagSeed = 0
	flagConfig = ""
	flagDifficulty = ""
	flagLogLevel = "info"
}

func TestVariantArg(t *testing.T) {
	id, err := variantArg(nil)
	if err != nil || id != defaultVariant {
		t.Errorf("variantArg(nil) = %q, %v", id, err)
	}
	id, err = variantArg([]string{"spacedout_rush"})
	if err != nil || id != "spacedout_rush" {
		t.Errorf("variantArg(rush) = %q, %v", id, err)
	}
	if _, err := variantArg([]string{"asteroids"}); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func()
		wantErr string
	}{
		{"difficulty", func() { flagDifficulty = "nightmare" }, "unknown difficulty"},
		{"log level", func() { flagLogLevel = "loud" }, "log-level"},
		{"fps", func() { flagFPS = 0 }, "fps"},
		{"missing config", func() { flagConfig = filepath.Join(t.TempDir(), "none.yaml") }, "failed to read config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags()
			defer resetFlags()
			tc.mutate()
			err := setup(nil, nil)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("setup() = %v, expected %q", err, tc.wantErr)
			}
		})
	}
}

func TestSetupAcceptsConfig(t *testing.T) {
	resetFlags()
	defer resetFlags()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = "hard"
	if err := setup(nil, nil); err != nil {
		t.Errorf("setup() = %v", err)
	}
}

func TestRuntimeConfigSeed(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagSeed = 99
	if cfg := runtimeConfig(80, 24); cfg.Seed != 99 || cfg.TickRate != 60 {
		t.Errorf("runtimeConfig = %+v", cfg)
	}
	flagSeed = 0
	if cfg := runtimeConfig(80, 24); cfg.Seed == 0 {
		t.Error("zero seed should be replaced by the clock")
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	runList(listCmd, nil)
	for _, id := range []string{"spacedout", "spacedout_spiral", "spacedout_rush"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("list output missing %q:\n%s", id, buf.String())
		}
	}
}
