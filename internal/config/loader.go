package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "spacedout.yaml"

// LoadSpacedOut loads the game configuration.
// Search order: customPath -> ~/.spacedout/configs/spacedout.yaml -> ./configs/spacedout.yaml -> embedded default
//
// Files are decoded on top of DefaultSpacedOutConfig, so a partial file only
// overrides the keys it names.
func LoadSpacedOut(customPath string) (SpacedOutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpacedOutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SpacedOutConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSpacedOutYAML)
	if err != nil {
		return DefaultSpacedOutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (SpacedOutConfig, error) {
	cfg := DefaultSpacedOutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpacedOutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SpacedOutConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c SpacedOutConfig) Validate() error {
	var errs []error
	if c.Arena.OutOfBounds <= 0 {
		errs = append(errs, errors.New("arena.out_of_bounds must be positive"))
	}
	if c.Player.NumLasers < 1 {
		errs = append(errs, errors.New("player.num_lasers must be at least 1"))
	}
	if c.Player.FireRate <= 0 {
		errs = append(errs, errors.New("player.fire_rate must be positive"))
	}
	if c.Enemy.SpawnInterval <= 0 {
		errs = append(errs, errors.New("enemy.spawn_interval must be positive"))
	}
	if c.Enemy.Life <= 0 {
		errs = append(errs, errors.New("enemy.life must be positive"))
	}
	if c.Enemy.SpiralFactor < 0 || c.Enemy.SpiralFactor > 1 {
		errs = append(errs, errors.New("enemy.spiral_factor must be within [0, 1]"))
	}
	if c.Spaceout.MaxCharge <= 0 {
		errs = append(errs, errors.New("spaceout.max_charge must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacedout", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SpacedOutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Life = 10
		cfg.Spaceout.Duration = 7.0
	case DifficultyHard:
		cfg.Enemy.Life = 20
		cfg.Rewards.ChargePerKill = 5
	}
}
