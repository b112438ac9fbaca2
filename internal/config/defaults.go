package config

import (
	_ "embed"
)

//go:embed defaults/spacedout.yaml
var defaultSpacedOutYAML []byte

// DefaultSpacedOutConfig returns the built-in tuning. It mirrors
// defaults/spacedout.yaml and is the fallback when that fails to parse.
func DefaultSpacedOutConfig() SpacedOutConfig {
	return SpacedOutConfig{
		Arena: ArenaConfig{
			Width:       1280,
			Height:      720,
			OutOfBounds: 800,
		},
		Player: PlayerConfig{
			Life:       100,
			NumLasers:  1,
			LaserSpeed: 300,
			FireRate:   0.3,
			SpreadDeg:  10,
		},
		Laser: LaserConfig{
			Life:      5,
			HitRadius: 16,
			Damage:    5,
		},
		Enemy: EnemyConfig{
			SpawnRadius:   670,
			SpawnInterval: 1.0,
			Speed:         60,
			Life:          15,
			Worth:         5,
			SpiralFactor:  0.8,
			Acceleration:  0.5,
		},
		Rewards: RewardsConfig{
			ScorePerKill:  5,
			ChargePerKill: 10,
			StartingMoney: 100,
		},
		Spaceout: SpaceoutConfig{
			Duration:  5.0,
			MaxCharge: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.5,
			},
		},
	}
}
