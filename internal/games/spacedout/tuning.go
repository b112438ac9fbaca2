package spacedout

import (
	"math"

	"github.com/vovakirdan/spacedout/internal/config"
	"github.com/vovakirdan/spacedout/internal/games/spacedout/sim"
)

// tuningFrom converts the YAML config into simulation tuning.
func tuningFrom(cfg config.SpacedOutConfig, kind sim.ModifierKind, tickRate int) sim.Tuning {
	if tickRate <= 0 {
		tickRate = sim.DefaultTickRate
	}
	return sim.Tuning{
		TickRate: tickRate,
		Arena: sim.ArenaTuning{
			Width:       cfg.Arena.Width,
			Height:      cfg.Arena.Height,
			OutOfBounds: cfg.Arena.OutOfBounds,
		},
		Player: sim.PlayerTuning{
			Life:       cfg.Player.Life,
			NumLasers:  cfg.Player.NumLasers,
			LaserSpeed: cfg.Player.LaserSpeed,
			FireRate:   cfg.Player.FireRate,
			Spread:     cfg.Player.SpreadDeg * math.Pi / 180,
		},
		Laser: sim.LaserTuning{
			Life:      cfg.Laser.Life,
			HitRadius: cfg.Laser.HitRadius,
			Damage:    cfg.Laser.Damage,
		},
		Enemy: sim.EnemyTuning{
			SpawnRadius:   cfg.Enemy.SpawnRadius,
			SpawnInterval: cfg.Enemy.SpawnInterval,
			Speed:         cfg.Enemy.Speed,
			Life:          cfg.Enemy.Life,
			Worth:         cfg.Enemy.Worth,
			Modifier:      enemyModifier(kind, cfg.Enemy),
		},
		Rewards: sim.RewardTuning{
			ScorePerKill:  cfg.Rewards.ScorePerKill,
			ChargePerKill: cfg.Rewards.ChargePerKill,
			StartingMoney: cfg.Rewards.StartingMoney,
		},
		Spaceout: sim.SpaceoutTuning{
			Duration:  cfg.Spaceout.Duration,
			MaxCharge: cfg.Spaceout.MaxCharge,
		},
	}
}
