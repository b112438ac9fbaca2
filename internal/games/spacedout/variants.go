package spacedout

import (
	"github.com/vovakirdan/spacedout/internal/config"
	"github.com/vovakirdan/spacedout/internal/games/spacedout/sim"
	"github.com/vovakirdan/spacedout/internal/registry"
)

// Variant is one registered flavour of the game. Variants differ only in how
// enemies steer.
type Variant struct {
	ID       string
	Title    string
	Modifier sim.ModifierKind
}

// Variants lists every registered flavour.
var Variants = []Variant{
	{ID: "spacedout", Title: "Spaced Out", Modifier: sim.ModNone},
	{ID: "spacedout_spiral", Title: "Spaced Out (Spiral)", Modifier: sim.ModSpiral},
	{ID: "spacedout_rush", Title: "Spaced Out (Rush)", Modifier: sim.ModAccelerating},
}

// enemyModifier builds the steering rule for kind from the enemy config.
func enemyModifier(kind sim.ModifierKind, cfg config.EnemyConfig) sim.Modifier {
	switch kind {
	case sim.ModSpiral:
		return sim.Spiral(cfg.SpiralFactor)
	case sim.ModAccelerating:
		return sim.Accelerating(cfg.Acceleration)
	default:
		return sim.Straight()
	}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
