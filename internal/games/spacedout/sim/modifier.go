package sim

import "github.com/vovakirdan/spacedout/internal/core"

// ModifierKind enumerates the closed set of enemy movement behaviours.
type ModifierKind uint8

const (
	ModNone ModifierKind = iota
	ModAccelerating
	ModSpiral
)

// String returns the config spelling of the kind.
func (k ModifierKind) String() string {
	switch k {
	case ModNone:
		return "none"
	case ModAccelerating:
		return "accelerating"
	case ModSpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// ParseModifierKind maps a config string to a kind.
func ParseModifierKind(s string) (ModifierKind, bool) {
	switch s {
	case "", "none", "straight":
		return ModNone, true
	case "accelerating", "rush":
		return ModAccelerating, true
	case "spiral":
		return ModSpiral, true
	}
	return ModNone, false
}

// Modifier alters an enemy's heading or speed every tick before it moves.
// Amount is the acceleration per tick for ModAccelerating and the tangential
// blend factor in [0, 1] for ModSpiral.
type Modifier struct {
	Kind   ModifierKind `msgpack:"kind"`
	Amount float64      `msgpack:"amount"`
}

// Straight is no modifier: constant heading and speed.
func Straight() Modifier {
	return Modifier{Kind: ModNone}
}

// Accelerating adds rate to speed every tick.
func Accelerating(rate float64) Modifier {
	return Modifier{Kind: ModAccelerating, Amount: rate}
}

// Spiral blends the heading toward the origin with its perpendicular.
// 0 flies straight in, 1 circles the origin.
func Spiral(factor float64) Modifier {
	return Modifier{Kind: ModSpiral, Amount: core.ClampF(factor, 0, 1)}
}

// apply updates heading and speed for one tick.
func (m Modifier) apply(e *Enemy) {
	switch m.Kind {
	case ModAccelerating:
		e.Speed += m.Amount
	case ModSpiral:
		toBase := e.Pos.Neg().Normalize()
		if toBase.IsZero() {
			return
		}
		k := m.Amount
		blended := toBase.Scale(1 - k).Add(toBase.Perp().Scale(k)).Normalize()
		if !blended.IsZero() {
			e.Dir = blended
		}
	}
}
