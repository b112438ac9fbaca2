package sim

import "math/rand"

// Rand is the only randomness the simulation consumes.
// Float64 returns a uniform value in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. Equal seeds give equal spawn sequences.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
