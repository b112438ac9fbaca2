package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/spacedout/internal/core"
)

const tol = 1e-6

// seqRand replays a fixed list of values, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func fixedRand(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func assertVec(t *testing.T, label string, got, want core.Vec2) {
	t.Helper()
	if !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("%s = (%.6f, %.6f), expected (%.6f, %.6f)", label, got.X, got.Y, want.X, want.Y)
	}
}

// quietWorld returns a world whose spawner will not fire for a long time,
// so tests can place entities by hand.
func quietWorld() *World {
	w := NewWorld(DefaultTuning(), fixedRand(0))
	w.enemyTimeout = 1e9
	return w
}
