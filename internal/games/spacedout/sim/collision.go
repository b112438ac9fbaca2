package sim

import "github.com/vovakirdan/spacedout/internal/core"

// Collides reports whether point lies within radius of center.
// The boundary counts as a hit.
func Collides(point, center core.Vec2, radius float64) bool {
	return point.DistSq(center) <= radius*radius
}

// resolveCollisions damages every overlapping (laser, enemy) pair.
// A laser is tested against every enemy even after it has hit one, so a
// single laser can damage several enemies in the same tick.
func resolveCollisions(lasers []Laser, enemies []Enemy, t LaserTuning) int {
	hits := 0
	for i := range lasers {
		for j := range enemies {
			if !Collides(lasers[i].Pos, enemies[j].Pos, t.HitRadius) {
				continue
			}
			enemies[j].Life -= t.Damage
			lasers[i].Life -= t.Damage
			hits++
		}
	}
	return hits
}
