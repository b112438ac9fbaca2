package sim

import (
	"math"

	"github.com/vovakirdan/spacedout/internal/core"
)

// aim is the unit firing direction: from the screen centre toward the mouse.
// A mouse exactly on the centre fires along +X.
func (w *World) aim() core.Vec2 {
	cx, cy := w.tuning.Arena.Center()
	dir := w.mouse.Sub(core.V(cx, cy)).Normalize()
	if dir.IsZero() {
		return core.V(1, 0)
	}
	return dir
}

// trySpawnLaser counts the shot timer down and fires a volley when the
// trigger is held and the timer has run out.
func (w *World) trySpawnLaser(dt float64) int {
	w.shotTimeout -= dt
	if !w.firing || w.shotTimeout > 0 {
		return 0
	}

	n := max(w.player.NumLasers, 1)
	dir := w.aim()
	spread := w.tuning.Player.Spread
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * spread
		w.lasers = append(w.lasers, Laser{
			Pos:  core.Vec2{},
			Vel:  dir.Rotate(offset).Scale(w.player.LaserSpeed),
			Life: w.tuning.Laser.Life,
		})
	}
	w.shotTimeout = w.player.FireRate
	return n
}

// trySpawnEnemy counts the spawn timer down and places one enemy on the
// spawn ring at a random angle. Nothing spawns while spaceout is active.
func (w *World) trySpawnEnemy(dt float64) bool {
	w.enemyTimeout -= dt
	if w.enemyTimeout > 0 || w.res.SpaceoutActive() {
		return false
	}

	et := w.tuning.Enemy
	deg := w.rng.Float64() * 360
	pos := core.FromAngle(deg*math.Pi/180, et.SpawnRadius)

	w.enemies = append(w.enemies, Enemy{
		Pos:      pos,
		Dir:      pos.Neg().Normalize(),
		Speed:    et.Speed,
		Modifier: et.Modifier,
		Life:     et.Life,
		MaxLife:  et.Life,
		Worth:    et.Worth,
	})
	w.enemyTimeout = et.SpawnInterval
	return true
}
