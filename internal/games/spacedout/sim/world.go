// Package sim is the Spaced Out simulation: a turret at the origin shooting
// lasers at enemies that spawn on a ring and close in.
//
// The world advances in fixed ticks granted by a Gate. After the gate stops
// granting ticks, one sweep per frame removes dead entities and pays out
// score, money and spaceout charge for the kills. The package draws nothing
// and reads no devices; frontends push input through SetFiring,
// SetMousePosition and OnActivationKey, and read state back through the
// accessors.
package sim

import "github.com/vovakirdan/spacedout/internal/core"

// World owns all session state. It is not safe for concurrent use; the
// frontend drives it from a single loop.
type World struct {
	tuning Tuning
	rng    Rand

	player  Player
	lasers  []Laser
	enemies []Enemy
	res     Resources

	firing bool
	mouse  core.Vec2 // screen space, origin top-left

	shotTimeout  float64
	enemyTimeout float64
	tick         uint64
}

// FrameResult summarises one call to Update.
type FrameResult struct {
	Substeps int
	Killed   int
}

// NewWorld creates a fresh session. rng must not be nil.
func NewWorld(t Tuning, rng Rand) *World {
	w := &World{tuning: t, rng: rng}
	w.Reset()
	return w
}

// Reset starts a new session with the same tuning and random source.
func (w *World) Reset() {
	w.player = newPlayer(w.tuning.Player)
	w.lasers = w.lasers[:0]
	w.enemies = w.enemies[:0]
	w.res = newResources(w.tuning.Rewards)
	w.firing = false
	cx, cy := w.tuning.Arena.Center()
	w.mouse = core.V(cx, cy)
	// A held trigger fires floor(t / rate) shots in t seconds.
	w.shotTimeout = w.player.FireRate
	w.enemyTimeout = 0
	w.tick = 0
}

// SetFiring holds or releases the trigger.
func (w *World) SetFiring(on bool) {
	w.firing = on
}

// SetMousePosition records the pointer in screen coordinates.
func (w *World) SetMousePosition(x, y float64) {
	w.mouse = core.V(x, y)
}

// OnActivationKey spends a full charge on spaceout.
// It reports whether the effect started.
func (w *World) OnActivationKey() bool {
	return w.res.activate(w.tuning.Spaceout)
}

// Update runs as many fixed ticks as gate grants, then sweeps once.
func (w *World) Update(gate Gate) FrameResult {
	var fr FrameResult
	for gate.ShouldStep() {
		w.Step()
		fr.Substeps++
	}
	fr.Killed = w.Sweep()
	return fr
}

// Step runs a single fixed tick without sweeping.
func (w *World) Step() {
	dt := w.tuning.dt()
	w.tick++

	w.res.decay(dt)
	w.trySpawnLaser(dt)
	w.trySpawnEnemy(dt)

	for i := range w.lasers {
		w.lasers[i].Update(dt, w.tuning.Arena.OutOfBounds)
	}
	if !w.res.SpaceoutActive() {
		for i := range w.enemies {
			w.enemies[i].Update(dt, w.tuning.Arena.OutOfBounds)
		}
	}

	resolveCollisions(w.lasers, w.enemies, w.tuning.Laser)
}

// Sweep removes dead lasers and enemies and pays out for the enemies removed.
// Every removed enemy counts as a kill, including ones that left the arena.
func (w *World) Sweep() int {
	lasers := w.lasers[:0]
	for _, l := range w.lasers {
		if !l.Dead() {
			lasers = append(lasers, l)
		}
	}
	clear(w.lasers[len(lasers):])
	w.lasers = lasers

	before := len(w.enemies)
	worth := 0
	enemies := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Dead() {
			worth += e.Worth
			continue
		}
		enemies = append(enemies, e)
	}
	clear(w.enemies[len(enemies):])
	w.enemies = enemies

	killed := before - len(w.enemies)
	w.res.award(killed, worth, w.tuning.Rewards, w.tuning.Spaceout.MaxCharge)
	return killed
}

// SetEnemyPace changes the speed and spawn interval of enemies spawned from
// now on. Enemies already in flight keep their speed.
func (w *World) SetEnemyPace(speed, interval float64) {
	if speed > 0 {
		w.tuning.Enemy.Speed = speed
	}
	if interval > 0 {
		w.tuning.Enemy.SpawnInterval = interval
	}
}

// Tuning returns the tuning in effect.
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Player returns the player record.
func (w *World) Player() Player {
	return w.player
}

// Lasers returns the live lasers. The slice is owned by the world and only
// valid until the next Update.
func (w *World) Lasers() []Laser {
	return w.lasers
}

// Enemies returns the live enemies. The slice is owned by the world and only
// valid until the next Update.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Resources returns score, money, charge and the spaceout countdown.
func (w *World) Resources() Resources {
	return w.res
}

// Firing reports whether the trigger is held.
func (w *World) Firing() bool {
	return w.firing
}

// Tick returns the number of fixed ticks run since Reset.
func (w *World) Tick() uint64 {
	return w.tick
}
