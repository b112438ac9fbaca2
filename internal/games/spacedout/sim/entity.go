package sim

import "github.com/vovakirdan/spacedout/internal/core"

// Player is the turret at the origin. Only the fields the simulation reads
// are modelled; the upgrade economy is left to whoever spends Money.
type Player struct {
	Life       int     `msgpack:"life"`
	NumLasers  int     `msgpack:"num_lasers"`
	LaserSpeed float64 `msgpack:"laser_speed"`
	FireRate   float64 `msgpack:"fire_rate"`
}

func newPlayer(t PlayerTuning) Player {
	return Player{
		Life:       t.Life,
		NumLasers:  t.NumLasers,
		LaserSpeed: t.LaserSpeed,
		FireRate:   t.FireRate,
	}
}

// Laser is a projectile. Life drops on every hit; out of range it is
// forced to -1.
type Laser struct {
	Pos  core.Vec2 `msgpack:"pos"`
	Vel  core.Vec2 `msgpack:"vel"`
	Life int       `msgpack:"life"`
}

// Dead reports whether the laser will be swept at the end of the frame.
func (l Laser) Dead() bool {
	return l.Life <= 0
}

// Update integrates position and applies the range limit.
func (l *Laser) Update(dt, outOfBounds float64) {
	l.Pos = l.Pos.Add(l.Vel.Scale(dt))
	if l.Pos.LenSq() > outOfBounds*outOfBounds {
		l.Life = -1
	}
}

// Enemy moves along Dir at Speed, optionally steered by its Modifier.
type Enemy struct {
	Pos      core.Vec2 `msgpack:"pos"`
	Dir      core.Vec2 `msgpack:"dir"`
	Speed    float64   `msgpack:"speed"`
	Modifier Modifier  `msgpack:"mod"`
	Life     int       `msgpack:"life"`
	MaxLife  int       `msgpack:"max_life"`
	Worth    int       `msgpack:"worth"`
}

// Dead reports whether the enemy will be swept at the end of the frame.
func (e Enemy) Dead() bool {
	return e.Life <= 0
}

// Velocity is Dir scaled by Speed.
func (e Enemy) Velocity() core.Vec2 {
	return e.Dir.Scale(e.Speed)
}

// HealthRatio is Life/MaxLife clamped to [0, 1], for health bars.
func (e Enemy) HealthRatio() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(e.Life)/float64(e.MaxLife), 0, 1)
}

// Update applies the modifier, integrates position and applies the range limit.
func (e *Enemy) Update(dt, outOfBounds float64) {
	e.Modifier.apply(e)
	e.Pos = e.Pos.Add(e.Velocity().Scale(dt))
	if e.Pos.LenSq() > outOfBounds*outOfBounds {
		e.Life = -1
	}
}
