package sim

import "math"

// Base tuning, measured in world units and seconds at 60 ticks per second.
const (
	DefaultTickRate = 60

	ArenaWidth       = 1280.0
	ArenaHeight      = 720.0
	OutOfBoundsRange = 800.0 // distance from origin past which entities die

	PlayerLife       = 100
	PlayerRadius     = 32.0
	PlayerNumLasers  = 1
	PlayerLaserSpeed = 300.0
	PlayerFireRate   = 0.3 // seconds between shots

	LaserLife      = 5
	LaserHitRadius = 16.0
	LaserDamage    = 5
	LaserLength    = 16.0 // drawn length only
	LaserSpread    = 10 * math.Pi / 180

	EnemySpawnRadius   = 670.0 // outside the visible half-diagonal
	EnemySpawnInterval = 1.0
	EnemySpeed         = 60.0
	EnemyLife          = 15
	EnemyWorth         = 5
	EnemyRadius        = 10.0 // drawn radius only
	SpiralFactor       = 0.8
	RushAcceleration   = 0.5 // speed gained per tick

	ScorePerKill  = 5
	ChargePerKill = 10
	MaxCharge     = 100
	SpaceoutTime  = 5.0
	StartingMoney = 100
)

// Tuning holds every constant the simulation reads.
type Tuning struct {
	TickRate int
	Arena    ArenaTuning
	Player   PlayerTuning
	Laser    LaserTuning
	Enemy    EnemyTuning
	Rewards  RewardTuning
	Spaceout SpaceoutTuning
}

// ArenaTuning describes the playfield. The origin is its centre.
type ArenaTuning struct {
	Width, Height float64
	OutOfBounds   float64
}

// Center is the screen-space position of the world origin.
func (a ArenaTuning) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

type PlayerTuning struct {
	Life       int
	NumLasers  int
	LaserSpeed float64
	FireRate   float64
	Spread     float64 // radians between lasers of one volley
}

type LaserTuning struct {
	Life      int
	HitRadius float64
	Damage    int
}

type EnemyTuning struct {
	SpawnRadius   float64
	SpawnInterval float64
	Speed         float64
	Life          int
	Worth         int
	Modifier      Modifier
}

type RewardTuning struct {
	ScorePerKill  int
	ChargePerKill int
	StartingMoney int
}

type SpaceoutTuning struct {
	Duration  float64
	MaxCharge int
}

// DefaultTuning returns the base game: straight-line enemies, one laser per shot.
func DefaultTuning() Tuning {
	return Tuning{
		TickRate: DefaultTickRate,
		Arena: ArenaTuning{
			Width:       ArenaWidth,
			Height:      ArenaHeight,
			OutOfBounds: OutOfBoundsRange,
		},
		Player: PlayerTuning{
			Life:       PlayerLife,
			NumLasers:  PlayerNumLasers,
			LaserSpeed: PlayerLaserSpeed,
			FireRate:   PlayerFireRate,
			Spread:     LaserSpread,
		},
		Laser: LaserTuning{
			Life:      LaserLife,
			HitRadius: LaserHitRadius,
			Damage:    LaserDamage,
		},
		Enemy: EnemyTuning{
			SpawnRadius:   EnemySpawnRadius,
			SpawnInterval: EnemySpawnInterval,
			Speed:         EnemySpeed,
			Life:          EnemyLife,
			Worth:         EnemyWorth,
			Modifier:      Straight(),
		},
		Rewards: RewardTuning{
			ScorePerKill:  ScorePerKill,
			ChargePerKill: ChargePerKill,
			StartingMoney: StartingMoney,
		},
		Spaceout: SpaceoutTuning{
			Duration:  SpaceoutTime,
			MaxCharge: MaxCharge,
		},
	}
}

// dt is the length of one fixed tick in seconds.
func (t Tuning) dt() float64 {
	if t.TickRate <= 0 {
		return 1.0 / DefaultTickRate
	}
	return 1.0 / float64(t.TickRate)
}
