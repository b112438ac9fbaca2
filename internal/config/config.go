// Package config provides YAML-based tuning and difficulty management for
// Spaced Out.
package config

// SpacedOutConfig contains every tunable of the game.
type SpacedOutConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Laser      LaserConfig      `yaml:"laser"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Rewards    RewardsConfig    `yaml:"rewards"`
	Spaceout   SpaceoutConfig   `yaml:"spaceout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield in world units. The origin is its centre.
type ArenaConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	OutOfBounds float64 `yaml:"out_of_bounds"` // distance from origin at which entities die
}

// PlayerConfig defines the turret.
type PlayerConfig struct {
	Life       int     `yaml:"life"`
	NumLasers  int     `yaml:"num_lasers"`
	LaserSpeed float64 `yaml:"laser_speed"`
	FireRate   float64 `yaml:"fire_rate"`  // seconds between shots
	SpreadDeg  float64 `yaml:"spread_deg"` // angle between lasers of one volley
}

// LaserConfig defines projectiles.
type LaserConfig struct {
	Life      int     `yaml:"life"`
	HitRadius float64 `yaml:"hit_radius"`
	Damage    int     `yaml:"damage"`
}

// EnemyConfig defines spawning and enemy stats.
type EnemyConfig struct {
	SpawnRadius   float64 `yaml:"spawn_radius"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Speed         float64 `yaml:"speed"`
	Life          int     `yaml:"life"`
	Worth         int     `yaml:"worth"`
	Modifier      string  `yaml:"modifier"`      // overrides the variant: none, spiral, accelerating
	SpiralFactor  float64 `yaml:"spiral_factor"` // used by the spiral variant
	Acceleration  float64 `yaml:"acceleration"`  // used by the rush variant, per tick
}

// RewardsConfig defines the economy.
type RewardsConfig struct {
	ScorePerKill  int `yaml:"score_per_kill"`
	ChargePerKill int `yaml:"charge_per_kill"`
	StartingMoney int `yaml:"starting_money"`
}

// SpaceoutConfig defines the freeze effect.
type SpaceoutConfig struct {
	Duration  float64 `yaml:"duration"`
	MaxCharge int     `yaml:"max_charge"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to enemy speed multiplier
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction shaved off the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
