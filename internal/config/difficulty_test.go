package config

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); !near(got, tc.want) {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(1000, 300); !near(got, 0.5) {
		t.Errorf("Level at 300 ticks = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level = %v, expected initial 0.3", got)
	}
	if got := d.EnemySpeed(60, 1000, 0); !near(got, 78) {
		t.Errorf("EnemySpeed = %v, expected 78", got)
	}
}

func TestDifficultyPace(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	})

	if got := d.EnemySpeed(60, 0, 0); !near(got, 60) {
		t.Errorf("EnemySpeed at level 0 = %v, expected 60", got)
	}
	if got := d.EnemySpeed(60, 100, 0); !near(got, 120) {
		t.Errorf("EnemySpeed at level 1 = %v, expected 120", got)
	}
	if got := d.SpawnInterval(1.0, 100, 0); !near(got, 0.5) {
		t.Errorf("SpawnInterval at level 1 = %v, expected 0.5", got)
	}
	if got := d.SpawnInterval(0.1, 100, 0); !near(got, minSpawnInterval) {
		t.Errorf("SpawnInterval floor = %v, expected %v", got, minSpawnInterval)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{})
	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Level = %v, expected clamp to 1.0", got)
	}
}
