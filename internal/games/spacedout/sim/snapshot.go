package sim

import (
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/spacedout/internal/core"
)

// Snapshot is a complete copy of the deterministic world state.
// The random source is not part of it: replaying from a snapshot gives the
// same result only when the random source replays the same values.
type Snapshot struct {
	Tick         uint64    `msgpack:"tick"`
	Player       Player    `msgpack:"player"`
	Lasers       []Laser   `msgpack:"lasers"`
	Enemies      []Enemy   `msgpack:"enemies"`
	Resources    Resources `msgpack:"res"`
	Firing       bool      `msgpack:"firing"`
	Mouse        core.Vec2 `msgpack:"mouse"`
	ShotTimeout  float64   `msgpack:"shot_timeout"`
	EnemyTimeout float64   `msgpack:"enemy_timeout"`
}

// Snapshot captures the current state. The result shares no memory with the world.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:         w.tick,
		Player:       w.player,
		Lasers:       slices.Clone(w.lasers),
		Enemies:      slices.Clone(w.enemies),
		Resources:    w.res,
		Firing:       w.firing,
		Mouse:        w.mouse,
		ShotTimeout:  w.shotTimeout,
		EnemyTimeout: w.enemyTimeout,
	}
}

// Restore replaces the world state with s. Tuning and the random source are kept.
func (w *World) Restore(s Snapshot) {
	w.tick = s.Tick
	w.player = s.Player
	w.lasers = append(w.lasers[:0], s.Lasers...)
	w.enemies = append(w.enemies[:0], s.Enemies...)
	w.res = s.Resources
	w.firing = s.Firing
	w.mouse = s.Mouse
	w.shotTimeout = s.ShotTimeout
	w.enemyTimeout = s.EnemyTimeout
}

// EncodeSnapshot serialises a snapshot with msgpack.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot is the inverse of EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
