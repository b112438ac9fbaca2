// Package spacedout adapts the Spaced Out simulation to the platform's Game
// interface: it loads tuning, maps input frames onto the simulation hooks,
// keeps an in-memory checkpoint and draws the world into a cell screen.
package spacedout

import (
	"time"

	"github.com/vovakirdan/spacedout/internal/config"
	"github.com/vovakirdan/spacedout/internal/core"
	"github.com/vovakirdan/spacedout/internal/games/spacedout/sim"
)

// maxBacklog bounds how much wall-clock time one frame may catch up on.
const maxBacklog = 250 * time.Millisecond

// flashTicks is how many frames a status message stays on screen.
const flashTicks = 90

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements registry.Game for one variant.
type Game struct {
	variant Variant

	runtime    core.RuntimeConfig
	cfg        config.SpacedOutConfig
	difficulty *config.DifficultyManager

	world *sim.World
	clock *sim.Accumulator

	paused     bool
	trigger    bool // latched by ActionFire
	checkpoint []byte
	last       sim.FrameResult

	flash      string
	flashTimer int
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSpacedOut(configPath)
	if err != nil {
		cfg = config.DefaultSpacedOutConfig()
	}

	// Apply difficulty preset if set
	config.ApplyPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	kind := g.variant.Modifier
	if k, ok := sim.ParseModifierKind(cfg.Enemy.Modifier); ok && cfg.Enemy.Modifier != "" {
		kind = k
	}
	tuning := tuningFrom(cfg, kind, runtime.TickRate)
	g.world = sim.NewWorld(tuning, sim.NewRand(runtime.Seed))
	g.clock = sim.NewAccumulator(tuning.TickRate)
	g.clock.SetMaxBacklog(maxBacklog)

	g.paused = false
	g.trigger = false
	g.checkpoint = nil
	g.last = sim.FrameResult{}
	g.flash = ""
	g.flashTimer = 0
}

// Step consumes one frame of input and advances the world by as many fixed
// ticks as the frame's elapsed time covers. A frame without elapsed time
// counts as exactly one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	g.tickFlash()
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionCheckpoint) {
		g.saveCheckpoint()
	}
	if in.Has(core.ActionRewind) {
		g.rewind()
	}

	g.applyPointer(in.Pointer)
	if in.Has(core.ActionFire) {
		g.trigger = !g.trigger
	}
	g.world.SetFiring(g.trigger || in.Pointer.Down)

	if in.Has(core.ActionSpaceout) {
		if g.world.OnActivationKey() {
			g.showFlash("SPACED OUT!")
		}
	}

	if g.difficulty.IsEnabled() {
		g.applyDifficulty()
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.clock.Step()
	}
	g.clock.Add(elapsed)
	g.last = g.world.Update(g.clock)

	return core.StepResult{
		State:    g.State(),
		Substeps: g.last.Substeps,
		Killed:   g.last.Killed,
	}
}

// Resize follows a terminal resize without restarting the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	res := g.world.Resources()
	return core.GameState{
		Score:    res.Score,
		Money:    res.Money,
		Charge:   res.Charge,
		Spaceout: res.SpaceoutActive(),
		Paused:   g.paused,
	}
}

// World exposes the simulation for frontends that draw it themselves.
func (g *Game) World() *sim.World {
	return g.world
}

// applyPointer maps the pointer cell onto arena coordinates. Pointers over
// the HUD or status row keep the previous aim.
func (g *Game) applyPointer(p core.Pointer) {
	if !p.Valid {
		return
	}
	v := newViewport(g.runtime.ScreenW, g.runtime.ScreenH, g.world.Tuning().Arena)
	if !v.area.Contains(p.X, p.Y) {
		return
	}
	x, y := v.toArena(p.X, p.Y)
	g.world.SetMousePosition(x, y)
}

func (g *Game) applyDifficulty() {
	res := g.world.Resources()
	ticks := int(g.world.Tick())
	speed := g.difficulty.EnemySpeed(g.cfg.Enemy.Speed, res.Score, ticks)
	interval := g.difficulty.SpawnInterval(g.cfg.Enemy.SpawnInterval, res.Score, ticks)
	g.world.SetEnemyPace(speed, interval)
}

func (g *Game) saveCheckpoint() {
	data, err := sim.EncodeSnapshot(g.world.Snapshot())
	if err != nil {
		g.showFlash("checkpoint failed")
		return
	}
	g.checkpoint = data
	g.showFlash("checkpoint saved")
}

// rewind restores the last checkpoint. The random source keeps running, so
// enemies after a rewind spawn at new angles.
func (g *Game) rewind() {
	if g.checkpoint == nil {
		g.showFlash("no checkpoint")
		return
	}
	snap, err := sim.DecodeSnapshot(g.checkpoint)
	if err != nil {
		g.showFlash("checkpoint unreadable")
		return
	}
	g.world.Restore(snap)
	g.trigger = snap.Firing
	g.clock.Reset()
	g.showFlash("rewound")
}

func (g *Game) showFlash(msg string) {
	g.flash = msg
	g.flashTimer = flashTicks
}

func (g *Game) tickFlash() {
	if g.flashTimer > 0 {
		g.flashTimer--
		if g.flashTimer == 0 {
			g.flash = ""
		}
	}
}
