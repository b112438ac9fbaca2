// Package window runs Spaced Out in a desktop window with Ebitengine.
// Ebitengine calls Update at the tick rate, so each Update runs exactly one
// fixed tick.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/spacedout/internal/core"
	"github.com/vovakirdan/spacedout/internal/games/spacedout/sim"
)

// Title is the window title.
const Title = "Spaced Out"

var (
	backgroundColor = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	playerColor     = colornames.Steelblue
	laserColor      = colornames.Red
	frozenColor     = colornames.Lightblue
	barEmptyColor   = colornames.Dimgray
)

// Frontend adapts a sim.World to ebiten.Game.
type Frontend struct {
	world  *sim.World
	logger *log.Logger

	paused       bool
	wasSpacedOut bool
}

// New wraps a world. The world's tuning decides the window size.
func New(world *sim.World, logger *log.Logger) *Frontend {
	return &Frontend{world: world, logger: logger}
}

// Update samples input and runs one fixed tick.
func (f *Frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		f.paused = !f.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.world.Reset()
		f.paused = false
		f.logger.Info("session restarted")
	}
	if f.paused {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	f.world.SetMousePosition(float64(mx), float64(my))
	f.world.SetFiring(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if f.world.OnActivationKey() {
			f.logger.Info("spaced out", "tick", f.world.Tick())
		} else {
			f.logger.Debug("spaceout not charged", "charge", f.world.Resources().Charge)
		}
	}

	fr := f.world.Update(sim.Steps(1))
	if fr.Killed > 0 {
		f.logger.Debug("enemies removed", "count", fr.Killed, "score", f.world.Resources().Score)
	}

	active := f.world.Resources().SpaceoutActive()
	if f.wasSpacedOut && !active {
		f.logger.Info("spaceout over", "tick", f.world.Tick())
	}
	f.wasSpacedOut = active
	return nil
}

// Draw paints the world. Screen coordinates have the player at the centre.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx, cy := f.world.Tuning().Arena.Center()
	center := core.V(cx, cy)
	frozen := f.world.Resources().SpaceoutActive()

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), sim.PlayerRadius, playerColor, true)

	for _, l := range f.world.Lasers() {
		head := l.Pos.Add(center)
		tail := head.Sub(l.Vel.Normalize().Scale(sim.LaserLength))
		vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), float32(head.X), float32(head.Y), 2, laserColor, true)
	}

	for _, e := range f.world.Enemies() {
		p := e.Pos.Add(center)
		c := enemyColor(e.Modifier.Kind)
		if frozen {
			c = frozenColor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), sim.EnemyRadius, c, true)
		drawHealthBar(screen, p, e.HealthRatio())
	}

	f.drawHUD(screen)
}

// Layout fixes the logical screen to the arena size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	a := f.world.Tuning().Arena
	return int(a.Width), int(a.Height)
}

func (f *Frontend) drawHUD(screen *ebiten.Image) {
	res := f.world.Resources()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", res.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Money: $%d", res.Money), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Charge: %d%%", res.Charge), 10, 50)

	switch {
	case f.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", 10, 70)
	case res.SpaceoutActive():
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPACED OUT %.1fs", res.SpaceoutTime), 10, 70)
	case res.Charge >= f.world.Tuning().Spaceout.MaxCharge:
		ebitenutil.DebugPrintAt(screen, "SPACE to space out", 10, 70)
	}
}

func enemyColor(k sim.ModifierKind) color.Color {
	switch k {
	case sim.ModSpiral:
		return colornames.Violet
	case sim.ModAccelerating:
		return colornames.Tomato
	default:
		return colornames.Orange
	}
}

// drawHealthBar draws a gauge above an enemy centred on p.
func drawHealthBar(screen *ebiten.Image, p core.Vec2, ratio float64) {
	const w, h = 20, 3
	x := float32(p.X) - w/2
	y := float32(p.Y) - sim.EnemyRadius - 6
	vector.DrawFilledRect(screen, x, y, w, h, barEmptyColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(core.ClampF(ratio, 0, 1)), h, healthColor(ratio), false)
}

func healthColor(ratio float64) color.Color {
	switch core.HealthColor(ratio) {
	case core.ColorBrightGreen:
		return colornames.Limegreen
	case core.ColorYellow:
		return colornames.Gold
	default:
		return colornames.Crimson
	}
}

// Run opens the window and blocks until it is closed.
func Run(world *sim.World, logger *log.Logger) error {
	a := world.Tuning().Arena
	ebiten.SetWindowSize(int(a.Width), int(a.Height))
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(world.Tuning().TickRate)

	logger.Info("window open", "size", fmt.Sprintf("%.0fx%.0f", a.Width, a.Height), "tps", world.Tuning().TickRate)
	err := ebiten.RunGame(New(world, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	res := world.Resources()
	logger.Info("window closed", "score", res.Score, "money", res.Money)
	return nil
}
