package spacedout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spacedout/internal/core"
	"github.com/vovakirdan/spacedout/internal/games/spacedout/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '●'
	PlayerCoreChar = '@'
	LaserChar      = '•'
	EnemyChar      = '◆'
)

// hudRows is the number of rows reserved above and below the playfield.
const hudRows = 1

// viewport maps arena coordinates (origin top-left, as the mouse reports
// them) onto screen cells between the HUD rows.
type viewport struct {
	top      int
	sx, sy   float64
	center   core.Vec2
	area     core.Rect
	haveArea bool
}

func newViewport(screenW, screenH int, arena sim.ArenaTuning) viewport {
	rows := screenH - 2*hudRows
	v := viewport{top: hudRows}
	cx, cy := arena.Center()
	v.center = core.V(cx, cy)
	if screenW <= 0 || rows <= 0 || arena.Width <= 0 || arena.Height <= 0 {
		return v
	}
	v.sx = float64(screenW) / arena.Width
	v.sy = float64(rows) / arena.Height
	v.area = core.NewRect(0, hudRows, screenW, rows)
	v.haveArea = true
	return v
}

// toCell converts a world position (origin at the player) to a screen cell.
func (v viewport) toCell(p core.Vec2) (int, int) {
	s := p.Add(v.center)
	return int(math.Floor(s.X * v.sx)), v.top + int(math.Floor(s.Y*v.sy))
}

// toArena converts a screen cell to arena coordinates at the cell's centre.
func (v viewport) toArena(col, row int) (float64, float64) {
	if !v.haveArea {
		return v.center.X, v.center.Y
	}
	x := (float64(col) + 0.5) / v.sx
	y := (float64(row-v.top) + 0.5) / v.sy
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	v := newViewport(dst.Width(), dst.Height(), g.world.Tuning().Arena)
	if !v.haveArea {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.drawPlayer(dst, v)
	for _, l := range g.world.Lasers() {
		g.drawLaser(dst, v, l)
	}
	for _, e := range g.world.Enemies() {
		g.drawEnemy(dst, v, e)
	}
	g.drawHUD(dst)
	g.drawStatus(dst)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	cx, cy := v.toCell(core.Vec2{})
	rx := int(math.Round(sim.PlayerRadius * v.sx))
	ry := int(math.Round(sim.PlayerRadius * v.sy))
	color := core.ColorBrightCyan
	if g.world.Firing() {
		color = core.ColorCyan
	}
	dst.DrawEllipse(cx, cy, rx, ry, PlayerChar, color)
	dst.SetColored(cx, cy, PlayerCoreChar, core.ColorWhite)
}

func (g *Game) drawLaser(dst *core.Screen, v viewport, l sim.Laser) {
	tail := l.Pos.Sub(l.Vel.Normalize().Scale(sim.LaserLength))
	x0, y0 := v.toCell(tail)
	x1, y1 := v.toCell(l.Pos)
	dst.DrawLine(x0, y0, x1, y1, LaserChar, core.ColorBrightRed)
}

func (g *Game) drawEnemy(dst *core.Screen, v viewport, e sim.Enemy) {
	x, y := v.toCell(e.Pos)
	color := core.ColorBrightYellow
	switch e.Modifier.Kind {
	case sim.ModSpiral:
		color = core.ColorMagenta
	case sim.ModAccelerating:
		color = core.ColorOrange
	}
	if g.world.Resources().SpaceoutActive() {
		color = core.ColorBlue
	}
	rx := int(sim.EnemyRadius * v.sx)
	ry := int(sim.EnemyRadius * v.sy)
	dst.DrawEllipse(x, y, rx, ry, EnemyChar, color)

	// Health bar above the enemy
	ratio := e.HealthRatio()
	if ratio < 1 && y-ry-1 >= v.top {
		dst.DrawBar(x-1, y-ry-1, 3, ratio, core.HealthColor(ratio), core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	res := g.world.Resources()
	maxCharge := g.world.Tuning().Spaceout.MaxCharge

	hud := fmt.Sprintf(" Score: %d  Money: $%d  Charge: ", res.Score, res.Money)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	x := len([]rune(hud))
	ratio := 0.0
	if maxCharge > 0 {
		ratio = float64(res.Charge) / float64(maxCharge)
	}
	fill := core.ColorCyan
	if res.Charge >= maxCharge {
		fill = core.ColorBrightCyan
	}
	dst.DrawBar(x, 0, 10, ratio, fill, core.ColorGray)
	dst.DrawTextColored(x+11, 0, fmt.Sprintf("%d%%", res.Charge*100/max(maxCharge, 1)), core.ColorWhite)
}

func (g *Game) drawStatus(dst *core.Screen) {
	y := dst.Height() - 1
	res := g.world.Resources()

	switch {
	case g.paused:
		g.drawPauseBox(dst)
	case res.SpaceoutActive():
		dst.DrawTextColored(1, y, fmt.Sprintf("SPACEOUT %.1fs", res.SpaceoutTime), core.ColorBrightCyan)
	case res.Charge >= g.world.Tuning().Spaceout.MaxCharge:
		dst.DrawTextColored(1, y, "Charge full - SPACE to space out", core.ColorBrightCyan)
	}

	if g.flash != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(g.flash))-1, y, g.flash, core.ColorYellow)
	}
}

func (g *Game) drawPauseBox(dst *core.Screen) {
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(28, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, "PAUSED")
	dst.DrawTextCentered(box.Y+3, "P to resume, Q to quit")
}
