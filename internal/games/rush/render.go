package rush

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rush-arcade/internal/config"
	"github.com/vovakirdan/rush-arcade/internal/core"
	"github.com/vovakirdan/rush-arcade/internal/games/rush/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	CrescentChar   = 'C'
	CorpseChar     = 'x'
	TrailChar      = '·'
	AimChar        = '∙'
	ShotChar       = '+'
	ShotSpinChar   = '×'
	AttackPosChar  = 'X'
	GoalForceChar  = '•'
	RepelForceChar = '∘'
	HPFullChar     = '█'
	HPEmptyChar    = '░'
)

// arrowGlyphs are indexed by facing in 45° steps counterclockwise from +x.
var arrowGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

const (
	hpBarWidth = 10
	aimDots    = 6
	// debugForceScale is the world length drawn per unit of force.
	debugForceScale = 40
	debugForceDots  = 8
)

// viewport maps world coordinates into the playfield box. The world's +y
// is up, the screen's is down.
type viewport struct {
	box    core.Rect
	worldW float64
	worldH float64
}

func newViewport(dst *core.Screen, w config.RushWorld) viewport {
	return viewport{
		box:    core.NewRect(0, 1, dst.Width(), dst.Height()-1),
		worldW: w.Width,
		worldH: w.Height,
	}
}

// toScreen returns the cell for p and whether it lies inside the box.
func (v viewport) toScreen(p sim.Vec2) (int, int, bool) {
	innerW := v.box.W - 2
	innerH := v.box.H - 2
	if innerW <= 0 || innerH <= 0 {
		return 0, 0, false
	}
	fx := p.X / v.worldW * float64(innerW)
	fy := (v.worldH - 1 - p.Y) / v.worldH * float64(innerH)
	if fx < 0 || fy < 0 || fx >= float64(innerW) || fy >= float64(innerH) {
		return 0, 0, false
	}
	return v.box.X + 1 + int(fx), v.box.Y + 1 + int(fy), true
}

func (v viewport) plot(dst *core.Screen, p sim.Vec2, r rune, c core.Color) {
	if x, y, ok := v.toScreen(p); ok {
		dst.SetCell(x, y, r, c)
	}
}

// tintPalette maps simulation tints to terminal colors.
var tintPalette = []struct {
	tint  sim.RGBA
	color core.Color
}{
	{sim.ColorAlmostBlack, core.ColorGray},
	{sim.ColorWhite, core.ColorBrightWhite},
	{sim.ColorLavenderBlue, core.ColorLavender},
	{sim.ColorLightRed, core.ColorBrightRed},
	{sim.ColorBlood, core.ColorBlood},
}

// tintColor returns the palette color nearest to t. Alpha is ignored.
func tintColor(t sim.RGBA) core.Color {
	best := tintPalette[0].color
	bestDist := math.MaxInt
	for _, p := range tintPalette {
		dr := int(t.R) - int(p.tint.R)
		dg := int(t.G) - int(p.tint.G)
		db := int(t.B) - int(p.tint.B)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best
}

func arrowGlyph(angle float64) rune {
	i := int(math.Round(angle/(math.Pi/4))) % len(arrowGlyphs)
	if i < 0 {
		i += len(arrowGlyphs)
	}
	return arrowGlyphs[i]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil || dst.Width() < 4 || dst.Height() < 5 {
		return
	}
	s := g.state
	v := newViewport(dst, g.cfg.World)

	border := core.ColorGray
	if s.ScreenFlash.A > 0 {
		border = tintColor(s.ScreenFlash)
	}
	dst.DrawBox(v.box, border)

	for _, e := range s.Enemies {
		g.drawEnemy(dst, v, e)
	}
	for _, p := range s.Projectiles {
		r := ShotChar
		if p.Spin != 0 {
			r = ShotSpinChar
		}
		v.plot(dst, p.Pos, r, core.ColorWhite)
	}
	g.drawPlayer(dst, v, s.Player)

	if g.debug {
		g.drawForceDebug(dst, v)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
	if g.finished {
		title, c := "DEFEATED", core.ColorBrightRed
		if s.Outcome == sim.OutcomeWon {
			title, c = "ALL CLEAR", core.ColorBrightGreen
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.score), c)
	}
}

func (g *Game) drawEnemy(dst *core.Screen, v viewport, e *sim.Enemy) {
	if e.Dead() {
		v.plot(dst, e.Pos, CorpseChar, tintColor(e.Tint))
		return
	}
	switch e.Kind {
	case sim.EnemyArrow:
		for _, t := range e.State.Trail {
			v.plot(dst, t.Pos, TrailChar, core.ColorRed)
		}
		v.plot(dst, e.Pos, arrowGlyph(e.FaceAngle), tintColor(e.Tint))
	case sim.EnemyCrescent:
		v.plot(dst, e.Pos, CrescentChar, tintColor(e.Tint))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, p *sim.Player) {
	c := core.ColorLavender
	switch p.State.Kind {
	case sim.PlayerCharging:
		if p.State.Ready {
			dir := core.FromAngle(p.FaceAngle)
			for i := 1; i <= aimDots; i++ {
				d := p.State.PredictedDistance * float64(i) / aimDots
				v.plot(dst, p.Pos.Add(dir.Scale(d)), AimChar, core.ColorBrightCyan)
			}
			c = core.ColorBrightCyan
		}
	case sim.PlayerRushing:
		c = core.ColorBrightWhite
	case sim.PlayerMovement:
	}
	v.plot(dst, p.Pos, PlayerChar, c)
}

// drawForceDebug shows each crescent's attack position and the two forces
// steering it there.
func (g *Game) drawForceDebug(dst *core.Screen, v viewport) {
	s := g.state
	for _, e := range s.Enemies {
		if e.Kind != sim.EnemyCrescent || e.Dead() {
			continue
		}
		if e.State.HasAttackPosition {
			v.plot(dst, e.State.AttackPosition, AttackPosChar, core.ColorYellow)
		}
		goal, repel := s.CrescentForceParts(e)
		drawForce(dst, v, e.Pos, goal, GoalForceChar, core.ColorGreen)
		drawForce(dst, v, e.Pos, repel, RepelForceChar, core.ColorMagenta)
	}
}

func drawForce(dst *core.Screen, v viewport, from, force sim.Vec2, r rune, c core.Color) {
	if force.IsZero() {
		return
	}
	end := force.Scale(debugForceScale)
	for i := 1; i <= debugForceDots; i++ {
		v.plot(dst, from.Add(end.Scale(float64(i)/debugForceDots)), r, c)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	p := s.Player
	x := 1

	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}

	put(g.title+"  ", core.ColorBrightWhite)

	maxHP := max(g.cfg.Player.HP, 1)
	filled := core.Clamp((p.HP*hpBarWidth+maxHP-1)/maxHP, 0, hpBarWidth)
	put("HP ", core.ColorDefault)
	put(strings.Repeat(string(HPFullChar), filled), core.ColorBrightRed)
	put(strings.Repeat(string(HPEmptyChar), hpBarWidth-filled), core.ColorGray)
	put(fmt.Sprintf(" %d  ", p.HP), core.ColorDefault)

	put(fmt.Sprintf("Kills %d/%d  ", s.Kills(), len(s.Enemies)), core.ColorDefault)

	switch p.State.Kind {
	case sim.PlayerCharging:
		if p.State.Ready {
			put(fmt.Sprintf("Charge %d READY  ", p.State.Power), core.ColorBrightCyan)
		} else {
			put(fmt.Sprintf("Charge %d  ", p.State.Power), core.ColorCyan)
		}
	case sim.PlayerRushing:
		put(fmt.Sprintf("Rush %d  ", p.State.Power), core.ColorBrightWhite)
	case sim.PlayerMovement:
	}

	put(fmt.Sprintf("%.1fs", float64(s.Tick)/float64(max(g.runtime.TickRate, 1))), core.ColorGray)

	if g.debug {
		put("  [forces]", core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
