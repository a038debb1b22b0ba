package tiltmaze

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/maze"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	HazardChar = '○'
	GoalChar   = '◎'
	BallChar   = '●'
	FloorChar  = ' '
)

// viewport maps world units onto a rectangle of screen cells.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func newViewport(field maze.Size, x0, y0, w, h int) viewport {
	w = max(w, 1)
	h = max(h, 1)
	return viewport{
		x0: x0, y0: y0, w: w, h: h,
		sx: float64(w) / field.W,
		sy: float64(h) / field.H,
	}
}

// cell returns the screen cell containing world point p.
func (v viewport) cell(p maze.Vec) (int, int) {
	cx := core.Clamp(int(math.Floor(p.X*v.sx)), 0, v.w-1)
	cy := core.Clamp(int(math.Floor(p.Y*v.sy)), 0, v.h-1)
	return v.x0 + cx, v.y0 + cy
}

// rect returns the cells covered by a wall; every wall covers at least one cell.
func (v viewport) rect(w maze.Wall) core.Rect {
	x1 := core.Clamp(int(math.Floor(w.X*v.sx)), 0, v.w-1)
	y1 := core.Clamp(int(math.Floor(w.Y*v.sy)), 0, v.h-1)
	x2 := core.Clamp(int(math.Ceil(w.Right()*v.sx)), x1+1, v.w)
	y2 := core.Clamp(int(math.Ceil(w.Bottom()*v.sy)), y1+1, v.h)
	return core.NewRect(v.x0+x1, v.y0+y1, x2-x1, y2-y1)
}

// center returns the world point at the middle of a screen cell.
func (v viewport) center(x, y int) maze.Vec {
	return maze.Vec{
		X: (float64(x-v.x0) + 0.5) / v.sx,
		Y: (float64(y-v.y0) + 0.5) / v.sy,
	}
}

func (v viewport) fillCircle(dst *core.Screen, c maze.Circle, r rune, color core.Color) {
	for y := v.y0; y < v.y0+v.h; y++ {
		for x := v.x0; x < v.x0+v.w; x++ {
			if c.Within(v.center(x, y), c.Radius) {
				dst.SetColored(x, y, r, color)
			}
		}
	}
	cx, cy := v.cell(c.Center)
	dst.SetColored(cx, cy, r, color)
}

// DrawLayout draws walls, hazards, the goal and optionally the ball of a
// layout into the given screen area.
func DrawLayout(dst *core.Screen, l maze.Layout, ball *maze.Vec, area core.Rect) {
	if area.Empty() {
		return
	}
	v := newViewport(l.Field, area.X, area.Y, area.W, area.H)

	if l.Border == 0 {
		// Open field edges: outline the field so the bounds are visible.
		dst.DrawBoxColored(area, core.ColorMuted)
	}

	for _, w := range l.Walls {
		dst.DrawRectColored(v.rect(w), WallChar, core.ColorWall)
	}
	for _, h := range l.Hazards {
		v.fillCircle(dst, h, HazardChar, core.ColorHazard)
	}
	v.fillCircle(dst, l.Goal, GoalChar, core.ColorGoal)

	if ball != nil {
		bx, by := v.cell(*ball)
		dst.SetColored(bx, by, BallChar, core.ColorBall)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 5 {
		dst.DrawText(0, 0, "too small")
		return
	}

	// Row 0 is the HUD.
	ball := g.snap.Ball
	DrawLayout(dst, g.sim.Layout(), &ball, core.NewRect(0, 1, w, h-1))

	g.drawHUD(dst)

	switch g.phase {
	case PhaseSplash:
		g.drawCenteredMessage(dst, "TILT MAZE", "Tilt the board to roll the ball into ◎",
			"Arrows/WASD tilt  Space level  Enter start")
	case PhaseLevelComplete:
		g.drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d CLEAR", g.snap.Level),
			fmt.Sprintf("%d seconds to spare", g.snap.TimeRemaining),
			"Enter: next level  R: replay")
	case PhaseGameOver:
		title := "FELL INTO A HOLE"
		if g.snap.Reason == maze.LossTimeout {
			title = "TIME'S UP"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Level %d  Cleared %d", g.snap.Level, g.cleared),
			"R: restart level  B: menu")
	case PhasePlaying:
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", "")
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	timeColor := core.ColorText
	if g.snap.TimeRemaining <= 10 {
		timeColor = core.ColorWarning
	}

	x := 1
	x = drawField(dst, x, fmt.Sprintf("Level %d", g.snap.Level), core.ColorAccent)
	x = drawField(dst, x, fmt.Sprintf("Time %2ds", g.snap.TimeRemaining), timeColor)
	x = drawField(dst, x, fmt.Sprintf("Cleared %d", g.cleared), core.ColorText)
	x = drawField(dst, x, "Tilt "+tiltArrow(g.lastTilt), core.ColorTilt)
	drawField(dst, x, "["+g.variant.ID+"]", core.ColorMuted)
}

func drawField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColored(x, 0, text, c)
	return x + len([]rune(text)) + 3
}

// tiltArrow shows the dominant tilt direction.
func tiltArrow(s maze.Sample) string {
	const deadZone = 0.5
	switch {
	case math.Abs(s.AX) < deadZone && math.Abs(s.AY) < deadZone:
		return "·"
	case math.Abs(s.AX) >= math.Abs(s.AY) && s.AX > 0:
		return "→"
	case math.Abs(s.AX) >= math.Abs(s.AY):
		return "←"
	case s.AY > 0:
		return "↓"
	default:
		return "↑"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle, hint string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(runeLen(title), runeLen(subtitle), runeLen(hint)) + 4
	boxH := 5
	if hint != "" {
		boxH = 6
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBorder)

	dst.DrawTextColored(boxX+(boxW-runeLen(title))/2, boxY+1, title, core.ColorTitle)
	dst.DrawText(boxX+(boxW-runeLen(subtitle))/2, boxY+3, subtitle)
	if hint != "" {
		dst.DrawTextColored(boxX+(boxW-runeLen(hint))/2, boxY+4, hint, core.ColorMuted)
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}
