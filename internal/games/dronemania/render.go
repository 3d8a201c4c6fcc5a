package dronemania

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/dronemania/internal/core"
)

// Visual characters for rendering
const (
	ChimneyChar    = '█'
	ChimneyCapChar = '▀'
	FlareChar      = '▒'
	FlareTipChar   = '^'
	GroundTopChar  = '═'
	GroundChar     = '▓'
	SkylineChar    = '░'
	PropIdleChar   = 'o'
	PropSpinChar   = '*'
	BeamChar       = '┊'
)

// Minimum terminal size the playfield can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 12
)

const hudRows = 1

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()-hudRows) / worldH,
	}
}

func (v viewport) x(wx float64) float64 { return wx * v.sx }
func (v viewport) y(wy float64) float64 { return hudRows + wy*v.sy }

// Render draws the playfield, HUD and any status overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorWarning)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorDim)
		return
	}

	s := g.state
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.drawSkyline(dst, vp, s.ScrollOffset)
	g.drawGround(dst, vp)
	for _, o := range s.Obstacles {
		drawObstacle(dst, vp, o.ViewportRect(s.ScrollOffset), o.Kind)
	}
	g.drawDrone(dst, vp, s)
	g.drawHUD(dst, s)

	switch s.Status {
	case StatusReady:
		drawPanel(dst, []panelLine{
			{strings.ToUpper(g.Title()), core.ColorHighlight},
			{"", core.ColorDefault},
			{"←/A  left propeller   →/D  right propeller", core.ColorDefault},
			{"Left tilts forward, right tilts back", core.ColorDim},
			{"Both at once: no lift, you fall", core.ColorDim},
			{"Hover over chimney caps to measure", core.ColorDim},
			{"", core.ColorDefault},
			{"ENTER to start", core.ColorHUD},
		})
	case StatusLevelComplete:
		drawPanel(dst, []panelLine{
			{fmt.Sprintf("LEVEL %d COMPLETE", s.Level), core.ColorHighlight},
			{fmt.Sprintf("Score: %d", s.Score), core.ColorDefault},
			{"", core.ColorDefault},
			{fmt.Sprintf("ENTER for level %d", s.Level+1), core.ColorHUD},
		})
	case StatusGameOver:
		lines := []panelLine{
			{"GAME OVER", core.ColorWarning},
			{fmt.Sprintf("Score: %d  |  Level %d", s.Score, s.Level), core.ColorDefault},
		}
		if g.IsNewHighScore() {
			lines = append(lines, panelLine{"NEW HIGH SCORE!", core.ColorHighlight})
		}
		lines = append(lines,
			panelLine{"", core.ColorDefault},
			panelLine{"R or ENTER to restart", core.ColorHUD},
		)
		drawPanel(dst, lines)
	}
}

// drawSkyline draws a distant parallax silhouette.
func (g *Game) drawSkyline(dst *core.Screen, vp viewport, scroll float64) {
	groundY := g.cfg.World.GroundY()
	for cx := 0; cx < dst.Width(); cx++ {
		wx := float64(cx)/vp.sx + scroll*0.25
		block := int(wx / 40)
		height := 30 + float64((block*37)%70)
		top := int(math.Round(vp.y(groundY - height)))
		bottom := int(vp.y(groundY))
		for cy := top; cy < bottom; cy++ {
			dst.SetColored(cx, cy, SkylineChar, core.ColorSkyline)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen, vp viewport) {
	top := int(vp.y(g.cfg.World.GroundY()))
	dst.DrawHLine(0, top, dst.Width(), GroundTopChar, core.ColorGround)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

func drawObstacle(dst *core.Screen, vp viewport, r core.Rect, kind ObstacleKind) {
	x0, x1 := vp.x(r.X), vp.x(r.Right())
	y0, y1 := vp.y(r.Y), vp.y(r.Bottom())
	top := int(math.Floor(y0))

	switch kind {
	case KindChimney:
		dst.FillRect(x0, y0, x1, y1, ChimneyChar, core.ColorChimney)
		for x := int(math.Floor(x0)); x < int(math.Ceil(x1)); x++ {
			dst.SetColored(x, top, ChimneyCapChar, core.ColorChimneyCap)
		}
	case KindFlare:
		dst.FillRect(x0, y0, x1, y1, FlareChar, core.ColorFlare)
		mid := int((x0 + x1) / 2)
		dst.SetColored(mid, top-1, FlareTipChar, core.ColorFlare)
	}
}

func (g *Game) drawDrone(dst *core.Screen, vp viewport, s State) {
	cx := int(vp.x(s.DroneX))
	cy := int(vp.y(s.DroneY))

	arm := '─'
	switch {
	case s.DroneRotation > 15:
		arm = '╲'
	case s.DroneRotation < -15:
		arm = '╱'
	}

	left, right := g.controls.Effective()
	propL, propR := PropIdleChar, PropIdleChar
	colorL, colorR := core.ColorDrone, core.ColorDrone
	if left && s.Status == StatusPlaying {
		propL, colorL = PropSpinChar, core.ColorPropeller
	}
	if right && s.Status == StatusPlaying {
		propR, colorR = PropSpinChar, core.ColorPropeller
	}

	dst.SetColored(cx-2, cy, propL, colorL)
	dst.SetColored(cx-1, cy, arm, core.ColorDrone)
	dst.SetColored(cx, cy, '■', core.ColorDrone)
	dst.SetColored(cx+1, cy, arm, core.ColorDrone)
	dst.SetColored(cx+2, cy, propR, colorR)

	if s.IsMeasuring {
		dst.SetColored(cx, cy+1, BeamChar, core.ColorHighlight)
		dst.SetColored(cx, cy+2, BeamChar, core.ColorHighlight)
	}
}

func (g *Game) drawHUD(dst *core.Screen, s State) {
	level := fmt.Sprintf("LVL %d/%d", s.Level, g.cfg.Levels.Count)
	if g.mode == ModeEndless {
		level = fmt.Sprintf("LVL %d", s.Level)
	}
	left := fmt.Sprintf(" SCORE %d  HI %d  %s ", s.Score, g.highScore, level)
	dst.DrawTextColored(0, 0, left, core.ColorHUD)

	x := len([]rune(left)) + 1
	bar := progressBar(s.LevelProgress, 10)
	dst.DrawTextColored(x, 0, bar, core.ColorHUD)
	x += len([]rune(bar)) + 1
	dst.DrawTextColored(x, 0, fmt.Sprintf("%3.0f%%", s.LevelProgress), core.ColorHUD)

	if s.IsMeasuring {
		msg := fmt.Sprintf("MEASURING +%d ", g.cfg.Levels.MeasuringPoints)
		dst.DrawTextColored(dst.Width()-len(msg), 0, msg, core.ColorHighlight)
	}
}

// progressBar renders pct (0-100) as a bracketed bar of width cells.
func progressBar(pct float64, width int) string {
	filled := int(math.Round(core.ClampF(pct, 0, 100) / 100 * float64(width)))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed message in the center of the screen.
func drawPanel(dst *core.Screen, lines []panelLine) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l.text)))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(float64(boxX), float64(boxY), float64(boxX+boxW), float64(boxY+boxH), ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorHUD)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColored(x, boxY+1+i, l.text, l.color)
	}
}
