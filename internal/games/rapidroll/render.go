package rapidroll

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-rapidroll/internal/core"
)

// Minimum terminal size for a readable playfield.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Visual characters for rendering
const (
	PlayerChar       = '●'
	ShieldedChar     = '◉'
	PlatformChar     = '▀'
	MovingPlatChar   = '═'
	VanishPlatChar   = '╌'
	BackgroundChar   = '·'
	HUDSeparatorChar = '─'
)

// obstacleGlyph returns the glyph and color for an obstacle kind.
func obstacleGlyph(k ObstacleKind) (rune, core.Color) {
	switch k {
	case ObstacleSpike:
		return '▲', core.ColorRed
	case ObstacleBomb:
		return '♦', core.ColorMagenta
	case ObstacleMovingSaw:
		return '✱', core.ColorBrightRed
	case ObstacleFallingRock:
		return '▓', core.ColorGray
	case ObstacleRollingBarrel:
		return '◍', core.ColorOrange
	case ObstacleFireball:
		return '✶', core.ColorBrightYellow
	default:
		return '?', core.ColorDefault
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpExtraLife:
		return '♥'
	case PowerUpBonusStar:
		return '★'
	case PowerUpPowerBall:
		return 'P'
	case PowerUpTimeExtension:
		return 'T'
	case PowerUpShield:
		return 'S'
	case PowerUpDoubleScore:
		return 'D'
	case PowerUpSlowMotion:
		return 'M'
	default:
		return '?'
	}
}

var backgroundColors = [4]core.Color{
	core.ColorDarkGray,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	switch g.state {
	case StateMainMenu:
		g.renderMainMenu(dst)
	case StateLevelSelect:
		g.renderLevelSelect(dst)
	case StateNameEntry:
		g.renderPlayfield(dst)
		g.renderBox(dst, []string{"NEW SCORE", fmt.Sprintf("%d points", g.world.Player.Score), "Enter your name:"})
	case StateHighScores:
		dst.DrawTextCentered(1, "HIGH SCORES", core.ColorBrightYellow)
	case StateQuit:
	default:
		g.renderPlayfield(dst)
		g.renderOverlay(dst)
	}
}

func (g *Game) renderMainMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, letterSpaced(g.Title()), core.ColorBrightCyan)
	dst.DrawTextCentered(mid-2, "climb, dodge, survive the clock", core.ColorGray)
	dst.DrawTextCentered(mid, "Press ENTER to Start", core.ColorWhite)
	dst.DrawTextCentered(mid+2, "Press Q to Quit", core.ColorWhite)
}

func (g *Game) renderLevelSelect(dst *core.Screen) {
	top := dst.Height()/2 - g.maxLevel()/2 - 2
	dst.DrawTextCentered(top, "Select Level:", core.ColorBrightWhite)
	for lvl := 1; lvl <= g.maxLevel(); lvl++ {
		text := fmt.Sprintf("Level %d", lvl)
		color := core.ColorWhite
		if lvl == g.selectedLevel {
			text = "> " + text + " <"
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(top+1+lvl, text, color)
	}
	dst.DrawTextCentered(top+g.maxLevel()+3, "↑/↓ choose  ENTER start  ESC back", core.ColorGray)
}

// renderPlayfield draws the HUD on row 0 and the world scaled into the
// remaining rows.
func (g *Game) renderPlayfield(dst *core.Screen) {
	g.renderHUD(dst)

	w := g.world
	view := viewport{
		top:    2,
		width:  dst.Width(),
		height: dst.Height() - 2,
		sx:     float64(dst.Width()) / g.cfg.World.Width,
		sy:     float64(dst.Height()-2) / g.cfg.World.Height,
	}

	bg := backgroundColors[w.Background()]
	for y := view.top; y < dst.Height(); y += 2 {
		for x := (y / 2 % 2) * 4; x < dst.Width(); x += 8 {
			dst.SetColor(x, y, BackgroundChar, bg)
		}
	}

	for _, pl := range w.Platforms {
		glyph, color := PlatformChar, core.ColorGreen
		switch {
		case pl.Disappearing:
			glyph, color = VanishPlatChar, core.ColorYellow
		case pl.Moving:
			glyph, color = MovingPlatChar, core.ColorBrightGreen
		}
		view.fill(dst, pl.Body, glyph, color)
	}

	for _, pu := range w.PowerUps {
		view.fill(dst, pu.Body, pu.Kind.Glyph(), core.ColorBrightMagenta)
	}

	for _, o := range w.Obstacles {
		glyph, color := obstacleGlyph(o.Kind)
		view.fill(dst, o.Body, glyph, color)
	}

	glyph, color := PlayerChar, core.ColorBrightWhite
	if w.Player.Effects.Active(EffectShield) {
		glyph, color = ShieldedChar, core.ColorBrightCyan
	}
	view.fill(dst, w.Player.Body, glyph, color)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.HUD()

	lives := strings.Repeat("♥", min(hud.Lives, 5))
	if hud.Lives > 5 {
		lives += fmt.Sprintf("+%d", hud.Lives-5)
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("Level %d", hud.Level), core.ColorBrightWhite)
	dst.DrawTextColor(11, 0, lives, core.ColorBrightRed)
	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", hud.Score), core.ColorBrightYellow)

	timeText := "Time " + formatClock(hud.TimeLeft)
	timeColor := core.ColorWhite
	if hud.TimeLeft < 10*time.Second {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-len(timeText)-1, 0, timeText, timeColor)

	dst.DrawHLine(0, 1, dst.Width(), HUDSeparatorChar, core.ColorDarkGray)
	x := 1
	for _, e := range g.Snapshot().Effects {
		tag := fmt.Sprintf(" %s %.0fs ", effectLabel(e.Kind), math.Ceil(e.Remaining.Seconds()))
		dst.DrawTextColor(x, 1, tag, effectColor(e.Kind))
		x += len([]rune(tag)) + 1
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.renderBox(dst, []string{"Game Paused", "P to resume  R to restart", "Q to quit"})
	case StateLevelingUp:
		g.renderBox(dst, []string{"LEVEL UP!", fmt.Sprintf("Level %d", g.world.Level),
			fmt.Sprintf("Get ready... %s", bannerCountdown(g.Banner()))})
	case StateGameOver:
		g.renderBox(dst, []string{"GAME OVER", fmt.Sprintf("Final Score: %d", g.world.Player.Score),
			fmt.Sprintf("ENTER to continue (%s)", bannerCountdown(g.Banner()))})
	}
}

// bannerCountdown shows whole seconds left, rounded up.
func bannerCountdown(d time.Duration) string {
	return fmt.Sprintf("%.0fs", math.Ceil(max(d, 0).Seconds()))
}

// letterSpaced upper-cases s and puts a space between every rune.
func letterSpaced(s string) string {
	runes := []rune(strings.ToUpper(s))
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// renderBox draws lines centered inside a bordered box.
func (g *Game) renderBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines)*2 + 1
	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2

	dst.FillRect(x, y, width, height, ' ', core.ColorDefault)
	dst.DrawBox(x, y, width, height, core.ColorBrightWhite)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(y+1+i*2, l, color)
	}
}

func effectLabel(k EffectKind) string {
	switch k {
	case EffectPowerBall:
		return "BOOST"
	case EffectShield:
		return "SHIELD"
	case EffectDoubleScore:
		return "x2"
	case EffectSlowMotion:
		return "SLOW"
	default:
		return "?"
	}
}

func effectColor(k EffectKind) core.Color {
	switch k {
	case EffectPowerBall:
		return core.ColorOrange
	case EffectShield:
		return core.ColorBrightCyan
	case EffectDoubleScore:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightBlue
	}
}

// formatClock formats a duration as m:ss, rounding up partial seconds.
func formatClock(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// viewport maps world units onto screen cells.
type viewport struct {
	top    int
	width  int
	height int
	sx, sy float64
}

// fill paints the cells covered by r, clipped to the viewport.
// Every visible entity covers at least one cell.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := max(int(math.Ceil(r.Right()*v.sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*v.sy)), y0+1)

	x0, x1 = max(x0, 0), min(x1, v.width)
	y0, y1 = max(y0, 0), min(y1, v.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, v.top+y, glyph, c)
		}
	}
}
