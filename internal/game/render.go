package game

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '█'
	GaugeFill  = '█'
	GaugeEmpty = '░'
)

// sparkRunes are the bar glyphs for the telemetry sparkline, low to high.
var sparkRunes = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// calculateLayout computes the field and HUD regions from screen size.
func (g *Game) calculateLayout() {
	w := g.runtime.ScreenW
	h := g.runtime.ScreenH

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH

	hudH := 3
	g.fieldRect = core.NewRect(0, 0, w, h-hudH)
	g.hudRect = core.NewRect(0, h-hudH, w, hudH)
}

// worldToScreen maps a world-space point into the field's inner cells.
// World space is y-up; the screen is y-down, so the vertical axis flips.
func (g *Game) worldToScreen(wx, wy float64) (int, int) {
	innerW := g.fieldRect.W - 2
	innerH := g.fieldRect.H - 2

	fx := (wx - g.arena.Left()) / g.arena.W
	fy := (wy - g.arena.Top()) / g.arena.H

	sx := g.fieldRect.X + 1 + int(fx*float64(innerW-1))
	sy := g.fieldRect.Y + 1 + (innerH - 1) - int(fy*float64(innerH-1))

	sx = core.Clamp(sx, g.fieldRect.X+1, g.fieldRect.Right()-2)
	sy = core.Clamp(sy, g.fieldRect.Y+1, g.fieldRect.Bottom()-2)
	return sx, sy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderField(dst)
	g.renderHUD(dst)
}

// renderField draws the arena border, paddles and ball.
func (g *Game) renderField(dst *core.Screen) {
	dst.DrawBox(g.fieldRect)
	dst.DrawText(g.fieldRect.X+2, g.fieldRect.Y, g.Title())

	g.drawWorldRect(dst, g.board, PaddleChar, core.ColorWhite)
	if g.variant.CPUOpponent {
		g.drawWorldRect(dst, g.cpu, PaddleChar, core.ColorWhite)
	}
	g.drawWorldRect(dst, g.ball, BallChar, g.ballColor)
}

// drawWorldRect fills the screen cells covered by a world-space rect.
func (g *Game) drawWorldRect(dst *core.Screen, r core.RectF, glyph rune, c core.Color) {
	x0, y1 := g.worldToScreen(r.Left(), r.Top())
	x1, y0 := g.worldToScreen(r.Right(), r.Bottom())

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, glyph, c)
		}
	}
}

// renderHUD draws the bottom strip: gauges while playing, the telemetry
// sparkline and timer once the rally is won.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(g.hudRect.X, g.hudRect.Y, g.hudRect.W, '─')

	row := g.hudRect.Y + 1
	if !g.win {
		// Score gauge takes ~80% of the width, level gauge the rest
		scoreW := g.hudRect.W * 4 / 5
		label := fmt.Sprintf("%d/%d", g.score, g.cfg.Rules.WinScore)
		pct := g.score * 100 / g.cfg.Rules.WinScore
		g.drawGauge(dst, g.hudRect.X+1, row, scoreW-2, "Score", label, pct, core.ColorRed)

		lvlLabel := fmt.Sprintf("%d%%", g.bump)
		lvlTitle := fmt.Sprintf("Level %d", g.Level())
		g.drawGauge(dst, g.hudRect.X+scoreW+1, row, g.hudRect.W-scoreW-2, lvlTitle, lvlLabel, g.bump, core.ColorCyan)
	} else {
		g.drawSparkline(dst, g.hudRect.X+1, row, g.hudRect.W*4/5-2)

		timer := fmt.Sprintf("You Win!  %.2fs", g.winTime)
		dst.DrawTextColored(g.hudRect.X+g.hudRect.W*4/5+1, row, timer, core.ColorYellow)
	}

	hints := "←/→ move   r reset   q quit"
	dst.DrawTextColored(g.hudRect.X+1, g.hudRect.Y+2, hints, core.ColorGray)
}

// drawGauge renders a labelled progress bar.
func (g *Game) drawGauge(dst *core.Screen, x, y, width int, title, label string, pct int, c core.Color) {
	if width < 4 {
		return
	}
	pct = core.Clamp(pct, 0, 100)

	dst.DrawText(x, y, title+" ")
	barX := x + len(title) + 1
	barW := width - len(title) - len(label) - 2
	if barW < 1 {
		return
	}

	filled := barW * pct / 100
	for i := 0; i < barW; i++ {
		glyph := GaugeEmpty
		if i < filled {
			glyph = GaugeFill
		}
		dst.SetCell(barX+i, y, glyph, c)
	}
	dst.DrawText(barX+barW+1, y, label)
}

// drawSparkline renders the telemetry stream, newest sample leftmost.
// The color alternates on a tick bit pattern purely for flourish.
func (g *Game) drawSparkline(dst *core.Screen, x, y, width int) {
	c := core.ColorYellow
	if g.tickCount&0x20 == 0x20 {
		c = core.ColorBrightYellow
	}

	values := g.stream.Values()
	n := core.Min(width, len(values))
	for i := 0; i < n; i++ {
		idx := values[i] * len(sparkRunes) / 100
		idx = core.Clamp(idx, 0, len(sparkRunes)-1)
		dst.SetCell(x+i, y, sparkRunes[idx], c)
	}
}
