package game

import "github.com/vovakirdan/tui-pong/internal/core"

// hotZoneY is the height below which a straddling ball is drawn "hot".
const hotZoneY = 30.0

// straddle reports whether either endpoint of interval a lies strictly
// inside interval b. This is intentionally not a symmetric AABB test:
// an interval fully containing the other from outside does not count.
func straddle(aLo, aHi, bLo, bHi float64) bool {
	return (aLo > bLo && aLo < bHi) || (aHi < bHi && aHi > bLo)
}

// xRandomize maps one sample in [0,100) to a transient x-offset.
// The three-way jitter makes rally trajectories less predictable.
func xRandomize(sample int) float64 {
	switch {
	case sample >= 66:
		return 0.1
	case sample >= 33:
		return -0.1
	default:
		return 0.0
	}
}

// advanceTick runs one simulation step. All operations are total over
// valid state; there are no error paths here.
//
// The bound tests are asymmetric on purpose: horizontal wall checks use
// the raw anchor and anchor+width, while paddle straddle tests use
// center-relative intervals. Normalizing them changes collision timing.
func (g *Game) advanceTick() {
	ballLeft := g.ball.X - g.ball.W/2
	ballRight := g.ball.X + g.ball.W/2
	boardLeft := g.board.X - g.board.W/2
	boardRight := g.board.X + g.board.W/2
	cpuLeft := g.cpu.X - g.cpu.W/2
	cpuRight := g.cpu.X + g.cpu.W/2

	// Horizontal wall bounce
	if g.ball.X < g.arena.Left() || g.ball.X+g.ball.W > g.arena.Right() {
		g.dirX = g.dirX.Flipped()
	}

	// Vertical bounds. Under wall scoring the near (player-side) bound
	// costs a point and the far (CPU-side) bound earns one; both reroll
	// the jitter offset.
	if g.ball.Y < g.arena.Top() {
		g.dirY = g.dirY.Flipped()
		if g.variant.Scoring == ScoringWalls {
			g.rx = xRandomize(g.sig.Next())
			if g.score > 0 {
				g.score--
			}
		}
	}
	if g.ball.Y+g.ball.H > g.arena.Bottom() {
		g.dirY = g.dirY.Flipped()
		if g.variant.Scoring == ScoringWalls {
			g.rx = xRandomize(g.sig.Next())
			g.score++
		}
	}

	if g.variant.CPUOpponent {
		g.updateCPU(ballLeft, ballRight, cpuLeft, cpuRight)

		// CPU paddle contact line
		if g.ball.Y > g.cpu.Y-g.cpu.H {
			if straddle(ballLeft, ballRight, cpuLeft, cpuRight) {
				if g.dirY == DirPositive && !g.win {
					g.emit(core.EventBounce)
				}
				g.dirY = DirNegative
			}
		}
	}

	// Player paddle contact
	if straddle(ballLeft, ballRight, boardLeft, boardRight) {
		if g.ball.Y < hotZoneY {
			g.ballColor = core.ColorYellow
		}
		if g.ball.Y < g.board.Y+g.board.H {
			if g.dirY == DirNegative && !g.win {
				g.emit(core.EventBounce)
			}
			g.dirY = DirPositive
		}
	} else {
		g.ballColor = core.ColorRed
	}

	// Explicit Euler integration, one fixed step, no sub-stepping
	if g.dirX == DirPositive {
		g.ball.X += g.vx + g.rx
	} else {
		g.ball.X -= g.vx + g.rx
	}
	if g.dirY == DirPositive {
		g.ball.Y += g.vy
	} else {
		g.ball.Y -= g.vy
	}

	interval := uint64(g.cfg.Physics.RampInterval)
	g.bump = int(float64(g.bumpTick) / float64(interval) * 100)

	g.tickCount++
	g.bumpTick++

	// Permanent speed bump whenever the tick counter crosses the
	// interval boundary; the rally only ever accelerates.
	if g.tickCount&(interval-1) == 0 {
		g.vx += g.cfg.Physics.RampVX
		g.vy += g.cfg.Physics.RampVY
		g.bumpTick = 0
	}

	// Post-win telemetry sampling feeds the sparkline
	if g.win {
		mask := uint64(g.cfg.Telemetry.SampleInterval - 1)
		if g.tickCount&mask == mask {
			g.stream.Push(g.sig.Next())
		}
	}
}

// updateCPU moves the CPU paddle toward the ball with a lossy reaction
// gate. Active only while the ball travels toward the CPU side past the
// arena's midline; the 4-in-9 gate keeps the opponent beatable.
func (g *Game) updateCPU(ballLeft, ballRight, cpuLeft, cpuRight float64) {
	if g.dirY != DirPositive || g.ball.Y <= g.arena.H*0.5 {
		return
	}
	if g.rng.Intn(9) <= 4 {
		return
	}

	step := g.cfg.Physics.CPUStep + g.rx
	if g.dirX == DirPositive && cpuLeft < ballRight && g.cpu.X+g.cpu.W < g.arena.Right() {
		g.cpu.X += step
	} else if g.dirX == DirNegative && cpuRight > ballLeft && g.cpu.X > g.arena.Left() {
		g.cpu.X -= step
	}
}
