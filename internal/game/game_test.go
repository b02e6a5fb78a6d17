package game

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 40,
		Seed:     12345,
	}
}

func stepN(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, expected %d", in, got, want)
		}
	}
}

func TestSpeedRampScenario(t *testing.T) {
	// Fresh state, default ramp interval of 1024: after exactly 1024
	// ticks the speeds have bumped once. Collisions never affect the
	// ramp, so the variant does not matter for the speed values.
	g := New(VariantClassic)
	g.Reset(testConfig())

	if g.vx != 1.0 || g.vy != 1.0 {
		t.Fatalf("initial speeds = (%v, %v), expected (1.0, 1.0)", g.vx, g.vy)
	}

	stepN(g, 1024)

	snap := g.Snapshot()
	if snap.Tick != 1024 {
		t.Errorf("tick count = %d, expected 1024", snap.Tick)
	}
	if snap.VX != 1.2 {
		t.Errorf("vx after 1024 ticks = %v, expected 1.2", snap.VX)
	}
	if snap.VY != 1.1 {
		t.Errorf("vy after 1024 ticks = %v, expected 1.1", snap.VY)
	}
}

func TestSpeedsNeverDecrease(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	in := core.NewInputFrame()
	prevVX, prevVY := g.vx, g.vy
	for i := 0; i < 5000; i++ {
		g.Step(in)
		if g.vx < prevVX {
			t.Fatalf("vx decreased at tick %d: %v -> %v", i, prevVX, g.vx)
		}
		if g.vy < prevVY {
			t.Fatalf("vy decreased at tick %d: %v -> %v", i, prevVY, g.vy)
		}
		prevVX, prevVY = g.vx, g.vy
	}
}

func TestScoreFlooredAtZero(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	// Park the ball crossing the near bound with an empty score
	g.score = 0
	g.ball.X = 80
	g.ball.Y = g.arena.Top() - 1

	g.Step(core.NewInputFrame())

	if g.score != 0 {
		t.Errorf("score after near-bound miss at zero = %d, expected 0", g.score)
	}
}

func TestFarBoundScoresAndRerollsJitter(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	// Ball crossing the far bound, moving toward it, away from the CPU
	// paddle so no contact interferes with the flip.
	g.dirY = DirPositive
	g.ball.X = g.arena.Right() - g.ball.W - 20
	g.ball.Y = g.arena.Bottom() - g.ball.H + 1
	g.cpu.X = g.arena.Left()
	g.score = 3

	g.Step(core.NewInputFrame())

	if g.score != 4 {
		t.Errorf("score = %d, expected 4", g.score)
	}
	if g.dirY != DirNegative {
		t.Error("dirY should flip to negative at the far bound")
	}
	if g.rx != 0.0 && g.rx != -0.1 && g.rx != 0.1 {
		t.Errorf("rx = %v, expected a value from the jitter mapping", g.rx)
	}
}

func TestClassicVariantNeverScores(t *testing.T) {
	g := New(VariantClassic)
	g.Reset(testConfig())

	// Force repeated bound crossings; the simple policy only bounces.
	for i := 0; i < 50; i++ {
		g.ball.Y = g.arena.Bottom() - g.ball.H + 1
		g.dirY = DirPositive
		g.Step(core.NewInputFrame())
	}

	if g.score != 0 {
		t.Errorf("classic variant scored: %d", g.score)
	}
	if g.win {
		t.Error("classic variant can never reach the win state")
	}
}

func TestWinLatchAndWinTime(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	// Run a while so the win is latched at a non-zero tick count, then
	// set up a far-bound crossing one point below the threshold.
	stepN(g, 100)
	if g.win {
		t.Fatal("win latched during warmup")
	}
	g.score = 9
	g.dirY = DirPositive
	g.ball.X = g.arena.Right() - g.ball.W - 20
	g.ball.Y = g.arena.Bottom() - g.ball.H + 1
	g.cpu.X = g.arena.Left()

	res := g.Step(core.NewInputFrame())
	if !res.State.Won {
		t.Fatal("win flag not set after reaching the threshold")
	}

	victorySeen := false
	for _, e := range res.Events {
		if e == core.EventVictory {
			victorySeen = true
		}
	}
	if !victorySeen {
		t.Error("victory cue event not emitted on the win transition")
	}

	capturedAt := g.winTime
	wantTime := float64(g.tickCount) / float64(g.runtime.TickRate)
	if capturedAt != wantTime {
		t.Errorf("winTime = %v, expected %v", capturedAt, wantTime)
	}

	// The latch holds, and the time is captured exactly once
	stepN(g, 500)
	if !g.win {
		t.Error("win flag must stay set for the rest of the session")
	}
	if g.winTime != capturedAt {
		t.Errorf("winTime recaptured: %v -> %v", capturedAt, g.winTime)
	}
}

func TestTelemetryCadenceAndLength(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	if g.stream.Len() != 200 {
		t.Fatalf("stream length at start = %d, expected 200", g.stream.Len())
	}

	// Enter the win state directly and watch the sampling cadence
	g.win = true
	g.winTime = 1.0

	in := core.NewInputFrame()
	pushes := 0
	prevHead := g.stream.Values()[0]
	for i := 0; i < 320; i++ {
		g.Step(in)
		if g.stream.Len() != 200 {
			t.Fatalf("stream length changed to %d at tick %d", g.stream.Len(), i)
		}
		head := g.stream.Values()[0]
		if head != prevHead {
			pushes++
			if g.tickCount&0xF != 0xF {
				t.Errorf("sample pushed off-cadence at tick %d", g.tickCount)
			}
			prevHead = head
		}
	}

	// 320 ticks at one sample per 16 ticks: 20 sampling points. A few
	// may draw a value equal to the previous head, so allow slack.
	if pushes < 15 {
		t.Errorf("observed %d pushes over 320 ticks, expected close to 20", pushes)
	}
}

func TestPartialReset(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	stepN(g, 2000)
	g.score = 7
	g.win = true
	g.winTime = 12.5

	// Park the ball mid-arena heading away from the CPU so the reset
	// tick itself cannot move the CPU paddle or cross a bound.
	g.ball.Y = 60
	g.dirY = DirNegative

	ballX, ballY := g.ball.X, g.ball.Y
	boardX := g.board.X
	cpuX := g.cpu.X

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.score != 0 {
		t.Errorf("score after reset = %d, expected 0", g.score)
	}
	if g.tickCount != 1 { // The reset tick itself still advances once
		t.Errorf("tickCount after reset = %d, expected 1", g.tickCount)
	}
	if g.vx != 1.0 || g.vy != 1.0 {
		t.Errorf("speeds after reset = (%v, %v), expected (1.0, 1.0)", g.vx, g.vy)
	}
	if g.win || g.winTime != 0 {
		t.Error("win state should clear on reset")
	}

	// Positions intentionally survive a rally reset: the ball keeps
	// flying (one integration step happens on the reset tick) and the
	// paddles stay where they were.
	if g.board.X != boardX || g.cpu.X != cpuX {
		t.Error("paddle positions should not move on reset")
	}
	movedX := g.ball.X - ballX
	movedY := g.ball.Y - ballY
	if movedX > 1.2 || movedX < -1.2 || movedY > 1.1 || movedY < -1.1 {
		t.Errorf("ball jumped on reset: moved (%v, %v)", movedX, movedY)
	}
}

func TestPaddleInputClamping(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	// Walk the paddle right until the clamp stops it
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if g.board.X+g.board.W >= g.arena.Right()+g.cfg.Paddle.MoveStep {
		t.Errorf("paddle escaped right bound: x = %v", g.board.X)
	}

	in.Clear()
	in.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	if g.board.X < g.arena.Left()-g.cfg.Paddle.MoveStep {
		t.Errorf("paddle escaped left bound: x = %v", g.board.X)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := New(VariantDuel)
	g1.Reset(cfg)
	g2 := New(VariantDuel)
	g2.Reset(cfg)

	in := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		in.Clear()
		if i%97 == 0 {
			in.Set(core.ActionLeft)
		}
		if i%131 == 0 {
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

// parkBallForCPU pins the ball past the midline heading toward the CPU
// side, clear of both contact lines, so each tick rolls the reaction
// gate and nothing else moves the paddles.
func parkBallForCPU(g *Game) {
	g.dirY = DirPositive
	g.dirX = DirPositive
	g.ball.X = g.arena.Right() - g.ball.W - 1
	g.ball.Y = g.arena.H*0.5 + 10
}

func TestCPUGateRatio(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	moves := 0
	const ticks = 2000
	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		parkBallForCPU(g)
		g.cpu.X = g.arena.Left() + 20
		before := g.cpu.X
		g.Step(in)
		if g.cpu.X != before {
			moves++
		}
	}

	// The gate lets 4 rolls in 9 through; the expectation over 2000
	// ticks is ~889 moves, checked with generous slack.
	if moves < 750 || moves > 1030 {
		t.Errorf("CPU moved on %d of %d ticks, expected near 4/9", moves, ticks)
	}
}

func TestCPUActivationWindow(t *testing.T) {
	cases := []struct {
		name string
		dirY Direction
		y    float64
	}{
		{"ball heading away", DirNegative, 80},
		{"ball before the midline", DirPositive, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New(VariantDuel)
			g.Reset(testConfig())

			in := core.NewInputFrame()
			for i := 0; i < 500; i++ {
				g.dirY = tc.dirY
				g.dirX = DirPositive
				g.ball.X = g.arena.Right() - g.ball.W - 1
				g.ball.Y = tc.y
				before := g.cpu.X
				g.Step(in)
				if g.cpu.X != before {
					t.Fatalf("CPU moved at tick %d with dirY=%v ball.Y=%v", i, tc.dirY, tc.y)
				}
			}
		})
	}
}

func TestCPUClampedToArena(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	// Chase the ball rightward long enough to hit the edge
	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		parkBallForCPU(g)
		g.Step(in)
	}
	if g.cpu.X+g.cpu.W > g.arena.Right() {
		t.Errorf("CPU escaped right bound: x = %v", g.cpu.X)
	}

	// Now chase it leftward from mid-arena
	g.cpu.X = g.arena.Left() + 40
	for i := 0; i < 2000; i++ {
		g.dirY = DirPositive
		g.dirX = DirNegative
		g.ball.X = g.arena.Left() + 1
		g.ball.Y = g.arena.H*0.5 + 10
		g.Step(in)
	}
	if g.cpu.X < g.arena.Left() {
		t.Errorf("CPU escaped left bound: x = %v", g.cpu.X)
	}
}

func TestCPUContactFlipsBall(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	// Ball overlapping the CPU paddle, past its contact line
	g.dirY = DirPositive
	g.ball.X = g.cpu.X
	g.ball.Y = g.cpu.Y - g.cpu.H + 1

	res := g.Step(core.NewInputFrame())

	if g.dirY != DirNegative {
		t.Error("CPU contact should force dirY negative")
	}
	bounceSeen := false
	for _, e := range res.Events {
		if e == core.EventBounce {
			bounceSeen = true
		}
	}
	if !bounceSeen {
		t.Error("bounce cue not emitted on CPU contact")
	}
}

func TestLevelDerivation(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())

	if got := g.Level(); got != 1 {
		t.Errorf("level at start = %d, expected 1", got)
	}

	stepN(g, 1024)
	if got := g.Level(); got != 2 {
		t.Errorf("level after one ramp = %d, expected 2", got)
	}

	stepN(g, 2048)
	if got := g.Level(); got != 4 {
		t.Errorf("level after three ramps = %d, expected 4", got)
	}
}

func TestResizeRecomputesLayout(t *testing.T) {
	small := core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 40, Seed: 7}
	g := New(VariantDuel)
	g.Reset(small)

	stepN(g, 100)
	if g.Snapshot().Tick != 0 {
		t.Fatal("simulation advanced behind a too-small screen")
	}

	// Growing the window past the minimum resumes the rally
	g.Resize(80, 24)
	if g.screenTooSmall {
		t.Fatal("pause flag still set after growing past the minimum")
	}
	stepN(g, 100)
	if got := g.Snapshot().Tick; got != 100 {
		t.Errorf("tick count after resize = %d, expected 100", got)
	}
	if g.fieldRect.W != 80 {
		t.Errorf("field width after resize = %d, expected 80", g.fieldRect.W)
	}

	// Shrinking mid-rally pauses again without touching the state
	before := g.Snapshot()
	g.Resize(20, 6)
	if !g.screenTooSmall {
		t.Error("pause flag not set after shrinking below the minimum")
	}
	if g.Snapshot() != before {
		t.Error("resize must not touch simulation state")
	}
	stepN(g, 50)
	if got := g.Snapshot().Tick; got != 100 {
		t.Errorf("simulation advanced while paused: tick = %d", got)
	}
}

func TestRenderSmokeAndSmallScreen(t *testing.T) {
	g := New(VariantDuel)
	g.Reset(testConfig())
	stepN(g, 10)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Get(0, 0) != '┌' {
		t.Error("field border not drawn")
	}

	// Tiny screens get a message instead of a field
	small := core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 40, Seed: 1}
	g2 := New(VariantDuel)
	g2.Reset(small)
	tiny := core.NewScreen(20, 6)
	g2.Render(tiny)
	if tiny.String() == "" {
		t.Error("small-screen render produced nothing")
	}
}
