// Package game implements the pong rally simulation: a ball bouncing
// between a player paddle and (in the duel variant) a CPU paddle inside
// a fixed arena, with an ever-accelerating rally and a win threshold.
package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/signal"
)

// Direction is the travel direction along one axis. It is toggled on
// contact and read independently of velocity, which stays positive.
type Direction int

const (
	DirNegative Direction = iota
	DirPositive
)

// Flipped returns the opposite direction.
func (d Direction) Flipped() Direction {
	if d == DirPositive {
		return DirNegative
	}
	return DirPositive
}

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the rally simulation for one variant.
// All state is owned here; a single control loop mutates it.
type Game struct {
	variant Variant

	// World objects
	arena     core.RectF
	ball      core.RectF
	ballColor core.Color
	board     core.RectF // Player paddle
	cpu       core.RectF // CPU paddle (duel only)

	// Motion state. vx and vy never decrease; rx is a transient jitter
	// rerolled on each vertical-bound bounce and added to vx.
	vx, vy, rx float64
	dirX, dirY Direction

	// Counters
	score     int
	tickCount uint64
	bump      int // Progress toward the next speed bump, percent
	bumpTick  uint64

	// Entropy and telemetry
	sig    *signal.RandomSignal
	stream *signal.Stream
	rng    *rand.Rand // CPU reaction gate and serve placement

	// Win latch
	win     bool
	winTime float64 // Seconds, captured once on the win transition

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.PongConfig

	// Screen layout (computed from screen size)
	fieldRect      core.Rect // Play area on screen, border included
	hudRect        core.Rect // Bottom HUD strip
	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Cue events emitted by the current tick
	events []core.Event
}

// nextPow2 returns the smallest power of two >= n, minimum 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// New creates a new rally game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the capability set this game was built with.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset initializes or restarts the whole game, including positions.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPongPreset(&cfg, difficultyPreset)
	}
	// Ramp and telemetry cadence checks mask the tick counter, so the
	// intervals must be powers of two. Round stray config values up.
	cfg.Physics.RampInterval = nextPow2(cfg.Physics.RampInterval)
	cfg.Telemetry.SampleInterval = nextPow2(cfg.Telemetry.SampleInterval)
	if cfg.Telemetry.Capacity < 1 {
		cfg.Telemetry.Capacity = config.DefaultPongConfig().Telemetry.Capacity
	}
	if cfg.Rules.WinScore < 1 {
		cfg.Rules.WinScore = config.DefaultPongConfig().Rules.WinScore
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sig = signal.NewRandomSignal(runtime.Seed, 0, 100)
	g.stream = signal.NewStream(cfg.Telemetry.Capacity)
	g.stream.Fill(g.sig)

	g.arena = core.NewRectF(cfg.Arena.X, cfg.Arena.Y, cfg.Arena.Width, cfg.Arena.Height)
	g.board = core.NewRectF(cfg.Arena.X, cfg.Paddle.PlayerY, cfg.Paddle.Width, cfg.Paddle.Height)
	g.cpu = core.NewRectF(cfg.Arena.X, cfg.Paddle.CPUY, cfg.Paddle.Width, cfg.Paddle.Height)

	// Serve from a random spot inside the arena
	g.ball = core.NewRectF(
		g.arena.Left()+g.rng.Float64()*(g.arena.W*0.5),
		g.arena.Top()+g.rng.Float64()*(g.arena.H*0.9),
		cfg.Ball.Width,
		cfg.Ball.Height,
	)
	g.ballColor = core.ColorRed

	g.vx = cfg.Physics.InitialVX
	g.vy = cfg.Physics.InitialVY
	g.rx = 0
	g.dirX = DirPositive
	g.dirY = DirPositive

	g.score = 0
	g.tickCount = 0
	g.bump = 0
	g.bumpTick = 0

	g.win = false
	g.winTime = 0

	g.calculateLayout()
}

// Resize recomputes the screen layout for new terminal dimensions.
// Simulation state is untouched; a rally paused behind a too-small
// screen resumes once the window grows past the minimum.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

// rallyReset restores counters and speeds to their initial values.
// Ball and paddle positions are deliberately left where they are; the
// rally continues from the current geometry with fresh counters.
func (g *Game) rallyReset() {
	g.vx = g.cfg.Physics.InitialVX
	g.vy = g.cfg.Physics.InitialVY
	g.rx = 0
	g.score = 0
	g.tickCount = 0
	g.bump = 0
	g.bumpTick = 0
	g.win = false
	g.winTime = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) {
		g.rallyReset()
	}

	// Player paddle moves only on discrete input, clamped to the arena.
	if in.Has(core.ActionRight) && g.board.X+g.board.W < g.arena.Right() {
		g.board.X += g.cfg.Paddle.MoveStep
	}
	if in.Has(core.ActionLeft) && g.board.X > g.arena.Left() {
		g.board.X -= g.cfg.Paddle.MoveStep
	}

	if !g.screenTooSmall {
		g.advanceTick()
	}

	// Win latch: set once, cleared only by an explicit reset.
	if g.score >= g.cfg.Rules.WinScore && !g.win {
		g.winTime = float64(g.tickCount) / float64(g.runtime.TickRate)
		g.emit(core.EventVictory)
		g.win = true
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// emit records a cue event for this tick. Variants without the audio
// capability run silent and emit nothing.
func (g *Game) emit(e core.Event) {
	if !g.variant.Audio {
		return
	}
	g.events = append(g.events, e)
}

// Level derives the display level from the current horizontal speed:
// the number of speed bumps taken so far, plus one. Rounding absorbs
// the drift the repeated float additions accumulate.
func (g *Game) Level() int {
	return int(math.Round((g.vx-g.cfg.Physics.InitialVX)/g.cfg.Physics.RampVX)) + 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Level:   g.Level(),
		Won:     g.win,
		WinTime: g.winTime,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(VariantDuel.ID, func() registry.Game {
		return New(VariantDuel)
	})
	registry.Register(VariantClassic.ID, func() registry.Game {
		return New(VariantClassic)
	})
}
