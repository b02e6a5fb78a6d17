package game

// ScoringPolicy selects how vertical-bound crossings affect the score.
type ScoringPolicy int

const (
	// ScoringNone bounces the ball off both vertical bounds without
	// touching the score. No rally can ever be won under this policy.
	ScoringNone ScoringPolicy = iota

	// ScoringWalls scores at the vertical bounds: reaching the far
	// (CPU-side) bound earns a point, falling past the near bound
	// loses one, floored at zero.
	ScoringWalls
)

// Variant is a capability set describing one playable configuration.
// The three historical builds of this game (plain bouncer, audio
// bouncer, CPU duel) collapse into two variants of a single engine.
type Variant struct {
	ID          string
	Title       string
	CPUOpponent bool
	Scoring     ScoringPolicy
	Audio       bool
}

// VariantDuel is the full game: CPU opponent, wall scoring, sound cues.
var VariantDuel = Variant{
	ID:          "duel",
	Title:       "Pong Duel",
	CPUOpponent: true,
	Scoring:     ScoringWalls,
	Audio:       true,
}

// VariantClassic is the plain bouncer: one paddle, no scoring, silent.
var VariantClassic = Variant{
	ID:          "classic",
	Title:       "Pong Classic",
	CPUOpponent: false,
	Scoring:     ScoringNone,
	Audio:       false,
}
