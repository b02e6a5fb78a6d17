package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 40, i.e. 25ms per tick)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 40,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int     // Current score
	Level   int     // Derived speed level
	Won     bool    // Whether the win threshold has been reached
	WinTime float64 // Elapsed seconds at the moment of winning (0 until won)
}

// Event is a side effect emitted by a simulation tick, consumed by
// platform collaborators (audio). The simulation never blocks on them.
type Event int

const (
	EventBounce Event = iota // Ball returned by a paddle
	EventVictory             // Win threshold reached
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
