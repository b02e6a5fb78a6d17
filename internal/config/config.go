// Package config provides YAML-based game configuration loading and
// difficulty presets for the pong simulation.
package config

// PongConfig contains all tunable parameters for the simulation.
type PongConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Ball      BallConfig      `yaml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Rules     RulesConfig     `yaml:"rules"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ArenaConfig defines the world-space playing field.
// The arena is immutable for the whole session.
type ArenaConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's fixed dimensions.
type BallConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and input response.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	PlayerY  float64 `yaml:"player_y"`  // Fixed row of the player paddle
	CPUY     float64 `yaml:"cpu_y"`     // Fixed row of the CPU paddle
	MoveStep float64 `yaml:"move_step"` // Horizontal step per input event
}

// PhysicsConfig defines speeds and the ramp-up curve.
type PhysicsConfig struct {
	InitialVX    float64 `yaml:"initial_vx"`
	InitialVY    float64 `yaml:"initial_vy"`
	RampInterval int     `yaml:"ramp_interval"` // Ticks between speed bumps; power of two
	RampVX       float64 `yaml:"ramp_vx"`       // Added to vx at each bump
	RampVY       float64 `yaml:"ramp_vy"`       // Added to vy at each bump
	CPUStep      float64 `yaml:"cpu_step"`      // Base CPU paddle step per reaction
}

// RulesConfig defines scoring and the win condition.
type RulesConfig struct {
	WinScore int `yaml:"win_score"`
}

// TelemetryConfig defines the post-win sample stream.
type TelemetryConfig struct {
	Capacity       int `yaml:"capacity"`        // Rolling window size
	SampleInterval int `yaml:"sample_interval"` // Ticks between samples; power of two
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPongPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the config's own values untouched.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.RampInterval = 2048
		cfg.Physics.InitialVX = 0.8
		cfg.Physics.InitialVY = 0.8
	case DifficultyNormal:
		cfg.Physics.RampInterval = 1024
	case DifficultyHard:
		cfg.Physics.RampInterval = 512
		cfg.Physics.InitialVX = 1.2
		cfg.Physics.InitialVY = 1.2
	}
}
