package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default simulation configuration.
// Geometry matches the classic 150x100 arena with 10-unit margins.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			X:      10,
			Y:      10,
			Width:  150,
			Height: 100,
		},
		Ball: BallConfig{
			Width:  5,
			Height: 5,
		},
		Paddle: PaddleConfig{
			Width:    10,
			Height:   3,
			PlayerY:  10,
			CPUY:     105,
			MoveStep: 5,
		},
		Physics: PhysicsConfig{
			InitialVX:    1.0,
			InitialVY:    1.0,
			RampInterval: 1024,
			RampVX:       0.2,
			RampVY:       0.1,
			CPUStep:      4.0,
		},
		Rules: RulesConfig{
			WinScore: 10,
		},
		Telemetry: TelemetryConfig{
			Capacity:       200,
			SampleInterval: 16,
		},
	}
}
