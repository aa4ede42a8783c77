package config

import _ "embed"

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default configuration.
// Kept in sync with defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Spawn: SpawnConfig{
			ObstacleIntervalMS:  1500,
			DiscoveryIntervalMS: 5000,
		},
		Scoring: ScoringConfig{
			PassivePerFrame: 0.1,
			DiscoveryBonus:  100,
		},
		Physics: PhysicsConfig{
			Gravity:      0.3,
			JumpImpulse:  2.5,
			MaxFallSpeed: 4.0,
			ScrollSpeed:  0.5,
		},
		Player: PlayerConfig{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Obstacles: ObstacleConfig{
			MinWidth:  1,
			MaxWidth:  3,
			MinHeight: 2,
			MaxHeight: 4,
		},
		Discovery: DiscoveryConfig{
			Radius:      1,
			MinAltitude: 2,
			MaxAltitude: 7,
		},
	}
}
