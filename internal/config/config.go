// Package config provides YAML-based configuration loading for the runner.
package config

import "time"

// RunnerConfig contains all tunables for a Discovery Run session.
type RunnerConfig struct {
	Spawn     SpawnConfig     `yaml:"spawn"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// SpawnConfig defines the minimum time between spawns of each entity kind.
type SpawnConfig struct {
	ObstacleIntervalMS  int `yaml:"obstacle_interval_ms"`
	DiscoveryIntervalMS int `yaml:"discovery_interval_ms"`
}

// ObstacleInterval returns the obstacle spawn interval as a duration.
func (s SpawnConfig) ObstacleInterval() time.Duration {
	return time.Duration(s.ObstacleIntervalMS) * time.Millisecond
}

// DiscoveryInterval returns the discovery point spawn interval as a duration.
func (s SpawnConfig) DiscoveryInterval() time.Duration {
	return time.Duration(s.DiscoveryIntervalMS) * time.Millisecond
}

// ScoringConfig defines how score accrues.
type ScoringConfig struct {
	PassivePerFrame float64 `yaml:"passive_per_frame"`
	DiscoveryBonus  float64 `yaml:"discovery_bonus"`
}

// PhysicsConfig defines character and scroll physics, in cells per frame.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// PlayerConfig defines the character's size and placement.
type PlayerConfig struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// ObstacleConfig defines the size range of spawned obstacles.
type ObstacleConfig struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// DiscoveryConfig defines discovery point shape and altitude range.
type DiscoveryConfig struct {
	Radius      float64 `yaml:"radius"`
	MinAltitude float64 `yaml:"min_altitude"`
	MaxAltitude float64 `yaml:"max_altitude"`
}
