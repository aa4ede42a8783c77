package config

import "fmt"

// ValidationError describes a config field holding an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the configuration can drive a session.
// Returns the first problem found.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Spawn.ObstacleIntervalMS > 0, "spawn.obstacle_interval_ms", "must be positive"},
		{c.Spawn.DiscoveryIntervalMS > 0, "spawn.discovery_interval_ms", "must be positive"},
		{c.Scoring.PassivePerFrame >= 0, "scoring.passive_per_frame", "must not be negative"},
		{c.Scoring.DiscoveryBonus >= 0, "scoring.discovery_bonus", "must not be negative"},
		{c.Physics.Gravity > 0, "physics.gravity", "must be positive"},
		{c.Physics.JumpImpulse > 0, "physics.jump_impulse", "must be positive"},
		{c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed", "must be positive"},
		{c.Physics.ScrollSpeed > 0, "physics.scroll_speed", "must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player", "width and height must be positive"},
		{c.Player.GroundOffset >= 0, "player.ground_offset", "must not be negative"},
		{c.Obstacles.MinWidth > 0 && c.Obstacles.MinWidth <= c.Obstacles.MaxWidth, "obstacles.width", "need 0 < min_width <= max_width"},
		{c.Obstacles.MinHeight > 0 && c.Obstacles.MinHeight <= c.Obstacles.MaxHeight, "obstacles.height", "need 0 < min_height <= max_height"},
		{c.Discovery.Radius > 0, "discovery.radius", "must be positive"},
		{c.Discovery.MinAltitude >= 0 && c.Discovery.MinAltitude <= c.Discovery.MaxAltitude, "discovery.altitude", "need 0 <= min_altitude <= max_altitude"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}
	return nil
}
