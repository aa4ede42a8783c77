package core

// RuntimeConfig contains host settings passed to a session at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for entity shapes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only view of a session for the platform.
type GameState struct {
	Score       int  // Displayed score (accumulated score truncated)
	GameOver    bool // Whether the run has ended
	Discoveries int  // Discovery points collected this run
	Frames      int  // Running frames simulated this run
}
