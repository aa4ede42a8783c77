// Package runner implements the Discovery Run game loop: time-gated spawning,
// per-frame entity updates, collision resolution, scoring and the
// running/game-over state machine with restart.
//
// A Session is driven by a host that calls Tick once per display frame and
// Render after it. All methods must be called from a single goroutine.
package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Session is the mutable state of one run and everything needed to restart it.
type Session struct {
	cfg     config.RunnerConfig
	factory Factory

	character   Character
	obstacles   []Obstacle
	discoveries []DiscoveryPoint

	obstacleSpawner  *Spawner
	discoverySpawner *Spawner

	score     Score
	over      bool
	collected int // discovery points collected this run
	frames    int // running frames this run
	startedAt time.Duration
	endedAt   time.Duration

	screenW int
	screenH int
}

// NewSession starts a run at now on a surface of the given size.
func NewSession(cfg config.RunnerConfig, factory Factory, screenW, screenH int, now time.Duration) *Session {
	s := &Session{
		cfg:              cfg,
		factory:          factory,
		obstacleSpawner:  NewSpawner(cfg.Spawn.ObstacleInterval(), now),
		discoverySpawner: NewSpawner(cfg.Spawn.DiscoveryInterval(), now),
		score:            NewScore(cfg.Scoring.PassivePerFrame, cfg.Scoring.DiscoveryBonus),
	}
	s.Resize(screenW, screenH)
	s.Restart(now)
	return s
}

// Restart discards the current run and begins a fresh one at now.
// The character is replaced, never reused, and both spawn timers restart
// so the first spawns come one full interval later.
func (s *Session) Restart(now time.Duration) {
	s.character = s.factory.NewCharacter()
	s.obstacles = nil
	s.discoveries = nil
	s.obstacleSpawner.Reset(now)
	s.discoverySpawner.Reset(now)
	s.score.Reset()
	s.over = false
	s.collected = 0
	s.frames = 0
	s.startedAt = now
	s.endedAt = 0
}

// Signal handles the jump/restart input. While running it is passed to the
// character every time; after game over it restarts the run.
func (s *Session) Signal(now time.Duration) {
	if s.over {
		s.Restart(now)
		return
	}
	s.character.Jump()
}

// Resize records the surface size used for spawn positions.
// Degenerate sizes are ignored so spawns keep a sane entry point.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.screenW = w
	s.screenH = h
}

// Tick advances the run by one frame. It does nothing after game over.
func (s *Session) Tick(now time.Duration) {
	if s.over {
		return
	}

	s.character.Update()

	if s.obstacleSpawner.Poll(now) {
		s.obstacles = append(s.obstacles, s.factory.NewObstacle(s.screenW))
	}
	if s.discoverySpawner.Poll(now) {
		s.discoveries = append(s.discoveries, s.factory.NewDiscoveryPoint(s.screenW))
	}

	// Collision is checked right after each entity moves, against this
	// frame's character position.
	for _, o := range s.obstacles {
		o.Update()
		s.resolveObstacle(o)
	}
	for _, p := range s.discoveries {
		p.Update()
		s.resolveDiscovery(p)
	}

	s.obstacles = compact(s.obstacles)
	s.discoveries = compact(s.discoveries)

	s.score.Accrue()
	s.frames++

	if s.over {
		s.endedAt = now
	}
}

// compact drops entities that have left the screen, keeping order.
func compact[T Scroller](entities []T) []T {
	kept := entities[:0]
	for _, e := range entities {
		if !offScreen(e) {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped entities can be collected
	var zero T
	for i := len(kept); i < len(entities); i++ {
		entities[i] = zero
	}
	return kept
}

// IsOver reports whether the run has ended.
func (s *Session) IsOver() bool {
	return s.over
}

// Score returns the accumulated real-valued score.
func (s *Session) Score() float64 {
	return s.score.Value()
}

// Character returns the current character.
func (s *Session) Character() Character {
	return s.character
}

// Obstacles returns the live obstacles, oldest first.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// DiscoveryPoints returns the live discovery points, oldest first.
func (s *Session) DiscoveryPoints() []DiscoveryPoint {
	return s.discoveries
}

// Duration returns how long the run lasted, or has lasted so far at now.
func (s *Session) Duration(now time.Duration) time.Duration {
	if s.over {
		return s.endedAt - s.startedAt
	}
	return now - s.startedAt
}

// State returns a snapshot for the platform layer.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:       s.score.Display(),
		GameOver:    s.over,
		Discoveries: s.collected,
		Frames:      s.frames,
	}
}
