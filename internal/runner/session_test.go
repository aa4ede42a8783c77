package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestNewSessionInitialState(t *testing.T) {
	f := &fakeFactory{speed: 0.5}
	s, _ := newTestSession(config.DefaultRunnerConfig(), f)

	if s.IsOver() {
		t.Error("new session should be running")
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %f, expected 0", s.Score())
	}
	if len(s.Obstacles()) != 0 || len(s.DiscoveryPoints()) != 0 {
		t.Error("new session should have no scrollers")
	}
	if len(f.characters) != 1 {
		t.Errorf("expected 1 character created, got %d", len(f.characters))
	}
}

func TestSessionSpawnTiming(t *testing.T) {
	f := &fakeFactory{}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	for frame := 1; frame <= 60; frame++ {
		advance(s, clock, 100*time.Millisecond, 1)
		now := clock.Now()

		wantObstacles := int(now / (1600 * time.Millisecond))
		if got := len(s.Obstacles()); got != wantObstacles {
			t.Fatalf("at %v: %d obstacles, expected %d", now, got, wantObstacles)
		}

		wantPoints := 0
		if now >= 5100*time.Millisecond {
			wantPoints = 1
		}
		if got := len(s.DiscoveryPoints()); got != wantPoints {
			t.Fatalf("at %v: %d discovery points, expected %d", now, got, wantPoints)
		}
	}
}

func TestScenarioFirstObstacleNoOverlap(t *testing.T) {
	f := &fakeFactory{speed: 0.5}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	advance(s, clock, 10*time.Millisecond, 160)

	if len(s.Obstacles()) != 1 {
		t.Fatalf("expected exactly one obstacle, got %d", len(s.Obstacles()))
	}
	if s.IsOver() {
		t.Error("run should still be going")
	}
	if math.Abs(s.Score()-16) > 1e-9 {
		t.Errorf("Score() = %f, expected 16 (160 frames x 0.1)", s.Score())
	}
	if s.State().Frames != 160 {
		t.Errorf("Frames = %d, expected 160", s.State().Frames)
	}
}

func TestObstacleCollisionFreezesState(t *testing.T) {
	f := &fakeFactory{speed: 0.5, obstacleOverlap: true}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	// Obstacle spawns and collides on frame 16
	advance(s, clock, 100*time.Millisecond, 15)
	if s.IsOver() {
		t.Fatal("run ended before any obstacle existed")
	}
	advance(s, clock, 100*time.Millisecond, 1)
	if !s.IsOver() {
		t.Fatal("run should be over on the collision frame")
	}

	score := s.Score()
	state := s.State()
	o := f.obstacles[0]
	x, updates := o.x, o.updates
	charUpdates := f.characters[0].updates

	advance(s, clock, 100*time.Millisecond, 50)

	if s.Score() != score {
		t.Errorf("score changed after game over: %f -> %f", score, s.Score())
	}
	if s.State() != state {
		t.Errorf("state changed after game over: %+v -> %+v", state, s.State())
	}
	if o.x != x || o.updates != updates {
		t.Error("obstacle moved after game over")
	}
	if f.characters[0].updates != charUpdates {
		t.Error("character updated after game over")
	}
	if len(f.obstacles) != 1 || len(f.discoveries) != 0 {
		t.Error("spawning continued after game over")
	}
	if s.Duration(clock.Now()) != 1600*time.Millisecond {
		t.Errorf("Duration() = %v, expected run length 1.6s", s.Duration(clock.Now()))
	}
}

func TestDiscoveryCollectedExactlyOnce(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Scoring.PassivePerFrame = 0
	cfg.Spawn.ObstacleIntervalMS = 1_000_000 // keep obstacles out of the way

	f := &fakeFactory{speed: 0.1, discoveryOverlap: true}
	s, clock := newTestSession(cfg, f)

	advance(s, clock, 100*time.Millisecond, 51)
	if len(f.discoveries) != 1 {
		t.Fatalf("expected one discovery point, got %d", len(f.discoveries))
	}
	if s.Score() != 100 {
		t.Fatalf("Score() = %f, expected 100 after first overlap", s.Score())
	}

	// Still overlapping for 10 more frames
	advance(s, clock, 100*time.Millisecond, 10)

	if s.Score() != 100 {
		t.Errorf("Score() = %f, expected bonus awarded once (100)", s.Score())
	}
	p := f.discoveries[0]
	if !p.collected {
		t.Error("point should be marked collected")
	}
	if p.tests != 1 {
		t.Errorf("collected point was tested %d times, expected 1", p.tests)
	}
	if len(s.DiscoveryPoints()) != 1 {
		t.Error("collected point should stay until it scrolls off")
	}
	if s.State().Discoveries != 1 {
		t.Errorf("Discoveries = %d, expected 1", s.State().Discoveries)
	}
}

func TestCollisionCheckedAfterMove(t *testing.T) {
	f := &fakeFactory{speed: 1}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	advance(s, clock, 100*time.Millisecond, 20)

	o := f.obstacles[0]
	for i, u := range o.updatesAtTests {
		if u != i+1 {
			t.Fatalf("test %d ran after %d updates, expected %d", i, u, i+1)
		}
	}
}

func TestScoreNonDecreasing(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.DiscoveryIntervalMS = 700

	f := &fakeFactory{speed: 2, discoveryOverlap: true}
	s, clock := newTestSession(cfg, f)

	prev := s.Score()
	for i := 0; i < 500; i++ {
		advance(s, clock, 16*time.Millisecond, 1)
		if s.Score() < prev {
			t.Fatalf("score decreased at frame %d: %f -> %f", i, prev, s.Score())
		}
		prev = s.Score()
	}
	if s.State().Discoveries == 0 {
		t.Error("expected some discoveries to be collected")
	}
}

func TestEntityRemovalAtLeftEdge(t *testing.T) {
	f := &fakeFactory{speed: 1}
	clock := core.NewManualClock(0)
	s := NewSession(config.DefaultRunnerConfig(), f, 4, 24, clock.Now())

	advance(s, clock, 100*time.Millisecond, 16)
	if len(f.obstacles) != 1 {
		t.Fatalf("expected obstacle spawned, got %d", len(f.obstacles))
	}
	o := f.obstacles[0]

	for i := 0; i < 10; i++ {
		_, right := o.Span()
		present := len(s.Obstacles()) == 1
		if right > 0 && !present {
			t.Fatalf("obstacle removed early with right edge %f", right)
		}
		if right <= 0 && present {
			t.Fatalf("obstacle kept with right edge %f", right)
		}
		advance(s, clock, 100*time.Millisecond, 1)
	}
	if len(s.Obstacles()) != 0 {
		t.Error("obstacle should be gone after leaving the screen")
	}
}

func TestSignalJumpsWhileRunning(t *testing.T) {
	f := &fakeFactory{}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	s.Signal(clock.Now())
	s.Signal(clock.Now())
	s.Signal(clock.Now())

	if f.characters[0].jumps != 3 {
		t.Errorf("jumps = %d, expected every signal passed through", f.characters[0].jumps)
	}
	if len(f.characters) != 1 {
		t.Error("signal while running should not restart")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.DiscoveryIntervalMS = 1000

	f := &fakeFactory{speed: 0.1, obstacleOverlap: true, discoveryOverlap: true}
	s, clock := newTestSession(cfg, f)

	advance(s, clock, 100*time.Millisecond, 20)
	if !s.IsOver() {
		t.Fatal("expected game over before restart")
	}
	if s.Score() == 0 || len(s.Obstacles()) == 0 || len(s.DiscoveryPoints()) == 0 {
		t.Fatal("expected a non-trivial session before restart")
	}
	oldChar := s.Character()

	clock.Advance(time.Second)
	restartAt := clock.Now()
	s.Signal(restartAt)

	if s.IsOver() {
		t.Error("restart should resume running")
	}
	if s.Score() != 0 {
		t.Errorf("Score() after restart = %f, expected 0", s.Score())
	}
	if len(s.Obstacles()) != 0 || len(s.DiscoveryPoints()) != 0 {
		t.Error("restart should empty the scroller sequences")
	}
	if s.Character() == oldChar {
		t.Error("restart should replace the character")
	}
	if f.characters[0].jumps != 0 {
		t.Error("restart signal should not be passed to the old character")
	}
	if st := s.State(); st.Discoveries != 0 || st.Frames != 0 {
		t.Errorf("run stats not reset: %+v", st)
	}

	// First obstacle only after a full interval from restart
	spawned := len(f.obstacles)
	advance(s, clock, 100*time.Millisecond, 15)
	if len(f.obstacles) != spawned {
		t.Error("obstacle spawned before interval elapsed after restart")
	}
	advance(s, clock, 100*time.Millisecond, 1)
	if len(f.obstacles) != spawned+1 {
		t.Error("obstacle should spawn 1.6s after restart")
	}
}

func TestRestartIsIdempotent(t *testing.T) {
	f := &fakeFactory{speed: 0.5}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	advance(s, clock, 100*time.Millisecond, 30)
	s.Restart(clock.Now())
	s.Restart(clock.Now())

	if s.IsOver() || s.Score() != 0 || len(s.Obstacles()) != 0 || len(s.DiscoveryPoints()) != 0 {
		t.Errorf("unexpected state after double restart: %+v", s.State())
	}
}

func TestResizeIgnoresDegenerateSizes(t *testing.T) {
	f := &fakeFactory{}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)

	s.Resize(0, 0)
	s.Resize(-5, 10)
	advance(s, clock, 100*time.Millisecond, 16)

	if f.obstacles[0].x != 80 {
		t.Errorf("obstacle spawned at %f, expected last valid width 80", f.obstacles[0].x)
	}

	s.Resize(120, 40)
	advance(s, clock, 100*time.Millisecond, 16)
	if f.obstacles[1].x != 120 {
		t.Errorf("obstacle spawned at %f, expected new width 120", f.obstacles[1].x)
	}
}
