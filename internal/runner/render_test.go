package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderRunning(t *testing.T) {
	f := &fakeFactory{}
	s, _ := newTestSession(config.DefaultRunnerConfig(), f)
	dst := core.NewScreen(80, 24)

	s.Render(dst)

	groundY := 24 - config.DefaultRunnerConfig().Player.GroundOffset
	if !strings.HasPrefix(dst.Row(groundY), string([]rune{GroundChar, GroundChar, GroundChar})) {
		t.Errorf("ground line missing on row %d: %q", groundY, dst.Row(groundY))
	}
	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("score readout missing: %q", dst.Row(0))
	}
	if dst.Get(8, groundY-1) != '@' {
		t.Errorf("character not drawn, got %q", dst.Get(8, groundY-1))
	}
	if strings.Contains(dst.String(), "Game Over!") {
		t.Error("overlay should not be drawn while running")
	}
}

func TestRenderLayersCharacterOnTop(t *testing.T) {
	f := &fakeFactory{}
	clock := core.NewManualClock(0)
	// Obstacles spawn exactly under the character's column
	s := NewSession(config.DefaultRunnerConfig(), f, 8, 24, clock.Now())
	advance(s, clock, 100*time.Millisecond, 16)
	if len(s.Obstacles()) != 1 {
		t.Fatal("expected an obstacle")
	}

	dst := core.NewScreen(20, 24)
	s.Render(dst)

	groundY := 24 - config.DefaultRunnerConfig().Player.GroundOffset
	if dst.Get(8, groundY-1) != '@' {
		t.Errorf("character should be drawn over obstacles, got %q", dst.Get(8, groundY-1))
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	f := &fakeFactory{obstacleOverlap: true}
	s, clock := newTestSession(config.DefaultRunnerConfig(), f)
	advance(s, clock, 100*time.Millisecond, 16)
	if !s.IsOver() {
		t.Fatal("expected game over")
	}

	dst := core.NewScreen(80, 24)
	s.Render(dst)
	out := dst.String()

	for _, want := range []string{"Game Over!", "Final Score: 1", "Tap or press Space to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
	// Scene behind the overlay is dimmed
	if c := dst.GetCell(3, 0); c.Color != core.ColorGray {
		t.Errorf("score readout should be dimmed, got color %d", c.Color)
	}
}

func TestRenderFollowsSurfaceSize(t *testing.T) {
	f := &fakeFactory{}
	s, _ := newTestSession(config.DefaultRunnerConfig(), f)

	small := core.NewScreen(30, 10)
	s.Render(small)
	if small.Get(0, 10-2) != GroundChar {
		t.Errorf("ground should follow the surface height, row %q", small.Row(8))
	}

	// Zero-area surface is a no-op
	s.Render(core.NewScreen(0, 0))
}
