package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

type fakeCharacter struct {
	box     core.Box
	updates int
	jumps   int
}

func (c *fakeCharacter) Update()          { c.updates++ }
func (c *fakeCharacter) Jump()            { c.jumps++ }
func (c *fakeCharacter) Bounds() core.Box { return c.box }

func (c *fakeCharacter) Draw(dst *core.Screen, groundY int) {
	dst.SetColor(int(c.box.X), groundY-1, '@', core.ColorGreen)
}

// fakeScroller serves as both obstacle and discovery point. Overlap is forced
// by the test instead of computed from geometry.
type fakeScroller struct {
	glyph     rune
	x, w      float64
	speed     float64
	overlap   bool
	collected bool

	updates        int
	tests          int
	updatesAtTests []int
}

func (f *fakeScroller) Update() {
	f.x -= f.speed
	f.updates++
}

func (f *fakeScroller) IsColliding(Character) bool {
	f.tests++
	f.updatesAtTests = append(f.updatesAtTests, f.updates)
	return f.overlap
}

func (f *fakeScroller) Span() (float64, float64) { return f.x, f.x + f.w }
func (f *fakeScroller) IsCollected() bool        { return f.collected }
func (f *fakeScroller) MarkCollected()           { f.collected = true }

func (f *fakeScroller) Draw(dst *core.Screen, groundY int) {
	dst.SetColor(int(f.x), groundY-1, f.glyph, core.ColorDefault)
}

type fakeFactory struct {
	speed            float64
	obstacleOverlap  bool
	discoveryOverlap bool

	characters  []*fakeCharacter
	obstacles   []*fakeScroller
	discoveries []*fakeScroller
}

func (f *fakeFactory) NewCharacter() Character {
	c := &fakeCharacter{box: core.NewBox(8, 0, 3, 3)}
	f.characters = append(f.characters, c)
	return c
}

func (f *fakeFactory) NewObstacle(screenW int) Obstacle {
	o := &fakeScroller{glyph: '#', x: float64(screenW), w: 2, speed: f.speed, overlap: f.obstacleOverlap}
	f.obstacles = append(f.obstacles, o)
	return o
}

func (f *fakeFactory) NewDiscoveryPoint(screenW int) DiscoveryPoint {
	p := &fakeScroller{glyph: '*', x: float64(screenW), w: 1, speed: f.speed, overlap: f.discoveryOverlap}
	f.discoveries = append(f.discoveries, p)
	return p
}

// newTestSession creates a session at time zero on an 80x24 surface.
func newTestSession(cfg config.RunnerConfig, f *fakeFactory) (*Session, *core.ManualClock) {
	clock := core.NewManualClock(0)
	return NewSession(cfg, f, 80, 24, clock.Now()), clock
}

// advance runs frames ticks, moving the clock by step before each one.
func advance(s *Session, clock *core.ManualClock, step time.Duration, frames int) {
	for i := 0; i < frames; i++ {
		clock.Advance(step)
		s.Tick(clock.Now())
	}
}
