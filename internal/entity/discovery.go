package entity

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Discovery marker runes
const (
	DiscoveryChar = '◆'
	CollectedChar = '◇'
)

// DiscoveryPoint is a floating bonus marker.
type DiscoveryPoint struct {
	X         float64 // Center
	Altitude  float64 // Center height above ground
	Radius    float64
	Speed     float64
	collected bool
}

// Update scrolls the point left by one frame.
func (p *DiscoveryPoint) Update() {
	p.X -= p.Speed
}

// Shape returns the collision circle.
func (p *DiscoveryPoint) Shape() core.Circle {
	return core.Circle{X: p.X, Y: p.Altitude, R: p.Radius}
}

// IsColliding reports whether the point overlaps the character.
func (p *DiscoveryPoint) IsColliding(c runner.Character) bool {
	return p.Shape().IntersectsBox(c.Bounds())
}

// Span returns the horizontal extent.
func (p *DiscoveryPoint) Span() (float64, float64) {
	return p.X - p.Radius, p.X + p.Radius
}

// IsCollected reports whether the bonus was already awarded.
func (p *DiscoveryPoint) IsCollected() bool {
	return p.collected
}

// MarkCollected flags the point as awarded.
func (p *DiscoveryPoint) MarkCollected() {
	p.collected = true
}

// Draw renders the marker; collected markers are hollow and gray.
func (p *DiscoveryPoint) Draw(dst *core.Screen, groundY int) {
	y := groundY - 1 - int(p.Altitude)
	if p.collected {
		dst.SetColor(int(p.X), y, CollectedChar, core.ColorGray)
		return
	}
	dst.SetColor(int(p.X), y, DiscoveryChar, core.ColorBrightYellow)
}
