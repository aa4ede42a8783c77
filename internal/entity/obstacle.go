package entity

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// ObstacleChar is the fill rune for obstacles.
const ObstacleChar = '▓'

// Obstacle is a ground block the character must jump over.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Speed  float64 // Cells per frame toward the left
}

// Update scrolls the obstacle left by one frame.
func (o *Obstacle) Update() {
	o.X -= o.Speed
}

// Bounds returns the collision box. Obstacles stand on the ground.
func (o *Obstacle) Bounds() core.Box {
	return core.NewBox(o.X, 0, o.Width, o.Height)
}

// IsColliding reports whether the obstacle overlaps the character.
func (o *Obstacle) IsColliding(c runner.Character) bool {
	return o.Bounds().Intersects(c.Bounds())
}

// Span returns the horizontal extent.
func (o *Obstacle) Span() (float64, float64) {
	return o.X, o.X + o.Width
}

// Draw fills the obstacle's cells above the ground line.
func (o *Obstacle) Draw(dst *core.Screen, groundY int) {
	h := int(o.Height)
	w := int(o.Width)
	dst.DrawRect(core.NewRect(int(o.X), groundY-h, w, h), ObstacleChar, core.ColorRed)
}
