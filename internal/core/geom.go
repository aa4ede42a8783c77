// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world coordinates.
// X grows to the right, Y is the altitude above the ground line.
type Box struct {
	X, Y float64 // Left edge and bottom edge
	W, H float64
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the altitude of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Intersects returns true if this box overlaps with another.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Top() || other.Y >= b.Top() {
		return false
	}
	return true
}

// Circle is a center+radius shape in world coordinates.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// IntersectsBox returns true if the circle overlaps the box.
// The test clamps the center to the box and compares the distance to the radius.
func (c Circle) IntersectsBox(b Box) bool {
	nx := ClampF(c.X, b.X, b.Right())
	ny := ClampF(c.Y, b.Y, b.Top())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < c.R*c.R
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
