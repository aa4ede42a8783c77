// Package entity provides the terminal implementations of the runner's
// character, obstacles and discovery points.
package entity

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering the character
const (
	BodyChar = '█'
	HeadChar = '◆'
	Leg1Char = '╱'
	Leg2Char = '╲'
)

// Character is the jumping player. Altitude is measured from the ground up.
type Character struct {
	x, width, height float64
	altitude         float64
	vel              float64 // positive = rising
	grounded         bool
	legFrame         int
	physics          config.PhysicsConfig
}

// NewCharacter creates a grounded character from the config.
func NewCharacter(cfg config.RunnerConfig) *Character {
	return &Character{
		x:        float64(cfg.Player.X),
		width:    float64(cfg.Player.Width),
		height:   float64(cfg.Player.Height),
		grounded: true,
		physics:  cfg.Physics,
	}
}

// Jump starts a jump if the character is on the ground.
// While airborne it does nothing; jumps neither stack nor reset the arc.
func (c *Character) Jump() {
	if !c.grounded {
		return
	}
	c.vel = c.physics.JumpImpulse
	c.grounded = false
}

// Update applies gravity and lands the character.
func (c *Character) Update() {
	c.legFrame = (c.legFrame + 1) % 10

	if c.grounded {
		return
	}

	c.vel -= c.physics.Gravity
	if c.vel < -c.physics.MaxFallSpeed {
		c.vel = -c.physics.MaxFallSpeed
	}
	c.altitude += c.vel

	if c.altitude <= 0 {
		c.altitude = 0
		c.vel = 0
		c.grounded = true
	}
}

// Bounds returns the collision box.
func (c *Character) Bounds() core.Box {
	return core.NewBox(c.x, c.altitude, c.width, c.height)
}

// Grounded reports whether the character is standing on the ground.
func (c *Character) Grounded() bool {
	return c.grounded
}

// Altitude returns the height of the character's feet above the ground.
func (c *Character) Altitude() float64 {
	return c.altitude
}

// Draw renders a 3x3 sprite with animated legs.
//
//	 ◆█
//	███
//	╱ ╲
func (c *Character) Draw(dst *core.Screen, groundY int) {
	x := int(c.x)
	top := groundY - int(c.altitude) - int(c.height)
	color := core.ColorGreen

	dst.SetColor(x+1, top, HeadChar, color)
	dst.SetColor(x+2, top, BodyChar, color)

	dst.SetColor(x, top+1, BodyChar, color)
	dst.SetColor(x+1, top+1, BodyChar, color)
	dst.SetColor(x+2, top+1, BodyChar, color)

	switch {
	case !c.grounded:
		// Legs tucked
		dst.SetColor(x, top+2, Leg1Char, color)
		dst.SetColor(x+1, top+2, Leg2Char, color)
	case c.legFrame < 5:
		dst.SetColor(x, top+2, Leg1Char, color)
		dst.SetColor(x+2, top+2, Leg2Char, color)
	default:
		dst.SetColor(x+1, top+2, Leg1Char, color)
		dst.SetColor(x+2, top+2, Leg2Char, color)
	}
}
