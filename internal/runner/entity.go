package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Entity is anything the loop advances and draws once per frame.
type Entity interface {
	// Update advances the entity by one frame.
	Update()

	// Draw renders the entity. groundY is the screen row of the ground line;
	// altitude 0 sits on the row just above it.
	Draw(dst *core.Screen, groundY int)
}

// Character is the player-controlled entity.
type Character interface {
	Entity

	// Jump starts a jump. Implementations ignore it while airborne.
	Jump()

	// Bounds returns the current collision box in world coordinates.
	Bounds() core.Box
}

// Scroller is an entity that travels toward the left edge and is dropped
// once it has fully left the screen.
type Scroller interface {
	Entity

	// IsColliding reports whether the entity overlaps the character.
	IsColliding(c Character) bool

	// Span returns the horizontal extent of the entity.
	Span() (left, right float64)
}

// Obstacle ends the run on contact.
type Obstacle interface {
	Scroller
}

// DiscoveryPoint awards a bonus the first time it is touched.
type DiscoveryPoint interface {
	Scroller

	IsCollected() bool
	MarkCollected()
}

// Factory creates the entities of a session.
// screenW is the surface width at spawn time; new scrollers enter from there.
type Factory interface {
	NewCharacter() Character
	NewObstacle(screenW int) Obstacle
	NewDiscoveryPoint(screenW int) DiscoveryPoint
}

// offScreen reports whether a scroller's trailing edge has passed the left boundary.
func offScreen(s Scroller) bool {
	_, right := s.Span()
	return right <= 0
}
