package runner

// resolveObstacle ends the run if the obstacle touches the character.
// Repeated hits are harmless since the flag only ever goes one way.
func (s *Session) resolveObstacle(o Obstacle) {
	if o.IsColliding(s.character) {
		s.over = true
	}
}

// resolveDiscovery awards the bonus on the first touch of a point.
// Collected points are never tested again.
func (s *Session) resolveDiscovery(p DiscoveryPoint) {
	if p.IsCollected() {
		return
	}
	if p.IsColliding(s.character) {
		p.MarkCollected()
		s.score.Collect()
		s.collected++
	}
}
