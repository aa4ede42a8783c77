package runner

import "time"

// Spawner is a fixed-rate gate for one entity kind. It fires on the first
// frame where strictly more than interval has elapsed since the last spawn.
type Spawner struct {
	interval time.Duration
	last     time.Duration
}

// NewSpawner creates a spawner whose first spawn is due one interval after now.
func NewSpawner(interval time.Duration, now time.Duration) *Spawner {
	s := &Spawner{interval: interval}
	s.Reset(now)
	return s
}

// Reset arms the spawner as if nothing has been spawned since now.
func (s *Spawner) Reset(now time.Duration) {
	s.last = now
}

// Due reports whether a spawn should happen at now.
func (s *Spawner) Due(now time.Duration) bool {
	return now-s.last > s.interval
}

// Poll returns true and records the spawn when one is due.
func (s *Spawner) Poll(now time.Duration) bool {
	if !s.Due(now) {
		return false
	}
	s.last = now
	return true
}

// Last returns the time of the last spawn, or the reset time if none happened.
func (s *Spawner) Last() time.Duration {
	return s.last
}

// Interval returns the minimum time between spawns.
func (s *Spawner) Interval() time.Duration {
	return s.interval
}
