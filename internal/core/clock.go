package core

import "time"

// Clock is a monotonic time source. The session queries it once per frame.
type Clock interface {
	Now() time.Duration
}

// SystemClock reports monotonic time elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
// time.Since uses the monotonic reading, so wall clock jumps do not leak in.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a manual clock at the given time.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
