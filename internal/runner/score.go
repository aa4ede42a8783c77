package runner

import "math"

// Score accumulates passive per-frame gain and discovery bonuses.
// It never decreases and has no cap.
type Score struct {
	value   float64
	passive float64
	bonus   float64
}

// NewScore creates a zeroed score with the given increments.
func NewScore(passive, bonus float64) Score {
	return Score{passive: passive, bonus: bonus}
}

// Accrue adds the passive increment for one running frame.
func (s *Score) Accrue() {
	s.value += s.passive
}

// Collect adds one discovery bonus.
func (s *Score) Collect() {
	s.value += s.bonus
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
}

// Value returns the accumulated real-valued score.
func (s Score) Value() float64 {
	return s.value
}

// Display returns the score as shown to the player.
func (s Score) Display() int {
	return int(math.Floor(s.value))
}
