package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Factory builds entities from the config. Shapes are drawn from a seeded
// source so the same seed gives the same sequence of obstacles and markers.
type Factory struct {
	cfg config.RunnerConfig
	rng *rand.Rand
}

// NewFactory creates a factory with the given RNG seed.
func NewFactory(cfg config.RunnerConfig, seed int64) *Factory {
	return &Factory{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewCharacter creates a fresh grounded character.
func (f *Factory) NewCharacter() runner.Character {
	return NewCharacter(f.cfg)
}

// NewObstacle creates an obstacle entering at the right edge.
func (f *Factory) NewObstacle(screenW int) runner.Obstacle {
	oc := f.cfg.Obstacles
	return &Obstacle{
		X:      float64(screenW),
		Width:  float64(f.between(oc.MinWidth, oc.MaxWidth)),
		Height: float64(f.between(oc.MinHeight, oc.MaxHeight)),
		Speed:  f.cfg.Physics.ScrollSpeed,
	}
}

// NewDiscoveryPoint creates a marker entering at the right edge.
func (f *Factory) NewDiscoveryPoint(screenW int) runner.DiscoveryPoint {
	dc := f.cfg.Discovery
	altitude := dc.MinAltitude
	if dc.MaxAltitude > dc.MinAltitude {
		altitude += f.rng.Float64() * (dc.MaxAltitude - dc.MinAltitude)
	}
	return &DiscoveryPoint{
		X:        float64(screenW) + dc.Radius,
		Altitude: altitude,
		Radius:   dc.Radius,
		Speed:    f.cfg.Physics.ScrollSpeed,
	}
}

// between returns a random int in [min, max].
func (f *Factory) between(min, max int) int {
	if max <= min {
		return min
	}
	return min + f.rng.Intn(max-min+1)
}

var _ runner.Factory = (*Factory)(nil)
