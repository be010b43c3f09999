// Package metrics observes headless runs: engines expose aggregate
// physical quantities per frame and metrics reduce them over a run.
package metrics

// Sample is one frame's aggregate physical state.
type Sample struct {
	Entities      int
	TotalMass     float64
	Momentum      float64
	KineticEnergy float64
}

// Sampler is implemented by engines that can report a Sample.
type Sampler interface {
	Sample() Sample
}

// Metric reduces per-frame samples to one number over a run.
type Metric interface {
	Name() string
	Observe(s Sample, t float64)
	Value() float64
	Reset()
}
