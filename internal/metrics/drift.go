package metrics

import "math"

// MomentumDrift tracks the maximum relative deviation of total
// momentum from its value on the first observed frame. Near zero for
// a gravity-only run; collisions with damping make it grow.
type MomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(s Sample, t float64) {
	if m.samples == 0 {
		m.initial = s.Momentum
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(s.Momentum-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// MeanKineticEnergy averages kinetic energy over the run.
type MeanKineticEnergy struct {
	name    string
	sum     float64
	samples int
}

func NewMeanKineticEnergy() *MeanKineticEnergy {
	return &MeanKineticEnergy{name: "mean_kinetic_energy"}
}

func (m *MeanKineticEnergy) Name() string { return m.name }

func (m *MeanKineticEnergy) Observe(s Sample, t float64) {
	m.sum += s.KineticEnergy
	m.samples++
}

func (m *MeanKineticEnergy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanKineticEnergy) Reset() {
	m.sum = 0
	m.samples = 0
}

// FinalEntities reports the entity count on the last observed frame,
// which shrinks as merges consume particles.
type FinalEntities struct {
	name string
	last int
}

func NewFinalEntities() *FinalEntities {
	return &FinalEntities{name: "final_entities"}
}

func (m *FinalEntities) Name() string { return m.name }

func (m *FinalEntities) Observe(s Sample, t float64) { m.last = s.Entities }

func (m *FinalEntities) Value() float64 { return float64(m.last) }

func (m *FinalEntities) Reset() { m.last = 0 }
