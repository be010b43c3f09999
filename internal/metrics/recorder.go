package metrics

import (
	"github.com/crawley-dev/physics-toy/internal/sim"
)

// Series names recorded every frame.
const (
	SeriesEntities = "entities"
	SeriesMass     = "mass"
	SeriesMomentum = "momentum"
	SeriesKinetic  = "kinetic_energy"
)

// Recorder captures per-frame series from a sampling engine and feeds
// any attached reduction metrics. It plugs into a headless run as an
// observer.
type Recorder struct {
	metrics []Metric
	times   []float64
	series  map[string][]float64
}

var _ sim.Observer = (*Recorder)(nil)

func NewRecorder(ms ...Metric) *Recorder {
	return &Recorder{
		metrics: ms,
		series: map[string][]float64{
			SeriesEntities: {},
			SeriesMass:     {},
			SeriesMomentum: {},
			SeriesKinetic:  {},
		},
	}
}

func (r *Recorder) OnFrame(front sim.Frontend, frame uint64, t float64) {
	sampler, ok := front.(Sampler)
	if !ok {
		return
	}
	s := sampler.Sample()

	r.times = append(r.times, t)
	r.series[SeriesEntities] = append(r.series[SeriesEntities], float64(s.Entities))
	r.series[SeriesMass] = append(r.series[SeriesMass], s.TotalMass)
	r.series[SeriesMomentum] = append(r.series[SeriesMomentum], s.Momentum)
	r.series[SeriesKinetic] = append(r.series[SeriesKinetic], s.KineticEnergy)

	for _, m := range r.metrics {
		m.Observe(s, t)
	}
}

// Times returns the sample timestamps.
func (r *Recorder) Times() []float64 { return r.times }

// Series returns one recorded series by name, nil if unknown.
func (r *Recorder) Series(name string) []float64 { return r.series[name] }

// SeriesNames lists the recorded series in a stable order.
func (r *Recorder) SeriesNames() []string {
	return []string{SeriesEntities, SeriesMass, SeriesMomentum, SeriesKinetic}
}

// Values collects the reduction metrics' final values.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset clears the series and resets all metrics.
func (r *Recorder) Reset() {
	r.times = r.times[:0]
	for k := range r.series {
		r.series[k] = r.series[k][:0]
	}
	for _, m := range r.metrics {
		m.Reset()
	}
}
