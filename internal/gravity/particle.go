// Package gravity implements the particle sandbox: an N-body engine
// where every particle attracts every other and colliding pairs either
// bounce or merge.
package gravity

import (
	"math"

	"github.com/crawley-dev/physics-toy/internal/config"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// Particle is a point mass with a draw radius. A zero mass marks a
// particle consumed by a merge; it is culled before integration.
type Particle struct {
	Pos    vmath.Vec[float64, vmath.World]
	Vel    vmath.Vec[float64, vmath.World]
	Mass   float64
	Radius float64

	force vmath.Vec[float64, vmath.World]
}

// NewParticle derives the mass from the radius as a solid sphere of
// the configured density.
func NewParticle(pos, vel vmath.Vec[float64, vmath.World], radius float64) Particle {
	return Particle{
		Pos:    pos,
		Vel:    vel,
		Mass:   massFromRadius(radius),
		Radius: radius,
	}
}

func massFromRadius(radius float64) float64 {
	return (4.0 / 3.0) * math.Pi * radius * radius * radius * config.ParticleDensity
}

// Momentum is the particle's linear momentum.
func (p *Particle) Momentum() vmath.Vec[float64, vmath.World] {
	return p.Vel.MulN(p.Mass)
}

// KineticEnergy is 1/2 m v^2.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Vel.LengthSq()
}

func (p *Particle) alive() bool { return p.Mass > 0 }
