package gravity

import (
	"math"

	"go.uber.org/zap"

	"github.com/crawley-dev/physics-toy/internal/config"
	"github.com/crawley-dev/physics-toy/internal/sim"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// parallelThreshold is the particle count below which the pairwise
// serial pass beats spinning up workers.
const parallelThreshold = 128

func (e *Engine) step(dt float64) {
	e.accumulateForces()
	e.resolveCollisions()
	e.cull()
	e.integrate(dt)
}

// accumulateForces sums gravitational attraction into each particle's
// force accumulator. The serial pass walks unique pairs and applies
// the reaction force directly; the parallel pass has every particle
// sum over all others so each index writes only its own accumulator.
func (e *Engine) accumulateForces() {
	n := len(e.particles)

	if n < parallelThreshold || e.workers == 1 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f := e.attraction(&e.particles[i], &e.particles[j])
				e.particles[i].force = e.particles[i].force.Add(f)
				e.particles[j].force = e.particles[j].force.Sub(f)
			}
		}
		return
	}

	sim.ParallelFor(n, 32, e.workers, func(start, end int) {
		for i := start; i < end; i++ {
			p := &e.particles[i]
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				p.force = p.force.Add(e.attraction(p, &e.particles[j]))
			}
		}
	})
}

// attraction is the force on a towards b. Pairs within contact
// distance take the collision response instead, never both.
func (e *Engine) attraction(a, b *Particle) vmath.Vec[float64, vmath.World] {
	dir := b.Pos.Sub(a.Pos)
	distSq := dir.LengthSq()
	minDist := a.Radius + b.Radius
	if distSq < config.SmallValue || distSq < minDist*minDist {
		return vmath.Vec[float64, vmath.World]{}
	}
	magnitude := e.gravity * a.Mass * b.Mass / distSq
	return vmath.Normalised(dir).MulN(magnitude)
}

func (e *Engine) resolveCollisions() {
	n := len(e.particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := &e.particles[i], &e.particles[j]
			if !a.alive() || !b.alive() {
				continue
			}

			delta := b.Pos.Sub(a.Pos)
			minDist := a.Radius + b.Radius
			if delta.LengthSq() >= minDist*minDist {
				continue
			}

			if e.merge {
				e.mergePair(a, b)
			} else {
				e.bouncePair(a, b, delta, minDist)
			}
		}
	}
}

// mergePair has the heavier particle absorb the lighter one, keeping
// total momentum and combining areas so total drawn mass looks right.
func (e *Engine) mergePair(a, b *Particle) {
	if b.Mass > a.Mass {
		a, b = b, a
	}

	total := a.Mass + b.Mass
	a.Vel = a.Vel.MulN(a.Mass).Add(b.Vel.MulN(b.Mass)).DivN(total)
	a.Radius = combinedRadius(a.Radius, b.Radius)
	a.Mass = total
	b.Mass = 0

	e.log.Debug("merged particles", zap.Float64("mass", a.Mass))
}

func combinedRadius(r1, r2 float64) float64 {
	return math.Sqrt(r1*r1 + r2*r2)
}

// bouncePair applies a restitution impulse along the contact normal
// and separates the overlap in proportion to inverse mass.
func (e *Engine) bouncePair(a, b *Particle, delta vmath.Vec[float64, vmath.World], minDist float64) {
	dist := vmath.Length(delta)
	if dist < config.SmallValue {
		// Coincident centres: pick an arbitrary separation axis.
		delta = vmath.V[float64, vmath.World](config.SmallValue, config.SmallValue)
		dist = vmath.Length(delta)
	}
	normal := delta.DivN(dist)

	invA := 1.0 / a.Mass
	invB := 1.0 / b.Mass
	invSum := invA + invB

	relVel := b.Vel.Sub(a.Vel)
	along := relVel.Dot(normal)
	if along < 0 {
		j := -(1.0 + e.restitution) * along / invSum
		impulse := normal.MulN(j)
		a.Vel = a.Vel.Sub(impulse.MulN(invA))
		b.Vel = b.Vel.Add(impulse.MulN(invB))
	}

	correction := normal.MulN((minDist - dist) * 0.5)
	a.Pos = a.Pos.Sub(correction.MulN(invA / invSum * 2))
	b.Pos = b.Pos.Add(correction.MulN(invB / invSum * 2))
}

// cull compacts away particles consumed by merges.
func (e *Engine) cull() {
	alive := e.particles[:0]
	for i := range e.particles {
		if e.particles[i].alive() {
			alive = append(alive, e.particles[i])
		}
	}
	e.particles = alive
}

// integrate advances velocities from the force accumulators, applies
// drag, and moves positions by the per-frame velocity.
func (e *Engine) integrate(dt float64) {
	for i := range e.particles {
		p := &e.particles[i]
		p.Vel = p.Vel.Add(p.force.DivN(p.Mass).MulN(dt)).MulN(e.damping)
		p.Pos = p.Pos.Add(p.Vel)
		p.force = vmath.Vec[float64, vmath.World]{}
	}
}
