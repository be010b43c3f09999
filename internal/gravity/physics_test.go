package gravity

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/crawley-dev/physics-toy/internal/config"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

func w(x, y float64) vmath.Vec[float64, vmath.World] {
	return vmath.V[float64, vmath.World](x, y)
}

func totalMomentum(e *Engine) vmath.Vec[float64, vmath.World] {
	var m vmath.Vec[float64, vmath.World]
	for i := range e.Particles() {
		m = m.Add(e.Particles()[i].Momentum())
	}
	return m
}

func totalKineticEnergy(e *Engine) float64 {
	var ke float64
	for i := range e.Particles() {
		ke += e.Particles()[i].KineticEnergy()
	}
	return ke
}

var _ = Describe("gravitational attraction", func() {
	var e *Engine

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		e = New(cfg, nil)
	})

	It("pulls two masses towards each other", func() {
		e.Spawn(NewParticle(w(100, 200), w(0, 0), 10))
		e.Spawn(NewParticle(w(300, 200), w(0, 0), 10))

		e.ToggleRun()
		for i := 0; i < 200; i++ {
			e.step(1.0 / config.TargetFPS)
		}

		a, b := e.Particles()[0], e.Particles()[1]
		Expect(a.Pos.X).To(BeNumerically(">", 100), "left particle should drift right")
		Expect(b.Pos.X).To(BeNumerically("<", 300), "right particle should drift left")
		Expect(a.Pos.Y).To(BeNumerically("~", 200, 1e-6), "no lateral force expected")
	})

	It("obeys the inverse square law", func() {
		near := e.attraction(
			&Particle{Pos: w(0, 0), Mass: 1e20},
			&Particle{Pos: w(100, 0), Mass: 1e20},
		)
		far := e.attraction(
			&Particle{Pos: w(0, 0), Mass: 1e20},
			&Particle{Pos: w(200, 0), Mass: 1e20},
		)
		Expect(vmath.Length(near)).To(BeNumerically("~", 4*vmath.Length(far), 1e-6*vmath.Length(near)))
	})

	It("returns zero force at coincident positions", func() {
		f := e.attraction(
			&Particle{Pos: w(50, 50), Mass: 1e20},
			&Particle{Pos: w(50, 50), Mass: 1e20},
		)
		Expect(f.LengthSq()).To(BeZero())
	})

	It("excludes contacting pairs from gravitation", func() {
		f := e.attraction(
			&Particle{Pos: w(100, 100), Mass: 1e20, Radius: 10},
			&Particle{Pos: w(115, 100), Mass: 1e20, Radius: 10},
		)
		Expect(f.LengthSq()).To(BeZero(), "overlapping pair must not attract")
	})

	It("leaves a resting contact at rest", func() {
		e.Spawn(NewParticle(w(100, 100), w(0, 0), 10))
		e.Spawn(NewParticle(w(105, 100), w(0, 0), 10))

		e.step(1.0 / config.TargetFPS)

		a, b := e.Particles()[0], e.Particles()[1]
		Expect(a.Vel.LengthSq()).To(BeZero(), "no closing velocity, so no impulse fires")
		Expect(b.Vel.LengthSq()).To(BeZero())
	})

	It("conserves momentum in the serial pair pass", func() {
		e.Spawn(NewParticle(w(100, 100), w(0.1, 0), 20))
		e.Spawn(NewParticle(w(300, 150), w(-0.05, 0.02), 30))
		e.Spawn(NewParticle(w(200, 300), w(0, -0.07), 10))

		// With damping off, gravity alone must not change the total.
		e.damping = 1.0
		before := totalMomentum(e)
		for i := 0; i < 100; i++ {
			e.step(1.0 / config.TargetFPS)
		}
		after := totalMomentum(e)

		scale := math.Max(vmath.Length(before), 1)
		Expect(after.X).To(BeNumerically("~", before.X, 1e-9*scale))
		Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9*scale))
	})

	It("computes the same forces in parallel as serially", func() {
		seed := []Particle{
			NewParticle(w(100, 100), w(0, 0), 10),
			NewParticle(w(200, 140), w(0, 0), 15),
			NewParticle(w(160, 260), w(0, 0), 8),
			NewParticle(w(320, 90), w(0, 0), 12),
		}

		serial := New(config.DefaultConfig(), nil)
		parallel := New(config.DefaultConfig(), nil)
		for _, p := range seed {
			serial.Spawn(p)
			parallel.Spawn(p)
		}
		serial.workers = 1
		parallel.workers = 4

		serial.accumulateForces()

		// Force the parallel path despite the small count.
		sim := parallel
		n := len(sim.particles)
		for i := 0; i < n; i++ {
			p := &sim.particles[i]
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				p.force = p.force.Add(sim.attraction(p, &sim.particles[j]))
			}
		}

		for i := range serial.particles {
			sf := serial.particles[i].force
			pf := sim.particles[i].force
			tol := 1e-9 * math.Max(vmath.Length(sf), 1e-30)
			Expect(pf.X).To(BeNumerically("~", sf.X, tol))
			Expect(pf.Y).To(BeNumerically("~", sf.Y, tol))
		}
	})
})

var _ = Describe("particle collisions", func() {
	newEngine := func(collision string) *Engine {
		cfg := config.DefaultConfig()
		cfg.Collision = collision
		return New(cfg, nil)
	}

	Describe("bounce", func() {
		It("reverses closing velocities along the normal", func() {
			e := newEngine(config.CollisionBounce)
			e.Spawn(NewParticle(w(100, 100), w(1, 0), 10))
			e.Spawn(NewParticle(w(115, 100), w(-1, 0), 10))

			e.resolveCollisions()

			a, b := e.Particles()[0], e.Particles()[1]
			Expect(a.Vel.X).To(BeNumerically("<", 0))
			Expect(b.Vel.X).To(BeNumerically(">", 0))
		})

		It("conserves momentum through the impulse", func() {
			e := newEngine(config.CollisionBounce)
			e.Spawn(NewParticle(w(100, 100), w(0.4, 0.1), 10))
			e.Spawn(NewParticle(w(112, 104), w(-0.2, 0), 14))

			before := totalMomentum(e)
			e.resolveCollisions()
			after := totalMomentum(e)

			scale := math.Max(vmath.Length(before), 1)
			Expect(after.X).To(BeNumerically("~", before.X, 1e-9*scale))
			Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9*scale))
		})

		It("does not gain kinetic energy", func() {
			e := newEngine(config.CollisionBounce)
			e.Spawn(NewParticle(w(100, 100), w(0.5, 0), 10))
			e.Spawn(NewParticle(w(114, 100), w(-0.5, 0), 10))

			before := totalKineticEnergy(e)
			e.resolveCollisions()
			Expect(totalKineticEnergy(e)).To(BeNumerically("<=", before*(1+1e-12)))
		})

		It("separates overlapping particles", func() {
			e := newEngine(config.CollisionBounce)
			e.Spawn(NewParticle(w(100, 100), w(0, 0), 10))
			e.Spawn(NewParticle(w(105, 100), w(0, 0), 10))

			e.resolveCollisions()

			a, b := e.Particles()[0], e.Particles()[1]
			dist := vmath.Length(b.Pos.Sub(a.Pos))
			Expect(dist).To(BeNumerically("~", 20, 1e-9))
		})

		It("nudges apart particles at the same position", func() {
			e := newEngine(config.CollisionBounce)
			e.Spawn(NewParticle(w(100, 100), w(0, 0), 10))
			e.Spawn(NewParticle(w(100, 100), w(0, 0), 10))

			e.resolveCollisions()

			a, b := e.Particles()[0], e.Particles()[1]
			Expect(b.Pos.Sub(a.Pos).LengthSq()).To(BeNumerically(">", 0))
		})

		It("ignores separating pairs", func() {
			e := newEngine(config.CollisionBounce)
			e.Spawn(NewParticle(w(100, 100), w(-1, 0), 10))
			e.Spawn(NewParticle(w(115, 100), w(1, 0), 10))

			e.resolveCollisions()

			a, b := e.Particles()[0], e.Particles()[1]
			Expect(a.Vel.X).To(Equal(-1.0), "separating velocity unchanged")
			Expect(b.Vel.X).To(Equal(1.0))
		})
	})

	Describe("merge", func() {
		It("has the heavier particle absorb the lighter", func() {
			e := newEngine(config.CollisionMerge)
			e.Spawn(NewParticle(w(100, 100), w(0, 0), 5))
			e.Spawn(NewParticle(w(106, 100), w(0, 0), 10))

			e.resolveCollisions()
			e.cull()

			Expect(e.Particles()).To(HaveLen(1))
			Expect(e.Particles()[0].Radius).To(BeNumerically(">", 10))
		})

		It("conserves mass and momentum", func() {
			e := newEngine(config.CollisionMerge)
			e.Spawn(NewParticle(w(100, 100), w(0.3, 0), 5))
			e.Spawn(NewParticle(w(106, 100), w(-0.1, 0.2), 10))

			var massBefore float64
			for i := range e.Particles() {
				massBefore += e.Particles()[i].Mass
			}
			before := totalMomentum(e)

			e.resolveCollisions()
			e.cull()

			survivor := e.Particles()[0]
			Expect(survivor.Mass).To(BeNumerically("~", massBefore, 1e-6*massBefore))

			after := totalMomentum(e)
			scale := vmath.Length(before)
			Expect(after.X).To(BeNumerically("~", before.X, 1e-9*scale))
			Expect(after.Y).To(BeNumerically("~", before.Y, 1e-9*scale))
		})

		It("combines radii by area", func() {
			Expect(combinedRadius(3, 4)).To(BeNumerically("~", 5, 1e-12))
		})
	})
})

var _ = Describe("integration", func() {
	It("applies drag every step", func() {
		cfg := config.DefaultConfig()
		e := New(cfg, nil)
		e.Spawn(NewParticle(w(100, 100), w(1, 0), 8))

		e.integrate(1.0 / config.TargetFPS)
		Expect(e.Particles()[0].Vel.X).To(BeNumerically("~", config.PhysicsResistance, 1e-12))
	})

	It("clears force accumulators after applying them", func() {
		e := New(config.DefaultConfig(), nil)
		e.Spawn(NewParticle(w(100, 100), w(0, 0), 8))
		e.particles[0].force = w(1e30, 0)

		e.integrate(1.0 / config.TargetFPS)
		Expect(e.particles[0].force.LengthSq()).To(BeZero())
	})

	It("derives mass from radius as a solid sphere", func() {
		p := NewParticle(w(0, 0), w(0, 0), 2)
		want := (4.0 / 3.0) * math.Pi * 8 * config.ParticleDensity
		Expect(p.Mass).To(BeNumerically("~", want, 1e-6*want))
	})
})
