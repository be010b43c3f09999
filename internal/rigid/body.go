// Package rigid implements the square rigid-body sandbox: linear and
// angular integration from force/torque accumulators, pairwise
// separating-axis collision tests, and impulse responses.
package rigid

import (
	"math"

	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// Square stores rotation in its local vertices and translation in its
// centre, so world vertices are just local + centre and rotation never
// has to be re-derived from an absolute angle.
type Square struct {
	Verts  [4]vmath.Vec[float64, vmath.World]
	Centre vmath.Vec[float64, vmath.World]
}

// NewSquare builds an axis-aligned square of the given side length.
func NewSquare(centre vmath.Vec[float64, vmath.World], size float64) Square {
	h := size / 2
	return Square{
		Centre: centre,
		Verts: [4]vmath.Vec[float64, vmath.World]{
			vmath.V[float64, vmath.World](-h, -h),
			vmath.V[float64, vmath.World](h, -h),
			vmath.V[float64, vmath.World](h, h),
			vmath.V[float64, vmath.World](-h, h),
		},
	}
}

// WorldVertices translates the local vertices by the centre.
func (s *Square) WorldVertices() [4]vmath.Vec[float64, vmath.World] {
	var out [4]vmath.Vec[float64, vmath.World]
	for i, v := range s.Verts {
		out[i] = v.Add(s.Centre)
	}
	return out
}

// Rotate spins the local vertices by an incremental angle in radians.
func (s *Square) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	for i, v := range s.Verts {
		s.Verts[i] = vmath.V[float64, vmath.World](
			v.X*cos-v.Y*sin,
			v.X*sin+v.Y*cos,
		)
	}
}

// Body is one square rigid body with force and torque accumulators.
type Body struct {
	Shape    Square
	Vel      vmath.Vec[float64, vmath.World]
	AngVel   float64
	Rotation float64

	Mass    float64
	Inertia float64

	Collided bool

	force  vmath.Vec[float64, vmath.World]
	torque float64
}

// NewBody builds a body at rest rotation with inertia derived from the
// square's dimensions (m*w*h/12).
func NewBody(centre, vel vmath.Vec[float64, vmath.World], size, mass float64) Body {
	return Body{
		Shape:   NewSquare(centre, size),
		Vel:     vel,
		Mass:    mass,
		Inertia: mass * size * size / 12,
	}
}

// ApplyForce adds to the accumulator; it takes effect on the next
// integration pass.
func (b *Body) ApplyForce(f vmath.Vec[float64, vmath.World]) {
	b.force = b.force.Add(f)
}

// ApplyTorque adds to the angular accumulator.
func (b *Body) ApplyTorque(t float64) { b.torque += t }

// Integrate advances linear and angular state from the accumulators
// and zeroes them. The local vertices rotate by the incremental angle
// covered this step.
func (b *Body) Integrate(dt float64) {
	b.Vel = b.Vel.Add(b.force.DivN(b.Mass).MulN(dt))
	b.Shape.Centre = b.Shape.Centre.Add(b.Vel.MulN(dt))

	b.AngVel += b.torque / b.Inertia * dt
	step := b.AngVel * dt
	b.Rotation += step
	b.Shape.Rotate(step)

	b.force = vmath.Vec[float64, vmath.World]{}
	b.torque = 0
}

// halfDiagonal is the body's bounding radius, used for cursor hit
// tests.
func (b *Body) halfDiagonal() float64 {
	var max float64
	for _, v := range b.Shape.Verts {
		if l := v.LengthSq(); l > max {
			max = l
		}
	}
	return math.Sqrt(max)
}

// Contains approximates a cursor hit test with the bounding circle.
func (b *Body) Contains(p vmath.Vec[float64, vmath.World]) bool {
	d := p.Sub(b.Shape.Centre)
	r := b.halfDiagonal()
	return d.LengthSq() <= r*r
}
