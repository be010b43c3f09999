package rigid

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/crawley-dev/physics-toy/internal/vmath"
)

func at(x, y float64) vmath.Vec[float64, vmath.World] {
	return vmath.V[float64, vmath.World](x, y)
}

func still() vmath.Vec[float64, vmath.World] {
	return vmath.Vec[float64, vmath.World]{}
}

var _ = Describe("separating axis test", func() {
	It("reports no collision for distant squares", func() {
		a := NewBody(at(0, 0), still(), 10, 1)
		b := NewBody(at(1000, 1000), still(), 10, 1)

		_, hit := Collide(&a, &b)
		Expect(hit).To(BeFalse())
	})

	It("reports a positive penetration for overlapping squares", func() {
		a := NewBody(at(0, 0), still(), 10, 1)
		b := NewBody(at(5, 5), still(), 10, 1)

		contact, hit := Collide(&a, &b)
		Expect(hit).To(BeTrue())
		Expect(contact.Penetration).To(BeNumerically(">", 0))
	})

	It("is symmetric in outcome and penetration", func() {
		cases := [][2]Body{
			{NewBody(at(0, 0), still(), 10, 1), NewBody(at(5, 5), still(), 10, 1)},
			{NewBody(at(0, 0), still(), 10, 1), NewBody(at(20, 0), still(), 10, 1)},
			{NewBody(at(0, 0), still(), 16, 1), NewBody(at(9, 2), still(), 8, 1)},
		}

		for _, pair := range cases {
			a, b := pair[0], pair[1]
			ab, hitAB := Collide(&a, &b)
			ba, hitBA := Collide(&b, &a)

			Expect(hitAB).To(Equal(hitBA))
			if hitAB {
				Expect(ab.Penetration).To(BeNumerically("~", ba.Penetration, 1e-12))
			}
		}
	})

	It("orients the normal from A towards B", func() {
		a := NewBody(at(0, 0), still(), 10, 1)
		b := NewBody(at(6, 0), still(), 10, 1)

		contact, hit := Collide(&a, &b)
		Expect(hit).To(BeTrue())
		Expect(contact.Normal.Dot(at(1, 0))).To(BeNumerically(">", 0))
	})

	It("separates touching squares beyond the half-diagonal sum", func() {
		// Two side-10 squares have half-diagonals of 5*sqrt(2); any
		// centre gap beyond their sum can never collide.
		gap := 2*5*math.Sqrt2 + 0.1
		a := NewBody(at(0, 0), still(), 10, 1)
		b := NewBody(at(gap, 0), still(), 10, 1)

		_, hit := Collide(&a, &b)
		Expect(hit).To(BeFalse())
	})

	It("detects rotated overlaps the axis-aligned test would miss", func() {
		a := NewBody(at(0, 0), still(), 10, 1)
		b := NewBody(at(10.5, 0), still(), 10, 1)

		_, hit := Collide(&a, &b)
		Expect(hit).To(BeFalse(), "axis-aligned gap of 0.5")

		// Rotating B by 45 degrees extends its reach along x to
		// 5*sqrt(2) and closes the gap.
		b.Shape.Rotate(math.Pi / 4)
		_, hit = Collide(&a, &b)
		Expect(hit).To(BeTrue())
	})

	It("picks the minimum overlap axis for the penetration depth", func() {
		a := NewBody(at(0, 0), still(), 10, 1)
		b := NewBody(at(9, 1), still(), 10, 1)

		contact, hit := Collide(&a, &b)
		Expect(hit).To(BeTrue())
		// Overlap along x is 1, along y is 9.
		Expect(contact.Penetration).To(BeNumerically("~", 1, 1e-12))
		Expect(math.Abs(contact.Normal.X)).To(BeNumerically("~", 1, 1e-12))
	})
})

var _ = Describe("square geometry", func() {
	It("keeps world vertices as local plus centre", func() {
		s := NewSquare(at(100, 50), 10)
		verts := s.WorldVertices()
		Expect(verts[0]).To(Equal(at(95, 45)))
		Expect(verts[2]).To(Equal(at(105, 55)))
	})

	It("rotates local vertices without moving the centre", func() {
		s := NewSquare(at(100, 50), 10)
		s.Rotate(math.Pi / 2)

		Expect(s.Centre).To(Equal(at(100, 50)))
		// (-5,-5) rotated 90 degrees CCW is (5,-5).
		Expect(s.Verts[0].X).To(BeNumerically("~", 5, 1e-12))
		Expect(s.Verts[0].Y).To(BeNumerically("~", -5, 1e-12))
	})

	It("preserves vertex distances under rotation", func() {
		s := NewSquare(at(0, 0), 14)
		before := vmath.Length(s.Verts[0])
		s.Rotate(0.3)
		Expect(vmath.Length(s.Verts[0])).To(BeNumerically("~", before, 1e-12))
	})
})

var _ = Describe("body integration", func() {
	It("moves by velocity times dt", func() {
		b := NewBody(at(0, 0), at(10, -4), 10, 2)
		b.Integrate(0.5)
		Expect(b.Shape.Centre.X).To(BeNumerically("~", 5, 1e-12))
		Expect(b.Shape.Centre.Y).To(BeNumerically("~", -2, 1e-12))
	})

	It("applies accumulated force over the step then clears it", func() {
		b := NewBody(at(0, 0), still(), 10, 2)
		b.ApplyForce(at(8, 0))

		b.Integrate(0.5)
		Expect(b.Vel.X).To(BeNumerically("~", 2, 1e-12), "dv = f/m*dt")

		b.Integrate(0.5)
		Expect(b.Vel.X).To(BeNumerically("~", 2, 1e-12), "accumulator was cleared")
	})

	It("spins from torque through the inertia", func() {
		b := NewBody(at(0, 0), still(), 10, 3)
		// inertia = 3*10*10/12 = 25
		b.ApplyTorque(50)
		b.Integrate(0.5)
		Expect(b.AngVel).To(BeNumerically("~", 1, 1e-12))
		Expect(b.Rotation).To(BeNumerically("~", 0.5, 1e-12))
	})
})
