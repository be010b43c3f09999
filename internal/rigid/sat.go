package rigid

import (
	"math"

	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// Contact is the result of a positive separating-axis test: the unit
// collision normal, oriented from body A towards body B, and how far
// the bodies interpenetrate along it.
type Contact struct {
	Normal      vmath.Vec[float64, vmath.World]
	Penetration float64
}

// edgeNormals returns the two unique outward edge normals of a square.
// Opposite edges are antiparallel, so two axes cover all four edges.
func edgeNormals(verts [4]vmath.Vec[float64, vmath.World]) [2]vmath.Vec[float64, vmath.World] {
	return [2]vmath.Vec[float64, vmath.World]{
		vmath.Normalised(verts[1].Sub(verts[0]).Perp()),
		vmath.Normalised(verts[2].Sub(verts[1]).Perp()),
	}
}

// project returns the [min, max] interval of the vertices along an
// axis.
func project(verts [4]vmath.Vec[float64, vmath.World], axis vmath.Vec[float64, vmath.World]) (float64, float64) {
	min := verts[0].Dot(axis)
	max := min
	for _, v := range verts[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// Collide runs the separating-axis test over both squares' edge
// normals (four axes total). Any axis with non-positive overlap
// separates the bodies; otherwise the axis of minimum overlap gives
// the contact normal and penetration depth.
func Collide(a, b *Body) (Contact, bool) {
	va := a.Shape.WorldVertices()
	vb := b.Shape.WorldVertices()

	na := edgeNormals(va)
	nb := edgeNormals(vb)
	axes := []vmath.Vec[float64, vmath.World]{na[0], na[1], nb[0], nb[1]}

	best := Contact{Penetration: math.MaxFloat64}
	for _, axis := range axes {
		minA, maxA := project(va, axis)
		minB, maxB := project(vb, axis)

		overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
		if overlap <= 0 {
			return Contact{}, false
		}
		if overlap < best.Penetration {
			best = Contact{Normal: axis, Penetration: overlap}
		}
	}

	// Point the normal from A towards B.
	if b.Shape.Centre.Sub(a.Shape.Centre).Dot(best.Normal) < 0 {
		best.Normal = best.Normal.Neg()
	}
	return best, true
}
