package vmath

import "math"

// Screen is the coordinate space of raw window pixels.
type Screen struct{}

// Viewport is the coordinate space of the simulation's texture buffer.
type Viewport struct{}

// World is the unscaled coordinate space entities live in.
type World struct{}

// Space constrains the phantom coordinate-space tag of a [Vec].
type Space interface {
	Screen | Viewport | World
}

// Scalar constrains the component type of a [Vec].
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Float constrains operations that only make sense on real components.
type Float interface {
	~float32 | ~float64
}

// Vec is a 2D vector with components of type T, tagged with space S.
type Vec[T Scalar, S Space] struct {
	X, Y T
}

// V constructs a vector. The space usually has to be named explicitly:
//
//	vmath.V[float64, vmath.World](1, 2)
func V[T Scalar, S Space](x, y T) Vec[T, S] {
	return Vec[T, S]{X: x, Y: y}
}

func (v Vec[T, S]) Add(o Vec[T, S]) Vec[T, S] { return Vec[T, S]{v.X + o.X, v.Y + o.Y} }
func (v Vec[T, S]) Sub(o Vec[T, S]) Vec[T, S] { return Vec[T, S]{v.X - o.X, v.Y - o.Y} }
func (v Vec[T, S]) Mul(o Vec[T, S]) Vec[T, S] { return Vec[T, S]{v.X * o.X, v.Y * o.Y} }
func (v Vec[T, S]) Div(o Vec[T, S]) Vec[T, S] { return Vec[T, S]{v.X / o.X, v.Y / o.Y} }

// MulN multiplies both components by a scalar.
func (v Vec[T, S]) MulN(n T) Vec[T, S] { return Vec[T, S]{v.X * n, v.Y * n} }

// DivN divides both components by a scalar.
func (v Vec[T, S]) DivN(n T) Vec[T, S] { return Vec[T, S]{v.X / n, v.Y / n} }

func (v Vec[T, S]) Neg() Vec[T, S] { return Vec[T, S]{-v.X, -v.Y} }

// Perp rotates the vector 90 degrees counter-clockwise: (x,y) -> (-y,x).
func (v Vec[T, S]) Perp() Vec[T, S] { return Vec[T, S]{-v.Y, v.X} }

// Clamp limits both components to [min, max] component-wise.
func (v Vec[T, S]) Clamp(min, max Vec[T, S]) Vec[T, S] {
	return Vec[T, S]{clamp(v.X, min.X, max.X), clamp(v.Y, min.Y, max.Y)}
}

// Dot is the scalar product.
func (v Vec[T, S]) Dot(o Vec[T, S]) T { return v.X*o.X + v.Y*o.Y }

// Cross is the 2D cross product, the z component of the 3D one.
func (v Vec[T, S]) Cross(o Vec[T, S]) T { return v.X*o.Y - v.Y*o.X }

// LengthSq is the squared magnitude, cheap to compute for comparisons.
func (v Vec[T, S]) LengthSq() T { return v.X*v.X + v.Y*v.Y }

// Cast converts the components to another numeric type, truncating
// floats the way a plain Go conversion does. The space tag is kept.
func Cast[T2, T Scalar, S Space](v Vec[T, S]) Vec[T2, S] {
	return Vec[T2, S]{T2(v.X), T2(v.Y)}
}

// CastUnit force-reinterprets the space tag without touching the values.
// It performs no scaling; callers must already have accounted for the
// transform between the two spaces.
func CastUnit[S2 Space, T Scalar, S Space](v Vec[T, S]) Vec[T, S2] {
	return Vec[T, S2]{v.X, v.Y}
}

// Map applies f to both components.
func Map[T2, T Scalar, S Space](v Vec[T, S], f func(T) T2) Vec[T2, S] {
	return Vec[T2, S]{f(v.X), f(v.Y)}
}

// Length is the magnitude of a real-valued vector.
func Length[T Float, S Space](v Vec[T, S]) T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalised returns the unit vector in v's direction, or the zero
// vector when v has zero length. Never divides by zero.
func Normalised[T Float, S Space](v Vec[T, S]) Vec[T, S] {
	l := Length(v)
	if l > 0 {
		return Vec[T, S]{v.X / l, v.Y / l}
	}
	return Vec[T, S]{}
}

func clamp[T Scalar](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
