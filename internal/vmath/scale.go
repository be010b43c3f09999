package vmath

// PxScale is a pixels-per-world-unit factor tagged with the spaces it
// converts between, so a screen→viewport scale cannot be applied to a
// world-space vector by mistake.
type PxScale[T Scalar, Src, Dst Space] struct {
	factor T
}

// NewPxScale wraps a scale factor. The factor must be positive; the
// boundary (config validation, input layer) rejects degenerate scales
// before they reach the core.
func NewPxScale[T Scalar, Src, Dst Space](factor T) PxScale[T, Src, Dst] {
	return PxScale[T, Src, Dst]{factor: factor}
}

// Get returns the raw factor.
func (s PxScale[T, Src, Dst]) Get() T { return s.factor }

// Apply divides both components by the scale factor, yielding a vector
// tagged with the destination space.
func Apply[T Scalar, Src, Dst Space](v Vec[T, Src], s PxScale[T, Src, Dst]) Vec[T, Dst] {
	return Vec[T, Dst]{v.X / s.factor, v.Y / s.factor}
}

// ScreenToViewport maps raw window pixels onto texture pixels by
// dividing out the pixel scale.
func ScreenToViewport(v Vec[float64, Screen], scale float64) Vec[float64, Viewport] {
	return Vec[float64, Viewport]{v.X / scale, v.Y / scale}
}

// ViewportToWorld offsets a texture-space position by the camera, which
// describes the top-left of the viewport in world coordinates.
func ViewportToWorld(v Vec[float64, Viewport], camera Vec[float64, World]) Vec[float64, World] {
	return Vec[float64, World]{v.X + camera.X, v.Y + camera.Y}
}

// WorldToViewport is the inverse of [ViewportToWorld].
func WorldToViewport(v Vec[float64, World], camera Vec[float64, World]) Vec[float64, Viewport] {
	return Vec[float64, Viewport]{v.X - camera.X, v.Y - camera.Y}
}

// ScreenToWorld composes [ScreenToViewport] and [ViewportToWorld].
func ScreenToWorld(v Vec[float64, Screen], scale float64, camera Vec[float64, World]) Vec[float64, World] {
	return ViewportToWorld(ScreenToViewport(v, scale), camera)
}
