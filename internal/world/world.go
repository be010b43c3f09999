// Package world owns the visible viewport: an RGBA pixel buffer, the
// camera that maps world coordinates onto it, and drawing operations
// that rasterize directly into the buffer.
//
// The buffer is row-major RGBA with a top-left origin, 4*width*height
// bytes. It is mutated in place every frame (background clear, then
// entities) and handed to the display layer as a read-only slice; frame
// sequencing, not locking, keeps that hand-off safe.
package world

import (
	"math"

	"go.uber.org/zap"

	"github.com/crawley-dev/physics-toy/internal/raster"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// World is the pixel buffer plus the camera state that positions it.
type World struct {
	CameraPos vmath.Vec[float64, vmath.World]
	CameraVel vmath.Vec[float64, vmath.World]

	size   vmath.Vec[int, vmath.Viewport]
	buffer []byte

	log *zap.Logger
}

// New allocates a zeroed buffer for the given viewport size.
func New(size vmath.Vec[int, vmath.Viewport], log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		size:   size,
		buffer: make([]byte, 4*size.X*size.Y),
		log:    log,
	}
}

// Size returns the viewport dimensions in texture pixels.
func (w *World) Size() vmath.Vec[int, vmath.Viewport] { return w.size }

// Buffer exposes the RGBA bytes for upload. The slice is only valid
// until the next mutation; callers must not retain it across frames.
func (w *World) Buffer() []byte { return w.buffer }

// Resize reallocates the buffer for a new viewport size. It is a no-op
// when both the size and the byte length already match, grows
// zero-filled otherwise, and truncates on shrink. Zero dimensions are a
// precondition violation handled at the boundary, not here.
func (w *World) Resize(size vmath.Vec[int, vmath.Viewport]) {
	want := 4 * size.X * size.Y
	if size == w.size && len(w.buffer) == want {
		return
	}

	if want > len(w.buffer) {
		w.buffer = append(w.buffer, make([]byte, want-len(w.buffer))...)
		w.log.Debug("grew viewport buffer",
			zap.Int("width", size.X), zap.Int("height", size.Y))
	} else {
		w.buffer = w.buffer[:want]
		w.log.Debug("truncated viewport buffer",
			zap.Int("width", size.X), zap.Int("height", size.Y))
	}
	w.size = size
}

// UpdateCamera advances the damped camera integrator:
// vel = (vel + accel) * resistance; pos += vel. Resistance in (0,1)
// guarantees the camera settles once input stops.
func (w *World) UpdateCamera(accel vmath.Vec[float64, vmath.World], resistance float64) {
	w.CameraVel = w.CameraVel.Add(accel).MulN(resistance)
	w.CameraPos = w.CameraPos.Add(w.CameraVel)
}

// ResetViewport zeroes the camera position and velocity.
func (w *World) ResetViewport() {
	w.CameraPos = vmath.Vec[float64, vmath.World]{}
	w.CameraVel = vmath.Vec[float64, vmath.World]{}
}

// OutOfBounds reports whether a buffer position misses the viewport.
func (w *World) OutOfBounds(pos vmath.Vec[int, vmath.Viewport]) bool {
	return pos.X < 0 || pos.Y < 0 || pos.X >= w.size.X || pos.Y >= w.size.Y
}

// DrawAll fills the whole buffer with one colour. Used once per frame
// as the background clear.
func (w *World) DrawAll(c Colour) {
	for i := 0; i+3 < len(w.buffer); i += 4 {
		w.buffer[i] = c.R
		w.buffer[i+1] = c.G
		w.buffer[i+2] = c.B
		w.buffer[i+3] = c.A
	}
}

// DrawPixel writes one world-space position into the buffer, mapping
// through the camera. Out-of-viewport writes are silently dropped:
// entities off screen are never an error.
func (w *World) DrawPixel(pos vmath.Vec[float64, vmath.World], c Colour) {
	vp := vmath.WorldToViewport(pos, w.CameraPos)
	w.DrawBufferPixel(vmath.V[int, vmath.Viewport](int(math.Floor(vp.X)), int(math.Floor(vp.Y))), c)
}

// DrawBufferPixel writes one already-mapped viewport position,
// dropping anything out of bounds.
func (w *World) DrawBufferPixel(pos vmath.Vec[int, vmath.Viewport], c Colour) {
	if w.OutOfBounds(pos) {
		return
	}
	i := 4 * (pos.Y*w.size.X + pos.X)
	w.buffer[i] = c.R
	w.buffer[i+1] = c.G
	w.buffer[i+2] = c.B
	w.buffer[i+3] = c.A
}

// DrawLine rasterizes a world-space segment with Bresenham stepping.
func (w *World) DrawLine(start, end vmath.Vec[float64, vmath.World], c Colour) {
	raster.Line(
		raster.Point{X: int(start.X), Y: int(start.Y)},
		raster.Point{X: int(end.X), Y: int(end.Y)},
		func(x, y int) {
			w.DrawPixel(vmath.V[float64, vmath.World](float64(x), float64(y)), c)
		},
	)
}

// DrawPolygon draws the closed outline through consecutive vertices.
func (w *World) DrawPolygon(vertices []vmath.Vec[float64, vmath.World], c Colour) {
	for i := range vertices {
		w.DrawLine(vertices[i], vertices[(i+1)%len(vertices)], c)
	}
}

// DrawCircleOutline draws a midpoint circle centred at a world position.
func (w *World) DrawCircleOutline(centre vmath.Vec[float64, vmath.World], radius int, c Colour) {
	raster.CircleOutline(radius, func(dx, dy int) {
		w.DrawPixel(centre.Add(vmath.V[float64, vmath.World](float64(dx), float64(dy))), c)
	})
}

// DrawCircleFill draws a filled disk centred at a world position.
func (w *World) DrawCircleFill(centre vmath.Vec[float64, vmath.World], radius int, c Colour) {
	raster.CircleFill(radius, func(dx, dy int) {
		w.DrawPixel(centre.Add(vmath.V[float64, vmath.World](float64(dx), float64(dy))), c)
	})
}
