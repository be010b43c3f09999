package rigid

import (
	"time"

	"go.uber.org/zap"

	"github.com/crawley-dev/physics-toy/internal/config"
	"github.com/crawley-dev/physics-toy/internal/input"
	"github.com/crawley-dev/physics-toy/internal/metrics"
	"github.com/crawley-dev/physics-toy/internal/raster"
	"github.com/crawley-dev/physics-toy/internal/sim"
	"github.com/crawley-dev/physics-toy/internal/vmath"
	"github.com/crawley-dev/physics-toy/internal/world"
)

// Engine is the interactive rigid-body frontend.
type Engine struct {
	world  *world.World
	bodies []Body

	running  bool
	stepOnce bool
	frame    uint64

	screenSize vmath.Vec[int, vmath.Screen]
	scale      int
	drawSize   int

	restitution float64

	// dragged indexes the body being manually moved, -1 when none.
	dragged int

	log *zap.Logger
}

var _ sim.Frontend = (*Engine)(nil)

func New(cfg *config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		world:       world.New(vmath.V[int, vmath.Viewport](cfg.Width/cfg.Scale, cfg.Height/cfg.Scale), log),
		bodies:      make([]Body, 0, 16),
		screenSize:  vmath.V[int, vmath.Screen](cfg.Width, cfg.Height),
		scale:       cfg.Scale,
		drawSize:    cfg.DrawSize,
		restitution: cfg.Restitution,
		dragged:     -1,
		log:         log,
	}

	for _, bs := range cfg.Bodies {
		e.bodies = append(e.bodies, NewBody(
			vmath.V[float64, vmath.World](bs.X, bs.Y),
			vmath.V[float64, vmath.World](bs.VX, bs.VY),
			bs.Size, bs.Mass,
		))
	}
	return e
}

// Bodies exposes the live body slice for metrics and tests.
func (e *Engine) Bodies() []Body { return e.bodies }

// Sample aggregates the physical state for observers. Kinetic energy
// includes the rotational term.
func (e *Engine) Sample() metrics.Sample {
	var s metrics.Sample
	var momentum vmath.Vec[float64, vmath.World]
	for i := range e.bodies {
		b := &e.bodies[i]
		s.TotalMass += b.Mass
		s.KineticEnergy += 0.5*b.Mass*b.Vel.LengthSq() + 0.5*b.Inertia*b.AngVel*b.AngVel
		momentum = momentum.Add(b.Vel.MulN(b.Mass))
	}
	s.Entities = len(e.bodies)
	s.Momentum = vmath.Length(momentum)
	return s
}

// Spawn adds a body directly, bypassing input handling.
func (e *Engine) Spawn(b Body) { e.bodies = append(e.bodies, b) }

func (e *Engine) Running() bool { return e.running }
func (e *Engine) ToggleRun()    { e.running = !e.running }
func (e *Engine) StepOnce()     { e.stepOnce = true }

func (e *Engine) Clear() {
	e.bodies = e.bodies[:0]
	e.dragged = -1
}

func (e *Engine) TextureData() sim.TextureData {
	return sim.TextureData{
		Buf:   e.world.Buffer(),
		Size:  e.world.Size(),
		Frame: e.frame,
	}
}

func (e *Engine) ResizeTexture(size vmath.Vec[int, vmath.Viewport]) {
	e.screenSize = vmath.V[int, vmath.Screen](size.X*e.scale, size.Y*e.scale)
	e.world.Resize(size)
}

func (e *Engine) RescaleTexture(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale > config.MaxScale {
		scale = config.MaxScale
	}
	if scale == e.scale {
		return
	}
	e.scale = scale
	e.world.Resize(vmath.V[int, vmath.Viewport](e.screenSize.X/scale, e.screenSize.Y/scale))
	e.log.Debug("rescaled viewport", zap.Int("scale", scale))
}

func (e *Engine) Update(in *input.Snapshot, dt time.Duration) {
	e.handleInput(in, dt)

	if e.running || e.stepOnce {
		e.step(dt.Seconds())
		e.stepOnce = false
	}

	e.render(in)
	e.frame++

	if e.frame%uint64(config.TargetFPS) == 0 {
		e.log.Debug("body count", zap.Int("count", len(e.bodies)))
	}
}

// step integrates first, then detects and responds. Responses land in
// the force accumulators, so they take effect on the next integration
// pass rather than teleporting velocities mid-frame.
func (e *Engine) step(dt float64) {
	for i := range e.bodies {
		e.bodies[i].Collided = false
		e.bodies[i].Integrate(dt)
	}

	for i := 0; i < len(e.bodies); i++ {
		for j := i + 1; j < len(e.bodies); j++ {
			a, b := &e.bodies[i], &e.bodies[j]
			contact, hit := Collide(a, b)
			if !hit {
				continue
			}
			e.respond(a, b, contact, dt)
		}
	}
}

// respond applies a symmetric restitution impulse along the contact
// normal, accumulated as a force over dt, plus an equal-split
// positional correction so resting pairs do not sink into each other.
func (e *Engine) respond(a, b *Body, c Contact, dt float64) {
	invA := 1.0 / a.Mass
	invB := 1.0 / b.Mass

	along := b.Vel.Sub(a.Vel).Dot(c.Normal)
	if along < 0 {
		j := -(1.0 + e.restitution) * along / (invA + invB)
		impulse := c.Normal.MulN(j / dt)
		a.ApplyForce(impulse.Neg())
		b.ApplyForce(impulse)
	}

	correction := c.Normal.MulN(c.Penetration * 0.5)
	a.Shape.Centre = a.Shape.Centre.Sub(correction)
	b.Shape.Centre = b.Shape.Centre.Add(correction)

	a.Collided = true
	b.Collided = true
}

func (e *Engine) handleInput(in *input.Snapshot, dt time.Duration) {
	if in.IsPressed(input.KeyToggleRun) {
		e.ToggleRun()
	}
	if in.IsPressed(input.KeyStep) {
		e.StepOnce()
	}
	if in.IsPressed(input.KeyClear) {
		e.Clear()
	}
	if in.IsPressed(input.KeyResetView) {
		e.world.ResetViewport()
	}
	if in.IsPressed(input.KeyScaleUp) {
		e.RescaleTexture(e.scale + 1)
	}
	if in.IsPressed(input.KeyScaleDown) {
		e.RescaleTexture(e.scale - 1)
	}
	if in.IsHeld(input.KeySizeUp) && e.drawSize < config.MaxDrawSize {
		e.drawSize++
	}
	if in.IsHeld(input.KeySizeDown) && e.drawSize > 1 {
		e.drawSize--
	}

	// Camera speed grows as the pixel scale shrinks.
	speed := config.CameraSpeed * float64(config.MaxScale-e.scale+1)
	var accel vmath.Vec[float64, vmath.World]
	if in.IsHeld(input.KeyCameraUp) {
		accel.Y -= speed
	}
	if in.IsHeld(input.KeyCameraDown) {
		accel.Y += speed
	}
	if in.IsHeld(input.KeyCameraLeft) {
		accel.X -= speed
	}
	if in.IsHeld(input.KeyCameraRight) {
		accel.X += speed
	}
	e.world.UpdateCamera(accel, config.CameraResistance)

	e.handleMouse(in)
}

// handleMouse spawns bodies and supports grabbing an existing body and
// carrying it under the cursor for interactive collision tests.
func (e *Engine) handleMouse(in *input.Snapshot) {
	scale := float64(e.scale)

	if in.Pressed.Active {
		at := vmath.ScreenToWorld(in.Pressed.Pos, scale, e.world.CameraPos)
		e.dragged = e.hitTest(at)
	}

	if e.dragged >= 0 && in.Dragging() {
		body := &e.bodies[e.dragged]
		body.Shape.Centre = vmath.ScreenToWorld(in.Cursor, scale, e.world.CameraPos)
		body.Vel = vmath.Vec[float64, vmath.World]{}
		body.AngVel = 0
	}

	if !in.Released.Active {
		return
	}
	if e.dragged >= 0 {
		e.dragged = -1
		return
	}

	size := float64(e.drawSize * 2)
	mass := size * size

	switch {
	case in.WasPressed():
		pos := vmath.ScreenToWorld(in.Released.Pos, scale, e.world.CameraPos)
		e.Spawn(NewBody(pos, vmath.Vec[float64, vmath.World]{}, size, mass))
		e.log.Debug("spawned body", zap.Int("count", len(e.bodies)))

	case in.WasDragging():
		pos := vmath.ScreenToWorld(in.Pressed.Pos, scale, e.world.CameraPos)
		vpSize := e.world.Size()
		drawback := in.Pressed.Pos.Sub(in.Released.Pos)
		vel := vmath.CastUnit[vmath.World](drawback).
			Div(vmath.V[float64, vmath.World](float64(vpSize.X), float64(vpSize.Y))).
			MulN(config.MouseDrawbackMultiplier)
		e.Spawn(NewBody(pos, vel, size, mass))
		e.log.Debug("launched body", zap.Int("count", len(e.bodies)))
	}
}

// hitTest returns the index of the topmost body under the point, or
// -1.
func (e *Engine) hitTest(p vmath.Vec[float64, vmath.World]) int {
	for i := len(e.bodies) - 1; i >= 0; i-- {
		if e.bodies[i].Contains(p) {
			return i
		}
	}
	return -1
}

func (e *Engine) render(in *input.Snapshot) {
	e.world.DrawAll(world.Background)

	for i := range e.bodies {
		b := &e.bodies[i]
		colour := world.White
		if b.Collided {
			colour = world.Red
		}
		verts := b.Shape.WorldVertices()
		e.world.DrawPolygon(verts[:], colour)
	}

	if in.Dragging() && e.dragged < 0 {
		scale := float64(e.scale)
		from := vmath.ScreenToWorld(in.Pressed.Pos, scale, e.world.CameraPos)
		to := vmath.ScreenToWorld(in.Cursor, scale, e.world.CameraPos)
		e.world.DrawLine(from, to, world.Red)
	}

	// Square cursor preview in buffer space.
	cursor := vmath.ScreenToViewport(in.Cursor, float64(e.scale))
	cx, cy := int(cursor.X), int(cursor.Y)
	h := e.drawSize
	corners := [4]raster.Point{
		{X: cx - h, Y: cy - h},
		{X: cx + h, Y: cy - h},
		{X: cx + h, Y: cy + h},
		{X: cx - h, Y: cy + h},
	}
	for i := range corners {
		raster.Line(corners[i], corners[(i+1)%4], func(x, y int) {
			e.world.DrawBufferPixel(vmath.V[int, vmath.Viewport](x, y), world.Green)
		})
	}
}
