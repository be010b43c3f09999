package gravity

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

// Engine is the interactive N-body frontend.
type Engine struct {
	world     *world.World
	particles []Particle

	running  bool
	stepOnce bool
	frame    uint64

	screenSize vmath.Vec[int, vmath.Screen]
	scale      int

	drawSize  int
	drawShape raster.Shape

	gravity     float64
	damping     float64
	restitution float64
	merge       bool
	workers     int

	log *zap.Logger
}

var _ sim.Frontend = (*Engine)(nil)

// New builds an engine from a validated config. The viewport is the
// window size divided by the pixel scale.
func New(cfg *config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	screen := vmath.V[int, vmath.Screen](cfg.Width, cfg.Height)
	viewport := vmath.V[int, vmath.Viewport](cfg.Width/cfg.Scale, cfg.Height/cfg.Scale)

	e := &Engine{
		world:       world.New(viewport, log),
		particles:   make([]Particle, 0, 64),
		screenSize:  screen,
		scale:       cfg.Scale,
		drawSize:    cfg.DrawSize,
		drawShape:   raster.CircleOutlineShape,
		gravity:     cfg.Gravity,
		damping:     cfg.Damping,
		restitution: cfg.Restitution,
		merge:       cfg.Collision == config.CollisionMerge,
		workers:     cfg.Workers,
		log:         log,
	}

	for _, ps := range cfg.Particles {
		e.particles = append(e.particles, NewParticle(
			vmath.V[float64, vmath.World](ps.X, ps.Y),
			vmath.V[float64, vmath.World](ps.VX, ps.VY),
			ps.Radius,
		))
	}
	return e
}

// Particles exposes the live particle slice for metrics and tests.
func (e *Engine) Particles() []Particle { return e.particles }

// Sample aggregates the physical state for observers.
func (e *Engine) Sample() metrics.Sample {
	var s metrics.Sample
	var momentum vmath.Vec[float64, vmath.World]
	for i := range e.particles {
		p := &e.particles[i]
		s.TotalMass += p.Mass
		s.KineticEnergy += p.KineticEnergy()
		momentum = momentum.Add(p.Momentum())
	}
	s.Entities = len(e.particles)
	s.Momentum = vmath.Length(momentum)
	return s
}

// Spawn adds a particle directly, bypassing input handling.
func (e *Engine) Spawn(p Particle) { e.particles = append(e.particles, p) }

func (e *Engine) Running() bool { return e.running }
func (e *Engine) ToggleRun()    { e.running = !e.running }
func (e *Engine) StepOnce()     { e.stepOnce = true }
func (e *Engine) Clear()        { e.particles = e.particles[:0] }

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

// RescaleTexture changes the pixel scale, keeping the window size and
// recomputing the viewport from it. Out-of-range scales are clamped.
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

// Update runs one frame: input, then physics when running, then paint.
func (e *Engine) Update(in *input.Snapshot, dt time.Duration) {
	e.handleInput(in, dt)

	if e.running || e.stepOnce {
		e.step(dt.Seconds())
		e.stepOnce = false
	}

	e.render(in)
	e.frame++

	if e.frame%uint64(config.TargetFPS) == 0 {
		e.log.Debug("particle count", zap.Int("count", len(e.particles)))
	}
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
	if in.IsPressed(input.KeyShapeCycle) {
		e.drawShape = e.drawShape.Next()
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

// handleMouse spawns particles. A click drops a resting particle at
// the cursor; releasing a drag launches one from the press position
// with a slingshot velocity opposite the drag.
func (e *Engine) handleMouse(in *input.Snapshot) {
	scale := float64(e.scale)

	switch {
	case in.WasPressed():
		pos := vmath.ScreenToWorld(in.Released.Pos, scale, e.world.CameraPos)
		e.Spawn(NewParticle(pos, vmath.Vec[float64, vmath.World]{}, float64(e.drawSize)))
		e.log.Debug("spawned particle",
			zap.Float64("x", pos.X), zap.Float64("y", pos.Y),
			zap.Int("count", len(e.particles)))

	case in.WasDragging():
		pos := vmath.ScreenToWorld(in.Pressed.Pos, scale, e.world.CameraPos)
		size := e.world.Size()
		drawback := in.Pressed.Pos.Sub(in.Released.Pos)
		vel := vmath.CastUnit[vmath.World](drawback).
			Div(vmath.V[float64, vmath.World](float64(size.X), float64(size.Y))).
			MulN(config.MouseDrawbackMultiplier)
		e.Spawn(NewParticle(pos, vel, float64(e.drawSize)))
		e.log.Debug("launched particle",
			zap.Float64("vx", vel.X), zap.Float64("vy", vel.Y),
			zap.Int("count", len(e.particles)))
	}
}

func (e *Engine) render(in *input.Snapshot) {
	e.world.DrawAll(world.Background)

	for i := range e.particles {
		p := &e.particles[i]
		e.world.DrawCircleFill(p.Pos, int(p.Radius), world.White)
	}

	// Aim line while dragging, from the press point to the cursor.
	if in.Dragging() {
		scale := float64(e.scale)
		from := vmath.ScreenToWorld(in.Pressed.Pos, scale, e.world.CameraPos)
		to := vmath.ScreenToWorld(in.Cursor, scale, e.world.CameraPos)
		e.world.DrawLine(from, to, world.Red)
	}

	// Cursor outline in buffer space so it never parallaxes with the
	// camera.
	cursor := vmath.ScreenToViewport(in.Cursor, float64(e.scale))
	cx, cy := int(cursor.X), int(cursor.Y)
	e.drawShape.Draw(e.drawSize, func(dx, dy int) {
		e.world.DrawBufferPixel(vmath.V[int, vmath.Viewport](cx+dx, cy+dy), world.Green)
	})
}
