package sim

import (
	"time"

	"github.com/crawley-dev/physics-toy/internal/input"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// TextureData is one rendered frame: a tightly packed RGBA buffer,
// its viewport dimensions and the frame counter it was produced on.
type TextureData struct {
	Buf   []byte
	Size  vmath.Vec[int, vmath.Viewport]
	Frame uint64
}

// Frontend is an interactive engine. Every frame the driver hands it
// the current input snapshot and the elapsed wall time; the engine
// advances its state and repaints its buffer.
type Frontend interface {
	Update(in *input.Snapshot, dt time.Duration)
	TextureData() TextureData
	ResizeTexture(size vmath.Vec[int, vmath.Viewport])
	RescaleTexture(scale int)

	Running() bool
	ToggleRun()
	StepOnce()
	Clear()
}

// Observer is called after every advanced frame of a headless run.
type Observer interface {
	OnFrame(front Frontend, frame uint64, t float64)
}

// RunConfig controls a headless run.
type RunConfig struct {
	Dt     time.Duration
	Frames int
	Seed   int64
}

// Result summarises a headless run.
type Result struct {
	FramesRun int
	SimTime   float64
	Elapsed   time.Duration
	Seed      int64
}
