// Package input defines the per-frame snapshot the windowing layer
// hands to the simulation core. The core never talks to a real event
// queue; it sees one immutable Snapshot per frame and derives press,
// hold and drag semantics from it.
package input

import (
	"time"

	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// Key identifies a sandbox binding. Values are deliberately decoupled
// from any windowing toolkit's key codes; the display layer translates.
type Key uint8

const (
	KeyNone Key = iota
	KeyToggleRun
	KeyStep
	KeyClear
	KeyResetView
	KeyCameraUp
	KeyCameraDown
	KeyCameraLeft
	KeyCameraRight
	KeySizeUp
	KeySizeDown
	KeyShapeCycle
	KeyScaleUp
	KeyScaleDown
	keyCount
)

const (
	// DragThresholdPx is the cursor displacement beyond which a held
	// mouse button counts as a drag rather than a click.
	DragThresholdPx = 5.0

	// HoldThreshold separates a click from a hold on release.
	HoldThreshold = 250 * time.Millisecond
)

// MouseEvent records a press or release: where, when, and whether the
// event is armed for this frame.
type MouseEvent struct {
	Pos    vmath.Vec[float64, vmath.Screen]
	Time   time.Time
	Active bool
}

// Snapshot is everything the core sees of the outside world for one
// frame. The windowing layer fills it; the core only reads it.
type Snapshot struct {
	Cursor    vmath.Vec[float64, vmath.Screen]
	MouseDown bool
	Pressed   MouseEvent
	Released  MouseEvent

	held    [keyCount]bool
	pressed [keyCount]bool

	// Elapsed is wall-clock time since the previous frame.
	Elapsed time.Duration
}

// SetHeld marks a key as currently held down.
func (s *Snapshot) SetHeld(k Key, down bool) {
	if k < keyCount {
		s.held[k] = down
	}
}

// SetPressed marks a key's press edge for this frame.
func (s *Snapshot) SetPressed(k Key) {
	if k < keyCount {
		s.pressed[k] = true
		s.held[k] = true
	}
}

// ClearFrame resets the per-frame edges (key presses and the release
// event) once the core has consumed them. Held state persists.
func (s *Snapshot) ClearFrame() {
	s.pressed = [keyCount]bool{}
	s.Released.Active = false
	s.Pressed.Active = false
}

// IsPressed reports a press edge this frame.
func (s *Snapshot) IsPressed(k Key) bool { return k < keyCount && s.pressed[k] }

// IsHeld reports whether the key is currently down.
func (s *Snapshot) IsHeld(k Key) bool { return k < keyCount && s.held[k] }

// Dragging reports an in-progress drag: mouse down with the cursor
// displaced beyond the pixel threshold from the press position.
func (s *Snapshot) Dragging() bool {
	if !s.MouseDown {
		return false
	}
	delta := s.Cursor.Sub(s.Pressed.Pos)
	return absf(delta.X) >= DragThresholdPx || absf(delta.Y) >= DragThresholdPx
}

// WasDragging reports a drag that ended this frame: a release whose
// position moved beyond the threshold from the press.
func (s *Snapshot) WasDragging() bool {
	if !s.Released.Active {
		return false
	}
	delta := s.Released.Pos.Sub(s.Pressed.Pos)
	return absf(delta.X) >= DragThresholdPx || absf(delta.Y) >= DragThresholdPx
}

// WasPressed reports a click that ended this frame: released quickly
// without crossing the drag threshold.
func (s *Snapshot) WasPressed() bool {
	return s.Released.Active &&
		s.Released.Time.Sub(s.Pressed.Time) < HoldThreshold &&
		!s.WasDragging()
}

// WasHeld reports a long press that ended this frame.
func (s *Snapshot) WasHeld() bool {
	return s.Released.Active &&
		s.Released.Time.Sub(s.Pressed.Time) > HoldThreshold
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
