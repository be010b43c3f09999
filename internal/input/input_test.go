package input

import (
	"testing"
	"time"

	"github.com/crawley-dev/physics-toy/internal/vmath"
)

func sp(x, y float64) vmath.Vec[float64, vmath.Screen] {
	return vmath.V[float64, vmath.Screen](x, y)
}

func TestKeyEdges(t *testing.T) {
	var s Snapshot

	s.SetPressed(KeyToggleRun)
	if !s.IsPressed(KeyToggleRun) || !s.IsHeld(KeyToggleRun) {
		t.Fatal("press edge not recorded")
	}

	s.ClearFrame()
	if s.IsPressed(KeyToggleRun) {
		t.Error("press edge survived ClearFrame")
	}
	if !s.IsHeld(KeyToggleRun) {
		t.Error("held state should persist across frames")
	}

	s.SetHeld(KeyToggleRun, false)
	if s.IsHeld(KeyToggleRun) {
		t.Error("release not recorded")
	}
}

func TestDragDetection(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		press    vmath.Vec[float64, vmath.Screen]
		cursor   vmath.Vec[float64, vmath.Screen]
		dragging bool
	}{
		{"still", sp(100, 100), sp(100, 100), false},
		{"below threshold", sp(100, 100), sp(103, 102), false},
		{"x over threshold", sp(100, 100), sp(106, 100), true},
		{"y over threshold", sp(100, 100), sp(100, 94), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{
				Cursor:    tt.cursor,
				MouseDown: true,
				Pressed:   MouseEvent{Pos: tt.press, Time: now, Active: true},
			}
			if got := s.Dragging(); got != tt.dragging {
				t.Errorf("Dragging() = %v, want %v", got, tt.dragging)
			}
		})
	}
}

func TestReleaseClassification(t *testing.T) {
	now := time.Now()

	quickClick := Snapshot{
		Pressed:  MouseEvent{Pos: sp(50, 50), Time: now, Active: false},
		Released: MouseEvent{Pos: sp(51, 50), Time: now.Add(40 * time.Millisecond), Active: true},
	}
	if !quickClick.WasPressed() {
		t.Error("quick stationary release should classify as a click")
	}
	if quickClick.WasDragging() || quickClick.WasHeld() {
		t.Error("quick click misclassified as drag or hold")
	}

	dragRelease := Snapshot{
		Pressed:  MouseEvent{Pos: sp(50, 50), Time: now, Active: false},
		Released: MouseEvent{Pos: sp(90, 80), Time: now.Add(40 * time.Millisecond), Active: true},
	}
	if !dragRelease.WasDragging() {
		t.Error("displaced release should classify as a drag")
	}
	if dragRelease.WasPressed() {
		t.Error("drag release misclassified as a click")
	}

	longHold := Snapshot{
		Pressed:  MouseEvent{Pos: sp(50, 50), Time: now, Active: false},
		Released: MouseEvent{Pos: sp(50, 50), Time: now.Add(400 * time.Millisecond), Active: true},
	}
	if !longHold.WasHeld() {
		t.Error("long release should classify as a hold")
	}

	noRelease := Snapshot{}
	if noRelease.WasPressed() || noRelease.WasDragging() || noRelease.WasHeld() {
		t.Error("inactive release should classify as nothing")
	}
}
