// Package frame holds the state the render loop carries from one frame to the
// next and the step that advances it from polled input.
package frame

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/curves/camera"
	"github.com/paperboard/curves/curve"
)

// Cursor is the last seen cursor position. Until Seen is set the first cursor
// event only records the position, so the view does not jump.
type Cursor struct {
	X, Y float64
	Seen bool
}

// Input is everything polled from the window for one frame.
type Input struct {
	Now float64 // seconds since start

	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	Select curve.Curve // zero value (curve.None) keeps the active curve

	CursorMoved bool
	CursorX     float64
	CursorY     float64

	ScrollY float64
}

type State struct {
	Camera    camera.Camera
	LastFrame float64
	DeltaTime float32
	Cursor    Cursor
	Active    curve.Curve
}

// NewState places the camera at position, seeds the cursor at the window
// centre and starts with the first curve active.
func NewState(position mgl32.Vec3, width, height int) State {
	return State{
		Camera: *camera.New(position),
		Cursor: Cursor{X: float64(width) / 2, Y: float64(height) / 2},
		Active: curve.Quadratic,
	}
}

// Update returns the state after applying one frame of input.
func (s State) Update(in Input) State {

	s.DeltaTime = float32(in.Now - s.LastFrame)
	s.LastFrame = in.Now

	// movement
	moves := []struct {
		pressed   bool
		direction camera.Movement
	}{
		{in.Forward, camera.Forward},
		{in.Backward, camera.Backward},
		{in.Left, camera.Left},
		{in.Right, camera.Right},
	}
	for _, m := range moves {
		if m.pressed {
			s.Camera.ProcessKeyboard(m.direction, s.DeltaTime)
		}
	}

	// mouse look
	if in.CursorMoved {
		if !s.Cursor.Seen {
			s.Cursor = Cursor{X: in.CursorX, Y: in.CursorY, Seen: true}
		}
		xoffset := float32(in.CursorX - s.Cursor.X)
		yoffset := float32(s.Cursor.Y - in.CursorY) // window y grows downwards
		s.Cursor.X, s.Cursor.Y = in.CursorX, in.CursorY
		s.Camera.ProcessMouseMovement(xoffset, yoffset, true)
	}

	// zoom
	if in.ScrollY != 0 {
		s.Camera.ProcessMouseScroll(float32(in.ScrollY))
	}

	if in.Select.Valid() {
		s.Active = in.Select
	}

	return s
}
