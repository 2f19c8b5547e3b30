// Package camera implements a free-look first person camera.
//
// Orientation is kept as yaw and pitch in degrees. Front, up and right are
// derived from them after every change and always form an orthonormal basis.
//
// https://learnopengl.com/Getting-started/Camera
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a keyboard movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// defaults for a new camera
const (
	Yaw         = -90.0 // looking down -z
	Pitch       = 0.0
	Speed       = 2.5 // units per second
	Sensitivity = 0.1 // degrees per cursor pixel
	Zoom        = 45.0
	ZoomMin     = 1.0
	ZoomMax     = 45.0
	PitchLimit  = 89.0 // keeps front away from world up
)

// WorldUp is the up reference the basis is built against.
var WorldUp = mgl32.Vec3{0, 1, 0}

type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // vertical field of view in degrees
}

// New returns a camera at position with default orientation and settings.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          WorldUp,
		Yaw:              Yaw,
		Pitch:            Pitch,
		MovementSpeed:    Speed,
		MouseSensitivity: Sensitivity,
		Zoom:             Zoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix is the world to eye space transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection is the eye to clip space transform using Zoom as field of view.
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera speed*deltaTime units along front or right.
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {

	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -PitchLimit, PitchLimit)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows (positive yoffset) or widens the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yoffset, ZoomMin, ZoomMax)
}

func (c *Camera) updateVectors() {

	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()

	// gram-schmidt against world up
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()

}
