// Package camera implements a free-flying perspective camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a direction the camera can be driven in by attached controls.
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Controls reports which movements are currently held.
type Controls interface {
	Moving(m Movement) bool
}

// FreeCamera looks along a yaw/pitch direction from Position.
// Yaw 0 looks down +Z, pitch is positive upwards, both in radians.
type FreeCamera struct {
	Name     string
	Position mgl32.Vec3

	yaw   float64
	pitch float64

	FOV  float32 // vertical field of view, radians
	MinZ float32
	MaxZ float32

	// Speed is the travel distance in units per second.
	Speed float32
	// AngularSensibility is pixels of pointer travel per radian of rotation.
	AngularSensibility float64

	controls Controls
	lastX    float64
	lastY    float64
	tracking bool
}

// NewFreeCamera returns a camera at position looking down +Z.
func NewFreeCamera(name string, position mgl32.Vec3) *FreeCamera {
	return &FreeCamera{
		Name:               name,
		Position:           position,
		FOV:                0.8,
		MinZ:               1,
		MaxZ:               10000,
		Speed:              5,
		AngularSensibility: 2000,
	}
}

// SetTarget points the camera at target.
func (c *FreeCamera) SetTarget(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.yaw = math.Atan2(float64(dir.X()), float64(dir.Z()))
	c.pitch = math.Asin(float64(dir.Y()))
}

// Rotation returns yaw and pitch in radians.
func (c *FreeCamera) Rotation() (yaw, pitch float64) {
	return c.yaw, c.pitch
}

// Forward returns the unit view direction.
func (c *FreeCamera) Forward() mgl32.Vec3 {
	cp := math.Cos(c.pitch)
	return mgl32.Vec3{
		float32(math.Sin(c.yaw) * cp),
		float32(math.Sin(c.pitch)),
		float32(math.Cos(c.yaw) * cp),
	}.Normalize()
}

// Right returns the unit vector to the camera's right, parallel to the ground.
func (c *FreeCamera) Right() mgl32.Vec3 {
	return c.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Target returns the point one unit in front of the camera.
func (c *FreeCamera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Forward())
}

// ViewMatrix returns the world-to-view transform.
func (c *FreeCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *FreeCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(c.FOV, aspect, c.MinZ, c.MaxZ)
}

// AttachControl makes Update and HandlePointer drive the camera.
func (c *FreeCamera) AttachControl(controls Controls) {
	c.controls = controls
	c.tracking = false
}

// DetachControl stops input from moving the camera.
func (c *FreeCamera) DetachControl() {
	c.controls = nil
}

// Attached reports whether controls are attached.
func (c *FreeCamera) Attached() bool {
	return c.controls != nil
}

// Update moves the camera according to held movements over dt seconds.
func (c *FreeCamera) Update(dt float64) {
	if c.controls == nil || dt <= 0 {
		return
	}
	var move mgl32.Vec3
	forward := c.Forward()
	right := c.Right()
	up := mgl32.Vec3{0, 1, 0}

	if c.controls.Moving(MoveForward) {
		move = move.Add(forward)
	}
	if c.controls.Moving(MoveBackward) {
		move = move.Sub(forward)
	}
	if c.controls.Moving(MoveRight) {
		move = move.Add(right)
	}
	if c.controls.Moving(MoveLeft) {
		move = move.Sub(right)
	}
	if c.controls.Moving(MoveUp) {
		move = move.Add(up)
	}
	if c.controls.Moving(MoveDown) {
		move = move.Sub(up)
	}
	if move.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(move.Normalize().Mul(c.Speed * float32(dt)))
}

// HandlePointer rotates the camera while dragging. Pointer positions are in pixels.
func (c *FreeCamera) HandlePointer(x, y float64, dragging bool) {
	if c.controls == nil || !dragging {
		c.tracking = false
		return
	}
	if !c.tracking {
		c.lastX, c.lastY = x, y
		c.tracking = true
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	// dragging right turns right, dragging down looks down
	c.yaw -= dx / c.AngularSensibility
	c.pitch -= dy / c.AngularSensibility

	const limit = math.Pi/2 - 0.01
	if c.pitch > limit {
		c.pitch = limit
	}
	if c.pitch < -limit {
		c.pitch = -limit
	}
}
