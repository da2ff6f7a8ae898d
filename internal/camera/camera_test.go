package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type heldControls map[Movement]bool

func (h heldControls) Moving(m Movement) bool { return h[m] }

func TestSetTargetLooksAtOrigin(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{0, 5, 10})
	c.SetTarget(mgl32.Vec3{})

	want := mgl32.Vec3{0, -5, -10}.Normalize()
	assert.True(t, c.Forward().ApproxEqualThreshold(want, 1e-5), "forward %v", c.Forward())

	// the origin projects to the center of the view
	clip := c.ProjectionMatrix(16.0 / 9).Mul4(c.ViewMatrix()).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-5)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-5)
}

func TestSetTargetSamePointIsNoop(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{1, 2, 3})
	c.SetTarget(mgl32.Vec3{1, 2, 3})
	yaw, pitch := c.Rotation()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
}

func TestUpdateRequiresAttachedControls(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{})
	c.Update(1)
	assert.Equal(t, mgl32.Vec3{}, c.Position)

	c.AttachControl(heldControls{MoveForward: true})
	assert.True(t, c.Attached())
	c.Update(1)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-5), "position %v", c.Position)

	c.DetachControl()
	c.Update(1)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-5))
}

func TestUpdateStrafesAndClimbs(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{})
	c.SetTarget(mgl32.Vec3{0, 0, -1})
	c.Speed = 2

	c.AttachControl(heldControls{MoveRight: true})
	c.Update(0.5)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "position %v", c.Position)

	c.AttachControl(heldControls{MoveUp: true, MoveDown: true})
	c.Update(0.5)
	assert.True(t, c.Position.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5), "opposite moves cancel")
}

func TestHandlePointerDrag(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{})
	c.AttachControl(heldControls{})

	c.HandlePointer(100, 100, true) // first sample only anchors
	yaw, pitch := c.Rotation()
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)

	c.HandlePointer(100+c.AngularSensibility, 100, true)
	yaw, _ = c.Rotation()
	assert.InDelta(t, -1, yaw, 1e-9)

	// releasing resets the anchor
	c.HandlePointer(0, 0, false)
	c.HandlePointer(500, 500, true)
	yaw, _ = c.Rotation()
	assert.InDelta(t, -1, yaw, 1e-9)
}

func TestHandlePointerClampsPitch(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{})
	c.AttachControl(heldControls{})
	c.HandlePointer(0, 0, true)
	c.HandlePointer(0, -1e6, true)
	_, pitch := c.Rotation()
	assert.Less(t, pitch, math.Pi/2)
	assert.Greater(t, pitch, 1.5)
}

func TestProjectionFallsBackOnBadAspect(t *testing.T) {
	c := NewFreeCamera("camera", mgl32.Vec3{})
	assert.Equal(t, c.ProjectionMatrix(1), c.ProjectionMatrix(0))
}
