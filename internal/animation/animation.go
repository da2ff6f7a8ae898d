// Package animation advances the orbit angle that drives the light and the sphere.
package animation

import (
	"math"

	"liquids/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MillisPerRadian is how many milliseconds of frame time advance the angle by one radian.
	MillisPerRadian = 5000
	OrbitRadius     = 5
	OrbitHeight     = 1

	// LightUniform is the uniform receiving the orbit position.
	LightUniform = "lightPos"
)

// Clock reports the duration of the last frame.
type Clock interface {
	ElapsedMillisSinceLastFrame() float64
}

// State is the animation state owned by the frame loop.
type State struct {
	// Angle grows without bound; it is never reset or wrapped.
	Angle float64
}

// Advance adds deltaMillis of frame time to the angle.
func (s *State) Advance(deltaMillis float64) {
	s.Angle += deltaMillis / MillisPerRadian
}

// OrbitPosition returns (5 sin a, 1, 5 cos a).
func OrbitPosition(angle float64) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(OrbitRadius * math.Sin(angle)),
		OrbitHeight,
		float32(OrbitRadius * math.Cos(angle)),
	}
}

// Update advances the angle by the clock's frame time, then moves the liquids
// light and the sphere to the same orbit position. Nothing else in the scene changes.
func Update(s *State, clock Clock, sc *scene.Scene) {
	s.Advance(clock.ElapsedMillisSinceLastFrame())
	p := OrbitPosition(s.Angle)
	sc.LiquidsMaterial.SetVector3(LightUniform, p)
	sc.Sphere.Position = p
}
