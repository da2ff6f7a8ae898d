package animation

import (
	"context"
	"math"
	"testing"

	"liquids/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock float64

func (c fixedClock) ElapsedMillisSinceLastFrame() float64 { return float64(c) }

type material struct {
	path string
	opts scene.MaterialOptions
	vec3 map[string]mgl32.Vec3
	sets int
}

func (m *material) Name() string                   { return "shader" }
func (m *material) Path() string                   { return m.path }
func (m *material) Options() scene.MaterialOptions { return m.opts }
func (m *material) SetVector3(name string, v mgl32.Vec3) {
	m.sets++
	m.vec3[name] = v
}
func (m *material) Vector3(name string) (mgl32.Vec3, bool) {
	v, ok := m.vec3[name]
	return v, ok
}

type engine struct{ byPath map[string]*material }

func (e *engine) CreateShaderMaterial(name, path string, opts scene.MaterialOptions) (scene.Material, error) {
	m := &material{path: path, opts: opts, vec3: map[string]mgl32.Vec3{}}
	e.byPath[path] = m
	return m, nil
}

func newScene(t *testing.T) (*scene.Scene, *engine) {
	t.Helper()
	eng := &engine{byPath: map[string]*material{}}
	sc, err := scene.Build(context.Background(), eng, scene.BuildOptions{})
	require.NoError(t, err)
	return sc, eng
}

func TestAdvanceFiveSecondsIsOneRadian(t *testing.T) {
	s := State{Angle: 0.25}
	s.Advance(5000)
	assert.Equal(t, 1.25, s.Angle)
}

func TestAngleAccumulatesElapsedTime(t *testing.T) {
	var s State
	assert.Zero(t, s.Angle)

	frames := []float64{16, 17, 15.5, 0, 250, 1000}
	var total float64
	for n, d := range frames {
		s.Advance(d)
		total += d / MillisPerRadian
		assert.Equal(t, total, s.Angle, "after frame %d", n)
	}
	assert.InDelta(t, 1298.5/5000, s.Angle, 1e-12)
}

func TestAngleIsNotWrapped(t *testing.T) {
	s := State{}
	for i := 0; i < 10; i++ {
		s.Advance(5000 * math.Pi)
	}
	assert.InDelta(t, 10*math.Pi, s.Angle, 1e-9)
}

func TestOrbitPosition(t *testing.T) {
	tests := []struct {
		angle float64
		want  mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, 1, 5}},
		{math.Pi / 2, mgl32.Vec3{5, 1, 0}},
		{math.Pi, mgl32.Vec3{0, 1, -5}},
		{3 * math.Pi / 2, mgl32.Vec3{-5, 1, 0}},
	}
	for _, tt := range tests {
		got := OrbitPosition(tt.angle)
		assert.True(t, got.ApproxEqualThreshold(tt.want, 1e-5), "angle %v: got %v", tt.angle, got)
	}
}

func TestUpdateKeepsLightAndSphereInLockStep(t *testing.T) {
	sc, eng := newScene(t)
	liquids := eng.byPath[scene.LiquidsProgram]

	var s State
	for _, d := range []float64{16.6, 33.3, 5000, 1, 12345} {
		Update(&s, fixedClock(d), sc)

		want := OrbitPosition(s.Angle)
		light, ok := liquids.Vector3(LightUniform)
		require.True(t, ok)
		assert.Equal(t, want, light)
		assert.Equal(t, want, sc.Sphere.Position)
		assert.Equal(t, light, sc.Sphere.Position)
	}
}

func TestUpdateTouchesNothingElse(t *testing.T) {
	sc, eng := newScene(t)
	white := eng.byPath[scene.WhiteProgram]
	camPos := sc.Camera.Position
	knotPos := sc.TorusKnot.Position

	var s State
	Update(&s, fixedClock(5000), sc)

	assert.Equal(t, 1.0, s.Angle)
	assert.Equal(t, camPos, sc.Camera.Position)
	assert.Equal(t, knotPos, sc.TorusKnot.Position)
	assert.Zero(t, white.sets, "white material is never written")
	assert.Equal(t, 1, eng.byPath[scene.LiquidsProgram].sets)
	assert.Same(t, sc.Materials()[1], sc.Sphere.Material())
}
