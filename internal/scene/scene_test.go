package scene

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"liquids/internal/camera"
	"liquids/internal/xr"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaterial struct {
	name, path string
	opts       MaterialOptions
	vec3       map[string]mgl32.Vec3
}

func (m *fakeMaterial) Name() string             { return m.name }
func (m *fakeMaterial) Path() string             { return m.path }
func (m *fakeMaterial) Options() MaterialOptions { return m.opts }
func (m *fakeMaterial) SetVector3(name string, v mgl32.Vec3) {
	m.vec3[name] = v
}
func (m *fakeMaterial) Vector3(name string) (mgl32.Vec3, bool) {
	v, ok := m.vec3[name]
	return v, ok
}

type fakeEngine struct {
	created []*fakeMaterial
	failOn  string
}

func (e *fakeEngine) CreateShaderMaterial(name, path string, opts MaterialOptions) (Material, error) {
	if path == e.failOn {
		return nil, errors.New("compile failed")
	}
	m := &fakeMaterial{name: name, path: path, opts: opts, vec3: map[string]mgl32.Vec3{}}
	e.created = append(e.created, m)
	return m, nil
}

type noControls struct{}

func (noControls) Moving(camera.Movement) bool { return false }

func TestBuildPopulatesScene(t *testing.T) {
	eng := &fakeEngine{}
	s, err := Build(context.Background(), eng, BuildOptions{Controls: noControls{}})
	require.NoError(t, err)
	assert.Equal(t, Ready, s.State())

	require.Len(t, s.Cameras(), 1)
	assert.Equal(t, CameraPosition, s.Camera.Position)
	assert.True(t, s.Camera.Attached())
	assert.True(t, s.Camera.Forward().ApproxEqualThreshold(CameraPosition.Mul(-1).Normalize(), 1e-5))

	meshes := s.Meshes()
	materials := s.Materials()
	require.Len(t, meshes, 2)
	require.Len(t, materials, 2)

	assert.Equal(t, "torusKnot", meshes[0].Name())
	assert.Equal(t, TorusKnotPosition, meshes[0].Position)
	assert.Same(t, materials[0], meshes[0].Material())
	assert.Equal(t, LiquidsProgram, materials[0].Path())
	assert.Equal(t, 325, meshes[0].Geometry.VertexCount())

	assert.Equal(t, "sphere", meshes[1].Name())
	assert.Equal(t, mgl32.Vec3{}, meshes[1].Position)
	assert.Same(t, materials[1], meshes[1].Material())
	assert.Equal(t, WhiteProgram, materials[1].Path())

	assert.NotSame(t, materials[0], materials[1])
	for _, m := range materials {
		assert.Equal(t, "shader", m.Name())
		assert.Equal(t, StandardAttributes, m.Options().Attributes)
		assert.Equal(t, StandardUniforms, m.Options().Uniforms)
	}
}

func TestBuildCompilesProgramsInOrder(t *testing.T) {
	eng := &fakeEngine{}
	_, err := Build(context.Background(), eng, BuildOptions{})
	require.NoError(t, err)

	var paths []string
	for _, m := range eng.created {
		paths = append(paths, m.path)
	}
	assert.Equal(t, []string{"liquids", "white", "ground", "skybox"}, paths)
}

func TestEnvironment(t *testing.T) {
	s, err := Build(context.Background(), &fakeEngine{}, BuildOptions{})
	require.NoError(t, err)

	env := s.Environment
	require.NotNil(t, env)
	assert.Equal(t, "ground", env.Ground.Name())
	assert.True(t, env.Skybox.InfiniteDistance)
	assert.False(t, env.Ground.Material().Options().HasUniform("lightPos"))
	assert.Equal(t, DefaultClearColor, env.ClearColor)

	min, max := env.Ground.Geometry.Bounds()
	assert.Equal(t, mgl32.Vec3{-7.5, 0, -7.5}, min)
	assert.Equal(t, mgl32.Vec3{7.5, 0, 7.5}, max)

	draw := s.DrawList()
	require.Len(t, draw, 4)
	assert.Same(t, env.Skybox, draw[0])
	assert.Same(t, s.Sphere, draw[3])
}

func TestSkyboxFollowsEye(t *testing.T) {
	s, err := Build(context.Background(), &fakeEngine{}, BuildOptions{})
	require.NoError(t, err)

	eye := mgl32.Vec3{3, 4, 5}
	assert.Equal(t, mgl32.Translate3D(3, 4, 5), s.Environment.Skybox.World(eye))
	assert.Equal(t, mgl32.Translate3D(0, 1, 0), s.TorusKnot.World(eye))
}

func TestBuildRequestsImmersiveWithGroundFloor(t *testing.T) {
	var got xr.Options
	var calls int
	req := func(ctx context.Context, opts xr.Options) *xr.Pending {
		calls++
		got = opts
		return xr.Request(ctx, xr.Options{
			FloorMeshes:   opts.FloorMeshes,
			ManifestPaths: []string{filepath.Join(t.TempDir(), "none.json")},
		})
	}

	s, err := Build(context.Background(), &fakeEngine{}, BuildOptions{Immersive: req})
	require.NoError(t, err)
	// the scene is usable before the request resolves
	assert.Equal(t, Ready, s.State())
	assert.Equal(t, 1, calls)
	require.Len(t, got.FloorMeshes, 1)
	assert.Same(t, s.Environment.Ground, got.FloorMeshes[0])

	_, err = s.Immersive().Result()
	assert.ErrorIs(t, err, xr.ErrUnsupported)
}

func TestBuildWithoutImmersive(t *testing.T) {
	s, err := Build(context.Background(), &fakeEngine{}, BuildOptions{})
	require.NoError(t, err)
	assert.Nil(t, s.Immersive())
	assert.False(t, s.Camera.Attached())
}

func TestBuildFailure(t *testing.T) {
	for _, program := range []string{"liquids", "white", "ground", "skybox"} {
		t.Run(program, func(t *testing.T) {
			s := New()
			err := s.Build(context.Background(), &fakeEngine{failOn: program}, BuildOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), program)
			assert.Equal(t, Uninitialized, s.State())
			assert.Nil(t, s.Meshes())
			assert.Nil(t, s.Materials())
		})
	}
}

func TestBuildOnlyOnce(t *testing.T) {
	s := New()
	assert.Equal(t, Uninitialized, s.State())
	require.NoError(t, s.Build(context.Background(), &fakeEngine{}, BuildOptions{}))
	assert.ErrorIs(t, s.Build(context.Background(), &fakeEngine{}, BuildOptions{}), ErrAlreadyBuilt)
	assert.Equal(t, Ready, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "building", Building.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "State(7)", State(7).String())
}
