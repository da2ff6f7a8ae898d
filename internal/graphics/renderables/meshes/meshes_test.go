package meshes

import (
	"context"
	"testing"

	renderer "liquids/internal/graphics/renderer"
	"liquids/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainMaterial struct {
	name, path string
	opts       scene.MaterialOptions
}

func (m *plainMaterial) Name() string                      { return m.name }
func (m *plainMaterial) Path() string                      { return m.path }
func (m *plainMaterial) Options() scene.MaterialOptions    { return m.opts }
func (m *plainMaterial) SetVector3(string, mgl32.Vec3)     {}
func (m *plainMaterial) Vector3(string) (mgl32.Vec3, bool) { return mgl32.Vec3{}, false }

type plainEngine struct{}

func (plainEngine) CreateShaderMaterial(name, path string, opts scene.MaterialOptions) (scene.Material, error) {
	return &plainMaterial{name: name, path: path, opts: opts}, nil
}

func TestInitRejectsUnbindableMaterial(t *testing.T) {
	sc, err := scene.Build(context.Background(), plainEngine{}, scene.BuildOptions{})
	require.NoError(t, err)

	m := NewMeshes(sc)
	err = m.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skybox")
	assert.Empty(t, m.gpu)
}

func TestRenderSkipsMeshesNotUploaded(t *testing.T) {
	sc, err := scene.Build(context.Background(), plainEngine{}, scene.BuildOptions{})
	require.NoError(t, err)

	m := NewMeshes(sc)
	assert.NotPanics(t, func() {
		m.Render(renderer.RenderContext{Scene: sc, Camera: sc.Camera})
	})
	assert.Equal(t, "meshes", m.Name())
}
