package meshes

import (
	"fmt"

	"liquids/internal/graphics"
	renderer "liquids/internal/graphics/renderer"
	"liquids/internal/profiling"
	"liquids/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Binder is a material that can activate its program with transform uniforms.
type Binder interface {
	Bind(world, view, projection mgl32.Mat4)
}

// Meshes draws the scene's draw list, each mesh with its own material.
type Meshes struct {
	scene *scene.Scene
	gpu   map[*scene.Mesh]*graphics.GPUMesh
}

// NewMeshes creates the renderable for sc.
func NewMeshes(sc *scene.Scene) *Meshes {
	return &Meshes{scene: sc, gpu: make(map[*scene.Mesh]*graphics.GPUMesh)}
}

func (m *Meshes) Name() string { return "meshes" }

// Init uploads every mesh in the draw list.
func (m *Meshes) Init() error {
	for _, mesh := range m.scene.DrawList() {
		if _, ok := mesh.Material().(Binder); !ok {
			return fmt.Errorf("meshes: material of %s cannot be bound", mesh.Name())
		}
		m.gpu[mesh] = graphics.UploadMesh(mesh.Geometry)
	}
	return nil
}

func (m *Meshes) Render(ctx renderer.RenderContext) {
	eye := ctx.Camera.Position
	for _, mesh := range ctx.Scene.DrawList() {
		gpu, ok := m.gpu[mesh]
		if !ok {
			continue
		}
		func() {
			defer profiling.Track("renderer.meshes." + mesh.Name())()
			// infinite-distance meshes sit behind everything else
			if mesh.InfiniteDistance {
				gl.DepthMask(false)
				defer gl.DepthMask(true)
			}
			mesh.Material().(Binder).Bind(mesh.World(eye), ctx.View, ctx.Proj)
			gpu.Draw()
		}()
	}
}

func (m *Meshes) Dispose() {
	for mesh, gpu := range m.gpu {
		gpu.Delete()
		delete(m.gpu, mesh)
	}
}

func (m *Meshes) SetViewport(width, height int) {}
