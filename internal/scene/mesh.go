package scene

import (
	"liquids/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a piece of geometry placed in the world and shaded by one material.
// The material is fixed for the mesh's lifetime.
type Mesh struct {
	name     string
	Geometry *geometry.VertexData
	Position mgl32.Vec3

	// InfiniteDistance keeps the mesh centered on the camera (skyboxes).
	InfiniteDistance bool

	material Material
}

// NewMesh creates a mesh at the origin bound to material.
func NewMesh(name string, data *geometry.VertexData, material Material) *Mesh {
	return &Mesh{name: name, Geometry: data, material: material}
}

func (m *Mesh) Name() string { return m.name }

// Material returns the bound material.
func (m *Mesh) Material() Material { return m.material }

// World returns the model matrix. eye is used for infinite-distance meshes.
func (m *Mesh) World(eye mgl32.Vec3) mgl32.Mat4 {
	p := m.Position
	if m.InfiniteDistance {
		p = p.Add(eye)
	}
	return mgl32.Translate3D(p.X(), p.Y(), p.Z())
}
