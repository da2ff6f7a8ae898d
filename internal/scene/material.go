package scene

import "github.com/go-gl/mathgl/mgl32"

// Vertex attribute and uniform names shared by every shader program in the scene.
var (
	StandardAttributes = []string{"position", "normal", "uv"}
	StandardUniforms   = []string{"world", "worldView", "worldViewProjection", "view", "projection", "lightPos"}
)

// MaterialOptions declares the interface of a shader program.
type MaterialOptions struct {
	Attributes []string
	Uniforms   []string
}

// StandardMaterialOptions returns the {position, normal, uv} /
// {world, worldView, worldViewProjection, view, projection, lightPos} interface.
func StandardMaterialOptions() MaterialOptions {
	return MaterialOptions{
		Attributes: append([]string(nil), StandardAttributes...),
		Uniforms:   append([]string(nil), StandardUniforms...),
	}
}

// HasUniform reports whether name is declared.
func (o MaterialOptions) HasUniform(name string) bool {
	for _, u := range o.Uniforms {
		if u == name {
			return true
		}
	}
	return false
}

// Material is a shader program with its stored uniform values.
type Material interface {
	Name() string
	// Path is the shader program reference, e.g. "liquids".
	Path() string
	Options() MaterialOptions
	SetVector3(name string, v mgl32.Vec3)
	Vector3(name string) (mgl32.Vec3, bool)
}

// Engine compiles shader programs into materials.
type Engine interface {
	CreateShaderMaterial(name, path string, opts MaterialOptions) (Material, error)
}
