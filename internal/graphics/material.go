package graphics

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"liquids/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader program files are <dir>/<path>.vertex.fx and <dir>/<path>.fragment.fx.
const (
	VertexSuffix   = ".vertex.fx"
	FragmentSuffix = ".fragment.fx"
)

// ProgramFiles returns the vertex and fragment source paths of a program.
func ProgramFiles(dir, path string) (vertex, fragment string) {
	base := filepath.Join(dir, path)
	return base + VertexSuffix, base + FragmentSuffix
}

// ProgramName maps a shader source file back to its program path.
// ok is false for files that are not shader sources.
func ProgramName(file string) (string, bool) {
	base := filepath.Base(file)
	for _, suffix := range []string{VertexSuffix, FragmentSuffix} {
		if name, found := strings.CutSuffix(base, suffix); found && name != "" {
			return name, true
		}
	}
	return "", false
}

type compileFunc func(vertexPath, fragmentPath string, attributes ...string) (*Shader, error)

// ShaderMaterial is a compiled program plus the uniform values set on it.
// Values are uploaded on every Bind.
type ShaderMaterial struct {
	name    string
	path    string
	dir     string
	opts    scene.MaterialOptions
	shader  *Shader
	vectors map[string]mgl32.Vec3
	compile compileFunc
}

var _ scene.Material = (*ShaderMaterial)(nil)

func (m *ShaderMaterial) Name() string                   { return m.name }
func (m *ShaderMaterial) Path() string                   { return m.path }
func (m *ShaderMaterial) Options() scene.MaterialOptions { return m.opts }

// SetVector3 stores v for the uniform name. Undeclared uniforms are ignored.
func (m *ShaderMaterial) SetVector3(name string, v mgl32.Vec3) {
	if !m.opts.HasUniform(name) {
		return
	}
	m.vectors[name] = v
}

func (m *ShaderMaterial) Vector3(name string) (mgl32.Vec3, bool) {
	v, ok := m.vectors[name]
	return v, ok
}

// Reload recompiles the program from disk. On failure the previous program stays in use.
func (m *ShaderMaterial) Reload() error {
	vert, frag := ProgramFiles(m.dir, m.path)
	s, err := m.compile(vert, frag, m.opts.Attributes...)
	if err != nil {
		return fmt.Errorf("reload %s: %w", m.path, err)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
	m.shader = s
	return nil
}

// Bind activates the program and uploads the transform uniforms it declares
// followed by the stored vector values.
func (m *ShaderMaterial) Bind(world, view, projection mgl32.Mat4) {
	s := m.shader
	s.Use()
	worldView := view.Mul4(world)
	wvp := projection.Mul4(worldView)
	for _, u := range m.opts.Uniforms {
		if mat, ok := transformUniform(u, world, worldView, wvp, view, projection); ok {
			s.SetMatrix4(u, &mat[0])
		}
	}
	for name, v := range m.vectors {
		s.SetVector3(name, v.X(), v.Y(), v.Z())
	}
}

// transformUniform picks the matrix a transform uniform expects.
func transformUniform(name string, world, worldView, wvp, view, projection mgl32.Mat4) (mgl32.Mat4, bool) {
	switch name {
	case "world":
		return world, true
	case "worldView":
		return worldView, true
	case "worldViewProjection":
		return wvp, true
	case "view":
		return view, true
	case "projection":
		return projection, true
	}
	return mgl32.Mat4{}, false
}

func (m *ShaderMaterial) dispose() {
	if m.shader != nil {
		m.shader.Delete()
		m.shader = nil
	}
}

// Engine creates shader materials from a shader directory and keeps track of
// them for hot reload and disposal.
type Engine struct {
	dir       string
	compile   compileFunc
	materials []*ShaderMaterial
}

var _ scene.Engine = (*Engine)(nil)

// NewEngine returns an engine loading programs from dir.
func NewEngine(dir string) *Engine {
	return &Engine{dir: dir, compile: NewShader}
}

func (e *Engine) Dir() string { return e.dir }

// CreateShaderMaterial compiles <dir>/<path>.vertex.fx + .fragment.fx.
func (e *Engine) CreateShaderMaterial(name, path string, opts scene.MaterialOptions) (scene.Material, error) {
	m := &ShaderMaterial{
		name:    name,
		path:    path,
		dir:     e.dir,
		opts:    opts,
		vectors: make(map[string]mgl32.Vec3),
		compile: e.compile,
	}
	if err := m.Reload(); err != nil {
		return nil, fmt.Errorf("create material %q: %w", name, err)
	}
	e.materials = append(e.materials, m)
	return m, nil
}

// Reload recompiles every material using the program path and returns the
// number reloaded. Errors from individual materials are joined.
func (e *Engine) Reload(path string) (int, error) {
	n := 0
	var errs []error
	for _, m := range e.materials {
		if m.path != path {
			continue
		}
		if err := m.Reload(); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// Programs lists the distinct program paths in use, sorted.
func (e *Engine) Programs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range e.materials {
		if !seen[m.path] {
			seen[m.path] = true
			out = append(out, m.path)
		}
	}
	sort.Strings(out)
	return out
}

// Dispose deletes every program.
func (e *Engine) Dispose() {
	for _, m := range e.materials {
		m.dispose()
	}
	e.materials = nil
}
