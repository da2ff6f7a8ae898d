// Package wireframe outlines the bounding boxes of scene meshes while the
// debug overlay is open.
package wireframe

import (
	"fmt"

	"liquids/internal/graphics"
	renderer "liquids/internal/graphics/renderer"
	"liquids/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is the shader program used for outlines.
const Program = "wireframe"

// unit cube edges, 24 vertices
var cubeEdges = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// Wireframe draws mesh bounds while visible reports true.
type Wireframe struct {
	shaderDir string
	visible   func() bool
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
}

// NewWireframe creates the renderable. visible is polled every frame.
func NewWireframe(shaderDir string, visible func() bool) *Wireframe {
	return &Wireframe{shaderDir: shaderDir, visible: visible}
}

func (w *Wireframe) Name() string { return "wireframe" }

func (w *Wireframe) Init() error {
	vert, frag := graphics.ProgramFiles(w.shaderDir, Program)
	var err error
	w.shader, err = graphics.NewShader(vert, frag, "position")
	if err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if w.visible == nil || !w.visible() || ctx.Scene == nil {
		return
	}

	w.shader.Use()
	w.shader.SetMatrix4("proj", &ctx.Proj[0])
	w.shader.SetMatrix4("view", &ctx.View[0])
	w.shader.SetVector3("color", 1, 1, 1)
	gl.BindVertexArray(w.vao)
	for _, mesh := range ctx.Scene.Meshes() {
		model := BoundsModel(mesh)
		w.shader.SetMatrix4("model", &model[0])
		gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
	}
	gl.BindVertexArray(0)
}

// BoundsModel maps the unit cube onto the world-space bounding box of mesh.
func BoundsModel(mesh *scene.Mesh) mgl32.Mat4 {
	lo, hi := mesh.Geometry.Bounds()
	size := hi.Sub(lo)
	center := lo.Add(hi).Mul(0.5).Add(mesh.Position)
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
		w.vao = 0
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
		w.vbo = 0
	}
	if w.shader != nil {
		w.shader.Delete()
		w.shader = nil
	}
}

func (w *Wireframe) SetViewport(width, height int) {}
