// Package ui draws screen-space rectangles for overlays.
package ui

import (
	"fmt"

	"liquids/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// PanelProgram is the shader program used for filled rectangles.
const PanelProgram = "panel"

// UI renders filled rectangles in pixel coordinates with a top-left origin.
type UI struct {
	shaderDir string
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32

	width, height int
}

// NewUI creates a rectangle renderer loading its program from shaderDir.
func NewUI(shaderDir string) *UI {
	return &UI{shaderDir: shaderDir, width: 1, height: 1}
}

// Init compiles the program and allocates the quad buffer.
func (u *UI) Init() error {
	vert, frag := graphics.ProgramFiles(u.shaderDir, PanelProgram)
	var err error
	u.shader, err = graphics.NewShader(vert, frag, "position")
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// SetViewport sets the pixel space rectangles are given in.
func (u *UI) SetViewport(width, height int) {
	u.width, u.height = max(width, 1), max(height, 1)
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
		u.vao = 0
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
		u.vbo = 0
	}
	if u.shader != nil {
		u.shader.Delete()
		u.shader = nil
	}
}

// QuadNDC returns two triangles covering the pixel rectangle (x, y, w, h) in
// normalized device coordinates for a viewport of the given size.
func QuadNDC(x, y, w, h float32, width, height int) []float32 {
	vw, vh := float32(width), float32(height)
	x0 := (x/vw)*2 - 1
	y0 := 1 - (y/vh)*2
	x1 := ((x+w)/vw)*2 - 1
	y1 := 1 - ((y+h)/vh)*2
	return []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin) with RGBA color.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	verts := QuadNDC(x, y, w, h, u.width, u.height)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	gl.Uniform4f(u.shader.Location("uColor"), color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
