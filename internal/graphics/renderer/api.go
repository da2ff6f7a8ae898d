package renderer

import (
	"liquids/internal/camera"
	"liquids/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Scene  *scene.Scene
	Camera *camera.FreeCamera
	// DT is the frame delta in milliseconds.
	DT   float64
	View mgl32.Mat4
	Proj mgl32.Mat4
	// Width and Height are the frame size in pixels.
	Width, Height int
}

// Frame reports the size of the surface being drawn into.
type Frame interface {
	FrameSize() (width, height int)
	AspectRatio() float32
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
