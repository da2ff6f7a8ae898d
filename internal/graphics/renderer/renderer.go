package renderer

import (
	"liquids/internal/profiling"
	"liquids/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	frame       Frame
	renderables []Renderable
	names       []string
	clear       func(color mgl32.Vec4)
}

// Named gives a renderable a profiling label.
type Named interface {
	Name() string
}

// NewRenderer configures GL state and initialises rs in order. Projections
// follow the aspect ratio of frame.
func NewRenderer(frame Frame, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// the skybox is seen from inside and the ground from both sides
	gl.Disable(gl.CULL_FACE)

	return newRenderer(frame, clearGL, rs...)
}

func newRenderer(frame Frame, clear func(mgl32.Vec4), rs ...Renderable) (*Renderer, error) {
	r := &Renderer{frame: frame, renderables: rs, clear: clear}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// dispose what was already initialised
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
		name := "renderable"
		if n, ok := rr.(Named); ok {
			name = n.Name()
		}
		r.names = append(r.names, "renderer."+name)
	}
	return r, nil
}

func clearGL(c mgl32.Vec4) {
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render clears to the scene's clear color and draws every renderable in order.
// dt is in milliseconds.
func (r *Renderer) Render(sc *scene.Scene, dt float64) {
	ctx := r.context(sc, dt)

	color := scene.DefaultClearColor
	if sc.Environment != nil {
		color = sc.Environment.ClearColor
	}
	r.clear(color)

	for i, renderable := range r.renderables {
		stop := profiling.Track(r.names[i])
		renderable.Render(ctx)
		stop()
	}
}

func (r *Renderer) context(sc *scene.Scene, dt float64) RenderContext {
	width, height := r.frame.FrameSize()
	ctx := RenderContext{
		Scene:  sc,
		Camera: sc.Camera,
		DT:     dt,
		Width:  width,
		Height: height,
		View:   mgl32.Ident4(),
		Proj:   mgl32.Ident4(),
	}
	if sc.Camera != nil {
		ctx.View = sc.Camera.ViewMatrix()
		ctx.Proj = sc.Camera.ProjectionMatrix(r.frame.AspectRatio())
	}
	return ctx
}

// SetViewport forwards the frame size to every renderable.
func (r *Renderer) SetViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
