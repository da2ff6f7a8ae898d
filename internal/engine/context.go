// Package engine binds the OpenGL renderer to a presentation surface and
// drives the per-frame loop.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"liquids/internal/config"
	"liquids/internal/profiling"
	"liquids/internal/surface"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// Options configures a Context.
type Options struct {
	// Now overrides the clock used for frame timing.
	Now func() time.Time
}

// Context is the live binding between the renderer and its surface.
type Context struct {
	surface surface.Surface
	now     func() time.Time
	limiter *FPSLimiter

	lastFrame   time.Time
	deltaMillis float64

	width, height int
	viewport      func(width, height int)
	onFrameSize   []func(width, height int)
}

// NewContext initialises OpenGL for the surface's current context.
func NewContext(s surface.Surface, opts Options) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("engine: init gl: %w", err)
	}
	slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)), "surface", s.ID())

	s.SetSwapInterval(config.SwapInterval())
	gl.Enable(gl.DEPTH_TEST)

	c := newContext(s, opts, func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	c.ResizeTo(s.Size())
	return c, nil
}

func newContext(s surface.Surface, opts Options, viewport func(width, height int)) *Context {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	limiter := NewFPSLimiter()
	limiter.now = now
	return &Context{
		surface:  s,
		now:      now,
		limiter:  limiter,
		viewport: viewport,
	}
}

// ElapsedMillisSinceLastFrame returns the time between the previous frame and
// the current one. It is 0 during the first frame.
func (c *Context) ElapsedMillisSinceLastFrame() float64 {
	return c.deltaMillis
}

// ResizeTo sets the frame size and the GL viewport to exactly width x height.
func (c *Context) ResizeTo(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	if c.viewport != nil {
		c.viewport(c.width, c.height)
	}
	for _, fn := range c.onFrameSize {
		fn(c.width, c.height)
	}
}

// FrameSize returns the current frame size in pixels.
func (c *Context) FrameSize() (width, height int) {
	return c.width, c.height
}

// AspectRatio returns width/height, or 1 for an empty frame.
func (c *Context) AspectRatio() float32 {
	if c.width == 0 || c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// OnFrameSize registers fn to run after every ResizeTo.
func (c *Context) OnFrameSize(fn func(width, height int)) {
	c.onFrameSize = append(c.onFrameSize, fn)
}

// beginFrame samples the clock, updates the frame delta and returns the sample.
func (c *Context) beginFrame() time.Time {
	now := c.now()
	if c.lastFrame.IsZero() {
		c.deltaMillis = 0
	} else {
		c.deltaMillis = float64(now.Sub(c.lastFrame).Nanoseconds()) / 1e6
	}
	c.lastFrame = now
	return now
}

// RunLoop calls fn once per frame, then presents and pumps events, until
// the surface is closed.
func (c *Context) RunLoop(fn func()) {
	for !c.surface.ShouldClose() {
		c.frame(fn)
	}
}

func (c *Context) frame(fn func()) {
	profiling.ResetFrame()
	start := c.beginFrame()

	fn()

	if d := c.now().Sub(start); d > slowFrame {
		slog.Debug("slow frame", "duration", d, "top", profiling.TopN(5))
	}

	func() { defer profiling.Track("engine.SwapBuffers")(); c.surface.SwapBuffers() }()
	func() { defer profiling.Track("engine.PollEvents")(); c.surface.PollEvents() }()

	c.limiter.Wait()
}
