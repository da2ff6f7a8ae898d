// Package surface hosts the drawing surface the renderer presents into.
package surface

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Surface is the presentation surface seen by the render context.
type Surface interface {
	ID() string
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	SetSwapInterval(interval int)
}

// Options configures Create. Zero Width/Height fill the primary monitor's work area.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	id  string
	win *glfw.Window

	onResize      []func(width, height int)
	onKey         []func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	onCursor      []func(x, y float64)
	onMouseButton []func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	onFocus       []func(focused bool)
}

// Create opens the window. glfw.Init must have been called on the main thread.
func Create(id string, opts Options) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	title := opts.Title
	if title == "" {
		title = id
	}

	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if width == 0 || height == 0 {
		width, height = hostSize()
		// fill the whole work area, no margins
		glfw.WindowHint(glfw.Maximized, glfw.True)
	}
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
			glfw.WindowHint(glfw.RedBits, mode.RedBits)
			glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
			glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
			glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		}
	}

	win, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("surface: create window: %w", err)
	}
	win.MakeContextCurrent()

	w := &Window{id: id, win: win}
	w.installCallbacks()
	return w, nil
}

// hostSize returns the primary monitor's work area, falling back to a fixed size.
func hostSize() (int, int) {
	if m := glfw.GetPrimaryMonitor(); m != nil {
		_, _, w, h := m.GetWorkarea()
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return 1280, 720
}

func (w *Window) installCallbacks() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		for _, fn := range w.onResize {
			fn(width, height)
		}
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		for _, fn := range w.onKey {
			fn(key, action, mods)
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		for _, fn := range w.onCursor {
			fn(x, y)
		}
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		for _, fn := range w.onMouseButton {
			fn(button, action, mods)
		}
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		for _, fn := range w.onFocus {
			fn(focused)
		}
	})
}

// ID returns the identifier the surface was created with.
func (w *Window) ID() string { return w.id }

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) { return w.win.GetFramebufferSize() }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) PollEvents() { glfw.PollEvents() }

func (w *Window) SetSwapInterval(interval int) { glfw.SwapInterval(interval) }

// OnResize registers fn for framebuffer size changes.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = append(w.onResize, fn)
}

// OnKey registers fn for keyboard events.
func (w *Window) OnKey(fn func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)) {
	w.onKey = append(w.onKey, fn)
}

// OnCursor registers fn for pointer movement.
func (w *Window) OnCursor(fn func(x, y float64)) {
	w.onCursor = append(w.onCursor, fn)
}

// OnMouseButton registers fn for mouse button events.
func (w *Window) OnMouseButton(fn func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)) {
	w.onMouseButton = append(w.onMouseButton, fn)
}

// OnFocus registers fn for focus gain and loss.
func (w *Window) OnFocus(fn func(focused bool)) {
	w.onFocus = append(w.onFocus, fn)
}

// Destroy closes the window and releases its context.
func (w *Window) Destroy() {
	w.win.Destroy()
}
