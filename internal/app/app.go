// Package app wires the scene, the render context and the renderer into the
// running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"liquids/internal/animation"
	"liquids/internal/camera"
	"liquids/internal/input"
	"liquids/internal/profiling"
	"liquids/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sync/errgroup"
)

// FrameContext is the render context seen by the application.
type FrameContext interface {
	ElapsedMillisSinceLastFrame() float64
	ResizeTo(width, height int)
	FrameSize() (width, height int)
	OnFrameSize(fn func(width, height int))
	RunLoop(fn func())
}

// Renderer draws a scene.
type Renderer interface {
	Render(sc *scene.Scene, dt float64)
	SetViewport(width, height int)
	Dispose()
}

// Overlay is the debug layer.
type Overlay interface {
	Toggle()
	IsVisible() bool
	ProfilingSetUpdateDuration(d time.Duration)
	ProfilingSetRenderDuration(d time.Duration)
}

// Shaders recompiles programs by path.
type Shaders interface {
	Reload(path string) (int, error)
	Dispose()
}

// App is the application context: it owns the scene, its animation state and
// every subsystem the frame loop touches.
type App struct {
	frames   FrameContext
	renderer Renderer
	overlay  Overlay
	shaders  Shaders
	input    *input.InputManager

	scene *scene.Scene
	anim  animation.State

	// changes drains pending shader reloads; nil when hot reload is off.
	changes func() []string

	xrStatus string

	cancel context.CancelFunc
	group  *errgroup.Group
}

// Scene returns the scene being animated.
func (a *App) Scene() *scene.Scene { return a.scene }

// Angle returns the current orbit angle in radians.
func (a *App) Angle() float64 { return a.anim.Angle }

// Overlay returns the debug layer.
func (a *App) Overlay() Overlay { return a.overlay }

// Run drives the frame loop until the surface closes.
// Update always runs before Render within a frame.
func (a *App) Run() {
	a.frames.RunLoop(func() {
		a.Update()
		a.Render()
	})
}

// Update advances the animation and applies input for one frame.
func (a *App) Update() {
	start := time.Now()
	stop := profiling.Track("app.update")
	defer func() {
		stop()
		a.overlay.ProfilingSetUpdateDuration(time.Since(start))
	}()

	dt := a.frames.ElapsedMillisSinceLastFrame()
	if cam := a.scene.Camera; cam != nil {
		cam.Update(dt / 1000)
		a.trackPointer(cam)
	}
	animation.Update(&a.anim, a.frames, a.scene)

	a.reloadShaders()
	a.pollImmersive()
	a.input.PostUpdate()
}

// Render draws the current frame.
func (a *App) Render() {
	start := time.Now()
	a.renderer.Render(a.scene, a.frames.ElapsedMillisSinceLastFrame())
	a.overlay.ProfilingSetRenderDuration(time.Since(start))
}

// OnResize resizes the render context to exactly width x height.
func (a *App) OnResize(width, height int) {
	a.frames.ResizeTo(width, height)
}

// OnKey toggles the debug layer on Shift+Ctrl+Alt+I and forwards every other
// key to camera input.
func (a *App) OnKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if input.IsInspectorToggle(key, action, mods) {
		a.overlay.Toggle()
		slog.Debug("inspector toggled", "visible", a.overlay.IsVisible())
		return
	}
	a.input.HandleKeyEvent(key, action)
}

// OnCursor drives drag-to-look.
func (a *App) OnCursor(x, y float64) {
	a.input.HandleCursorEvent(x, y)
	if cam := a.scene.Camera; cam != nil {
		cam.HandlePointer(x, y, a.input.IsActive(input.ActionLook))
	}
}

func (a *App) OnMouseButton(button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	a.input.HandleMouseButtonEvent(button, action)
}

// OnFocus detaches the camera while the window is in the background and
// releases whatever was held when focus went away.
func (a *App) OnFocus(focused bool) {
	cam := a.scene.Camera
	if cam == nil {
		return
	}
	if !focused {
		a.input.ReleaseAll()
		cam.DetachControl()
		return
	}
	cam.AttachControl(a.input)
}

// trackPointer anchors a drag where the look button went down and ends it on release.
func (a *App) trackPointer(cam *camera.FreeCamera) {
	x, y := a.input.Cursor()
	switch {
	case a.input.JustReleased(input.ActionLook):
		cam.HandlePointer(x, y, false)
	case a.input.JustPressed(input.ActionLook):
		cam.HandlePointer(x, y, true)
	}
}

func (a *App) reloadShaders() {
	if a.changes == nil {
		return
	}
	for _, name := range a.changes() {
		n, err := a.shaders.Reload(name)
		if err != nil {
			slog.Error("shader reload failed", "program", name, "err", err)
			continue
		}
		if n > 0 {
			slog.Info("shader reloaded", "program", name, "materials", n)
		}
	}
}

// pollImmersive reports the outcome of the immersive request once.
// A failed request is expected on desktops without a runtime and is only
// logged at debug level.
func (a *App) pollImmersive() {
	p := a.scene.Immersive()
	if p == nil || a.xrStatus != statusPending {
		return
	}
	s, done, err := p.Poll()
	if !done {
		return
	}
	if err != nil {
		a.xrStatus = statusUnavailable
		slog.Debug("immersive session unavailable", "err", err)
		return
	}
	a.xrStatus = fmt.Sprintf("ready (%s)", s.Runtime.Name)
	slog.Info("immersive session ready", "runtime", s.Runtime.Name, "manifest", s.ManifestPath, "floors", s.FloorNames())
}

const (
	statusDisabled    = "disabled"
	statusPending     = "pending"
	statusUnavailable = "unavailable"
)

// status feeds the overlay.
func (a *App) status() []string {
	return []string{
		fmt.Sprintf("Angle: %.3f rad", a.anim.Angle),
		"XR: " + a.xrStatus,
	}
}

// Close stops background work and releases GL resources.
func (a *App) Close() error {
	a.cancel()
	err := a.group.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	a.renderer.Dispose()
	a.shaders.Dispose()
	return err
}
