package app

import (
	"context"
	"fmt"
	"log/slog"

	"liquids/internal/config"
	"liquids/internal/engine"
	"liquids/internal/graphics"
	"liquids/internal/graphics/renderables/hud"
	"liquids/internal/graphics/renderables/meshes"
	"liquids/internal/graphics/renderables/wireframe"
	renderer "liquids/internal/graphics/renderer"
	"liquids/internal/input"
	"liquids/internal/scene"
	"liquids/internal/surface"
	"liquids/internal/xr"

	"golang.org/x/sync/errgroup"
)

// New builds the scene on win and wires its callbacks. The window's GL
// context must be current on the calling thread.
func New(ctx context.Context, settings config.Settings, win *surface.Window) (*App, error) {
	frames, err := engine.NewContext(win, engine.Options{})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	group, gctx := errgroup.WithContext(ctx)

	im := input.NewInputManager()
	materials := graphics.NewEngine(settings.Shaders.Dir)

	opts := scene.BuildOptions{Controls: im}
	if settings.XR.Enabled {
		opts.Immersive = xr.Request
	}
	sc, err := scene.Build(gctx, materials, opts)
	if err != nil {
		cancel()
		materials.Dispose()
		return nil, err
	}

	slog.Debug("materials ready", "dir", materials.Dir(), "programs", materials.Programs())

	a := &App{
		frames:  frames,
		shaders: materials,
		input:   im,
		scene:   sc,
		cancel:  cancel,
		group:   group,
	}
	a.xrStatus = statusDisabled
	if sc.Immersive() != nil {
		a.xrStatus = statusPending
	}

	overlay := hud.NewHUD(settings.Shaders.Dir, settings.Debug.ShowInspector, a.status)
	r, err := renderer.NewRenderer(frames,
		meshes.NewMeshes(sc),
		wireframe.NewWireframe(settings.Shaders.Dir, overlay.IsVisible),
		overlay,
	)
	if err != nil {
		cancel()
		materials.Dispose()
		return nil, fmt.Errorf("app: renderer: %w", err)
	}
	a.renderer = r
	a.overlay = overlay

	r.SetViewport(frames.FrameSize())
	frames.OnFrameSize(r.SetViewport)

	if settings.Shaders.HotReload {
		w, err := graphics.NewShaderWatcher(settings.Shaders.Dir)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		group.Go(func() error { return w.Run(gctx) })
		a.changes = w.Drain
	}

	win.OnResize(a.OnResize)
	win.OnKey(a.OnKey)
	win.OnCursor(a.OnCursor)
	win.OnMouseButton(a.OnMouseButton)
	win.OnFocus(a.OnFocus)
	return a, nil
}
