// Command liquids renders a shader-lit torus knot with an orbiting light.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"liquids/internal/app"
	"liquids/internal/logx"
	"liquids/internal/surface"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// GLFW and OpenGL calls must stay on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logx.Setup(os.Stderr, opts.level)
	opts.settings.Apply()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	// on SIGINT/SIGTERM: stop the loop and wait for GL teardown before exit
	closer.Bind(func() {
		cancel()
		<-done
	})

	err = run(ctx, opts)
	close(done)
	if err != nil {
		slog.Error("liquids", "err", err)
		closer.Exit(1)
	}
	closer.Close()
}

func run(ctx context.Context, opts options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	s := opts.settings
	win, err := surface.Create(s.Surface.ID, surface.Options{
		Title:      s.Surface.TitleOrID(),
		Width:      s.Surface.Width,
		Height:     s.Surface.Height,
		Fullscreen: s.Surface.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	a, err := app.New(ctx, s, win)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			win.SetShouldClose(true)
			glfw.PostEmptyEvent()
		case <-stop:
		}
	}()

	slog.Info("running", "surface", win.ID(), "shaders", s.Shaders.Dir, "xr", s.XR.Enabled)
	a.Run()
	return a.Close()
}
