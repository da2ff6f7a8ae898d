package main

import (
	"fmt"
	"io"
	"log/slog"

	"liquids/internal/config"
	"liquids/internal/logx"

	"github.com/spf13/pflag"
)

type options struct {
	settings config.Settings
	level    slog.Level
}

// parseOptions loads the optional config file, then applies the flags the
// user actually set on top of it.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	fs := pflag.NewFlagSet("liquids", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	configPath := fs.String("config", "", "TOML settings file")
	id := fs.String("id", def.Surface.ID, "drawing surface identifier, also the default window title")
	width := fs.Int("width", def.Surface.Width, "window width in pixels (0 fills the work area)")
	height := fs.Int("height", def.Surface.Height, "window height in pixels (0 fills the work area)")
	fullscreen := fs.Bool("fullscreen", def.Surface.Fullscreen, "use the primary monitor in fullscreen")
	fps := fs.Int("fps", def.Render.FPSLimit, "frame rate cap, 0 for none")
	vsync := fs.Bool("vsync", def.Render.VSync, "synchronise presentation with the display refresh")
	shaders := fs.String("shaders", def.Shaders.Dir, "directory holding <name>.vertex.fx and <name>.fragment.fx")
	hotReload := fs.Bool("hot-reload", def.Shaders.HotReload, "recompile shaders when their files change")
	xrEnabled := fs.Bool("xr", def.XR.Enabled, "request an immersive session at startup")
	inspector := fs.Bool("inspector", def.Debug.ShowInspector, "show the debug overlay at startup")
	verbose := fs.CountP("verbose", "v", "log at info level, -vv for debug")
	quiet := fs.BoolP("quiet", "q", false, "only log errors")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	s, err := config.Load(*configPath)
	if err != nil {
		return options{}, err
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "id":
			s.Surface.ID = *id
		case "width":
			s.Surface.Width = *width
		case "height":
			s.Surface.Height = *height
		case "fullscreen":
			s.Surface.Fullscreen = *fullscreen
		case "fps":
			s.Render.FPSLimit = *fps
		case "vsync":
			s.Render.VSync = *vsync
		case "shaders":
			s.Shaders.Dir = *shaders
		case "hot-reload":
			s.Shaders.HotReload = *hotReload
		case "xr":
			s.XR.Enabled = *xrEnabled
		case "inspector":
			s.Debug.ShowInspector = *inspector
		}
	})
	if err := s.Validate(); err != nil {
		return options{}, err
	}

	return options{
		settings: s,
		level:    logx.Level(*verbose, *quiet),
	}, nil
}
