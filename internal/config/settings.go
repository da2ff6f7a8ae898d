package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultSurfaceID is the identifier given to the drawing surface.
const DefaultSurfaceID = "babylonLiquids"

// Settings is the full application configuration, loadable from TOML.
type Settings struct {
	Surface SurfaceSettings `toml:"surface"`
	Render  RenderFile      `toml:"render"`
	Shaders ShaderSettings  `toml:"shaders"`
	XR      XRSettings      `toml:"xr"`
	Debug   DebugSettings   `toml:"debug"`
}

// SurfaceSettings configures the presentation surface.
// Zero Width/Height means "fill the host work area".
type SurfaceSettings struct {
	ID         string `toml:"id"`
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type RenderFile struct {
	FPSLimit int  `toml:"fps_limit"`
	VSync    bool `toml:"vsync"`
}

type ShaderSettings struct {
	Dir       string `toml:"dir"`
	HotReload bool   `toml:"hot_reload"`
}

type XRSettings struct {
	Enabled bool `toml:"enabled"`
}

type DebugSettings struct {
	// ShowInspector opens the overlay at startup.
	ShowInspector bool `toml:"show_inspector"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Settings {
	return Settings{
		Surface: SurfaceSettings{ID: DefaultSurfaceID},
		Render:  RenderFile{FPSLimit: 0, VSync: true},
		Shaders: ShaderSettings{Dir: "assets/shaders", HotReload: false},
		XR:      XRSettings{Enabled: true},
	}
}

// Load reads a TOML file over the defaults. An empty path yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// Decode parses TOML into s, keeping values of keys the document omits.
func Decode(data []byte, s *Settings) error {
	if err := toml.Unmarshal(data, s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parse config at %d:%d: %w", row, col, err)
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return s.Validate()
}

// Validate rejects settings the application cannot start with.
func (s Settings) Validate() error {
	if s.Surface.ID == "" {
		return errors.New("config: surface id must not be empty")
	}
	if s.Surface.Width < 0 || s.Surface.Height < 0 {
		return fmt.Errorf("config: invalid surface size %dx%d", s.Surface.Width, s.Surface.Height)
	}
	if (s.Surface.Width == 0) != (s.Surface.Height == 0) {
		return errors.New("config: surface width and height must be set together")
	}
	if s.Render.FPSLimit < 0 || s.Render.FPSLimit > MaxFPSLimit {
		return fmt.Errorf("config: fps limit %d out of range 0..%d", s.Render.FPSLimit, MaxFPSLimit)
	}
	if s.Shaders.Dir == "" {
		return errors.New("config: shaders dir must not be empty")
	}
	return nil
}

// Apply publishes the render settings to the process-wide getters.
func (s Settings) Apply() {
	SetFPSLimit(s.Render.FPSLimit)
	SetVSync(s.Render.VSync)
}

// TitleOrID returns the window title, falling back to the surface id.
func (s SurfaceSettings) TitleOrID() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}
