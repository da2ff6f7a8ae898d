package config

import "sync"

// RenderSettings holds the frame pacing configuration shared by the render loop.
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
	vsync    bool
}

// MaxFPSLimit is the highest frame rate cap accepted.
const MaxFPSLimit = 1000

var globalRenderSettings = &RenderSettings{
	fpsLimit: 0,
	vsync:    true,
}

// GetFPSLimit returns the frame rate cap, 0 meaning no cap
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRenderSettings.fpsLimit = limit
}

// GetVSync reports whether buffer swaps wait for the display refresh
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync toggles waiting for the display refresh on swap
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

// SwapInterval returns the GLFW swap interval matching the vsync setting
func SwapInterval() int {
	if GetVSync() {
		return 1
	}
	return 0
}
