package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{144, 144},
		{5000, 1000},
	}
	for _, tt := range tests {
		SetFPSLimit(tt.in)
		assert.Equal(t, tt.want, GetFPSLimit(), "SetFPSLimit(%d)", tt.in)
	}
}

func TestSwapInterval(t *testing.T) {
	defer SetVSync(GetVSync())

	SetVSync(true)
	assert.Equal(t, 1, SwapInterval())
	SetVSync(false)
	assert.Equal(t, 0, SwapInterval())
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, DefaultSurfaceID, s.Surface.ID)
	assert.Equal(t, DefaultSurfaceID, s.Surface.TitleOrID())
	assert.True(t, s.XR.Enabled)
}

func TestDecodeKeepsOmittedDefaults(t *testing.T) {
	s := Default()
	doc := `
[surface]
title = "Liquids"
width = 1280
height = 720

[render]
fps_limit = 60
`
	require.NoError(t, Decode([]byte(doc), &s))
	assert.Equal(t, "Liquids", s.Surface.TitleOrID())
	assert.Equal(t, DefaultSurfaceID, s.Surface.ID)
	assert.Equal(t, 1280, s.Surface.Width)
	assert.Equal(t, 60, s.Render.FPSLimit)
	assert.True(t, s.Render.VSync)
	assert.Equal(t, "assets/shaders", s.Shaders.Dir)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "[surface\nid = 1"},
		{"half size", "[surface]\nwidth = 100"},
		{"negative fps", "[render]\nfps_limit = -1"},
		{"fps above cap", "[render]\nfps_limit = 1001"},
		{"empty id", "[surface]\nid = \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			assert.Error(t, Decode([]byte(tt.doc), &s))
		})
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	path := filepath.Join(t.TempDir(), "liquids.toml")
	require.NoError(t, os.WriteFile(path, []byte("[xr]\nenabled = false\n"), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.False(t, s.XR.Enabled)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())
	defer SetVSync(GetVSync())

	s := Default()
	s.Render.FPSLimit = 30
	s.Render.VSync = false
	s.Apply()
	assert.Equal(t, 30, GetFPSLimit())
	assert.False(t, GetVSync())
}

func TestValidateAcceptsFPSCap(t *testing.T) {
	s := Default()
	s.Render.FPSLimit = MaxFPSLimit
	assert.NoError(t, s.Validate())
	s.Render.FPSLimit = MaxFPSLimit + 1
	assert.Error(t, s.Validate())
}
