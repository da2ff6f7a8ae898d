package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadNDC(t *testing.T) {
	full := QuadNDC(0, 0, 800, 600, 800, 600)
	assert.Equal(t, []float32{
		-1, 1,
		1, 1,
		1, -1,
		-1, 1,
		1, -1,
		-1, -1,
	}, full)

	// top-left quarter
	q := QuadNDC(0, 0, 400, 300, 800, 600)
	assert.Equal(t, []float32{-1, 1, 0, 1, 0, 0, -1, 1, 0, 0, -1, 0}, q)
}

func TestSetViewportClamps(t *testing.T) {
	u := NewUI("shaders")
	u.SetViewport(0, -5)
	assert.Equal(t, 1, u.width)
	assert.Equal(t, 1, u.height)
	u.SetViewport(1920, 1080)
	assert.Equal(t, 1920, u.width)
}
