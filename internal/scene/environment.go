package scene

import (
	"fmt"

	"liquids/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultGroundSize  = 15
	defaultSkyboxSize  = 20
	groundProgram      = "ground"
	skyboxProgram      = "skybox"
	environmentMatName = "environment"
)

// DefaultClearColor is the background used by the default environment.
var DefaultClearColor = mgl32.Vec4{0.2, 0.2, 0.3, 1}

// Environment is the default lighting backdrop: a ground plane and a skybox.
type Environment struct {
	Ground     *Mesh
	Skybox     *Mesh
	ClearColor mgl32.Vec4
}

// Meshes returns the environment meshes in draw order.
func (e *Environment) Meshes() []*Mesh {
	return []*Mesh{e.Skybox, e.Ground}
}

// CreateDefaultEnvironment builds a ground and skybox with their own programs.
func CreateDefaultEnvironment(eng Engine) (*Environment, error) {
	opts := MaterialOptions{
		Attributes: append([]string(nil), StandardAttributes...),
		Uniforms:   []string{"world", "worldView", "worldViewProjection", "view", "projection"},
	}
	groundMat, err := eng.CreateShaderMaterial(environmentMatName, groundProgram, opts)
	if err != nil {
		return nil, fmt.Errorf("ground material: %w", err)
	}
	skyMat, err := eng.CreateShaderMaterial(environmentMatName, skyboxProgram, opts)
	if err != nil {
		return nil, fmt.Errorf("skybox material: %w", err)
	}

	ground := NewMesh("ground", geometry.Ground(geometry.GroundOptions{
		Width:        defaultGroundSize,
		Height:       defaultGroundSize,
		Subdivisions: 1,
	}), groundMat)

	skybox := NewMesh("skybox", geometry.Box(defaultSkyboxSize), skyMat)
	skybox.InfiniteDistance = true

	return &Environment{
		Ground:     ground,
		Skybox:     skybox,
		ClearColor: DefaultClearColor,
	}, nil
}
