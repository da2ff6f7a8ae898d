// Package scene holds the demo's scene graph: one free camera, a torus knot
// and a sphere each with their own shader material, and a default environment.
package scene

import (
	"context"
	"errors"
	"fmt"

	"liquids/internal/camera"
	"liquids/internal/geometry"
	"liquids/internal/xr"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the build state of a Scene.
type State int

const (
	Uninitialized State = iota
	Building
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Building:
		return "building"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrAlreadyBuilt is returned when Build is called on a scene that left Uninitialized.
var ErrAlreadyBuilt = errors.New("scene: already built")

// Shader program references of the two scene materials.
const (
	LiquidsProgram = "liquids"
	WhiteProgram   = "white"
)

var (
	CameraPosition    = mgl32.Vec3{0, 5, 10}
	TorusKnotPosition = mgl32.Vec3{0, 1, 0}
)

// ImmersiveRequester starts a background immersive session request.
type ImmersiveRequester func(ctx context.Context, opts xr.Options) *xr.Pending

// BuildOptions configures Build.
type BuildOptions struct {
	// Controls drives the camera; nil leaves the camera detached.
	Controls camera.Controls
	// Immersive, when set, is asked for a session with the ground as floor.
	Immersive ImmersiveRequester
}

// Scene is the in-memory scene graph.
type Scene struct {
	state State

	Camera *camera.FreeCamera

	// LiquidsMaterial shades TorusKnot, WhiteMaterial shades Sphere.
	LiquidsMaterial Material
	WhiteMaterial   Material

	TorusKnot *Mesh
	Sphere    *Mesh

	Environment *Environment

	immersive *xr.Pending
}

// New returns an empty, uninitialized scene.
func New() *Scene {
	return &Scene{}
}

// Build creates and populates a scene.
func Build(ctx context.Context, eng Engine, opts BuildOptions) (*Scene, error) {
	s := New()
	if err := s.Build(ctx, eng, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns the current build state.
func (s *Scene) State() State { return s.state }

// Build populates the scene. It only runs once; a failed build leaves the
// scene Uninitialized. The immersive request is not waited for.
func (s *Scene) Build(ctx context.Context, eng Engine, opts BuildOptions) error {
	if s.state != Uninitialized {
		return ErrAlreadyBuilt
	}
	s.state = Building
	if err := s.build(ctx, eng, opts); err != nil {
		*s = Scene{}
		return err
	}
	s.state = Ready
	return nil
}

func (s *Scene) build(ctx context.Context, eng Engine, opts BuildOptions) error {
	// camera
	cam := camera.NewFreeCamera("camera", CameraPosition)
	cam.SetTarget(mgl32.Vec3{})
	if opts.Controls != nil {
		cam.AttachControl(opts.Controls)
	}
	s.Camera = cam

	// shaders
	var err error
	s.LiquidsMaterial, err = eng.CreateShaderMaterial("shader", LiquidsProgram, StandardMaterialOptions())
	if err != nil {
		return fmt.Errorf("scene: %s material: %w", LiquidsProgram, err)
	}
	s.WhiteMaterial, err = eng.CreateShaderMaterial("shader", WhiteProgram, StandardMaterialOptions())
	if err != nil {
		return fmt.Errorf("scene: %s material: %w", WhiteProgram, err)
	}

	// objects
	s.TorusKnot = NewMesh("torusKnot", geometry.TorusKnot(geometry.TorusKnotOptions{
		RadialSegments:  64,
		TubularSegments: 5,
		P:               2,
	}), s.LiquidsMaterial)
	s.TorusKnot.Position = TorusKnotPosition

	s.Sphere = NewMesh("sphere", geometry.Sphere(geometry.SphereOptions{Diameter: 1}), s.WhiteMaterial)

	// environment
	s.Environment, err = CreateDefaultEnvironment(eng)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	if opts.Immersive != nil {
		s.immersive = opts.Immersive(ctx, xr.Options{
			FloorMeshes: []xr.Floor{s.Environment.Ground},
		})
	}
	return nil
}

// Cameras returns every camera in the scene.
func (s *Scene) Cameras() []*camera.FreeCamera {
	if s.Camera == nil {
		return nil
	}
	return []*camera.FreeCamera{s.Camera}
}

// Meshes returns the shaded scene objects, torus knot first.
func (s *Scene) Meshes() []*Mesh {
	if s.state != Ready {
		return nil
	}
	return []*Mesh{s.TorusKnot, s.Sphere}
}

// Materials returns the materials of Meshes, in the same order.
func (s *Scene) Materials() []Material {
	if s.state != Ready {
		return nil
	}
	return []Material{s.LiquidsMaterial, s.WhiteMaterial}
}

// DrawList returns every mesh to render, environment first.
func (s *Scene) DrawList() []*Mesh {
	if s.state != Ready {
		return nil
	}
	return append(s.Environment.Meshes(), s.Meshes()...)
}

// Immersive returns the pending immersive session request, or nil if none was made.
func (s *Scene) Immersive() *xr.Pending {
	return s.immersive
}
