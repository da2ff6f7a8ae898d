package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SphereOptions describes a UV sphere centered on the origin.
type SphereOptions struct {
	Diameter float32
	Segments int
}

// SphereN returns vertex and index counts for a sphere with the given segments.
func SphereN(segments int) (numVertex, nIndex int) {
	zSteps := 2 + segments
	ySteps := 2 * zSteps
	numVertex = (zSteps + 1) * (ySteps + 1)
	nIndex = zSteps * ySteps * 6
	return
}

// Sphere builds a sphere. Diameter defaults to 1 and Segments to 32.
func Sphere(opts SphereOptions) *VertexData {
	if opts.Diameter == 0 {
		opts.Diameter = 1
	}
	if opts.Segments <= 0 {
		opts.Segments = 32
	}
	radius := opts.Diameter / 2
	zSteps := 2 + opts.Segments
	ySteps := 2 * zSteps

	nv, ni := SphereN(opts.Segments)
	vd := newVertexData(nv, ni)

	for z := 0; z <= zSteps; z++ {
		normZ := float32(z) / float32(zSteps)
		theta := normZ * math32.Pi
		for y := 0; y <= ySteps; y++ {
			normY := float32(y) / float32(ySteps)
			phi := normY * 2 * math32.Pi

			normal := mgl32.Vec3{
				math32.Sin(theta) * math32.Cos(phi),
				math32.Cos(theta),
				math32.Sin(theta) * math32.Sin(phi),
			}
			vd.addVertex(normal.Mul(radius), normal, normY, 1-normZ)
		}
	}

	row := uint32(ySteps + 1)
	for z := uint32(0); z < uint32(zSteps); z++ {
		for y := uint32(0); y < uint32(ySteps); y++ {
			a := z*row + y
			b := a + row
			vd.addTriangle(a, a+1, b)
			vd.addTriangle(b, a+1, b+1)
		}
	}
	return vd
}
