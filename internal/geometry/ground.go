package geometry

import "github.com/go-gl/mathgl/mgl32"

// GroundOptions describes a flat, subdivided plane on y=0 facing +Y.
type GroundOptions struct {
	Width        float32
	Height       float32
	Subdivisions int
}

// Ground builds a plane centered on the origin. Sizes default to 1,
// Subdivisions to 1.
func Ground(opts GroundOptions) *VertexData {
	if opts.Width == 0 {
		opts.Width = 1
	}
	if opts.Height == 0 {
		opts.Height = 1
	}
	if opts.Subdivisions <= 0 {
		opts.Subdivisions = 1
	}
	s := opts.Subdivisions
	vd := newVertexData((s+1)*(s+1), s*s*6)
	up := mgl32.Vec3{0, 1, 0}

	for row := 0; row <= s; row++ {
		for col := 0; col <= s; col++ {
			u := float32(col) / float32(s)
			v := float32(row) / float32(s)
			pos := mgl32.Vec3{
				(u - 0.5) * opts.Width,
				0,
				(0.5 - v) * opts.Height,
			}
			vd.addVertex(pos, up, u, v)
		}
	}

	stride := uint32(s + 1)
	for row := uint32(0); row < uint32(s); row++ {
		for col := uint32(0); col < uint32(s); col++ {
			a := row*stride + col
			b := a + 1
			c := a + stride
			d := c + 1
			vd.addTriangle(a, b, d)
			vd.addTriangle(a, d, c)
		}
	}
	return vd
}
