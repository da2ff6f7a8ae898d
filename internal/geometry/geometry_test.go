package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkWellFormed(t *testing.T, vd *VertexData) {
	t.Helper()
	n := vd.VertexCount()
	require.Equal(t, n*3, len(vd.Normals), "normals per vertex")
	require.Equal(t, n*2, len(vd.UVs), "uvs per vertex")
	require.Zero(t, len(vd.Indices)%3, "indices form triangles")
	for _, idx := range vd.Indices {
		require.Less(t, int(idx), n, "index in range")
	}
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1, vd.Normal(i).Len(), 1e-4, "normal %d is unit length", i)
	}
}

func TestTorusKnotCounts(t *testing.T) {
	vd := TorusKnot(TorusKnotOptions{RadialSegments: 64, TubularSegments: 5, P: 2})
	checkWellFormed(t, vd)

	nv, ni := TorusKnotN(64, 5)
	assert.Equal(t, 325, nv)
	assert.Equal(t, 1920, ni)
	assert.Equal(t, nv, vd.VertexCount())
	assert.Equal(t, ni, len(vd.Indices))
}

func TestTorusKnotDefaults(t *testing.T) {
	o := TorusKnotOptions{RadialSegments: 64, TubularSegments: 5, P: 2}.withDefaults()
	assert.Equal(t, float32(2), o.Radius)
	assert.Equal(t, float32(0.5), o.Tube)
	assert.Equal(t, float32(3), o.Q)
	assert.Equal(t, 64, o.RadialSegments)
}

func TestTorusKnotTubeRadius(t *testing.T) {
	o := DefaultTorusKnot()
	vd := TorusKnot(o)
	// Every vertex of ring i sits one tube radius from the curve sample.
	for i := 0; i < o.RadialSegments; i++ {
		u := float32(i) / float32(o.RadialSegments) * 2 * o.P * math32.Pi
		center := o.curve(u)
		for j := 0; j < o.TubularSegments; j++ {
			p := vd.Position(i*o.TubularSegments + j)
			assert.InDelta(t, o.Tube, p.Sub(center).Len(), 1e-4)
		}
	}
}

func TestTorusKnotClosesLoop(t *testing.T) {
	o := DefaultTorusKnot()
	vd := TorusKnot(o)
	last := o.RadialSegments * o.TubularSegments
	for j := 0; j < o.TubularSegments; j++ {
		assert.True(t, vd.Position(j).ApproxEqualThreshold(vd.Position(last+j), 1e-5))
	}
}

func TestSphere(t *testing.T) {
	vd := Sphere(SphereOptions{Diameter: 1})
	checkWellFormed(t, vd)

	nv, ni := SphereN(32)
	assert.Equal(t, nv, vd.VertexCount())
	assert.Equal(t, ni, len(vd.Indices))

	for i := 0; i < vd.VertexCount(); i++ {
		assert.InDelta(t, 0.5, vd.Position(i).Len(), 1e-5)
	}

	min, max := vd.Bounds()
	assert.True(t, min.ApproxEqualThreshold(mgl32.Vec3{-0.5, -0.5, -0.5}, 1e-3), "min %v", min)
	assert.True(t, max.ApproxEqualThreshold(mgl32.Vec3{0.5, 0.5, 0.5}, 1e-3), "max %v", max)
}

func TestGround(t *testing.T) {
	vd := Ground(GroundOptions{Width: 15, Height: 15, Subdivisions: 2})
	checkWellFormed(t, vd)
	assert.Equal(t, 9, vd.VertexCount())
	assert.Len(t, vd.Indices, 24)

	min, max := vd.Bounds()
	assert.Equal(t, mgl32.Vec3{-7.5, 0, -7.5}, min)
	assert.Equal(t, mgl32.Vec3{7.5, 0, 7.5}, max)

	// first triangle faces up
	a, b, c := vd.Position(int(vd.Indices[0])), vd.Position(int(vd.Indices[1])), vd.Position(int(vd.Indices[2]))
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	assert.True(t, n.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5))
}

func TestBoxFacesPointOutward(t *testing.T) {
	vd := Box(20)
	checkWellFormed(t, vd)
	assert.Equal(t, 24, vd.VertexCount())
	assert.Len(t, vd.Indices, 36)

	for tri := 0; tri < len(vd.Indices); tri += 3 {
		a := vd.Position(int(vd.Indices[tri]))
		b := vd.Position(int(vd.Indices[tri+1]))
		c := vd.Position(int(vd.Indices[tri+2]))
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d winds outward", tri/3)
	}
}

func TestInterleaved(t *testing.T) {
	vd := Ground(GroundOptions{})
	out := vd.Interleaved()
	require.Len(t, out, vd.VertexCount()*FloatsPerVertex)
	// vertex 1: position, normal, uv
	assert.Equal(t, []float32{0.5, 0, 0.5, 0, 1, 0, 1, 0}, out[FloatsPerVertex:2*FloatsPerVertex])
}

func TestBoundsEmpty(t *testing.T) {
	min, max := (&VertexData{}).Bounds()
	assert.Equal(t, mgl32.Vec3{}, min)
	assert.Equal(t, mgl32.Vec3{}, max)
}
