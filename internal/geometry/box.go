package geometry

import "github.com/go-gl/mathgl/mgl32"

var boxFaces = [6]struct {
	normal, right, up mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
}

// Box builds an axis-aligned cube with the given edge length, 4 vertices per face.
func Box(size float32) *VertexData {
	if size == 0 {
		size = 1
	}
	half := size / 2
	vd := newVertexData(24, 36)
	for f, face := range boxFaces {
		center := face.normal.Mul(half)
		r := face.right.Mul(half)
		u := face.up.Mul(half)
		vd.addVertex(center.Sub(r).Sub(u), face.normal, 0, 0)
		vd.addVertex(center.Add(r).Sub(u), face.normal, 1, 0)
		vd.addVertex(center.Add(r).Add(u), face.normal, 1, 1)
		vd.addVertex(center.Sub(r).Add(u), face.normal, 0, 1)

		base := uint32(f * 4)
		vd.addTriangle(base, base+1, base+2)
		vd.addTriangle(base, base+2, base+3)
	}
	return vd
}
