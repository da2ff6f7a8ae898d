// Package geometry builds indexed triangle meshes on the CPU.
//
// Every generator returns a VertexData with one position (xyz), one normal
// (xyz) and one texture coordinate (uv) per vertex, plus triangle indices.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the stride, in floats, of Interleaved output.
const FloatsPerVertex = 8

// VertexData holds the raw arrays of an indexed mesh.
type VertexData struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

func newVertexData(numVertex, numIndex int) *VertexData {
	return &VertexData{
		Positions: make([]float32, 0, numVertex*3),
		Normals:   make([]float32, 0, numVertex*3),
		UVs:       make([]float32, 0, numVertex*2),
		Indices:   make([]uint32, 0, numIndex),
	}
}

func (vd *VertexData) addVertex(pos, normal mgl32.Vec3, u, v float32) {
	vd.Positions = append(vd.Positions, pos[0], pos[1], pos[2])
	vd.Normals = append(vd.Normals, normal[0], normal[1], normal[2])
	vd.UVs = append(vd.UVs, u, v)
}

func (vd *VertexData) addTriangle(a, b, c uint32) {
	vd.Indices = append(vd.Indices, a, b, c)
}

// VertexCount returns the number of vertices.
func (vd *VertexData) VertexCount() int {
	return len(vd.Positions) / 3
}

// Position returns vertex i's position.
func (vd *VertexData) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{vd.Positions[i*3], vd.Positions[i*3+1], vd.Positions[i*3+2]}
}

// Normal returns vertex i's normal.
func (vd *VertexData) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{vd.Normals[i*3], vd.Normals[i*3+1], vd.Normals[i*3+2]}
}

// Interleaved packs position, normal and uv per vertex, matching the
// attribute layout {position, normal, uv}.
func (vd *VertexData) Interleaved() []float32 {
	n := vd.VertexCount()
	out := make([]float32, 0, n*FloatsPerVertex)
	for i := 0; i < n; i++ {
		out = append(out, vd.Positions[i*3:i*3+3]...)
		out = append(out, vd.Normals[i*3:i*3+3]...)
		out = append(out, vd.UVs[i*2:i*2+2]...)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of all positions.
func (vd *VertexData) Bounds() (min, max mgl32.Vec3) {
	if vd.VertexCount() == 0 {
		return
	}
	min = vd.Position(0)
	max = min
	for i := 1; i < vd.VertexCount(); i++ {
		p := vd.Position(i)
		for k := 0; k < 3; k++ {
			min[k] = math32.Min(min[k], p[k])
			max[k] = math32.Max(max[k], p[k])
		}
	}
	return min, max
}
