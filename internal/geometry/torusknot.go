package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TorusKnotOptions describes a (p, q) torus knot swept by a circular tube.
// Zero fields take the defaults of DefaultTorusKnot.
type TorusKnotOptions struct {
	Radius          float32
	Tube            float32
	RadialSegments  int // samples along the knot curve
	TubularSegments int // samples around the tube
	P               float32
	Q               float32
}

// DefaultTorusKnot returns radius 2, tube 0.5, 32x32 segments, p=2, q=3.
func DefaultTorusKnot() TorusKnotOptions {
	return TorusKnotOptions{
		Radius:          2,
		Tube:            0.5,
		RadialSegments:  32,
		TubularSegments: 32,
		P:               2,
		Q:               3,
	}
}

func (o TorusKnotOptions) withDefaults() TorusKnotOptions {
	d := DefaultTorusKnot()
	if o.Radius == 0 {
		o.Radius = d.Radius
	}
	if o.Tube == 0 {
		o.Tube = d.Tube
	}
	if o.RadialSegments <= 0 {
		o.RadialSegments = d.RadialSegments
	}
	if o.TubularSegments <= 0 {
		o.TubularSegments = d.TubularSegments
	}
	if o.P == 0 {
		o.P = d.P
	}
	if o.Q == 0 {
		o.Q = d.Q
	}
	return o
}

// TorusKnotN returns the vertex and index counts for the given segments.
// The ring at the end of the curve duplicates the first so uvs can reach 1.
func TorusKnotN(radialSegs, tubularSegs int) (numVertex, nIndex int) {
	numVertex = (radialSegs + 1) * tubularSegs
	nIndex = radialSegs * tubularSegs * 6
	return
}

// TorusKnot builds a torus knot mesh.
func TorusKnot(opts TorusKnotOptions) *VertexData {
	o := opts.withDefaults()
	nv, ni := TorusKnotN(o.RadialSegments, o.TubularSegments)
	vd := newVertexData(nv, ni)

	for i := 0; i <= o.RadialSegments; i++ {
		modI := i % o.RadialSegments
		u := float32(modI) / float32(o.RadialSegments) * 2 * o.P * math32.Pi
		p1 := o.curve(u)
		p2 := o.curve(u + 0.01)

		// Frenet-like frame along the curve
		tang := p2.Sub(p1)
		n := p2.Add(p1)
		bitan := tang.Cross(n)
		n = bitan.Cross(tang)
		bitan = bitan.Normalize()
		n = n.Normalize()

		for j := 0; j < o.TubularSegments; j++ {
			v := float32(j) / float32(o.TubularSegments) * 2 * math32.Pi
			cx := -o.Tube * math32.Cos(v)
			cy := o.Tube * math32.Sin(v)

			pos := p1.Add(n.Mul(cx)).Add(bitan.Mul(cy))
			normal := pos.Sub(p1).Normalize()
			vd.addVertex(pos, normal, float32(i)/float32(o.RadialSegments), float32(j)/float32(o.TubularSegments))
		}
	}

	ts := uint32(o.TubularSegments)
	for i := uint32(0); i < uint32(o.RadialSegments); i++ {
		for j := uint32(0); j < ts; j++ {
			jNext := (j + 1) % ts
			a := i*ts + j
			b := (i+1)*ts + j
			c := (i+1)*ts + jNext
			d := i*ts + jNext
			vd.addTriangle(d, b, a)
			vd.addTriangle(d, c, b)
		}
	}
	return vd
}

func (o TorusKnotOptions) curve(angle float32) mgl32.Vec3 {
	cu := math32.Cos(angle)
	su := math32.Sin(angle)
	quOverP := o.Q / o.P * angle
	cs := math32.Cos(quOverP)

	return mgl32.Vec3{
		o.Radius * (2 + cs) * 0.5 * cu,
		o.Radius * (2 + cs) * su * 0.5,
		o.Radius * math32.Sin(quOverP) * 0.5,
	}
}
