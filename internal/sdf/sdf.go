// Package sdf implements the closed-form signed distance functions for each
// primitive shape, grounded on original_source/src/shapes.rs's
// PrimShape::sdf formulas.
package sdf

import (
	"math"

	"github.com/mirstar13/march-render/internal/vecmath"
)

// Prim is the closed set of primitive shapes a march can hit.
type Prim interface {
	// Distance returns the signed distance from p (in the primitive's local
	// frame) to the primitive's surface.
	Distance(p vecmath.Point3) float64
	// Bounds returns a conservative local-frame AABB, used for BVH building.
	Bounds() vecmath.AABB
}

// Sphere is a unit-radius sphere centered at the origin.
type Sphere struct{}

func (Sphere) Distance(p vecmath.Point3) float64 {
	return p.AsVec3().Length() - 1.0
}

func (Sphere) Bounds() vecmath.AABB {
	return vecmath.AABB{Min: vecmath.Point3{X: -1, Y: -1, Z: -1}, Max: vecmath.Point3{X: 1, Y: 1, Z: 1}}
}

// XZPlane is the infinite plane y=0.
type XZPlane struct{}

func (XZPlane) Distance(p vecmath.Point3) float64 { return p.Y }

func (XZPlane) Bounds() vecmath.AABB {
	const huge = 1e6
	return vecmath.AABB{
		Min: vecmath.Point3{X: -huge, Y: -huge, Z: -huge},
		Max: vecmath.Point3{X: huge, Y: 0, Z: huge},
	}
}

// RectangularPrism is a box with half-extents W,H,D, using the Inigo Quilez
// box SDF formula.
type RectangularPrism struct {
	W, H, D float64
}

func (r RectangularPrism) Distance(p vecmath.Point3) float64 {
	qx := math.Abs(p.X) - r.W
	qy := math.Abs(p.Y) - r.H
	qz := math.Abs(p.Z) - r.D

	outside := vecmath.Vec3{X: math.Max(qx, 0), Y: math.Max(qy, 0), Z: math.Max(qz, 0)}.Length()
	inside := math.Min(math.Max(qx, math.Max(qy, qz)), 0.0)
	return outside + inside
}

func (r RectangularPrism) Bounds() vecmath.AABB {
	return vecmath.AABB{
		Min: vecmath.Point3{X: -r.W, Y: -r.H, Z: -r.D},
		Max: vecmath.Point3{X: r.W, Y: r.H, Z: r.D},
	}
}

// Cylinder is a capped cylinder along the Y axis with radius R and
// half-length L.
type Cylinder struct {
	R, L float64
}

func (c Cylinder) Distance(p vecmath.Point3) float64 {
	xzMag := vecmath.Vec2{X: p.X, Y: p.Z}.Length()
	return math.Max(xzMag-c.R, math.Abs(p.Y)-c.L)
}

func (c Cylinder) Bounds() vecmath.AABB {
	return vecmath.AABB{
		Min: vecmath.Point3{X: -c.R, Y: -c.L, Z: -c.R},
		Max: vecmath.Point3{X: c.R, Y: c.L, Z: c.R},
	}
}

// Torus lies in the XZ plane. The naming follows
// original_source/src/shapes.rs: Radius is the tube radius, Hole is the
// distance from the center to the tube's center (the major radius).
type Torus struct {
	Radius, Hole float64
}

func (tr Torus) Distance(p vecmath.Point3) float64 {
	x := vecmath.Vec2{X: p.X, Y: p.Z}.Length() - tr.Hole
	return vecmath.Vec2{X: x, Y: p.Y}.Length() - tr.Radius
}

func (tr Torus) Bounds() vecmath.AABB {
	e := tr.Radius + tr.Hole
	return vecmath.AABB{
		Min: vecmath.Point3{X: -e, Y: -e, Z: -e},
		Max: vecmath.Point3{X: e, Y: e, Z: e},
	}
}

// Triangle stores its three vertices plus the edge vectors and face normal
// precomputed at construction, per original_source/src/shapes.rs's
// PrimShape::triangle.
type Triangle struct {
	A, B, C          vecmath.Point3
	ba, cb, ac       vecmath.Vec3
	normal           vecmath.Vec3
}

// NewTriangle precomputes the edge vectors and face normal once, matching
// the original's ba=b-a, cb=c-b, ac=a-c, normal=ba×ac.
func NewTriangle(a, b, c vecmath.Point3) Triangle {
	ba := b.Sub(a)
	cb := c.Sub(b)
	ac := a.Sub(c)
	return Triangle{
		A: a, B: b, C: c,
		ba: ba, cb: cb, ac: ac,
		normal: ba.Cross(ac),
	}
}

func (tr Triangle) Distance(p vecmath.Point3) float64 {
	pa := p.Sub(tr.A)
	pb := p.Sub(tr.B)
	pc := p.Sub(tr.C)

	sa := sign(pa.Dot(tr.ba.Cross(tr.normal)))
	sb := sign(pb.Dot(tr.cb.Cross(tr.normal)))
	sc := sign(pc.Dot(tr.ac.Cross(tr.normal)))

	if sa+sb+sc < 2.0 {
		d2a := edgeDist2(tr.ba, pa)
		d2b := edgeDist2(tr.cb, pb)
		d2c := edgeDist2(tr.ac, pc)
		return math.Sqrt(math.Min(d2a, math.Min(d2b, d2c)))
	}

	nDotPa := tr.normal.Dot(pa)
	return math.Sqrt((nDotPa * nDotPa) / vecmath.Dot2(tr.normal))
}

func edgeDist2(edge, p vecmath.Vec3) float64 {
	t := vecmath.Clamp(edge.Dot(p)/vecmath.Dot2(edge), 0, 1)
	return vecmath.Dot2(edge.Scale(t).Sub(p))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (tr Triangle) Bounds() vecmath.AABB {
	return vecmath.EmptyAABB().UnionPoint(tr.A).UnionPoint(tr.B).UnionPoint(tr.C)
}
