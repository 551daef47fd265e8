package vecmath

import "math"

// AABB is an axis-aligned bounding box. When non-empty, Min.X <= Max.X and
// so on for each axis; Intersect may yield an empty box (Min > Max on some
// axis), which IsEmpty detects.
type AABB struct {
	Min, Max Point3
}

// EmptyAABB returns a box that contains nothing and unions/merges as the
// identity element.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Point3{inf, inf, inf},
		Max: Point3{-inf, -inf, -inf},
	}
}

func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: b.Min.AsVec3().Min(o.Min.AsVec3()).AsPoint3(),
		Max: b.Max.AsVec3().Max(o.Max.AsVec3()).AsPoint3(),
	}
}

func (b AABB) UnionPoint(p Point3) AABB {
	return AABB{
		Min: b.Min.AsVec3().Min(p.AsVec3()).AsPoint3(),
		Max: b.Max.AsVec3().Max(p.AsVec3()).AsPoint3(),
	}
}

func (b AABB) Intersect(o AABB) AABB {
	return AABB{
		Min: b.Min.AsVec3().Max(o.Min.AsVec3()).AsPoint3(),
		Max: b.Max.AsVec3().Min(o.Max.AsVec3()).AsPoint3(),
	}
}

func (b AABB) Centroid() Point3 {
	return b.Min.Add(b.Max.Sub(b.Min).Scale(0.5))
}

func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// GrowBy expands the box outward by amount on every axis, used for Onion and
// Rounded bounding-volume propagation (spec §6.1).
func (b AABB) GrowBy(amount float64) AABB {
	g := Vec3{amount, amount, amount}
	return AABB{
		Min: b.Min.SubVec(g),
		Max: b.Max.Add(g),
	}
}

// Axis identifies which coordinate axis an AABB computation picked.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// MaxAxis returns the axis of greatest extent and its midpoint value along
// that axis, used by the BVH builder to choose a split plane (spec §4.2).
func (b AABB) MaxAxis() (Axis, float64) {
	e := b.Extent()
	c := b.Centroid()
	switch {
	case e.X >= e.Y && e.X >= e.Z:
		return AxisX, c.X
	case e.Y >= e.Z:
		return AxisY, c.Y
	default:
		return AxisZ, c.Z
	}
}

// Component returns p's coordinate along axis.
func (a Axis) Component(p Point3) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// Transform returns the axis-aligned bound of b after applying m, using the
// column-wise min/max trick: transform the centroid normally and the extent
// by the absolute value of m's rotation/scale block, per spec §4.1.
func (b AABB) Transform(m Matrix4) AABB {
	c := m.TransformPoint(b.Centroid())
	halfExtent := b.Extent().Scale(0.5)
	e := m.AbsRotationScale(halfExtent)
	return AABB{
		Min: c.SubVec(e),
		Max: c.Add(e),
	}
}

// Intersects performs the slab-method ray-AABB test using the ray's
// precomputed inverse direction (spec §4.1). Rays starting inside the box
// are reported as hits.
func (b AABB) Intersects(r Ray) bool {
	t1x, t2x := slab((b.Min.X-r.Origin.X)*r.InvDirection.X, (b.Max.X-r.Origin.X)*r.InvDirection.X)
	tmin := math.Min(t1x, t2x)
	tmax := math.Max(t1x, t2x)

	t1y, t2y := slab((b.Min.Y-r.Origin.Y)*r.InvDirection.Y, (b.Max.Y-r.Origin.Y)*r.InvDirection.Y)
	tmin = math.Max(tmin, math.Min(t1y, t2y))
	tmax = math.Min(tmax, math.Max(t1y, t2y))

	t1z, t2z := slab((b.Min.Z-r.Origin.Z)*r.InvDirection.Z, (b.Max.Z-r.Origin.Z)*r.InvDirection.Z)
	tmin = math.Max(tmin, math.Min(t1z, t2z))
	tmax = math.Min(tmax, math.Max(t1z, t2z))

	return tmax >= tmin
}

// slab passes one axis's two slab parameters through, except that a NaN
// (0*Inf: the origin lies on a face and the ray runs parallel to it) means
// the origin is inside that slab, so the axis does not bound t.
func slab(t1, t2 float64) (float64, float64) {
	if math.IsNaN(t1) || math.IsNaN(t2) {
		return math.Inf(-1), math.Inf(1)
	}
	return t1, t2
}
