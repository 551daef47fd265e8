package vecmath

import "math"

// Ray is a point and a normalized direction, with the component-wise
// inverse direction precomputed for the AABB slab test (spec §4.1). Division
// by a zero component yields a signed infinity, which the slab test relies
// on instead of branching -- standard IEEE-754 slab-test behavior, per
// spec §7's numerical-guards note.
type Ray struct {
	Origin       Point3
	Direction    Vec3
	InvDirection Vec3
}

// NewRay normalizes direction and precomputes its inverse.
func NewRay(origin Point3, direction Vec3) Ray {
	d := direction.Normalize()
	return Ray{
		Origin:       origin,
		Direction:    d,
		InvDirection: Vec3{1.0 / d.X, 1.0 / d.Y, 1.0 / d.Z},
	}
}

// At returns the point reached after advancing t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Step advances the ray's origin by amount along its direction, matching
// original_source/src/ray.rs's Ray::step used to nudge reflected/refracted
// rays off the surface they originated from.
func (r Ray) Step(amount float64) Ray {
	return NewRay(r.At(amount), r.Direction)
}

// Transform applies m to both the origin and direction, renormalizing the
// direction and recomputing the inverse -- used when descending into a
// Transform node's local frame.
func (r Ray) Transform(m Matrix4) Ray {
	return NewRay(m.TransformPoint(r.Origin), m.TransformVec(r.Direction))
}

// ReflectAbout returns a new ray starting at r's origin point, reflected about n.
func (r Ray) ReflectAbout(n Vec3) Ray {
	return NewRay(r.Origin, Reflect(r.Direction, n))
}

// NewUnitRay builds a ray whose direction is already a unit vector,
// skipping the renormalization NewRay performs -- used by the refraction
// formula in internal/integrator, whose direction is unchecked-unit by
// construction (mirrors original_source/src/integrator/whitted.rs's
// Unit::new_unchecked).
func NewUnitRay(origin Point3, unitDirection Vec3) Ray {
	d := unitDirection
	return Ray{
		Origin:       origin,
		Direction:    d,
		InvDirection: Vec3{1.0 / d.X, 1.0 / d.Y, 1.0 / d.Z},
	}
}

// IsFinite reports whether a float64 is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
