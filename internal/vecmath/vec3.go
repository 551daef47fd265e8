// Package vecmath provides the affine math primitives shared by the whole
// rendering pipeline: vectors, points, colors, matrices and rays.
package vecmath

import "math"

// Vec3 is a 3-component vector used for directions, normals and offsets.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a 3-component affine point. It is distinguished from Vec3 at the
// type level so transforms can treat translation correctly, mirroring the
// teacher's Point/vector split in math.go and geometry.go.
type Point3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3   { return Vec3{x, y, z} }
func NewPoint3(x, y, z float64) Point3 { return Point3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

// Normalize returns the unit vector in v's direction. Mirrors the teacher's
// normalizeVector zero-length guard, but returns the zero vector instead of
// substituting an arbitrary default: callers in this pipeline never
// normalize a genuinely zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// MaxComponent returns the largest of v's three components.
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// Reflect reflects v about normal n (both assumed relative directions).
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (p Point3) Add(v Vec3) Point3    { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3) SubVec(v Vec3) Point3 { return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }
func (p Point3) Sub(o Point3) Vec3    { return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3) AsVec3() Vec3         { return Vec3{p.X, p.Y, p.Z} }
func (v Vec3) AsPoint3() Point3       { return Point3{v.X, v.Y, v.Z} }

// Vec2 is used by primitive SDFs that project onto a plane (cylinder, torus).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Clamp restricts val to [lo, hi], matching the teacher's math.go clamp.
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Mix linearly interpolates between x and y by a.
func Mix(x, y, a float64) float64 {
	return x*(1-a) + y*a
}

// Dot2 is the squared length of v, named to match the original_source
// utils.rs helper used throughout the triangle SDF.
func Dot2(v Vec3) float64 { return v.Dot(v) }

// CompareDistance orders two distances for min/max folds, treating NaN as
// +Inf so a malformed SDF result never silently wins a comparison. Grounded
// on original_source/src/scene.rs's Distance newtype, which gives raw floats
// a total order for min_by_key/max_by_key folds.
func CompareDistance(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	if an && bn {
		return 0
	}
	if an {
		return 1
	}
	if bn {
		return -1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
