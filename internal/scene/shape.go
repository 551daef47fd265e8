package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/mirstar13/march-render/internal/bvh"
	"github.com/mirstar13/march-render/internal/sdf"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// ErrEmptyAggregate is returned when constructing a Group/Union/Intersect
// with zero children, per spec §7.
var ErrEmptyAggregate = errors.New("scene: aggregate shape has no children")

// ShapeKind is the closed set of CSG tree node variants, per spec §3.
type ShapeKind int

const (
	ShapePrim ShapeKind = iota
	ShapeGroup
	ShapeUnion
	ShapeIntersect
	ShapeSubtract
	ShapeSmoothUnion
	ShapeSmoothSubtract
	ShapeTransform
	ShapeMaterial
	ShapeOnion
	ShapeRounded
)

// Shape is a tagged-variant CSG tree node.
type Shape struct {
	Kind ShapeKind

	Prim sdf.Prim // ShapePrim

	Members *bvh.BVH[ShapeID] // ShapeGroup/Union/Intersect

	K             float64 // ShapeSmoothUnion/ShapeSmoothSubtract blend width
	First, Second ShapeID // ShapeSubtract/SmoothUnion/SmoothSubtract

	Matrix      vecmath.Matrix4 // ShapeTransform forward
	Inverse     vecmath.Matrix4 // ShapeTransform inverse
	ScaleFactor float64         // ShapeTransform uniform-scale factor

	PatternID  PatternID  // ShapeMaterial
	MaterialID MaterialID // ShapeMaterial

	Thickness float64 // ShapeOnion
	Radius    float64 // ShapeRounded

	Child ShapeID // Transform/Material/Onion/Rounded
}

// SDFResult is the output of evaluating a Shape's SDF at a ray's origin.
type SDFResult struct {
	Distance         float64
	ObjectID         ShapeID
	ObjectSpacePoint vecmath.Point3
	Material         MaterialID
	Pattern          PatternID
	HasMaterial      bool
}

// SDF evaluates the shape tree rooted at id against ray, per spec §4.4.
func (s *Scene) SDF(id ShapeID, ray vecmath.Ray) SDFResult {
	shape := s.Shapes[id]
	switch shape.Kind {
	case ShapePrim:
		return SDFResult{
			Distance:         shape.Prim.Distance(ray.Origin),
			ObjectID:         id,
			ObjectSpacePoint: ray.Origin,
		}

	case ShapeGroup:
		best := SDFResult{Distance: infinity()}
		first := true
		bvh.FoldIntersections(shape.Members, ray, struct{}{}, func(acc struct{}, child ShapeID) struct{} {
			tmp := s.SDF(child, ray)
			if first || vecmath.CompareDistance(tmp.Distance, best.Distance) < 0 {
				best = tmp
				first = false
			}
			return acc
		})
		return best

	case ShapeUnion:
		best := SDFResult{Distance: infinity()}
		first := true
		bvh.FoldIntersections(shape.Members, ray, struct{}{}, func(acc struct{}, child ShapeID) struct{} {
			tmp := s.SDF(child, ray)
			if first || vecmath.CompareDistance(tmp.Distance, best.Distance) < 0 {
				best.Distance = tmp.Distance
				best.Material = tmp.Material
				best.Pattern = tmp.Pattern
				best.HasMaterial = tmp.HasMaterial
				first = false
			}
			return acc
		})
		best.ObjectID = id
		best.ObjectSpacePoint = ray.Origin
		return best

	case ShapeIntersect:
		best := SDFResult{Distance: negInfinity()}
		first := true
		bvh.FoldIntersections(shape.Members, ray, struct{}{}, func(acc struct{}, child ShapeID) struct{} {
			tmp := s.SDF(child, ray)
			if first || vecmath.CompareDistance(tmp.Distance, best.Distance) > 0 {
				best.Distance = tmp.Distance
				best.Material = tmp.Material
				best.Pattern = tmp.Pattern
				best.HasMaterial = tmp.HasMaterial
				first = false
			}
			return acc
		})
		best.ObjectID = id
		best.ObjectSpacePoint = ray.Origin
		return best

	case ShapeSubtract:
		a := s.SDF(shape.First, ray)
		b := s.SDF(shape.Second, ray)
		sub := -b.Distance
		if a.Distance <= sub {
			a.Distance = sub
			a.Material = b.Material
			a.Pattern = b.Pattern
			a.HasMaterial = b.HasMaterial
		}
		a.ObjectID = id
		a.ObjectSpacePoint = ray.Origin
		return a

	case ShapeSmoothUnion:
		a := s.SDF(shape.First, ray)
		b := s.SDF(shape.Second, ray)
		diff := b.Distance - a.Distance
		if diff < 0 {
			a.Material = b.Material
			a.Pattern = b.Pattern
			a.HasMaterial = b.HasMaterial
		}
		h := vecmath.Clamp(0.5+0.5*diff/shape.K, 0, 1)
		a.Distance = vecmath.Mix(b.Distance, a.Distance, h) - shape.K*h*(1-h)
		a.ObjectSpacePoint = ray.Origin
		return a

	case ShapeSmoothSubtract:
		a := s.SDF(shape.First, ray)
		b := s.SDF(shape.Second, ray)
		sub := -b.Distance
		h := vecmath.Clamp(0.5-0.5*(a.Distance+b.Distance)/shape.K, 0, 1)
		a.Distance = vecmath.Mix(a.Distance, sub, h) + shape.K*h*(1-h)
		a.ObjectID = id
		a.ObjectSpacePoint = ray.Origin
		return a

	case ShapeTransform:
		localRay := ray.Transform(shape.Inverse)
		result := s.SDF(shape.Child, localRay)
		result.Distance *= shape.ScaleFactor
		return result

	case ShapeMaterial:
		result := s.SDF(shape.Child, ray)
		result.Material = shape.MaterialID
		result.Pattern = shape.PatternID
		result.HasMaterial = true
		return result

	case ShapeOnion:
		result := s.SDF(shape.Child, ray)
		result.Distance = absf(result.Distance) - shape.Thickness
		return result

	case ShapeRounded:
		result := s.SDF(shape.Child, ray)
		result.Distance -= shape.Radius
		return result

	default:
		panic(fmt.Sprintf("scene: unknown shape kind %v", shape.Kind))
	}
}

// BoundingVolume returns the conservative world-space AABB of the shape
// rooted at id, per the rules listed in spec §6.1.
func (s *Scene) BoundingVolume(id ShapeID) vecmath.AABB {
	shape := s.Shapes[id]
	switch shape.Kind {
	case ShapePrim:
		return shape.Prim.Bounds()
	case ShapeGroup, ShapeUnion, ShapeIntersect:
		b, ok := shape.Members.BoundingVolume()
		if !ok {
			return vecmath.EmptyAABB()
		}
		return b
	case ShapeSmoothUnion:
		return s.BoundingVolume(shape.First).Union(s.BoundingVolume(shape.Second))
	case ShapeSubtract, ShapeSmoothSubtract:
		return s.BoundingVolume(shape.First)
	case ShapeTransform:
		return s.BoundingVolume(shape.Child).Transform(shape.Matrix)
	case ShapeMaterial:
		return s.BoundingVolume(shape.Child)
	case ShapeOnion:
		return s.BoundingVolume(shape.Child).GrowBy(shape.Thickness)
	case ShapeRounded:
		return s.BoundingVolume(shape.Child).GrowBy(shape.Radius)
	default:
		panic(fmt.Sprintf("scene: unknown shape kind %v", shape.Kind))
	}
}

func infinity() float64    { return math.Inf(1) }
func negInfinity() float64 { return math.Inf(-1) }

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
