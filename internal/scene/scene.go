package scene

import (
	"fmt"

	"github.com/mirstar13/march-render/internal/bvh"
	"github.com/mirstar13/march-render/internal/sdf"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// ErrDuplicateRoot is the error value for a scene that already has a root.
// No builder method returns it: AddRoot accepts any number of roots without
// checking, so a builder that expects exactly one root has to check
// len(Roots) itself.
var ErrDuplicateRoot = fmt.Errorf("scene: root already set")

// Scene owns the four append-only arenas -- shapes, patterns, materials,
// lights -- plus the list of root shape ids, per spec §3 and §6.1. It is
// immutable once rendering begins; nothing here guards against concurrent
// mutation because the contract is "build, then read-only render".
type Scene struct {
	Shapes    []Shape
	Patterns  *Patterns
	Materials *Materials
	Lights    []Light
	Roots     []ShapeID
}

// New returns an empty scene ready for construction.
func New() *Scene {
	return &Scene{
		Shapes:    make([]Shape, 0, 64),
		Patterns:  NewPatterns(),
		Materials: NewMaterials(),
		Lights:    make([]Light, 0, 4),
		Roots:     make([]ShapeID, 0, 1),
	}
}

func (s *Scene) AddMaterial(m Material) MaterialID { return s.Materials.Add(m) }
func (s *Scene) AddPattern(p Pattern) PatternID     { return s.Patterns.Add(p) }
func (s *Scene) AddLight(l Light)                   { s.Lights = append(s.Lights, l) }

func (s *Scene) addShape(shape Shape) ShapeID {
	s.Shapes = append(s.Shapes, shape)
	return ShapeID(len(s.Shapes) - 1)
}

// AddRoot registers id as a render root. Scenes may have more than one root
// (e.g. to render several independent objects with a single march call via
// an implicit top-level union is the caller's choice). Roots is a record
// only: render.Render and the integrators take the root to march as an
// argument and do not read Roots.
func (s *Scene) AddRoot(id ShapeID) {
	s.Roots = append(s.Roots, id)
}

// AddPrim wraps a primitive SDF as a leaf shape.
func (s *Scene) AddPrim(p sdf.Prim) ShapeID {
	return s.addShape(Shape{Kind: ShapePrim, Prim: p})
}

func (s *Scene) buildMembers(children []ShapeID) (*bvh.BVH[ShapeID], error) {
	if len(children) == 0 {
		return nil, ErrEmptyAggregate
	}
	return bvh.Build(children, func(id ShapeID) vecmath.AABB {
		return s.BoundingVolume(id)
	}), nil
}

// AddGroup builds a Group node: nearest hit among children is reported as
// the hit object (id/material/pattern forwarded from the winning child).
func (s *Scene) AddGroup(children []ShapeID) (ShapeID, error) {
	members, err := s.buildMembers(children)
	if err != nil {
		return 0, err
	}
	return s.addShape(Shape{Kind: ShapeGroup, Members: members}), nil
}

// AddUnion builds a Union node: min of child distances, id/texture-space
// relative to the union as a whole.
func (s *Scene) AddUnion(children []ShapeID) (ShapeID, error) {
	members, err := s.buildMembers(children)
	if err != nil {
		return 0, err
	}
	return s.addShape(Shape{Kind: ShapeUnion, Members: members}), nil
}

// AddIntersect builds an Intersect node: max of child distances.
func (s *Scene) AddIntersect(children []ShapeID) (ShapeID, error) {
	members, err := s.buildMembers(children)
	if err != nil {
		return 0, err
	}
	return s.addShape(Shape{Kind: ShapeIntersect, Members: members}), nil
}

// AddSubtract builds `max(sdf(a), -sdf(b))`.
func (s *Scene) AddSubtract(a, b ShapeID) ShapeID {
	return s.addShape(Shape{Kind: ShapeSubtract, First: a, Second: b})
}

// AddSmoothUnion builds a polynomial-smooth union with blend width k>0.
func (s *Scene) AddSmoothUnion(k float64, a, b ShapeID) ShapeID {
	return s.addShape(Shape{Kind: ShapeSmoothUnion, K: k, First: a, Second: b})
}

// AddSmoothSubtract builds a polynomial-smooth subtraction with blend width
// k>0.
func (s *Scene) AddSmoothSubtract(k float64, a, b ShapeID) ShapeID {
	return s.addShape(Shape{Kind: ShapeSmoothSubtract, K: k, First: a, Second: b})
}

// AddTransform wraps child in matrix, restricted to rotation/translation/
// uniform-scale per spec §9 design note (c): non-uniform scale breaks
// distance metricity, so scaleFactor is a single scalar, not a per-axis one.
func (s *Scene) AddTransform(matrix vecmath.Matrix4, scaleFactor float64, child ShapeID) (ShapeID, error) {
	inverse, err := matrix.Invert()
	if err != nil {
		return 0, fmt.Errorf("scene: transform matrix not invertible: %w", err)
	}
	return s.addShape(Shape{
		Kind: ShapeTransform, Matrix: matrix, Inverse: inverse,
		ScaleFactor: scaleFactor, Child: child,
	}), nil
}

// AddTranslation is a convenience AddTransform for a pure translation.
func (s *Scene) AddTranslation(v vecmath.Vec3, child ShapeID) (ShapeID, error) {
	return s.AddTransform(vecmath.Translation(v), 1.0, child)
}

// AddRotation is a convenience AddTransform for an axis-angle rotation.
func (s *Scene) AddRotation(axis vecmath.Vec3, angle float64, child ShapeID) (ShapeID, error) {
	return s.AddTransform(vecmath.AxisAngleRotation(axis, angle), 1.0, child)
}

// AddUniformScale is a convenience AddTransform for a uniform scale.
func (s *Scene) AddUniformScale(amount float64, child ShapeID) (ShapeID, error) {
	return s.AddTransform(vecmath.UniformScaling(amount), amount, child)
}

// AddMaterialNode attaches pattern/material to a sub-tree.
func (s *Scene) AddMaterialNode(pattern PatternID, material MaterialID, child ShapeID) ShapeID {
	return s.addShape(Shape{Kind: ShapeMaterial, PatternID: pattern, MaterialID: material, Child: child})
}

// AddOnion hollows child to a shell of the given thickness.
func (s *Scene) AddOnion(thickness float64, child ShapeID) ShapeID {
	return s.addShape(Shape{Kind: ShapeOnion, Thickness: thickness, Child: child})
}

// AddRounded rounds child's edges by radius.
func (s *Scene) AddRounded(radius float64, child ShapeID) ShapeID {
	return s.addShape(Shape{Kind: ShapeRounded, Radius: radius, Child: child})
}
