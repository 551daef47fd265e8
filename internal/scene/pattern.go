package scene

import (
	"math"

	"github.com/mirstar13/march-render/internal/vecmath"
)

// PatternKind is the closed set of procedural color fields a Pattern can be,
// per spec §4.5.
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternGradient
	PatternStripe
	PatternCircles
	PatternCheckers
	PatternTransform
)

// Pattern is a tagged-variant procedural color field, evaluated at an
// object-space point.
type Pattern struct {
	Kind PatternKind

	Solid vecmath.Color // PatternSolid

	First, Second PatternID // Gradient/Stripe/Circles/Checkers

	Inverse Matrix4Like // PatternTransform
	Child   PatternID   // PatternTransform
}

// Matrix4Like is an alias for vecmath.Matrix4.
type Matrix4Like = vecmath.Matrix4

// Patterns is the append-only pattern arena.
type Patterns struct {
	items []Pattern
}

func NewPatterns() *Patterns {
	return &Patterns{items: make([]Pattern, 0, 8)}
}

func (p *Patterns) Add(pat Pattern) PatternID {
	p.items = append(p.items, pat)
	return PatternID(len(p.items) - 1)
}

func (p *Patterns) Get(id PatternID) Pattern {
	return p.items[id]
}

func SolidPattern(c vecmath.Color) Pattern {
	return Pattern{Kind: PatternSolid, Solid: c}
}

func GradientPattern(a, b PatternID) Pattern {
	return Pattern{Kind: PatternGradient, First: a, Second: b}
}

func StripePattern(a, b PatternID) Pattern {
	return Pattern{Kind: PatternStripe, First: a, Second: b}
}

func CirclesPattern(a, b PatternID) Pattern {
	return Pattern{Kind: PatternCircles, First: a, Second: b}
}

func CheckersPattern(a, b PatternID) Pattern {
	return Pattern{Kind: PatternCheckers, First: a, Second: b}
}

// TransformPattern wraps child, evaluating it at inverse*point. inverse must
// already be the inverse of the desired forward transform.
func TransformPattern(inverse vecmath.Matrix4, child PatternID) Pattern {
	return Pattern{Kind: PatternTransform, Inverse: inverse, Child: child}
}

// ColorAt evaluates the pattern with id at point, per spec §4.5.
func (p *Patterns) ColorAt(id PatternID, point vecmath.Point3) vecmath.Color {
	pat := p.Get(id)
	switch pat.Kind {
	case PatternSolid:
		return pat.Solid
	case PatternGradient:
		a := p.ColorAt(pat.First, point)
		b := p.ColorAt(pat.Second, point)
		t := vecmath.Clamp(point.X, 0, 1)
		return a.Lerp(b, t)
	case PatternStripe:
		if evenFloor(point.X) {
			return p.ColorAt(pat.First, point)
		}
		return p.ColorAt(pat.Second, point)
	case PatternCircles:
		dist := vecmath.Vec2{X: point.X, Y: point.Z}.Length()
		if evenFloor(dist) {
			return p.ColorAt(pat.First, point)
		}
		return p.ColorAt(pat.Second, point)
	case PatternCheckers:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if math.Mod(sum, 2.0) == 0.0 {
			return p.ColorAt(pat.First, point)
		}
		return p.ColorAt(pat.Second, point)
	case PatternTransform:
		newPoint := pat.Inverse.TransformPoint(point)
		return p.ColorAt(pat.Child, newPoint)
	default:
		return vecmath.ColorBlack
	}
}

func evenFloor(v float64) bool {
	f := math.Floor(v)
	return math.Mod(f, 2.0) == 0.0
}
