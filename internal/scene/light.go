package scene

import "github.com/mirstar13/march-render/internal/vecmath"

// LightKind distinguishes a positioned point light from an ambient-only
// diffuse light that only contributes when a ray escapes the scene, per
// spec §3 and §4.8 step 3.
type LightKind int

const (
	LightPoint LightKind = iota
	LightDiffuse
)

// Light is a tagged-variant light source.
type Light struct {
	Kind     LightKind
	Position vecmath.Point3 // LightPoint only
	Color    vecmath.Color
}

func NewPointLight(position vecmath.Point3, color vecmath.Color) Light {
	return Light{Kind: LightPoint, Position: position, Color: color}
}

func NewDiffuseLight(color vecmath.Color) Light {
	return Light{Kind: LightDiffuse, Color: color}
}

// Intensity returns the light's color, used uniformly regardless of kind.
func (l Light) Intensity() vecmath.Color { return l.Color }

// LightEscape is the contribution a light makes when a ray misses the
// scene entirely: a Point light contributes nothing (it only illuminates
// surfaces it can see), a Diffuse light always contributes its color.
func (l Light) LightEscape() vecmath.Color {
	if l.Kind == LightDiffuse {
		return l.Color
	}
	return vecmath.ColorBlack
}

// PositionOK returns the light's position and whether it has one (only
// Point lights do); used by the integrator's shadow test.
func (l Light) PositionOK() (vecmath.Point3, bool) {
	if l.Kind == LightPoint {
		return l.Position, true
	}
	return vecmath.Point3{}, false
}
