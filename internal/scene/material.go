package scene

// MaterialKind distinguishes the two material behaviors the integrator
// understands, per spec §3.
type MaterialKind int

const (
	MaterialPhong MaterialKind = iota
	MaterialEmissive
)

// Material is a tagged-variant surface description.
type Material struct {
	Kind MaterialKind

	Pattern PatternID

	// Phong-only fields. Defaults per original_source/src/material.rs:
	// ambient 0.1, diffuse 0.9, specular 0.9, shininess 200, reflective 0,
	// transparent 0, refractive index 1.
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparent     float64
	RefractiveIndex float64
}

// DefaultPhong returns a Phong material with the original's default
// coefficients, used directly in spec §8 scenario 1.
func DefaultPhong(pattern PatternID) Material {
	return Material{
		Kind:            MaterialPhong,
		Pattern:         pattern,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparent:     0.0,
		RefractiveIndex: 1.0,
	}
}

func EmissiveMaterial(pattern PatternID) Material {
	return Material{Kind: MaterialEmissive, Pattern: pattern}
}

// Materials is the append-only material arena.
type Materials struct {
	items []Material
}

func NewMaterials() *Materials {
	return &Materials{items: make([]Material, 0, 8)}
}

func (m *Materials) Add(mat Material) MaterialID {
	m.items = append(m.items, mat)
	return MaterialID(len(m.items) - 1)
}

func (m *Materials) Get(id MaterialID) Material {
	return m.items[id]
}
