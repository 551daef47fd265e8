// Package march implements sphere tracing: the root-finding loop that walks
// a ray through an SDF scene until it reports a hit, a miss, or exhausts its
// step budget. Grounded on original_source/src/march.rs, generalized to the
// spec's exact defaults and abs-distance hit test (spec §4.7).
package march

import (
	"math"

	"github.com/mirstar13/march-render/internal/scene"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// Config bundles the marcher's numerical guards, per spec §6.3.
type Config struct {
	MaxSteps       int
	MinDist        float64
	MaxDist        float64
	MaxReflections int
}

// DefaultConfig returns the spec §6.3 defaults: max_steps=200, min_dist=0.01,
// max_dist=1000, max_reflections=10.
func DefaultConfig() Config {
	return Config{
		MaxSteps:       200,
		MinDist:        0.01,
		MaxDist:        1000.0,
		MaxReflections: 10,
	}
}

// NormalEpsilon is the central-difference step used to estimate the SDF
// gradient at a hit point, per spec §4.7. MinDist must never be smaller
// than it or normals degenerate (spec §9 design note).
const NormalEpsilon = 1e-4

// Hit is the result of a successful march.
type Hit struct {
	Sign     float64
	Ray      vecmath.Ray
	Distance float64
	Steps    int
	Result   scene.SDFResult
}

// March sphere-traces origin through the shape tree rooted at root. sign is
// -1 when integrating inside a transparent medium (spec §4.8 step 2), +1
// otherwise. Returns (hit, true) or (Hit{}, false) on a miss.
func March(cfg Config, s *scene.Scene, root scene.ShapeID, sign float64, origin vecmath.Ray) (Hit, bool) {
	distance := 0.0
	pos := origin

	for step := 0; step < cfg.MaxSteps; step++ {
		result := s.SDF(root, pos)
		result.Distance *= sign

		if math.Abs(result.Distance) <= cfg.MinDist {
			return Hit{
				Sign:     sign,
				Ray:      pos,
				Distance: distance,
				Steps:    step + 1,
				Result:   result,
			}, true
		}

		distance += result.Distance
		pos = vecmath.NewRay(origin.At(distance), origin.Direction)

		if distance >= cfg.MaxDist {
			return Hit{}, false
		}
	}
	return Hit{}, false
}

// Normal estimates the SDF gradient at hit.Ray.Origin via central
// differences with NormalEpsilon, component-wise, then normalizes, per
// spec §4.7. The sample rays keep the hit ray's direction, so aggregate
// nodes cull their children by the same ray that found the hit.
func Normal(s *scene.Scene, root scene.ShapeID, hit Hit) vecmath.Vec3 {
	p := hit.Ray.Origin
	d := hit.Ray.Direction
	eps := NormalEpsilon

	dx := sampleSDF(s, root, p, d, vecmath.Vec3{X: eps}) - sampleSDF(s, root, p, d, vecmath.Vec3{X: -eps})
	dy := sampleSDF(s, root, p, d, vecmath.Vec3{Y: eps}) - sampleSDF(s, root, p, d, vecmath.Vec3{Y: -eps})
	dz := sampleSDF(s, root, p, d, vecmath.Vec3{Z: eps}) - sampleSDF(s, root, p, d, vecmath.Vec3{Z: -eps})

	return vecmath.Vec3{X: dx, Y: dy, Z: dz}.Normalize()
}

func sampleSDF(s *scene.Scene, root scene.ShapeID, p vecmath.Point3, dir, offset vecmath.Vec3) float64 {
	ray := vecmath.NewRay(p.Add(offset), dir)
	return s.SDF(root, ray).Distance
}
