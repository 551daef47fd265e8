// Package integrator turns a march hit into a pixel color: the Whitted
// recursive reflection/refraction scheme, plus two debug visualizers. The
// three share one small interface, since this is the one place in the
// pipeline where polymorphism across strategy earns its keep (spec §9).
package integrator

import (
	"math"

	"github.com/mirstar13/march-render/internal/camera"
	"github.com/mirstar13/march-render/internal/march"
	"github.com/mirstar13/march-render/internal/scene"
	"github.com/mirstar13/march-render/internal/vecmath"
)

// Integrator computes the color seen along the ray generated for a single
// sample.
type Integrator interface {
	Luminance(s *scene.Scene, root scene.ShapeID, sample camera.Sample, cam camera.PinholeCamera) vecmath.Color
}

// Whitted is the deterministic recursive integrator of spec §4.8.
type Whitted struct {
	Config march.Config
}

func NewWhitted(cfg march.Config) *Whitted {
	return &Whitted{Config: cfg}
}

func (w *Whitted) Luminance(s *scene.Scene, root scene.ShapeID, sample camera.Sample, cam camera.PinholeCamera) vecmath.Color {
	ray := cam.GenerateRay(sample)
	return w.colorForRay(s, root, Containers{}, ray, 0)
}

func (w *Whitted) colorForRay(s *scene.Scene, root scene.ShapeID, containers Containers, ray vecmath.Ray, reflection int) vecmath.Color {
	if reflection >= w.Config.MaxReflections {
		return vecmath.ColorBlack
	}

	sign := 1.0
	if !containers.IsEmpty() {
		sign = -1.0
	}

	hit, ok := march.March(w.Config, s, root, sign, ray)
	if !ok {
		color := vecmath.ColorBlack
		for _, light := range s.Lights {
			color = color.Add(light.LightEscape())
		}
		return color
	}

	if !hit.Result.HasMaterial {
		return vecmath.HexColor(0xff00ff)
	}

	mat := s.Materials.Get(hit.Result.Material)
	if mat.Kind == scene.MaterialEmissive {
		return s.Patterns.ColorAt(mat.Pattern, hit.Result.ObjectSpacePoint)
	}

	return w.shadePhong(s, root, containers, hit, mat, reflection)
}

func (w *Whitted) shadePhong(s *scene.Scene, root scene.ShapeID, containers Containers, hit march.Hit, mat scene.Material, reflection int) vecmath.Color {
	normal := march.Normal(s, root, hit)
	eyev := hit.Ray.Direction.Neg()
	hitPoint := hit.Ray.Origin

	baseColor := s.Patterns.ColorAt(mat.Pattern, hit.Result.ObjectSpacePoint)

	surface := vecmath.ColorBlack
	for _, light := range s.Lights {
		effective := baseColor.Mul(light.Intensity())
		surface = surface.Add(effective.Scale(mat.Ambient))

		lightPos, isPoint := light.PositionOK()
		if isPoint && w.inShadow(s, root, hitPoint, normal, lightPos) {
			continue
		}
		if !isPoint {
			continue
		}

		surface = surface.Add(litColor(light, effective, eyev, normal, mat, hitPoint, lightPos))
	}

	// Exiting a transparent object: invert the normal for the refraction math below.
	if containers.Contains(hit.Result.ObjectID) {
		normal = normal.Neg()
	}

	reflected := w.reflectedColor(s, root, containers, hit, normal, mat.Reflective, reflection)
	refracted, reflectance := w.refractedColor(s, root, containers, hit, normal, mat, reflection)

	if mat.Reflective > 0 && mat.Transparent > 0 {
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// litColor computes the diffuse+specular contribution of a visible point
// light, per spec §4.8 step b.
func litColor(light scene.Light, effective vecmath.Color, eyev, normal vecmath.Vec3, mat scene.Material, hitPoint vecmath.Point3, lightPos vecmath.Point3) vecmath.Color {
	lightv := lightPos.Sub(hitPoint).Normalize()
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		return vecmath.ColorBlack
	}

	diffuse := effective.Scale(mat.Diffuse * lightDotNormal)
	if mat.Specular <= 0 {
		return diffuse
	}

	reflectv := vecmath.Reflect(lightv.Neg(), normal)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return diffuse
	}

	factor := math.Pow(reflectDotEye, mat.Shininess)
	specular := light.Color.Scale(mat.Specular * factor)
	return diffuse.Add(specular)
}

// inShadow casts a secondary march from the hit point nudged off the
// surface toward the light; a hit strictly closer than the light itself
// means the point is occluded, per spec §4.8 step b.
func (w *Whitted) inShadow(s *scene.Scene, root scene.ShapeID, hitPoint vecmath.Point3, normal vecmath.Vec3, lightPos vecmath.Point3) bool {
	toLight := lightPos.Sub(hitPoint)
	distance := toLight.Length()
	origin := hitPoint.Add(normal.Scale(w.Config.MinDist))
	ray := vecmath.NewRay(origin, toLight)

	hit, ok := march.March(w.Config, s, root, 1, ray)
	if !ok {
		return false
	}
	return hit.Distance < distance
}

// reflectedColor implements spec §4.8 step d.
func (w *Whitted) reflectedColor(s *scene.Scene, root scene.ShapeID, containers Containers, hit march.Hit, normal vecmath.Vec3, reflective float64, reflection int) vecmath.Color {
	if reflective <= 0 {
		return vecmath.ColorBlack
	}
	reflectRay := hit.Ray.ReflectAbout(normal).Step(w.Config.MinDist)
	return w.colorForRay(s, root, containers, reflectRay, reflection+1).Scale(reflective)
}

// refractedColor implements spec §4.8 steps e and f.
func (w *Whitted) refractedColor(s *scene.Scene, root scene.ShapeID, containers Containers, hit march.Hit, normal vecmath.Vec3, mat scene.Material, reflection int) (vecmath.Color, float64) {
	if mat.Transparent <= 0 {
		return vecmath.ColorBlack, 1.0
	}

	nextContainers, n1, n2 := containers.RefractiveIndices(hit.Result.ObjectID, mat.RefractiveIndex)

	nRatio := n1 / n2
	cosI := hit.Ray.Direction.Dot(normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1.0 {
		return vecmath.ColorBlack, 1.0
	}
	cosT := math.Sqrt(1 - sin2T)

	start := hit.Ray.Origin.SubVec(normal.Scale(w.Config.MinDist * 2.0))
	direction := normal.Scale(nRatio*cosI - cosT).Sub(hit.Ray.Direction.Scale(nRatio))
	refractRay := vecmath.NewUnitRay(start, direction)

	color := w.colorForRay(s, root, nextContainers, refractRay, reflection+1).Scale(mat.Transparent)

	reflectance := 0.0
	if mat.Reflective > 0 {
		r0 := ((n1 - n2) / (n1 + n2))
		r0 *= r0
		reflectance = r0 + (1-r0)*math.Pow(1-cosT, 5)
	}

	return color, reflectance
}
