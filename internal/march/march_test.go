package march

import (
	"math"
	"testing"

	"github.com/mirstar13/march-render/internal/scene"
	"github.com/mirstar13/march-render/internal/sdf"
	"github.com/mirstar13/march-render/internal/vecmath"
)

func TestMarchHitsSphereFromOutside(t *testing.T) {
	s := scene.New()
	sphere := s.AddPrim(sdf.Sphere{})
	s.AddRoot(sphere)

	ray := vecmath.NewRay(vecmath.Point3{X: 0, Y: 0, Z: -5}, vecmath.Vec3{Z: 1})
	hit, ok := March(DefaultConfig(), s, sphere, 1, ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.Distance-4.0) > DefaultConfig().MinDist*2 {
		t.Errorf("expected hit distance ~4, got %v", hit.Distance)
	}
}

func TestMarchInsideSphereNegativeSignHitsFarWall(t *testing.T) {
	s := scene.New()
	sphere := s.AddPrim(sdf.Sphere{})
	s.AddRoot(sphere)

	ray := vecmath.NewRay(vecmath.Point3{X: 0, Y: 0, Z: 0}, vecmath.Vec3{Z: 1})
	hit, ok := March(DefaultConfig(), s, sphere, -1, ray)
	if !ok {
		t.Fatal("expected a hit on the far wall")
	}
	if math.Abs(hit.Distance-1.0) > DefaultConfig().MinDist*2 {
		t.Errorf("expected hit distance ~1 (far wall), got %v", hit.Distance)
	}
}

func TestMarchBudgetExhaustedReportsMiss(t *testing.T) {
	s := scene.New()
	sphere := s.AddPrim(sdf.Sphere{})
	translated, err := s.AddTranslation(vecmath.Vec3{Z: 1e6}, sphere)
	if err != nil {
		t.Fatal(err)
	}
	s.AddRoot(translated)

	ray := vecmath.NewRay(vecmath.Point3{}, vecmath.Vec3{Z: 1})
	cfg := DefaultConfig()
	_, ok := March(cfg, s, translated, 1, ray)
	if ok {
		t.Error("expected a miss for a far-away sphere within a bounded max_dist")
	}
}

func TestMarchNormalOnSphere(t *testing.T) {
	s := scene.New()
	sphere := s.AddPrim(sdf.Sphere{})
	s.AddRoot(sphere)

	ray := vecmath.NewRay(vecmath.Point3{X: 0, Y: 0, Z: -5}, vecmath.Vec3{Z: 1})
	hit, ok := March(DefaultConfig(), s, sphere, 1, ray)
	if !ok {
		t.Fatal("expected a hit")
	}

	n := Normal(s, sphere, hit)
	if math.Abs(n.Z-(-1.0)) > 1e-2 {
		t.Errorf("expected normal ~(0,0,-1) at near pole, got %v", n)
	}
}
