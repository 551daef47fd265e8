package camera

import (
	"math"
	"testing"

	"github.com/mirstar13/march-render/internal/vecmath"
)

func TestPinholeCameraLooksDownNegativeZ(t *testing.T) {
	info := CanvasInfo{Width: 10, Height: 10}
	cam := NewPinholeCamera(info, vecmath.Identity(), math.Pi/2)

	ray := cam.GenerateRay(Sample{FilmX: 5, FilmY: 5})

	if math.Abs(ray.Origin.X) > 1e-6 || math.Abs(ray.Origin.Y) > 1e-6 || math.Abs(ray.Origin.Z) > 1e-6 {
		t.Errorf("expected origin at (0,0,0), got %v", ray.Origin)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("expected ray looking toward -Z, got direction %v", ray.Direction)
	}
}

func TestUniformSamplerWeightAndCount(t *testing.T) {
	s := NewUniformSampler(2, 2)
	if s.Count() != 4 {
		t.Errorf("expected 4 samples, got %d", s.Count())
	}
	if math.Abs(s.Weight()-0.25) > 1e-9 {
		t.Errorf("expected weight 0.25, got %v", s.Weight())
	}

	samples := s.Samples(0, 0)
	if len(samples) != 4 {
		t.Fatalf("expected 4 sample points, got %d", len(samples))
	}
	for _, sm := range samples {
		if sm.FilmX < 0 || sm.FilmX > 1 || sm.FilmY < 0 || sm.FilmY > 1 {
			t.Errorf("sample %v outside pixel (0,0)", sm)
		}
	}
}

func TestUniformSamplerNormalizesZero(t *testing.T) {
	s := NewUniformSampler(0, -3)
	if s.W != 1 || s.H != 1 {
		t.Errorf("expected dimensions normalized to 1, got %dx%d", s.W, s.H)
	}
}
