package sdf

import (
	"math"
	"testing"

	"github.com/mirstar13/march-render/internal/vecmath"
)

func TestCubeSDF(t *testing.T) {
	cube := RectangularPrism{W: 1, H: 1, D: 1}

	cases := []struct {
		p    vecmath.Point3
		want float64
	}{
		{vecmath.Point3{X: 1, Y: 0, Z: 0}, 0.0},
		{vecmath.Point3{X: 0.5, Y: 0, Z: 0}, -0.5},
		{vecmath.Point3{X: 0, Y: 0, Z: 0}, -1.0},
	}

	for _, c := range cases {
		got := cube.Distance(c.p)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Distance(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestSphereSDFLipschitz(t *testing.T) {
	s := Sphere{}
	p := vecmath.Point3{X: 0.3, Y: 0.1, Z: 0.2}
	q := vecmath.Point3{X: 0.31, Y: 0.12, Z: 0.19}

	diff := math.Abs(s.Distance(p) - s.Distance(q))
	bound := p.Sub(q).Length()
	if diff > bound*1.01 {
		t.Errorf("Lipschitz violation: |sdf(p)-sdf(q)|=%v > |p-q|=%v", diff, bound)
	}
}

func TestXZPlaneSDF(t *testing.T) {
	p := XZPlane{}
	if p.Distance(vecmath.Point3{X: 1, Y: 3, Z: -2}) != 3 {
		t.Error("expected plane distance to equal y")
	}
}

func TestTriangleSDFAtVertex(t *testing.T) {
	tri := NewTriangle(
		vecmath.Point3{X: 0, Y: 0, Z: 0},
		vecmath.Point3{X: 1, Y: 0, Z: 0},
		vecmath.Point3{X: 0, Y: 1, Z: 0},
	)
	got := tri.Distance(vecmath.Point3{X: 0, Y: 0, Z: 0})
	if math.Abs(got) > 1e-9 {
		t.Errorf("expected ~0 distance at vertex, got %v", got)
	}
}

func TestTorusSDFAtTubeCenter(t *testing.T) {
	tor := Torus{Radius: 0.25, Hole: 1.0}
	// point on the ring's center circle at angle 0
	got := tor.Distance(vecmath.Point3{X: 1.0, Y: 0, Z: 0})
	if math.Abs(got-(-0.25)) > 1e-9 {
		t.Errorf("expected -radius at tube center, got %v", got)
	}
}
