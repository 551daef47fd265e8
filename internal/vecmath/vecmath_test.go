package vecmath

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestTransformRoundTrip(t *testing.T) {
	m := UniformScaling(10).Multiply(Translation(Vec3{1, 0, 0}))
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("unexpected invert error: %v", err)
	}

	p := Point3{1, 0, 1}
	got := inv.TransformPoint(m.TransformPoint(p))

	if absDiff(got.X, p.X) > 1e-5 || absDiff(got.Y, p.Y) > 1e-5 || absDiff(got.Z, p.Z) > 1e-5 {
		t.Errorf("round trip mismatch: expected %v, got %v", p, got)
	}
}

func TestTransformRoundTripRotation(t *testing.T) {
	m := AxisAngleRotation(Vec3{1, 0, 0}, math.Pi/2)
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("unexpected invert error: %v", err)
	}

	p := Point3{0, 1, 0}
	got := inv.TransformPoint(m.TransformPoint(p))
	if absDiff(got.X, p.X) > 1e-5 || absDiff(got.Y, p.Y) > 1e-5 || absDiff(got.Z, p.Z) > 1e-5 {
		t.Errorf("rotation round trip mismatch: expected %v, got %v", p, got)
	}
}

func TestSingularMatrixErrors(t *testing.T) {
	var zero Matrix4
	if _, err := zero.Invert(); err != ErrSingularMatrix {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestAABBSlabIntersect(t *testing.T) {
	box := AABB{Min: Point3{-1, -1, -1}, Max: Point3{1, 1, 1}}
	r := NewRay(Point3{0, 0, -5}, Vec3{0, 0, 1})
	if !box.Intersects(r) {
		t.Error("expected ray through box center to hit")
	}

	miss := NewRay(Point3{10, 10, -5}, Vec3{0, 0, 1})
	if box.Intersects(miss) {
		t.Error("expected parallel ray outside box to miss")
	}
}

func TestAABBIntersectsRayFromInside(t *testing.T) {
	box := AABB{Min: Point3{-1, -1, -1}, Max: Point3{1, 1, 1}}
	r := NewRay(Point3{0, 0, 0}, Vec3{0, 0, 1})
	if !box.Intersects(r) {
		t.Error("expected ray starting inside box to report a hit")
	}
}

func TestAABBUnionAndCentroid(t *testing.T) {
	a := AABB{Min: Point3{0, 0, 0}, Max: Point3{1, 1, 1}}
	b := AABB{Min: Point3{2, 2, 2}, Max: Point3{3, 3, 3}}
	u := a.Union(b)

	want := AABB{Min: Point3{0, 0, 0}, Max: Point3{3, 3, 3}}
	if u != want {
		t.Errorf("expected %v, got %v", want, u)
	}

	c := u.Centroid()
	if c != (Point3{1.5, 1.5, 1.5}) {
		t.Errorf("expected centroid (1.5,1.5,1.5), got %v", c)
	}
}

func TestCompareDistanceTreatsNaNAsLargest(t *testing.T) {
	if CompareDistance(math.NaN(), 1.0) != 1 {
		t.Error("expected NaN to compare greater than a finite value")
	}
	if CompareDistance(1.0, math.NaN()) != -1 {
		t.Error("expected finite value to compare less than NaN")
	}
}
