package bvh

import (
	"sort"
	"testing"

	"github.com/mirstar13/march-render/internal/vecmath"
)

type boundedID struct {
	id     int
	bounds vecmath.AABB
}

func TestBVHThreeShapesRayQueries(t *testing.T) {
	items := []boundedID{
		{1, vecmath.AABB{Min: vecmath.Point3{X: 1, Y: 1, Z: 1}, Max: vecmath.Point3{X: 2, Y: 2, Z: 2}}},
		{2, vecmath.AABB{Min: vecmath.Point3{X: 3, Y: 3, Z: 1}, Max: vecmath.Point3{X: 4, Y: 4, Z: 2}}},
		{3, vecmath.AABB{Min: vecmath.Point3{X: 0.5, Y: 0.5, Z: 1}, Max: vecmath.Point3{X: 2, Y: 2, Z: 2}}},
	}

	tree := Build(items, func(b boundedID) vecmath.AABB { return b.bounds })

	hitRay := vecmath.NewRay(vecmath.Point3{X: 1.5, Y: 1.5, Z: -1}, vecmath.Vec3{Z: 1})
	hits := FoldIntersections(tree, hitRay, nil, func(acc []int, v boundedID) []int {
		return append(acc, v.id)
	})
	sort.Ints(hits)
	if len(hits) != 2 || hits[0] != 1 || hits[1] != 3 {
		t.Errorf("expected ids [1 3], got %v", hits)
	}

	missRay := vecmath.NewRay(vecmath.Point3{X: 0, Y: 0, Z: -1}, vecmath.Vec3{Z: 1})
	misses := FoldIntersections(tree, missRay, nil, func(acc []int, v boundedID) []int {
		return append(acc, v.id)
	})
	if len(misses) != 0 {
		t.Errorf("expected no hits, got %v", misses)
	}
}

func TestBVHMatchesLinearScan(t *testing.T) {
	items := []boundedID{
		{1, vecmath.AABB{Min: vecmath.Point3{X: -5, Y: -5, Z: -5}, Max: vecmath.Point3{X: -3, Y: -3, Z: -3}}},
		{2, vecmath.AABB{Min: vecmath.Point3{X: 0, Y: 0, Z: 0}, Max: vecmath.Point3{X: 1, Y: 1, Z: 1}}},
		{3, vecmath.AABB{Min: vecmath.Point3{X: 2, Y: 2, Z: 2}, Max: vecmath.Point3{X: 3, Y: 3, Z: 3}}},
		{4, vecmath.AABB{Min: vecmath.Point3{X: -1, Y: 5, Z: 5}, Max: vecmath.Point3{X: 1, Y: 6, Z: 6}}},
	}
	tree := Build(items, func(b boundedID) vecmath.AABB { return b.bounds })

	rays := []vecmath.Ray{
		vecmath.NewRay(vecmath.Point3{X: 0.5, Y: 0.5, Z: -10}, vecmath.Vec3{Z: 1}),
		vecmath.NewRay(vecmath.Point3{X: -4, Y: -4, Z: -10}, vecmath.Vec3{Z: 1}),
		vecmath.NewRay(vecmath.Point3{X: 100, Y: 100, Z: -10}, vecmath.Vec3{Z: 1}),
	}

	for _, r := range rays {
		var linear []int
		for _, it := range items {
			if it.bounds.Intersects(r) {
				linear = append(linear, it.id)
			}
		}
		sort.Ints(linear)

		got := FoldIntersections(tree, r, nil, func(acc []int, v boundedID) []int {
			return append(acc, v.id)
		})
		sort.Ints(got)

		if len(got) != len(linear) {
			t.Fatalf("ray %v: expected %v, got %v", r, linear, got)
		}
		for i := range linear {
			if linear[i] != got[i] {
				t.Errorf("ray %v: expected %v, got %v", r, linear, got)
			}
		}
	}
}

func TestBVHSingleton(t *testing.T) {
	items := []boundedID{
		{1, vecmath.AABB{Min: vecmath.Point3{X: 0, Y: 0, Z: 0}, Max: vecmath.Point3{X: 1, Y: 1, Z: 1}}},
	}
	tree := Build(items, func(b boundedID) vecmath.AABB { return b.bounds })
	if len(tree.Nodes) != 1 || !tree.Nodes[0].IsLeaf() {
		t.Errorf("expected a single leaf node, got %+v", tree.Nodes)
	}
}

func TestBVHEmptyBoundingVolume(t *testing.T) {
	tree := &BVH[boundedID]{}
	if _, ok := tree.BoundingVolume(); ok {
		t.Error("expected empty BVH to report no bounding volume")
	}
}
