// Package bvh implements a flat-array Bounding Volume Hierarchy over any
// value type, built with a surface-area-heuristic-free midpoint partition.
// Grounded on original_source/src/bvh.rs's BVH<T>, adapted to Go generics
// with bounds-checked slice indexing in place of the Rust source's unsafe
// unchecked accessors.
package bvh

import "github.com/mirstar13/march-render/internal/vecmath"

// Node is either an internal node (Len == 0) whose left child is implicit at
// index+1 and whose right child starts at index+Offset, or a leaf (Len > 0)
// whose values occupy Values[Start : Start+Len].
type Node struct {
	Bounds vecmath.AABB
	Offset int // right-child index offset, internal nodes only
	Start  int // first index into Values, leaves only
	Len    int // leaf value count; 0 for internal nodes
}

func (n Node) IsLeaf() bool { return n.Len > 0 }

// BVH is a flat node array plus the contiguous leaf-value array those nodes
// index into.
type BVH[T any] struct {
	Nodes  []Node
	Values []T
}

// boundedValue pairs a value with its precomputed bounding box during
// construction.
type boundedValue[T any] struct {
	bounds vecmath.AABB
	value  T
}

// BoundsFunc computes the bounding box for a value of type T.
type BoundsFunc[T any] func(T) vecmath.AABB

// BoundingVolume returns the root node's bounds, or false if the BVH has no
// nodes (an empty aggregate).
func (b *BVH[T]) BoundingVolume() (vecmath.AABB, bool) {
	if len(b.Nodes) == 0 {
		return vecmath.AABB{}, false
	}
	return b.Nodes[0].Bounds, true
}

// Build constructs a BVH from values using their bounds, per spec §4.2.
func Build[T any](values []T, boundsOf BoundsFunc[T]) *BVH[T] {
	items := make([]boundedValue[T], len(values))
	for i, v := range values {
		items[i] = boundedValue[T]{bounds: boundsOf(v), value: v}
	}

	b := &BVH[T]{
		Nodes:  make([]Node, 0, len(items)),
		Values: make([]T, 0, len(items)),
	}
	if len(items) > 0 {
		b.buildRecursive(items)
	}
	return b
}

func (b *BVH[T]) buildRecursive(items []boundedValue[T]) {
	bounds := vecmath.EmptyAABB()
	centroidBounds := vecmath.EmptyAABB()
	for _, it := range items {
		bounds = bounds.Union(it.bounds)
		centroidBounds = centroidBounds.UnionPoint(it.bounds.Centroid())
	}

	// Centroid bound collapsed to a point (including the singleton case):
	// promote to a leaf rather than recurse forever on duplicated centroids.
	if centroidBounds.Extent().MaxComponent() <= 0 {
		b.emitLeaf(bounds, items)
		return
	}

	axis, mid := centroidBounds.MaxAxis()

	middle := partitionByAxis(items, axis, mid)
	if middle == 0 || middle == len(items) {
		// Degenerate partition (all centroids landed on one side of the
		// midpoint): promote to a leaf instead of looping.
		b.emitLeaf(bounds, items)
		return
	}

	cur := len(b.Nodes)
	b.Nodes = append(b.Nodes, Node{Bounds: bounds})

	b.buildRecursive(items[:middle])
	b.Nodes[cur].Offset = len(b.Nodes) - cur
	b.buildRecursive(items[middle:])
}

func (b *BVH[T]) emitLeaf(bounds vecmath.AABB, items []boundedValue[T]) {
	start := len(b.Values)
	for _, it := range items {
		b.Values = append(b.Values, it.value)
	}
	b.Nodes = append(b.Nodes, Node{Bounds: bounds, Start: start, Len: len(items)})
}

// partitionByAxis reorders items in place so that every item whose
// centroid's axis component is less than mid comes before every item whose
// is not, returning the split index.
func partitionByAxis[T any](items []boundedValue[T], axis vecmath.Axis, mid float64) int {
	i := 0
	for j := 0; j < len(items); j++ {
		if axis.Component(items[j].bounds.Centroid()) < mid {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	return i
}

// FoldIntersections walks every node whose bounds the ray intersects,
// applying f to each leaf's values in turn and threading an accumulator
// through, per spec §4.2. There is no early termination: callers aggregate
// (typically min/max of child distances) as dictated by the CSG operator
// above.
func FoldIntersections[T any, A any](b *BVH[T], ray vecmath.Ray, acc A, f func(A, T) A) A {
	if len(b.Nodes) == 0 {
		return acc
	}
	return foldRec(b, 0, ray, acc, f)
}

func foldRec[T any, A any](b *BVH[T], idx int, ray vecmath.Ray, acc A, f func(A, T) A) A {
	node := b.Nodes[idx]
	if !node.Bounds.Intersects(ray) {
		return acc
	}
	if node.IsLeaf() {
		for _, v := range b.Values[node.Start : node.Start+node.Len] {
			acc = f(acc, v)
		}
		return acc
	}
	acc = foldRec(b, idx+1, ray, acc, f)
	acc = foldRec(b, idx+node.Offset, ray, acc, f)
	return acc
}
