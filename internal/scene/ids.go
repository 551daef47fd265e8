// Package scene holds the read-only scene graph: append-only arenas of
// shapes, patterns, materials and lights, plus the recursive SDF evaluator
// that walks the CSG tree. Grounded on original_source/src/shapes.rs,
// pattern.rs and material.rs, restructured from Rust's unsafe arena
// indexing into bounds-checked Go slices.
package scene

// ShapeID, PatternID, MaterialID and NodeID are opaque 32-bit indices into
// their respective arenas. No id is ever reused or invalidated; NodeID is an
// alias for ShapeID used wherever a shape is referenced for its identity
// rather than its geometry (e.g. the Containers stack).
type ShapeID uint32
type PatternID uint32
type MaterialID uint32
type NodeID = ShapeID

const invalidID = ^uint32(0)
