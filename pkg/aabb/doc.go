// Package aabb provides the axis-aligned bounding box value type used
// throughout Stacker.
//
// # Overview
//
// A [Box] is a pair of corner vectors (minimum and maximum) describing an
// object's world-space extent. Boxes are plain immutable values: geometry
// such as translation, union, centers and cross-sections is exposed as
// methods returning new values, and the stacking algorithms in
// [github.com/matzehuels/stacker/pkg/stack] operate on slices of them.
//
// An [Axis] names one of the three spatial dimensions and doubles as the
// component index into corners and translation vectors (AxisX == 0,
// AxisY == 1, AxisZ == 2). Axes parse from and serialize to their
// lowercase names, so "axis": "z" works directly in JSON and TOML
// documents.
//
// Vectors are [mgl64.Vec3] values from go-gl/mathgl, which marshal as
// 3-element JSON arrays.
//
// [mgl64.Vec3]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64#Vec3
package aabb
