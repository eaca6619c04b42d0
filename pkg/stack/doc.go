// Package stack computes translation offsets that arrange axis-aligned
// bounding boxes on top of each other.
//
// # Overview
//
// All functions are pure: they take slices of [aabb.Box] values plus a
// stacking axis and return per-box translation vectors, leaving the
// inputs untouched. Results are indexed by input order, so hosts can
// apply delta i to object i without any bookkeeping.
//
// The package is layered from leaves up:
//
//   - Pairwise geometry: [IsBelow] decides whether one box sits in
//     another's shadow along the stacking axis, [Above] computes the
//     translation placing one box on top of another.
//   - Ordering: [ByHeight] and [ByArea] return index permutations,
//     [Base] finds the lowest box.
//   - Batch algorithms: [DropDown] settles every box onto whatever lies
//     beneath it, [Column] arranges boxes into a single column.
//
// # Error Handling
//
// The kernel performs no validation. Inputs are assumed well-formed
// (Min <= Max per axis, axis in range); malformed input yields undefined
// numeric results rather than errors. Hosts validate scene data and user
// options before calling in, including the minimum batch size of two
// boxes.
//
// # Concurrency
//
// Everything here is synchronous and allocation-light. Functions never
// retain references to their arguments, so distinct calls may run
// concurrently on caller-owned data without locking.
package stack
