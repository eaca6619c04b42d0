package stack

import (
	"cmp"
	"slices"

	"github.com/matzehuels/stacker/pkg/aabb"
)

// ByHeight returns the permutation of indices that sorts boxes ascending
// by their lower bound on axis. The sort is stable: boxes with equal
// lower bounds keep their input order.
func ByHeight(boxes []aabb.Box, axis aabb.Axis) []int {
	idx := indices(len(boxes))
	slices.SortStableFunc(idx, func(i, j int) int {
		return cmp.Compare(boxes[i].Min[axis], boxes[j].Min[axis])
	})
	return idx
}

// ByArea returns the permutation of indices that sorts boxes ascending by
// cross-section area orthogonal to axis, stable for equal areas. Column
// hosts walk the result backwards to put the widest box at the bottom.
func ByArea(boxes []aabb.Box, axis aabb.Axis) []int {
	idx := indices(len(boxes))
	slices.SortStableFunc(idx, func(i, j int) int {
		return cmp.Compare(boxes[i].CrossSection(axis), boxes[j].CrossSection(axis))
	})
	return idx
}

// Base returns the index of the box whose lower bound on axis is minimal,
// the natural anchor for a column. Ties resolve to the first occurrence.
// For an empty slice Base returns 0.
func Base(boxes []aabb.Box, axis aabb.Axis) int {
	base := 0
	for i := 1; i < len(boxes); i++ {
		if boxes[i].Min[axis] < boxes[base].Min[axis] {
			base = i
		}
	}
	return base
}

// indices returns [0, 1, ..., n-1].
func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
