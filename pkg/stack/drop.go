package stack

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
)

// Floor is the support index reported by [DropDownPlan] for boxes that
// come to rest on the implicit floor rather than on another box.
const Floor = -1

// Plan is the full outcome of a drop-down pass.
type Plan struct {
	// Deltas holds one translation per input box, in input order. The
	// box that defines the floor anchors the batch and keeps a zero
	// delta.
	Deltas []mgl64.Vec3

	// Supports records, per input box, the input index of the box it
	// came to rest on, or [Floor].
	Supports []int
}

// DropDown settles every box onto whatever lies directly beneath it along
// axis, as if the boxes fell straight down and landed on each other. The
// horizontal placement of each box is taken as given and never altered;
// only the stacking-axis component of the returned translations is
// nonzero.
//
// Boxes are processed from the lowest up. The lowest box defines an
// implicit floor at its lower bound and does not move. Each later box
// lands on the highest surface among the floor and the already-settled
// boxes whose shadow it falls in ([IsBelow] against current, possibly
// already-moved positions, so a box lifted earlier in the pass carries
// the ones above it). Padding is inserted between a box and its
// supporting box, never between a box and the floor.
//
// The returned slice is indexed by input order.
func DropDown(boxes []aabb.Box, axis aabb.Axis, padding float64) []mgl64.Vec3 {
	return DropDownPlan(boxes, axis, padding).Deltas
}

// DropDownPlan runs the same pass as [DropDown] and additionally reports
// which box each input ended up resting on, which is what the support
// graph renderer consumes.
func DropDownPlan(boxes []aabb.Box, axis aabb.Axis, padding float64) Plan {
	deltas := make([]mgl64.Vec3, len(boxes))
	supports := make([]int, len(boxes))
	for i := range supports {
		supports[i] = Floor
	}
	if len(boxes) == 0 {
		return Plan{Deltas: deltas, Supports: supports}
	}

	order := ByHeight(boxes, axis)

	// Working copy: each settled position must be visible to every later
	// shadow test in the same pass.
	work := slices.Clone(boxes)

	// The floor is a zero-height surface at the lowest box's lower bound.
	floor := work[order[0]]
	floor.Max[axis] = floor.Min[axis]

	for step := 1; step < len(order); step++ {
		i := order[step]
		cur := work[i]

		// Pick the highest surface under cur. The floor is always a
		// candidate and wins ties.
		support := floor
		supportIdx := Floor
		for _, j := range order[:step] {
			if cand := work[j]; IsBelow(cand, cur, axis) && cand.Max[axis] > support.Max[axis] {
				support = cand
				supportIdx = j
			}
		}

		delta := Above(support, cur, axis, 0, false)
		if supportIdx != Floor {
			delta[axis] += padding
		}
		deltas[i] = delta
		supports[i] = supportIdx
		work[i] = cur.Translate(delta)
	}

	return Plan{Deltas: deltas, Supports: supports}
}
