package stack

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
)

// ColumnOptions configures [Column].
type ColumnOptions struct {
	// Padding is the extra gap inserted between consecutive boxes along
	// the stacking axis.
	Padding float64

	// Center aligns each box's horizontal center with the box below it.
	// When false, horizontal positions are left alone.
	Center bool

	// Sort reorders the column by cross-section area, widest box at the
	// bottom. When false the input order is kept.
	Sort bool

	// Anchor is the input index of the box that stays in place when Sort
	// is false; the remaining boxes pile on top of it. Ignored when Sort
	// is true, where the column is anchored at the lowest box's position
	// instead. Must be a valid index.
	Anchor int
}

// Column computes translations that arrange boxes into a single column
// along axis, each box resting on the one placed before it. The returned
// slice is indexed by input order.
func Column(boxes []aabb.Box, axis aabb.Axis, opts ColumnOptions) []mgl64.Vec3 {
	deltas := make([]mgl64.Vec3, len(boxes))
	if len(boxes) == 0 {
		return deltas
	}

	if opts.Sort {
		// Widest cross-section at the bottom, anchored at the lowest
		// box's current position. Every box is restacked, including the
		// anchor itself.
		order := ByArea(boxes, axis)
		slices.Reverse(order)

		sorted := make([]aabb.Box, len(order))
		for n, i := range order {
			sorted[n] = boxes[i]
		}
		prev := sorted[Base(sorted, axis)]
		for n, i := range order {
			delta := Above(prev, sorted[n], axis, opts.Padding, opts.Center)
			prev = sorted[n].Translate(delta)
			deltas[i] = delta
		}
		return deltas
	}

	// Unsorted: the anchor keeps its position and the rest pile on top
	// in input order.
	prev := boxes[opts.Anchor]
	for i, b := range boxes {
		if i == opts.Anchor {
			continue
		}
		delta := Above(prev, b, axis, opts.Padding, opts.Center)
		prev = b.Translate(delta)
		deltas[i] = delta
	}
	return deltas
}
