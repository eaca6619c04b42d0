package stack

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
)

// IsBelow reports whether box a lies in the shadow of box b along axis.
// Two conditions must hold:
//
//  1. a and b overlap on both horizontal axes. The overlap test is
//     strict, so boxes that merely touch edge to edge do not shadow
//     each other.
//  2. b's upper bound on axis reaches a's lower bound or beyond.
//
// The test is deliberately one-sided on the stacking axis: it stays true
// however far b's top extends above a. [DropDown] relies on this to find
// every surface a box currently rests against or pierces, not just the
// ones strictly beneath it.
func IsBelow(a, b aabb.Box, axis aabb.Axis) bool {
	for _, ax := range axis.Others() {
		if b.Min[ax] >= a.Max[ax] || b.Max[ax] <= a.Min[ax] {
			return false
		}
	}
	return b.Max[axis] >= a.Min[axis]
}

// Above returns the translation that places incoming on top of base:
// after adding the result to incoming's position, its lower face on axis
// touches base's upper face, plus padding. With center set the incoming
// box is also moved so its center lines up with base's center on the two
// horizontal axes; otherwise those components are zero and the horizontal
// position is left alone.
func Above(base, incoming aabb.Box, axis aabb.Axis, padding float64, center bool) mgl64.Vec3 {
	var delta mgl64.Vec3
	if center {
		bc, ic := base.Center(), incoming.Center()
		for _, ax := range axis.Others() {
			delta[ax] = bc[ax] - ic[ax]
		}
	}
	delta[axis] = base.Max[axis] + padding - incoming.Min[axis]
	return delta
}
