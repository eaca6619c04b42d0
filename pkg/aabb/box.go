package aabb

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding box in 3D space, stored as minimum and
// maximum corners. A well-formed box has Min[i] <= Max[i] on every axis.
//
// Boxes are immutable values. Methods return new boxes and never modify
// the receiver; callers that need evolving positions keep their own slice
// of boxes and replace elements as they go.
type Box struct {
	Min mgl64.Vec3 `json:"min"`
	Max mgl64.Vec3 `json:"max"`
}

// Translate returns a copy of b with both corners shifted by delta.
// Translating by d1 and then by d2 is the same as translating by d1+d2.
func (b Box) Translate(delta mgl64.Vec3) Box {
	return Box{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	u := b
	for ax := AxisX; ax <= AxisZ; ax++ {
		if o.Min[ax] < u.Min[ax] {
			u.Min[ax] = o.Min[ax]
		}
		if o.Max[ax] > u.Max[ax] {
			u.Max[ax] = o.Max[ax]
		}
	}
	return u
}

// Extent returns the size of the box along axis.
func (b Box) Extent(axis Axis) float64 { return b.Max[axis] - b.Min[axis] }

// Size returns the box extents along all three axes.
func (b Box) Size() mgl64.Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Volume returns the product of the three extents.
func (b Box) Volume() float64 {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

// CrossSection returns the area of the box's footprint orthogonal to axis,
// computed as volume divided by the extent on axis. For a box with zero
// extent on axis the result is not finite.
func (b Box) CrossSection(axis Axis) float64 {
	return b.Volume() / b.Extent(axis)
}

// WellFormed reports whether Min[i] <= Max[i] holds on every axis.
func (b Box) WellFormed() bool {
	for ax := AxisX; ax <= AxisZ; ax++ {
		if b.Min[ax] > b.Max[ax] {
			return false
		}
	}
	return true
}
