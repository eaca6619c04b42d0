package stack

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stacker/pkg/aabb"
)

func TestDropDown(t *testing.T) {
	tests := []struct {
		name    string
		boxes   []aabb.Box
		axis    aabb.Axis
		padding float64
		want    []mgl64.Vec3
	}{
		{
			name: "boxes above others land on them",
			boxes: []aabb.Box{
				box(1, 3, 1, 3, 1, 2),
				box(2, 3, 2, 4, 3, 4),
				box(0, 2, 0, 2, 5, 6),
			},
			axis: aabb.AxisZ,
			want: []mgl64.Vec3{{0, 0, 0}, {0, 0, -1}, {0, 0, -3}},
		},
		{
			name: "boxes outside each other's footprint settle independently",
			boxes: []aabb.Box{
				box(1, 2, 1, 2, 1, 2),
				box(2, 3, 2, 3, 3, 4),
				box(2, 3, 2, 3, 4, 5),
			},
			axis: aabb.AxisZ,
			want: []mgl64.Vec3{{0, 0, 0}, {0, 0, -2}, {0, 0, -2}},
		},
		{
			name: "horizontal misses fall past higher boxes",
			boxes: []aabb.Box{
				box(0, 1, 0, 1, 0, 1),
				box(0, 1, 1, 2, 4, 5),
				box(0, 1, 0, 1, 2, 3),
			},
			axis: aabb.AxisZ,
			want: []mgl64.Vec3{{0, 0, 0}, {0, 0, -4}, {0, 0, -1}},
		},
		{
			name: "a box can be lifted onto a taller neighbor",
			boxes: []aabb.Box{
				box(0, 1, 0, 1, 0, 4),
				box(0, 1, 2, 3, 2, 3),
				box(0, 1, 0, 1, 1, 5),
			},
			axis: aabb.AxisZ,
			want: []mgl64.Vec3{{0, 0, 0}, {0, 0, -2}, {0, 0, 3}},
		},
		{
			name: "padding is added between boxes but not on the floor",
			boxes: []aabb.Box{
				box(0, 1, 0, 1, 1, 2),
				box(0, 1, 0, 1, 5, 6),
			},
			axis:    aabb.AxisZ,
			padding: 1,
			want:    []mgl64.Vec3{{0, 0, 0}, {0, 0, -2}},
		},
		{
			name: "same batch rotated onto the x axis",
			boxes: []aabb.Box{
				box(1, 2, 1, 3, 1, 3),
				box(3, 4, 2, 4, 2, 3),
				box(5, 6, 0, 2, 0, 2),
			},
			axis: aabb.AxisX,
			want: []mgl64.Vec3{{0, 0, 0}, {-1, 0, 0}, {-3, 0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]aabb.Box, len(tt.boxes))
			copy(input, tt.boxes)

			got := DropDown(tt.boxes, tt.axis, tt.padding)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DropDown() mismatch (-want +got):\n%s", diff)
			}

			for i := range input {
				if tt.boxes[i] != input[i] {
					t.Errorf("DropDown() mutated input box %d: %v -> %v", i, input[i], tt.boxes[i])
				}
			}
		})
	}
}

func TestDropDownPlanSupports(t *testing.T) {
	tests := []struct {
		name  string
		boxes []aabb.Box
		want  []int
	}{
		{
			name: "chain of supports",
			boxes: []aabb.Box{
				box(1, 3, 1, 3, 1, 2),
				box(2, 3, 2, 4, 3, 4),
				box(0, 2, 0, 2, 5, 6),
			},
			want: []int{Floor, 0, 0},
		},
		{
			name: "box landing on a box that already settled",
			boxes: []aabb.Box{
				box(1, 2, 1, 2, 1, 2),
				box(2, 3, 2, 3, 3, 4),
				box(2, 3, 2, 3, 4, 5),
			},
			want: []int{Floor, Floor, 1},
		},
		{
			name: "lifted box rests on the tall one",
			boxes: []aabb.Box{
				box(0, 1, 0, 1, 0, 4),
				box(0, 1, 2, 3, 2, 3),
				box(0, 1, 0, 1, 1, 5),
			},
			want: []int{Floor, Floor, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DropDownPlan(tt.boxes, aabb.AxisZ, 0)
			if diff := cmp.Diff(tt.want, plan.Supports); diff != "" {
				t.Errorf("Supports mismatch (-want +got):\n%s", diff)
			}
			if len(plan.Deltas) != len(tt.boxes) {
				t.Errorf("len(Deltas) = %d, want %d", len(plan.Deltas), len(tt.boxes))
			}
		})
	}
}

func TestDropDownSmallBatches(t *testing.T) {
	if got := DropDown(nil, aabb.AxisZ, 0); len(got) != 0 {
		t.Errorf("DropDown(nil) = %v, want empty", got)
	}

	single := []aabb.Box{box(0, 1, 0, 1, 7, 9)}
	got := DropDown(single, aabb.AxisZ, 0)
	want := []mgl64.Vec3{{0, 0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DropDown(single) mismatch (-want +got):\n%s", diff)
	}
}
