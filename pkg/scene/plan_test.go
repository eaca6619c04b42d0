package scene

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/stack"
)

func TestDropPlan(t *testing.T) {
	names := []string{"pallet", "crate", "lamp"}
	result := stack.Plan{
		Deltas:   []mgl64.Vec3{{0, 0, 0}, {0, 0, -1}, {0, 0, -3}},
		Supports: []int{stack.Floor, 0, 0},
	}

	plan := DropPlan(names, aabb.AxisZ, 0.5, result)

	if plan.Op != OpDrop || plan.Axis != aabb.AxisZ || plan.Padding != 0.5 {
		t.Errorf("plan header = %+v", plan)
	}
	if len(plan.Objects) != 3 {
		t.Fatalf("len(Objects) = %d, want 3", len(plan.Objects))
	}
	if plan.Objects[0].Support != FloorName {
		t.Errorf("pallet support = %q, want %q", plan.Objects[0].Support, FloorName)
	}
	if plan.Objects[1].Support != "pallet" || plan.Objects[2].Support != "pallet" {
		t.Errorf("supports = %q, %q, want pallet", plan.Objects[1].Support, plan.Objects[2].Support)
	}
	if plan.Objects[2].Delta != (mgl64.Vec3{0, 0, -3}) {
		t.Errorf("lamp delta = %v, want [0 0 -3]", plan.Objects[2].Delta)
	}
}

func TestColumnPlan(t *testing.T) {
	plan := ColumnPlan([]string{"a", "b"}, aabb.AxisY, 0, []mgl64.Vec3{{0, 0, 0}, {0, 2, 0}})

	if plan.Op != OpStack || plan.Axis != aabb.AxisY {
		t.Errorf("plan header = %+v", plan)
	}
	if plan.Objects[1].Delta != (mgl64.Vec3{0, 2, 0}) {
		t.Errorf("delta = %v, want [0 2 0]", plan.Objects[1].Delta)
	}
	if plan.Objects[0].Support != "" {
		t.Errorf("column plans carry no supports, got %q", plan.Objects[0].Support)
	}
}

func TestPlanDeltas(t *testing.T) {
	plan := ColumnPlan([]string{"a", "b"}, aabb.AxisZ, 0, []mgl64.Vec3{{1, 0, 0}, {0, 0, 2}})

	deltas := plan.Deltas()
	if deltas["a"] != (mgl64.Vec3{1, 0, 0}) || deltas["b"] != (mgl64.Vec3{0, 0, 2}) {
		t.Errorf("Deltas() = %v", deltas)
	}
}

func TestWritePlanShape(t *testing.T) {
	plan := DropPlan([]string{"a"}, aabb.AxisZ, 0, stack.Plan{
		Deltas:   []mgl64.Vec3{{0, 0, 0}},
		Supports: []int{stack.Floor},
	})

	var buf bytes.Buffer
	if err := WritePlan(&buf, &plan); err != nil {
		t.Fatalf("WritePlan() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["op"] != "drop" || decoded["axis"] != "z" {
		t.Errorf("serialized plan = %v", decoded)
	}
}
