package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
	"github.com/matzehuels/stacker/pkg/stack"
)

// Plan operation names.
const (
	OpDrop  = "drop"
	OpStack = "stack"
)

// FloorName is the support name used in serialized plans for objects that
// rest on the implicit floor.
const FloorName = "floor"

// Plan is the serializable outcome of a stacking operation: one
// translation per selected object, in selection order. Plans are what the
// CLI writes and the API returns; applying one to a scene is a separate,
// explicit step so hosts can inspect results before moving anything.
type Plan struct {
	Op      string      `json:"op"`
	Axis    aabb.Axis   `json:"axis"`
	Padding float64     `json:"padding"`
	Objects []Placement `json:"objects"`
}

// Placement pairs an object with its computed translation. In drop-down
// plans, Support names the object it came to rest on, or [FloorName];
// column plans leave it empty.
type Placement struct {
	Name    string     `json:"name"`
	Delta   mgl64.Vec3 `json:"delta"`
	Support string     `json:"support,omitempty"`
}

// Deltas returns the plan's translations keyed by object name, the shape
// [Scene.Apply] consumes.
func (p *Plan) Deltas() map[string]mgl64.Vec3 {
	m := make(map[string]mgl64.Vec3, len(p.Objects))
	for _, pl := range p.Objects {
		m[pl.Name] = pl.Delta
	}
	return m
}

// DropPlan assembles the plan for a drop-down result. names are the
// selected object names in the order their boxes were passed to
// [stack.DropDownPlan].
func DropPlan(names []string, axis aabb.Axis, padding float64, p stack.Plan) Plan {
	plan := Plan{
		Op:      OpDrop,
		Axis:    axis,
		Padding: padding,
		Objects: make([]Placement, len(names)),
	}
	for i, name := range names {
		support := FloorName
		if idx := p.Supports[i]; idx != stack.Floor {
			support = names[idx]
		}
		plan.Objects[i] = Placement{Name: name, Delta: p.Deltas[i], Support: support}
	}
	return plan
}

// ColumnPlan assembles the plan for a column result.
func ColumnPlan(names []string, axis aabb.Axis, padding float64, deltas []mgl64.Vec3) Plan {
	plan := Plan{
		Op:      OpStack,
		Axis:    axis,
		Padding: padding,
		Objects: make([]Placement, len(names)),
	}
	for i, name := range names {
		plan.Objects[i] = Placement{Name: name, Delta: deltas[i]}
	}
	return plan
}

// WritePlan encodes a plan as indented JSON to w.
func WritePlan(w io.Writer, p *Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}
