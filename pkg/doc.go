// Package pkg provides the core libraries for Stacker box placement.
//
// # Overview
//
// Stacker settles axis-aligned boxes into stable stacks: boxes fall along
// a gravity axis until they rest on the floor or on the first box whose
// footprint they overlap, or they are piled into a single column. The pkg
// directory is organized into four main areas:
//
//  1. [aabb] - Geometry primitives (boxes, axes, cross-sections)
//  2. [stack] - Placement solvers (pairwise, drop-down, column, orderings)
//  3. [scene] - Named object scenes, JSON I/O, and placement plans
//  4. [render] - Support graphs (DOT/SVG/PNG) and elevation drawings
//
// # Architecture
//
// The typical data flow through Stacker:
//
//	Scene JSON
//	     ↓
//	[scene] package (decode + validate)
//	     ↓
//	[stack] package (solve placements)
//	     ↓
//	[scene] package (plan encoding, apply)
//	     ↓
//	JSON plan / DOT / SVG output
//
// # Quick Start
//
// Settle every box in a scene and print where each one landed:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/stacker/pkg/aabb"
//	    "github.com/matzehuels/stacker/pkg/scene"
//	    "github.com/matzehuels/stacker/pkg/stack"
//	)
//
//	// 1. Load a scene
//	sc, _ := scene.ReadFile("warehouse.json")
//
//	// 2. Drop every box along the Z axis
//	result := stack.DropDownPlan(sc.Bounds(), aabb.AxisZ, 0)
//
//	// 3. Shape the result for export
//	plan := scene.DropPlan(sc.Names(), aabb.AxisZ, 0, result)
//	for _, pl := range plan.Objects {
//	    fmt.Printf("%s rests on %s\n", pl.Name, pl.Support)
//	}
//
// # Main Packages
//
// ## Geometry
//
// [aabb] - Axis-aligned bounding boxes over [mgl64.Vec3] corners with the
// measurements the solvers need: extents, cross-section areas, unions,
// translation. Axes parse from "x"/"y"/"z" and know their two horizontal
// complements.
//
// ## Solvers
//
// [stack] - Placement algorithms. [stack.IsBelow] is the pairwise shadow
// test, [stack.Above] places one box on another, [stack.DropDown] settles
// a batch in input order, and [stack.Column] piles boxes into a single
// tower. [stack.ByHeight], [stack.ByArea], and [stack.Base] provide the
// orderings the solvers and callers share.
//
// ## Scenes and Plans
//
// [scene] - Named objects with bounds, JSON scene files, and the plan
// types that record solver output as per-object translations plus support
// assignments. Plans round-trip through JSON and apply back onto a scene.
//
// ## Visualization
//
// [render] - Two views of a settled scene: [render.SupportDOT] emits the
// who-rests-on-whom graph in Graphviz DOT (with SVG and PNG rasterization
// via [render.SupportSVG] and [render.SupportPNG]), and
// [render.ElevationSVG] draws a side-view elevation with before and after
// outlines.
//
// ## Shared Infrastructure
//
// [errors] - Coded errors shared by the CLI and the HTTP API. Codes map
// to exit behavior and HTTP status; user messages stay separate from
// wrapped internals.
//
// [buildinfo] - Version, commit, and build date injected at link time.
//
// # Common Workflows
//
// Stack boxes into a sorted column, widest at the bottom:
//
//	deltas := stack.Column(sc.Bounds(), aabb.AxisZ, stack.ColumnOptions{
//	    Center: true,
//	    Sort:   true,
//	})
//
// Apply a plan and write the settled scene back out:
//
//	settled := sc.Apply(plan.Deltas())
//	_ = scene.WriteFile("settled.json", &settled)
//
// Render the support graph:
//
//	dot := render.SupportDOT(plan, render.Options{Detailed: true})
//	svg, _ := render.SupportSVG(ctx, dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/stack/...  # Specific package
//	go test -run Example     # Examples only
//
// [aabb]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/aabb
// [stack]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack
// [scene]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/buildinfo
// [mgl64.Vec3]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64#Vec3
// [stack.IsBelow]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#IsBelow
// [stack.Above]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#Above
// [stack.DropDown]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#DropDown
// [stack.Column]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#Column
// [stack.ByHeight]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#ByHeight
// [stack.ByArea]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#ByArea
// [stack.Base]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/stack#Base
// [render.SupportDOT]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/render#SupportDOT
// [render.SupportSVG]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/render#SupportSVG
// [render.SupportPNG]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/render#SupportPNG
// [render.ElevationSVG]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/render#ElevationSVG
package pkg
