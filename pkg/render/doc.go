// Package render turns stacking plans into visual outputs.
//
// # Overview
//
// Two views are provided:
//
//   - Support graphs: a directed graph of which object rests on which
//     after a drop-down pass, expressed as Graphviz DOT and rendered to
//     SVG or PNG via [SupportSVG] and [SupportPNG].
//   - Elevation views: a 2D orthographic projection of the scene onto
//     the plane spanned by the stacking axis and one horizontal axis,
//     drawn as a hand-assembled SVG by [ElevationSVG]. Original
//     positions appear as muted outlines behind the settled ones.
//
// # Support Graphs
//
// [SupportDOT] walks a plan and emits one node per placement plus a
// synthetic floor node. Edges point from each object to the object it
// rests on:
//
//	dot := render.SupportDOT(plan, render.Options{})
//	svg, err := render.SupportSVG(ctx, dot)
//
// Rendering uses the embedded Graphviz engine, so no external binaries
// are required.
//
// # Elevation Views
//
// [ElevationSVG] needs the boxes and the per-box translation deltas, in
// matching order:
//
//	svg := render.ElevationSVG(boxes, plan.Axis, deltas,
//		render.WithNames(names))
package render
