package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stacker/pkg/scene"
)

// Options configures support graph rendering.
type Options struct {
	// Detailed includes the translation delta in each node label.
	// When false, only the object name is shown.
	Detailed bool
}

// SupportDOT converts a plan's support relations to Graphviz DOT format.
// Each placement becomes one node; an edge points from the placement to
// the object it rests on. Placements without a recorded support (stack
// plans record none) become free-standing nodes.
//
// The synthetic floor node is rendered with a dashed outline and grey
// fill to distinguish it from scene objects. rankdir=BT keeps the floor
// at the bottom, so the drawing reads like the physical stack.
//
// The resulting DOT string can be rendered using [SupportSVG] or
// [SupportPNG].
func SupportDOT(p scene.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph supports {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if hasFloor(p) {
		fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey, fontcolor=black];\n",
			scene.FloorName, scene.FloorName)
	}
	for _, pl := range p.Objects {
		label := fmtLabel(pl, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", pl.Name, label)
	}

	buf.WriteString("\n")
	for _, pl := range p.Objects {
		if pl.Support == "" {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", pl.Name, pl.Support)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func hasFloor(p scene.Plan) bool {
	for _, pl := range p.Objects {
		if pl.Support == scene.FloorName {
			return true
		}
	}
	return false
}

func fmtLabel(pl scene.Placement, detailed bool) string {
	if !detailed {
		return pl.Name
	}
	d := pl.Delta
	return fmt.Sprintf("%s\ndelta: (%g, %g, %g)", pl.Name, d[0], d[1], d[2])
}

// SupportSVG renders a DOT graph to SVG using the embedded Graphviz
// engine. The context cancels in-flight rendering.
// Returns the SVG bytes ready for display or saving.
func SupportSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// SupportPNG renders a DOT graph to PNG using the embedded Graphviz
// engine. The context cancels in-flight rendering.
func SupportPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz <svg> tag so the viewBox starts
// at the origin and width/height match it. Viewers disagree about
// offset viewBoxes, zero-origin ones scale cleanly everywhere.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
