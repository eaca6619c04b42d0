package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
)

const (
	elevationMargin   = 24.0
	elevationMinWorld = 1e-9
)

// ElevationOption configures elevation view rendering.
type ElevationOption func(*elevationRenderer)

type elevationRenderer struct {
	names      []string
	width      float64
	showBefore bool
}

// WithNames labels the settled boxes. Names are matched to boxes by
// index; labels that do not fit inside their box are skipped.
func WithNames(names []string) ElevationOption {
	return func(r *elevationRenderer) { r.names = names }
}

// WithWidth sets the output width in pixels. The height follows from
// the scene's aspect ratio. Default is 640.
func WithWidth(w float64) ElevationOption {
	return func(r *elevationRenderer) { r.width = w }
}

// WithoutBefore omits the muted pre-translation silhouettes.
func WithoutBefore() ElevationOption {
	return func(r *elevationRenderer) { r.showBefore = false }
}

// ElevationSVG draws a 2D side view of the boxes before and after
// applying deltas. Boxes are projected onto the plane spanned by the
// stacking axis (vertical in the drawing) and its first horizontal
// axis. Original positions appear as dashed grey outlines behind the
// settled, colored ones.
//
// deltas must match boxes by index. A nil deltas slice renders the
// scene in place, with no silhouettes.
func ElevationSVG(boxes []aabb.Box, axis aabb.Axis, deltas []mgl64.Vec3, opts ...ElevationOption) []byte {
	r := elevationRenderer{width: 640, showBefore: deltas != nil}
	for _, opt := range opts {
		opt(&r)
	}

	hAx := axis.Others()[0]
	after := make([]aabb.Box, len(boxes))
	for i, b := range boxes {
		if deltas != nil {
			after[i] = b.Translate(deltas[i])
		} else {
			after[i] = b
		}
	}

	minH, maxH, minV, maxV := worldBounds(boxes, after, axis, hAx, r.showBefore)
	worldW := math.Max(maxH-minH, elevationMinWorld)
	worldH := math.Max(maxV-minV, elevationMinWorld)

	scale := (r.width - 2*elevationMargin) / worldW
	height := worldH*scale + 2*elevationMargin

	px := func(x float64) float64 { return elevationMargin + (x-minH)*scale }
	py := func(y float64) float64 { return elevationMargin + (maxV-y)*scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)

	if r.showBefore {
		for _, b := range boxes {
			renderRect(&buf, px(b.Min[hAx]), py(b.Max[axis]),
				b.Extent(hAx)*scale, b.Extent(axis)*scale,
				`fill="#e8e8e8" fill-opacity="0.6" stroke="#bbbbbb" stroke-dasharray="4 3"`)
		}
	}

	renderFloorLine(&buf, after, axis, r.width, py)

	for i, b := range after {
		style := fmt.Sprintf(`fill="%s" fill-opacity="0.9" stroke="#333333"`, fillForName(labelFor(r.names, i)))
		renderRect(&buf, px(b.Min[hAx]), py(b.Max[axis]),
			b.Extent(hAx)*scale, b.Extent(axis)*scale, style)
	}

	for i, b := range after {
		name := labelFor(r.names, i)
		if i >= len(r.names) || shouldSkipLabel(name, b.Extent(hAx)*scale, b.Extent(axis)*scale) {
			continue
		}
		cx := px(b.Center()[hAx])
		cy := py(b.Center()[axis])
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="12" fill="#222222">%s</text>`+"\n",
			cx, cy, escapeText(name))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func worldBounds(before, after []aabb.Box, axis, hAx aabb.Axis, includeBefore bool) (minH, maxH, minV, maxV float64) {
	minH, minV = math.Inf(1), math.Inf(1)
	maxH, maxV = math.Inf(-1), math.Inf(-1)

	extend := func(b aabb.Box) {
		minH = math.Min(minH, b.Min[hAx])
		maxH = math.Max(maxH, b.Max[hAx])
		minV = math.Min(minV, b.Min[axis])
		maxV = math.Max(maxV, b.Max[axis])
	}
	for _, b := range after {
		extend(b)
	}
	if includeBefore {
		for _, b := range before {
			extend(b)
		}
	}
	if math.IsInf(minH, 1) {
		return 0, 1, 0, 1
	}
	return minH, maxH, minV, maxV
}

func renderRect(buf *bytes.Buffer, x, y, w, h float64, style string) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", x, y, w, h, style)
}

// renderFloorLine draws a dashed line at the lowest settled bottom,
// where the drop-down floor sits.
func renderFloorLine(buf *bytes.Buffer, after []aabb.Box, axis aabb.Axis, width float64, py func(float64) float64) {
	if len(after) == 0 {
		return
	}
	floor := after[0].Min[axis]
	for _, b := range after[1:] {
		floor = math.Min(floor, b.Min[axis])
	}
	y := py(floor)
	fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-dasharray="6 4"/>`+"\n",
		y, width, y)
}

func labelFor(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("box-%d", i)
}

func shouldSkipLabel(name string, w, h float64) bool {
	return h < 14 || w < float64(len(name))*7
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// fillForName derives a deterministic pastel fill color from an object
// name, so the same object keeps its color across renders.
func fillForName(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	return hslToHex(hue, 0.55, 0.72)
}

func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}
