package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/stacker/pkg/aabb"
)

func elevationFixture() ([]aabb.Box, []mgl64.Vec3) {
	boxes := []aabb.Box{
		{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 1}},
		{Min: mgl64.Vec3{0, 0, 5}, Max: mgl64.Vec3{1, 1, 6}},
	}
	deltas := []mgl64.Vec3{
		{0, 0, 0},
		{0, 0, -4},
	}
	return boxes, deltas
}

func TestElevationSVG(t *testing.T) {
	boxes, deltas := elevationFixture()

	svg := string(ElevationSVG(boxes, aabb.AxisZ, deltas))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("ElevationSVG() missing svg header, got:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("ElevationSVG() missing closing tag")
	}
	if got, want := strings.Count(svg, "<rect"), 4; got != want {
		t.Errorf("ElevationSVG() rect count = %d, want %d (before + after)", got, want)
	}
	if !strings.Contains(svg, "<line") {
		t.Errorf("ElevationSVG() missing floor line, got:\n%s", svg)
	}
}

func TestElevationSVGNames(t *testing.T) {
	boxes, deltas := elevationFixture()

	svg := string(ElevationSVG(boxes, aabb.AxisZ, deltas, WithNames([]string{"crate", "barrel"})))

	if !strings.Contains(svg, ">crate</text>") {
		t.Errorf("ElevationSVG(WithNames) missing crate label, got:\n%s", svg)
	}
	if !strings.Contains(svg, ">barrel</text>") {
		t.Errorf("ElevationSVG(WithNames) missing barrel label, got:\n%s", svg)
	}
}

func TestElevationSVGInPlace(t *testing.T) {
	boxes, _ := elevationFixture()

	svg := string(ElevationSVG(boxes, aabb.AxisZ, nil))

	if got, want := strings.Count(svg, "<rect"), 2; got != want {
		t.Errorf("ElevationSVG(nil deltas) rect count = %d, want %d", got, want)
	}
	if strings.Contains(svg, `stroke-dasharray="4 3"`) {
		t.Errorf("ElevationSVG(nil deltas) drew silhouettes:\n%s", svg)
	}
}

func TestElevationSVGWithoutBefore(t *testing.T) {
	boxes, deltas := elevationFixture()

	svg := string(ElevationSVG(boxes, aabb.AxisZ, deltas, WithoutBefore()))

	if got, want := strings.Count(svg, "<rect"), 2; got != want {
		t.Errorf("ElevationSVG(WithoutBefore) rect count = %d, want %d", got, want)
	}
}

func TestElevationSVGEmpty(t *testing.T) {
	svg := string(ElevationSVG(nil, aabb.AxisZ, nil))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("ElevationSVG(nil) not a well-formed document:\n%s", svg)
	}
	if strings.Contains(svg, "<rect") {
		t.Errorf("ElevationSVG(nil) drew rects:\n%s", svg)
	}
}

func TestElevationSVGEscapesLabels(t *testing.T) {
	boxes := []aabb.Box{
		{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 4}},
	}

	svg := string(ElevationSVG(boxes, aabb.AxisZ, nil, WithNames([]string{"a<b&c"})))

	if !strings.Contains(svg, ">a&lt;b&amp;c</text>") {
		t.Errorf("ElevationSVG() label not escaped, got:\n%s", svg)
	}
}

func TestFillForName(t *testing.T) {
	hexColorRe := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	c1 := fillForName("crate")
	c2 := fillForName("barrel")

	if c1 != fillForName("crate") {
		t.Errorf("fillForName() not deterministic: %q vs %q", c1, fillForName("crate"))
	}
	if c1 == c2 {
		t.Errorf("fillForName() same color %q for different names", c1)
	}
	for _, c := range []string{c1, c2} {
		if !hexColorRe.MatchString(c) {
			t.Errorf("fillForName() = %q, want hex color", c)
		}
	}
}
