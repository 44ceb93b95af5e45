package img2num

import (
	"strings"
	"testing"
)

func makeSingleRegionGraph(t *testing.T) *Graph {
	t.Helper()
	img := NewRgba8(2, 2)
	img.Set(0, 0, 10, 20, 30, 255)
	img.Set(1, 0, 10, 20, 30, 255)
	img.Set(0, 1, 10, 20, 30, 255)
	img.Set(1, 1, 10, 20, 30, 255)
	res, err := Label(img, []int32{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return BuildGraph(img, res)
}

func TestRenderSVGProducesOneRegionPath(t *testing.T) {
	g := makeSingleRegionGraph(t)
	g.Regions[0].Contours = []Contour{{
		Points:    []Point2{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
		IsHole:    false,
		ParentIdx: -1,
	}}
	out, err := RenderSVG(g, 2, 2, SVGOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a well-formed svg wrapper, got %s", out)
	}
	if !strings.Contains(out, "fill=\"#0a141e\"") {
		t.Fatalf("expected the region's mean colour as fill, got %s", out)
	}
	if !strings.Contains(out, "fill-rule=\"evenodd\"") {
		t.Fatalf("expected even-odd fill rule for hole support, got %s", out)
	}
	if strings.Contains(out, "stroke") {
		t.Fatalf("expected no stroke when DrawContourBorders is false, got %s", out)
	}
}

func TestRenderSVGPathDataUsesSpaceSeparatedCoordinates(t *testing.T) {
	g := makeSingleRegionGraph(t)
	g.Regions[0].Contours = []Contour{{
		Points:    []Point2{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
		IsHole:    false,
		ParentIdx: -1,
	}}
	out, err := RenderSVG(g, 2, 2, SVGOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start := strings.Index(out, `d="`) + len(`d="`)
	d := out[start:]
	if !strings.HasPrefix(d, "M 0 0") {
		t.Fatalf("expected path data to start with space-separated \"M 0 0\", got %q", d[:min(20, len(d))])
	}
	if strings.Contains(d[:strings.IndexByte(d, '"')], ",") {
		t.Fatalf("expected space-separated coordinate pairs, not commas, got %q", d[:strings.IndexByte(d, '"')])
	}
}

func TestRenderSVGDrawsBordersWhenRequested(t *testing.T) {
	g := makeSingleRegionGraph(t)
	g.Regions[0].Contours = []Contour{{Points: []Point2{{0, 0}, {2, 0}, {2, 2}}}}
	out, err := RenderSVG(g, 2, 2, SVGOptions{DrawContourBorders: true, StrokeColor: "#ff0000", StrokeWidth: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `stroke="#ff0000"`) {
		t.Fatalf("expected a stroke attribute, got %s", out)
	}
}

func TestRenderSVGSkipsDissolvedRegions(t *testing.T) {
	g := makeSingleRegionGraph(t)
	g.Regions[0].Pixels = nil
	out, err := RenderSVG(g, 2, 2, SVGOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<path") {
		t.Fatalf("expected no path for a dissolved (area-0) region, got %s", out)
	}
}

func TestRenderSVGRejectsInvalidDimensions(t *testing.T) {
	g := makeSingleRegionGraph(t)
	if _, err := RenderSVG(g, 0, 2, SVGOptions{}); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for zero width")
	}
}
