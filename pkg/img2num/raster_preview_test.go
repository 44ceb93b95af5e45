package img2num

import "testing"

func TestRasterizePreviewCoversRegionArea(t *testing.T) {
	r := NewRegion(0)
	r.Contours = []Contour{{
		Points: []Point2{{2, 2}, {8, 2}, {8, 8}, {2, 8}},
	}}
	out, err := RasterizePreview(r, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inside := out.AlphaAt(5, 5).A
	outside := out.AlphaAt(0, 0).A
	if inside == 0 {
		t.Fatalf("expected the rasterized square's interior to be covered")
	}
	if outside != 0 {
		t.Fatalf("expected pixels outside the square to be uncovered, got alpha %d", outside)
	}
}

func TestRasterizePreviewRejectsInvalidDimensions(t *testing.T) {
	r := NewRegion(0)
	if _, err := RasterizePreview(r, 0, 10); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for zero width")
	}
}

func TestRasterizePreviewEmptyRegionProducesNoCoverage(t *testing.T) {
	r := NewRegion(0)
	out, err := RasterizePreview(r, 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.AlphaAt(x, y).A != 0 {
				t.Fatalf("expected no coverage for an empty region")
			}
		}
	}
}
