package img2num

import "testing"

func TestSmoothPolylineStraightLineUnchanged(t *testing.T) {
	pts := make([]Point2, 11)
	for i := range pts {
		pts[i] = Point2{X: float64(i), Y: float64(i) * 2}
	}
	out, err := SmoothPolyline(pts, 2, 2, SavGolClamped, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range out {
		dx := p.X - pts[i].X
		dy := p.Y - pts[i].Y
		if dx < -1e-6 || dx > 1e-6 || dy < -1e-6 || dy > 1e-6 {
			t.Fatalf("point %d: expected a degree-2 fit to reproduce a line exactly, got %v want %v", i, p, pts[i])
		}
	}
}

func TestSmoothPolylineClampedKeepsPointsWithinRadius(t *testing.T) {
	pts := []Point2{{0, 0}, {1, 10}, {2, 0}, {3, 10}, {4, 0}}
	out, err := SmoothPolyline(pts, 1, 1, SavGolClamped, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != pts[0] || out[len(out)-1] != pts[len(pts)-1] {
		t.Fatalf("clamped mode must leave points within radius of either end untouched, got %v and %v", out[0], out[len(out)-1])
	}
}

func TestSmoothPolylineConstrainedDefaultLocksEndpoints(t *testing.T) {
	pts := []Point2{{0, 0}, {1, 10}, {2, 0}, {3, 10}, {4, 0}}
	out, err := SmoothPolyline(pts, 1, 1, SavGolConstrained, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != pts[0] || out[len(out)-1] != pts[len(pts)-1] {
		t.Fatalf("constrained mode with no explicit constraints must default-lock the open polyline's endpoints, got %v and %v", out[0], out[len(out)-1])
	}
}

func TestSmoothPolylineConstrainedRespectsLockedAndCorner(t *testing.T) {
	pts := []Point2{{0, 0}, {1, 10}, {2, 0}, {3, 10}, {4, 0}, {5, 10}, {6, 0}}
	constraints := &SavGolConstraints{
		Locked: []bool{false, false, true, false, false, false, false},
		Corner: []bool{false, false, false, false, true, false, false},
	}
	out, err := SmoothPolyline(pts, 1, 1, SavGolConstrained, true, constraints)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[2] != pts[2] {
		t.Fatalf("locked point must be left untouched, got %v want %v", out[2], pts[2])
	}
	if out[4] != pts[4] {
		t.Fatalf("corner point must be left untouched, got %v want %v", out[4], pts[4])
	}
}

func TestSmoothPolylineWrappedIsCircular(t *testing.T) {
	pts := []Point2{{0, 0}, {1, 1}, {2, 0}, {1, -1}}
	out, err := SmoothPolyline(pts, 1, 1, SavGolWrapped, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(pts) {
		t.Fatalf("expected same length output, got %d", len(out))
	}
}

// TestSmoothPolylineModeIsNotDeadOnClosedData guards against a closed
// (looping) polyline silently wrapping regardless of the requested mode:
// Clamped must still treat index 0/n-1 as a seam even though closed is
// true, so its output must differ from Wrapped's.
func TestSmoothPolylineModeIsNotDeadOnClosedData(t *testing.T) {
	pts := []Point2{{0, 0}, {1, 8}, {2, -3}, {3, 9}, {4, -1}, {5, 7}, {6, 0}}
	clamped, err := SmoothPolyline(pts, 2, 1, SavGolClamped, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrapped, err := SmoothPolyline(pts, 2, 1, SavGolWrapped, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clamped[0] != pts[0] {
		t.Fatalf("clamped mode must pass through the seam point even on closed data, got %v", clamped[0])
	}
	if wrapped[0] == clamped[0] {
		t.Fatalf("wrapped and clamped modes must diverge on closed data, both produced %v at index 0", wrapped[0])
	}
}

func TestSmoothPolylineRejectsNonPositiveRadius(t *testing.T) {
	if _, err := SmoothPolyline([]Point2{{0, 0}}, 0, 1, SavGolClamped, false, nil); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for radius=0")
	}
}

func TestSmoothPolylineSinglePointPassthrough(t *testing.T) {
	out, err := SmoothPolyline([]Point2{{5, 5}}, 2, 2, SavGolClamped, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0] != (Point2{5, 5}) {
		t.Fatalf("expected single point passthrough, got %v", out)
	}
}
