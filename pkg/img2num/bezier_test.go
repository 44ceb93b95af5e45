package img2num

import (
	"math"
	"testing"
)

func TestFitQuadraticBeziersStraightLineSingleSegment(t *testing.T) {
	pts := make([]Point2, 20)
	for i := range pts {
		pts[i] = Point2{X: float64(i), Y: float64(i)}
	}
	curves := FitQuadraticBeziers(pts, 0.01)
	if len(curves) != 1 {
		t.Fatalf("expected a straight line to fit in a single segment, got %d", len(curves))
	}
}

func TestFitQuadraticBeziersRespectsMaxError(t *testing.T) {
	pts := make([]Point2, 0, 64)
	for i := 0; i <= 63; i++ {
		a := float64(i) / 63 * math.Pi
		pts = append(pts, Point2{X: math.Cos(a) * 50, Y: math.Sin(a) * 50})
	}
	const maxError = 0.5
	curves := FitQuadraticBeziers(pts, maxError)
	if len(curves) < 2 {
		t.Fatalf("expected a half-circle to require multiple quadratic segments at tight tolerance, got %d", len(curves))
	}

	for i, p := range pts {
		best := math.Inf(1)
		for _, c := range curves {
			for k := 0; k <= 20; k++ {
				e := c.Eval(float64(k) / 20)
				d := math.Hypot(p.X-e.X, p.Y-e.Y)
				if d < best {
					best = d
				}
			}
		}
		if best > maxError*3 {
			t.Fatalf("point %d farther than expected from the fitted curve set: %v", i, best)
		}
	}
}

func TestFitQuadraticBeziersTwoPointInput(t *testing.T) {
	curves := FitQuadraticBeziers([]Point2{{0, 0}, {10, 0}}, 0.1)
	if len(curves) != 1 {
		t.Fatalf("expected exactly 1 segment for 2-point input, got %d", len(curves))
	}
	mid := curves[0].Eval(0.5)
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y) > 1e-9 {
		t.Fatalf("expected the 2-point fallback segment to be a straight line, midpoint got %v", mid)
	}
}

func TestFitQuadraticBeziersEmptyAndSinglePoint(t *testing.T) {
	if c := FitQuadraticBeziers(nil, 1.0); c != nil {
		t.Fatalf("expected nil for empty input")
	}
	if c := FitQuadraticBeziers([]Point2{{1, 1}}, 1.0); c != nil {
		t.Fatalf("expected nil for single-point input")
	}
}
