package img2num

import "math"

// QuadBezier is a single quadratic Bézier segment: P0 and P2 are its
// endpoints, P1 its control point.
type QuadBezier struct {
	P0, P1, P2 Point2
}

// Eval evaluates the curve at parameter t in [0,1].
func (q QuadBezier) Eval(t float64) Point2 {
	u := 1 - t
	return Point2{
		X: u*u*q.P0.X + 2*u*t*q.P1.X + t*t*q.P2.X,
		Y: u*u*q.P0.Y + 2*u*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// FitQuadraticBeziers reduces a polyline (typically a smoothed contour)
// to a short run of quadratic Bézier segments, recursively splitting at
// the point of worst fit until every segment's maximum perpendicular
// deviation from its source points is within maxError. points must have
// at least 2 elements; a 2-point input degenerates to a single straight
// segment (P1 at the midpoint).
func FitQuadraticBeziers(points []Point2, maxError float64) []QuadBezier {
	if len(points) < 2 {
		return nil
	}
	if len(points) == 2 {
		mid := Point2{X: (points[0].X + points[1].X) / 2, Y: (points[0].Y + points[1].Y) / 2}
		return []QuadBezier{{P0: points[0], P1: mid, P2: points[1]}}
	}
	return fitRange(points, maxError)
}

func fitRange(points []Point2, maxError float64) []QuadBezier {
	t := chordLengthParam(points)
	curve, errs := fitOneQuad(points, t)

	worstIdx := 0
	worst := errs[0]
	for i, e := range errs {
		if e > worst {
			worst = e
			worstIdx = i
		}
	}

	if worst <= maxError || worstIdx == 0 || worstIdx == len(points)-1 {
		return []QuadBezier{curve}
	}

	left := fitRange(points[:worstIdx+1], maxError)
	right := fitRange(points[worstIdx:], maxError)
	return append(left, right...)
}

// chordLengthParam assigns each point a parameter in [0,1] proportional
// to its cumulative distance along the polyline, the standard
// parametrisation for least-squares Bézier fitting.
func chordLengthParam(points []Point2) []float64 {
	n := len(points)
	t := make([]float64, n)
	total := 0.0
	for i := 1; i < n; i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		total += math.Hypot(dx, dy)
		t[i] = total
	}
	if total == 0 {
		for i := range t {
			t[i] = float64(i) / float64(n-1)
		}
		return t
	}
	for i := range t {
		t[i] /= total
	}
	return t
}

// fitOneQuad fits a single quadratic Bézier with fixed endpoints
// points[0] and points[last], solving for the control point P1 that
// minimises squared error in closed form, and returns the per-point
// residual distances for split-point selection.
func fitOneQuad(points []Point2, t []float64) (QuadBezier, []float64) {
	p0 := points[0]
	p2 := points[len(points)-1]

	var numX, numY, den float64
	for i, ti := range t {
		u := 1 - ti
		b := 2 * u * ti
		rx := points[i].X - u*u*p0.X - ti*ti*p2.X
		ry := points[i].Y - u*u*p0.Y - ti*ti*p2.Y
		numX += b * rx
		numY += b * ry
		den += b * b
	}
	var p1 Point2
	if den == 0 {
		p1 = Point2{X: (p0.X + p2.X) / 2, Y: (p0.Y + p2.Y) / 2}
	} else {
		p1 = Point2{X: numX / den, Y: numY / den}
	}

	curve := QuadBezier{P0: p0, P1: p1, P2: p2}
	errs := make([]float64, len(points))
	for i, ti := range t {
		e := curve.Eval(ti)
		errs[i] = math.Hypot(points[i].X-e.X, points[i].Y-e.Y)
	}
	return curve, errs
}
