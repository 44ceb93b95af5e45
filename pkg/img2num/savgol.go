package img2num

// SavGolMode selects the boundary policy for a Savitzky-Golay smoothing
// pass: how the window is built for points near the ends of the
// sequence (or, for Wrapped, whether there are "ends" at all).
type SavGolMode int

const (
	// SavGolClamped convolves only where the full radius window fits;
	// any point within radius of either end is passed through
	// unmodified rather than convolved against a truncated window.
	SavGolClamped SavGolMode = iota
	// SavGolWrapped always samples window indices modulo n, treating
	// the sequence as a closed loop with no real endpoints.
	SavGolWrapped
	// SavGolConstrained solves a locally weighted least-squares fit per
	// point: points flagged locked get an effectively infinite weight
	// (the fit is pulled to match them almost exactly) and points
	// flagged corner are passed through unmodified instead of fitted.
	SavGolConstrained
)

// SavGolConstraints supplies the per-point locked/corner flags that
// SavGolConstrained mode uses. A nil entry in either slice, or an index
// past its end, is treated as false (unlocked / not a corner).
type SavGolConstraints struct {
	Locked []bool
	Corner []bool
}

func (c *SavGolConstraints) lockedAt(i int) bool {
	if c == nil || i >= len(c.Locked) {
		return false
	}
	return c.Locked[i]
}

func (c *SavGolConstraints) cornerAt(i int) bool {
	if c == nil || i >= len(c.Corner) {
		return false
	}
	return c.Corner[i]
}

// savGolKernel holds the 1D convolution coefficients for a given window
// radius and polynomial order, derived once and reused across a whole
// contour's x and y channels.
type savGolKernel struct {
	coeffs []float64 // length 2*radius+1, coeffs[radius] is the centre tap
	radius int
}

// newSavGolKernel builds the centre-tap convolution coefficients of a
// Savitzky-Golay filter of the given half-width and polynomial degree,
// by solving the normal equations of the local polynomial least-squares
// fit at t=0 (the window centre).
func newSavGolKernel(radius, polyOrder int) *savGolKernel {
	m := 2*radius + 1
	p := polyOrder + 1
	if p > m {
		p = m
	}

	// Vandermonde design matrix: design[i][j] = t_i^j, t_i = i-radius.
	design := make([][]float64, m)
	for i := 0; i < m; i++ {
		t := float64(i - radius)
		row := make([]float64, p)
		pow := 1.0
		for j := 0; j < p; j++ {
			row[j] = pow
			pow *= t
		}
		design[i] = row
	}

	normal := vandermondeNormal(design, nil, m, p)
	inv := invertSquareMatrix(normal)

	// coeffs[i] = e0^T * inv * design[i]^T, where e0 selects the
	// constant term (the fitted value at t=0).
	coeffs := make([]float64, m)
	for i := 0; i < m; i++ {
		var s float64
		for j := 0; j < p; j++ {
			s += inv[0][j] * design[i][j]
		}
		coeffs[i] = s
	}
	return &savGolKernel{coeffs: coeffs, radius: radius}
}

// vandermondeNormal computes design^T * W * design for an m x p design
// matrix, where W is the diagonal of weights (nil means all-ones).
func vandermondeNormal(design [][]float64, weights []float64, m, p int) [][]float64 {
	normal := make([][]float64, p)
	for i := range normal {
		normal[i] = make([]float64, p)
	}
	for a := 0; a < p; a++ {
		for b := 0; b < p; b++ {
			var s float64
			for i := 0; i < m; i++ {
				w := 1.0
				if weights != nil {
					w = weights[i]
				}
				s += w * design[i][a] * design[i][b]
			}
			normal[a][b] = s
		}
	}
	return normal
}

// invertSquareMatrix inverts a via Gauss-Jordan elimination with partial
// pivoting. a is copied and left unmodified; the caller always passes a small (<=6x6)
// polynomial normal-equations matrix, so no attempt is made to detect
// near-singularity beyond a zero-pivot check.
func invertSquareMatrix(a [][]float64) [][]float64 {
	n := len(a)
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, 2*n)
		copy(row, a[i])
		row[n+i] = 1
		aug[i] = row
	}
	for col := 0; col < n; col++ {
		pivot := col
		best := aug[col][col]
		if best < 0 {
			best = -best
		}
		for r := col + 1; r < n; r++ {
			v := aug[r][col]
			if v < 0 {
				v = -v
			}
			if v > best {
				best = v
				pivot = r
			}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		pv := aug[col][col]
		if pv == 0 {
			pv = 1e-12
		}
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = append([]float64(nil), aug[i][n:]...)
	}
	return out
}

// SmoothPolyline applies a Savitzky-Golay filter independently to the X
// and Y channels of points. radius must be >=1 and polyOrder must be
// non-negative. closed marks whether points is a genuine closed loop
// (its last point is adjacent to its first, as every Suzuki-Abe contour
// is); mode chooses how that loop's ends are treated: Wrapped always
// convolves modulo n, whatever closed says; Clamped treats index 0/n-1
// as a deliberate seam even on closed data, which lets a caller keep a
// stitched seam point fixed instead of blending it away; Constrained
// follows closed, sampling its windows modulo n on closed data and
// dropping samples past either end on open data. constraints is only
// consulted in SavGolConstrained mode and may be nil.
func SmoothPolyline(points []Point2, radius, polyOrder int, mode SavGolMode, closed bool, constraints *SavGolConstraints) ([]Point2, error) {
	if radius <= 0 {
		return nil, ErrInvalidArgumentf("savgol: radius must be positive, got %d", radius)
	}
	if polyOrder < 0 {
		return nil, ErrInvalidArgumentf("savgol: polyOrder must be non-negative, got %d", polyOrder)
	}
	n := len(points)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return []Point2{points[0]}, nil
	}

	switch mode {
	case SavGolWrapped:
		return smoothWrapped(points, radius, polyOrder), nil
	case SavGolConstrained:
		return smoothConstrained(points, radius, polyOrder, closed, constraints), nil
	default:
		return smoothClamped(points, radius, polyOrder), nil
	}
}

// smoothWrapped convolves every point against a kernel sampled modulo n,
// as if the sequence were a true circular buffer with no ends at all.
func smoothWrapped(points []Point2, radius, polyOrder int) []Point2 {
	n := len(points)
	kernel := newSavGolKernel(radius, polyOrder)
	out := make([]Point2, n)
	for i := 0; i < n; i++ {
		var sx, sy float64
		for k := -kernel.radius; k <= kernel.radius; k++ {
			idx := ((i+k)%n + n) % n
			p := points[idx]
			w := kernel.coeffs[k+kernel.radius]
			sx += w * p.X
			sy += w * p.Y
		}
		out[i] = Point2{X: sx, Y: sy}
	}
	return out
}

// smoothClamped convolves only where the full window fits; points
// within radius of either end are left unmodified.
func smoothClamped(points []Point2, radius, polyOrder int) []Point2 {
	n := len(points)
	kernel := newSavGolKernel(radius, polyOrder)
	out := make([]Point2, n)
	for i := 0; i < n; i++ {
		if i-kernel.radius < 0 || i+kernel.radius >= n {
			out[i] = points[i]
			continue
		}
		var sx, sy float64
		for k := -kernel.radius; k <= kernel.radius; k++ {
			p := points[i+k]
			w := kernel.coeffs[k+kernel.radius]
			sx += w * p.X
			sy += w * p.Y
		}
		out[i] = Point2{X: sx, Y: sy}
	}
	return out
}

// smoothConstrained solves a locally weighted least-squares polynomial
// fit per point instead of a single precomputed kernel, so that locked
// and corner points (per constraints) can pull or fix the fit. When
// constraints is nil and the sequence isn't closed, the two global
// endpoints default to locked, matching the plain "keep the ends
// fixed" behaviour a caller gets without supplying explicit flags.
func smoothConstrained(points []Point2, radius, polyOrder int, closed bool, constraints *SavGolConstraints) []Point2 {
	n := len(points)
	p := polyOrder + 1
	if p > 2*radius+1 {
		p = 2*radius + 1
	}

	if constraints == nil && !closed {
		locked := make([]bool, n)
		locked[0] = true
		locked[n-1] = true
		constraints = &SavGolConstraints{Locked: locked}
	}

	const lockedWeight = 1e8
	out := make([]Point2, n)
	for i := 0; i < n; i++ {
		if constraints.cornerAt(i) || constraints.lockedAt(i) {
			out[i] = points[i]
			continue
		}

		var ts, xs, ys, ws []float64
		for k := -radius; k <= radius; k++ {
			idx := i + k
			if idx < 0 || idx >= n {
				if !closed {
					continue
				}
				idx = ((idx % n) + n) % n
			}
			ts = append(ts, float64(k))
			xs = append(xs, points[idx].X)
			ys = append(ys, points[idx].Y)
			w := 1.0
			if constraints.lockedAt(idx) {
				w = lockedWeight
			}
			ws = append(ws, w)
		}
		out[i] = Point2{
			X: fitWeightedPoly(ts, xs, ws, p),
			Y: fitWeightedPoly(ts, ys, ws, p),
		}
	}
	return out
}

// fitWeightedPoly solves a weighted least-squares polynomial fit of
// degree p-1 over (ts, vals) with per-sample weights ws, and returns
// the fitted value at t=0.
func fitWeightedPoly(ts, vals, ws []float64, p int) float64 {
	m := len(ts)
	design := make([][]float64, m)
	for i, t := range ts {
		row := make([]float64, p)
		pow := 1.0
		for j := 0; j < p; j++ {
			row[j] = pow
			pow *= t
		}
		design[i] = row
	}
	normal := vandermondeNormal(design, ws, m, p)
	rhs := make([]float64, p)
	for a := 0; a < p; a++ {
		var s float64
		for i := 0; i < m; i++ {
			s += ws[i] * design[i][a] * vals[i]
		}
		rhs[a] = s
	}
	inv := invertSquareMatrix(normal)
	var val float64
	for j := 0; j < p; j++ {
		val += inv[0][j] * rhs[j]
	}
	return val
}
