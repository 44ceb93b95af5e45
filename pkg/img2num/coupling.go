package img2num

import "math"

// CouplingStrategy selects how two neighbouring regions' independently
// smoothed borders are reconciled so the shared edge has no gap or
// overlap in the final vector output.
type CouplingStrategy int

const (
	// CouplingGridMid matches each point to a candidate in a 3x3
	// integer-grid neighbourhood of the opposite border, chosen by how
	// well its direction from the point aligns with the point's local
	// tangent, then snaps both to their midpoint.
	CouplingGridMid CouplingStrategy = iota
	// CouplingSegmentProjection snaps each point to the midpoint between
	// itself and its closest point on the opposite border's segments,
	// applied independently in both directions, then relaxes the result
	// with a [0.25, 0.5, 0.25] Laplacian smoothing pass.
	CouplingSegmentProjection
)

// CoupleBorders reconciles two polylines a and b that trace the same
// shared region boundary from opposite sides, having since diverged
// under independent smoothing. aID and bID are accepted for callers
// that need a deterministic processing order across region pairs; the
// strategies here are symmetric in the two borders themselves.
func CoupleBorders(a, b []Point2, matchDist float64, strategy CouplingStrategy, aID, bID uint32) ([]Point2, []Point2) {
	if len(a) == 0 || len(b) == 0 {
		return a, b
	}

	switch strategy {
	case CouplingSegmentProjection:
		return coupleSegmentProjection(a, b, matchDist)
	default:
		return coupleGridMid(a, b, matchDist)
	}
}

// coupleGridMid implements the grid-mid strategy: for every point on
// one border, it searches a 3x3 integer-grid neighbourhood of the other
// border and picks the candidate minimising |tangent . (candidate -
// point)|, i.e. the candidate lying most nearly perpendicular to the
// point's direction of travel, which is the point directly "across"
// the shared edge rather than one further along it. Ties break by
// distance.
func coupleGridMid(a, b []Point2, matchDist float64) ([]Point2, []Point2) {
	outA := append([]Point2(nil), a...)
	outB := append([]Point2(nil), b...)

	bGrid := buildGridIndex(b)
	aGrid := buildGridIndex(a)

	for i, pairs := range []struct {
		src, dst []Point2
		grid     map[[2]int][]int
	}{
		{a, b, bGrid},
		{b, a, aGrid},
	} {
		fromA := i == 0
		for idx, p := range pairs.src {
			tangent := tangentAt(pairs.src, idx)
			if tangent == (Point2{}) {
				continue
			}
			best, bestScore, bestDist, found := -1, math.Inf(1), math.Inf(1), false
			for _, cand := range gridNeighbours(pairs.grid, p) {
				q := pairs.dst[cand]
				score := math.Abs(tangent.X*(q.X-p.X) + tangent.Y*(q.Y-p.Y))
				d := dist2(p, q)
				if score < bestScore-1e-9 || (math.Abs(score-bestScore) <= 1e-9 && d < bestDist) {
					best, bestScore, bestDist, found = cand, score, d, true
				}
			}
			if !found || bestDist > matchDist {
				continue
			}
			mid := Point2{
				X: snapHalf((p.X + pairs.dst[best].X) / 2),
				Y: snapHalf((p.Y + pairs.dst[best].Y) / 2),
			}
			if fromA {
				outA[idx] = mid
				outB[best] = mid
			} else {
				outB[idx] = mid
				outA[best] = mid
			}
		}
	}
	return outA, outB
}

// tangentAt returns the normalized direction of travel at index i of a
// closed polyline, estimated from its immediate neighbours. Returns the
// zero point if pts has fewer than 2 points.
func tangentAt(pts []Point2, i int) Point2 {
	n := len(pts)
	if n < 2 {
		return Point2{}
	}
	prev := pts[(i-1+n)%n]
	next := pts[(i+1)%n]
	dx := next.X - prev.X
	dy := next.Y - prev.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Point2{}
	}
	return Point2{X: dx / length, Y: dy / length}
}

// buildGridIndex buckets pts by their rounded integer coordinates, so a
// 3x3 neighbourhood lookup around any point is a handful of map reads
// instead of a full scan.
func buildGridIndex(pts []Point2) map[[2]int][]int {
	idx := make(map[[2]int][]int, len(pts))
	for i, p := range pts {
		cell := gridCell(p)
		idx[cell] = append(idx[cell], i)
	}
	return idx
}

func gridCell(p Point2) [2]int {
	return [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
}

// gridNeighbours returns the indices stored in idx across the 3x3 block
// of cells centred on p's own cell.
func gridNeighbours(idx map[[2]int][]int, p Point2) []int {
	cx, cy := gridCell(p)[0], gridCell(p)[1]
	var out []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			out = append(out, idx[[2]int{cx + dx, cy + dy}]...)
		}
	}
	return out
}

// coupleSegmentProjection implements the segment-projection strategy:
// every point on each border is snapped to the midpoint between itself
// and its closest point on the opposite border's segments, applied
// independently in both directions, then the moved points on each side
// are relaxed with a [0.25, 0.5, 0.25] Laplacian pass.
func coupleSegmentProjection(a, b []Point2, matchDist float64) ([]Point2, []Point2) {
	outA := append([]Point2(nil), a...)
	outB := append([]Point2(nil), b...)

	var movedA, movedB []int
	for i, p := range a {
		proj := projectOntoPolyline(p, b)
		if dist2(p, proj) > matchDist {
			continue
		}
		outA[i] = Point2{X: (p.X + proj.X) / 2, Y: (p.Y + proj.Y) / 2}
		movedA = append(movedA, i)
	}
	for j, p := range b {
		proj := projectOntoPolyline(p, a)
		if dist2(p, proj) > matchDist {
			continue
		}
		outB[j] = Point2{X: (p.X + proj.X) / 2, Y: (p.Y + proj.Y) / 2}
		movedB = append(movedB, j)
	}

	laplacianSmooth(outA, movedA)
	laplacianSmooth(outB, movedB)
	return outA, outB
}

// laplacianSmooth relaxes the points at indices (a closed polyline's
// wrap-around neighbours included) with weights [0.25, 0.5, 0.25],
// reading from a snapshot so each update is independent of the others
// in the same pass.
func laplacianSmooth(pts []Point2, indices []int) {
	n := len(pts)
	if n == 0 || len(indices) == 0 {
		return
	}
	src := append([]Point2(nil), pts...)
	for _, i := range indices {
		prev := src[(i-1+n)%n]
		next := src[(i+1)%n]
		pts[i] = Point2{
			X: 0.25*prev.X + 0.5*src[i].X + 0.25*next.X,
			Y: 0.25*prev.Y + 0.5*src[i].Y + 0.25*next.Y,
		}
	}
}

func snapHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

func dist2(a, b Point2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}

// projectOntoPolyline returns the closest point to p lying on any
// segment of poly (a closed or open polyline, segments between
// consecutive points).
func projectOntoPolyline(p Point2, poly []Point2) Point2 {
	if len(poly) == 1 {
		return poly[0]
	}
	best := poly[0]
	bestD := math.Inf(1)
	for i := 0; i < len(poly); i++ {
		j := (i + 1) % len(poly)
		proj := projectOntoSegment(p, poly[i], poly[j])
		d := dist2(p, proj)
		if d < bestD {
			bestD = d
			best = proj
		}
	}
	return best
}

func projectOntoSegment(p, a, b Point2) Point2 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Point2{X: a.X + t*dx, Y: a.Y + t*dy}
}
