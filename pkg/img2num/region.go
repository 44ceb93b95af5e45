package img2num

// Pixel is a single member of a region: its colour and its integer
// image coordinates.
type Pixel struct {
	R, G, B uint8
	X, Y    int
}

// Point2 is a (possibly sub-pixel) 2D point, used for contours and
// Bézier control points after smoothing/coupling.
type Point2 struct {
	X, Y float64
}

// Contour is an ordered sequence of 2D points: a region's outer border
// or one of its holes. ParentIdx is the index, within the
// same region's Contours slice, of the contour this one is nested
// inside, or -1 for a top-level outer border.
type Contour struct {
	Points    []Point2
	IsHole    bool
	ParentIdx int
}

// Region is a flat-array node in the region adjacency graph arena,
// rather than a pointer-linked graph, so ids stay stable across merges.
// Regions are never deleted on merge; Area drops to zero and the node
// is skipped by downstream stages.
type Region struct {
	ID         uint32
	Pixels     []Pixel
	Neighbours map[uint32]struct{}

	meanValid bool
	meanR     float64
	meanG     float64
	meanB     float64

	centroidValid bool
	centroidX     float64
	centroidY     float64

	Contours []Contour
	Curves   [][]QuadBezier
}

// NewRegion allocates an empty region with the given id.
func NewRegion(id uint32) *Region {
	return &Region{ID: id, Neighbours: make(map[uint32]struct{})}
}

// Area is the region's current pixel count. A zero-area region is
// "dissolved".
func (r *Region) Area() int { return len(r.Pixels) }

// AddPixel appends p and invalidates the cached mean/centroid.
func (r *Region) AddPixel(p Pixel) {
	r.Pixels = append(r.Pixels, p)
	r.meanValid = false
	r.centroidValid = false
}

// MeanColor returns the region's mean (R, G, B), cached after first call.
func (r *Region) MeanColor() (float64, float64, float64) {
	if r.meanValid {
		return r.meanR, r.meanG, r.meanB
	}
	if len(r.Pixels) == 0 {
		return 0, 0, 0
	}
	var sr, sg, sb float64
	for _, p := range r.Pixels {
		sr += float64(p.R)
		sg += float64(p.G)
		sb += float64(p.B)
	}
	n := float64(len(r.Pixels))
	r.meanR, r.meanG, r.meanB = sr/n, sg/n, sb/n
	r.meanValid = true
	return r.meanR, r.meanG, r.meanB
}

// Centroid returns the region's mean (X, Y), cached after first call.
func (r *Region) Centroid() (float64, float64) {
	if r.centroidValid {
		return r.centroidX, r.centroidY
	}
	if len(r.Pixels) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range r.Pixels {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(r.Pixels))
	r.centroidX, r.centroidY = sx/n, sy/n
	r.centroidValid = true
	return r.centroidX, r.centroidY
}

// addNeighbourLocal records id as a neighbour of r only. Adjacency is
// made symmetric by mirroring it on the other region, which
// Graph.addEdge does.
func (r *Region) addNeighbourLocal(id uint32) {
	if id == r.ID {
		return
	}
	r.Neighbours[id] = struct{}{}
}

func (r *Region) removeNeighbourLocal(id uint32) {
	delete(r.Neighbours, id)
}
