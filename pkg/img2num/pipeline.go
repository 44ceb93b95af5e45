package img2num

import "math/rand"

// PipelineOptions configures the end-to-end Convert operation: image
// preprocessing, quantisation, region extraction and the vectorisation
// of the resulting regions into an SVG document.
type PipelineOptions struct {
	UseBlur   bool
	BlurSigma float64

	UseBilateral          bool
	BilateralSigmaSpatial float64
	BilateralSigmaRange   float64
	BilateralColorSpace   ColorSpace

	KMeansK          int
	KMeansMaxIter    int
	KMeansColorSpace ColorSpace
	RNGSeed          int64

	MinRegionArea int

	SmoothRadius    int
	SmoothPolyOrder int
	SmoothMode      SavGolMode

	CouplingStrategy  CouplingStrategy
	CouplingMatchDist float64

	BezierMaxError float64

	SVG SVGOptions
}

// DefaultPipelineOptions returns reasonable defaults: no blur or
// bilateral prefilter, a modest palette, grid-mid coupling, and a tight
// Bézier error tolerance.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		KMeansK:           8,
		KMeansMaxIter:     50,
		KMeansColorSpace:  ColorSpaceLab,
		RNGSeed:           1,
		MinRegionArea:     16,
		SmoothRadius:      2,
		SmoothPolyOrder:   2,
		SmoothMode:        SavGolClamped,
		CouplingStrategy:  CouplingGridMid,
		CouplingMatchDist: 1.5,
		BezierMaxError:    1.0,
	}
}

// PipelineResult is everything Convert produces: the rendered SVG
// document plus the region graph it was built from, so callers (the CLI
// preview, or tests) can inspect intermediate state.
type PipelineResult struct {
	SVG   string
	Graph *Graph
}

// Convert runs the full paint-by-numbers pipeline: optional frequency
// domain blur, optional bilateral smoothing, k-means++ colour
// quantisation, flood-fill labelling, small-region merging, border
// tracing, per-region smoothing and coupling, quadratic-Bézier fitting,
// and SVG serialisation. img is mutated in place by the preprocessing
// stages; callers that need the original should pass img.Clone().
func Convert(img *Rgba8, opts PipelineOptions) (*PipelineResult, error) {
	if img == nil {
		return nil, ErrInvalidArgumentf("pipeline: nil image")
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	if opts.UseBlur {
		if err := GaussianBlurFFT(img, opts.BlurSigma); err != nil {
			return nil, err
		}
	}
	if opts.UseBilateral {
		if err := BilateralFilter(img, opts.BilateralSigmaSpatial, opts.BilateralSigmaRange, opts.BilateralColorSpace); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(opts.RNGSeed))
	kmeans, err := Quantize(img, opts.KMeansK, opts.KMeansMaxIter, opts.KMeansColorSpace, rng)
	if err != nil {
		return nil, err
	}

	svgText, graph, err := LabelsToSVG(img, kmeans.Labels, img.Width, img.Height, opts)
	if err != nil {
		return nil, err
	}
	return &PipelineResult{SVG: svgText, Graph: graph}, nil
}

// LabelsToSVG is the labels_to_svg external operation: it takes a
// per-pixel label array (however produced — typically Quantize's
// output, but any same-length integer partition works), and runs the
// region-extraction half of the pipeline: flood-fill labelling, small
// region merging, border tracing, smoothing, coupling, Bézier fitting,
// and SVG serialisation.
func LabelsToSVG(img *Rgba8, labels []int32, width, height int, opts PipelineOptions) (string, *Graph, error) {
	if img == nil {
		return "", nil, ErrInvalidArgumentf("labels_to_svg: nil image")
	}
	if err := img.Validate(); err != nil {
		return "", nil, err
	}

	labelled, err := Label(img, labels)
	if err != nil {
		return "", nil, err
	}
	graph := BuildGraph(img, labelled)
	graph.MergeSmallRegions(opts.MinRegionArea)

	if err := traceAllRegions(graph); err != nil {
		return "", nil, err
	}
	if err := smoothAllRegions(graph, opts); err != nil {
		return "", nil, err
	}
	coupleAllRegions(graph, opts)
	fitAllRegionCurves(graph, opts.BezierMaxError)

	svgText, err := RenderSVG(graph, width, height, opts.SVG)
	if err != nil {
		return "", nil, err
	}
	return svgText, graph, nil
}

func traceAllRegions(g *Graph) error {
	for _, r := range g.Regions {
		if r.Area() == 0 {
			continue
		}
		mask, ox, oy := MaskFromRegion(r)
		r.Contours = TraceContours(mask, ox, oy)
	}
	return nil
}

func smoothAllRegions(g *Graph, opts PipelineOptions) error {
	if opts.SmoothRadius <= 0 {
		return nil
	}
	for _, r := range g.Regions {
		if r.Area() == 0 {
			continue
		}
		for i, c := range r.Contours {
			// Every traced contour (outer boundary or hole) is a closed
			// loop: its last point is adjacent to its first.
			smoothed, err := SmoothPolyline(c.Points, opts.SmoothRadius, opts.SmoothPolyOrder, opts.SmoothMode, true, nil)
			if err != nil {
				return err
			}
			r.Contours[i].Points = smoothed
		}
	}
	return nil
}

// coupleAllRegions reconciles every pair of live neighbouring regions'
// outer borders so their shared edge matches up exactly after
// independent smoothing. Only each region's first (outer) contour is
// coupled; holes are interior to a single region and never shared.
func coupleAllRegions(g *Graph, opts PipelineOptions) {
	if opts.CouplingMatchDist <= 0 {
		return
	}
	seen := make(map[[2]uint32]bool)
	for _, r := range g.Regions {
		if r.Area() == 0 || len(r.Contours) == 0 {
			continue
		}
		for nbID := range r.Neighbours {
			nb := g.Regions[nbID]
			if nb.Area() == 0 || len(nb.Contours) == 0 {
				continue
			}
			key := edgeKey(r.ID, nbID)
			if seen[key] {
				continue
			}
			seen[key] = true

			a, b := r.Contours[0].Points, nb.Contours[0].Points
			newA, newB := CoupleBorders(a, b, opts.CouplingMatchDist, opts.CouplingStrategy, r.ID, nbID)
			r.Contours[0].Points = newA
			nb.Contours[0].Points = newB
		}
	}
}

func edgeKey(a, b uint32) [2]uint32 {
	if a < b {
		return [2]uint32{a, b}
	}
	return [2]uint32{b, a}
}

func fitAllRegionCurves(g *Graph, maxError float64) {
	for _, r := range g.Regions {
		if r.Area() == 0 {
			continue
		}
		r.Curves = make([][]QuadBezier, len(r.Contours))
		for i, c := range r.Contours {
			r.Curves[i] = FitQuadraticBeziers(c.Points, maxError)
		}
	}
}
