package img2num

// LabelResult is the output of Label: a parallel region-id array plus
// the discovered regions themselves, numbered in discovery order.
type LabelResult struct {
	RegionLabels []int32
	Regions      []*Region
}

// Label partitions img into 4-connected components of pixels sharing the
// same input label (typically the output of Quantize), scanning in
// row-major order and starting a fresh BFS whenever it meets an
// unassigned pixel. Every pixel ends up owned by exactly one region;
// regions are numbered 0..R-1 in the order their seed pixel was
// discovered. Uses a scratch "visited" slice plus an explicit FIFO
// instead of recursion, to avoid stack growth on large contiguous
// regions.
func Label(img *Rgba8, inputLabels []int32) (*LabelResult, error) {
	if img == nil {
		return nil, ErrInvalidArgumentf("floodfill: nil image")
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	w, h := img.Width, img.Height
	if len(inputLabels) != w*h {
		return nil, ErrInvalidArgumentf("floodfill: input label count %d does not match %dx%d image", len(inputLabels), w, h)
	}

	regionLabels := make([]int32, w*h)
	for i := range regionLabels {
		regionLabels[i] = -1
	}

	var regions []*Region
	queue := make([]int, 0, 256)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			start := y*w + x
			if regionLabels[start] != -1 {
				continue
			}
			id := uint32(len(regions))
			region := NewRegion(id)
			want := inputLabels[start]

			queue = queue[:0]
			queue = append(queue, start)
			regionLabels[start] = int32(id)

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				cx, cy := cur%w, cur/w
				r, g, b, _ := img.At(cx, cy)
				region.AddPixel(Pixel{R: r, G: g, B: b, X: cx, Y: cy})

				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if regionLabels[ni] != -1 {
						continue
					}
					if inputLabels[ni] != want {
						continue
					}
					regionLabels[ni] = int32(id)
					queue = append(queue, ni)
				}
			}

			regions = append(regions, region)
		}
	}

	return &LabelResult{RegionLabels: regionLabels, Regions: regions}, nil
}
