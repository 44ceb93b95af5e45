package img2num

import "testing"

func buildSimpleGraph(t *testing.T) (*Rgba8, *Graph) {
	t.Helper()
	img := NewRgba8(4, 1)
	img.Set(0, 0, 0, 0, 0, 255)
	img.Set(1, 0, 1, 1, 1, 255)
	img.Set(2, 0, 200, 200, 200, 255)
	img.Set(3, 0, 255, 255, 255, 255)
	inputLabels := []int32{0, 0, 1, 1}
	res, err := Label(img, inputLabels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := BuildGraph(img, res)
	return img, g
}

func TestBuildGraphAdjacencyIsSymmetric(t *testing.T) {
	_, g := buildSimpleGraph(t)
	if len(g.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(g.Regions))
	}
	r0, r1 := g.Regions[0], g.Regions[1]
	if _, ok := r0.Neighbours[1]; !ok {
		t.Fatalf("region 0 should neighbour region 1")
	}
	if _, ok := r1.Neighbours[0]; !ok {
		t.Fatalf("region 1 should neighbour region 0")
	}
	for id := range r0.Neighbours {
		if id == r0.ID {
			t.Fatalf("self-edge found on region 0")
		}
	}
}

func TestMergeSmallRegionsDissolvesAndPreservesTotalArea(t *testing.T) {
	img := NewRgba8(5, 1)
	for x := 0; x < 5; x++ {
		img.Set(x, 0, 10, 10, 10, 255)
	}
	img.Set(4, 0, 250, 250, 250, 255)
	inputLabels := []int32{0, 0, 0, 0, 1}
	res, err := Label(img, inputLabels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := BuildGraph(img, res)
	totalBefore := 0
	for _, r := range g.Regions {
		totalBefore += r.Area()
	}

	g.MergeSmallRegions(2)

	totalAfter := 0
	live := 0
	for _, r := range g.Regions {
		totalAfter += r.Area()
		if r.Area() > 0 {
			live++
		}
	}
	if totalAfter != totalBefore {
		t.Fatalf("merge changed total pixel count: before=%d after=%d", totalBefore, totalAfter)
	}
	if live != 1 {
		t.Fatalf("expected the 1-pixel region to be absorbed, leaving 1 live region, got %d", live)
	}
	for i, lbl := range g.RegionLabels {
		if g.Regions[lbl].Area() == 0 {
			t.Fatalf("pixel %d still points at a dissolved region", i)
		}
	}
}

func TestMergeSmallRegionsNoOpAboveThreshold(t *testing.T) {
	_, g := buildSimpleGraph(t)
	g.MergeSmallRegions(1)
	live := 0
	for _, r := range g.Regions {
		if r.Area() > 0 {
			live++
		}
	}
	if live != 2 {
		t.Fatalf("expected no merges with minArea=1, got %d live regions", live)
	}
}
