package img2num

import "testing"

func TestLabelPartitionsEveryPixel(t *testing.T) {
	img := NewRgba8(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, 0, 0, 0, 255)
		}
	}
	// two 2x2 blocks of different input labels side by side
	inputLabels := make([]int32, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			idx := y*4 + x
			if x < 2 {
				inputLabels[idx] = 0
			} else {
				inputLabels[idx] = 1
			}
		}
	}
	res, err := Label(img, inputLabels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(res.Regions))
	}
	seen := make(map[int]bool)
	for _, rl := range res.RegionLabels {
		seen[int(rl)] = true
		if rl < 0 {
			t.Fatalf("found unassigned pixel")
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected exactly 2 distinct region ids, got %d", len(seen))
	}
	for _, r := range res.Regions {
		if r.Area() != 8 {
			t.Fatalf("expected each region to cover 8 pixels, got %d", r.Area())
		}
	}
}

func TestLabelDiscoveryOrderIsRowMajor(t *testing.T) {
	img := NewRgba8(3, 1)
	inputLabels := []int32{5, 9, 5}
	res, err := Label(img, inputLabels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Regions) != 3 {
		t.Fatalf("expected 3 disconnected regions (5 | 9 | 5, not 4-connected across the middle), got %d", len(res.Regions))
	}
	if res.RegionLabels[0] != 0 || res.RegionLabels[1] != 1 || res.RegionLabels[2] != 2 {
		t.Fatalf("expected discovery order 0,1,2 got %v", res.RegionLabels)
	}
}

func TestLabelSinglePixelRegions(t *testing.T) {
	img := NewRgba8(2, 2)
	inputLabels := []int32{0, 1, 2, 3}
	res, err := Label(img, inputLabels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Regions) != 4 {
		t.Fatalf("expected 4 single-pixel regions, got %d", len(res.Regions))
	}
	for _, r := range res.Regions {
		if r.Area() != 1 {
			t.Fatalf("expected area 1, got %d", r.Area())
		}
	}
}

func TestLabelRejectsMismatchedLength(t *testing.T) {
	img := NewRgba8(2, 2)
	if _, err := Label(img, []int32{0, 0, 0}); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for mismatched label count")
	}
}
