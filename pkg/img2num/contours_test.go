package img2num

import "testing"

func squareMask(n int) *binaryMask {
	m := newBinaryMask(n, n)
	for i := range m.pix {
		m.pix[i] = 1
	}
	return m
}

func TestTraceContoursSolidSquareHasOneOuterBorder(t *testing.T) {
	m := squareMask(3)
	contours := TraceContours(m, 0, 0)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour for a solid square, got %d", len(contours))
	}
	if contours[0].IsHole {
		t.Fatalf("expected the single contour to be an outer border")
	}
	if contours[0].ParentIdx != -1 {
		t.Fatalf("expected no parent for the outermost contour, got %d", contours[0].ParentIdx)
	}
	if len(contours[0].Points) == 0 {
		t.Fatalf("expected a non-empty traced border")
	}
}

func TestTraceContoursRingHasHoleChildOfOuter(t *testing.T) {
	m := squareMask(5)
	m.set(2, 2, 0)
	contours := TraceContours(m, 0, 0)

	var outerIdx, holeIdx = -1, -1
	for i, c := range contours {
		if c.IsHole {
			holeIdx = i
		} else {
			outerIdx = i
		}
	}
	if outerIdx == -1 || holeIdx == -1 {
		t.Fatalf("expected both an outer border and a hole border, got %d contours", len(contours))
	}
	if contours[holeIdx].ParentIdx != outerIdx {
		t.Fatalf("expected hole's parent to be the outer border (idx %d), got %d", outerIdx, contours[holeIdx].ParentIdx)
	}
}

func TestTraceContoursEmptyMask(t *testing.T) {
	m := newBinaryMask(4, 4)
	contours := TraceContours(m, 0, 0)
	if len(contours) != 0 {
		t.Fatalf("expected no contours for an all-background mask, got %d", len(contours))
	}
}

func TestMaskFromRegionOffsetsCorrectly(t *testing.T) {
	r := NewRegion(0)
	r.AddPixel(Pixel{X: 10, Y: 20})
	r.AddPixel(Pixel{X: 11, Y: 20})
	r.AddPixel(Pixel{X: 10, Y: 21})
	mask, ox, oy := MaskFromRegion(r)
	if ox != 10 || oy != 20 {
		t.Fatalf("expected offset (10,20), got (%d,%d)", ox, oy)
	}
	if mask.width != 2 || mask.height != 2 {
		t.Fatalf("expected a 2x2 bounding box, got %dx%d", mask.width, mask.height)
	}
	if mask.at(1, 1) != 0 {
		t.Fatalf("expected the missing corner pixel to be background")
	}
}
