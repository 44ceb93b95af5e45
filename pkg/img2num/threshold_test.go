package img2num

import "testing"

func TestThresholdImageScenario(t *testing.T) {
	img := NewRgba8(1, 1)
	img.Set(0, 0, 10, 100, 200, 255)
	if err := ThresholdImage(img, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(0, 0)
	if r != 63 || g != 63 || b != 190 || a != 255 {
		t.Fatalf("got (%d,%d,%d,%d), want (63,63,190,255)", r, g, b, a)
	}
}

func TestThresholdImageRejectsNonPositiveN(t *testing.T) {
	img := NewRgba8(1, 1)
	if err := ThresholdImage(img, 0); err == nil {
		t.Fatalf("expected error for n=0")
	}
	if KindOf(ThresholdImage(img, -1)) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for negative n")
	}
}

func TestBlackThresholdImage(t *testing.T) {
	img := NewRgba8(2, 1)
	img.Set(0, 0, 5, 5, 5, 255)
	img.Set(1, 0, 5, 5, 200, 255)
	if err := BlackThresholdImage(img, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(0, 0)
	if r != 0 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("expected pixel 0 to become black, got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, _ = img.At(1, 0)
	if r != 5 || g != 5 || b != 200 {
		t.Fatalf("pixel 1 should be unchanged, got (%d,%d,%d)", r, g, b)
	}
}
