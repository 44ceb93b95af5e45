package img2num

import (
	"math/rand"
	"testing"
)

func TestQuantizeTwoColorScenario(t *testing.T) {
	img := NewRgba8(2, 2)
	img.Set(0, 0, 0, 0, 0, 255)
	img.Set(1, 0, 0, 0, 0, 255)
	img.Set(0, 1, 255, 255, 255, 255)
	img.Set(1, 1, 255, 255, 255, 255)

	res, err := Quantize(img, 2, 20, ColorSpaceRGB, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, l := range res.Labels {
		if l != 0 && l != 1 {
			t.Fatalf("label out of range: %d", l)
		}
	}
	l00 := res.Labels[0]
	l10 := res.Labels[1]
	l01 := res.Labels[2]
	l11 := res.Labels[3]
	if l00 != l10 || l01 != l11 || l00 == l01 {
		t.Fatalf("expected a clean 2-colouring, got %v", res.Labels)
	}
	r, g, b, _ := res.Image.At(0, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black centroid at (0,0), got (%d,%d,%d)", r, g, b)
	}
	r, g, b, _ = res.Image.At(0, 1)
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("expected white centroid at (0,1), got (%d,%d,%d)", r, g, b)
	}
}

func TestQuantizeDeterministicForSameSeed(t *testing.T) {
	img := NewRgba8(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, uint8(x*30), uint8(y*30), uint8((x+y)*15), 255)
		}
	}
	r1, err := Quantize(img, 4, 10, ColorSpaceRGB, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := Quantize(img, 4, 10, ColorSpaceRGB, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range r1.Labels {
		if r1.Labels[i] != r2.Labels[i] {
			t.Fatalf("reruns with same seed diverged at pixel %d", i)
		}
	}
	for i := range r1.Image.Pix {
		if r1.Image.Pix[i] != r2.Image.Pix[i] {
			t.Fatalf("reruns with same seed produced different pixels")
		}
	}
}

func TestQuantizeLabelsInRange(t *testing.T) {
	img := NewRgba8(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, uint8(x*40), uint8(y*40), uint8(x*y*5), 255)
		}
	}
	res, err := Quantize(img, 3, 15, ColorSpaceLab, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, l := range res.Labels {
		if l < 0 || l >= 3 {
			t.Fatalf("label %d out of [0,3)", l)
		}
	}
}

func TestQuantizeRejectsInvalidArgs(t *testing.T) {
	img := NewRgba8(2, 2)
	rng := rand.New(rand.NewSource(1))
	if _, err := Quantize(img, 0, 10, ColorSpaceRGB, rng); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for k=0")
	}
	if _, err := Quantize(img, 2, 0, ColorSpaceRGB, rng); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for max_iter=0")
	}
	if _, err := Quantize(img, 2, 10, ColorSpace(9), rng); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected INVALID_ARGUMENT for unknown colour space")
	}
}
