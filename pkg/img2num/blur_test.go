package img2num

import "testing"

func TestGaussianBlurFFTConstantImageUnchanged(t *testing.T) {
	img := NewRgba8(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, 127, 127, 127, 255)
		}
	}
	if err := GaussianBlurFFT(img, 1.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := img.At(x, y)
			if r != 127 || g != 127 || b != 127 || a != 255 {
				t.Fatalf("pixel (%d,%d) changed: %d %d %d %d", x, y, r, g, b, a)
			}
		}
	}
}

func TestGaussianBlurFFTNoOpOnNonPositiveSigma(t *testing.T) {
	img := NewRgba8(2, 2)
	img.Set(0, 0, 10, 20, 30, 255)
	before := img.Clone()
	if err := GaussianBlurFFT(img, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range img.Pix {
		if img.Pix[i] != before.Pix[i] {
			t.Fatalf("sigma<=0 should be a no-op")
		}
	}
}

func TestGaussianBlurFFTPreservesMean(t *testing.T) {
	img := NewRgba8(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8((x*16 + y*8) % 256)
			img.Set(x, y, v, v, v, 255)
		}
	}
	var sumBefore, sumAfter int
	for _, p := range img.Pix {
		sumBefore += int(p)
	}
	if err := GaussianBlurFFT(img, 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range img.Pix {
		sumAfter += int(p)
	}
	meanBefore := float64(sumBefore) / float64(len(img.Pix))
	meanAfter := float64(sumAfter) / float64(len(img.Pix))
	if d := meanBefore - meanAfter; d > 1 || d < -1 {
		t.Fatalf("mean shifted too much: before=%v after=%v", meanBefore, meanAfter)
	}
}
