package img2num

import (
	"math"
	"math/rand"
	"testing"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 17: 32, 1024: 1024, 1025: 2048}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, 3, 5, 1023} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestFFT1DRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, 100)
	for i := range x {
		x[i] = rng.Float64()*200 - 100
	}
	spec := FFT1D(x)
	back := IFFT1D(spec)
	for i, v := range x {
		if math.Abs(back.re[i]-v) > 1e-9 {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, back.re[i], v)
		}
	}
}

func TestFFT2DRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const w, h = 48, 33
	in := make([]float64, w*h)
	for i := range in {
		in[i] = rng.Float64()*200 - 100
	}
	re, im, pw, ph := FFT2D(in, w, h)
	backRe, _, _, _ := IFFT2D(re, im, pw, ph)
	maxDiff := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Abs(backRe[y*pw+x] - in[y*w+x])
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	if maxDiff >= 1e-9 {
		t.Fatalf("max diff %v exceeds 1e-9", maxDiff)
	}
}
