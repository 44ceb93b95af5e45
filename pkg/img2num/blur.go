package img2num

import "math"

// GaussianBlurFFT applies a frequency-domain Gaussian blur to img in
// place. Alpha is untouched. A sigma <= 0
// or a zero dimension is a documented no-op, not an error.
func GaussianBlurFFT(img *Rgba8, sigma float64) error {
	if img == nil {
		return nil
	}
	if sigma <= 0 || img.Width == 0 || img.Height == 0 {
		return nil
	}
	if err := img.Validate(); err != nil {
		return err
	}

	w := img.Width
	h := img.Height
	pw := NextPowerOfTwo(w)
	ph := NextPowerOfTwo(h)

	gain := make([]float64, pw*ph)
	twoPi2Sigma2 := 2 * math.Pi * math.Pi * sigma * sigma
	for ky := 0; ky < ph; ky++ {
		fy := freqCoord(ky, ph)
		for kx := 0; kx < pw; kx++ {
			fx := freqCoord(kx, pw)
			gain[ky*pw+kx] = math.Exp(-twoPi2Sigma2 * (fx*fx + fy*fy))
		}
	}

	channel := make([]float64, w*h)
	for ch := 0; ch < 3; ch++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				channel[y*w+x] = float64(img.Pix[img.Offset(x, y)+ch])
			}
		}
		re, im, rw, rh := FFT2D(channel, w, h)
		for i := range re {
			re[i] *= gain[i]
			im[i] *= gain[i]
		}
		outRe, _, _, _ := IFFT2D(re, im, rw, rh)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := outRe[y*rw+x]
				img.Pix[img.Offset(x, y)+ch] = roundToUint8(v)
			}
		}
	}
	return nil
}

// freqCoord implements the "DC at corner" frequency convention:
// f(k) = k/dim for k <= dim/2, else (k-dim)/dim.
func freqCoord(k, dim int) float64 {
	if k <= dim/2 {
		return float64(k) / float64(dim)
	}
	return float64(k-dim) / float64(dim)
}
