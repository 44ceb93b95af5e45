package img2num

import "math"

// complexBuffer is a buffer of float64 complex numbers split into re/im planes
// rather than Go's builtin complex128, so the in-place bit-reversal and
// butterfly loops below read as a direct transliteration of the
// Cooley-Tukey recurrence over two parallel float slices.
type complexBuffer struct {
	re []float64
	im []float64
}

func newComplexBuffer(n int) *complexBuffer {
	return &complexBuffer{re: make([]float64, n), im: make([]float64, n)}
}

// IsPowerOfTwo reports whether n is a power of two (n > 0).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo rounds n up to the next power of two. NextPowerOfTwo(0) is 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// bitReverse permutes buf in place so that buf[i] and buf[reverse(i)] are
// swapped, where reverse(i) reverses the low log2(n) bits of i.
func bitReverse(buf *complexBuffer) {
	n := len(buf.re)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			buf.re[i], buf.re[j] = buf.re[j], buf.re[i]
			buf.im[i], buf.im[j] = buf.im[j], buf.im[i]
		}
	}
}

// fft1D runs the iterative Danielson-Lanczos radix-2 FFT in place. n must
// be a power of two. sign is -1 for the forward transform, +1 for the
// inverse (which this function does NOT normalise by n -- callers divide
// by n themselves ("inverse divides every output by N").
func fft1D(buf *complexBuffer, sign float64) {
	n := len(buf.re)
	if n <= 1 {
		return
	}
	bitReverse(buf)
	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		theta := sign * 2 * math.Pi / float64(length)
		wLenRe, wLenIm := math.Cos(theta), math.Sin(theta)
		for start := 0; start < n; start += length {
			wRe, wIm := 1.0, 0.0
			for j := 0; j < half; j++ {
				uRe, uIm := buf.re[start+j], buf.im[start+j]
				vRe := buf.re[start+j+half]*wRe - buf.im[start+j+half]*wIm
				vIm := buf.re[start+j+half]*wIm + buf.im[start+j+half]*wRe

				buf.re[start+j] = uRe + vRe
				buf.im[start+j] = uIm + vIm
				buf.re[start+j+half] = uRe - vRe
				buf.im[start+j+half] = uIm - vIm

				wRe, wIm = wRe*wLenRe-wIm*wLenIm, wRe*wLenIm+wIm*wLenRe
			}
		}
	}
}

// FFT1D computes the forward 1D DFT of a real input, zero-padded to the
// next power of two. Returns the padded complex spectrum.
func FFT1D(x []float64) *complexBuffer {
	n := NextPowerOfTwo(len(x))
	buf := newComplexBuffer(n)
	copy(buf.re, x)
	fft1D(buf, -1)
	return buf
}

// IFFT1D computes the inverse 1D DFT, normalising by the (padded) length.
func IFFT1D(buf *complexBuffer) *complexBuffer {
	n := len(buf.re)
	out := &complexBuffer{re: append([]float64(nil), buf.re...), im: append([]float64(nil), buf.im...)}
	fft1D(out, 1)
	inv := 1.0 / float64(n)
	for i := range out.re {
		out.re[i] *= inv
		out.im[i] *= inv
	}
	return out
}

// fft2D pads width/height to the next power of two independently, then
// runs FFT over every row followed by every column. sign selects
// forward (-1) or inverse (+1, including the 1/(W*H) normalisation).
func fft2D(re, im []float64, width, height int, sign float64) (outRe, outIm []float64, w, h int) {
	w = NextPowerOfTwo(width)
	h = NextPowerOfTwo(height)
	outRe = make([]float64, w*h)
	outIm = make([]float64, w*h)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			outRe[y*w+x] = re[y*width+x]
			if im != nil {
				outIm[y*w+x] = im[y*width+x]
			}
		}
	}

	row := newComplexBuffer(w)
	for y := 0; y < h; y++ {
		copy(row.re, outRe[y*w:(y+1)*w])
		copy(row.im, outIm[y*w:(y+1)*w])
		fft1D(row, sign)
		copy(outRe[y*w:(y+1)*w], row.re)
		copy(outIm[y*w:(y+1)*w], row.im)
	}

	col := newComplexBuffer(h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col.re[y] = outRe[y*w+x]
			col.im[y] = outIm[y*w+x]
		}
		fft1D(col, sign)
		for y := 0; y < h; y++ {
			outRe[y*w+x] = col.re[y]
			outIm[y*w+x] = col.im[y]
		}
	}

	if sign > 0 {
		inv := 1.0 / float64(w*h)
		for i := range outRe {
			outRe[i] *= inv
			outIm[i] *= inv
		}
	}
	return
}

// FFT2D computes the forward 2D DFT of a real width x height buffer,
// zero-padding each dimension to the next power of two.
func FFT2D(real []float64, width, height int) (re, im []float64, w, h int) {
	return fft2D(real, nil, width, height, -1)
}

// IFFT2D computes the inverse 2D DFT, normalised by W*H.
func IFFT2D(re, im []float64, width, height int) (outRe, outIm []float64, w, h int) {
	return fft2D(re, im, width, height, 1)
}
