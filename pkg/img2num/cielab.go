package img2num

import "math"

// D65 reference white, per the standard sRGB->XYZ->Lab pipeline.
const (
	whiteXn = 0.95047
	whiteYn = 1.00000
	whiteZn = 1.08883
)

// sRGB -> linear-light gamma expansion.
func srgbChannelToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linear-light -> sRGB gamma compression (inverse of srgbChannelToLinear).
func linearToSrgbChannel(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// sRGB D65 -> XYZ matrix (IEC 61966-2-1).
func linearRgbToXyz(r, g, b float64) (x, y, z float64) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return
}

// XYZ -> sRGB D65 linear (analytic inverse of linearRgbToXyz).
func xyzToLinearRgb(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

const labDelta = 6.0 / 29.0

// CIE f(t) non-linearity used going XYZ -> Lab.
func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

// inverse of labF, used going Lab -> XYZ.
func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

func clamp01f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SrgbToLab converts one 8-bit sRGB pixel to CIELAB D65. Alpha is
// copied through unchanged into the returned alpha. L is clamped to
// [0, 100]; a and b are not clamped.
func SrgbToLab(r, g, b, a uint8) (l, la, lb float64, outA uint8) {
	rf := clamp01f(float64(r) / 255.0)
	gf := clamp01f(float64(g) / 255.0)
	bf := clamp01f(float64(b) / 255.0)

	rl := srgbChannelToLinear(rf)
	gl := srgbChannelToLinear(gf)
	bl := srgbChannelToLinear(bf)

	x, y, z := linearRgbToXyz(rl, gl, bl)
	xr := x / whiteXn
	yr := y / whiteYn
	zr := z / whiteZn

	fx := labF(xr)
	fy := labF(yr)
	fz := labF(zr)

	l = 116*fy - 16
	if l < 0 {
		l = 0
	}
	if l > 100 {
		l = 100
	}
	la = 500 * (fx - fy)
	lb = 200 * (fy - fz)
	outA = a
	return
}

// LabToSrgb is the analytic inverse of SrgbToLab, clamping out-of-gamut
// linear RGB to [0, 1] before re-applying sRGB companding.
func LabToSrgb(l, a, b float64, alpha uint8) (r, g, bch, outA uint8) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	xr := labFInv(fx)
	yr := labFInv(fy)
	zr := labFInv(fz)

	x := xr * whiteXn
	y := yr * whiteYn
	z := zr * whiteZn

	rl, gl, bl := xyzToLinearRgb(x, y, z)
	rl = clamp01f(rl)
	gl = clamp01f(gl)
	bl = clamp01f(bl)

	rf := linearToSrgbChannel(rl)
	gf := linearToSrgbChannel(gl)
	bf := linearToSrgbChannel(bl)

	r = roundToUint8(rf * 255)
	g = roundToUint8(gf * 255)
	bch = roundToUint8(bf * 255)
	outA = alpha
	return
}

func roundToUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// RgbaToLaba converts a whole Rgba8 buffer to Labaf, per-pixel, alpha
// preserved verbatim (as a float copy of the 8-bit value, matching the LABAf
// layout where alpha stays in [0, 255]).
func RgbaToLaba(src *Rgba8) (*Labaf, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	dst := NewLabaf(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			r, g, b, a := src.At(x, y)
			l, la, lb, _ := SrgbToLab(r, g, b, a)
			dst.Set(x, y, float32(l), float32(la), float32(lb), float32(a))
		}
	}
	return dst, nil
}

// LabaToRgba converts a whole Labaf buffer back to Rgba8.
func LabaToRgba(src *Labaf) *Rgba8 {
	dst := NewRgba8(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			l, a, b, alpha := src.At(x, y)
			r, g, bch, _ := LabToSrgb(float64(l), float64(a), float64(b), uint8(alpha))
			dst.Set(x, y, r, g, bch, uint8(alpha))
		}
	}
	return dst
}
