package img2num

import "math"

// ColorSpace selects the metric space an operation works in: CIELAB (0)
// or RGB (1).
type ColorSpace int

const (
	ColorSpaceLab ColorSpace = 0
	ColorSpaceRGB ColorSpace = 1
)

// maxRgbDistSq is the maximum squared Euclidean distance between two
// 8-bit RGB triples: 3 * 255^2 = 195075.
const maxRgbDistSq = 195075

// BilateralFilter applies an edge-preserving bilateral smoothing pass to
// img in place. colourSpace other than Lab or RGB, or non-positive
// sigmas, are a documented no-op.
func BilateralFilter(img *Rgba8, sigmaSpatial, sigmaRange float64, colourSpace ColorSpace) error {
	if img == nil {
		return nil
	}
	if sigmaSpatial <= 0 || sigmaRange <= 0 {
		return nil
	}
	if colourSpace != ColorSpaceLab && colourSpace != ColorSpaceRGB {
		return nil
	}
	if err := img.Validate(); err != nil {
		return err
	}

	radius := int(math.Ceil(3 * sigmaSpatial))
	if radius > 50 {
		radius = 50
	}
	size := 2*radius + 1
	spatialWeights := make([]float64, size*size)
	twoSigmaS2 := 2 * sigmaSpatial * sigmaSpatial
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatialWeights[(dy+radius)*size+(dx+radius)] = math.Exp(-d2 / twoSigmaS2)
		}
	}

	if colourSpace == ColorSpaceRGB {
		bilateralRGB(img, radius, size, spatialWeights, sigmaRange)
		return nil
	}
	bilateralLab(img, radius, size, spatialWeights, sigmaRange)
	return nil
}

// bilateralRGB implements the RGB-space path: range weight is a Gaussian of
// the *distance* (not squared distance) in 8-bit RGB space, per the
// the resolved design decision:
// exp(-sqrt(dist^2)/(2*sigma_r^2)).
func bilateralRGB(img *Rgba8, radius, size int, spatialWeights []float64, sigmaRange float64) {
	rangeLUT := make([]float64, maxRgbDistSq+1)
	twoSigmaR2 := 2 * sigmaRange * sigmaRange
	for d2 := 0; d2 <= maxRgbDistSq; d2++ {
		rangeLUT[d2] = math.Exp(-math.Sqrt(float64(d2)) / twoSigmaR2)
	}

	w, h := img.Width, img.Height
	src := img.Clone()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb, ca := src.At(x, y)
			var sumR, sumG, sumB, sumW float64
			for dy := -radius; dy <= radius; dy++ {
				ny := clamp(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					nx := clamp(x+dx, 0, w-1)
					nr, ng, nb, _ := src.At(nx, ny)
					dr := int(nr) - int(cr)
					dg := int(ng) - int(cg)
					db := int(nb) - int(cb)
					d2 := dr*dr + dg*dg + db*db
					ws := spatialWeights[(dy+radius)*size+(dx+radius)]
					wr := ws * rangeLUT[d2]
					sumR += float64(nr) * wr
					sumG += float64(ng) * wr
					sumB += float64(nb) * wr
					sumW += wr
				}
			}
			if sumW == 0 {
				sumW = 1
			}
			img.Set(x, y, roundToUint8(sumR/sumW), roundToUint8(sumG/sumW), roundToUint8(sumB/sumW), ca)
		}
	}
}

// bilateralLab implements the CIELAB-space path: the whole image is
// converted to Labaf, the range metric is Euclidean distance in (L, a, b),
// and the averaged result is converted back to 8-bit sRGB.
func bilateralLab(img *Rgba8, radius, size int, spatialWeights []float64, sigmaRange float64) {
	lab, _ := RgbaToLaba(img)
	w, h := img.Width, img.Height
	twoSigmaR2 := 2 * sigmaRange * sigmaRange
	out := NewLabaf(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cl, ca, cb, calpha := lab.At(x, y)
			var sumL, sumA, sumB, sumW float64
			for dy := -radius; dy <= radius; dy++ {
				ny := clamp(y+dy, 0, h-1)
				for dx := -radius; dx <= radius; dx++ {
					nx := clamp(x+dx, 0, w-1)
					nl, na, nb, _ := lab.At(nx, ny)
					dl := float64(nl - cl)
					da := float64(na - ca)
					db := float64(nb - cb)
					dist := math.Sqrt(dl*dl + da*da + db*db)
					ws := spatialWeights[(dy+radius)*size+(dx+radius)]
					wr := ws * math.Exp(-dist*dist/twoSigmaR2)
					sumL += float64(nl) * wr
					sumA += float64(na) * wr
					sumB += float64(nb) * wr
					sumW += wr
				}
			}
			if sumW == 0 {
				sumW = 1
			}
			out.Set(x, y, float32(sumL/sumW), float32(sumA/sumW), float32(sumB/sumW), calpha)
		}
	}

	result := LabaToRgba(out)
	copy(img.Pix, result.Pix)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
