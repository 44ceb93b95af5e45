package img2num

import "math/rand"

// KMeansResult is the output of Quantize: a recoloured image (every
// pixel replaced by its centroid's colour) and the matching label array
//
type KMeansResult struct {
	Image  *Rgba8
	Labels []int32
}

// point3 is a generic 3-channel sample: either (R,G,B) or (L,a,b)
// depending on the requested colour space.
type point3 struct{ c0, c1, c2 float64 }

func distSq3(a, b point3) float64 {
	d0 := a.c0 - b.c0
	d1 := a.c1 - b.c1
	d2 := a.c2 - b.c2
	return d0*d0 + d1*d1 + d2*d2
}

// Quantize runs k-means++ seeding followed by Lloyd iteration in
// either CIELAB or RGB space. Per the resolved design decision,
// the CIELAB path seeds, assigns and updates entirely in LAB space and
// only converts centroids back to sRGB for the final recoloured output
// and labels; the RGB path never touches LAB. rng must be non-nil for
// reproducible output; callers get byte-identical reruns by reusing the
// same seed.
func Quantize(img *Rgba8, k, maxIter int, colourSpace ColorSpace, rng *rand.Rand) (*KMeansResult, error) {
	if img == nil {
		return nil, ErrInvalidArgumentf("kmeans: nil image")
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrInvalidArgumentf("kmeans: k must be positive, got %d", k)
	}
	if maxIter <= 0 {
		return nil, ErrInvalidArgumentf("kmeans: max_iter must be positive, got %d", maxIter)
	}
	if colourSpace != ColorSpaceLab && colourSpace != ColorSpaceRGB {
		return nil, ErrInvalidArgumentf("kmeans: unknown colour space %d", colourSpace)
	}
	if rng == nil {
		return nil, ErrInvalidArgumentf("kmeans: rng must not be nil")
	}

	n := img.Width * img.Height
	points := make([]point3, n)
	alphas := make([]uint8, n)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := y*img.Width + x
			r, g, b, a := img.At(x, y)
			alphas[idx] = a
			if colourSpace == ColorSpaceRGB {
				points[idx] = point3{float64(r), float64(g), float64(b)}
			} else {
				l, la, lb, _ := SrgbToLab(r, g, b, a)
				points[idx] = point3{l, la, lb}
			}
		}
	}

	centroids := kmeansPlusPlusInit(points, k, rng)
	labels := make([]int32, n)
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestD := distSq3(p, centroids[0])
			for c := 1; c < k; c++ {
				d := distSq3(p, centroids[c])
				if d < bestD {
					bestD = d
					best = c
				}
			}
			if labels[i] != int32(best) {
				labels[i] = int32(best)
				changed = true
			}
		}

		sums := make([]point3, k)
		counts := make([]int, k)
		for i, p := range points {
			c := labels[i]
			sums[c].c0 += p.c0
			sums[c].c1 += p.c1
			sums[c].c2 += p.c2
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// dead centroid policy: keep the previous centroid unchanged.
				continue
			}
			centroids[c] = point3{
				sums[c].c0 / float64(counts[c]),
				sums[c].c1 / float64(counts[c]),
				sums[c].c2 / float64(counts[c]),
			}
		}

		if !changed {
			break
		}
	}

	out := NewRgba8(img.Width, img.Height)
	centroidColors := make([][3]uint8, k)
	for c := 0; c < k; c++ {
		if colourSpace == ColorSpaceRGB {
			centroidColors[c] = [3]uint8{roundToUint8(centroids[c].c0), roundToUint8(centroids[c].c1), roundToUint8(centroids[c].c2)}
		} else {
			r, g, b, _ := LabToSrgb(centroids[c].c0, centroids[c].c1, centroids[c].c2, 255)
			centroidColors[c] = [3]uint8{r, g, b}
		}
	}
	for i := 0; i < n; i++ {
		col := centroidColors[labels[i]]
		x := i % img.Width
		y := i / img.Width
		out.Set(x, y, col[0], col[1], col[2], alphas[i])
	}

	return &KMeansResult{Image: out, Labels: labels}, nil
}

// kmeansPlusPlusInit implements k-means++ seeding: the first centroid is
// chosen uniformly, and every subsequent centroid is drawn with
// probability proportional to its D(x)^2 distance to the nearest
// already-chosen centroid.
func kmeansPlusPlusInit(points []point3, k int, rng *rand.Rand) []point3 {
	n := len(points)
	centroids := make([]point3, 0, k)
	first := points[rng.Intn(n)]
	centroids = append(centroids, first)

	d := make([]float64, n)
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			best := distSq3(p, centroids[0])
			for _, c := range centroids[1:] {
				if dd := distSq3(p, c); dd < best {
					best = dd
				}
			}
			d[i] = best
			total += best
		}
		if total == 0 {
			// all remaining points coincide with a chosen centroid; pick
			// arbitrarily to still reach k centroids.
			centroids = append(centroids, points[rng.Intn(n)])
			continue
		}
		target := rng.Float64() * total
		acc := 0.0
		chosen := n - 1
		for i, v := range d {
			acc += v
			if acc >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}
	return centroids
}
