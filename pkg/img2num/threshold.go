package img2num

// ThresholdImage quantises every 8-bit RGB channel into n buckets of
// width step = floor(255/n), replacing each value by its bucket's
// midpoint. Alpha is untouched. A fixed-bucket posterize variant using
// an exact bucket-midpoint rule rather than a round-to-nearest-step
// rule.
func ThresholdImage(img *Rgba8, n int) error {
	if img == nil {
		return nil
	}
	if n <= 0 {
		return ErrInvalidArgumentf("threshold_image: n must be positive, got %d", n)
	}
	if err := img.Validate(); err != nil {
		return err
	}
	step := 255 / n
	if step == 0 {
		// n >= 256: every value is its own bucket, nothing to collapse.
		return nil
	}
	lut := buildThresholdLUT(step)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = lut[img.Pix[i]]
		img.Pix[i+1] = lut[img.Pix[i+1]]
		img.Pix[i+2] = lut[img.Pix[i+2]]
	}
	return nil
}

// buildThresholdLUT implements quantise(v, step): the bucket containing v
// is floor(v/step), and the output is bucket*step + step/2, except that
// a bucket whose midpoint would overflow 256 falls back to the previous
// bucket's midpoint.
func buildThresholdLUT(step int) [256]uint8 {
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		bucket := v / step
		mid := bucket*step + step/2
		if mid >= 256 && bucket > 0 {
			mid = (bucket-1)*step + step/2
		}
		if mid > 255 {
			mid = 255
		}
		lut[v] = uint8(mid)
	}
	return lut
}

// BlackThresholdImage sets any pixel whose R, G and B are each strictly
// less than n to pure black. Alpha is untouched on all pixels. A global
// per-channel comparison rather than a local-mean window.
func BlackThresholdImage(img *Rgba8, n int) error {
	if img == nil {
		return nil
	}
	if n <= 0 {
		return ErrInvalidArgumentf("black_threshold_image: n must be positive, got %d", n)
	}
	if err := img.Validate(); err != nil {
		return err
	}
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
		if int(r) < n && int(g) < n && int(b) < n {
			img.Pix[i] = 0
			img.Pix[i+1] = 0
			img.Pix[i+2] = 0
		}
	}
	return nil
}
