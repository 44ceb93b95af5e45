package img2num

import (
	"image"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// RasterizePreview flattens a region's fitted quadratic Béziers back to
// a coverage mask the same size as the source image, using
// golang.org/x/image/vector's scanline rasterizer. It exists so the
// Bézier-fitting and contour stages can be checked against the original
// flood-fill membership without round-tripping through an SVG renderer:
// a good fit should cover close to the same pixels as r.Pixels.
func RasterizePreview(r *Region, width, height int) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidArgumentf("raster_preview: invalid dimensions %dx%d", width, height)
	}
	rast := vector.NewRasterizer(width, height)

	for _, curves := range r.Curves {
		if len(curves) == 0 {
			continue
		}
		rast.MoveTo(f32Vec(curves[0].P0))
		for _, c := range curves {
			rast.QuadTo(f32Vec(c.P1), f32Vec(c.P2))
		}
		rast.ClosePath()
	}
	// Fall back to the raw traced contours when no curves were fitted
	// yet, so the preview is usable earlier in the pipeline too.
	if len(r.Curves) == 0 {
		for _, c := range r.Contours {
			if len(c.Points) == 0 {
				continue
			}
			rast.MoveTo(f32Vec(c.Points[0]))
			for _, p := range c.Points[1:] {
				rast.LineTo(f32Vec(p))
			}
			rast.ClosePath()
		}
	}

	out := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(out, out.Bounds(), image.Opaque, image.Point{})
	return out, nil
}

func f32Vec(p Point2) f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}
