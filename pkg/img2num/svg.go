package img2num

import (
	"fmt"
	"strings"
)

// SVGOptions controls labels_to_svg output.
type SVGOptions struct {
	// DrawContourBorders additionally strokes every region's outline,
	// independent of its fill, so printed pages show cut lines.
	DrawContourBorders bool
	StrokeColor        string
	StrokeWidth        float64
}

// RenderSVG serialises a graph's live regions to an SVG document: one
// <path> per region, filled with the region's mean colour and using the
// even-odd fill rule so holes show through to whatever is painted
// beneath. Dissolved regions (Area()==0, folded away by
// Graph.MergeSmallRegions) are skipped.
func RenderSVG(g *Graph, width, height int, opts SVGOptions) (string, error) {
	if g == nil {
		return "", ErrInvalidArgumentf("svg: nil graph")
	}
	if width <= 0 || height <= 0 {
		return "", ErrInvalidArgumentf("svg: invalid dimensions %dx%d", width, height)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	b.WriteByte('\n')

	for _, r := range g.Regions {
		if r.Area() == 0 {
			continue
		}
		d := pathDataForRegion(r)
		if d == "" {
			continue
		}
		rr, gg, bb := r.MeanColor()
		fill := fmt.Sprintf("#%02x%02x%02x", roundToUint8(rr), roundToUint8(gg), roundToUint8(bb))

		fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-rule="evenodd"`, d, fill)
		if opts.DrawContourBorders {
			stroke := opts.StrokeColor
			if stroke == "" {
				stroke = "#000000"
			}
			width := opts.StrokeWidth
			if width <= 0 {
				width = 1
			}
			fmt.Fprintf(&b, ` stroke="%s" stroke-width="%g"`, stroke, width)
		}
		b.WriteString("/>\n")
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// pathDataForRegion emits one "d" attribute covering all of a region's
// contours (its outer border and every hole), each as its own closed
// subpath built from the region's fitted quadratic Béziers when
// present, falling back to straight line segments between the raw
// contour points otherwise.
func pathDataForRegion(r *Region) string {
	var b strings.Builder
	if len(r.Curves) > 0 {
		for _, curves := range r.Curves {
			if len(curves) == 0 {
				continue
			}
			fmt.Fprintf(&b, "M %s ", fmtPoint(curves[0].P0))
			for _, c := range curves {
				fmt.Fprintf(&b, "Q %s %s ", fmtPoint(c.P1), fmtPoint(c.P2))
			}
			b.WriteString("Z ")
		}
		return strings.TrimSpace(b.String())
	}

	for _, c := range r.Contours {
		if len(c.Points) == 0 {
			continue
		}
		fmt.Fprintf(&b, "M %s ", fmtPoint(c.Points[0]))
		for _, p := range c.Points[1:] {
			fmt.Fprintf(&b, "L %s ", fmtPoint(p))
		}
		b.WriteString("Z ")
	}
	return strings.TrimSpace(b.String())
}

func fmtPoint(p Point2) string {
	return fmt.Sprintf("%g %g", p.X, p.Y)
}
