package img2num

import (
	"math"
	"sort"
)

// Graph is the region adjacency graph arena: Regions is indexed by
// region id and never shrinks. A region with Area() == 0 has been
// dissolved into a neighbour and is skipped by the contour, coupling,
// curve-fitting and SVG stages.
type Graph struct {
	Regions      []*Region
	RegionLabels []int32
	Width        int
	Height       int
}

// BuildGraph derives adjacency from a Label result: two regions are
// neighbours if any of their pixels are 4-connected across the region
// boundary. Self-edges never occur since a pixel is never its own
// neighbour under 4-connectivity with a different region id.
func BuildGraph(img *Rgba8, labelled *LabelResult) *Graph {
	w, h := img.Width, img.Height
	g := &Graph{
		Regions:      labelled.Regions,
		RegionLabels: append([]int32(nil), labelled.RegionLabels...),
		Width:        w,
		Height:       h,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := g.RegionLabels[y*w+x]
			if x+1 < w {
				right := g.RegionLabels[y*w+x+1]
				if right != cur {
					g.addEdge(uint32(cur), uint32(right))
				}
			}
			if y+1 < h {
				down := g.RegionLabels[(y+1)*w+x]
				if down != cur {
					g.addEdge(uint32(cur), uint32(down))
				}
			}
		}
	}
	return g
}

func (g *Graph) addEdge(a, b uint32) {
	if a == b {
		return
	}
	g.Regions[a].addNeighbourLocal(b)
	g.Regions[b].addNeighbourLocal(a)
}

func (g *Graph) removeEdge(a, b uint32) {
	g.Regions[a].removeNeighbourLocal(b)
	g.Regions[b].removeNeighbourLocal(a)
}

// MergeSmallRegions dissolves every region whose area is strictly below
// minArea into the neighbour minimising area + 10*colour_distance (a
// bias towards merging into larger, colour-similar neighbours rather
// than whichever neighbour's mean colour happens to be nearest),
// repeating until no region (other than the last one standing) is below
// the threshold. Ties in that key break towards the lower neighbour id,
// for deterministic output independent of map iteration order. Merging
// relabels the absorbed region's pixels in RegionLabels and folds its
// Pixels and Neighbours into the survivor; absorbed regions are left in
// place with Area()==0 rather than removed from the Regions slice, so
// ids stay stable.
func (g *Graph) MergeSmallRegions(minArea int) {
	if minArea <= 0 {
		return
	}
	for {
		victim := g.smallestBelowThreshold(minArea)
		if victim < 0 {
			return
		}
		if g.liveRegionCount() <= 1 {
			return
		}
		target := g.bestMergeTarget(uint32(victim))
		if target < 0 {
			return
		}
		g.mergeInto(uint32(victim), uint32(target))
	}
}

func (g *Graph) liveRegionCount() int {
	n := 0
	for _, r := range g.Regions {
		if r.Area() > 0 {
			n++
		}
	}
	return n
}

// smallestBelowThreshold returns the lowest-id live region under
// minArea, or -1 if none qualifies.
func (g *Graph) smallestBelowThreshold(minArea int) int {
	for _, r := range g.Regions {
		if r.Area() > 0 && r.Area() < minArea {
			return int(r.ID)
		}
	}
	return -1
}

// bestMergeTarget picks victim's neighbour minimising
// area + 10*colour_distance (colour_distance being the non-squared
// Euclidean distance between mean colours), breaking ties by the lower
// id. Returns -1 if victim has no live neighbours (an isolated region
// covering the whole image).
func (g *Graph) bestMergeTarget(victim uint32) int {
	r := g.Regions[victim]
	vr, vg, vb := r.MeanColor()
	ids := make([]uint32, 0, len(r.Neighbours))
	for id := range r.Neighbours {
		if g.Regions[id].Area() > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return -1
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	mergeKey := func(id uint32) float64 {
		cr, cg, cb := g.Regions[id].MeanColor()
		return float64(g.Regions[id].Area()) + 10*math.Sqrt(colourDist3(vr, vg, vb, cr, cg, cb))
	}

	best := ids[0]
	bestKey := mergeKey(best)
	for _, id := range ids[1:] {
		k := mergeKey(id)
		if k < bestKey {
			bestKey = k
			best = id
		}
	}
	return int(best)
}

// colourDist3 returns the squared Euclidean distance between two mean
// colours; callers needing the true (non-squared) distance apply
// math.Sqrt themselves.
func colourDist3(r, gc, b, r2, g2, b2 float64) float64 {
	dr := r - r2
	dg := gc - g2
	db := b - b2
	return dr*dr + dg*dg + db*db
}

// mergeInto absorbs victim into target: relabels pixels, appends pixel
// data, rewires neighbour edges, and empties the victim.
func (g *Graph) mergeInto(victim, target uint32) {
	v := g.Regions[victim]
	t := g.Regions[target]

	for _, p := range v.Pixels {
		g.RegionLabels[p.Y*g.Width+p.X] = int32(target)
	}
	t.Pixels = append(t.Pixels, v.Pixels...)
	t.meanValid = false
	t.centroidValid = false

	for nb := range v.Neighbours {
		if nb == target {
			continue
		}
		g.addEdge(target, nb)
	}
	for nb := range v.Neighbours {
		g.removeNeighbourLocal(nb, victim)
	}
	g.removeEdge(victim, target)
	v.Pixels = nil
	v.Neighbours = make(map[uint32]struct{})
}

func (g *Graph) removeNeighbourLocal(id, drop uint32) {
	g.Regions[id].removeNeighbourLocal(drop)
}
