package img2num

// binaryMask is a local 0/1 raster used as the input to TraceContours.
// Pixels outside [0,Width)x[0,Height) are implicitly background.
type binaryMask struct {
	pix    []int // 0/1 on input; overwritten with signed border numbers during tracing
	width  int
	height int
}

func newBinaryMask(w, h int) *binaryMask {
	return &binaryMask{pix: make([]int, w*h), width: w, height: h}
}

func (m *binaryMask) at(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

func (m *binaryMask) set(x, y, v int) {
	m.pix[y*m.width+x] = v
}

// MaskFromRegion rasterises r's pixels into a local binary mask sized to
// r's bounding box, returning the mask and the box's top-left offset so
// traced contour points can be translated back to image coordinates.
func MaskFromRegion(r *Region) (mask *binaryMask, offsetX, offsetY int) {
	if len(r.Pixels) == 0 {
		return newBinaryMask(0, 0), 0, 0
	}
	minX, minY := r.Pixels[0].X, r.Pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range r.Pixels {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	w, h := maxX-minX+1, maxY-minY+1
	m := newBinaryMask(w, h)
	for _, p := range r.Pixels {
		m.set(p.X-minX, p.Y-minY, 1)
	}
	return m, minX, minY
}

// clockwise 8-neighbour offsets (dy, dx) starting East, matching the
// orientation used by the Suzuki-Abe border-following procedure.
var cwDirs = [8][2]int{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}

func dirIndex(dy, dx int) int {
	for i, d := range cwDirs {
		if d[0] == dy && d[1] == dx {
			return i
		}
	}
	return 0
}

type borderInfo struct {
	isHole bool
	parent int // border number (NBD) of the parent border, or 0 for none
}

// TraceContours implements the Suzuki-Abe (1985) topological border
// following algorithm: every outer border and hole border in mask is
// traced exactly once, in raster-scan discovery order, with parent
// links reconstructing the containment hierarchy (an outer border's
// parent is the hole or outer border immediately surrounding it).
// Contour points are returned in image coordinates by adding
// (offsetX, offsetY) to the mask-local trace.
func TraceContours(mask *binaryMask, offsetX, offsetY int) []Contour {
	w, h := mask.width, mask.height
	if w == 0 || h == 0 {
		return nil
	}

	nbd := 1
	borders := map[int]borderInfo{1: {isHole: true, parent: 0}}
	var contours []Contour
	nbdToContourIdx := map[int]int{}

	for y := 0; y < h; y++ {
		lnbd := 1
		for x := 0; x < w; x++ {
			fij := mask.at(x, y)
			if fij == 0 {
				continue
			}

			isHole := false
			isNewBorder := false
			var i2, j2 int
			if fij == 1 && mask.at(x-1, y) == 0 {
				nbd++
				i2, j2 = x-1, y
				isNewBorder = true
			} else if fij >= 1 && mask.at(x+1, y) == 0 {
				nbd++
				i2, j2 = x+1, y
				isNewBorder = true
				isHole = true
				if fij > 1 {
					lnbd = fij
				}
			}

			if isNewBorder {
				var parent int
				lnbdInfo, ok := borders[absInt(lnbd)]
				if !ok {
					lnbdInfo = borderInfo{isHole: true, parent: 0}
				}
				if isHole {
					if lnbdInfo.isHole {
						parent = lnbdInfo.parent
					} else {
						parent = absInt(lnbd)
					}
				} else {
					if !lnbdInfo.isHole {
						parent = lnbdInfo.parent
					} else {
						parent = absInt(lnbd)
					}
				}
				borders[nbd] = borderInfo{isHole: isHole, parent: parent}

				pts := traceBorder(mask, x, y, j2, i2, nbd)
				contour := Contour{
					Points:    translatePoints(pts, offsetX, offsetY),
					IsHole:    isHole,
					ParentIdx: -1,
				}
				if parent != 0 {
					if pi, ok := nbdToContourIdx[parent]; ok {
						contour.ParentIdx = pi
					}
				}
				contours = append(contours, contour)
				nbdToContourIdx[nbd] = len(contours) - 1
			}

			cur := mask.at(x, y)
			if cur != 1 {
				lnbd = absInt(cur)
			}
		}
	}

	return contours
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func translatePoints(pts [][2]int, offsetX, offsetY int) []Point2 {
	out := make([]Point2, len(pts))
	for i, p := range pts {
		out[i] = Point2{X: float64(p[0] + offsetX), Y: float64(p[1] + offsetY)}
	}
	return out
}

// traceBorder follows one border starting at pixel (x,y), whose first
// examined (background) neighbour was (bx,by), marking visited pixels
// in mask with ±nbd so later scans skip them, and returns the ordered
// boundary pixel coordinates (mask-local).
func traceBorder(mask *binaryMask, x, y, bx, by, nbd int) [][2]int {
	startDir := dirIndex(by-y, bx-x)

	// 3.1: search counter-clockwise from the background neighbour for
	// the first non-zero pixel around (x,y).
	found := false
	var i1, j1 int
	for k := 1; k <= 8; k++ {
		d := ((startDir-k)%8 + 8) % 8
		nx, ny := x+cwDirs[d][1], y+cwDirs[d][0]
		if mask.at(nx, ny) != 0 {
			i1, j1 = nx, ny
			found = true
			break
		}
	}
	if !found {
		mask.set(x, y, -nbd)
		return [][2]int{{x, y}}
	}

	i2, j2 := i1, j1
	i3, j3 := x, y
	var points [][2]int

	for {
		dFrom := dirIndex(j2-j3, i2-i3)
		var i4, j4 int
		gotNext := false
		firstWasZero := false
		for k := 1; k <= 8; k++ {
			d := (dFrom + k) % 8
			nx, ny := i3+cwDirs[d][1], j3+cwDirs[d][0]
			v := mask.at(nx, ny)
			if k == 1 {
				firstWasZero = v == 0
			}
			if v != 0 {
				i4, j4 = nx, ny
				gotNext = true
				break
			}
		}
		if !gotNext {
			// isolated pixel: its own one-point border.
			mask.set(i3, j3, -nbd)
			points = append(points, [2]int{i3, j3})
			break
		}

		if firstWasZero {
			mask.set(i3, j3, -nbd)
		} else if mask.at(i3, j3) == 1 {
			mask.set(i3, j3, nbd)
		}
		points = append(points, [2]int{i3, j3})

		if i4 == x && j4 == y && i3 == i1 && j3 == j1 {
			break
		}
		i2, j2 = i3, j3
		i3, j3 = i4, j4
	}

	return points
}
