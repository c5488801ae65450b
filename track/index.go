package track

import (
	"math"

	"github.com/npillmayer/racetrack"
	"gonum.org/v1/gonum/floats"
)

// Index answers nearest-centerline-sample queries for a position.
// Implementations are built once at model construction and must be safe
// for concurrent readers. Exact-distance ties must resolve to the lowest
// sample index, matching the linear scan.
type Index interface {
	Nearest(p racetrack.Pair) int
}

// LinearIndex is the reference nearest-sample search: a brute-force
// distance computation against every centerline sample. The sample count
// is bounded by the discretization resolution, so a full scan stays
// cheap enough outside of high-frequency control loops.
type LinearIndex struct {
	centers []racetrack.Pair
}

// NewLinearIndex wraps the centerline samples in a LinearIndex.
func NewLinearIndex(centers []racetrack.Pair) Index {
	return &LinearIndex{centers: centers}
}

// Nearest returns the index of the sample closest to p, the first such
// index on ties.
func (ix *LinearIndex) Nearest(p racetrack.Pair) int {
	d2 := make([]float64, len(ix.centers))
	px, py := p.F()
	for i, c := range ix.centers {
		dx := px - c.X()
		dy := py - c.Y()
		d2[i] = dx*dx + dy*dy
	}
	return floats.MinIdx(d2)
}

// GridIndex buckets the centerline samples into a uniform cell grid and
// answers nearest queries by scanning outward in cell rings. Drop-in
// performance substitute for LinearIndex with identical tie-breaking.
type GridIndex struct {
	centers []racetrack.Pair
	cell    float64
	minX    float64
	minY    float64
	nx, ny  int
	buckets map[gridCell][]int
}

type gridCell struct {
	x, y int
}

// GridIndexer returns an IndexMaker building a GridIndex with the given
// cell size. A cell size in the order of the track width works well.
func GridIndexer(cell float64) IndexMaker {
	return func(centers []racetrack.Pair) Index {
		return newGridIndex(centers, cell)
	}
}

func newGridIndex(centers []racetrack.Pair, cell float64) *GridIndex {
	if cell <= 0 {
		cell = 1
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range centers {
		minX = math.Min(minX, c.X())
		minY = math.Min(minY, c.Y())
		maxX = math.Max(maxX, c.X())
		maxY = math.Max(maxY, c.Y())
	}
	ix := &GridIndex{
		centers: centers,
		cell:    cell,
		minX:    minX,
		minY:    minY,
		nx:      int(math.Floor((maxX-minX)/cell)) + 1,
		ny:      int(math.Floor((maxY-minY)/cell)) + 1,
		buckets: make(map[gridCell][]int),
	}
	for i, c := range centers {
		ix.buckets[ix.cellOf(c)] = append(ix.buckets[ix.cellOf(c)], i)
	}
	return ix
}

func (ix *GridIndex) cellOf(p racetrack.Pair) gridCell {
	return gridCell{
		x: int(math.Floor((p.X() - ix.minX) / ix.cell)),
		y: int(math.Floor((p.Y() - ix.minY) / ix.cell)),
	}
}

// Nearest returns the index of the sample closest to p, the first such
// index on ties. Cells are visited in growing Chebyshev rings around p's
// cell; any point in a ring-r cell is at least (r-1) cell sizes away, so
// the scan stops as soon as no farther ring can beat the best candidate.
func (ix *GridIndex) Nearest(p racetrack.Pair) int {
	at := ix.cellOf(p)
	best := -1
	bestD2 := math.Inf(1)
	px, py := p.F()
	rmax := ix.maxRing(at)
	for r := 0; r <= rmax; r++ {
		if best >= 0 {
			reach := float64(r-1) * ix.cell
			if reach > 0 && reach*reach > bestD2 {
				break
			}
		}
		ix.scanRing(at, r, func(i int) {
			c := ix.centers[i]
			dx := px - c.X()
			dy := py - c.Y()
			d2 := dx*dx + dy*dy
			if d2 < bestD2 || (d2 == bestD2 && i < best) {
				best, bestD2 = i, d2
			}
		})
	}
	return best
}

// maxRing is the Chebyshev distance from cell at to the farthest grid cell.
func (ix *GridIndex) maxRing(at gridCell) int {
	mx := max(at.x, ix.nx-1-at.x)
	my := max(at.y, ix.ny-1-at.y)
	return max(mx, my)
}

// scanRing visits all sample indices bucketed in cells at Chebyshev
// distance r from cell at.
func (ix *GridIndex) scanRing(at gridCell, r int, visit func(int)) {
	if r == 0 {
		for _, i := range ix.buckets[at] {
			visit(i)
		}
		return
	}
	for x := at.x - r; x <= at.x+r; x++ {
		for _, i := range ix.buckets[gridCell{x: x, y: at.y - r}] {
			visit(i)
		}
		for _, i := range ix.buckets[gridCell{x: x, y: at.y + r}] {
			visit(i)
		}
	}
	for y := at.y - r + 1; y <= at.y+r-1; y++ {
		for _, i := range ix.buckets[gridCell{x: at.x - r, y: y}] {
			visit(i)
		}
		for _, i := range ix.buckets[gridCell{x: at.x + r, y: y}] {
			visit(i)
		}
	}
}
