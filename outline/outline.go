// Package outline turns boundary sample polylines into polygons for
// display and diagnostics. The drivable area of a course becomes a
// polyclip polygon: a single ribbon contour for point-to-point courses,
// an outer ring with an infield hole for closed loops.
//
// Outlines are a rendering collaborator only. Track semantics (arc
// length, localization, deviation) never consult them.
package outline

import (
	"errors"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/course"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to a tracer with key 'outline'.
func L() tracing.Trace {
	return tracing.Select("outline")
}

// ErrNoSamples indicates a nil or empty boundary sample set.
var ErrNoSamples = errors.New("no boundary samples to outline")

// Closed is a predicate: do the boundary samples wrap around onto their
// own start? The course is considered a closed loop when first and last
// centerline samples are closer together than half the track width.
func Closed(s *course.Samples) bool {
	if s == nil || s.N() < 2 {
		return false
	}
	first := (s.Left[0] + s.Right[0]).Scaled(0.5)
	last := (s.Left[s.N()-1] + s.Right[s.N()-1]).Scaled(0.5)
	return first.Dist(last) <= s.Width/2
}

// Ribbon builds the drivable region of the sampled course. For a closed
// loop the region is the boolean difference of the outer boundary ring
// and the infield ring, so the result carries the infield as a hole
// contour. For an open course it is the single contour running along
// the left boundary and back along the right one.
func Ribbon(s *course.Samples) (polyclip.Polygon, error) {
	if s == nil || s.N() < 2 {
		return nil, ErrNoSamples
	}
	if !Closed(s) {
		var c polyclip.Contour
		for _, p := range s.Left {
			c.Add(pcPoint(p))
		}
		for i := s.N() - 1; i >= 0; i-- {
			c.Add(pcPoint(s.Right[i]))
		}
		return polyclip.Polygon{c}, nil
	}
	left, right := ring(s.Left), ring(s.Right)
	outer, inner := left, right
	if area(right) > area(left) {
		outer, inner = right, left
	}
	region := polyclip.Polygon{outer}.Construct(polyclip.DIFFERENCE, polyclip.Polygon{inner})
	L().Debugf("closed course ribbon has %d contours", len(region))
	return region, nil
}

// Encloses is a predicate: does position p lie within the polygon?
// Holes count as outside (even-odd rule over the polygon's contours).
func Encloses(pg polyclip.Polygon, p racetrack.Pair) bool {
	pt := pcPoint(p)
	in := false
	for _, c := range pg {
		if c.Contains(pt) {
			in = !in
		}
	}
	return in
}

func pcPoint(p racetrack.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func ring(ps []racetrack.Pair) polyclip.Contour {
	var c polyclip.Contour
	for _, p := range ps {
		c.Add(pcPoint(p))
	}
	return c
}

// Signed shoelace area, absolute value. Used only to tell the outer
// boundary ring from the infield one.
func area(c polyclip.Contour) float64 {
	a := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	if a < 0 {
		a = -a
	}
	return a / 2
}
