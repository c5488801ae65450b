// Package track derives an arc-length-parametrized track model from
// generated boundary samples and answers localization queries against
// it: track info at a traveled distance, traveled distance of a nearby
// position, and control-frame deviation of a vehicle from a target
// point on the centerline.
package track

import (
	"errors"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/course"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
)

// tracer writes to trace with key 'track'
func tracer() tracing.Trace {
	return tracing.Select("track")
}

var (
	// ErrDegenerateTrack indicates a sample set without usable extent.
	ErrDegenerateTrack = errors.New("track is degenerate")
	// ErrMismatchedSamples indicates boundary sequences of unequal length.
	ErrMismatchedSamples = errors.New("boundary sample sequences differ in length")
)

// Consecutive centerline distances get nudged by a relative bias and a
// tiny floor before cumulative summation, so the arc-length table stays
// strictly increasing even when consecutive center points coincide
// numerically. Duplicate arc-length values would break the
// nearest-distance lookup.
const (
	arcBias  = 1e-6
	arcFloor = 1e-9
)

// Model is an immutable arc-length-parametrized track. It owns the
// centerline derived from the boundary samples; all query operations are
// pure reads and safe for concurrent use.
type Model struct {
	centers  []racetrack.Pair
	headings []float64
	arclen   []float64
	width    float64
	total    float64
	byArc    *treemap.Map // arc length -> sample index
	index    Index
}

// Info is the track state at a queried arc-length position.
type Info struct {
	Position  racetrack.Pair // centerline sample position
	Heading   float64        // centerline tangent direction, radians
	HalfWidth float64        // lateral distance from center to either edge
}

// Build constructs the track model from a boundary sample set. The
// centerline is the midpoint polyline of the left and right boundary,
// and the arc-length table is the cumulative sum of consecutive
// centerline distances. Nearest-position queries use a linear scan over
// all samples; see BuildWithIndex for substituting a spatial index.
//
// Degenerate sample sets (fewer than two samples, or zero total length)
// are rejected here rather than diagnosed at query time.
func Build(s *course.Samples) (*Model, error) {
	return BuildWithIndex(s, NewLinearIndex)
}

// IndexMaker builds a spatial index over the centerline samples.
type IndexMaker func(centers []racetrack.Pair) Index

// BuildWithIndex constructs the track model like Build, but with a
// caller-supplied spatial index for nearest-position queries. The index
// substitution is a performance choice only: any Index must preserve
// the lowest-index tie-breaking of the linear scan.
func BuildWithIndex(s *course.Samples, mk IndexMaker) (*Model, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: no samples", ErrDegenerateTrack)
	}
	if len(s.Left) != len(s.Right) || len(s.Left) != len(s.Heading) {
		return nil, fmt.Errorf("%w: %d left, %d right, %d heading",
			ErrMismatchedSamples, len(s.Left), len(s.Right), len(s.Heading))
	}
	n := s.N()
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrDegenerateTrack, n)
	}
	m := &Model{
		centers:  make([]racetrack.Pair, n),
		headings: make([]float64, n),
		width:    s.Width,
	}
	copy(m.headings, s.Heading)
	steps := make([]float64, n)
	extent := 0.0
	for i := 0; i < n; i++ {
		m.centers[i] = (s.Left[i] + s.Right[i]).Scaled(0.5)
		if i > 0 {
			d := m.centers[i-1].Dist(m.centers[i])
			extent += d
			d *= 1 + arcBias
			if d < arcFloor {
				d = arcFloor
			}
			steps[i] = d
		}
	}
	if extent <= 0 {
		return nil, fmt.Errorf("%w: zero centerline extent", ErrDegenerateTrack)
	}
	m.arclen = floats.CumSum(make([]float64, n), steps)
	m.total = m.arclen[n-1]
	m.byArc = treemap.NewWith(utils.Float64Comparator)
	for i, a := range m.arclen {
		m.byArc.Put(a, i)
	}
	m.index = mk(m.centers)
	tracer().Infof("track model built: %d samples, length %.4g, width %.4g", n, m.total, m.width)
	return m, nil
}

// FromPlan generates the boundary samples of a course plan and builds
// the track model from them in one go. Plan errors and degenerate
// geometry both surface here, before any query can run.
func FromPlan(plan *course.Plan) (*Model, error) {
	s, err := plan.Generate()
	if err != nil {
		return nil, err
	}
	return Build(s)
}

// MustBuild is a convenience helper which panics on build errors.
func MustBuild(s *course.Samples) *Model {
	m, err := Build(s)
	if err != nil {
		panic(err)
	}
	return m
}

// N returns the centerline sample count.
func (m *Model) N() int {
	return len(m.centers)
}

// Length returns the total track length.
func (m *Model) Length() float64 {
	return m.total
}

// Width returns the constant track width.
func (m *Model) Width() float64 {
	return m.width
}

// Center returns centerline sample i.
func (m *Model) Center(i int) racetrack.Pair {
	return m.centers[i]
}

// HeadingAt returns the centerline tangent direction at sample i.
func (m *Model) HeadingAt(i int) float64 {
	return m.headings[i]
}

// ArcLength returns the traveled distance of sample i from the track start.
func (m *Model) ArcLength(i int) float64 {
	return m.arclen[i]
}

// At returns the track info at traveled distance d. The distance is
// wrapped into [0, Length()), i.e. the track is treated as periodic for
// queries whether or not the geometry closes on itself. The result snaps
// to the generated sample whose arc length is nearest to d; no new
// geometry is synthesized. See AtInterpolated for a continuous variant.
func (m *Model) At(d float64) Info {
	i := m.nearestArc(m.wrap(d))
	return Info{
		Position:  m.centers[i],
		Heading:   m.headings[i],
		HalfWidth: m.width / 2,
	}
}

// AtInterpolated returns the track info at traveled distance d, linearly
// interpolated between the two bracketing samples. It never affects the
// snapping behavior of At.
func (m *Model) AtInterpolated(d float64) Info {
	d = m.wrap(d)
	lo, hi := m.bracket(d)
	if lo == hi {
		return Info{Position: m.centers[lo], Heading: m.headings[lo], HalfWidth: m.width / 2}
	}
	f := (d - m.arclen[lo]) / (m.arclen[hi] - m.arclen[lo])
	pos := m.centers[lo] + (m.centers[hi] - m.centers[lo]).Scaled(f)
	return Info{
		Position:  pos,
		Heading:   m.headings[lo] + f*(m.headings[hi]-m.headings[lo]),
		HalfWidth: m.width / 2,
	}
}

// Distance returns the traveled distance of the centerline sample
// closest to position p. Exact-distance ties resolve to the lowest
// sample index.
func (m *Model) Distance(p racetrack.Pair) float64 {
	return m.arclen[m.index.Nearest(p)]
}

func (m *Model) wrap(d float64) float64 {
	d = math.Mod(d, m.total)
	if d < 0 {
		d += m.total
	}
	return d
}

// nearestArc finds the sample index whose arc length is nearest to the
// wrapped distance d. The arc-length table is strictly increasing, so
// the floor/ceiling neighbors in the tree bracket d.
func (m *Model) nearestArc(d float64) int {
	fk, fv := m.byArc.Floor(d)
	ck, cv := m.byArc.Ceiling(d)
	if fv == nil {
		return cv.(int)
	}
	if cv == nil {
		return fv.(int)
	}
	if d-fk.(float64) <= ck.(float64)-d {
		return fv.(int)
	}
	return cv.(int)
}

// bracket returns the sample indices enclosing the wrapped distance d.
func (m *Model) bracket(d float64) (int, int) {
	_, fv := m.byArc.Floor(d)
	_, cv := m.byArc.Ceiling(d)
	if fv == nil {
		return cv.(int), cv.(int)
	}
	if cv == nil {
		return fv.(int), fv.(int)
	}
	return fv.(int), cv.(int)
}
