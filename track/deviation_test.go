package track

import (
	"math"
	"testing"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/course"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDeviationOnCenterline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := ovalTrack(t)
	for _, d := range []float64{0, 5, 33.3, m.Length() * 0.7} {
		info := m.At(d)
		dev := m.Deviation(info.Position, d)
		assert.InDelta(t, 0.0, dev.Lag, 1e-9, "lag at d=%g", d)
		assert.InDelta(t, 0.0, dev.Contour, 1e-9, "contour at d=%g", d)
		assert.InDelta(t, 0.0, dev.Offroad, 1e-9, "offroad at d=%g", d)
	}
}

// The worked scenario: 10 unit straight, width 4. A vehicle one unit to
// the left of the centerline has contour error -1 (positive contour
// means right of center) and stays on the track.
func TestDeviationInsideTrack(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := straightTrack(t)
	dev := m.Deviation(racetrack.P(5, 1), 5)
	assert.InDelta(t, -1.0, dev.Contour, 1e-9)
	// the snapped target sample may sit up to one step away along track
	assert.InDelta(t, 0.0, dev.Lag, course.StraightStep+1e-9)
	assert.InDelta(t, 0.0, dev.Offroad, 1e-12)
}

func TestDeviationOffTrack(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := straightTrack(t)
	dev := m.Deviation(racetrack.P(5, 5), 5)
	assert.InDelta(t, -5.0, dev.Contour, 1e-9)
	assert.InDelta(t, 3.0, dev.Offroad, 1e-9)
}

func TestDeviationSignConventions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := straightTrack(t)
	target := m.ArcLength(9) // sample (5,0) exactly
	// trailing vehicle: positive lag
	behind := m.Deviation(racetrack.P(4, 0), target)
	assert.InDelta(t, 1.0, behind.Lag, 1e-9)
	assert.InDelta(t, 0.0, behind.Contour, 1e-9)
	// vehicle ahead of the target: negative lag
	ahead := m.Deviation(racetrack.P(6, 0), target)
	assert.InDelta(t, -1.0, ahead.Lag, 1e-9)
	// vehicle right of center: positive contour
	right := m.Deviation(racetrack.P(5, -1.5), target)
	assert.InDelta(t, 1.5, right.Contour, 1e-9)
}

// Lag must stay longitudinal for every heading, not just axis-aligned ones.
func TestDeviationRotatedFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	heading := 57 * racetrack.Deg2Rad
	s, err := course.New(racetrack.P(2, -3), heading, 4).Straight(10).Generate()
	assert.NoError(t, err)
	m, err := Build(s)
	assert.NoError(t, err)
	target := m.ArcLength(9)
	info := m.At(target)
	fwd := racetrack.Dir(info.Heading)
	behind := m.Deviation(info.Position-fwd.Scaled(0.75), target)
	assert.InDelta(t, 0.75, behind.Lag, 1e-9)
	assert.InDelta(t, 0.0, behind.Contour, 1e-9)
	left := racetrack.Rotation(math.Pi / 2).Apply(fwd)
	offRight := m.Deviation(info.Position-left.Scaled(3), target)
	assert.InDelta(t, 3.0, offRight.Contour, 1e-9)
	assert.InDelta(t, 1.0, offRight.Offroad, 1e-9)
}

func TestDeviationOffroadFormula(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := straightTrack(t)
	target := m.ArcLength(9)
	for _, lateral := range []float64{0, 0.5, 1.9999, 2, 2.0001, 3.5, 7} {
		dev := m.Deviation(racetrack.P(5, -lateral), target)
		want := math.Max(0, math.Abs(dev.Contour)-2)
		assert.InDelta(t, want, dev.Offroad, 1e-12, "lateral offset %g", lateral)
		if lateral <= 2 && dev.Offroad != 0 {
			t.Fatalf("offroad must be exactly 0 inside the track, got %g at offset %g",
				dev.Offroad, lateral)
		}
	}
}

func TestDeviationPropagatesNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := straightTrack(t)
	dev := m.Deviation(racetrack.P(math.NaN(), 0), 5)
	if !math.IsNaN(dev.Lag) {
		t.Fatal("NaN input must propagate into the lag error")
	}
}
