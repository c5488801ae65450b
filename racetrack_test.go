package racetrack

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestDirAndHeading(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := Dir(90 * Deg2Rad)
	if !d.Equal(P(0, 1)) {
		t.Errorf("Expected dir(90°) to be (0,1), is %v", d)
	}
	if !Is0(P(0, 2).Heading() - math.Pi/2) {
		t.Errorf("Expected heading of (0,2) to be pi/2, is %g", P(0, 2).Heading())
	}
}

func TestDist(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Is0(P(1, 1).Dist(P(4, 5)) - 5) {
		t.Errorf("Expected |(1,1)-(4,5)| to be 5, is %g", P(1, 1).Dist(P(4, 5)))
	}
}

func TestRotationFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Rotation(90 * Deg2Rad)
	if !m.Forward().Equal(P(0, 1)) {
		t.Errorf("Expected forward of R(90°) to be (0,1), is %v", m.Forward())
	}
	if !m.Perp().Equal(P(-1, 0)) {
		t.Errorf("Expected perp of R(90°) to be (-1,0), is %v", m.Perp())
	}
}

func TestRotationCompose(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Rotation(30 * Deg2Rad).Compose(Rotation(60 * Deg2Rad))
	if !m.Apply(P(1, 0)).Equal(P(0, 1)) {
		t.Errorf("Expected R(30°)R(60°) to rotate (1,0) onto (0,1), got %v", m.Apply(P(1, 0)))
	}
	back := m.Transpose().Apply(m.Apply(P(2, 3)))
	if !back.Equal(P(2, 3)) {
		t.Errorf("Expected transpose to invert rotation, got %v", back)
	}
}

func TestReduceAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Is0(ReduceAngle(3 * math.Pi) - math.Pi) {
		t.Errorf("Expected 3pi to reduce to pi, got %g", ReduceAngle(3*math.Pi))
	}
	if !Is0(ReduceAngle(-3 * math.Pi / 2) - math.Pi/2) {
		t.Errorf("Expected -3pi/2 to reduce to pi/2, got %g", ReduceAngle(-3*math.Pi/2))
	}
}
