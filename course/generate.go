package course

import (
	"fmt"
	"math"

	"github.com/npillmayer/racetrack"
)

// The running pose while laying out segments: reference position on the
// centerline and current orientation, kept both as a rotation matrix and
// as the accumulated heading angle.
type pose struct {
	at      racetrack.Pair
	orient  racetrack.R2
	heading float64
}

// Generate lays out all segments of the plan and returns the boundary
// sample set. It validates every instruction first and fails without
// producing a partial sample set if any instruction is malformed.
func (plan *Plan) Generate() (*Samples, error) {
	if plan.width <= 0 || math.IsNaN(plan.width) || math.IsInf(plan.width, 0) {
		return nil, fmt.Errorf("%w: width is %g", ErrBadWidth, plan.width)
	}
	if len(plan.instrs) == 0 {
		return nil, ErrEmptyPlan
	}
	halfw := plan.width / 2
	for i, instr := range plan.instrs {
		if err := validateInstruction(instr, halfw); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	samples := &Samples{Width: plan.width}
	st := pose{
		at:      plan.start,
		orient:  racetrack.Rotation(plan.heading),
		heading: plan.heading,
	}
	for i, instr := range plan.instrs {
		switch instr.kind {
		case straightKind:
			st.straight(instr.length, halfw, samples)
		case arcKind:
			st.arc(instr.radius, instr.angle, halfw, samples)
		default:
			return nil, fmt.Errorf("%w: instruction %d has tag %d", ErrUnknownInstruction, i, instr.kind)
		}
		tracer().Debugf("segment %d done, pose at %s heading %.4g°", i, st.at, st.heading/racetrack.Deg2Rad)
	}
	tracer().Infof("generated %d boundary samples from %d instructions", samples.N(), plan.N())
	return samples, nil
}

// MustGenerate is a convenience helper which panics on plan errors.
func (plan *Plan) MustGenerate() *Samples {
	s, err := plan.Generate()
	if err != nil {
		panic(err)
	}
	return s
}

func validateInstruction(instr instruction, halfw float64) error {
	switch instr.kind {
	case straightKind:
		if math.IsNaN(instr.length) || math.IsInf(instr.length, 0) || instr.length <= 0 {
			return fmt.Errorf("%w: straight length is %g", ErrBadInstruction, instr.length)
		}
	case arcKind:
		if math.IsNaN(instr.radius) || math.IsInf(instr.radius, 0) || instr.radius <= 0 {
			return fmt.Errorf("%w: arc radius is %g", ErrBadInstruction, instr.radius)
		}
		if instr.radius <= halfw {
			return fmt.Errorf("%w: arc radius %g does not exceed half-width %g",
				ErrBadInstruction, instr.radius, halfw)
		}
		if math.IsNaN(instr.angle) || math.IsInf(instr.angle, 0) || instr.angle == 0 {
			return fmt.Errorf("%w: arc angle is %g", ErrBadInstruction, instr.angle)
		}
	default:
		return fmt.Errorf("%w: tag %d", ErrUnknownInstruction, instr.kind)
	}
	return nil
}

// Lay out a straight segment. Samples are taken at t = step, 2·step, …
// up to the largest multiple not exceeding the segment length; the
// reference position advances by the full length regardless.
func (st *pose) straight(length, halfw float64, out *Samples) {
	fwd := st.orient.Forward()
	perp := st.orient.Perp()
	n := int(math.Floor(length/StraightStep + racetrack.Epsilon))
	for i := 1; i <= n; i++ {
		t := float64(i) * StraightStep
		ref := st.at + fwd.Scaled(t)
		out.Left = append(out.Left, ref+perp.Scaled(halfw))
		out.Right = append(out.Right, ref-perp.Scaled(halfw))
		out.Heading = append(out.Heading, st.heading)
	}
	st.at += fwd.Scaled(length)
}

// Lay out an arc segment. The boundary polylines are two concentric
// circular arcs around the turn center, which sits at distance radius
// from the reference position, on the left for a positive angle and on
// the right for a negative one. Samples are taken at θ = 0, step, … up
// to the largest multiple not exceeding |angle|.
//
// Afterwards the orientation is rotated by the full signed angle, and
// the reference position is re-anchored at the midpoint of the last
// generated boundary pair. Re-anchoring keeps the pose aligned with the
// geometry that was actually emitted instead of accumulating rounding
// drift over many segments.
func (st *pose) arc(radius, angle, halfw float64, out *Samples) {
	sign := 1.0
	if angle < 0 {
		sign = -1.0
	}
	center := st.at + st.orient.Perp().Scaled(sign*radius)
	radial := (st.at - center).Unit()
	leftR, rightR := radius-halfw, radius+halfw
	if sign < 0 {
		leftR, rightR = rightR, leftR
	}
	n := int(math.Floor(math.Abs(angle)/ArcStep + racetrack.Epsilon))
	for i := 0; i <= n; i++ {
		theta := sign * float64(i) * ArcStep * racetrack.Deg2Rad
		dir := racetrack.Rotation(theta).Apply(radial)
		out.Left = append(out.Left, center+dir.Scaled(leftR))
		out.Right = append(out.Right, center+dir.Scaled(rightR))
		out.Heading = append(out.Heading, st.heading+theta)
	}
	turn := angle * racetrack.Deg2Rad
	st.orient = racetrack.Rotation(turn).Compose(st.orient)
	st.heading += turn
	last := len(out.Left) - 1
	st.at = (out.Left[last] + out.Right[last]).Scaled(0.5)
}
