package course

import (
	"errors"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'course'
func tracer() tracing.Trace {
	return tracing.Select("course")
}

// StraightStep is the sampling distance on straight segments, in track
// length units.
var StraightStep float64 = 0.5

// ArcStep is the angular sampling step on arc segments, in degrees.
var ArcStep float64 = 2.0

var (
	// ErrEmptyPlan indicates a plan without any instructions.
	ErrEmptyPlan = errors.New("plan has no instructions")
	// ErrBadWidth indicates a non-positive track width.
	ErrBadWidth = errors.New("track width must be positive")
	// ErrBadInstruction indicates an instruction with malformed parameters.
	ErrBadInstruction = errors.New("malformed instruction")
	// ErrUnknownInstruction indicates an instruction with an unrecognized tag.
	ErrUnknownInstruction = errors.New("unknown instruction tag")
)

type instructionKind int8

const (
	straightKind instructionKind = iota + 1
	arcKind
)

// An instruction is a tagged variant: either a straight of a given
// length, or an arc of a given radius and signed opening angle.
type instruction struct {
	kind   instructionKind
	length float64 // straights: segment length
	radius float64 // arcs: centerline radius
	angle  float64 // arcs: signed opening angle in degrees
}

// Plan is an ordered sequence of segment instructions together with the
// global course parameters: start pose and track width.
// To describe a course, start with New(...) and extend the plan.
type Plan struct {
	start   racetrack.Pair
	heading float64 // radians
	width   float64
	instrs  []instruction
}

// New creates an empty course plan starting at the given position, with
// the given initial heading (radians) and constant track width.
func New(start racetrack.Pair, heading, width float64) *Plan {
	return &Plan{
		start:   start,
		heading: heading,
		width:   width,
	}
}

// Straight appends a straight segment of the given length.
// Part of builder functionality.
func (plan *Plan) Straight(length float64) *Plan {
	plan.instrs = append(plan.instrs, instruction{kind: straightKind, length: length})
	return plan
}

// Arc appends an arc segment with the given centerline radius, turning
// through angle degrees. A positive angle turns left (counterclockwise),
// a negative angle turns right. Part of builder functionality.
func (plan *Plan) Arc(radius, angle float64) *Plan {
	plan.instrs = append(plan.instrs, instruction{kind: arcKind, radius: radius, angle: angle})
	return plan
}

// N returns the instruction count of this plan.
func (plan *Plan) N() int {
	return len(plan.instrs)
}

// Start returns the start pose of the plan: position and heading.
func (plan *Plan) Start() (racetrack.Pair, float64) {
	return plan.start, plan.heading
}

// Width returns the constant track width of the plan.
func (plan *Plan) Width() float64 {
	return plan.width
}

// Samples is the generated boundary sample set: three index-aligned
// sequences of equal length, plus the constant track width. Left and
// Right are the track edge polylines, Heading holds the centerline
// tangent direction (radians) at each sample.
type Samples struct {
	Left    []racetrack.Pair
	Right   []racetrack.Pair
	Heading []float64
	Width   float64
}

// N returns the sample count.
func (s *Samples) N() int {
	return len(s.Left)
}
