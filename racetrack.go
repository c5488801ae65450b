/*
Package racetrack implements planar geometry primitives for procedural
racetrack construction: 2D points, rotations, and the numeric helpers
shared by the course generator and the track model.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package racetrack

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// ReduceAngle folds an angle into -pi .. pi.
func ReduceAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// === Pair Data Type ========================================================

// Pair is a 2D-point / 2D-vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Dir returns the unit vector pointing along heading theta (radians).
func Dir(theta float64) Pair {
	return P(math.Cos(theta), math.Sin(theta))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	px := real(p.C())
	py := imag(p.C())
	return px, py
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return (p + v).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Apply(p).Zap()
}

// Dist returns the Euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return cmplx.Abs((q - p).C())
}

// Heading returns the direction of p as an angle in radians,
// counterclockwise from the positive x-axis.
func (p Pair) Heading() float64 {
	return cmplx.Phase(p.C())
}

// Unit returns a unit vector in the direction of p. The unit vector for
// a zero-length pair is origin.
func (p Pair) Unit() Pair {
	d := cmplx.Abs(p.C())
	if Is0(d) {
		return Origin
	}
	return p.Scaled(1 / d)
}

// === Rotations =============================================================

// R2 is a 2x2 rotation matrix, flattened by rows. It is used both as the
// running orientation while laying out course segments and as the frame
// mapper when expressing deviations in track-tangent coordinates.
type R2 [4]float64

// Unity is the identity rotation.
func Unity() R2 {
	return R2{1, 0, 0, 1}
}

// Rotation constructs a counterclockwise rotation by theta (radians).
func Rotation(theta float64) R2 {
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	return R2{cos, -sin, sin, cos}
}

// Apply transforms a 2D-point. The argument is unchanged and a new pair
// is returned.
func (m R2) Apply(p Pair) Pair {
	x, y := p.F()
	return P(m[0]*x+m[1]*y, m[2]*x+m[3]*y)
}

// Compose combines two rotations into a new one, m after n. Returns a new
// rotation without changing the argument(s).
func (m R2) Compose(n R2) R2 {
	return R2{
		m[0]*n[0] + m[1]*n[2], m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2], m[2]*n[1] + m[3]*n[3],
	}
}

// Transpose returns the transposed matrix. For rotations this is the
// inverse, i.e. it maps back from the rotated frame.
func (m R2) Transpose() R2 {
	return R2{m[0], m[2], m[1], m[3]}
}

// Forward is the image of the x-unit vector under m, i.e. the direction a
// segment advances in when m is the running course orientation.
func (m R2) Forward() Pair {
	return P(m[0], m[2])
}

// Perp is the image of the y-unit vector under m: the left normal of
// Forward().
func (m R2) Perp() Pair {
	return P(m[1], m[3])
}

// Debug Stringer for a rotation.
func (m R2) String() string {
	return fmt.Sprintf("[%g,%g|%g,%g]", m[0], m[1], m[2], m[3])
}
