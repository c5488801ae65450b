package track

import (
	"math"

	"github.com/npillmayer/racetrack"
)

// Deviation describes a vehicle's offset from a target centerline point,
// expressed in the track-tangent frame at that point.
//
// Sign conventions, fixed and relied upon by downstream controllers:
//
//   - Lag is positive while the vehicle still trails the target point
//     along the track direction.
//   - Contour is positive when the vehicle sits to the right of the
//     centerline (right as seen in driving direction), negative to
//     the left.
//   - Offroad is the excess lateral distance beyond the track edge,
//     exactly 0 whenever |Contour| stays within the half-width.
type Deviation struct {
	Lag     float64
	Contour float64
	Offroad float64
}

// Deviation computes the lag, contour and offroad error of a vehicle
// position relative to the centerline point at traveled distance target.
// The inertial offset from vehicle to target is rotated into the
// track-tangent frame at that point: the tangential component is the lag
// error, the normal component the contour error.
//
// NaN vehicle coordinates are not sanitized and propagate into the result.
func (m *Model) Deviation(vehicle racetrack.Pair, target float64) Deviation {
	info := m.At(target)
	inertial := info.Position - vehicle
	frame := racetrack.Rotation(info.Heading).Transpose()
	lag, contour := frame.Apply(inertial).F()
	return Deviation{
		Lag:     lag,
		Contour: contour,
		Offroad: math.Max(0, math.Abs(contour)-info.HalfWidth),
	}
}
