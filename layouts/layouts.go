// Package layouts bundles ready-made course plans. The layouts are
// static example data for demos and test fixtures; they carry no logic
// of their own.
package layouts

import (
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/course"
)

// Oval is a closed two-straight loop: 30 unit straights joined by two
// 180° left-handers, width 4. It starts at the origin heading east and
// ends exactly on its start pose.
func Oval() *course.Plan {
	return course.New(racetrack.P(0, 0), 0, 4).
		Straight(30).
		Arc(10, 180).
		Straight(30).
		Arc(10, 180)
}

// Clubsport is a closed circuit with five left-handers and one
// right-hander, width 5. All turns are quarter circles of radius 10;
// the instruction sequence returns exactly to the start pose at the
// origin, heading east.
func Clubsport() *course.Plan {
	return course.New(racetrack.P(0, 0), 0, 5).
		Straight(40).
		Arc(10, 90).
		Straight(20).
		Arc(10, 90).
		Straight(10).
		Arc(10, -90).
		Straight(10).
		Arc(10, 90).
		Straight(10).
		Arc(10, 90).
		Straight(50).
		Arc(10, 90)
}
