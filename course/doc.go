// Package course procedurally lays out racetrack geometry from a compact
// sequence of segment instructions.
/*

A course is described the way a pace-notes reader would: go straight for
40 units, turn left through 90 degrees on a 10 unit radius, and so on.
Package course turns such a description into dense sample polylines for
the left and right track boundary, together with the centerline heading
at every sample.

Clients build a plan with a builder pattern and then generate the sample
set (package qualifiers omitted for clarity and brevity):

   plan := New(P(0,0), 0, 4).
       Straight(40).
       Arc(10, 180).
       Straight(40).
       Arc(10, 180)
   samples, err := plan.Generate()

Each instruction starts exactly at the pose (position and heading) the
previous instruction ended with, so position and heading are continuous
across joins by construction. Straights are sampled every StraightStep
units, arcs every ArcStep degrees; an instruction's extent need not be an
exact multiple of the step, the trailing remainder is simply not sampled.

Arcs with a positive angle turn left (counterclockwise), arcs with a
negative angle turn right. The two boundary polylines of an arc are
concentric circles around the turn center; for a left turn the left
boundary is the inner one.

The generated sample set is raw material for the track model (package
track), which derives the centerline and its arc-length parametrization.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package course
