// seehuhn.de/go/draft - reconstruct drafting paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package draft

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// SampleArc approximates an arc by a polyline.
//
// The number of steps is proportional to the sweep, with one step per
// 7.5 degrees, but at least minArcSteps and at most maxArcSteps.
// The first and last points are exactly a.From and a.To.
func SampleArc(a Arc) []vec.Vec2 {
	if math.Abs(a.SignedSweep) < sweepEpsilon || a.Radius <= 0 {
		return []vec.Vec2{a.From, a.To}
	}

	n := int(math.Ceil(math.Abs(a.Sweep) / arcStepAngle))
	n = min(max(n, minArcSteps), maxArcSteps)

	pts := make([]vec.Vec2, n+1)
	dt := a.SignedSweep / float64(n)
	for i := range n + 1 {
		angle := a.StartAngle + float64(i)*dt
		pts[i] = vec.Vec2{
			X: a.Center.X + a.Radius*math.Cos(angle),
			Y: a.Center.Y + a.Radius*math.Sin(angle),
		}
	}

	// remove rounding errors at the end points
	pts[0] = a.From
	pts[n] = a.To

	return pts
}
