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

// SolveArc finds the circular arc from start to end with the given radius
// and direction.
//
// There are generically two circles of the given radius through both
// points. The one with the center on the left of the chord is tried first.
// An arc is accepted if its sweep agrees with largeArc; if neither does,
// the first usable arc is returned regardless of the flag. The second
// return value is false if no arc exists, i.e. if the points coincide or
// the radius is smaller than half the chord length.
func SolveArc(start, end vec.Vec2, radius float64, dir Direction, largeArc bool, rawType string) (Arc, bool) {
	if !isFinite(radius) || radius < minRadius {
		return Arc{}, false
	}

	chord := end.Sub(start)
	c := chord.Length()
	if c < minChord {
		return Arc{}, false
	}
	half := c / 2
	if radius < half-solverEpsilon {
		return Arc{}, false
	}

	mid := start.Add(end).Mul(0.5)
	normal := vec.Vec2{X: -chord.Y / c, Y: chord.X / c}
	h := math.Sqrt(max(radius*radius-half*half, 0))
	candidates := [2]vec.Vec2{
		mid.Add(normal.Mul(h)),
		mid.Sub(normal.Mul(h)),
	}

	var arcs [2]Arc
	var usable [2]bool
	for i, center := range candidates {
		a := arcAround(center, start, end, dir)
		arcs[i] = a
		usable[i] = a.Sweep > sweepEpsilon
		if usable[i] && matchesLargeArc(a.Sweep, largeArc) {
			return finishArc(a, radius, half, largeArc, rawType), true
		}
	}
	for i := range arcs {
		if usable[i] {
			Logger().Debug("arc size flag does not fit geometry",
				"from", start, "to", end, "radius", radius, "largeArc", largeArc)
			return finishArc(arcs[i], radius, half, largeArc, rawType), true
		}
	}
	return Arc{}, false
}

// arcAround computes the angles and sweep of the arc from start to end
// around the given center.
func arcAround(center, start, end vec.Vec2, dir Direction) Arc {
	a0 := math.Atan2(start.Y-center.Y, start.X-center.X)
	a1 := math.Atan2(end.Y-center.Y, end.X-center.X)

	var sweep float64
	if dir < 0 {
		sweep = normalizeAngle(a0 - a1)
	} else {
		sweep = normalizeAngle(a1 - a0)
	}

	return Arc{
		From:       start,
		To:         end,
		Center:     center,
		StartAngle: a0,
		EndAngle:   a1,
		Clockwise:  dir < 0,
		Sweep:      sweep,
	}
}

func finishArc(a Arc, radius, half float64, largeArc bool, rawType string) Arc {
	a.Radius = max(radius, half)
	a.SignedSweep = a.Sweep
	if a.Clockwise {
		a.SignedSweep = -a.Sweep
	}
	a.LargeArc = largeArc
	a.RawType = rawType
	return a
}

// matchesLargeArc reports whether an arc with the given sweep is consistent
// with the large-arc flag. Semicircles are accepted for both values.
func matchesLargeArc(sweep float64, largeArc bool) bool {
	if math.Abs(sweep-math.Pi) <= solverEpsilon {
		return true
	}
	return (sweep > math.Pi) == largeArc
}

// normalizeAngle maps an angle into the range [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
