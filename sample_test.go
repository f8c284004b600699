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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSampleArcSemicircle(t *testing.T) {
	start := vec.Vec2{X: 0, Y: 0}
	end := vec.Vec2{X: 4, Y: 0}
	a, ok := SolveArc(start, end, 2, CounterClockwise, false, "")
	if !ok {
		t.Fatal("no arc found")
	}

	pts := SampleArc(a)
	if len(pts) < 25 || len(pts) > 26 {
		t.Errorf("got %d points, want 25 or 26", len(pts))
	}
	if pts[0] != start || pts[len(pts)-1] != end {
		t.Errorf("end points not exact: %v, %v", pts[0], pts[len(pts)-1])
	}

	// In the y-down drafting coordinates, the arc bulges upwards.
	lowest := 0.0
	for i, p := range pts {
		if d := p.Sub(a.Center).Length(); math.Abs(d-2) > 1e-9 {
			t.Errorf("point %d at distance %g from center", i, d)
		}
		if p.Y > 1e-12 {
			t.Errorf("point %d = %v on the wrong side of the chord", i, p)
		}
		lowest = min(lowest, p.Y)
	}
	if lowest > -1.99 {
		t.Errorf("arc does not reach the apex: min y = %g", lowest)
	}
}

func TestSampleArcStepCount(t *testing.T) {
	cases := []struct {
		name  string
		sweep float64
		want  int
	}{
		{"tiny", 0.01, minArcSteps + 1},
		{"quarter", math.Pi/2 - 0.01, 12 + 1},
		{"huge", 100, maxArcSteps + 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := Arc{
				Center:      vec.Vec2{X: 1, Y: 1},
				Radius:      3,
				StartAngle:  0.5,
				Sweep:       c.sweep,
				SignedSweep: -c.sweep,
				Clockwise:   true,
			}
			a.From = vec.Vec2{X: 1 + 3*math.Cos(0.5), Y: 1 + 3*math.Sin(0.5)}
			a.To = vec.Vec2{X: 1 + 3*math.Cos(0.5-c.sweep), Y: 1 + 3*math.Sin(0.5-c.sweep)}

			pts := SampleArc(a)
			if len(pts) != c.want {
				t.Errorf("got %d points, want %d", len(pts), c.want)
			}
			if pts[0] != a.From || pts[len(pts)-1] != a.To {
				t.Error("end points not exact")
			}
		})
	}
}

func TestSampleArcDegenerate(t *testing.T) {
	from := vec.Vec2{X: 1, Y: 2}
	to := vec.Vec2{X: 3, Y: 4}

	for _, a := range []Arc{
		{From: from, To: to, Radius: 1, SignedSweep: 1e-9, Sweep: 1e-9},
		{From: from, To: to, Radius: 0, SignedSweep: 1, Sweep: 1},
	} {
		pts := SampleArc(a)
		if len(pts) != 2 || pts[0] != from || pts[1] != to {
			t.Errorf("got %v, want [%v %v]", pts, from, to)
		}
	}
}
