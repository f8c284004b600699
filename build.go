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

import "seehuhn.de/go/geom/vec"

// builder accumulates the points and segments of a path.
type builder struct {
	points   []vec.Vec2
	segments []Segment

	current    vec.Vec2
	hasCurrent bool
}

// Build walks a command list and returns the raw point list and the
// segments. Arcs which cannot be solved are replaced by lines with
// Fallback set.
func Build(cmds []Command) ([]vec.Vec2, []Segment) {
	b := &builder{
		points:   make([]vec.Vec2, 0, len(cmds)),
		segments: make([]Segment, 0, len(cmds)),
	}
	for _, cmd := range cmds {
		b.add(cmd)
	}
	return b.points, b.segments
}

func (b *builder) add(cmd Command) {
	if cmd.Kind == Move || !b.hasCurrent {
		b.moveTo(cmd.Point)
		return
	}

	switch cmd.Kind {
	case LineTo:
		b.lineTo(cmd.Point, false)

	case ArcTo:
		a, ok := SolveArc(b.current, cmd.Point, cmd.Radius, cmd.Direction, cmd.LargeArc, cmd.RawType)
		if !ok {
			Logger().Debug("arc replaced by line",
				"from", b.current, "to", cmd.Point, "radius", cmd.Radius)
			b.lineTo(cmd.Point, true)
			return
		}
		b.segments = append(b.segments, a)
		b.points = append(b.points, SampleArc(a)[1:]...)
		b.current = a.To
	}
}

func (b *builder) moveTo(p vec.Vec2) {
	b.points = append(b.points, p)
	b.current = p
	b.hasCurrent = true
}

func (b *builder) lineTo(p vec.Vec2, fallback bool) {
	b.segments = append(b.segments, Line{From: b.current, To: p, Fallback: fallback})
	b.points = append(b.points, p)
	b.current = p
}
