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

// Segment is one piece of a reconstructed path, either a [Line] or an [Arc].
type Segment interface {
	isSegment()
}

// Line is a straight segment.
type Line struct {
	From, To vec.Vec2

	// Fallback is set if the segment replaces an arc which could not be
	// constructed from the given radius.
	Fallback bool
}

func (Line) isSegment() {}

// Arc is a circular arc segment.
type Arc struct {
	From, To vec.Vec2
	Center   vec.Vec2
	Radius   float64

	StartAngle float64 // angle of From, as seen from Center
	EndAngle   float64 // angle of To, as seen from Center

	Clockwise   bool
	Sweep       float64 // angular extent in [0, 2π)
	SignedSweep float64 // negative for clockwise arcs
	LargeArc    bool

	RawType string // type token of the source record
}

func (Arc) isSegment() {}

// Start returns the first point of a segment.
// The zero vector is returned for a nil segment.
func Start(s Segment) vec.Vec2 {
	switch s := s.(type) {
	case Line:
		return s.From
	case Arc:
		return s.From
	}
	return vec.Vec2{}
}

// End returns the last point of a segment.
func End(s Segment) vec.Vec2 {
	switch s := s.(type) {
	case Line:
		return s.To
	case Arc:
		return s.To
	}
	return vec.Vec2{}
}
