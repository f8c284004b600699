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

// Package draft reconstructs two-dimensional path geometry from drafting
// records.
//
// A drafting entity is stored as a list of records, each of which either
// moves to a point or extends the path to a point. Arcs are given implicitly
// by their end point, a radius and a direction/size flag; the circle center
// is derived when the path is reconstructed. Arcs which cannot be realised
// with the given radius are replaced by straight fallback lines, so that a
// reconstruction never fails because of a single bad record.
package draft

//go:generate go run ./testcases/export

import "seehuhn.de/go/geom/vec"

// Kind is the category of a drafting entity.
type Kind string

// Entity kinds with special meaning. Any other kind is treated as an open
// polyline.
const (
	KindPolygon  Kind = "polygon"
	KindPolyline Kind = "polyline"
)

// Path is the geometry reconstructed from a list of records.
type Path struct {
	Kind     Kind
	Points   []vec.Vec2 // vertices, arcs tessellated; polygons omit the closing vertex
	Segments []Segment  // one entry per drawing command
	Closed   bool       // whether the outline forms a loop
}

// Entity is a drafting entity which owns its reconstructed geometry.
//
// Reconstruct overwrites Points and PathSegments from Source. An Entity is
// not safe for concurrent use.
type Entity struct {
	Name   string
	Kind   Kind
	Source []Record

	Points       []vec.Vec2
	PathSegments []Segment
}

// Reconstruct recomputes the geometry of e from e.Source.
// On failure, e.Points and e.PathSegments are set to empty.
func (e *Entity) Reconstruct() bool {
	p, err := Reconstruct(e.Source, e.Kind)
	if err != nil {
		Logger().Debug("entity has no geometry", "name", e.Name, "error", err)
		e.Points = e.Points[:0]
		e.PathSegments = e.PathSegments[:0]
		return false
	}
	e.Points = p.Points
	e.PathSegments = p.Segments
	return true
}
