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

// Dedup removes points which coincide with the preceding kept point.
// Two points coincide if both coordinates differ by at most 1e-6.
// The result is a new slice.
func Dedup(pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && nearlyEqual(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsClosed reports whether the first and last points of pts coincide.
func IsClosed(pts []vec.Vec2) bool {
	return len(pts) >= 2 && nearlyEqual(pts[0], pts[len(pts)-1])
}

// Finalize shapes a raw point list for storage.
//
// For polygons, the closing vertex is not stored: the loop from the last
// point back to the first is implied. Other kinds keep the deduplicated
// points unchanged. The second return value reports whether the outline is
// closed.
func Finalize(pts []vec.Vec2, kind Kind) ([]vec.Vec2, bool) {
	pts = Dedup(pts)
	closed := IsClosed(pts)
	if kind != KindPolygon {
		return pts, closed
	}

	if !closed && len(pts) >= 3 {
		pts = append(pts, pts[0])
	}
	if len(pts) <= 1 {
		return pts[:0], false
	}
	pts = pts[:len(pts)-1]
	return pts, len(pts) >= 3
}

// nearlyEqual compares two points with a per-axis tolerance.
func nearlyEqual(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) <= pointEpsilon && math.Abs(a.Y-b.Y) <= pointEpsilon
}
