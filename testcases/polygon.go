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

package testcases

import "seehuhn.de/go/draft"

var polygonCases = []TestCase{
	{
		Name:   "square",
		Source: []draft.Record{pp(0, 0), pp(4, 0), pp(4, 4), pp(0, 4)},
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "square_closed",
		Source: []draft.Record{pp(0, 0), pp(4, 0), pp(4, 4), pp(0, 4), pp(0, 0)},
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "triangle",
		Source: []draft.Record{pp(10, 50), pp(32, 10), pp(54, 50)},
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rounded_rect",
		Source: roundedRect(10, 10, 54, 54, 8),
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "slot",
		Source: slot(16, 24, 48, 40),
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// roundedRect builds a rectangle with rounded corners. The outline is
// explicitly closed by the last record.
func roundedRect(x1, y1, x2, y2, r float64) []draft.Record {
	return []draft.Record{
		pp(x1+r, y1),
		pp(x2-r, y1),
		rp(x2, y1+r, r, ""),
		pp(x2, y2-r),
		rp(x2-r, y2, r, ""),
		pp(x1+r, y2),
		rp(x1, y2-r, r, ""),
		pp(x1, y1+r),
		rp(x1+r, y1, r, ""),
	}
}

// slot builds a rectangle with semicircular ends on the left and right.
func slot(x1, y1, x2, y2 float64) []draft.Record {
	r := (y2 - y1) / 2
	return []draft.Record{
		pp(x1, y1),
		pp(x2, y1),
		rp(x2, y2, r, ""),
		pp(x1, y2),
		rp(x1, y1, r, ""),
	}
}
