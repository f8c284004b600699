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

var arcCases = []TestCase{
	{
		Name:   "semicircle",
		Source: []draft.Record{pp(0, 0), rp(4, 0, 2, "")},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "quarter_cw",
		Source: []draft.Record{pp(10, 50), rp(50, 10, 40, "cw")},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "large_arc",
		Source: []draft.Record{pp(20, 32), rp(44, 32, 16, "AL")},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "s_curve",
		Source: []draft.Record{pp(8, 32), rp(32, 32, 12, "ccw"), rp(56, 32, 12, "cw")},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "circle",
		Source: []draft.Record{pp(12, 32), rp(52, 32, 20, ""), rp(12, 32, 20, "")},
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}
