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

import (
	"math"

	"seehuhn.de/go/draft"
)

// Records which cannot be used as given. All of these still produce a
// path.
var degenerateCases = []TestCase{
	{
		Name:   "infeasible_arc",
		Source: []draft.Record{pp(0, 0), rp(10, 0, 1, "")},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "zero_chord_arc",
		Source: []draft.Record{pp(5, 5), pp(20, 5), rp(20, 5, 4, ""), pp(20, 20)},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "zero_radius",
		Source: []draft.Record{pp(10, 30), rp(50, 30, 0, "")},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name: "noisy_records",
		Source: []draft.Record{
			pp(10, 10),
			{Command: "XX", Numbers: []float64{0, 0}},
			pp(math.NaN(), 3),
			pp(40, 10),
			{Command: draft.CmdRadiusPoint, Numbers: []float64{40}},
			pp(40, 40),
		},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "leading_radius",
		Source: []draft.Record{rp(10, 10, 5, "cw"), pp(50, 10), pp(50, 50)},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name: "duplicate_points",
		Source: []draft.Record{
			pp(10, 10), pp(10, 10), pp(50, 10), pp(50, 50), pp(50, 50 + 1e-7), pp(10, 50), pp(10, 10),
		},
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}
