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

var mixedCases = []TestCase{
	{
		Name: "keyhole",
		Source: []draft.Record{
			pp(26, 50),
			pp(38, 50),
			pp(36, 30),
			rp(28, 30, math.Sqrt(52), "AR"), // major arc around (32, 24)
		},
		Kind:   draft.KindPolygon,
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "bracket",
		Source: []draft.Record{
			pp(10, 10),
			pp(30, 10),
			rp(40, 20, 10, ""),
			pp(40, 44),
			rp(30, 54, 10, ""),
			pp(10, 54),
		},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
}
