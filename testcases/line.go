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

var lineCases = []TestCase{
	{
		Name:   "square_polyline",
		Source: []draft.Record{pp(0, 0), pp(4, 0), pp(4, 4), pp(0, 4)},
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "zigzag",
		Source: zigzag(8, 40, 56, 16, 6),
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     thin,
	},
	{
		Name:   "staircase",
		Source: staircase(8, 56, 8, 6),
		Kind:   draft.KindPolyline,
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3},
	},
}

// zigzag builds a polyline alternating between two heights.
func zigzag(x1, y, x2, amplitude float64, n int) []draft.Record {
	res := []draft.Record{pp(x1, y)}
	dx := (x2 - x1) / float64(n)
	for i := 1; i <= n; i++ {
		yi := y
		if i%2 == 1 {
			yi -= amplitude
		}
		res = append(res, pp(x1+float64(i)*dx, yi))
	}
	return res
}

// staircase builds n steps going up and to the right.
func staircase(x, y, step float64, n int) []draft.Record {
	res := []draft.Record{pp(x, y)}
	for range n {
		y -= step
		res = append(res, pp(x, y))
		x += step
		res = append(res, pp(x, y))
	}
	return res
}
