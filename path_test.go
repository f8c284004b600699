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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func mustReconstruct(t *testing.T, src []Record, kind Kind) *Path {
	t.Helper()
	p, err := Reconstruct(src, kind)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func square() []Record {
	return []Record{
		{Command: CmdPoint, Numbers: []float64{0, 0}},
		{Command: CmdPoint, Numbers: []float64{4, 0}},
		{Command: CmdPoint, Numbers: []float64{4, 4}},
		{Command: CmdPoint, Numbers: []float64{0, 4}},
	}
}

func TestPathData(t *testing.T) {
	p := mustReconstruct(t, square(), KindPolygon)
	d := p.Data()

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if len(d.Cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(d.Cmds), len(wantCmds))
	}
	for i, cmd := range wantCmds {
		if d.Cmds[i] != cmd {
			t.Errorf("command %d: got %v, want %v", i, d.Cmds[i], cmd)
		}
	}
	if len(d.Coords) != 4 || d.Coords[2] != (vec.Vec2{X: 4, Y: 4}) {
		t.Errorf("coords: got %v", d.Coords)
	}

	open := mustReconstruct(t, square(), KindPolyline).Data()
	if open.Cmds[len(open.Cmds)-1] == path.CmdClose {
		t.Error("open path was closed")
	}
}

func TestPathBBox(t *testing.T) {
	src := []Record{
		{Command: CmdPoint, Numbers: []float64{0, 0}},
		{Command: CmdRadiusPoint, Numbers: []float64{4, 0, 2}},
	}
	b := mustReconstruct(t, src, KindPolyline).BBox()

	const eps = 1e-12
	if math.Abs(b.LLx) > eps || math.Abs(b.LLy+2) > eps || math.Abs(b.URx-4) > eps || math.Abs(b.URy) > eps {
		t.Errorf("got %+v, want {0 -2 4 0}", b)
	}
}

func TestPathLengthAndArea(t *testing.T) {
	p := mustReconstruct(t, square(), KindPolygon)
	if l := p.Length(); math.Abs(l-16) > 1e-12 {
		t.Errorf("length: got %g, want 16", l)
	}
	if a := p.Area(); math.Abs(a-16) > 1e-12 {
		t.Errorf("area: got %g, want 16", a)
	}

	open := mustReconstruct(t, square(), KindPolyline)
	if l := open.Length(); math.Abs(l-12) > 1e-12 {
		t.Errorf("open length: got %g, want 12", l)
	}
	if a := open.Area(); a != 0 {
		t.Errorf("open area: got %g, want 0", a)
	}

	circle := []Record{
		{Command: CmdPoint, Numbers: []float64{-1, 0}},
		{Command: CmdRadiusPoint, Numbers: []float64{1, 0, 1}},
		{Command: CmdRadiusPoint, Numbers: []float64{-1, 0, 1}},
	}
	c := mustReconstruct(t, circle, KindPolygon)
	if l := c.Length(); math.Abs(l-2*math.Pi) > 1e-9 {
		t.Errorf("circle length: got %g, want 2π", l)
	}
	// The tessellated outline is slightly smaller than the circle.
	if a := c.Area(); a < 3.1 || a > math.Pi {
		t.Errorf("circle area: got %g", a)
	}
}

func TestUnionBBox(t *testing.T) {
	if _, ok := UnionBBox(); ok {
		t.Error("empty union reported a box")
	}
	if _, ok := UnionBBox(nil, &Path{}); ok {
		t.Error("union of empty paths reported a box")
	}

	a := mustReconstruct(t, square(), KindPolygon)
	b := mustReconstruct(t, []Record{
		{Command: CmdPoint, Numbers: []float64{-3, 2}},
		{Command: CmdPoint, Numbers: []float64{1, 7}},
	}, KindPolyline)

	box, ok := UnionBBox(a, nil, b)
	want := rect.Rect{LLx: -3, LLy: 0, URx: 4, URy: 7}
	if !ok || box != want {
		t.Errorf("got %v %t, want %v", box, ok, want)
	}
}

func TestFitScale(t *testing.T) {
	cases := []struct {
		box  rect.Rect
		want float64
	}{
		{rect.Rect{LLx: 0, LLy: 0, URx: 18, URy: 8}, 10},
		{rect.Rect{LLx: 0, LLy: 0, URx: 90, URy: 10}, 2},
		{rect.Rect{LLx: 5, LLy: 0, URx: 5, URy: 40}, 2},
		{rect.Rect{LLx: 5, LLy: 5, URx: 5, URy: 5}, 1},
	}
	for i, c := range cases {
		if got := FitScale(c.box, 180, 80); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%d: got %g, want %g", i, got, c.want)
		}
	}

	if got := FitScale(rect.Rect{URx: 10, URy: 10}, -4, 80); got != 1 {
		t.Errorf("no room: got %g, want 1", got)
	}
}
