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

package draft_test

import (
	"errors"
	"maps"
	"math"
	"reflect"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draft"
	"seehuhn.de/go/draft/testcases"
)

func pp(x, y float64) draft.Record {
	return draft.Record{Command: draft.CmdPoint, Numbers: []float64{x, y}}
}

func rp(x, y, r float64, typ string) draft.Record {
	return draft.Record{Command: draft.CmdRadiusPoint, Numbers: []float64{x, y, r}, Type: typ}
}

func TestSquarePolyline(t *testing.T) {
	src := []draft.Record{pp(0, 0), pp(4, 0), pp(4, 4), pp(0, 4)}
	p, err := draft.Reconstruct(src, draft.KindPolyline)
	if err != nil {
		t.Fatal(err)
	}

	want := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	if !slices.Equal(p.Points, want) {
		t.Errorf("points: got %v, want %v", p.Points, want)
	}
	if len(p.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(p.Segments))
	}
	for i, s := range p.Segments {
		l, ok := s.(draft.Line)
		if !ok {
			t.Errorf("segment %d: got %T, want Line", i, s)
			continue
		}
		if l.Fallback {
			t.Errorf("segment %d is a fallback", i)
		}
	}
	if p.Closed {
		t.Error("open polyline reported as closed")
	}
}

func TestSquarePolygon(t *testing.T) {
	src := []draft.Record{pp(0, 0), pp(4, 0), pp(4, 4), pp(0, 4)}
	p, err := draft.Reconstruct(src, draft.KindPolygon)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Points) != 4 {
		t.Errorf("got %d points, want 4: %v", len(p.Points), p.Points)
	}
	if !p.Closed {
		t.Error("polygon not closed")
	}
	if p.Points[0] == p.Points[len(p.Points)-1] {
		t.Error("closing point is repeated")
	}
}

func TestSemicircleRecords(t *testing.T) {
	src := []draft.Record{pp(0, 0), rp(4, 0, 2, "")}
	p, err := draft.Reconstruct(src, draft.KindPolyline)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(p.Segments))
	}
	a, ok := p.Segments[0].(draft.Arc)
	if !ok {
		t.Fatalf("got %T, want Arc", p.Segments[0])
	}
	if a.Center.Sub(vec.Vec2{X: 2, Y: 0}).Length() > 1e-12 {
		t.Errorf("center: got %v", a.Center)
	}
	if math.Abs(a.Sweep-math.Pi) > 1e-12 {
		t.Errorf("sweep: got %g", a.Sweep)
	}

	first, last := p.Points[0], p.Points[len(p.Points)-1]
	if first != (vec.Vec2{X: 0, Y: 0}) || last != (vec.Vec2{X: 4, Y: 0}) {
		t.Errorf("end points: got %v, %v", first, last)
	}
	if len(p.Points) < 25 {
		t.Errorf("arc not tessellated: %d points", len(p.Points))
	}
}

func TestInfeasibleArc(t *testing.T) {
	src := []draft.Record{pp(0, 0), rp(10, 0, 1, "")}
	p, err := draft.Reconstruct(src, draft.KindPolyline)
	if err != nil {
		t.Fatal(err)
	}
	want := draft.Line{From: vec.Vec2{X: 0, Y: 0}, To: vec.Vec2{X: 10, Y: 0}, Fallback: true}
	if len(p.Segments) != 1 || p.Segments[0] != want {
		t.Errorf("segments: got %v, want [%v]", p.Segments, want)
	}
	if p.Fallbacks() != 1 {
		t.Errorf("Fallbacks() = %d, want 1", p.Fallbacks())
	}
}

func TestReconstructErrors(t *testing.T) {
	cases := []struct {
		name string
		src  []draft.Record
		kind draft.Kind
		want error
	}{
		{"nil", nil, draft.KindPolyline, draft.ErrNoSource},
		{"unknown_tokens", []draft.Record{{Command: "XX", Numbers: []float64{1, 2}}}, draft.KindPolyline, draft.ErrNoCommands},
		{"all_dropped", []draft.Record{pp(math.NaN(), 1)}, draft.KindPolyline, draft.ErrNoCommands},
		{"single_point_polygon", []draft.Record{pp(1, 1), pp(1, 1)}, draft.KindPolygon, draft.ErrEmptyPath},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := draft.Reconstruct(c.src, c.kind)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
			if p != nil {
				t.Errorf("unexpected path %v", p)
			}
		})
	}
}

// A single point is a valid polyline.
func TestSinglePointPolyline(t *testing.T) {
	p, err := draft.Reconstruct([]draft.Record{pp(3, 4)}, draft.KindPolyline)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Points) != 1 || len(p.Segments) != 0 {
		t.Errorf("got %v", p)
	}
}

func TestEntityReconstruct(t *testing.T) {
	e := &draft.Entity{
		Name:   "outline",
		Kind:   draft.KindPolygon,
		Source: []draft.Record{pp(0, 0), pp(4, 0), pp(4, 4)},
	}
	if !e.Reconstruct() {
		t.Fatal("reconstruction failed")
	}
	if len(e.Points) != 3 || len(e.PathSegments) != 2 {
		t.Errorf("got %d points, %d segments", len(e.Points), len(e.PathSegments))
	}

	e.Source = []draft.Record{{Command: "??"}}
	if e.Reconstruct() {
		t.Fatal("reconstruction of garbage succeeded")
	}
	if len(e.Points) != 0 || len(e.PathSegments) != 0 {
		t.Errorf("output not cleared: %v, %v", e.Points, e.PathSegments)
	}
}

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p1, err := draft.Reconstruct(tc.Source, tc.Kind)
				if err != nil {
					t.Fatal(err)
				}
				p2, err := draft.Reconstruct(tc.Source, tc.Kind)
				if err != nil {
					t.Fatal(err)
				}
				if !reflect.DeepEqual(p1, p2) {
					t.Error("reconstruction is not deterministic")
				}
				if len(p1.Points) == 0 {
					t.Fatal("no points")
				}

				checkChain(t, p1)
				checkArcs(t, p1)

				if again := draft.Dedup(p1.Points); !slices.Equal(again, p1.Points) {
					t.Error("stored points contain duplicates")
				}
				if tc.Kind == draft.KindPolygon && draft.IsClosed(p1.Points) {
					t.Error("polygon repeats its closing point")
				}
			})
		}
	}
}

// checkChain verifies that consecutive segments share their end points.
func checkChain(t *testing.T, p *draft.Path) {
	t.Helper()
	for i := 1; i < len(p.Segments); i++ {
		prev := draft.End(p.Segments[i-1])
		next := draft.Start(p.Segments[i])
		if prev.Sub(next).Length() > 1e-9 {
			t.Errorf("segments %d and %d do not connect: %v, %v", i-1, i, prev, next)
		}
	}
}

// checkArcs verifies the geometric invariants of all arc segments.
func checkArcs(t *testing.T, p *draft.Path) {
	t.Helper()
	for i, s := range p.Segments {
		a, ok := s.(draft.Arc)
		if !ok {
			continue
		}
		d0 := a.Center.Sub(a.From).Length()
		d1 := a.Center.Sub(a.To).Length()
		if math.Abs(d0-a.Radius) > 1e-5 || math.Abs(d1-a.Radius) > 1e-5 {
			t.Errorf("arc %d: center not at distance %g: %g, %g", i, a.Radius, d0, d1)
		}
		if (a.SignedSweep < 0) != a.Clockwise {
			t.Errorf("arc %d: signed sweep %g, clockwise %t", i, a.SignedSweep, a.Clockwise)
		}
		pts := draft.SampleArc(a)
		if pts[0] != a.From || pts[len(pts)-1] != a.To {
			t.Errorf("arc %d: samples do not end exactly at the end points", i)
		}
	}
}

func BenchmarkReconstructAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range cases {
			if _, err := draft.Reconstruct(tc.Source, tc.Kind); err != nil {
				b.Fatal(err)
			}
		}
	}
}
