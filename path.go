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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Data converts the tessellated outline of p into a path.
// Closed outlines end with a ClosePath command.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	if len(p.Points) == 0 {
		return d
	}
	d = d.MoveTo(p.Points[0])
	for _, pt := range p.Points[1:] {
		d = d.LineTo(pt)
	}
	if p.Closed {
		d = d.Close()
	}
	return d
}

// BBox returns the smallest rectangle which contains the path.
// Arc segments contribute their exact extent, not only the sampled points.
func (p *Path) BBox() rect.Rect {
	if len(p.Points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: p.Points[0].X, LLy: p.Points[0].Y,
		URx: p.Points[0].X, URy: p.Points[0].Y,
	}
	extend := func(v vec.Vec2) {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	for _, pt := range p.Points[1:] {
		extend(pt)
	}
	for _, s := range p.Segments {
		a, ok := s.(Arc)
		if !ok {
			continue
		}
		for k := range 4 {
			angle := float64(k) * math.Pi / 2
			if arcContains(a, angle) {
				extend(vec.Vec2{
					X: a.Center.X + a.Radius*math.Cos(angle),
					Y: a.Center.Y + a.Radius*math.Sin(angle),
				})
			}
		}
	}
	return b
}

// arcContains reports whether the ray from the center at the given angle
// crosses the arc.
func arcContains(a Arc, angle float64) bool {
	var d float64
	if a.Clockwise {
		d = normalizeAngle(a.StartAngle - angle)
	} else {
		d = normalizeAngle(angle - a.StartAngle)
	}
	return d <= a.Sweep
}

// Length returns the length of the path, measured along the exact arcs.
// For closed polygons the implied closing edge is included.
func (p *Path) Length() float64 {
	var l float64
	for _, s := range p.Segments {
		switch s := s.(type) {
		case Line:
			l += s.To.Sub(s.From).Length()
		case Arc:
			l += s.Radius * s.Sweep
		}
	}
	if p.Kind == KindPolygon && p.Closed && len(p.Points) > 0 && len(p.Segments) > 0 {
		last := End(p.Segments[len(p.Segments)-1])
		l += p.Points[0].Sub(last).Length()
	}
	return l
}

// Area returns the signed area enclosed by the tessellated outline.
// The area is positive for counter-clockwise outlines and zero for
// paths which are not closed.
func (p *Path) Area() float64 {
	if !p.Closed || len(p.Points) < 3 {
		return 0
	}
	var sum float64
	n := len(p.Points)
	for i, a := range p.Points {
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Fallbacks returns the number of arcs which were replaced by lines.
func (p *Path) Fallbacks() int {
	n := 0
	for _, s := range p.Segments {
		if l, ok := s.(Line); ok && l.Fallback {
			n++
		}
	}
	return n
}

// UnionBBox returns the bounding box of all non-empty paths.
// The second return value is false if there is nothing to draw.
func UnionBBox(paths ...*Path) (rect.Rect, bool) {
	var box rect.Rect
	found := false
	for _, p := range paths {
		if p == nil || len(p.Points) == 0 {
			continue
		}
		b := p.BBox()
		if !found {
			box, found = b, true
			continue
		}
		box.LLx = min(box.LLx, b.LLx)
		box.LLy = min(box.LLy, b.LLy)
		box.URx = max(box.URx, b.URx)
		box.URy = max(box.URy, b.URy)
	}
	return box, found
}

// FitScale returns the largest uniform scale factor which makes box fit
// into an area of the given width and height. Boxes with zero extent in
// one direction are fitted along the other direction only. If no
// positive, finite scale exists, the result is 1.
func FitScale(box rect.Rect, width, height float64) float64 {
	w := box.URx - box.LLx
	h := box.URy - box.LLy

	s := 1.0
	switch {
	case w > 0 && h > 0:
		s = min(width/w, height/h)
	case w > 0:
		s = width / w
	case h > 0:
		s = height / h
	}
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		s = 1
	}
	return s
}
