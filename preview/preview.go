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

// Package preview renders reconstructed drafting paths into grayscale images.
//
// Drawing coordinates are y-down, like image coordinates. All paths drawn
// together are scaled uniformly to fit the image.
package preview

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draft"
)

// Renderer draws paths into an alpha mask. Create one with [NewRenderer]
// and adjust the fields as needed. A Renderer is not safe for concurrent
// use.
type Renderer struct {
	// Width and Height give the image size in pixels.
	Width, Height int

	// Padding is the margin, in pixels, kept free around the drawing.
	Padding float64

	// LineWidth is the stroke width in pixels. Values which are not
	// positive select the default width of one pixel.
	LineWidth float64

	// FillClosed makes closed outlines filled instead of stroked.
	FillClosed bool

	z *vector.Rasterizer
}

// NewRenderer returns a Renderer with default settings.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		Padding:    defaultPadding,
		LineWidth:  defaultLineWidth,
		FillClosed: true,
	}
}

// Render draws the paths into a new image.
func (r *Renderer) Render(paths ...*draft.Path) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, r.Width, r.Height))
	r.Draw(dst, paths...)
	return dst
}

// Draw draws the paths into dst, which must have the size of the Renderer.
func (r *Renderer) Draw(dst *image.Alpha, paths ...*draft.Path) {
	box, ok := draft.UnionBBox(paths...)
	if !ok {
		return
	}
	ctm := r.fit(box)

	if r.z == nil {
		r.z = vector.NewRasterizer(r.Width, r.Height)
	}
	for _, p := range paths {
		if p == nil || len(p.Points) == 0 {
			continue
		}
		r.z.Reset(r.Width, r.Height)
		if r.FillClosed && p.Closed && len(p.Points) >= 3 {
			r.addFill(p.Points, ctm)
		} else {
			r.addStroke(p.Points, p.Closed, ctm)
		}
		r.z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	}
}

// fit returns the transformation which maps box into the image,
// preserving the aspect ratio.
func (r *Renderer) fit(box rect.Rect) matrix.Matrix {
	s := draft.FitScale(box, float64(r.Width)-2*r.Padding, float64(r.Height)-2*r.Padding)

	tx := float64(r.Width)/2 - s*(box.LLx+box.URx)/2
	ty := float64(r.Height)/2 - s*(box.LLy+box.URy)/2
	return matrix.Matrix{s, 0, 0, s, tx, ty}
}

// addFill adds a closed polygon to the rasterizer.
func (r *Renderer) addFill(pts []vec.Vec2, ctm matrix.Matrix) {
	p := apply(ctm, pts[0])
	r.z.MoveTo(float32(p.X), float32(p.Y))
	for _, pt := range pts[1:] {
		p = apply(ctm, pt)
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}

// addStroke adds the outline of a stroked polyline to the rasterizer.
// Every segment becomes a rectangle and every vertex a disc, which gives
// round joins and caps. All pieces have the same orientation, so that
// overlaps add up instead of cancelling.
func (r *Renderer) addStroke(pts []vec.Vec2, closed bool, ctm matrix.Matrix) {
	d := r.LineWidth / 2
	if !(d > 0) || math.IsInf(d, 0) {
		d = defaultLineWidth / 2
	}

	dev := make([]vec.Vec2, len(pts), len(pts)+1)
	for i, pt := range pts {
		dev[i] = apply(ctm, pt)
	}
	if closed && len(dev) > 2 && dev[0] != dev[len(dev)-1] {
		dev = append(dev, dev[0])
	}

	for i := 1; i < len(dev); i++ {
		a, b := dev[i-1], dev[i]
		seg := b.Sub(a)
		l := seg.Length()
		if l < zeroLengthThreshold {
			continue
		}
		n := vec.Vec2{X: -seg.Y / l * d, Y: seg.X / l * d} // 90° CCW from the tangent
		r.polygon(a.Sub(n), b.Sub(n), b.Add(n), a.Add(n))
	}
	for _, p := range dev {
		r.disc(p, d)
	}
}

// disc adds a regular polygon approximating a circle.
func (r *Renderer) disc(center vec.Vec2, radius float64) {
	var corners [discSides]vec.Vec2
	for i := range corners {
		angle := 2 * math.Pi * float64(i) / discSides
		corners[i] = vec.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	r.polygon(corners[:]...)
}

func (r *Renderer) polygon(pts ...vec.Vec2) {
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}

// apply maps a point from drawing space to device space.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Default values for renderer parameters.
const (
	defaultPadding   = 8.0
	defaultLineWidth = 1.0
)

const (
	// discSides is the number of corners used to draw joins and caps.
	discSides = 16

	// zeroLengthThreshold is the minimum length, in pixels, of a stroked
	// segment. Shorter segments are covered by the vertex discs.
	zeroLengthThreshold = 1e-10
)
