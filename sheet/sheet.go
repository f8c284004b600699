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

// Package sheet writes reconstructed drafting paths to single-page PDF
// files.
package sheet

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/draft"
)

// Options control the layout of a sheet.
// Use [DefaultOptions] as a starting point.
type Options struct {
	// Width and Height give the paper size in PDF points.
	Width, Height float64

	// Margin is the space kept free around the drawing, in points.
	Margin float64

	// LineWidth is the stroke width in points.
	LineWidth float64

	// Fill is the gray level (0=black, 1=white) used for the interior of
	// closed outlines. Negative values disable filling.
	Fill float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle
}

// ErrEmpty is returned by [Write] if there is nothing to draw.
var ErrEmpty = errors.New("sheet: no paths to draw")

// Write draws the paths onto a single page and saves it as a PDF file.
// All paths are scaled together to fit the page. Drawing coordinates are
// y-down.
func Write(fname string, paths []*draft.Path, opt *Options) error {
	o := withDefaults(opt)

	box, ok := draft.UnionBBox(paths...)
	if !ok {
		return ErrEmpty
	}

	paper := &pdf.Rectangle{
		URx: o.Width,
		URy: o.Height,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// flip the y-axis and fit the drawing into the page
	s := draft.FitScale(box, o.Width-2*o.Margin, o.Height-2*o.Margin)
	tx := o.Width/2 - s*(box.LLx+box.URx)/2
	ty := o.Height/2 + s*(box.LLy+box.URy)/2
	page.Transform(matrix.Matrix{s, 0, 0, -s, tx, ty})

	page.SetLineWidth(o.LineWidth / s)
	page.SetLineCap(o.Cap)
	page.SetLineJoin(o.Join)
	page.SetStrokeColor(color.DeviceGray(0))

	for _, p := range paths {
		if p == nil || len(p.Points) == 0 {
			continue
		}
		d := p.Data()
		if o.Fill >= 0 && p.Closed && len(p.Points) >= 3 {
			page.SetFillColor(color.DeviceGray(o.Fill))
			drawPath(page, d)
			page.Fill()
		}
		drawPath(page, d)
		page.Stroke()
	}

	return page.Close()
}

// drawPath adds the path to the current page.
func drawPath(page *document.Page, d *path.Data) {
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// DefaultOptions returns the layout used when [Write] is called with nil
// options: A4 landscape, half-inch margins, light gray fill.
func DefaultOptions() *Options {
	return &Options{
		Width:     a4Long,
		Height:    a4Short,
		Margin:    defaultMargin,
		LineWidth: defaultLineWidth,
		Fill:      defaultFill,
		Cap:       graphics.LineCapRound,
		Join:      graphics.LineJoinRound,
	}
}

func withDefaults(opt *Options) Options {
	def := DefaultOptions()
	if opt == nil {
		return *def
	}
	o := *opt
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = def.Width, def.Height
	}
	if o.Margin < 0 {
		o.Margin = def.Margin
	}
	if o.LineWidth <= 0 {
		o.LineWidth = def.LineWidth
	}
	return o
}

// Page layout defaults, in PDF points.
const (
	a4Long           = 842
	a4Short          = 595
	defaultMargin    = 36
	defaultLineWidth = 0.75
	defaultFill      = 0.85
)
