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

// Command genpdf generates reference sheets and previews for the test cases.
// For every test case it writes a PDF drawing sheet and a PNG preview.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/draft"
	"seehuhn.de/go/draft/preview"
	"seehuhn.de/go/draft/sheet"
	"seehuhn.de/go/draft/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			p, err := draft.Reconstruct(tc.Source, tc.Kind)
			if err != nil {
				// degenerate cases may legitimately have no geometry
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				continue
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := sheet.Write(pdfPath, []*draft.Path{p}, sheetOptions(tc)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := writePNG(pngPath, tc, p); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// sheetOptions returns a page of the preview size, so that one point in
// the PDF corresponds to one pixel in the PNG.
func sheetOptions(tc testcases.TestCase) *sheet.Options {
	opt := sheet.DefaultOptions()
	opt.Width = float64(tc.Width)
	opt.Height = float64(tc.Height)
	opt.Margin = 8

	if op, ok := tc.Op.(testcases.Stroke); ok {
		opt.LineWidth = op.Width
		opt.Cap = op.Cap
		opt.Join = op.Join
		opt.Fill = -1
	}
	return opt
}

func writePNG(fname string, tc testcases.TestCase, p *draft.Path) error {
	r := preview.NewRenderer(tc.Width, tc.Height)
	if op, ok := tc.Op.(testcases.Stroke); ok {
		r.FillClosed = false
		r.LineWidth = op.Width
	}
	img := r.Render(p)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
