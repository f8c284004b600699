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

// Command export writes the test cases as a drawing file, together with
// the reconstructed geometry.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/draft/internal/drawfile"
	"seehuhn.de/go/draft/testcases"
)

const (
	drawingFile = "testdata/testcases.json"
	shapesFile  = "testdata/shapes.json"
)

func main() {
	d := &drawfile.Drawing{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			d.Entities = append(d.Entities, drawfile.Entity{
				Name:   category + "_" + tc.Name,
				Kind:   tc.Kind,
				Source: tc.Source,
			})
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	if err := writeFile(drawingFile, func(f *os.File) error {
		return drawfile.Encode(f, d, drawfile.JSON)
	}); err != nil {
		panic(err)
	}
	if err := writeFile(shapesFile, func(f *os.File) error {
		return drawfile.WriteShapes(f, d, d.Reconstruct())
	}); err != nil {
		panic(err)
	}
}

func writeFile(fname string, write func(*os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
