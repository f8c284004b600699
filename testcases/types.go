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
	"seehuhn.de/go/draft"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single drafting entity used in tests and previews.
type TestCase struct {
	Name   string         // lowercase a-z and _ only
	Source []draft.Record // the records to reconstruct
	Kind   draft.Kind     // entity kind
	Width  int            // preview width in pixels
	Height int            // preview height in pixels
	Op     Operation      // fill or stroke
}

// Operation is the drawing operation used to show the reconstructed path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation (nonzero winding rule).
type Fill struct{}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width float64                // line width (>0), in pixels
	Cap   graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join  graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
}

func (Stroke) isOperation() {}

// pp builds a point record.
func pp(x, y float64) draft.Record {
	return draft.Record{Command: draft.CmdPoint, Numbers: []float64{x, y}}
}

// rp builds a radius-point record.
func rp(x, y, r float64, typ string) draft.Record {
	return draft.Record{Command: draft.CmdRadiusPoint, Numbers: []float64{x, y, r}, Type: typ}
}

// thin is the default stroke for open paths.
var thin = Stroke{
	Width: 2,
	Cap:   graphics.LineCapRound,
	Join:  graphics.LineJoinRound,
}
