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

package drawfile

import (
	"encoding/json"
	"io"

	"seehuhn.de/go/draft"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Shape is the JSON form of a reconstructed entity.
type Shape struct {
	Name     string        `json:"name"`
	Kind     draft.Kind    `json:"kind,omitempty"`
	Closed   bool          `json:"closed"`
	Points   [][2]float64  `json:"points"`
	Segments []SegmentJSON `json:"segments,omitempty"`
	Path     []PathCmd     `json:"path,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// SegmentJSON describes one line or arc of a path.
type SegmentJSON struct {
	Type string     `json:"type"`
	From [2]float64 `json:"from"`
	To   [2]float64 `json:"to"`

	// The following fields are only set for arcs. Sweep is the
	// magnitude of the arc angle in radians, SignedSweep is negative
	// for clockwise arcs.
	Center      *[2]float64 `json:"center,omitempty"`
	Radius      float64     `json:"radius,omitempty"`
	Sweep       float64     `json:"sweep,omitempty"`
	SignedSweep float64     `json:"signed_sweep,omitempty"`
	Clockwise   bool        `json:"clockwise,omitempty"`
	LargeArc    bool        `json:"large_arc,omitempty"`

	Fallback bool `json:"fallback,omitempty"`
}

// PathCmd is one command of the polygonal path, in SVG notation.
type PathCmd struct {
	Cmd string       `json:"cmd"`
	Pts [][2]float64 `json:"pts,omitempty"`
}

// ToShape converts a reconstruction result to its JSON form.
func ToShape(r Result, kind draft.Kind) Shape {
	s := Shape{Name: r.Name, Kind: kind}
	if r.Err != nil {
		s.Error = r.Err.Error()
		return s
	}

	p := r.Path
	s.Closed = p.Closed
	s.Points = make([][2]float64, len(p.Points))
	for i, pt := range p.Points {
		s.Points[i] = xy(pt)
	}
	for _, seg := range p.Segments {
		switch seg := seg.(type) {
		case draft.Line:
			s.Segments = append(s.Segments, SegmentJSON{
				Type:     "line",
				From:     xy(seg.From),
				To:       xy(seg.To),
				Fallback: seg.Fallback,
			})
		case draft.Arc:
			center := xy(seg.Center)
			s.Segments = append(s.Segments, SegmentJSON{
				Type:        "arc",
				From:        xy(seg.From),
				To:          xy(seg.To),
				Center:      &center,
				Radius:      seg.Radius,
				Sweep:       seg.Sweep,
				SignedSweep: seg.SignedSweep,
				Clockwise:   seg.Clockwise,
				LargeArc:    seg.LargeArc,
			})
		}
	}
	s.Path = pathCmds(p.Data().Iter())
	return s
}

// WriteShapes writes the JSON form of all results.
func WriteShapes(w io.Writer, d *Drawing, results []Result) error {
	out := struct {
		Shapes []Shape `json:"shapes"`
	}{
		Shapes: make([]Shape, len(results)),
	}
	for i, r := range results {
		var kind draft.Kind
		if i < len(d.Entities) {
			kind = d.Entities[i].Kind
		}
		out.Shapes[i] = ToShape(r, kind)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pathCmds(p path.Path) []PathCmd {
	var cmds []PathCmd
	for cmd, pts := range p {
		c := PathCmd{}
		switch cmd {
		case path.CmdMoveTo:
			c.Cmd = "M"
		case path.CmdLineTo:
			c.Cmd = "L"
		case path.CmdQuadTo:
			c.Cmd = "Q"
		case path.CmdCubeTo:
			c.Cmd = "C"
		case path.CmdClose:
			c.Cmd = "Z"
		}
		for _, pt := range pts {
			c.Pts = append(c.Pts, xy(pt))
		}
		cmds = append(cmds, c)
	}
	return cmds
}

func xy(v vec.Vec2) [2]float64 {
	return [2]float64{v.X, v.Y}
}
