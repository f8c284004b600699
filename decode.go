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
	"strings"
	"unicode"

	"seehuhn.de/go/geom/vec"
)

// Record is a single drafting record, as stored in a drawing.
type Record struct {
	Command string    `json:"command" yaml:"command"`
	Numbers []float64 `json:"numbers" yaml:"numbers"`
	Type    string    `json:"type,omitempty" yaml:"type,omitempty"`
}

// Command tokens understood by [Decode].
const (
	// CmdPoint moves to a point (first record) or draws a line to it.
	CmdPoint = "PP"

	// CmdRadiusPoint draws an arc to a point. The third number is the
	// arc radius.
	CmdRadiusPoint = "RP"
)

// CommandKind identifies the operation of a [Command].
type CommandKind int

// These are the command kinds.
const (
	Move CommandKind = iota
	LineTo
	ArcTo
)

func (k CommandKind) String() string {
	switch k {
	case Move:
		return "move"
	case LineTo:
		return "line"
	case ArcTo:
		return "arc"
	default:
		return "unknown"
	}
}

// Direction is the rotation direction of an arc.
type Direction int

// These are the possible arc directions.
const (
	CounterClockwise Direction = 1
	Clockwise        Direction = -1
)

// Command is a decoded drafting command.
type Command struct {
	Kind  CommandKind
	Point vec.Vec2

	// The following fields are only used for ArcTo.
	Radius    float64
	Direction Direction
	LargeArc  bool

	RawType string
}

// DecodeStats summarises a call to [Decode].
type DecodeStats struct {
	Records int // number of input records
	Used    int // records turned into commands
	Ignored int // records with an unknown command token
	Dropped int // records with missing or non-finite numbers
}

// Decode turns drafting records into commands.
//
// The first usable record always becomes a [Move]. Records with unknown
// command tokens are ignored, and records with missing or non-finite
// coordinates are dropped. Neither stops decoding of the remaining records.
func Decode(records []Record) ([]Command, DecodeStats) {
	stats := DecodeStats{Records: len(records)}
	cmds := make([]Command, 0, len(records))

	for i, rec := range records {
		token := strings.TrimSpace(rec.Command)
		isPoint := strings.EqualFold(token, CmdPoint)
		isRadius := strings.EqualFold(token, CmdRadiusPoint)
		if !isPoint && !isRadius {
			stats.Ignored++
			Logger().Debug("ignoring record", "index", i, "command", rec.Command)
			continue
		}

		if len(rec.Numbers) < 2 || !isFinite(rec.Numbers[0]) || !isFinite(rec.Numbers[1]) {
			stats.Dropped++
			Logger().Debug("dropping record without usable point", "index", i, "numbers", rec.Numbers)
			continue
		}
		cmd := Command{
			Point:   vec.Vec2{X: rec.Numbers[0], Y: rec.Numbers[1]},
			RawType: rec.Type,
		}

		switch {
		case len(cmds) == 0:
			cmd.Kind = Move
		case isPoint:
			cmd.Kind = LineTo
		default:
			if len(rec.Numbers) < 3 || !isFinite(rec.Numbers[2]) {
				stats.Dropped++
				Logger().Debug("dropping arc record without usable radius", "index", i, "numbers", rec.Numbers)
				continue
			}
			cmd.Kind = ArcTo
			cmd.Radius = math.Abs(rec.Numbers[2])
			cmd.Direction = directionOf(rec.Type)
			cmd.LargeArc = isLargeArc(rec.Type)
		}

		cmds = append(cmds, cmd)
		stats.Used++
	}

	return cmds, stats
}

// directionOf infers the arc direction from a record type token.
func directionOf(t string) Direction {
	lower := strings.ToLower(t)
	for _, s := range []string{"ccw", "counterclockwise", "counter-clockwise", "anticlockwise"} {
		if strings.Contains(lower, s) {
			return CounterClockwise
		}
	}
	if strings.Contains(lower, "cw") || strings.Contains(lower, "clockwise") {
		return Clockwise
	}
	if strings.HasSuffix(lower, clockwiseSuffix) {
		return Clockwise
	}
	return CounterClockwise
}

// isLargeArc reports whether a type token asks for the major arc.
// This is the case if the token is written entirely in upper case.
func isLargeArc(t string) bool {
	hasUpper := false
	for _, r := range t {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
