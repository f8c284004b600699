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
	"errors"
	"math"
	"slices"
)

// Reconstruct computes the geometry of a drafting entity from its records.
//
// The result does not share memory with the input. Calling Reconstruct
// twice with the same records gives identical results.
func Reconstruct(records []Record, kind Kind) (*Path, error) {
	if len(records) == 0 {
		return nil, ErrNoSource
	}

	cmds, stats := Decode(records)
	if len(cmds) == 0 {
		return nil, ErrNoCommands
	}
	if stats.Dropped > 0 || stats.Ignored > 0 {
		Logger().Debug("records skipped",
			"records", stats.Records, "dropped", stats.Dropped, "ignored", stats.Ignored)
	}

	raw, segs := Build(cmds)
	pts, closed := Finalize(raw, kind)
	if len(pts) == 0 {
		return nil, ErrEmptyPath
	}

	return &Path{
		Kind:     kind,
		Points:   slices.Clone(pts),
		Segments: slices.Clone(segs),
		Closed:   closed,
	}, nil
}

// Errors returned by [Reconstruct].
var (
	ErrNoSource   = errors.New("draft: no source records")
	ErrNoCommands = errors.New("draft: no usable records")
	ErrEmptyPath  = errors.New("draft: path has no points")
)

// Numerical tolerances.
const (
	// pointEpsilon is the per-axis distance below which two points are
	// considered equal.
	pointEpsilon = 1e-6

	// minChord is the shortest chord for which an arc is constructed.
	minChord = 1e-6

	// minRadius is the smallest usable arc radius.
	minRadius = 1e-6

	// solverEpsilon is the slack allowed when comparing the radius to
	// half the chord length, and the sweep to π.
	solverEpsilon = 1e-6

	// sweepEpsilon is the smallest sweep angle (in radians) of a
	// non-degenerate arc.
	sweepEpsilon = 1e-6
)

// Arc tessellation parameters.
const (
	arcStepAngle = math.Pi / 24 // 7.5°
	minArcSteps  = 4
	maxArcSteps  = 160

	// clockwiseSuffix marks a clockwise arc in a record type token which
	// names no direction explicitly ("r" as in right-hand turn).
	clockwiseSuffix = "r"
)
