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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/draft"
	"seehuhn.de/go/draft/internal/drawfile"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Summarise the reconstructed entities of a drawing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, res, err := load(args[0])
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), args[0], d, res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, fname string, d *drawfile.Drawing, res []drawfile.Result) {
	fmt.Fprintf(w, "File: %s\n", fname)
	fmt.Fprintf(w, "Entities: %d\n\n", len(res))

	failed := 0
	for i, r := range res {
		fmt.Fprintf(w, "%s (%s)\n", r.Name, d.Entities[i].Kind)
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "  error: %v\n", r.Err)
			continue
		}

		p := r.Path
		arcs := 0
		for _, s := range p.Segments {
			if _, ok := s.(draft.Arc); ok {
				arcs++
			}
		}
		box := p.BBox()
		fmt.Fprintf(w, "  points: %d, closed: %t\n", len(p.Points), p.Closed)
		fmt.Fprintf(w, "  segments: %d, arcs: %d, fallbacks: %d\n", len(p.Segments), arcs, p.Fallbacks())
		fmt.Fprintf(w, "  length: %.6f\n", p.Length())
		if p.Closed {
			fmt.Fprintf(w, "  area: %.6f\n", p.Area())
		}
		fmt.Fprintf(w, "  bbox: (%.6f, %.6f) - (%.6f, %.6f)\n", box.LLx, box.LLy, box.URx, box.URy)
	}

	if failed > 0 {
		fmt.Fprintf(w, "\n%d of %d entities failed\n", failed, len(res))
	}
}
