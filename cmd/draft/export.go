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
	"github.com/spf13/cobra"

	"seehuhn.de/go/draft/internal/drawfile"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the reconstructed geometry as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		d, res, err := load(args[0])
		if err != nil {
			return err
		}

		out, closeOut, err := create(exportOut)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeOut(); err == nil {
				err = cerr
			}
		}()

		return drawfile.WriteShapes(out, d, res)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "-", "output file")
	rootCmd.AddCommand(exportCmd)
}
