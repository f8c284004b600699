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
	"seehuhn.de/go/draft/sheet"
)

var (
	pdfOut       string
	pdfLineWidth float64
	pdfPortrait  bool
)

var pdfCmd = &cobra.Command{
	Use:   "pdf [file]",
	Short: "Write the reconstructed geometry to a one-page PDF sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, res, err := load(args[0])
		if err != nil {
			return err
		}

		opt := sheet.DefaultOptions()
		opt.LineWidth = pdfLineWidth
		if pdfPortrait {
			opt.Width, opt.Height = opt.Height, opt.Width
		}
		return sheet.Write(pdfOut, drawfile.Paths(res), opt)
	},
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfOut, "output", "o", "out.pdf", "output file")
	pdfCmd.Flags().Float64Var(&pdfLineWidth, "line-width", 0.75, "stroke width in points")
	pdfCmd.Flags().BoolVar(&pdfPortrait, "portrait", false, "use portrait page orientation")
	rootCmd.AddCommand(pdfCmd)
}
