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
	"errors"
	"image/png"

	"github.com/spf13/cobra"

	"seehuhn.de/go/draft/internal/drawfile"
	"seehuhn.de/go/draft/preview"
)

var (
	pngOut       string
	pngSize      int
	pngLineWidth float64
	pngPadding   float64
	pngOutline   bool
)

var pngCmd = &cobra.Command{
	Use:   "png [file]",
	Short: "Render a preview image of the reconstructed geometry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if pngSize <= 0 {
			return errors.New("image size must be positive")
		}
		if !(pngLineWidth > 0) {
			return errors.New("line width must be positive")
		}

		_, res, err := load(args[0])
		if err != nil {
			return err
		}

		r := preview.NewRenderer(pngSize, pngSize)
		r.LineWidth = pngLineWidth
		r.Padding = pngPadding
		r.FillClosed = !pngOutline
		img := r.Render(drawfile.Paths(res)...)

		out, closeOut, err := create(pngOut)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeOut(); err == nil {
				err = cerr
			}
		}()

		return png.Encode(out, img)
	},
}

func init() {
	pngCmd.Flags().StringVarP(&pngOut, "output", "o", "out.png", "output file")
	pngCmd.Flags().IntVar(&pngSize, "size", 256, "image width and height in pixels")
	pngCmd.Flags().Float64Var(&pngLineWidth, "line-width", 1, "stroke width in pixels")
	pngCmd.Flags().Float64Var(&pngPadding, "padding", 8, "margin around the drawing in pixels")
	pngCmd.Flags().BoolVar(&pngOutline, "outline", false, "stroke closed outlines instead of filling them")
	rootCmd.AddCommand(pngCmd)
}
