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

// Command draft reconstructs drafting entities and inspects or exports the
// resulting geometry.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/draft"
	"seehuhn.de/go/draft/internal/drawfile"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "draft",
	Short: "Reconstruct drafting paths from point and radius records",
	Long: `draft reads drawings stored as JSON or YAML files and reconstructs the
geometry of each entity from its point and radius-point records.
The results can be summarised, exported as JSON, or rendered to PNG and PDF.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
			draft.SetLogger(slog.New(h))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped records and arc fallbacks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// load reads a drawing and reconstructs all its entities.
func load(fname string) (*drawfile.Drawing, []drawfile.Result, error) {
	d, err := drawfile.Load(fname)
	if err != nil {
		return nil, nil, err
	}
	return d, d.Reconstruct(), nil
}

// create opens an output file, using stdout for "-".
func create(fname string) (*os.File, func() error, error) {
	if fname == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
