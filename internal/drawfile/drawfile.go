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

// Package drawfile reads drawings, i.e. named lists of drafting entities,
// from JSON or YAML files.
package drawfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/draft"
)

// Drawing is the contents of a drawing file.
type Drawing struct {
	Entities []Entity `json:"entities" yaml:"entities"`
}

// Entity is one entity in a drawing file.
type Entity struct {
	Name   string         `json:"name" yaml:"name"`
	Kind   draft.Kind     `json:"kind" yaml:"kind"`
	Source []draft.Record `json:"source" yaml:"source"`
}

// Format is the encoding of a drawing file.
type Format int

// These are the supported file formats.
const (
	JSON Format = iota
	YAML
)

// FormatOf determines the file format from the file name extension.
func FormatOf(fname string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%s: unsupported file type", fname)
	}
}

// Load reads a drawing from a file.
func Load(fname string) (*Drawing, error) {
	format, err := FormatOf(fname)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return d, nil
}

// Decode reads a drawing in the given format.
func Decode(r io.Reader, format Format) (*Drawing, error) {
	d := &Drawing{}
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}

	for i := range d.Entities {
		if d.Entities[i].Name == "" {
			d.Entities[i].Name = fmt.Sprintf("entity%d", i+1)
		}
	}
	return d, nil
}

// Encode writes a drawing in the given format.
func Encode(w io.Writer, d *Drawing, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case YAML:
		buf := &bytes.Buffer{}
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unknown format %d", format)
	}
}

// Result is the reconstruction of one entity.
type Result struct {
	Name string
	Path *draft.Path // nil if Err is set
	Err  error
}

// Reconstruct computes the geometry of all entities. Entities which fail
// are reported in the corresponding Result and do not affect the others.
func (d *Drawing) Reconstruct() []Result {
	res := make([]Result, len(d.Entities))
	for i, e := range d.Entities {
		p, err := draft.Reconstruct(e.Source, e.Kind)
		if err != nil {
			err = fmt.Errorf("%s: %w", e.Name, err)
		}
		res[i] = Result{Name: e.Name, Path: p, Err: err}
	}
	return res
}

// Paths returns the paths of all successful results.
func Paths(results []Result) []*draft.Path {
	var paths []*draft.Path
	for _, r := range results {
		if r.Err == nil {
			paths = append(paths, r.Path)
		}
	}
	return paths
}
