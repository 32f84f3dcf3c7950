// Package config loads calibration files: YAML documents that override the
// built-in gore calibration and sheet layout.
//
// A file may set any subset of fields; everything else keeps the value of
// the table named by base (the built-in tables by default). A sheet entry
// replaces the whole sheet of its print size.
//
//	calibration:
//	  name: my-printer
//	  shear_angles: [19.0, 8.0, -8.0, -19.0]
//	layout:
//	  sheets:
//	    a4: {centers: [160, 437], top: 66, page_width: 595.28, page_height: 841.89}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/paperglobe/gore"
	"github.com/gogpu/paperglobe/template"
)

// ErrInvalid is returned for files that cannot be parsed or whose tables
// fail validation.
var ErrInvalid = errors.New("config: invalid calibration file")

// File is a decoded calibration file.
type File struct {
	Calibration gore.Calibration
	Layout      template.Layout
}

// Load reads the calibration file at path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	f, err := Decode(bytes.NewReader(b))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a calibration file from r.
func Decode(r io.Reader) (File, error) {
	var raw struct {
		Calibration yaml.Node `yaml:"calibration"`
		Layout      yaml.Node `yaml:"layout"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	f := File{
		Calibration: gore.DefaultCalibration(),
		Layout:      template.DefaultLayout(),
	}

	if base := baseName(&raw.Calibration); base != "" {
		c, err := gore.LookupCalibration(base)
		if err != nil {
			return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		f.Calibration = c
	}
	cal := calibrationFields{Calibration: f.Calibration}
	if err := overlay(&raw.Calibration, &cal); err != nil {
		return File{}, fmt.Errorf("%w: calibration: %w", ErrInvalid, err)
	}
	f.Calibration = cal.Calibration

	if base := baseName(&raw.Layout); base != "" {
		l, err := template.LookupLayout(base)
		if err != nil {
			return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		f.Layout = l
	}
	// Never mutate a registered table's map.
	f.Layout.Sheets = cloneSheets(f.Layout.Sheets)
	lay := layoutFields{Layout: f.Layout}
	if err := overlay(&raw.Layout, &lay); err != nil {
		return File{}, fmt.Errorf("%w: layout: %w", ErrInvalid, err)
	}
	f.Layout = lay.Layout

	if err := f.Calibration.Validate(); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := f.Layout.Validate(); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return f, nil
}

// calibrationFields and layoutFields accept the base key next to the
// inlined table fields.
type calibrationFields struct {
	Base             string `yaml:"base"`
	gore.Calibration `yaml:",inline"`
}

type layoutFields struct {
	Base            string `yaml:"base"`
	template.Layout `yaml:",inline"`
}

// baseName returns the base key of a mapping node, or "".
func baseName(n *yaml.Node) string {
	if n.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "base" {
			return n.Content[i+1].Value
		}
	}
	return ""
}

// overlay decodes n on top of the values already in out. An absent
// section leaves out untouched.
func overlay(n *yaml.Node, out any) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(n); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	dec := yaml.NewDecoder(&buf)
	dec.KnownFields(true)
	return dec.Decode(out)
}

func cloneSheets(m map[template.Size]template.Sheet) map[template.Size]template.Sheet {
	out := make(map[template.Size]template.Sheet, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
