package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/martinemde/hamlattr/attrparser"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

// fragmentReport is the result of parsing one fragment.
type fragmentReport struct {
	File       string          `json:"file,omitempty" yaml:"file,omitempty"`
	Line       int             `json:"line,omitempty" yaml:"line,omitempty"`
	Fragment   string          `json:"fragment" yaml:"fragment"`
	Attributes attrparser.List `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Error      *errorReport    `json:"error,omitempty" yaml:"error,omitempty"`
}

type errorReport struct {
	Reason  string              `json:"reason" yaml:"reason"`
	Message string              `json:"message" yaml:"message"`
	Pos     attrparser.Position `json:"pos" yaml:"pos"`
}

func newFragmentReport(file string, line int, fragment string) fragmentReport {
	r := fragmentReport{File: file, Line: line, Fragment: fragment}
	attrs, err := attrparser.Parse(fragment)
	if err != nil {
		r.Error = newErrorReport(err)
		return r
	}
	r.Attributes = attrs
	return r
}

func newErrorReport(err error) *errorReport {
	var se *attrparser.SyntaxError
	if !errors.As(err, &se) {
		return &errorReport{Reason: "error", Message: err.Error()}
	}
	return &errorReport{Reason: se.Reason.String(), Message: se.Message, Pos: se.Pos}
}

// location renders file:line:col for an error, the way compilers report it.
func (r fragmentReport) location() string {
	col := 0
	if r.Error != nil {
		col = r.Error.Pos.Column
	}
	switch {
	case r.File != "" && r.Line > 0:
		return fmt.Sprintf("%s:%d:%d", r.File, r.Line, col)
	case r.File != "":
		return r.File
	default:
		return fmt.Sprintf("col %d", col)
	}
}

func writeReports(w io.Writer, f format, reports []fragmentReport) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range reports {
			if err := writeTextReport(w, r); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeTextReport(w io.Writer, r fragmentReport) error {
	if r.Error != nil {
		_, err := fmt.Fprintf(w, "%s: %s\n", r.location(), r.Error.Message)
		return err
	}
	if r.File != "" {
		if _, err := fmt.Fprintf(w, "%s:%d:\n", r.File, r.Line); err != nil {
			return err
		}
	}
	for _, a := range r.Attributes {
		if _, err := fmt.Fprintf(w, "  %-20s %-10s %s\n", a.Name, a.Kind, a.Value); err != nil {
			return err
		}
	}
	return nil
}

func countFailures(reports []fragmentReport) int {
	n := 0
	for _, r := range reports {
		if r.Error != nil {
			n++
		}
	}
	return n
}
