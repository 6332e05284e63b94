// Package report renders the outcome of a batch of runs as text, JSON or
// YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects how a Report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Outcome is the result of one run.
type Outcome struct {
	Run          string `json:"run" yaml:"run"`
	Backend      string `json:"backend" yaml:"backend"`
	Instructions int    `json:"instructions" yaml:"instructions"`
	Shards       int    `json:"shards" yaml:"shards"`
	Magnitude    int    `json:"magnitude" yaml:"magnitude"`
	Expect       *int   `json:"expect,omitempty" yaml:"expect,omitempty"`
	Passed       bool   `json:"passed" yaml:"passed"`
	Elapsed      string `json:"elapsed" yaml:"elapsed"`
}

// Report groups every outcome of a single invocation.
type Report struct {
	RunID    string    `json:"run_id" yaml:"run_id"`
	Source   string    `json:"source" yaml:"source"`
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Failed returns the outcomes whose expectation was not met.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Write renders r to w in the requested format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return r.writeText(w)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tBACKEND\tINSTRUCTIONS\tSHARDS\tMAGNITUDE\tEXPECT\tSTATUS")
	for _, o := range r.Outcomes {
		expect, status := "-", "ok"
		if o.Expect != nil {
			expect = fmt.Sprint(*o.Expect)
		}
		if !o.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			o.Run, o.Backend, o.Instructions, o.Shards, o.Magnitude, expect, status)
	}
	return tw.Flush()
}
