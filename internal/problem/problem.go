// SPDX-License-Identifier: MIT

// Package problem decodes ranking problems from JSON and CSV documents and
// turns them into topsis alternatives.
//
// JSON:
//
//	{"criteria":[{"id":"price","name":"Price","weight":0.35,"cost":true}],
//	 "alternatives":[{"name":"Mobile 1","values":{"price":250}}]}
//
// CSV (";" or "," detected from the header line):
//
//	name;price:0.35:cost;storage:0.25:benefit
//	Mobile 1;250;16
//
// An empty cell leaves that criterion out of the alternative, which the
// ranking then reports as incomplete data.
package problem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmcdm/topsis"
)

var (
	// ErrNoCriteria indicates a document without criteria.
	ErrNoCriteria = errors.New("problem: no criteria declared")

	// ErrDuplicateCriterion indicates a criterion ID declared twice.
	ErrDuplicateCriterion = errors.New("problem: duplicate criterion id")

	// ErrUnknownCriterion indicates a value for an undeclared criterion.
	ErrUnknownCriterion = errors.New("problem: value for unknown criterion")

	// ErrMalformed indicates a document that cannot be parsed.
	ErrMalformed = errors.New("problem: malformed document")

	// ErrUnknownFormat indicates an unsupported file extension.
	ErrUnknownFormat = errors.New("problem: unknown format")
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// AlternativeSpec is one alternative as written in a document.
type AlternativeSpec struct {
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
}

// Problem is a decoded ranking problem.
type Problem struct {
	Criteria     []topsis.Criterion `json:"criteria"`
	Alternatives []AlternativeSpec  `json:"alternatives"`
}

// Validate checks the criteria declarations.
func (p *Problem) Validate() error {
	if len(p.Criteria) == 0 {
		return ErrNoCriteria
	}
	seen := make(map[string]struct{}, len(p.Criteria))
	for _, c := range p.Criteria {
		if c.ID == "" {
			return fmt.Errorf("%w: empty criterion id", ErrMalformed)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateCriterion, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}

// ToAlternatives converts the document into topsis alternatives, values in
// criteria declaration order. Missing values are left out.
func (p *Problem) ToAlternatives() ([]topsis.Alternative, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(p.Criteria))
	for _, c := range p.Criteria {
		known[c.ID] = struct{}{}
	}

	out := make([]topsis.Alternative, 0, len(p.Alternatives))
	for i, spec := range p.Alternatives {
		for id := range spec.Values {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("alternative %d (%q): %w: %q", i, spec.Name, ErrUnknownCriterion, id)
			}
		}
		alt := topsis.Alternative{Name: spec.Name}
		for _, c := range p.Criteria {
			if v, ok := spec.Values[c.ID]; ok {
				alt.AddValue(c, v)
			}
		}
		out = append(out, alt)
	}

	return out, nil
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a document of the given format.
func Decode(r io.Reader, format Format) (*Problem, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatCSV:
		return DecodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// LoadFile opens path and decodes it by extension.
func LoadFile(path string) (*Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, format)
}
