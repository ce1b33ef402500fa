// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmcdm/topsis"
)

// DecodeCSV reads a CSV problem document.
//
// Header: "name" followed by one "id:weight[:cost|:benefit]" cell per
// criterion. Rows: alternative name followed by raw values; an empty cell
// means the value is missing.
func DecodeCSV(r io.Reader) (*Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("problem: read csv: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrMalformed, err)
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, ErrNoCriteria
	}

	header := records[0]
	p := &Problem{Criteria: make([]topsis.Criterion, 0, len(header)-1)}
	for col, cell := range header[1:] {
		c, err := parseCriterion(cell)
		if err != nil {
			return nil, fmt.Errorf("header column %d: %w", col+2, err)
		}
		p.Criteria = append(p.Criteria, c)
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	for line, rec := range records[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformed, line+2, len(rec), len(header))
		}
		spec := AlternativeSpec{Name: strings.TrimSpace(rec[0]), Values: make(map[string]float64, len(rec)-1)}
		for k, cell := range rec[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %v", ErrMalformed, line+2, k+2, err)
			}
			spec.Values[p.Criteria[k].ID] = v
		}
		p.Alternatives = append(p.Alternatives, spec)
	}

	return p, nil
}

// parseCriterion parses "id:weight[:cost|:benefit]".
func parseCriterion(cell string) (topsis.Criterion, error) {
	parts := strings.Split(strings.TrimSpace(cell), ":")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return topsis.Criterion{}, fmt.Errorf("%w: criterion %q, want id:weight[:cost|:benefit]", ErrMalformed, cell)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return topsis.Criterion{}, fmt.Errorf("%w: criterion %q weight: %v", ErrMalformed, cell, err)
	}
	c := topsis.Criterion{ID: strings.TrimSpace(parts[0]), Name: strings.TrimSpace(parts[0]), Weight: w}
	if len(parts) == 3 {
		switch strings.ToLower(strings.TrimSpace(parts[2])) {
		case "cost":
			c.Cost = true
		case "benefit":
		default:
			return topsis.Criterion{}, fmt.Errorf("%w: criterion %q kind must be cost or benefit", ErrMalformed, cell)
		}
	}

	return c, nil
}

// detectDelimiter returns ';' when the first line contains one, else ','.
func detectDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.IndexByte(first, ';') >= 0 {
		return ';'
	}

	return ','
}
