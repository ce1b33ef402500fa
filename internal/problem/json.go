// SPDX-License-Identifier: MIT

package problem

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads a JSON problem document. Unknown fields are rejected.
func DecodeJSON(r io.Reader) (*Problem, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMalformed, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}
