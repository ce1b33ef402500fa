// SPDX-License-Identifier: MIT

package topsis

import "math"

// validate checks the alternatives and derives the canonical criteria list.
// Implementation:
//   - Stage 1: non-empty collection; the first alternative fixes the
//     criteria (non-empty, unique, non-empty IDs, valid weights).
//   - Stage 2: every other alternative carries exactly the same IDs with the
//     same definitions, in any order.
//   - Stage 3: every raw value is finite.
//
// Nothing is computed unless all checks pass.
//
// Complexity:
//   - Time O(N·M), Space O(M).
func (r *run) validate() error {
	n := len(r.alternatives)
	if n == 0 {
		return stageErrorf(stageValidate, ErrIncompleteAlternativeData)
	}

	// Stage 1: canonical criteria from the first alternative.
	first := r.alternatives[0]
	if len(first.Values) == 0 {
		return alternativeErrorf(stageValidate, 0, first.Name, ErrIncompleteAlternativeData)
	}
	r.criteria = make([]Criterion, 0, len(first.Values))
	r.column = make(map[string]int, len(first.Values))
	for _, cv := range first.Values {
		id := cv.Criterion.ID
		if id == "" {
			return alternativeErrorf(stageValidate, 0, first.Name, ErrIncompleteAlternativeData)
		}
		if _, dup := r.column[id]; dup {
			return alternativeErrorf(stageValidate, 0, first.Name, ErrIncompleteAlternativeData)
		}
		w := cv.Criterion.Weight
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return criterionErrorf(stageValidate, id, ErrInvalidWeight)
		}
		r.column[id] = len(r.criteria)
		r.criteria = append(r.criteria, cv.Criterion)
	}

	// Stage 2: same criteria set everywhere.
	m := len(r.criteria)
	seen := make([]bool, m)
	for a := 1; a < n; a++ {
		alt := r.alternatives[a]
		if len(alt.Values) != m {
			return alternativeErrorf(stageValidate, a, alt.Name, ErrIncompleteAlternativeData)
		}
		for j := range seen {
			seen[j] = false
		}
		for _, cv := range alt.Values {
			j, ok := r.column[cv.Criterion.ID]
			if !ok || seen[j] || cv.Criterion != r.criteria[j] {
				return alternativeErrorf(stageValidate, a, alt.Name, ErrIncompleteAlternativeData)
			}
			seen[j] = true
		}
	}

	// Stage 3: finite raw values.
	for a, alt := range r.alternatives {
		for _, cv := range alt.Values {
			if math.IsNaN(cv.Value) || math.IsInf(cv.Value, 0) {
				return alternativeErrorf(stageValidate, a, alt.Name, ErrInvalidValue)
			}
		}
	}

	r.trace(stageValidate, "alternatives", n, "criteria", r.criteria)

	return nil
}
