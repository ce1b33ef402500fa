// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvmcdm/matrix"

// normalize computes weighted[a][j] = raw[a][j] / ‖raw[·][j]‖₂ · weight_j.
// Implementation:
//   - Stage 1: L2 column normalization (zero columns stay zero).
//   - Stage 2: degenerate-column policy on the returned norms.
//   - Stage 3: scale every column by its weight (reported matrix) and by
//     weight / max weight (unit matrix used for scoring).
//
// Closeness is invariant under a common scaling of all weights, so scoring on
// the unit matrix gives the same ranking while keeping every entry in [-1, 1].
func (r *run) normalize() error {
	normalized, norms, err := matrix.NormalizeColumnsL2(r.decision)
	if err != nil {
		return stageErrorf(stageNormalize, err)
	}

	for j, norm := range norms {
		if norm != 0 {
			continue
		}
		if r.opts.Policy == PolicyStrict {
			return criterionErrorf(stageNormalize, r.criteria[j].ID, ErrDegenerateInput)
		}
		r.warn("criterion has only zero values and cannot discriminate", "criterion", r.criteria[j].ID)
	}

	weights := make([]float64, len(r.criteria))
	maxWeight := 0.0
	for j, c := range r.criteria {
		weights[j] = c.Weight
		if c.Weight > maxWeight {
			maxWeight = c.Weight
		}
	}
	weighted, err := matrix.ScaleColumns(normalized, weights)
	if err != nil {
		return stageErrorf(stageNormalize, err)
	}
	r.weighted, r.unit, r.weightScale = weighted, weighted, maxWeight

	if maxWeight > 0 && maxWeight != 1 {
		for j := range weights {
			weights[j] /= maxWeight
		}
		if r.unit, err = matrix.ScaleColumns(normalized, weights); err != nil {
			return stageErrorf(stageNormalize, err)
		}
	}
	r.trace(stageNormalize, "norms", norms, "matrix", weighted.RawRows())

	return nil
}
