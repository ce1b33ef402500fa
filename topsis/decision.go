// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvmcdm/matrix"

// buildDecision projects the alternatives into an N×M raw matrix.
// Row a is alternative a (input order); column j is r.criteria[j].
// Values are placed through the ID → column map, so value order inside an
// alternative does not matter.
func (r *run) buildDecision() error {
	d, err := matrix.NewDense(len(r.alternatives), len(r.criteria))
	if err != nil {
		return stageErrorf(stageDecision, err)
	}
	for a, alt := range r.alternatives {
		for _, cv := range alt.Values {
			if err = d.Set(a, r.column[cv.Criterion.ID], cv.Value); err != nil {
				return alternativeErrorf(stageDecision, a, alt.Name, err)
			}
		}
	}
	r.decision = d
	r.trace(stageDecision, "matrix", d.RawRows())

	return nil
}
