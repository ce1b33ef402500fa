// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvmcdm/matrix"

// measureDistances computes the separation of every alternative from both
// ideal points on the unit matrix, then reports it in the weight scale of
// the input.
func (r *run) measureDistances() error {
	var err error
	if r.unitDBest, err = matrix.RowDistances(r.unit, r.unitBest); err != nil {
		return stageErrorf(stageDistance, err)
	}
	if r.unitDWorst, err = matrix.RowDistances(r.unit, r.unitWorst); err != nil {
		return stageErrorf(stageDistance, err)
	}

	r.dBest = make([]float64, len(r.unitDBest))
	r.dWorst = make([]float64, len(r.unitDWorst))
	for a := range r.unitDBest {
		if r.unit == r.weighted {
			r.dBest[a], r.dWorst[a] = r.unitDBest[a], r.unitDWorst[a]

			continue
		}
		r.dBest[a] = r.unitDBest[a] * r.weightScale
		r.dWorst[a] = r.unitDWorst[a] * r.weightScale
	}
	r.trace(stageDistance, "best", r.dBest, "worst", r.dWorst)

	return nil
}
