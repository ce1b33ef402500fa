// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvmcdm/matrix"

// findIdeals derives the ideal best and ideal worst points, once in the
// reported weight scale and once on the unit matrix used for scoring.
// Benefit criterion: best = column max, worst = column min.
// Cost criterion:    best = column min, worst = column max.
// Extrema are seeded with ±Inf by matrix.ColumnMinMax, so negative and
// all-equal columns are handled without special cases.
func (r *run) findIdeals() error {
	var err error
	if r.best, r.worst, err = r.ideals(r.weighted); err != nil {
		return stageErrorf(stageIdeal, err)
	}
	if r.unitBest, r.unitWorst, err = r.ideals(r.unit); err != nil {
		return stageErrorf(stageIdeal, err)
	}
	r.trace(stageIdeal, "best", r.best, "worst", r.worst)

	return nil
}

func (r *run) ideals(X *matrix.Dense) (best, worst []float64, err error) {
	mins, maxs, err := matrix.ColumnMinMax(X)
	if err != nil {
		return nil, nil, err
	}

	m := len(r.criteria)
	best = make([]float64, m)
	worst = make([]float64, m)
	for j, c := range r.criteria {
		if c.Cost {
			best[j], worst[j] = mins[j], maxs[j]
		} else {
			best[j], worst[j] = maxs[j], mins[j]
		}
	}

	return best, worst, nil
}
