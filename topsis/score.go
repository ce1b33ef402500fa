// SPDX-License-Identifier: MIT

package topsis

import "sort"

// score computes closeness = dWorst / (dBest + dWorst) per alternative on the
// unit-scale distances, which are finite and at most 2·√M.
// Distances are non-negative, so the denominator is zero only when the
// alternative sits on both ideals at once; that case follows the policy.
func (r *run) score() error {
	r.scores = make([]float64, len(r.alternatives))
	for a := range r.alternatives {
		den := r.unitDBest[a] + r.unitDWorst[a]
		if den == 0 {
			if r.opts.Policy == PolicyStrict {
				return alternativeErrorf(stageScore, a, r.alternatives[a].Name, ErrDegenerateInput)
			}
			r.scores[a] = NeutralScore

			continue
		}
		r.scores[a] = r.unitDWorst[a] / den
	}
	r.trace(stageScore, "scores", r.scores)

	return nil
}

// rank sorts alternatives by score, descending. The sort is stable, so equal
// scores keep input order.
func (r *run) rank() []Score {
	ranking := make([]Score, len(r.alternatives))
	for a, alt := range r.alternatives {
		ranking[a] = Score{
			Alternative:   alt,
			Index:         a,
			Score:         r.scores[a],
			DistanceBest:  r.dBest[a],
			DistanceWorst: r.dWorst[a],
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	for i := range ranking {
		ranking[i].Rank = i + 1
	}

	return ranking
}
