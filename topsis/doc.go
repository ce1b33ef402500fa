// SPDX-License-Identifier: MIT

// Package topsis ranks decision alternatives with TOPSIS (Technique for Order
// of Preference by Similarity to Ideal Solution).
//
// What:
//
//	Every alternative is a point in criteria space. After vector
//	normalization and weighting, the package derives two synthetic points,
//	the ideal best (best value seen on every criterion) and the ideal worst,
//	and ranks alternatives by how close they are to the former relative to
//	the latter:
//
//	  score = dWorst / (dBest + dWorst)   ∈ [0, 1]
//
// Pipeline (one pure pass per call):
//  1. Validate    — identical, non-empty criteria set for every alternative.
//  2. Decision    — alternatives × criteria raw matrix (matrix.Dense).
//  3. Normalize   — divide each column by its L2 norm, multiply by its weight.
//  4. Ideal       — per-column best/worst (benefit: max/min, cost: min/max).
//  5. Distance    — Euclidean distance of each row to both ideal points.
//  6. Score/Rank  — closeness score, stable descending sort.
//
// Criteria identity:
//
//	A Criterion is identified by its ID. Alternatives may list their values
//	in any order; the first alternative fixes the column order of the
//	decision matrix. The same ID must carry the same definition everywhere.
//
// Degenerate input:
//
//	A criterion whose values are all zero cannot discriminate. Under
//	PolicyNeutral (default) its column contributes nothing, and an
//	alternative equidistant at zero from both ideals (all alternatives
//	identical) scores NeutralScore. PolicyStrict reports ErrDegenerateInput
//	instead. NaN never reaches a Result.
//
// Concurrency:
//
//	A Ranker holds immutable options only; each call owns its own run
//	state, so one Ranker may be shared between goroutines. Inputs are never
//	mutated.
//
// Complexity:
//
//	Time O(N·M), memory O(N·M) for N alternatives and M criteria.
//
// Example:
//
//	price := topsis.NewCost("price", 0.35)
//	camera := topsis.NewBenefit("camera", 0.65)
//	res, err := topsis.Rank([]topsis.Alternative{
//		topsis.NewAlternative("A", topsis.V(price, 250), topsis.V(camera, 12)),
//		topsis.NewAlternative("B", topsis.V(price, 200), topsis.V(camera, 8)),
//	})
//	if err != nil {
//		// errors.Is(err, topsis.ErrIncompleteAlternativeData) ...
//	}
//	fmt.Println(res.Best().Alternative.Name)
package topsis
