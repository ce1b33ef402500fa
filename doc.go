// SPDX-License-Identifier: MIT

// Package lvmcdm ranks decision alternatives against multiple, possibly
// conflicting criteria with TOPSIS (Technique for Order of Preference by
// Similarity to Ideal Solution).
//
// What is inside?
//
//	matrix/           — dense row-major matrix + column statistics kernels
//	                    (L2 norms, normalization, extrema, row distances)
//	topsis/           — the six-stage ranking pipeline: validate, decision
//	                    matrix, weighted normalization, ideal points,
//	                    distances, closeness score and stable ranking
//	export/           — semicolon-separated CSV of alternatives and rankings
//	internal/problem  — JSON / CSV problem documents
//	internal/store    — ranking history on SQLite or PostgreSQL
//	internal/server   — HTTP ranking service
//	cmd/lvmcdm        — CLI: rank, serve, history, version
//	examples/         — runnable scenarios
//
// Why TOPSIS?
//
//   - One pass, O(N·M): no pairwise comparisons, no iterative solver.
//   - Benefit and cost criteria side by side; weights need not sum to 1.
//   - Every score is explainable by two distances.
//
// Quick example:
//
//	price := topsis.NewCost("price", 0.35)
//	camera := topsis.NewBenefit("camera", 0.65)
//	best, err := topsis.Best([]topsis.Alternative{
//		topsis.NewAlternative("A", topsis.V(price, 250), topsis.V(camera, 12)),
//		topsis.NewAlternative("B", topsis.V(price, 200), topsis.V(camera, 8)),
//	})
//
//	go install github.com/katalvlaran/lvmcdm/cmd/lvmcdm@latest
//	lvmcdm rank problem.json --csv ranked.csv
package lvmcdm
