// SPDX-License-Identifier: MIT

package topsis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmcdm/matrix"
)

// Criterion is one decision criterion.
//
// Fields:
//   - ID     — caller-assigned identity; values are matched by ID.
//   - Name   — display label (optional).
//   - Weight — relative importance, finite and ≥ 0; weights need not sum to 1.
//   - Cost   — true when lower raw values are preferred (price, latency);
//     false for a benefit criterion (storage, quality).
type Criterion struct {
	ID     string  `json:"id"`
	Name   string  `json:"name,omitempty"`
	Weight float64 `json:"weight"`
	Cost   bool    `json:"cost,omitempty"`
}

// NewBenefit returns a benefit criterion (higher is better) named after its id.
func NewBenefit(id string, weight float64) Criterion {
	return Criterion{ID: id, Name: id, Weight: weight}
}

// NewCost returns a cost criterion (lower is better) named after its id.
func NewCost(id string, weight float64) Criterion {
	return Criterion{ID: id, Name: id, Weight: weight, Cost: true}
}

// Label returns Name, or ID when Name is empty.
func (c Criterion) Label() string {
	if c.Name != "" {
		return c.Name
	}

	return c.ID
}

// Kind returns "cost" or "benefit".
func (c Criterion) Kind() string {
	if c.Cost {
		return "cost"
	}

	return "benefit"
}

// String renders the criterion as "Price(w=0.35, cost)".
func (c Criterion) String() string {
	return fmt.Sprintf("%s(w=%s, %s)", c.Label(), formatFloat(c.Weight), c.Kind())
}

// CriteriaValue is the raw score of one alternative on one criterion.
type CriteriaValue struct {
	Criterion Criterion
	Value     float64
}

// V is shorthand for CriteriaValue{Criterion: c, Value: v}.
func V(c Criterion, v float64) CriteriaValue {
	return CriteriaValue{Criterion: c, Value: v}
}

// String renders the value as "Price=250".
func (v CriteriaValue) String() string {
	return v.Criterion.Label() + "=" + formatFloat(v.Value)
}

// Alternative is one candidate being ranked.
type Alternative struct {
	Name   string
	Values []CriteriaValue
}

// NewAlternative returns an alternative holding a copy of values.
func NewAlternative(name string, values ...CriteriaValue) Alternative {
	vs := make([]CriteriaValue, len(values))
	copy(vs, values)

	return Alternative{Name: name, Values: vs}
}

// AddValue appends the raw value v for criterion c.
func (a *Alternative) AddValue(c Criterion, v float64) {
	a.Values = append(a.Values, CriteriaValue{Criterion: c, Value: v})
}

// Value returns the raw value for criterion id.
func (a Alternative) Value(id string) (float64, bool) {
	for _, cv := range a.Values {
		if cv.Criterion.ID == id {
			return cv.Value, true
		}
	}

	return 0, false
}

// String renders the alternative as "Mobile 1[Price=250, Storage=16]".
func (a Alternative) String() string {
	parts := make([]string, len(a.Values))
	for i, cv := range a.Values {
		parts[i] = cv.String()
	}

	return a.Name + "[" + strings.Join(parts, ", ") + "]"
}

// Score is the outcome of a run for one alternative.
//
// Fields:
//   - Alternative   — the input alternative (not mutated).
//   - Index         — position of the alternative in the input slice.
//   - Rank          — 1-based position in the ranking.
//   - Score         — closeness coefficient in [0, 1]; higher is better.
//   - DistanceBest  — Euclidean distance to the ideal best point.
//   - DistanceWorst — Euclidean distance to the ideal worst point.
type Score struct {
	Alternative   Alternative
	Index         int
	Rank          int
	Score         float64
	DistanceBest  float64
	DistanceWorst float64
}

// Result holds the ranking and the intermediate artifacts of one run.
type Result struct {
	// Criteria in column order of Decision and Weighted.
	Criteria []Criterion
	// Ranking sorted by Score descending; ties keep input order.
	Ranking []Score
	// Decision is the raw alternatives × criteria matrix.
	Decision *matrix.Dense
	// Weighted is the normalized, weighted matrix.
	Weighted *matrix.Dense
	// IdealBest and IdealWorst are indexed like Criteria.
	IdealBest  []float64
	IdealWorst []float64
}

// Best returns the top-ranked alternative's score.
func (r *Result) Best() Score {
	return r.Ranking[0]
}

// Scores returns the scores in input order.
func (r *Result) Scores() []Score {
	out := make([]Score, len(r.Ranking))
	for _, s := range r.Ranking {
		out[s.Index] = s
	}

	return out
}

// Names returns the alternative names in ranked order.
func (r *Result) Names() []string {
	out := make([]string, len(r.Ranking))
	for i, s := range r.Ranking {
		out[i] = s.Alternative.Name
	}

	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
