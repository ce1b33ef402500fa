// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvmcdm/matrix"

// Ranker runs TOPSIS with a fixed set of options.
// A Ranker is immutable after construction and safe for concurrent use.
type Ranker struct {
	opts Options
}

// NewRanker returns a Ranker configured by opts on top of DefaultOptions.
func NewRanker(opts ...Option) *Ranker {
	return &Ranker{opts: gatherOptions(opts...)}
}

// Options returns a copy of the ranker configuration.
func (rk *Ranker) Options() Options {
	return rk.opts
}

// Rank validates the alternatives and returns the full ranking.
//
// Errors (match with errors.Is):
//   - ErrIncompleteAlternativeData — empty input or mismatched criteria sets.
//   - ErrInvalidWeight, ErrInvalidValue — non-finite or negative inputs.
//   - ErrDegenerateInput — only under PolicyStrict.
//
// Complexity: O(N·M) time and memory.
func (rk *Ranker) Rank(alternatives []Alternative) (*Result, error) {
	r := &run{opts: rk.opts, alternatives: alternatives}
	for _, stage := range []func() error{
		r.validate,
		r.buildDecision,
		r.normalize,
		r.findIdeals,
		r.measureDistances,
		r.score,
	} {
		if err := stage(); err != nil {
			return nil, err
		}
	}

	return &Result{
		Criteria:   r.criteria,
		Ranking:    r.rank(),
		Decision:   r.decision,
		Weighted:   r.weighted,
		IdealBest:  r.best,
		IdealWorst: r.worst,
	}, nil
}

// Best returns the top-ranked alternative. Ties resolve to the earliest input.
func (rk *Ranker) Best(alternatives []Alternative) (Score, error) {
	res, err := rk.Rank(alternatives)
	if err != nil {
		return Score{}, err
	}

	return res.Best(), nil
}

// Rank is NewRanker(opts...).Rank(alternatives).
func Rank(alternatives []Alternative, opts ...Option) (*Result, error) {
	return NewRanker(opts...).Rank(alternatives)
}

// Best is NewRanker(opts...).Best(alternatives).
func Best(alternatives []Alternative, opts ...Option) (Score, error) {
	return NewRanker(opts...).Best(alternatives)
}

// run is the per-call state of one ranking.
type run struct {
	opts         Options
	alternatives []Alternative

	criteria []Criterion
	column   map[string]int

	decision *matrix.Dense
	weighted *matrix.Dense

	// unit is weighted with every weight divided by weightScale, the
	// largest weight; scores come from unit-scale ideals and distances.
	unit        *matrix.Dense
	weightScale float64

	best, worst           []float64
	unitBest, unitWorst   []float64
	dBest, dWorst         []float64
	unitDBest, unitDWorst []float64
	scores                []float64
}

func (r *run) trace(stage string, keyvals ...interface{}) {
	if r.opts.Logger == nil {
		return
	}
	r.opts.Logger.Debug("topsis "+stage, keyvals...)
}

func (r *run) warn(msg string, keyvals ...interface{}) {
	if r.opts.Logger == nil {
		return
	}
	r.opts.Logger.Warn(msg, keyvals...)
}
