// SPDX-License-Identifier: MIT

package topsis

import "github.com/charmbracelet/log"

// DegeneratePolicy selects how a run treats inputs that would otherwise
// divide by zero.
type DegeneratePolicy int

const (
	// PolicyNeutral zeroes uniformly-zero criterion columns and assigns
	// NeutralScore to alternatives at zero distance from both ideals.
	PolicyNeutral DegeneratePolicy = iota

	// PolicyStrict fails such runs with ErrDegenerateInput.
	PolicyStrict
)

// NeutralScore is the closeness assigned under PolicyNeutral when
// dBest == dWorst == 0.
const NeutralScore = 0.5

// String returns "neutral" or "strict".
func (p DegeneratePolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}

	return "neutral"
}

// Options configures a Ranker.
//
// Fields:
//   - Policy — degenerate-input handling (default PolicyNeutral).
//   - Logger — when non-nil, every stage logs its output at debug level.
type Options struct {
	Policy DegeneratePolicy
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the neutral policy without logging.
func DefaultOptions() Options {
	return Options{Policy: PolicyNeutral}
}

// WithDegeneratePolicy sets the degenerate-input policy.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithStrict is WithDegeneratePolicy(PolicyStrict).
func WithStrict() Option {
	return WithDegeneratePolicy(PolicyStrict)
}

// WithLogger enables debug tracing of intermediate matrices and vectors.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
