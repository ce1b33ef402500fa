// SPDX-License-Identifier: MIT

package topsis

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteAlternativeData is returned when the alternatives do not
	// share one identical, non-empty set of criteria (or there are none).
	ErrIncompleteAlternativeData = errors.New("topsis: incomplete data used to calculate topsis; ensure that all alternatives have a score for each of the same criteria")

	// ErrInvalidWeight indicates a NaN, infinite or negative criterion weight.
	ErrInvalidWeight = errors.New("topsis: criterion weight must be finite and non-negative")

	// ErrInvalidValue indicates a NaN or infinite raw criterion value.
	ErrInvalidValue = errors.New("topsis: criterion value must be finite")

	// ErrDegenerateInput is returned under PolicyStrict when a criterion column
	// is uniformly zero or an alternative is at zero distance from both ideals.
	ErrDegenerateInput = errors.New("topsis: degenerate input")
)

// Stage tags used as error prefixes.
const (
	stageValidate  = "Validate"
	stageDecision  = "Decision"
	stageNormalize = "Normalize"
	stageIdeal     = "Ideal"
	stageDistance  = "Distance"
	stageScore     = "Score"
)

// stageErrorf wraps err with a stage tag: "<stage>: <err>".
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}

// alternativeErrorf wraps err with stage and alternative context.
func alternativeErrorf(stage string, index int, name string, err error) error {
	return fmt.Errorf("%s: alternative %d (%q): %w", stage, index, name, err)
}

// criterionErrorf wraps err with stage and criterion context.
func criterionErrorf(stage, id string, err error) error {
	return fmt.Errorf("%s: criterion %q: %w", stage, id, err)
}
