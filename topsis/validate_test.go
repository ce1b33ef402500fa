// SPDX-License-Identifier: MIT

package topsis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmcdm/topsis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_Validation(t *testing.T) {
	t.Parallel()

	pricier := price
	pricier.Weight = 0.5
	flipped := storage
	flipped.Cost = true
	renamed := camera
	renamed.Name = "Lens"
	other := topsis.NewBenefit("battery", 0.1)

	alt := func(name string, vs ...topsis.CriteriaValue) topsis.Alternative {
		return topsis.NewAlternative(name, vs...)
	}
	full := func(name string) topsis.Alternative {
		return alt(name, topsis.V(price, 1), topsis.V(storage, 2))
	}

	cases := []struct {
		name string
		alts []topsis.Alternative
		want error
	}{
		{"nil", nil, topsis.ErrIncompleteAlternativeData},
		{"empty", []topsis.Alternative{}, topsis.ErrIncompleteAlternativeData},
		{"first has no values", []topsis.Alternative{alt("a"), full("b")}, topsis.ErrIncompleteAlternativeData},
		{"later has no values", []topsis.Alternative{full("a"), alt("b")}, topsis.ErrIncompleteAlternativeData},
		{"empty criterion id", []topsis.Alternative{alt("a", topsis.V(topsis.Criterion{Weight: 1}, 1))}, topsis.ErrIncompleteAlternativeData},
		{"duplicate id in first", []topsis.Alternative{alt("a", topsis.V(price, 1), topsis.V(price, 2))}, topsis.ErrIncompleteAlternativeData},
		{"fewer values", []topsis.Alternative{full("a"), alt("b", topsis.V(price, 1))}, topsis.ErrIncompleteAlternativeData},
		{"more values", []topsis.Alternative{full("a"), alt("b", topsis.V(price, 1), topsis.V(storage, 2), topsis.V(camera, 3))}, topsis.ErrIncompleteAlternativeData},
		{"unknown id", []topsis.Alternative{full("a"), alt("b", topsis.V(price, 1), topsis.V(other, 2))}, topsis.ErrIncompleteAlternativeData},
		{"duplicate id in later", []topsis.Alternative{full("a"), alt("b", topsis.V(price, 1), topsis.V(price, 2))}, topsis.ErrIncompleteAlternativeData},
		{"redefined weight", []topsis.Alternative{full("a"), alt("b", topsis.V(pricier, 1), topsis.V(storage, 2))}, topsis.ErrIncompleteAlternativeData},
		{"redefined cost flag", []topsis.Alternative{full("a"), alt("b", topsis.V(price, 1), topsis.V(flipped, 2))}, topsis.ErrIncompleteAlternativeData},
		{"redefined name", []topsis.Alternative{alt("a", topsis.V(camera, 1)), alt("b", topsis.V(renamed, 2))}, topsis.ErrIncompleteAlternativeData},
		{"nan weight", []topsis.Alternative{alt("a", topsis.V(topsis.NewBenefit("x", math.NaN()), 1))}, topsis.ErrInvalidWeight},
		{"inf weight", []topsis.Alternative{alt("a", topsis.V(topsis.NewBenefit("x", math.Inf(1)), 1))}, topsis.ErrInvalidWeight},
		{"negative weight", []topsis.Alternative{alt("a", topsis.V(topsis.NewCost("x", -0.1), 1))}, topsis.ErrInvalidWeight},
		{"nan value", []topsis.Alternative{full("a"), alt("b", topsis.V(price, math.NaN()), topsis.V(storage, 2))}, topsis.ErrInvalidValue},
		{"inf value", []topsis.Alternative{alt("a", topsis.V(price, math.Inf(-1)), topsis.V(storage, 2))}, topsis.ErrInvalidValue},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := topsis.Rank(tc.alts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)

			_, err = topsis.Best(tc.alts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRank_ValidationSymmetry: a mismatch is reported no matter which
// alternative comes first.
func TestRank_ValidationSymmetry(t *testing.T) {
	t.Parallel()

	short := topsis.NewAlternative("short", topsis.V(price, 1))
	long := topsis.NewAlternative("long", topsis.V(price, 1), topsis.V(storage, 2))

	_, err := topsis.Rank([]topsis.Alternative{short, long})
	assert.ErrorIs(t, err, topsis.ErrIncompleteAlternativeData)
	_, err = topsis.Rank([]topsis.Alternative{long, short})
	assert.ErrorIs(t, err, topsis.ErrIncompleteAlternativeData)

	// Same count, different ids.
	a := topsis.NewAlternative("a", topsis.V(price, 1), topsis.V(storage, 2))
	b := topsis.NewAlternative("b", topsis.V(price, 1), topsis.V(camera, 2))
	_, err = topsis.Rank([]topsis.Alternative{a, b})
	assert.ErrorIs(t, err, topsis.ErrIncompleteAlternativeData)
	_, err = topsis.Rank([]topsis.Alternative{b, a})
	assert.ErrorIs(t, err, topsis.ErrIncompleteAlternativeData)
}

func TestRank_ValidationErrorContext(t *testing.T) {
	t.Parallel()

	alts := mobiles()
	alts[3].Values = alts[3].Values[:2]

	_, err := topsis.Rank(alts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Validate: alternative 3 ("Mobile 4")`)
	assert.Contains(t, err.Error(), "ensure that all alternatives have a score for each of the same criteria")
}

func TestRank_ZeroWeightCriterionIgnored(t *testing.T) {
	t.Parallel()

	muted := topsis.NewBenefit("muted", 0)
	alts := mobiles()
	for a := range alts {
		alts[a].AddValue(muted, float64(10*a+1))
	}

	res, err := topsis.Rank(alts)
	require.NoError(t, err)
	for i, s := range res.Scores() {
		assert.InDelta(t, mobileScores[i], s.Score, epsScore)
	}
}
