// SPDX-License-Identifier: MIT

package problem_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvmcdm/internal/problem"
	"github.com/katalvlaran/lvmcdm/topsis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mobileOrder = []string{"Mobile 3", "Mobile 4", "Mobile 5", "Mobile 1", "Mobile 2"}

func rankFile(t *testing.T, path string) *topsis.Result {
	t.Helper()

	p, err := problem.LoadFile(path)
	require.NoError(t, err)
	alts, err := p.ToAlternatives()
	require.NoError(t, err)
	res, err := topsis.Rank(alts)
	require.NoError(t, err)

	return res
}

func TestLoadFile_JSONAndCSVAgree(t *testing.T) {
	t.Parallel()

	fromJSON := rankFile(t, "testdata/mobiles.json")
	fromCSV := rankFile(t, "testdata/mobiles.csv")
	assert.Equal(t, mobileOrder, fromJSON.Names())
	assert.Equal(t, mobileOrder, fromCSV.Names())
	for i := range fromJSON.Ranking {
		assert.InDelta(t, fromJSON.Ranking[i].Score, fromCSV.Ranking[i].Score, 1e-15)
	}
	assert.True(t, fromCSV.Criteria[0].Cost)
	assert.False(t, fromCSV.Criteria[2].Cost)
}

func TestDecodeJSON_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, doc string
		want      error
	}{
		{"syntax", `{"criteria":`, problem.ErrMalformed},
		{"unknown field", `{"criteria":[{"id":"a","weight":1}],"extra":1}`, problem.ErrMalformed},
		{"no criteria", `{"alternatives":[]}`, problem.ErrNoCriteria},
		{"duplicate", `{"criteria":[{"id":"a","weight":1},{"id":"a","weight":2}]}`, problem.ErrDuplicateCriterion},
		{"empty id", `{"criteria":[{"id":"","weight":1}]}`, problem.ErrMalformed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := problem.DecodeJSON(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestToAlternatives_UnknownAndMissing(t *testing.T) {
	t.Parallel()

	p, err := problem.DecodeJSON(strings.NewReader(
		`{"criteria":[{"id":"a","weight":1},{"id":"b","weight":1,"cost":true}],
		  "alternatives":[{"name":"x","values":{"a":1,"c":2}}]}`))
	require.NoError(t, err)
	_, err = p.ToAlternatives()
	assert.ErrorIs(t, err, problem.ErrUnknownCriterion)

	p, err = problem.DecodeJSON(strings.NewReader(
		`{"criteria":[{"id":"a","weight":1},{"id":"b","weight":1,"cost":true}],
		  "alternatives":[{"name":"x","values":{"b":2,"a":1}},{"name":"y","values":{"a":3}}]}`))
	require.NoError(t, err)
	alts, err := p.ToAlternatives()
	require.NoError(t, err)
	require.Len(t, alts, 2)
	assert.Equal(t, "a", alts[0].Values[0].Criterion.ID, "declaration order")
	assert.Len(t, alts[1].Values, 1)

	_, err = topsis.Rank(alts)
	assert.ErrorIs(t, err, topsis.ErrIncompleteAlternativeData)
}

func TestDecodeCSV_CommaAndMissingCell(t *testing.T) {
	t.Parallel()

	doc := "name, cost:1:cost, gain:2\n# comment\nA, 1, 5\nB, 2,\n"
	p, err := problem.DecodeCSV(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, p.Criteria, 2)
	assert.Equal(t, topsis.Criterion{ID: "cost", Name: "cost", Weight: 1, Cost: true}, p.Criteria[0])
	assert.Equal(t, 2.0, p.Criteria[1].Weight)
	require.Len(t, p.Alternatives, 2)
	assert.Equal(t, map[string]float64{"cost": 1, "gain": 5}, p.Alternatives[0].Values)
	assert.Equal(t, map[string]float64{"cost": 2}, p.Alternatives[1].Values)
}

func TestDecodeCSV_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, doc string
		want      error
	}{
		{"empty", "", problem.ErrNoCriteria},
		{"name only", "name\nA\n", problem.ErrNoCriteria},
		{"no weight", "name;price\nA;1\n", problem.ErrMalformed},
		{"bad weight", "name;price:x\nA;1\n", problem.ErrMalformed},
		{"bad kind", "name;price:1:cheap\nA;1\n", problem.ErrMalformed},
		{"bad value", "name;price:1\nA;one\n", problem.ErrMalformed},
		{"too many fields", "name;price:1\nA;1;2\n", problem.ErrMalformed},
		{"duplicate", "name;a:1;a:2\nA;1;2\n", problem.ErrDuplicateCriterion},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := problem.DecodeCSV(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	f, err := problem.FormatFromPath("x/Problem.JSON")
	require.NoError(t, err)
	assert.Equal(t, problem.FormatJSON, f)
	f, err = problem.FormatFromPath("p.csv")
	require.NoError(t, err)
	assert.Equal(t, problem.FormatCSV, f)
	_, err = problem.FormatFromPath("p.xlsx")
	assert.ErrorIs(t, err, problem.ErrUnknownFormat)
	_, err = problem.LoadFile("p.yaml")
	assert.ErrorIs(t, err, problem.ErrUnknownFormat)
	_, err = problem.Decode(strings.NewReader(""), "xml")
	assert.ErrorIs(t, err, problem.ErrUnknownFormat)
}
