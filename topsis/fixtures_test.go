// SPDX-License-Identifier: MIT

package topsis_test

import "github.com/katalvlaran/lvmcdm/topsis"

const epsScore = 1e-12

var (
	price   = topsis.Criterion{ID: "price", Name: "Price", Weight: 0.35, Cost: true}
	storage = topsis.Criterion{ID: "storage", Name: "Storage", Weight: 0.25}
	camera  = topsis.Criterion{ID: "camera", Name: "Camera", Weight: 0.25}
	looks   = topsis.Criterion{ID: "looks", Name: "Looks", Weight: 0.15}
)

// mobiles returns the five-phone scenario; rows are price, storage, camera, looks.
func mobiles() []topsis.Alternative {
	rows := []struct {
		name string
		v    [4]float64
	}{
		{"Mobile 1", [4]float64{250, 16, 12, 5}},
		{"Mobile 2", [4]float64{200, 16, 8, 3}},
		{"Mobile 3", [4]float64{300, 32, 16, 4}},
		{"Mobile 4", [4]float64{275, 32, 8, 4}},
		{"Mobile 5", [4]float64{225, 16, 16, 2}},
	}
	out := make([]topsis.Alternative, 0, len(rows))
	for _, r := range rows {
		out = append(out, topsis.NewAlternative(r.name,
			topsis.V(price, r.v[0]),
			topsis.V(storage, r.v[1]),
			topsis.V(camera, r.v[2]),
			topsis.V(looks, r.v[3]),
		))
	}

	return out
}

// mobileScores are the expected closeness scores in input order.
var mobileScores = []float64{
	0.4459356188143432,
	0.37004172275499064,
	0.6299582772450093,
	0.49361914448943617,
	0.47582681545947575,
}

// mobileOrder is the expected ranking of mobiles().
var mobileOrder = []string{"Mobile 3", "Mobile 4", "Mobile 5", "Mobile 1", "Mobile 2"}

// scaledWeights returns a copy of alts with every criterion weight multiplied by f.
func scaledWeights(alts []topsis.Alternative, f float64) []topsis.Alternative {
	out := make([]topsis.Alternative, len(alts))
	for i, alt := range alts {
		out[i] = topsis.NewAlternative(alt.Name, alt.Values...)
		for k := range out[i].Values {
			out[i].Values[k].Criterion.Weight *= f
		}
	}

	return out
}

// scaledValues returns a copy of alts with every raw value multiplied by f.
func scaledValues(alts []topsis.Alternative, f float64) []topsis.Alternative {
	out := make([]topsis.Alternative, len(alts))
	for i, alt := range alts {
		out[i] = topsis.NewAlternative(alt.Name, alt.Values...)
		for k := range out[i].Values {
			out[i].Values[k].Value *= f
		}
	}

	return out
}

// withValue returns a deep copy of alts where alternative a has value v for id.
func withValue(alts []topsis.Alternative, a int, id string, v float64) []topsis.Alternative {
	out := make([]topsis.Alternative, len(alts))
	for i, alt := range alts {
		out[i] = topsis.NewAlternative(alt.Name, alt.Values...)
	}
	for k := range out[a].Values {
		if out[a].Values[k].Criterion.ID == id {
			out[a].Values[k].Value = v
		}
	}

	return out
}
