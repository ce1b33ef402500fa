// SPDX-License-Identifier: MIT

// Package export writes alternatives and rankings as semicolon-delimited CSV.
//
// Alternatives file (one row per alternative, input order preserved):
//
//	Alternative name;Criteria values
//	Mobile 1;[Price=250, Storage=16, Camera=12, Looks=5]
//
// Ranking file (one row per ranked alternative):
//
//	Rank;Alternative name;Score;Distance best;Distance worst
//	1;Mobile 3;0.6299582772450093;0.0645334473457798;0.1098616096908242
//
// Fields containing the delimiter or quotes are quoted per RFC 4180.
package export
