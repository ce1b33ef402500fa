// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage and column-wise kernels
// used by the decision-analysis packages of lvmcdm.
//
// The matrix package provides:
//
//   - Matrix: a small interface over two-dimensional float64 arrays with
//     bounds-checked At/Set and deep Clone.
//   - Dense: a row-major implementation with a flat backing slice and an
//     optional NaN/Inf guard on Set.
//   - Column statistics: ColumnNormsL2, NormalizeColumnsL2, ColumnMinMax.
//   - Element-wise kernels: ScaleColumns, RowDistances.
//
// Every kernel allocates its output; inputs are never mutated. Loops run in a
// fixed i→j order so results are bit-for-bit reproducible for equal inputs.
//
// Decision matrices are laid out with one row per alternative and one column
// per criterion, which is why the statistics here are column-oriented:
//
//	          price  storage  camera
//	mobile 1 [ 250     16      12  ]
//	mobile 2 [ 200     16       8  ]
//
// See example_test.go for usage patterns.
package matrix
