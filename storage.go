// SPDX-License-Identifier: MIT
// Package banded: compact diagonal storage primitives.
//
// Conventions used throughout:
//   - a compact diagonal array is a [][]float64 where every row has the same
//     length (the matrix size n) and holds one diagonal, column-indexed —
//     row for offset o stores A[j-o, j] at column j;
//   - full storage lists rows from the highest super-diagonal down to the
//     lowest sub-diagonal (2·bands+1 rows);
//   - lower-only storage lists the main diagonal followed by the
//     sub-diagonals (bands+1 rows), valid for symmetric matrices.

package banded

import "gonum.org/v1/gonum/floats"

// zeroRows allocates rows fresh zero slices of the given length.
func zeroRows(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	return out
}

// cloneDiagonals deep-copies a compact diagonal array.
func cloneDiagonals(diags [][]float64) [][]float64 {
	out := make([][]float64, len(diags))
	for i, row := range diags {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// reverseRows reverses the row order of a compact diagonal array in place.
func reverseRows(diags [][]float64) {
	for i, j := 0, len(diags)-1; i < j; i, j = i+1, j-1 {
		diags[i], diags[j] = diags[j], diags[i]
	}
}

// PadDiagonals appends `padding` zero bands to a compact diagonal array so a
// wider operand can later be folded in without reallocation. Lower-only
// storage grows at the bottom only; full storage grows symmetrically at the
// top and bottom. A padding of zero or less returns the input unchanged.
func PadDiagonals(diags [][]float64, padding int, lowerOnly bool) [][]float64 {
	if padding <= 0 {
		return diags
	}

	cols := 0
	if len(diags) > 0 {
		cols = len(diags[0])
	}

	if lowerOnly {
		out := make([][]float64, 0, len(diags)+padding)
		out = append(out, diags...)

		return append(out, zeroRows(padding, cols)...)
	}

	out := make([][]float64, 0, len(diags)+2*padding)
	out = append(out, zeroRows(padding, cols)...)
	out = append(out, diags...)

	return append(out, zeroRows(padding, cols)...)
}

// ShiftRows converts row-indexed diagonals into the column-indexed banded
// layout in place: the top `upper` rows slide right (row i by upper-i
// positions) and the bottom `lower` rows slide left (the last row by
// `lower`, the one above it by lower-1, and so on), with vacated positions
// zeroed. The input slice is returned for chaining.
func ShiftRows(diags [][]float64, upper, lower int) [][]float64 {
	n := 0
	if len(diags) > 0 {
		n = len(diags[0])
	}

	for i := 0; i < upper && i < len(diags); i++ {
		shift := upper - i
		if shift >= n {
			clearRow(diags[i])
			continue
		}
		row := diags[i]
		copy(row[shift:], row[:n-shift])
		clearRow(row[:shift])
	}

	for j := 0; j < lower && len(diags)-1-j >= 0; j++ {
		shift := lower - j
		row := diags[len(diags)-1-j]
		if shift >= n {
			clearRow(row)
			continue
		}
		copy(row[:n-shift], row[shift:])
		clearRow(row[n-shift:])
	}

	return diags
}

// clearRow zeroes a slice.
func clearRow(row []float64) {
	for i := range row {
		row[i] = 0
	}
}

// LowerToFull mirrors lower-only storage of a symmetric banded matrix into
// full storage: for bands+1 input rows it returns 2·bands+1 fresh rows, the
// super-diagonal for offset +d being the sub-diagonal for offset -d shifted
// right by d positions. The input is not modified.
func LowerToFull(lower [][]float64) [][]float64 {
	if len(lower) == 0 {
		return nil
	}
	bands := len(lower) - 1
	cols := len(lower[0])

	full := zeroRows(bands, cols)
	for i := 0; i < bands; i++ {
		shift := bands - i
		if shift < cols {
			copy(full[i][shift:], lower[shift][:cols-shift])
		}
	}

	return append(full, cloneDiagonals(lower)...)
}

// AddDiagonals sums two compact diagonal arrays that may hold different
// numbers of bands. The narrower operand is zero-extended to the wider one's
// shape — at the bottom for lower-only storage, evenly at the top and bottom
// for full storage — and a freshly allocated result is returned.
//
// Returns ErrEmptyDiagonals when either operand has no rows,
// ErrColumnMismatch when the column counts differ and ErrOddRowDifference
// when full-storage operands differ by an odd number of rows.
func AddDiagonals(a, b [][]float64, lowerOnly bool) ([][]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyDiagonals
	}
	if len(a[0]) != len(b[0]) {
		return nil, ErrColumnMismatch
	}

	smaller, larger := a, b
	if len(a) > len(b) {
		smaller, larger = b, a
	}

	diff := len(larger) - len(smaller)
	top := 0
	if !lowerOnly {
		if diff%2 != 0 {
			return nil, ErrOddRowDifference
		}
		top = diff / 2
	}

	out := cloneDiagonals(larger)
	for i, row := range smaller {
		floats.Add(out[top+i], row)
	}

	return out, nil
}
