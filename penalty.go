// SPDX-License-Identifier: MIT
// Package banded: finite-difference penalty construction.
//
// The penalty of order d is the Gram matrix DᵀD of the d-th order
// difference operator. For the common orders 1..3 the diagonals have a
// closed form that is filled directly; everything else goes through a
// sparse product of the operator with itself.

package banded

import "fmt"

// diffOneDiags fills the diagonals of DᵀD for a first-order difference
// penalty: main diagonal [1, 2, ..., 2, 1], off-diagonals all -1.
// Requires n ≥ 3.
func diffOneDiags(n int, lowerOnly bool) [][]float64 {
	rows := 3
	if lowerOnly {
		rows = 2
	}
	out := zeroRows(rows, n)

	main := out[rows-2]
	for j := range main {
		main[j] = 2
	}
	main[0] = 1
	main[n-1] = 1

	// Sub-diagonal, column-indexed: entry at column j pairs rows j+1 and j.
	sub := out[rows-1]
	for j := 0; j < n-1; j++ {
		sub[j] = -1
	}

	if !lowerOnly {
		for j := 1; j < n; j++ {
			out[0][j] = -1
		}
	}

	return out
}

// diffTwoDiags fills the diagonals of DᵀD for a second-order difference
// penalty: main diagonal [1, 5, 6, ..., 6, 5, 1], first off-diagonal
// [-2, -4, ..., -4, -2], second off-diagonal all ones. Requires n ≥ 5.
func diffTwoDiags(n int, lowerOnly bool) [][]float64 {
	rows := 5
	if lowerOnly {
		rows = 3
	}
	out := zeroRows(rows, n)

	main := out[rows-3]
	for j := range main {
		main[j] = 6
	}
	main[0], main[n-1] = 1, 1
	main[1], main[n-2] = 5, 5

	sub1 := out[rows-2]
	for j := 0; j < n-1; j++ {
		sub1[j] = -4
	}
	sub1[0], sub1[n-2] = -2, -2

	sub2 := out[rows-1]
	for j := 0; j < n-2; j++ {
		sub2[j] = 1
	}

	if !lowerOnly {
		for j := 2; j < n; j++ {
			out[0][j] = 1
		}
		super1 := out[1]
		for j := 1; j < n; j++ {
			super1[j] = -4
		}
		super1[1], super1[n-1] = -2, -2
	}

	return out
}

// diffThreeDiags fills the diagonals of DᵀD for a third-order difference
// penalty: main diagonal [1, 10, 19, 20, ..., 20, 19, 10, 1], first
// off-diagonal [-3, -12, -15, ..., -15, -12, -3], second off-diagonal
// [3, 6, ..., 6, 3], third off-diagonal all -1. Requires n ≥ 7.
func diffThreeDiags(n int, lowerOnly bool) [][]float64 {
	rows := 7
	if lowerOnly {
		rows = 4
	}
	out := zeroRows(rows, n)

	main := out[rows-4]
	for j := range main {
		main[j] = 20
	}
	main[0], main[n-1] = 1, 1
	main[1], main[n-2] = 10, 10
	main[2], main[n-3] = 19, 19

	sub1 := out[rows-3]
	for j := 0; j < n-1; j++ {
		sub1[j] = -15
	}
	sub1[0], sub1[n-2] = -3, -3
	sub1[1], sub1[n-3] = -12, -12

	sub2 := out[rows-2]
	for j := 0; j < n-2; j++ {
		sub2[j] = 6
	}
	sub2[0], sub2[n-3] = 3, 3

	sub3 := out[rows-1]
	for j := 0; j < n-3; j++ {
		sub3[j] = -1
	}

	if !lowerOnly {
		super3 := out[0]
		for j := 3; j < n; j++ {
			super3[j] = -1
		}
		super2 := out[1]
		for j := 2; j < n; j++ {
			super2[j] = 6
		}
		super2[2], super2[n-1] = 3, 3
		super1 := out[2]
		for j := 1; j < n; j++ {
			super1[j] = -15
		}
		super1[1], super1[n-1] = -3, -3
		super1[2], super1[n-2] = -12, -12
	}

	return out
}

// diffPenaltyGram computes the diagonals of DᵀD from the triplet form of
// the difference operator. Handles any order and any size, including the
// degenerate case where the operator has zero rows and the penalty is the
// zero matrix.
func diffPenaltyGram(op *CooMatrix, order int, lowerOnly bool) [][]float64 {
	n := op.cols
	bw := order
	if bw > n-1 {
		bw = n - 1
	}
	ab := zeroRows(2*bw+1, n)

	// Triplets are row-major with order+1 entries per operator row; every
	// in-row column pair (cs, ct) contributes v_s·v_t to A[cs, ct], which
	// in column-indexed full storage lives at ab[bw + cs - ct][ct].
	stride := order + 1
	for base := 0; base < len(op.vals); base += stride {
		for s := 0; s < stride; s++ {
			for t := 0; t < stride; t++ {
				cs, ct := op.colIdx[base+s], op.colIdx[base+t]
				ab[bw+cs-ct][ct] += op.vals[base+s] * op.vals[base+t]
			}
		}
	}

	if lowerOnly {
		return ab[bw:]
	}

	return ab
}

// DiffPenaltyDiagonals builds the compact diagonal form of the n×n penalty
// matrix DᵀD for the given difference order, optionally keeping only the
// main diagonal and sub-diagonals (the penalty is symmetric) and optionally
// appending zero padding bands via PadDiagonals.
//
// Order 0 yields the identity. Orders 1..3 on sufficiently large systems
// use closed-form diagonals; every other combination falls back to the
// sparse Gram product. Returns ErrNegativeOrder for order < 0 and
// ErrDataSize for n ≤ 0.
func DiffPenaltyDiagonals(n, order int, lowerOnly bool, padding int) ([][]float64, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	if n <= 0 {
		return nil, ErrDataSize
	}

	var diags [][]float64
	switch {
	case order == 0:
		diags = zeroRows(1, n)
		for j := range diags[0] {
			diags[0][j] = 1
		}
	case order > 3 || n < 2*order+1:
		op, opErr := DifferenceMatrix(n, order, FormatCOO)
		if opErr != nil {
			return nil, opErr
		}
		diags = diffPenaltyGram(op.(*CooMatrix), order, lowerOnly)
	case order == 1:
		diags = diffOneDiags(n, lowerOnly)
	case order == 2:
		diags = diffTwoDiags(n, lowerOnly)
	default:
		diags = diffThreeDiags(n, lowerOnly)
	}

	return PadDiagonals(diags, padding, lowerOnly), nil
}

// DiffPenaltyMatrix builds the n×n penalty matrix DᵀD as a sparse operator
// in the requested layout. Unlike DiffPenaltyDiagonals it requires n to
// exceed the difference order so the penalty is non-trivial.
func DiffPenaltyMatrix(n, order int, format Format) (SparseMatrix, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	if n <= 0 {
		return nil, ErrDataSize
	}
	if n <= order {
		return nil, fmt.Errorf("banded: penalty of order %d needs more than %d points: %w", order, order, ErrDataSize)
	}

	diags, err := DiffPenaltyDiagonals(n, order, false, 0)
	if err != nil {
		return nil, err
	}
	bw := (len(diags) - 1) / 2

	switch format {
	case FormatDIA:
		offsets := make([]int, len(diags))
		for k := range diags {
			offsets[k] = bw - k
		}

		return &DiaMatrix{rows: n, cols: n, offsets: offsets, diags: diags}, nil

	case FormatCOO, FormatCSR:
		var ri, ci []int
		var vals []float64
		for i := 0; i < n; i++ {
			for off := -bw; off <= bw; off++ {
				j := i + off
				if j < 0 || j >= n {
					continue
				}
				if v := diags[bw-off][j]; v != 0 {
					ri = append(ri, i)
					ci = append(ci, j)
					vals = append(vals, v)
				}
			}
		}
		if format == FormatCOO {
			return newCooFromTriplets(n, n, ri, ci, vals), nil
		}

		return newCSRFromTriplets(n, n, ri, ci, vals), nil

	default:
		return nil, ErrUnknownFormat
	}
}
