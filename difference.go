// SPDX-License-Identifier: MIT
// Package banded: sparse finite-difference operator construction.

package banded

// differenceStencil returns the row stencil of the nth-order forward
// difference operator: coefficient s is (-1)^(order-s) · C(order, s).
// Order 0 yields the single coefficient {1}.
func differenceStencil(order int) []float64 {
	stencil := make([]float64, order+1)

	// Binomial coefficients with alternating signs, built by the additive
	// Pascal recurrence to stay exact in float64 for every practical order.
	coeff := 1.0
	for s := 0; s <= order; s++ {
		sign := 1.0
		if (order-s)%2 == 1 {
			sign = -1
		}
		stencil[s] = sign * coeff
		coeff = coeff * float64(order-s) / float64(s+1)
	}

	return stencil
}

// DifferenceMatrix builds the nth-order finite-difference operator D of
// shape (n-order) × n in the requested sparse layout. Row r of D applies the
// alternating binomial stencil to elements r..r+order of a length-n vector,
// so D·x is the nth-order forward difference of x.
//
// Edge cases follow the usual sparse-matrix conventions:
//   - order == 0 yields the n×n identity;
//   - order ≥ n yields an empty operator with zero rows and n columns.
//
// Returns ErrNegativeOrder for order < 0, ErrDataSize for n ≤ 0 and
// ErrUnknownFormat for an unrecognized format value.
func DifferenceMatrix(n, order int, format Format) (SparseMatrix, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	if n <= 0 {
		return nil, ErrDataSize
	}

	rows := n - order
	if rows < 0 {
		rows = 0
	}
	stencil := differenceStencil(order)

	switch format {
	case FormatDIA:
		// Diagonal k of D is constant: D[r, r+k] = stencil[k]. In
		// column-indexed storage that constant occupies columns k..k+rows-1;
		// everything outside is a structural zero.
		offsets := make([]int, order+1)
		diags := make([][]float64, order+1)
		for k := 0; k <= order; k++ {
			offsets[k] = k
			row := make([]float64, n)
			for j := k; j < k+rows; j++ {
				row[j] = stencil[k]
			}
			diags[k] = row
		}

		return &DiaMatrix{rows: rows, cols: n, offsets: offsets, diags: diags}, nil

	case FormatCOO, FormatCSR:
		nnz := rows * (order + 1)
		ri := make([]int, 0, nnz)
		ci := make([]int, 0, nnz)
		vals := make([]float64, 0, nnz)
		for r := 0; r < rows; r++ {
			for s := 0; s <= order; s++ {
				ri = append(ri, r)
				ci = append(ci, r+s)
				vals = append(vals, stencil[s])
			}
		}
		if format == FormatCOO {
			return newCooFromTriplets(rows, n, ri, ci, vals), nil
		}

		return newCSRFromTriplets(rows, n, ri, ci, vals), nil

	default:
		return nil, ErrUnknownFormat
	}
}
