// SPDX-License-Identifier: MIT
// Package banded: minimal sparse operator types.
//
// The difference operator is strictly banded, so three tiny layouts cover
// every need of this package: DIA (diagonal rows, the native layout of the
// toolkit), COO (triplets, convenient for products) and CSR (row-compressed,
// convenient for row iteration). All three implement gonum's mat.Matrix so
// callers can feed them into dense oracles or wrap them in mat.Transpose.

package banded

import "gonum.org/v1/gonum/mat"

// Format selects the sparse storage layout of a constructed operator.
// The layout never changes the represented values, only how they are held.
type Format int

const (
	// FormatDIA stores one slice per diagonal (column-indexed), the layout
	// the rest of this package works in.
	FormatDIA Format = iota

	// FormatCOO stores row/column/value triplets in row-major order.
	FormatCOO

	// FormatCSR stores compressed sparse rows.
	FormatCSR
)

// String returns the conventional short name of the format.
func (f Format) String() string {
	switch f {
	case FormatDIA:
		return "dia"
	case FormatCOO:
		return "coo"
	case FormatCSR:
		return "csr"
	default:
		return "unknown"
	}
}

// SparseMatrix is the common surface of the sparse operators built by this
// package. It extends gonum's mat.Matrix with layout introspection.
type SparseMatrix interface {
	mat.Matrix

	// Format reports the storage layout of the receiver.
	Format() Format

	// NNZ reports the number of stored non-zero entries.
	NNZ() int
}

// DiaMatrix is a banded matrix in diagonal (DIA) storage: one row per
// stored diagonal, column-indexed — diags[k][j] holds A[j-offsets[k], j].
// Entries whose implied row index falls outside [0, rows) are structural
// zeros and must stay zero.
type DiaMatrix struct {
	rows, cols int
	offsets    []int
	diags      [][]float64 // each row has length cols
}

// Dims returns the dimensions of the represented matrix.
func (m *DiaMatrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the value at (i, j); positions outside every stored diagonal
// are zero.
func (m *DiaMatrix) At(i, j int) float64 {
	for k, off := range m.offsets {
		if j-i == off {
			return m.diags[k][j]
		}
	}

	return 0
}

// T returns the transpose view of the matrix.
func (m *DiaMatrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Format reports FormatDIA.
func (m *DiaMatrix) Format() Format { return FormatDIA }

// NNZ counts the in-band entries that are non-zero.
func (m *DiaMatrix) NNZ() int {
	var nnz int
	for k, off := range m.offsets {
		for j, v := range m.diags[k] {
			if i := j - off; i >= 0 && i < m.rows && v != 0 {
				nnz++
			}
		}
	}

	return nnz
}

// Offsets returns a copy of the stored diagonal offsets (positive above the
// main diagonal).
func (m *DiaMatrix) Offsets() []int {
	out := make([]int, len(m.offsets))
	copy(out, m.offsets)

	return out
}

// CooMatrix is a sparse matrix in triplet (COO) storage. Triplets are kept
// in row-major order and entries are unique.
type CooMatrix struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	vals       []float64
}

// Dims returns the dimensions of the represented matrix.
func (m *CooMatrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the value at (i, j); absent positions are zero.
func (m *CooMatrix) At(i, j int) float64 {
	for k, r := range m.rowIdx {
		if r == i && m.colIdx[k] == j {
			return m.vals[k]
		}
	}

	return 0
}

// T returns the transpose view of the matrix.
func (m *CooMatrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Format reports FormatCOO.
func (m *CooMatrix) Format() Format { return FormatCOO }

// NNZ reports the number of stored triplets.
func (m *CooMatrix) NNZ() int { return len(m.vals) }

// Triplets returns copies of the row indices, column indices and values in
// row-major order.
func (m *CooMatrix) Triplets() (rows, cols []int, vals []float64) {
	rows = append(rows, m.rowIdx...)
	cols = append(cols, m.colIdx...)
	vals = append(vals, m.vals...)

	return rows, cols, vals
}

// CSRMatrix is a sparse matrix in compressed-sparse-row storage: row i owns
// the entries vals[indptr[i]:indptr[i+1]] at columns colIdx[...].
type CSRMatrix struct {
	rows, cols int
	indptr     []int
	colIdx     []int
	vals       []float64
}

// Dims returns the dimensions of the represented matrix.
func (m *CSRMatrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the value at (i, j); absent positions are zero.
func (m *CSRMatrix) At(i, j int) float64 {
	for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
		if m.colIdx[k] == j {
			return m.vals[k]
		}
	}

	return 0
}

// T returns the transpose view of the matrix.
func (m *CSRMatrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Format reports FormatCSR.
func (m *CSRMatrix) Format() Format { return FormatCSR }

// NNZ reports the number of stored entries.
func (m *CSRMatrix) NNZ() int { return len(m.vals) }

// RowView returns the stored column indices and values of row i. The
// returned slices alias the receiver and must not be modified.
func (m *CSRMatrix) RowView(i int) (cols []int, vals []float64) {
	return m.colIdx[m.indptr[i]:m.indptr[i+1]], m.vals[m.indptr[i]:m.indptr[i+1]]
}

// newCooFromTriplets wraps row-major triplet slices without copying.
func newCooFromTriplets(rows, cols int, ri, ci []int, vals []float64) *CooMatrix {
	return &CooMatrix{rows: rows, cols: cols, rowIdx: ri, colIdx: ci, vals: vals}
}

// newCSRFromTriplets compresses row-major triplet slices into CSR form.
func newCSRFromTriplets(rows, cols int, ri, ci []int, vals []float64) *CSRMatrix {
	indptr := make([]int, rows+1)
	for _, r := range ri {
		indptr[r+1]++
	}
	for i := 0; i < rows; i++ {
		indptr[i+1] += indptr[i]
	}

	return &CSRMatrix{rows: rows, cols: cols, indptr: indptr, colIdx: ci, vals: vals}
}
