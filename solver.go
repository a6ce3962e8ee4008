// SPDX-License-Identifier: MIT
// Package banded: direct solvers for compact banded systems.

package banded

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// solverBackend solves A·x = rhs where A is given in the compact diagonal
// layout the backend was configured for. Implementations never modify lhs
// and always return a fresh solution slice.
type solverBackend interface {
	Solve(lhs [][]float64, rhs []float64) ([]float64, error)
}

// validateSystem checks the common shape constraints of every backend.
func validateSystem(lhs [][]float64, rhs []float64) error {
	if len(lhs) == 0 {
		return ErrEmptyDiagonals
	}
	if len(rhs) == 0 {
		return ErrDataSize
	}
	for _, row := range lhs {
		if len(row) != len(rhs) {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// generalBackend solves banded systems through direct factorization:
// symmetric positive-definite systems in lower-only storage go through
// gonum's banded Cholesky, full storage goes through banded LU with
// partial pivoting.
type generalBackend struct {
	lower bool
}

// Solve factors lhs and solves for rhs.
func (g *generalBackend) Solve(lhs [][]float64, rhs []float64) ([]float64, error) {
	if err := validateSystem(lhs, rhs); err != nil {
		return nil, err
	}
	if g.lower {
		return solveLowerBanded(lhs, rhs)
	}

	return solveBandedLU(lhs, rhs)
}

// solveLowerBanded solves a symmetric positive-definite system given in
// lower-only storage (main diagonal first) via gonum's banded Cholesky.
func solveLowerBanded(lhs [][]float64, rhs []float64) ([]float64, error) {
	n := len(rhs)
	k := len(lhs) - 1

	// SymBandDense wants the upper triangle row-major: element (i, i+d) at
	// data[i·(k+1)+d]. By symmetry that is lhs[d][i].
	data := make([]float64, n*(k+1))
	for d := 0; d <= k; d++ {
		for i := 0; i < n; i++ {
			data[i*(k+1)+d] = lhs[d][i]
		}
	}
	sym := mat.NewSymBandDense(n, k, data)

	var ch mat.BandCholesky
	if ok := ch.Factorize(sym); !ok {
		return nil, ErrNotPositiveDefinite
	}

	x := mat.NewVecDense(n, nil)
	if err := ch.SolveVecTo(x, mat.NewVecDense(n, rhs)); err != nil {
		return nil, ErrSingularSystem
	}

	out := make([]float64, n)
	copy(out, x.RawVector().Data)

	return out, nil
}

// solveBandedLU solves a general banded system in full storage (rows from
// the highest super-diagonal down to the lowest sub-diagonal) by banded LU
// factorization with partial pivoting. The extra fill-in introduced by row
// swaps is held in kl additional work rows above the stored band.
func solveBandedLU(lhs [][]float64, rhs []float64) ([]float64, error) {
	n := len(rhs)
	kl := len(lhs) / 2
	ku := len(lhs) - 1 - kl
	kv := kl + ku

	// Work array in LAPACK band layout: entry (i, j) at w[kv+i-j][j].
	w := zeroRows(2*kl+ku+1, n)
	for r, row := range lhs {
		copy(w[kl+r], row)
	}

	ipiv := make([]int, n)
	for j := 0; j < n; j++ {
		km := kl
		if km > n-1-j {
			km = n - 1 - j
		}

		// Partial pivot within the column's sub-diagonal window.
		jp := 0
		pmax := math.Abs(w[kv][j])
		for d := 1; d <= km; d++ {
			if v := math.Abs(w[kv+d][j]); v > pmax {
				pmax, jp = v, d
			}
		}
		ipiv[j] = j + jp
		if w[kv+jp][j] == 0 {
			return nil, ErrSingularSystem
		}

		ju := j + kv
		if ju > n-1 {
			ju = n - 1
		}
		if jp != 0 {
			for c := j; c <= ju; c++ {
				w[kv+j-c][c], w[kv+j+jp-c][c] = w[kv+j+jp-c][c], w[kv+j-c][c]
			}
		}

		piv := w[kv][j]
		for d := 1; d <= km; d++ {
			w[kv+d][j] /= piv
		}
		for c := j + 1; c <= ju; c++ {
			top := w[kv+j-c][c]
			if top == 0 {
				continue
			}
			for d := 1; d <= km; d++ {
				w[kv+j+d-c][c] -= w[kv+d][j] * top
			}
		}
	}

	x := make([]float64, n)
	copy(x, rhs)

	// Forward substitution with the recorded row swaps (L has unit diagonal).
	for j := 0; j < n; j++ {
		if p := ipiv[j]; p != j {
			x[j], x[p] = x[p], x[j]
		}
		km := kl
		if km > n-1-j {
			km = n - 1 - j
		}
		for d := 1; d <= km; d++ {
			x[j+d] -= w[kv+d][j] * x[j]
		}
	}

	// Backward substitution through U.
	for j := n - 1; j >= 0; j-- {
		x[j] /= w[kv][j]
		lo := j - kv
		if lo < 0 {
			lo = 0
		}
		for i := lo; i < j; i++ {
			x[i] -= w[kv+i-j][j] * x[j]
		}
	}

	return x, nil
}
