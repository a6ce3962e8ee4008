// SPDX-License-Identifier: MIT
// Package banded: specialized pentadiagonal solver.
//
// Implements the PTRANS-I elimination of Askar & Karawia for five-band
// systems. It runs in a single O(n) sweep without pivoting, which makes it
// markedly faster than the general banded LU for second-order penalties but
// also means it can hit a zero pivot on systems the pivoting solver would
// handle; callers fall back to the general path in that case.

package banded

// pentaAvailable gates the fast pentadiagonal path. It is a package-level
// capability flag so builds that want to force the general solver (or tests
// exercising the fallback) can clear it.
var pentaAvailable = true

// pentaBackend solves pentadiagonal systems held in five-row compact
// storage. When reversed is true the rows run from the lowest sub-diagonal
// up to the highest super-diagonal, otherwise top-down.
type pentaBackend struct {
	reversed bool
}

// Solve runs the PTRANS-I sweep on lhs·x = rhs.
func (p *pentaBackend) Solve(lhs [][]float64, rhs []float64) ([]float64, error) {
	if err := validateSystem(lhs, rhs); err != nil {
		return nil, err
	}
	if len(lhs) != 5 {
		return nil, ErrDimensionMismatch
	}

	// Normalize to reversed orientation: row 0 is the second sub-diagonal,
	// row 4 the second super-diagonal, all column-indexed.
	row := func(k int) []float64 {
		if p.reversed {
			return lhs[k]
		}

		return lhs[4-k]
	}

	n := len(rhs)
	// Per-index band views: d is the main diagonal, a/b the first and
	// second super-diagonals, c/e the first and second sub-diagonals.
	d := row(2)
	aRow, bRow := row(3), row(4)
	cRow, eRow := row(1), row(0)
	a := func(i int) float64 { return aRow[i+1] }
	b := func(i int) float64 { return bRow[i+2] }
	c := func(i int) float64 { return cRow[i-1] }
	e := func(i int) float64 { return eRow[i-2] }

	alpha := make([]float64, n)
	beta := make([]float64, n)
	z := make([]float64, n)

	for i := 0; i < n; i++ {
		var gamma, mu float64
		switch {
		case i == 0:
			mu = d[0]
		case i == 1:
			gamma = c(1)
			mu = d[1] - alpha[0]*gamma
		default:
			gamma = c(i) - alpha[i-2]*e(i)
			mu = d[i] - beta[i-2]*e(i) - alpha[i-1]*gamma
		}
		if mu == 0 {
			return nil, ErrSingularSystem
		}

		if i < n-1 {
			ai := a(i)
			if i > 0 {
				ai -= beta[i-1] * gamma
			}
			alpha[i] = ai / mu
		}
		if i < n-2 {
			beta[i] = b(i) / mu
		}

		zi := rhs[i]
		if i > 0 {
			zi -= z[i-1] * gamma
		}
		if i > 1 {
			zi -= z[i-2] * e(i)
		}
		z[i] = zi / mu
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = z[i]
		if i < n-1 {
			x[i] -= alpha[i] * x[i+1]
		}
		if i < n-2 {
			x[i] -= beta[i] * x[i+2]
		}
	}

	return x, nil
}
