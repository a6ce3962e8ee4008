// SPDX-License-Identifier: MIT

package banded_test

import (
	"testing"

	"github.com/katalvlaran/banded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveBandedLU_Tridiagonal verifies the full-storage LU path on a
// classic tridiagonal system with a known solution.
func TestSolveBandedLU_Tridiagonal(t *testing.T) {
	lhs := [][]float64{
		{0, -1, -1},
		{2, 2, 2},
		{-1, -1, 0},
	}

	x, err := banded.SolveBandedLU_TestOnly(lhs, []float64{1, 0, 1})
	require.NoError(t, err)
	assertAllClose(t, []float64{1, 1, 1}, x, 1e-14, 1e-14)
}

// TestSolveBandedLU_RequiresPivoting verifies that a zero leading pivot is
// handled by the row interchange, not reported as singular.
func TestSolveBandedLU_RequiresPivoting(t *testing.T) {
	// The anti-diagonal permutation matrix: unsolvable without pivoting.
	lhs := [][]float64{
		{0, 1},
		{0, 0},
		{1, 0},
	}

	x, err := banded.SolveBandedLU_TestOnly(lhs, []float64{3, 5})
	require.NoError(t, err)
	assertAllClose(t, []float64{5, 3}, x, 1e-14, 1e-14)
}

// TestSolveBandedLU_Singular verifies the singular-system sentinel.
func TestSolveBandedLU_Singular(t *testing.T) {
	lhs := [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}

	_, err := banded.SolveBandedLU_TestOnly(lhs, []float64{1, 2, 3})
	assert.ErrorIs(t, err, banded.ErrSingularSystem)
}

// TestSolveBandedLU_RandomBandedSystem round-trips a random solution
// through a diagonally dominant banded matrix.
func TestSolveBandedLU_RandomBandedSystem(t *testing.T) {
	const n = 40
	diags, err := banded.DiffPenaltyDiagonals(n, 2, false, 0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		diags[2][i] += 25 // strong main diagonal
	}

	want := randSlice(n, 11)
	rhs := mulDiags(diags, false, false, want)

	got, err := banded.SolveBandedLU_TestOnly(diags, rhs)
	require.NoError(t, err)
	assertAllClose(t, want, got, 1e-10, 1e-12)
}

// TestSolvePenta_MatchesLU cross-checks the PTRANS-I kernel against the
// general LU path in both row orientations.
func TestSolvePenta_MatchesLU(t *testing.T) {
	const n = 24
	lhs, err := banded.DiffPenaltyDiagonals(n, 2, false, 0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		lhs[2][i] += 10
	}
	rhs := randSlice(n, 3)

	want, err := banded.SolveBandedLU_TestOnly(lhs, rhs)
	require.NoError(t, err)

	plain, err := banded.SolvePenta_TestOnly(lhs, rhs, false)
	require.NoError(t, err)
	assertAllClose(t, want, plain, 1e-10, 1e-12)

	reversed := [][]float64{lhs[4], lhs[3], lhs[2], lhs[1], lhs[0]}
	flipped, err := banded.SolvePenta_TestOnly(reversed, rhs, true)
	require.NoError(t, err)
	assertAllClose(t, want, flipped, 1e-10, 1e-12)
}

// TestSolvePenta_TinySystems verifies the sweep on one- and two-element
// systems where most bands are structural zeros.
func TestSolvePenta_TinySystems(t *testing.T) {
	one := [][]float64{{0}, {0}, {4}, {0}, {0}}
	x, err := banded.SolvePenta_TestOnly(one, []float64{8}, true)
	require.NoError(t, err)
	assertAllClose(t, []float64{2}, x, 1e-14, 1e-14)

	// [[3, 1], [1, 3]] in reversed five-row storage.
	two := [][]float64{
		{0, 0},
		{1, 0},
		{3, 3},
		{0, 1},
		{0, 0},
	}
	x, err = banded.SolvePenta_TestOnly(two, []float64{5, 7}, true)
	require.NoError(t, err)
	assertAllClose(t, []float64{1, 2}, x, 1e-14, 1e-14)
}

// TestSolvePenta_Failures verifies the shape and singularity sentinels.
func TestSolvePenta_Failures(t *testing.T) {
	_, err := banded.SolvePenta_TestOnly([][]float64{{1, 1}, {1, 1}, {1, 1}}, []float64{1, 1}, true)
	assert.ErrorIs(t, err, banded.ErrDimensionMismatch, "three rows are not pentadiagonal")

	zero := [][]float64{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}
	_, err = banded.SolvePenta_TestOnly(zero, []float64{1, 1}, true)
	assert.ErrorIs(t, err, banded.ErrSingularSystem, "zero pivot must error")
}

// TestSolve_ShapeValidation verifies the shared shape guards of every
// backend through the public Solve entry point.
func TestSolve_ShapeValidation(t *testing.T) {
	ps, err := banded.NewPenalizedSystem(4, nil)
	require.NoError(t, err)

	_, err = ps.Solve(nil, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, banded.ErrEmptyDiagonals, "empty lhs must error")

	_, err = ps.Solve(ps.Penalty, nil)
	assert.ErrorIs(t, err, banded.ErrDataSize, "empty rhs must error")

	_, err = ps.Solve(ps.Penalty, []float64{1, 2})
	assert.ErrorIs(t, err, banded.ErrDimensionMismatch, "row length must match rhs")
}
