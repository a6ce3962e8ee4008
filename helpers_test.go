// SPDX-License-Identifier: MIT

package banded_test

import (
	"testing"

	"github.com/katalvlaran/banded"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// denseFromSparse expands any mat.Matrix into a concrete *mat.Dense for
// element-wise comparison.
func denseFromSparse(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	if r == 0 {
		return nil
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}

	return out
}

// denseFromDiags expands compact diagonal storage into the represented
// dense matrix. Reversed storage is un-reversed and lower-only storage is
// mirrored before expansion.
func denseFromDiags(diags [][]float64, lower, reversed bool) *mat.Dense {
	work := make([][]float64, len(diags))
	copy(work, diags)
	if reversed {
		for i, j := 0, len(work)-1; i < j; i, j = i+1, j-1 {
			work[i], work[j] = work[j], work[i]
		}
	}
	if lower {
		work = banded.LowerToFull(work)
	}

	n := len(work[0])
	bands := (len(work) - 1) / 2
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if off := j - i; off >= -bands && off <= bands {
				out.Set(i, j, work[bands-off][j])
			}
		}
	}

	return out
}

// assertAllClose compares two slices element-wise with a combined
// relative/absolute tolerance, mirroring the usual numeric-testing contract.
func assertAllClose(t *testing.T, want, got []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		diff := want[i] - got[i]
		if diff < 0 {
			diff = -diff
		}
		bound := atol + rtol*abs(want[i])
		require.LessOrEqualf(t, diff, bound, "element %d: want %g, got %g", i, want[i], got[i])
	}
}

// assertDenseAllClose compares two dense matrices element-wise.
func assertDenseAllClose(t *testing.T, want, got *mat.Dense, rtol, atol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr)
	require.Equal(t, wc, gc)
	for i := 0; i < wr; i++ {
		assertAllClose(t, want.RawRowView(i), got.RawRowView(i), rtol, atol)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// randSlice returns n deterministic pseudo-random values in [-1, 1).
func randSlice(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}

	return out
}

// noisySignal returns a smooth baseline plus deterministic noise, the usual
// input shape for a Whittaker-style solve.
func noisySignal(n int, seed uint64) []float64 {
	noise := randSlice(n, seed)
	out := make([]float64, n)
	for i := range out {
		x := float64(i) / float64(n-1)
		out[i] = 5*x*x - 3*x + 0.1*noise[i]
	}

	return out
}

// mulDiags multiplies a compact-storage matrix by a vector through dense
// expansion. Slow but obviously correct, used as the solve oracle.
func mulDiags(diags [][]float64, lower, reversed bool, x []float64) []float64 {
	a := denseFromDiags(diags, lower, reversed)
	n := len(x)
	out := mat.NewVecDense(n, nil)
	out.MulVec(a, mat.NewVecDense(n, x))

	res := make([]float64, n)
	copy(res, out.RawVector().Data)

	return res
}
