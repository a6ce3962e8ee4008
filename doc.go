// Package banded is a compact banded-matrix toolkit for penalized
// least-squares smoothing — the computational core of the Whittaker
// smoother family (asymmetric least squares, airPLS, arPLS, ...).
//
// 🚀 What is banded?
//
//	A small, deterministic library that keeps every matrix in compact
//	diagonal storage and never materializes a full n×n system:
//		• Difference operators: sparse nth-order finite-difference matrices
//		  (DIA / COO / CSR layouts, gonum mat.Matrix compatible)
//		• Penalty diagonals: DᵀD built directly in diagonal form through
//		  closed-form stencils, with a sparse-product fallback
//		• Storage primitives: pad, shift, mirror and add diagonal blocks
//		  with differing bandwidths
//		• Solvers: a fast pentadiagonal elimination for five-band systems
//		  and a general banded direct solver (SPD Cholesky via gonum for
//		  lower-only storage, banded LU with partial pivoting otherwise)
//		• PenalizedSystem: a stateful façade that amortizes construction
//		  across many solves with changing λ, order and orientation
//
// ✨ Why choose banded?
//
//   - Built for the (W + λ·DᵀD)x = Wy shape — nothing more, nothing less
//   - Deterministic kernels – fixed loop orders, reproducible results
//   - Explicit in-place contracts – buffers are owned, never shared
//   - Sentinel errors – every failure matches through errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/banded"
//
//	opts := banded.DefaultOptions() // λ=1, order 2, lower storage
//	opts.Lam = 1e5
//	ps, err := banded.NewPenalizedSystem(len(y), &opts)
//	if err != nil { ... }
//
//	// fold the weight vector into the main diagonal, then solve
//	main := ps.Penalty[ps.MainDiagonalIndex]
//	for i, w := range weights {
//		main[i] += w
//	}
//	baseline, err := ps.Solve(ps.Penalty, y)
//
// The outer reweighting loops of specific baseline algorithms, spline
// bases and any plotting/CLI surface are deliberately out of scope:
// they consume this package through Solve/AddPenalty.
package banded
