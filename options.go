// SPDX-License-Identifier: MIT
// Package banded: configuration surface for PenalizedSystem.

package banded

// ReverseMode controls the row order of the penalty's compact storage.
//
//   - ReverseAuto — let the solver backend decide: the fast pentadiagonal
//     path prefers reversed rows and turns reversal on, every other path
//     leaves the rows in upper-to-lower order.
//   - ReverseOn   — always store rows in reversed (lower-to-upper) order.
//   - ReverseOff  — never reverse, even on the pentadiagonal fast path.
//
// Only an explicit ReverseOff disables reversal under the fast path; both
// ReverseAuto and ReverseOn engage it there.
type ReverseMode int

const (
	// ReverseAuto defers the decision to the selected solver backend.
	ReverseAuto ReverseMode = iota

	// ReverseOn forces reversed row order.
	ReverseOn

	// ReverseOff forbids reversed row order.
	ReverseOff
)

// Options configures a PenalizedSystem at construction and on every
// ResetDiagonals call.
//
// Fields:
//   - Lam          — regularization strength λ; must be > 0.
//   - DiffOrder    — order of the finite-difference penalty DᵀD; must be ≥ 0.
//   - AllowLower   — permit lower-only storage (main diagonal plus
//     sub-diagonals); halves memory and enables the SPD Cholesky solve.
//   - ReverseDiags — row-order policy, see ReverseMode.
//   - AllowPenta   — permit the specialized pentadiagonal solver; engaged
//     only when DiffOrder == 2 and the fast path is available, and then it
//     forces full (non-lower) storage.
//   - Padding      — extra zero bands appended to the penalty so that wider
//     terms can later be folded in without reallocation.
//
// Example:
//
//	opts := banded.DefaultOptions()
//	opts.Lam = 1e5
//	opts.AllowLower = false
//	ps, err := banded.NewPenalizedSystem(n, &opts)
type Options struct {
	Lam          float64
	DiffOrder    int
	AllowLower   bool
	ReverseDiags ReverseMode
	AllowPenta   bool
	Padding      int
}

// DefaultOptions returns the canonical configuration: λ=1, second-order
// penalty, lower storage allowed, automatic row order, fast path allowed,
// no padding.
func DefaultOptions() Options {
	return Options{
		Lam:          1,
		DiffOrder:    2,
		AllowLower:   true,
		ReverseDiags: ReverseAuto,
		AllowPenta:   true,
		Padding:      0,
	}
}
