// SPDX-License-Identifier: MIT

package banded

// Test-Bridge (White-Box) for Private Kernels and Capability Flags
//
// Purpose:
//   - Expose UNEXPORTED kernels and the pentadiagonal capability flag to
//     banded_test ONLY, without widening the production API.
//
// Provided Surface:
//   - SetPentaAvailable_TestOnly: toggle the fast-path capability flag and
//     return the previous value, so tests can exercise the general fallback.
//   - DiffPenaltyGram_TestOnly: the sparse-product penalty fallback, for
//     cross-checking the closed-form diagonal builders.
//   - DifferenceStencil_TestOnly / SolveBandedLU_TestOnly / SolvePenta_TestOnly:
//     thin pass-throughs to private kernels.
//
// Behavior & Determinism:
//   - Deterministic wrappers; no side effects beyond the flag setter.

// SetPentaAvailable_TestOnly overrides the pentadiagonal capability flag and
// returns the previous value. Callers must restore it (defer) to keep tests
// independent.
func SetPentaAvailable_TestOnly(available bool) bool {
	prev := pentaAvailable
	pentaAvailable = available

	return prev
}

// DiffPenaltyGram_TestOnly builds the difference operator in COO form and
// forwards to the private diffPenaltyGram fallback.
func DiffPenaltyGram_TestOnly(n, order int, lowerOnly bool) [][]float64 {
	op, err := DifferenceMatrix(n, order, FormatCOO)
	if err != nil {
		return nil
	}

	return diffPenaltyGram(op.(*CooMatrix), order, lowerOnly)
}

// DifferenceStencil_TestOnly forwards to the private differenceStencil kernel.
func DifferenceStencil_TestOnly(order int) []float64 {
	return differenceStencil(order)
}

// SolveBandedLU_TestOnly forwards to the private full-storage LU solver.
func SolveBandedLU_TestOnly(lhs [][]float64, rhs []float64) ([]float64, error) {
	return solveBandedLU(lhs, rhs)
}

// SolvePenta_TestOnly solves a five-band system through the PTRANS-I kernel
// in the given row orientation.
func SolvePenta_TestOnly(lhs [][]float64, rhs []float64, reversed bool) ([]float64, error) {
	backend := &pentaBackend{reversed: reversed}

	return backend.Solve(lhs, rhs)
}
