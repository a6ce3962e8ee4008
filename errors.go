// SPDX-License-Identifier: MIT
// Package banded: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the banded
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package banded

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "banded: ..." for consistency and to allow
// easy grepping across logs. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the operation boundary — callers still
// match through errors.Is.

var (
	// ErrNegativeOrder is returned when a difference order is negative.
	ErrNegativeOrder = errors.New("banded: difference order must be non-negative")

	// ErrDataSize is returned when the data size is not positive.
	ErrDataSize = errors.New("banded: data size must be positive")

	// ErrUnknownFormat signals an unrecognized sparse storage format value.
	ErrUnknownFormat = errors.New("banded: unknown sparse format")

	// ErrColumnMismatch indicates two compact diagonal arrays with differing
	// column counts; they describe matrices of different sizes and cannot
	// be combined.
	ErrColumnMismatch = errors.New("banded: diagonal arrays have mismatched column counts")

	// ErrOddRowDifference indicates that the row-count difference of two
	// full-storage diagonal arrays is odd: the symmetric margin cannot be
	// split evenly between the upper and lower bands.
	ErrOddRowDifference = errors.New("banded: row-count difference must be even for full storage")

	// ErrEmptyDiagonals indicates an empty compact diagonal array where at
	// least one row was required.
	ErrEmptyDiagonals = errors.New("banded: empty diagonal array")

	// ErrLowerReversal is returned when a reversal is requested on
	// lower-only storage; only full storage has a reversed counterpart.
	ErrLowerReversal = errors.New("banded: cannot reverse lower-only storage")

	// ErrNonPositiveLam signals a non-positive regularization strength.
	ErrNonPositiveLam = errors.New("banded: lam must be greater than zero")

	// ErrDimensionMismatch indicates incompatible shapes between the
	// left-hand diagonals and the right-hand side vector.
	ErrDimensionMismatch = errors.New("banded: dimension mismatch")

	// ErrSingularSystem is returned when a zero pivot is encountered during
	// factorization; the system has no unique solution.
	ErrSingularSystem = errors.New("banded: singular system")

	// ErrNotPositiveDefinite is returned when the banded Cholesky
	// factorization of lower-only storage fails.
	ErrNotPositiveDefinite = errors.New("banded: system is not positive definite")
)
