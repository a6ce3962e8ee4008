// SPDX-License-Identifier: MIT
// Package banded: stateful penalized-system façade.

package banded

import (
	"gonum.org/v1/gonum/floats"
)

// PenalizedSystem owns the banded left-hand side of a penalized
// least-squares system (W + λ·DᵀD)·x = W·y and amortizes its construction
// across many solves. The penalty diagonals, the storage orientation and
// the solver backend are all fixed by ResetDiagonals and reused until the
// next reset.
//
// Exported fields are read-mostly state: callers are expected to mutate the
// rows of Penalty (typically the main diagonal, through MainDiagonalIndex)
// between solves, and to treat everything else as read-only.
type PenalizedSystem struct {
	// OriginalDiagonals is the unscaled penalty DᵀD in the current storage
	// orientation, kept so the λ-scaled Penalty can be rebuilt cheaply.
	OriginalDiagonals [][]float64

	// Penalty is λ·OriginalDiagonals, the working left-hand side buffer.
	Penalty [][]float64

	// Lam is the current regularization strength.
	Lam float64

	// DiffOrder is the current difference order of the penalty.
	DiffOrder int

	// NumBands counts the sub-diagonals of the stored system, padding
	// included.
	NumBands int

	// MainDiagonalIndex locates the main diagonal inside Penalty: 0 for
	// lower-only storage, NumBands for full storage.
	MainDiagonalIndex int

	// Lower reports lower-only storage.
	Lower bool

	// Reversed reports that the rows of Penalty run from the lowest
	// sub-diagonal upward rather than top-down.
	Reversed bool

	// UsingPenta reports that solves go through the specialized
	// pentadiagonal path.
	UsingPenta bool

	n      int
	solver solverBackend
}

// NewPenalizedSystem builds a system for vectors of length n. A nil opts
// uses DefaultOptions. Returns ErrDataSize for n ≤ 0 and propagates every
// ResetDiagonals validation error.
func NewPenalizedSystem(n int, opts *Options) (*PenalizedSystem, error) {
	if n <= 0 {
		return nil, ErrDataSize
	}

	ps := &PenalizedSystem{n: n}
	if err := ps.ResetDiagonals(opts); err != nil {
		return nil, err
	}

	return ps, nil
}

// DataSize reports the vector length the system was built for.
func (ps *PenalizedSystem) DataSize() int { return ps.n }

// ResetDiagonals rebuilds the penalty and reselects the solver backend for
// a new configuration. A nil opts uses DefaultOptions. The update is
// atomic: on error the receiver keeps its previous state.
//
// The pentadiagonal fast path engages only for DiffOrder == 2 when
// AllowPenta is set and the path is available; it forces full storage and
// reverses the rows unless ReverseDiags is explicitly ReverseOff. Outside
// the fast path, rows are reversed only on an explicit ReverseOn.
// Padding bands are appended to Penalty only, after reversal and scaling;
// OriginalDiagonals always holds the unpadded diagonals.
//
// Returns ErrNonPositiveLam, ErrNegativeOrder or a penalty construction
// error.
func (ps *PenalizedSystem) ResetDiagonals(opts *Options) error {
	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}
	if options.Lam <= 0 {
		return ErrNonPositiveLam
	}
	if options.DiffOrder < 0 {
		return ErrNegativeOrder
	}

	usingPenta := options.AllowPenta && options.DiffOrder == 2 && pentaAvailable
	var lower, reversed bool
	if usingPenta {
		lower = false
		reversed = options.ReverseDiags != ReverseOff
	} else {
		lower = options.AllowLower
		reversed = options.ReverseDiags == ReverseOn
	}

	// OriginalDiagonals stays unpadded; only the λ-scaled working buffer
	// grows the extra zero bands.
	original, err := DiffPenaltyDiagonals(ps.n, options.DiffOrder, lower, 0)
	if err != nil {
		return err
	}
	if reversed {
		reverseRows(original)
	}

	penalty := cloneDiagonals(original)
	for _, row := range penalty {
		floats.Scale(options.Lam, row)
	}
	penalty = PadDiagonals(penalty, options.Padding, lower)

	padding := options.Padding
	if padding < 0 {
		padding = 0
	}
	numBands := options.DiffOrder + padding

	ps.OriginalDiagonals = original
	ps.Penalty = penalty
	ps.Lam = options.Lam
	ps.DiffOrder = options.DiffOrder
	ps.NumBands = numBands
	if lower {
		ps.MainDiagonalIndex = 0
	} else {
		ps.MainDiagonalIndex = numBands
	}
	ps.Lower = lower
	ps.Reversed = reversed
	ps.UsingPenta = usingPenta
	if usingPenta {
		ps.solver = &pentaBackend{reversed: reversed}
	} else {
		ps.solver = &generalBackend{lower: lower}
	}

	return nil
}

// AddPenalty folds an additional penalty, given in the system's current
// storage layout and orientation, into Penalty. The wider operand dictates
// the resulting bandwidth: NumBands and MainDiagonalIndex grow when the
// added penalty carries more bands than the stored one. The updated Penalty
// is returned for convenience.
func (ps *PenalizedSystem) AddPenalty(penalty [][]float64) ([][]float64, error) {
	summed, err := AddDiagonals(ps.Penalty, penalty, ps.Lower)
	if err != nil {
		return nil, err
	}

	addedBands := len(penalty) / 2
	if ps.Lower {
		addedBands = len(penalty) - 1
	}
	if addedBands > ps.NumBands {
		ps.NumBands = addedBands
		if !ps.Lower {
			ps.MainDiagonalIndex = addedBands
		}
	}
	ps.Penalty = summed

	return ps.Penalty, nil
}

// ReversePenalty flips the row order of both Penalty and OriginalDiagonals
// and toggles Reversed. Only full storage has a reversed counterpart;
// lower-only storage returns ErrLowerReversal.
func (ps *PenalizedSystem) ReversePenalty() error {
	if ps.Lower {
		return ErrLowerReversal
	}

	reverseRows(ps.Penalty)
	reverseRows(ps.OriginalDiagonals)
	ps.Reversed = !ps.Reversed

	return nil
}

// Solve solves lhs·x = rhs through the backend selected at the last reset.
// lhs must match the system's storage layout and orientation; it is
// typically ps.Penalty after the caller folded the weights into the main
// diagonal. Neither argument is modified.
func (ps *PenalizedSystem) Solve(lhs [][]float64, rhs []float64) ([]float64, error) {
	return ps.solver.Solve(lhs, rhs)
}
