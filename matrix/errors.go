// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// validation surface. Callers match them via errors.Is. No function in this
// package panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators wrap these with a short tag via
// fmt.Errorf("tag: %w", ErrX); errors.Is still matches.

var (
	// ErrEmpty is returned when a matrix has zero rows or zero columns
	// in a context that requires content (validation; the solver itself
	// accepts empty input and returns a zero result).
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrRagged is returned when rows have unequal lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNaNInf is returned when a NaN or ±Inf entry is encountered where
	// finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative is returned when a negative entry is encountered; cost
	// matrices are non-negative by contract.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")
)
