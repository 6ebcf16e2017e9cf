// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the single, canonical source of truth for cost-matrix
//     well-formedness. The solver and the sensitivity engine do NOT
//     re-validate; callers run Validate (or IsValid) first.
//   - Return wrapped sentinel errors so call sites can match uniformly
//     with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic, and allocate nothing.
//   - Full scan is O(rows·cols).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Kept internal to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks that m is a well-formed cost matrix:
//   - non-empty (at least one row and one column),
//   - rectangular (all rows equal length),
//   - every entry finite (no NaN, no ±Inf),
//   - every entry non-negative.
//
// Returns nil or a wrapped sentinel (ErrEmpty, ErrRagged, ErrNaNInf,
// ErrNegative).
//
// Complexity: O(rows·cols).
func Validate(m Matrix) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return validatorErrorf("Validate", ErrEmpty)
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("Validate: row %d", i), ErrRagged)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("Validate: cell (%d,%d)", i, j), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("Validate: cell (%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return nil
}

// IsValid reports whether m passes Validate. Convenience form for callers
// that do not care which contract was violated.
func IsValid(m Matrix) bool {
	return Validate(m) == nil
}

// ValidateShape checks that the requested dimensions are non-negative.
// Used by generators before allocation.
//
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}
