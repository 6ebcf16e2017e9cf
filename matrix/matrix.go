// SPDX-License-Identifier: MIT
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense rectangular cost matrix: a sequence of rows, each an
// ordered sequence of float64 cells. The zero value (nil) behaves as an
// empty 0×0 matrix.
//
// Matrix is an input type everywhere in this module: functions that need to
// modify cells first take a private Clone and never touch the caller's rows.
type Matrix [][]float64

// NewDense allocates a zero-filled rows×cols matrix.
// Negative dimensions are clamped to 0 (an empty matrix), matching the
// solver's "degenerate input ⇒ zero result" policy.
//
// Complexity: O(rows·cols).
func NewDense(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		return Matrix{}
	}
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
// Assumes rectangularity; Validate enforces it upstream.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m. The copy shares no backing arrays with
// the original, so it is safe to mutate during perturbation probing.
//
// Complexity: O(rows·cols).
func (m Matrix) Clone() Matrix {
	if len(m) == 0 {
		return Matrix{}
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Max returns the maximum cell value, or 0 for an empty matrix.
//
// Complexity: O(rows·cols).
func (m Matrix) Max() float64 {
	first := true
	var best float64
	for _, row := range m {
		for _, v := range row {
			if first || v > best {
				best = v
				first = false
			}
		}
	}
	return best
}

// ToGonum converts m into a *mat.Dense for linear-algebra routines.
// Returns nil for an empty matrix (gonum rejects zero-sized Dense).
//
// Complexity: O(rows·cols).
func (m Matrix) ToGonum() *mat.Dense {
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil
	}
	data := make([]float64, 0, r*c)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data)
}

// Frobenius returns the Frobenius norm √(Σ v²) of m, 0 for empty input.
//
// Complexity: O(rows·cols).
func Frobenius(m Matrix) float64 {
	d := m.ToGonum()
	if d == nil {
		return 0
	}
	return mat.Norm(d, 2)
}

// Trace returns the sum of diagonal cells m[k][k] for k < min(rows, cols).
// Defined for rectangular matrices (gonum's Trace requires square input).
//
// Complexity: O(min(rows, cols)).
func Trace(m Matrix) float64 {
	n := m.Rows()
	if c := m.Cols(); c < n {
		n = c
	}
	var sum float64
	for k := 0; k < n; k++ {
		sum += m[k][k]
	}
	return sum
}

// MaxAbs returns the largest absolute cell value, 0 for empty input.
// Used as a cheap spectral-norm proxy for single-cell perturbations.
//
// Complexity: O(rows·cols).
func MaxAbs(m Matrix) float64 {
	var best float64
	for _, row := range m {
		for _, v := range row {
			if a := math.Abs(v); a > best {
				best = a
			}
		}
	}
	return best
}
