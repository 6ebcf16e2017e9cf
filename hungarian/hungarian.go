package hungarian

import (
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

// zeroEps absorbs floating-point drift introduced by repeated matrix
// reductions; any working cell within zeroEps of 0 counts as a zero.
const zeroEps = 1e-9

// Solve computes an optimal assignment over costs under the given mode.
//
// Algorithm outline (Kuhn–Munkres):
//  1. Build an n×n working copy, n = max(rows, cols). Maximization is
//     converted to minimization via c → M−c (M = max real cell); padding
//     cells are zero-cost dummies in the minimization direction.
//  2. Subtract each row's minimum, then each column's minimum.
//  3. Star/prime zeros, covering them with a minimum set of lines; while
//     fewer than n lines suffice, shift the minimum uncovered value out of
//     the uncovered region and retry. Augmenting paths grow the star set
//     until every row carries a star.
//  4. Truncate to the original row count; rows starred on padding columns
//     become Unassigned. Cost is re-summed from the caller's matrix so the
//     reported number reflects the original cells, never the transform.
//
// Determinism: all scans are row-major, so tie-breaking is stable and two
// calls on identical input return identical Results.
//
// Empty input (0 rows or 0 columns) returns the zero Result. No validation
// is performed here; see matrix.Validate.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(costs matrix.Matrix, mode Mode) Result {
	rows, cols := costs.Rows(), costs.Cols()
	if rows == 0 || cols == 0 {
		return Result{Assignment: []int{}}
	}

	n := rows
	if cols > n {
		n = cols
	}

	w := buildWorking(costs, mode, n)
	reduceRows(w)
	reduceCols(w)
	starCol := munkres(w)

	assignment := make([]int, rows)
	var total float64
	for i := 0; i < rows; i++ {
		j := starCol[i]
		if j >= cols {
			j = Unassigned
		}
		assignment[i] = j
		if j != Unassigned {
			total += costs[i][j]
		}
	}

	return Result{Cost: total, Assignment: assignment}
}

// buildWorking returns the n×n minimization matrix for costs under mode.
// The caller's matrix is never touched.
func buildWorking(costs matrix.Matrix, mode Mode, n int) [][]float64 {
	rows, cols := costs.Rows(), costs.Cols()
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}

	if mode == Maximize {
		m := costs.Max()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i < rows && j < cols {
					w[i][j] = m - costs[i][j]
				} else {
					w[i][j] = m // pre-transform zero-cost dummy
				}
			}
		}
		return w
	}

	for i := 0; i < rows; i++ {
		copy(w[i], costs[i]) // padding rows/cols stay 0
	}

	return w
}

// reduceRows subtracts each row's minimum from every cell in that row.
func reduceRows(w [][]float64) {
	for _, row := range w {
		min := row[0]
		for _, v := range row[1:] {
			if v < min {
				min = v
			}
		}
		for j := range row {
			row[j] -= min
		}
	}
}

// reduceCols subtracts each column's minimum from every cell in that column.
func reduceCols(w [][]float64) {
	n := len(w)
	for j := 0; j < n; j++ {
		min := w[0][j]
		for i := 1; i < n; i++ {
			if w[i][j] < min {
				min = w[i][j]
			}
		}
		for i := 0; i < n; i++ {
			w[i][j] -= min
		}
	}
}

// isZero reports whether a working cell counts as zero.
func isZero(v float64) bool {
	return math.Abs(v) <= zeroEps
}

// munkres runs the star/prime cover loop on the reduced working matrix w
// and returns starCol, where starCol[i] is the column starred in row i.
// w is mutated freely (it is already a private copy).
func munkres(w [][]float64) []int {
	n := len(w)
	starCol := make([]int, n)  // row  -> starred column
	starRow := make([]int, n)  // col  -> starred row
	primeCol := make([]int, n) // row  -> primed column
	for i := 0; i < n; i++ {
		starCol[i], starRow[i], primeCol[i] = -1, -1, -1
	}
	rowCovered := make([]bool, n)
	colCovered := make([]bool, n)

	// Greedy initial stars: one zero per free row/column pair.
	for i := 0; i < n; i++ {
		if starCol[i] != -1 {
			continue
		}
		for j := 0; j < n; j++ {
			if starRow[j] == -1 && isZero(w[i][j]) {
				starCol[i], starRow[j] = j, i
				break
			}
		}
	}

	for {
		// Cover every column holding a star; n covered columns means the
		// star set is a complete assignment.
		covered := 0
		for j := 0; j < n; j++ {
			colCovered[j] = starRow[j] != -1
			if colCovered[j] {
				covered++
			}
		}
		if covered == n {
			return starCol
		}

		// Prime uncovered zeros until an augmenting path is found.
		for {
			r, c := findUncoveredZero(w, rowCovered, colCovered)
			if r == -1 {
				adjust(w, rowCovered, colCovered)
				continue
			}
			primeCol[r] = c
			if starCol[r] == -1 {
				// Augmenting path: flip stars/primes from (r,c) back.
				augment(r, c, starCol, starRow, primeCol)
				for i := 0; i < n; i++ {
					primeCol[i] = -1
					rowCovered[i] = false
					colCovered[i] = false
				}
				break
			}
			rowCovered[r] = true
			colCovered[starCol[r]] = false
		}
	}
}

// findUncoveredZero returns the first uncovered zero in row-major order,
// or (-1, -1) when none exists.
func findUncoveredZero(w [][]float64, rowCovered, colCovered []bool) (int, int) {
	n := len(w)
	for i := 0; i < n; i++ {
		if rowCovered[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if colCovered[j] {
				continue
			}
			if isZero(w[i][j]) {
				return i, j
			}
		}
	}

	return -1, -1
}

// adjust shifts the minimum uncovered value: added to every covered row,
// subtracted from every uncovered column. Net effect: uncovered cells lose
// it, doubly-covered cells gain it, singly-covered cells are unchanged.
func adjust(w [][]float64, rowCovered, colCovered []bool) {
	n := len(w)
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		if rowCovered[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !colCovered[j] && w[i][j] < min {
				min = w[i][j]
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rowCovered[i] {
				w[i][j] += min
			}
			if !colCovered[j] {
				w[i][j] -= min
			}
		}
	}
}

// augment flips the alternating star/prime path that starts at the primed
// zero (r,c) in a star-free row, growing the star set by one.
func augment(r, c int, starCol, starRow, primeCol []int) {
	for {
		prev := starRow[c] // row whose star currently sits in column c
		starRow[c] = r
		starCol[r] = c
		if prev == -1 {
			return
		}
		r = prev
		c = primeCol[r]
	}
}
