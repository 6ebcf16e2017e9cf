package sensitivity

import (
	"math"

	"github.com/st7ma784/LSASensitivity/hungarian"
	"github.com/st7ma784/LSASensitivity/matrix"
)

const (
	// oracleSearchBound is how far a cell is pushed before the tolerance is
	// declared unbounded.
	oracleSearchBound = 1e6

	// oracleTol is the binary-search convergence threshold.
	oracleTol = 1e-6
)

// Exact measures each cell's true tolerance by re-solving perturbed copies
// of the matrix: the largest single-cell perturbation, in the adverse
// direction, that leaves the optimal assignment unchanged.
//
// The adverse direction is the one that can flip the decision: assigned
// cells are pushed away from the optimum (up when minimizing, down when
// maximizing) and unassigned cells are pulled toward it. Downward pushes
// stop at zero to stay inside the non-negative cost domain; a cell whose
// assignment survives the full probe range carries the Unbounded sentinel.
//
// Exact is NOT one of the selectable methods: each cell costs
// O(log(bound)) full solver runs, so it exists purely as a reference
// oracle for calibrating and testing the six approximations.
//
// Complexity: O(rows·cols·log(bound/tol)·n³).
func Exact(costs matrix.Matrix, assignment []int, mode hungarian.Mode) matrix.Matrix {
	rows, cols := costs.Rows(), costs.Cols()
	if rows == 0 || cols == 0 {
		return matrix.Matrix{}
	}

	out := matrix.NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i, j := i, j
			out[i][j] = cellGuard(func() float64 {
				return exactCell(costs, assignment, mode, i, j)
			})
		}
	}

	return out
}

// exactCell binary-searches the adverse perturbation of cell (i, j).
func exactCell(costs matrix.Matrix, assignment []int, mode hungarian.Mode, i, j int) float64 {
	assignedHere := i < len(assignment) && assignment[i] == j

	// Minimizing: raising an assigned cell or lowering an unassigned one is
	// adverse. Maximizing mirrors both.
	dir := 1.0
	if (mode == hungarian.Minimize) != assignedHere {
		dir = -1.0
	}

	bound := float64(oracleSearchBound)
	if dir < 0 {
		bound = math.Min(bound, costs[i][j]) // costs stay non-negative
	}
	if bound <= 0 {
		// No adverse room at all (a zero cell that can only go down):
		// the assignment trivially survives every admissible change.
		return Unbounded()
	}

	if !flipsAssignment(costs, assignment, mode, i, j, dir*bound) {
		return Unbounded()
	}

	lo, hi := 0.0, bound
	for hi-lo > oracleTol {
		mid := lo + (hi-lo)/2
		if flipsAssignment(costs, assignment, mode, i, j, dir*mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo
}

// flipsAssignment re-solves a perturbed copy and reports whether the
// optimal assignment moved away from the reference one.
func flipsAssignment(costs matrix.Matrix, assignment []int, mode hungarian.Mode, i, j int, delta float64) bool {
	probe := costs.Clone()
	probe[i][j] += delta

	res := hungarian.Solve(probe, mode)
	if len(res.Assignment) != len(assignment) {
		return true
	}
	for k := range assignment {
		if res.Assignment[k] != assignment[k] {
			return true
		}
	}

	return false
}
