package sensitivity

import (
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

// dualSensitivity reconstructs row/column potentials u, v satisfying
// complementary slackness on assigned pairs (u[i] + v[j] = cost[i][j]) and
// reports the non-negative reduced cost of every cell.
//
// The potentials are derived by walking the assignment in row order:
// row 0 is anchored at u[0] = 0 and its assigned column takes the full
// cost; every later row derives u[i] = cost − v[assignment[i]]. Columns
// the walk never anchors keep v = 0.
//
// Complexity: O(rows·cols).
func dualSensitivity(costs matrix.Matrix, assignment []int) matrix.Matrix {
	rows, cols := costs.Rows(), costs.Cols()
	u := make([]float64, rows)
	v := make([]float64, cols)

	for i := 0; i < rows && i < len(assignment); i++ {
		j := assignment[i]
		if j < 0 || j >= cols {
			continue
		}
		if i == 0 {
			u[0] = 0
			v[j] = costs[0][j]
		} else {
			u[i] = costs[i][j] - v[j]
		}
	}

	out := matrix.NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i, j := i, j
			out[i][j] = cellGuard(func() float64 {
				return math.Max(0, costs[i][j]-u[i]-v[j])
			})
		}
	}

	return out
}
