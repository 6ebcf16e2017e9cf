package sensitivity

import (
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

// defaultCycleCost stands in when no valid alternating cycle exists for an
// assigned edge (e.g. a 1×1 problem has no alternative pairs).
const defaultCycleCost = 5.0

// reducedCostSensitivity models the assignment as a min-cost flow and
// measures each edge differently:
//
//   - assigned edges: the minimum |cost| of an alternating 4-cycle through
//     the edge, i.e. the cheapest swap that would displace it,
//   - unassigned edges: the non-negative reduced cost under node potentials.
//
// The potentials are seeded u ≡ 0, v[j] = cost[i][j] per assigned row.
// That seeding is NOT dual-feasible the way dualSensitivity's walk is; it
// is a deliberate simplification kept for compatibility with existing
// consumers of these values.
//
// Complexity: O(rows·cols) per assigned cell, O(n⁴) worst case overall,
// bounded by the engine's size downgrade.
func reducedCostSensitivity(costs matrix.Matrix, assignment []int) matrix.Matrix {
	rows, cols := costs.Rows(), costs.Cols()
	u := make([]float64, rows) // kept at zero, see above
	v := make([]float64, cols)

	for i := 0; i < rows && i < len(assignment); i++ {
		j := assignment[i]
		if j < 0 || j >= cols {
			continue
		}
		v[j] = costs[i][j] - u[i]
	}

	out := matrix.NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i, j := i, j
			out[i][j] = cellGuard(func() float64 {
				if i < len(assignment) && assignment[i] == j {
					return minAlternatingCycle(costs, assignment, i, j)
				}
				return math.Max(0, costs[i][j]-u[i]-v[j])
			})
		}
	}

	return out
}

// minAlternatingCycle searches all alternative pairs (altI, altJ) for the
// minimal |c[i][altJ] + c[altI][j] − c[i][j] − c[altI][assignment[altI]]|,
// the cost of the cheapest 4-cycle swap displacing assigned edge (i, j).
// Returns defaultCycleCost when no valid alternative exists.
func minAlternatingCycle(costs matrix.Matrix, assignment []int, i, j int) float64 {
	rows, cols := costs.Rows(), costs.Cols()
	best := math.Inf(1)

	for altJ := 0; altJ < cols; altJ++ {
		if altJ == j {
			continue
		}
		for altI := 0; altI < rows && altI < len(assignment); altI++ {
			if altI == i {
				continue
			}
			cur := assignment[altI]
			if cur < 0 || cur >= cols {
				continue
			}
			cycle := costs[i][altJ] + costs[altI][j] - costs[i][j] - costs[altI][cur]
			if a := math.Abs(cycle); a < best {
				best = a
			}
		}
	}

	if math.IsInf(best, 1) {
		return defaultCycleCost
	}
	return best
}
