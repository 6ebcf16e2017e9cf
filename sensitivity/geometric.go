package sensitivity

import (
	"math"
	"sort"

	"github.com/st7ma784/LSASensitivity/matrix"
)

// geometricDefaultGap replaces an infinite gap: a cell already the maximum
// of both its row and column gets this fixed bound instead of +Inf.
const geometricDefaultGap = 10.0

// geometricSensitivity ranks each cell among its row and column competitors
// and takes the smaller gap to the next-higher value as the sensitivity
// bound. Duplicated values yield a zero gap; a cell that is already the
// row/column maximum contributes an infinite gap, and if both gaps are
// infinite the cell falls back to geometricDefaultGap.
//
// Complexity: O(rows·cols·(rows log rows + cols log cols)) via per-line
// pre-sorting.
func geometricSensitivity(costs matrix.Matrix) matrix.Matrix {
	rows, cols := costs.Rows(), costs.Cols()
	out := matrix.NewDense(rows, cols)

	// Sort every row and column once; ranks are looked up per cell.
	rowSorted := make([][]float64, rows)
	for i := range rowSorted {
		rowSorted[i] = append([]float64(nil), costs[i]...)
		sort.Float64s(rowSorted[i])
	}
	colSorted := make([][]float64, cols)
	for j := range colSorted {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = costs[i][j]
		}
		sort.Float64s(col)
		colSorted[j] = col
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i, j := i, j
			out[i][j] = cellGuard(func() float64 {
				v := costs[i][j]
				gap := math.Min(gapToNext(rowSorted[i], v), gapToNext(colSorted[j], v))
				if math.IsInf(gap, 1) {
					return geometricDefaultGap
				}
				return gap
			})
		}
	}

	return out
}

// gapToNext locates v's first rank in the ascending slice and returns the
// distance to the next element, or +Inf when v is already the maximum.
// v always occurs in sorted (it came from the same line).
func gapToNext(sorted []float64, v float64) float64 {
	rank := sort.SearchFloat64s(sorted, v)
	if rank >= len(sorted)-1 {
		return math.Inf(1)
	}
	return sorted[rank+1] - v
}
