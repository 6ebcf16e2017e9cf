package sensitivity

import (
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

// basicSensitivity measures, for each cell, the distance from its value to
// the minimum of its row and of its column (each excluding the cell
// itself), taking the smaller of the two as the limiting constraint.
// Single-row/column lines fall back to the cell's own value, yielding 0.
//
// Complexity: O(rows·cols·(rows+cols)).
func basicSensitivity(costs matrix.Matrix) matrix.Matrix {
	rows, cols := costs.Rows(), costs.Cols()
	out := matrix.NewDense(rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i, j := i, j
			out[i][j] = cellGuard(func() float64 {
				v := costs[i][j]
				rowMin := rowMinExcluding(costs, i, j)
				colMin := colMinExcluding(costs, j, i)
				rowSens := math.Max(0, v-rowMin)
				colSens := math.Max(0, v-colMin)
				return math.Min(rowSens, colSens)
			})
		}
	}

	return out
}

// rowMinExcluding returns the minimum of row i skipping column skip,
// or the cell's own value when the row has a single column.
func rowMinExcluding(costs matrix.Matrix, i, skip int) float64 {
	min := math.Inf(1)
	for j, v := range costs[i] {
		if j == skip {
			continue
		}
		if v < min {
			min = v
		}
	}
	if math.IsInf(min, 1) {
		return costs[i][skip]
	}
	return min
}

// colMinExcluding returns the minimum of column j skipping row skip,
// or the cell's own value when the column has a single row.
func colMinExcluding(costs matrix.Matrix, j, skip int) float64 {
	min := math.Inf(1)
	for i := range costs {
		if i == skip {
			continue
		}
		if v := costs[i][j]; v < min {
			min = v
		}
	}
	if math.IsInf(min, 1) {
		return costs[skip][j]
	}
	return min
}
