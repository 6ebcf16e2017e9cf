package sensitivity

import (
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

const (
	// perturbationDelta is the finite-difference step.
	perturbationDelta = 0.01

	// perturbationDeltaLarge replaces it past side 6, trading resolution
	// for numerical headroom on bigger matrices.
	perturbationDeltaLarge = 0.1

	// largeSide is the side length above which the larger delta applies.
	largeSide = 6

	// perturbationCap bounds the combined, ×100-scaled estimate.
	perturbationCap = 1000.0

	frobeniusWeight = 0.4
	spectralWeight  = 0.4
	traceWeight     = 0.2
)

// perturbationSensitivity bumps each cell by a small delta on a private
// copy and combines three finite-difference responses, each divided by
// delta: the Frobenius-norm change of the matrix, the maximum
// single-element change (a spectral-norm proxy), and the trace change.
// The weighted sum (0.4/0.4/0.2) is scaled ×100 and capped.
//
// This method deliberately never consults the assignment: it measures
// generic matrix perturbation magnitude, not assignment-change risk.
//
// Complexity: O(rows²·cols²) from the per-cell norm scans.
func perturbationSensitivity(costs matrix.Matrix) matrix.Matrix {
	rows, cols := costs.Rows(), costs.Cols()

	delta := perturbationDelta
	if side := max(rows, cols); side > largeSide {
		delta = perturbationDeltaLarge
	}
	baseTrace := matrix.Trace(costs)

	out := matrix.NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i, j := i, j
			out[i][j] = cellGuard(func() float64 {
				pert := costs.Clone()
				pert[i][j] += delta

				diff := pert.Clone()
				for r := range diff {
					for c := range diff[r] {
						diff[r][c] -= costs[r][c]
					}
				}

				frobSens := matrix.Frobenius(diff) / delta
				spectralSens := matrix.MaxAbs(diff) / delta
				traceSens := math.Abs(matrix.Trace(pert)-baseTrace) / delta

				combined := (frobeniusWeight*frobSens +
					spectralWeight*spectralSens +
					traceWeight*traceSens) * 100
				return math.Min(combined, perturbationCap)
			})
		}
	}

	return out
}
