// Package sensitivity quantifies, per cost-matrix cell, how robust an
// optimal assignment is to changes in that cell.
//
// Six interchangeable methods sit behind one selector (Method); all produce
// a tolerance matrix of the input's shape but encode different notions of
// "sensitivity":
//
//   - MethodBasic              — distance to row/column minimums. O(n²).
//   - MethodDualBased          — LP-duality reduced costs from reconstructed
//     potentials. O(n²).
//   - MethodAuctionBased       — bid increments of one auction pass; a
//     competitive-pressure heuristic, not a tolerance bound.
//   - MethodGeometricBounds    — rank gaps to the next competitor in the
//     cell's row and column. O(n² log n).
//   - MethodReducedCost        — minimum alternating 4-cycle cost through
//     assigned edges, reduced costs elsewhere. O(n⁴) worst case.
//   - MethodPerturbationTheory — finite-difference matrix-norm response;
//     ignores the assignment entirely, weakest semantic tie of the six.
//
// A seventh, exact measure (Exact) re-solves the perturbed problem per cell
// with a binary search. It is deliberately not selectable through Analyze;
// it exists as a calibration oracle for the six approximations.
//
// Output cells are float64 with two sentinels: NaN (IsUndefined) marks a
// per-cell computation failure (one bad cell never aborts the rest of the
// matrix) and +Inf (IsUnbounded) marks a cell that may change without
// bound. LevelOf buckets values for presentation.
//
// Inputs larger than 8 on either side are silently downgraded to
// MethodBasic: the costlier methods can re-invoke the full solver many
// times per cell. The downgrade is logged through the engine's logger.
//
// The input matrix is borrowed-immutable: every probing method works on a
// private copy.
package sensitivity
