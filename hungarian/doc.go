// Package hungarian solves the linear assignment problem with the
// Kuhn–Munkres (Hungarian) method.
//
// It computes an optimal one-to-one mapping between rows and columns of a
// (possibly rectangular) cost matrix, minimizing or maximizing total cost:
//
//   - Rectangular inputs are padded internally to a square working matrix;
//     rows that end up mapped to padding columns are reported as Unassigned.
//   - Maximization is handled by the classic M−c transform on a private
//     copy; the reported cost always comes from the caller's original cells.
//   - Tie-breaking is deterministic (row-major scans), so identical inputs
//     always produce identical results, a property the sensitivity engine
//     relies on when comparing re-solved assignments.
//
// Degenerate inputs (0 rows or 0 columns) return the zero Result. The
// solver performs no validation; run matrix.Validate beforehand. Behavior
// on malformed input is unspecified.
//
// Complexity: O(n³) time, O(n²) memory, n = max(rows, cols).
package hungarian
