// Package matrix provides the dense cost-matrix type shared by the
// assignment solver and the sensitivity engine.
//
// The matrix package provides:
//
//   - Matrix — a rectangular [][]float64 with O(1) cell access and
//     copy-on-demand semantics (Clone) for perturbation probing.
//   - Validate / IsValid — the canonical well-formedness gate: rectangular,
//     non-empty, all entries finite and non-negative. Downstream packages
//     assume validated input and do not re-check.
//   - Numeric probes (Frobenius, Trace, MaxAbs) and a gonum bridge
//     (ToGonum) for norm-based sensitivity measures.
//
// Matrices here are small and dense by design; O(rows·cols) memory and
// whole-matrix scans are acceptable everywhere in this module.
package matrix
