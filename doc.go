// Package lsasensitivity solves the linear assignment problem and
// quantifies, per cost-matrix cell, how robust the optimal assignment is
// to changes in that cell.
//
// What is LSASensitivity?
//
//	A small, deterministic library built from three packages:
//		• hungarian/   — Kuhn–Munkres assignment solver (minimize or maximize),
//		  rectangular matrices supported via internal padding.
//		• sensitivity/ — six interchangeable per-cell tolerance methods behind
//		  one selector, plus an exact re-solve oracle for calibration.
//		• distrib/     — random cost-matrix generation from nine statistical
//		  distributions with an injectable RNG.
//
// Why six sensitivity methods?
//
// Sensitivity for discrete optimization has no single canonical definition
// once you move past directly re-solving the perturbed problem. Each method
// trades rigor for speed and interpretability differently; the engine is a
// comparison tool, not a single-answer oracle.
//
// Quick start:
//
//	costs := matrix.Matrix{{2, 3}, {3, 2}}
//	res := hungarian.Solve(costs, hungarian.Minimize)
//	tol := sensitivity.Analyze(costs, res.Assignment, hungarian.Minimize, sensitivity.MethodDualBased)
//
// All entry points are pure functions over a borrowed-immutable cost matrix:
// nothing mutates the caller's data, every probe works on a private copy.
// Matrices are expected to be small (≲12×12); several sensitivity methods
// re-invoke the full solver per cell and are automatically downgraded on
// larger inputs.
package lsasensitivity
