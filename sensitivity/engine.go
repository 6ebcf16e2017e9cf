package sensitivity

import (
	"github.com/rs/zerolog"

	"github.com/st7ma784/LSASensitivity/hungarian"
	"github.com/st7ma784/LSASensitivity/matrix"
)

// maxExhaustiveSide is the hard size limit above which every method except
// MethodBasic is downgraded. Several methods re-invoke the full solver (or
// run O(n⁴) searches) per cell; past this side length the cost explodes.
const maxExhaustiveSide = 8

// Engine runs sensitivity analyses. It is stateless apart from its logger
// and safe for concurrent use.
type Engine struct {
	log zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger injects the logger used for policy decisions (the size
// downgrade). The default is zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine builds an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultEngine backs the package-level Analyze convenience entry point.
var defaultEngine = NewEngine()

// Analyze runs method over costs with the package default (silent) engine.
func Analyze(costs matrix.Matrix, assignment []int, mode hungarian.Mode, method Method) matrix.Matrix {
	return defaultEngine.Analyze(costs, assignment, mode, method)
}

// Analyze produces a tolerance matrix of costs' shape.
//
// Preconditions: assignment must be a valid optimal assignment for costs
// under mode (typically hungarian.Solve's output); optimality is not
// re-verified beyond what each method's math requires. mode is carried for
// interface symmetry with Exact; the six approximations are
// direction-agnostic and read only the costs and the assignment structure.
//
// Behavior:
//   - empty input returns an empty matrix,
//   - max(rows, cols) > 8 with any method but MethodBasic silently
//     downgrades to MethodBasic (logged at Warn),
//   - a failed cell carries the Undefined sentinel; failures are per-cell,
//     never whole-matrix-fatal,
//   - the caller's matrix is never mutated.
func (e *Engine) Analyze(costs matrix.Matrix, assignment []int, mode hungarian.Mode, method Method) matrix.Matrix {
	_ = mode

	rows, cols := costs.Rows(), costs.Cols()
	if rows == 0 || cols == 0 {
		return matrix.Matrix{}
	}

	side := rows
	if cols > side {
		side = cols
	}
	if side > maxExhaustiveSide && method != MethodBasic {
		e.log.Warn().
			Str("method", method.String()).
			Int("side", side).
			Int("limit", maxExhaustiveSide).
			Msg("matrix too large for exhaustive sensitivity, downgrading to basic")
		method = MethodBasic
	}

	switch method {
	case MethodBasic:
		return basicSensitivity(costs)
	case MethodDualBased:
		return dualSensitivity(costs, assignment)
	case MethodAuctionBased:
		return auctionSensitivity(costs)
	case MethodGeometricBounds:
		return geometricSensitivity(costs)
	case MethodReducedCost:
		return reducedCostSensitivity(costs, assignment)
	case MethodPerturbationTheory:
		return perturbationSensitivity(costs)
	default:
		e.log.Error().Int("method", int(method)).Msg("unknown sensitivity method")
		return undefinedMatrix(rows, cols)
	}
}

// cellGuard evaluates one cell, converting an internal panic into the
// Undefined sentinel so a degenerate cell never aborts the whole matrix.
func cellGuard(f func() float64) (v float64) {
	defer func() {
		if recover() != nil {
			v = Undefined()
		}
	}()
	return f()
}

// undefinedMatrix returns a rows×cols matrix of Undefined sentinels.
func undefinedMatrix(rows, cols int) matrix.Matrix {
	out := matrix.NewDense(rows, cols)
	for i := range out {
		for j := range out[i] {
			out[i][j] = Undefined()
		}
	}
	return out
}
