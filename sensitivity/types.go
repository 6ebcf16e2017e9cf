package sensitivity

import (
	"errors"
	"math"
)

// ErrUnknownMethod is returned by ParseMethod for an unrecognized tag.
var ErrUnknownMethod = errors.New("sensitivity: unknown method")

// Method selects one of the six sensitivity algorithms. The enumeration is
// closed; Analyze dispatches over it with a plain switch, and the methods
// share no state.
type Method int

const (
	// MethodBasic measures each cell's distance to its row and column
	// minimums. Purely local: it ignores the supplied assignment.
	MethodBasic Method = iota

	// MethodDualBased derives row/column potentials from the assignment and
	// reports non-negative reduced costs.
	MethodDualBased

	// MethodAuctionBased records the bid increments of a single simulated
	// auction pass. Heuristic: measures competitive bidding pressure, not a
	// formal tolerance bound.
	MethodAuctionBased

	// MethodGeometricBounds takes the smaller of the gaps to the next-higher
	// value in the cell's row and column.
	MethodGeometricBounds

	// MethodReducedCost searches minimal alternating 4-cycles through
	// assigned edges and uses reduced costs for the rest.
	MethodReducedCost

	// MethodPerturbationTheory combines finite-difference estimates of
	// matrix-norm changes. Does not consult the assignment at all.
	MethodPerturbationTheory
)

// methodTags holds the canonical wire/UI tags, indexed by Method.
var methodTags = [...]string{
	MethodBasic:              "basic",
	MethodDualBased:          "dual_based",
	MethodAuctionBased:       "auction_based",
	MethodGeometricBounds:    "geometric_bounds",
	MethodReducedCost:        "reduced_cost",
	MethodPerturbationTheory: "perturbation_theory",
}

// String returns the canonical tag of the method (e.g. "dual_based").
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodTags) {
		return "unknown"
	}
	return methodTags[m]
}

// ParseMethod maps a canonical tag back to its Method.
// Returns ErrUnknownMethod for anything else.
func ParseMethod(tag string) (Method, error) {
	for m, t := range methodTags {
		if t == tag {
			return Method(m), nil
		}
	}

	return 0, ErrUnknownMethod
}

// Methods returns all selectable methods in declaration order.
func Methods() []Method {
	return []Method{
		MethodBasic,
		MethodDualBased,
		MethodAuctionBased,
		MethodGeometricBounds,
		MethodReducedCost,
		MethodPerturbationTheory,
	}
}

// MethodInfo carries descriptive metadata for UI and documentation.
// It never influences behavior.
type MethodInfo struct {
	Name       string
	Summary    string
	Strengths  string
	Weaknesses string
}

var methodInfos = map[Method]MethodInfo{
	MethodBasic: {
		Name:       "Basic row/column minimum distance",
		Summary:    "Measures how far each cell is from the minimums of its row and column.",
		Strengths:  "Simple, intuitive, fast.",
		Weaknesses: "Ignores the assignment structure; may be conservative.",
	},
	MethodDualBased: {
		Name:       "Dual-based reduced costs",
		Summary:    "Reconstructs LP dual potentials from the assignment and reports reduced costs.",
		Strengths:  "Theoretically grounded in LP duality; economic interpretation.",
		Weaknesses: "May not capture every sensitivity aspect of the discrete problem.",
	},
	MethodAuctionBased: {
		Name:       "Auction bid increments",
		Summary:    "Simulates one auction pass and records each row's realized bid increment.",
		Strengths:  "Natural competitive-market interpretation.",
		Weaknesses: "Heuristic only; depends on the auction epsilon, no formal bound.",
	},
	MethodGeometricBounds: {
		Name:       "Geometric rank gaps",
		Summary:    "Gap to the next-higher competitor in the cell's row and column.",
		Strengths:  "Geometric intuition; captures local competition.",
		Weaknesses: "Simplified model; blind to global optimization effects.",
	},
	MethodReducedCost: {
		Name:       "Alternating-cycle reduced costs",
		Summary:    "Minimum alternating 4-cycle cost through assigned edges; reduced costs elsewhere.",
		Strengths:  "Captures network structure of assignment swaps.",
		Weaknesses: "O(n⁴) worst case; potential seeding is a deliberate simplification.",
	},
	MethodPerturbationTheory: {
		Name:       "Matrix-norm perturbation response",
		Summary:    "Finite-difference Frobenius/spectral/trace response to a per-cell bump.",
		Strengths:  "Mathematically clean norm calculus.",
		Weaknesses: "Measures generic matrix change, not assignment-change risk.",
	},
}

// Info returns the method's descriptive metadata.
func (m Method) Info() MethodInfo {
	return methodInfos[m]
}

// Undefined returns the per-cell failure sentinel (NaN). A cell carries it
// when its computation failed or degenerated; the rest of the matrix is
// still meaningful.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether v is the per-cell failure sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// Unbounded returns the +Inf sentinel: the cell may change without bound
// without altering the assignment.
func Unbounded() float64 { return math.Inf(1) }

// IsUnbounded reports whether v is the +Inf sentinel.
func IsUnbounded(v float64) bool { return math.IsInf(v, 1) }
