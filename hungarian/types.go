package hungarian

// Mode selects the optimization direction of Solve.
type Mode int

const (
	// Minimize searches for the assignment with the smallest total cost.
	Minimize Mode = iota

	// Maximize searches for the assignment with the largest total cost.
	Maximize
)

// String returns the canonical tag of the mode ("min" / "max").
func (m Mode) String() string {
	if m == Maximize {
		return "max"
	}
	return "min"
}

// Unassigned marks a row with no real counterpart in Result.Assignment.
// It only appears for rectangular inputs with more rows than columns.
const Unassigned = -1

// Result holds the outcome of the assignment solver.
type Result struct {
	// Cost is the total assignment cost summed over the caller's original
	// cells only; padding never contributes.
	Cost float64

	// Assignment has one entry per input row: Assignment[i] is the column
	// assigned to row i, or Unassigned. Non-sentinel entries are pairwise
	// distinct.
	Assignment []int
}
