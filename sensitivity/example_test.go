package sensitivity_test

import (
	"fmt"

	"github.com/st7ma784/LSASensitivity/hungarian"
	"github.com/st7ma784/LSASensitivity/matrix"
	"github.com/st7ma784/LSASensitivity/sensitivity"
)

// ExampleAnalyze estimates how far each cost can drift before the optimal
// assignment changes.
func ExampleAnalyze() {
	costs := matrix.Matrix{
		{2, 3},
		{3, 2},
	}
	res := hungarian.Solve(costs, hungarian.Minimize)

	tol := sensitivity.Analyze(costs, res.Assignment, hungarian.Minimize,
		sensitivity.MethodDualBased)
	fmt.Println(tol)
	// Output:
	// [[0 3] [0 0]]
}

// ExampleLevelOf buckets raw tolerances into presentation levels.
func ExampleLevelOf() {
	fmt.Println(sensitivity.LevelOf(12), sensitivity.LevelOf(5), sensitivity.LevelOf(1))
	// Output:
	// very-stable moderate sensitive
}
