package sensitivity

import (
	"math"

	"github.com/st7ma784/LSASensitivity/matrix"
)

const (
	// auctionEps is the minimum bid increment of the simulated auction.
	auctionEps = 1.0

	// maxBidIncrement caps a single bid so one lopsided row cannot saturate
	// the whole sensitivity scale.
	maxBidIncrement = 100.0

	// maxPrice caps column price growth across the pass.
	maxPrice = 1000.0
)

// auctionSensitivity simulates one pass of an auction mechanism: rows bid
// for columns, each bid increment being the competitive gap between the
// best and second-best column plus auctionEps. The realized (capped)
// increment is stored at the cell the row bid on; cells never bid on stay
// at 0.
//
// This measures competitive bidding pressure, not a formal tolerance bound.
// It is a documented heuristic with a weaker guarantee than the other
// methods.
//
// The pass is bounded to n² iterations (n = max(rows, cols)), so it always
// terminates even when rows outnumber columns and eviction never settles.
func auctionSensitivity(costs matrix.Matrix) (out matrix.Matrix) {
	rows, cols := costs.Rows(), costs.Cols()
	out = matrix.NewDense(rows, cols)
	defer func() {
		if recover() != nil {
			out = undefinedMatrix(rows, cols)
		}
	}()

	prices := make([]float64, cols)
	owner := make([]int, cols)    // column -> bidding row
	assigned := make([]int, rows) // row -> column it currently holds
	for j := range owner {
		owner[j] = -1
	}
	for i := range assigned {
		assigned[i] = -1
	}

	n := rows
	if cols > n {
		n = cols
	}
	maxIter := n * n

	for iter := 0; iter < maxIter; iter++ {
		person := -1
		for i := range assigned {
			if assigned[i] == -1 {
				person = i
				break
			}
		}
		if person == -1 {
			break // everyone holds a column
		}

		// Benefit of column j for this row: -(cost + price); we minimize cost.
		best, second := math.Inf(-1), math.Inf(-1)
		bestObj := 0
		for j := 0; j < cols; j++ {
			b := -(costs[person][j] + prices[j])
			if b > best {
				second = best
				best = b
				bestObj = j
			} else if b > second {
				second = b
			}
		}
		if math.IsInf(second, -1) {
			second = best // single-column market: no competitive gap
		}

		inc := best - second + auctionEps
		if inc < auctionEps {
			inc = auctionEps
		}
		if inc > maxBidIncrement {
			inc = maxBidIncrement
		}
		out[person][bestObj] = inc

		if prev := owner[bestObj]; prev != -1 {
			assigned[prev] = -1 // outbid
		}
		owner[bestObj] = person
		assigned[person] = bestObj
		prices[bestObj] += inc
		if prices[bestObj] > maxPrice {
			prices[bestObj] = maxPrice
		}
	}

	return out
}
