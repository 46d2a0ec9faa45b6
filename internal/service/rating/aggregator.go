// Package rating implements the incremental mean used for driver rating
// aggregates. The driver directory owns the aggregate; this package only
// provides the arithmetic.
package rating

import "github.com/shopspring/decimal"

// Aggregate folds a new score into a running average: with previousCount
// completed rides at previousAverage, the new average after one more score is
// round2((previousAverage*previousCount + score) / (previousCount + 1)),
// rounded half-up. A zero previousCount returns the score exactly. Decimal
// arithmetic keeps repeated updates free of binary float drift. The caller
// increments the count by one atomically with storing the new average.
func Aggregate(previousAverage decimal.Decimal, previousCount int, score int) decimal.Decimal {
	if previousCount == 0 {
		return decimal.NewFromInt(int64(score))
	}

	count := decimal.NewFromInt(int64(previousCount))
	total := previousAverage.Mul(count).Add(decimal.NewFromInt(int64(score)))
	return total.DivRound(count.Add(decimal.NewFromInt(1)), 2)
}
