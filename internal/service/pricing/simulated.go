package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

// SimulatedDistanceEstimator stands in for a real routing provider. It draws
// a distance uniformly from [2, 17) units and rounds it to two decimals,
// ignoring the actual locations.
type SimulatedDistanceEstimator struct {
	rand Rand
}

// NewSimulatedDistanceEstimator creates a simulated estimator
func NewSimulatedDistanceEstimator(rand Rand) *SimulatedDistanceEstimator {
	return &SimulatedDistanceEstimator{rand: rand}
}

// Estimate returns a simulated route distance
func (s *SimulatedDistanceEstimator) Estimate(ctx context.Context, pickup, destination string) (decimal.Decimal, error) {
	distance := 2.0 + s.rand.Float64()*15.0
	return decimal.NewFromFloat(distance).Round(2), nil
}
