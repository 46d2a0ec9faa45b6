package rating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_FirstScore(t *testing.T) {
	got := Aggregate(decimal.Zero, 0, 5)

	assert.Equal(t, "5.00", got.StringFixed(2))
}

func TestAggregate_FirstScoreIgnoresStaleAverage(t *testing.T) {
	// With a zero count the stored average carries no weight.
	got := Aggregate(decimal.RequireFromString("3.70"), 0, 4)

	assert.Equal(t, "4.00", got.StringFixed(2))
}

func TestAggregate_WeightedMean(t *testing.T) {
	tests := []struct {
		name     string
		average  string
		count    int
		score    int
		expected string
	}{
		{"second score", "4.00", 1, 5, "4.50"},
		{"third score", "4.50", 2, 3, "4.00"},
		{"rounds half up", "4.00", 2, 5, "4.33"}, // 13/3 = 4.333...
		{"half boundary rounds up", "4.25", 1, 4, "4.13"}, // 8.25/2 = 4.125
		{"large history barely moves", "4.80", 1000, 1, "4.80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(decimal.RequireFromString(tt.average), tt.count, tt.score)

			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestAggregate_NoDriftOverRepeatedUpdates(t *testing.T) {
	// Folding in the same score repeatedly converges on that score and never
	// escapes the valid rating range.
	average := decimal.Zero
	for count := 0; count < 10000; count++ {
		average = Aggregate(average, count, 4)

		assert.True(t, average.GreaterThanOrEqual(decimal.NewFromInt(1)))
		assert.True(t, average.LessThanOrEqual(decimal.NewFromInt(5)))
	}

	assert.Equal(t, "4.00", average.StringFixed(2))
}
