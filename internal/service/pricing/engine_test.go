package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbango/ride-booking/internal/config"
	"github.com/urbango/ride-booking/internal/domain/ride"
)

// fixedRand returns preset values so quotes are deterministic.
type fixedRand struct {
	intn    int
	float64 float64
}

func (f fixedRand) Intn(n int) int   { return f.intn }
func (f fixedRand) Float64() float64 { return f.float64 }

// fixedEstimator returns a preset distance or error.
type fixedEstimator struct {
	distance decimal.Decimal
	err      error
}

func (f fixedEstimator) Estimate(ctx context.Context, pickup, destination string) (decimal.Decimal, error) {
	return f.distance, f.err
}

func defaultRates(t *testing.T) map[ride.Class]Rates {
	t.Helper()
	rates, err := RatesFromConfig(config.PricingConfig{
		Economy: config.ClassRates{BaseFare: "2.50", PerDistanceRate: "1.50"},
		Premium: config.ClassRates{BaseFare: "3.50", PerDistanceRate: "2.00"},
		Luxury:  config.ClassRates{BaseFare: "5.00", PerDistanceRate: "3.00"},
	})
	require.NoError(t, err)
	return rates
}

func TestQuote_TotalFare(t *testing.T) {
	tests := []struct {
		name     string
		class    ride.Class
		distance string
		want     string
	}{
		{"economy 10 units", ride.ClassEconomy, "10.00", "17.50"},
		{"premium 10 units", ride.ClassPremium, "10.00", "23.50"},
		{"luxury 10 units", ride.ClassLuxury, "10.00", "35.00"},
		{"rounds half up", ride.ClassEconomy, "3.33", "7.50"},     // 2.50 + 4.995
		{"zero distance is base fare", ride.ClassEconomy, "0", "2.50"},
		{"large distance", ride.ClassEconomy, "10000.00", "15002.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, err := decimal.NewFromString(tt.distance)
			require.NoError(t, err)

			engine := NewEngine(defaultRates(t), fixedEstimator{distance: distance}, fixedRand{})

			quote, err := engine.Quote(context.Background(), "A", "B", tt.class)
			require.NoError(t, err)

			assert.Equal(t, tt.want, quote.TotalFare.StringFixed(2))
			assert.True(t, quote.Distance.Equal(distance))
			assert.Equal(t, tt.class, quote.Class)
		})
	}
}

func TestQuote_TotalFareHasTwoDecimalPlaces(t *testing.T) {
	distance := decimal.RequireFromString("7.77")
	engine := NewEngine(defaultRates(t), fixedEstimator{distance: distance}, fixedRand{})

	quote, err := engine.Quote(context.Background(), "A", "B", ride.ClassLuxury)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, quote.TotalFare.Exponent(), int32(-2))
}

func TestQuote_Duration(t *testing.T) {
	// distance 10 -> 35 minutes base, plus jitter.
	distance := decimal.RequireFromString("10.00")

	for _, jitter := range []int{0, 4, 9} {
		engine := NewEngine(defaultRates(t), fixedEstimator{distance: distance}, fixedRand{intn: jitter})

		quote, err := engine.Quote(context.Background(), "A", "B", ride.ClassEconomy)
		require.NoError(t, err)

		assert.Equal(t, 35+jitter, quote.EstimatedDuration)
	}
}

func TestQuote_DurationTruncatesBase(t *testing.T) {
	// 3.33 * 3.5 = 11.655 -> base 11 minutes, fraction dropped.
	distance := decimal.RequireFromString("3.33")
	engine := NewEngine(defaultRates(t), fixedEstimator{distance: distance}, fixedRand{intn: 2})

	quote, err := engine.Quote(context.Background(), "A", "B", ride.ClassEconomy)
	require.NoError(t, err)

	assert.Equal(t, 13, quote.EstimatedDuration)
}

func TestQuote_UnknownClass(t *testing.T) {
	engine := NewEngine(defaultRates(t), fixedEstimator{distance: decimal.NewFromInt(5)}, fixedRand{})

	_, err := engine.Quote(context.Background(), "A", "B", ride.Class("helicopter"))

	assert.ErrorIs(t, err, ride.ErrUnknownRideClass)
}

func TestQuote_EstimatorError(t *testing.T) {
	estErr := errors.New("routing provider down")
	engine := NewEngine(defaultRates(t), fixedEstimator{err: estErr}, fixedRand{})

	_, err := engine.Quote(context.Background(), "A", "B", ride.ClassEconomy)

	assert.ErrorIs(t, err, estErr)
}

func TestRatesFromConfig_InvalidDecimal(t *testing.T) {
	_, err := RatesFromConfig(config.PricingConfig{
		Economy: config.ClassRates{BaseFare: "not-a-number", PerDistanceRate: "1.50"},
		Premium: config.ClassRates{BaseFare: "3.50", PerDistanceRate: "2.00"},
		Luxury:  config.ClassRates{BaseFare: "5.00", PerDistanceRate: "3.00"},
	})

	assert.Error(t, err)
}

func TestSimulatedDistanceEstimator_Bounds(t *testing.T) {
	for _, f := range []float64{0, 0.5, 0.999999} {
		estimator := NewSimulatedDistanceEstimator(fixedRand{float64: f})

		distance, err := estimator.Estimate(context.Background(), "A", "B")
		require.NoError(t, err)

		assert.True(t, distance.GreaterThanOrEqual(decimal.NewFromInt(2)),
			"distance %s below lower bound", distance)
		assert.True(t, distance.LessThan(decimal.NewFromInt(17)),
			"distance %s above upper bound", distance)
	}
}
