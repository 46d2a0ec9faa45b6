package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/config"
	"github.com/urbango/ride-booking/internal/domain/ride"
)

// minutesPerDistanceUnit converts estimated distance into a travel-time
// baseline before jitter is applied.
var minutesPerDistanceUnit = decimal.NewFromFloat(3.5)

// jitterBoundMinutes bounds the tolerance window added to duration estimates.
const jitterBoundMinutes = 10

// Rand is the source of bounded randomness the engine and the simulated
// estimator draw from. *rand.Rand satisfies it; tests inject fixed values.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// DistanceEstimator produces a route distance for a pickup/destination pair.
// Production wires a routing provider; tests inject deterministic values.
type DistanceEstimator interface {
	Estimate(ctx context.Context, pickup, destination string) (decimal.Decimal, error)
}

// Rates holds the fixed pricing for one ride class
type Rates struct {
	BaseFare        decimal.Decimal
	PerDistanceRate decimal.Decimal
}

// Quote is the fare breakdown for a proposed trip
type Quote struct {
	Class             ride.Class      `json:"ride_class"`
	Distance          decimal.Decimal `json:"distance"`
	BaseFare          decimal.Decimal `json:"base_fare"`
	PerDistanceRate   decimal.Decimal `json:"per_distance_rate"`
	TotalFare         decimal.Decimal `json:"total_fare"`
	EstimatedDuration int             `json:"estimated_duration_minutes"`
}

// Engine computes fare quotes. It is side-effect free: both the distance and
// the duration jitter come from injected dependencies.
type Engine struct {
	rates     map[ride.Class]Rates
	estimator DistanceEstimator
	jitter    Rand
}

// NewEngine creates a pricing engine
func NewEngine(rates map[ride.Class]Rates, estimator DistanceEstimator, jitter Rand) *Engine {
	return &Engine{
		rates:     rates,
		estimator: estimator,
		jitter:    jitter,
	}
}

// RatesFromConfig parses the configured decimal strings into a rate table.
func RatesFromConfig(cfg config.PricingConfig) (map[ride.Class]Rates, error) {
	table := map[ride.Class]config.ClassRates{
		ride.ClassEconomy: cfg.Economy,
		ride.ClassPremium: cfg.Premium,
		ride.ClassLuxury:  cfg.Luxury,
	}

	rates := make(map[ride.Class]Rates, len(table))
	for class, raw := range table {
		base, err := decimal.NewFromString(raw.BaseFare)
		if err != nil {
			return nil, fmt.Errorf("parse base fare for %s: %w", class, err)
		}
		perDistance, err := decimal.NewFromString(raw.PerDistanceRate)
		if err != nil {
			return nil, fmt.Errorf("parse per-distance rate for %s: %w", class, err)
		}
		rates[class] = Rates{BaseFare: base, PerDistanceRate: perDistance}
	}

	return rates, nil
}

// Quote prices a trip: totalFare = round2(baseFare + distance * perDistanceRate),
// rounded half-up. Duration is distance * 3.5 minutes plus jitter in [0, 10).
func (e *Engine) Quote(ctx context.Context, pickup, destination string, class ride.Class) (*Quote, error) {
	rates, ok := e.rates[class]
	if !ok {
		return nil, ride.ErrUnknownRideClass
	}

	distance, err := e.estimator.Estimate(ctx, pickup, destination)
	if err != nil {
		return nil, fmt.Errorf("estimate distance: %w", err)
	}

	total := rates.BaseFare.Add(distance.Mul(rates.PerDistanceRate)).Round(2)

	duration := int(distance.Mul(minutesPerDistanceUnit).IntPart()) + e.jitter.Intn(jitterBoundMinutes)

	return &Quote{
		Class:             class,
		Distance:          distance,
		BaseFare:          rates.BaseFare,
		PerDistanceRate:   rates.PerDistanceRate,
		TotalFare:         total,
		EstimatedDuration: duration,
	}, nil
}
