package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/domain/payment"
)

// Gateway is the external charge capability. A charge attempt has three
// outcomes: approved (true, nil), declined (false, nil), or errored
// (false, err). The processor treats decline and error differently only in
// the failure reason it records.
type Gateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, method payment.Method) (bool, error)
}

// Rand is the randomness source for the simulated gateway
type Rand interface {
	Float64() float64
}

// SimulatedGateway approves charges at a configured rate after an artificial
// processing delay. It stands in for a real gateway integration.
type SimulatedGateway struct {
	successRate float64
	delay       time.Duration
	rand        Rand
}

// NewSimulatedGateway creates a simulated gateway
func NewSimulatedGateway(successRate float64, delay time.Duration, rand Rand) *SimulatedGateway {
	return &SimulatedGateway{
		successRate: successRate,
		delay:       delay,
		rand:        rand,
	}
}

// Charge simulates gateway processing
func (g *SimulatedGateway) Charge(ctx context.Context, amount decimal.Decimal, method payment.Method) (bool, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	return g.rand.Float64() < g.successRate, nil
}
