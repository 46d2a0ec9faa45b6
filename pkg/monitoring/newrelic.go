package monitoring

import (
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Config holds New Relic configuration
type Config struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// NewRelicApp wraps the New Relic application
type NewRelicApp struct {
	*newrelic.Application
	enabled bool
}

// New creates a new New Relic application. When disabled or unlicensed it
// returns a no-op wrapper.
func New(cfg Config) (*NewRelicApp, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return &NewRelicApp{nil, false}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create New Relic application: %w", err)
	}

	return &NewRelicApp{app, true}, nil
}

// IsEnabled returns whether New Relic is enabled
func (nr *NewRelicApp) IsEnabled() bool {
	return nr.enabled
}

// Shutdown gracefully shuts down the New Relic application
func (nr *NewRelicApp) Shutdown(timeout time.Duration) {
	if !nr.enabled || nr.Application == nil {
		return
	}
	nr.Application.Shutdown(timeout)
}

// RecordCustomEvent records a custom event
func (nr *NewRelicApp) RecordCustomEvent(eventType string, params map[string]interface{}) {
	if !nr.enabled || nr.Application == nil {
		return
	}
	nr.Application.RecordCustomEvent(eventType, params)
}

// Domain event helpers

// RecordRideBooked records a successful booking
func (nr *NewRelicApp) RecordRideBooked(rideClass string, fare float64) {
	nr.RecordCustomEvent("RideBooked", map[string]interface{}{
		"ride_class": rideClass,
		"fare":       fare,
	})
}

// RecordDriverRated records a driver rating submission
func (nr *NewRelicApp) RecordDriverRated(rideID string, score int) {
	nr.RecordCustomEvent("DriverRated", map[string]interface{}{
		"ride_id": rideID,
		"score":   score,
	})
}

// RecordPaymentProcessed records a payment attempt outcome
func (nr *NewRelicApp) RecordPaymentProcessed(amount float64, method string, status string) {
	nr.RecordCustomEvent("PaymentProcessed", map[string]interface{}{
		"amount": amount,
		"method": method,
		"status": status,
	})
}
