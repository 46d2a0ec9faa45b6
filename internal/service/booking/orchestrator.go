package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/client"
	"github.com/urbango/ride-booking/internal/domain/ride"
	"github.com/urbango/ride-booking/internal/service/pricing"
	"github.com/urbango/ride-booking/internal/service/selection"
	"github.com/urbango/ride-booking/pkg/logger"
)

// Pricer is the fare-quoting contract the orchestrator depends on.
// This interface allows for testing with mock implementations.
type Pricer interface {
	Quote(ctx context.Context, pickup, destination string, class ride.Class) (*pricing.Quote, error)
}

// Ensure the pricing engine implements Pricer.
var _ Pricer = (*pricing.Engine)(nil)

// DriverPicker chooses one driver from a candidate set
type DriverPicker interface {
	Pick(candidates []client.Driver) (client.Driver, error)
}

// Ensure the selection service implements DriverPicker.
var _ DriverPicker = (*selection.Selector)(nil)

// Orchestrator coordinates the booking flow across the identity service, the
// driver directory, the pricing engine, and the ride store. Each request runs
// its steps strictly in sequence; the only cross-request coordination is the
// store's per-row atomicity.
type Orchestrator struct {
	rides    ride.Repository
	identity client.IdentityClient
	drivers  client.DriverClient
	pricer   Pricer
	picker   DriverPicker
	logger   *logger.Logger
}

// NewOrchestrator creates a booking orchestrator
func NewOrchestrator(
	rides ride.Repository,
	identity client.IdentityClient,
	drivers client.DriverClient,
	pricer Pricer,
	picker DriverPicker,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		rides:    rides,
		identity: identity,
		drivers:  drivers,
		pricer:   pricer,
		picker:   picker,
		logger:   log,
	}
}

// BookRideRequest contains the parameters for booking a ride
type BookRideRequest struct {
	CustomerID          uuid.UUID
	PickupLocation      string
	DestinationLocation string
	Class               ride.Class
}

// BookingConfirmation is the result of a successful booking
type BookingConfirmation struct {
	RideID              uuid.UUID       `json:"ride_id"`
	CustomerName        string          `json:"customer_name"`
	DriverName          string          `json:"driver_name"`
	PickupLocation      string          `json:"pickup_location"`
	DestinationLocation string          `json:"destination_location"`
	Status              ride.Status     `json:"status"`
	Class               ride.Class      `json:"ride_class"`
	EstimatedFare       decimal.Decimal `json:"estimated_fare"`
	Distance            decimal.Decimal `json:"distance"`
	EstimatedDuration   int             `json:"estimated_duration_minutes"`
	BookingTime         time.Time       `json:"booking_time"`
	Message             string          `json:"message"`
	Driver              client.Driver   `json:"driver"`
}

// BookRide runs the booking flow: validate the customer, pick an available
// driver, price the trip, and persist a confirmed ride. Steps before the
// write are read-only; if any fails, no ride is created and the error is
// surfaced as-is. No compensation is needed for the remote reads and none is
// attempted.
func (o *Orchestrator) BookRide(ctx context.Context, req BookRideRequest) (*BookingConfirmation, error) {
	o.logger.Info("Booking ride",
		logger.String("customer_id", req.CustomerID.String()),
		logger.String("ride_class", string(req.Class)),
	)

	customer, err := o.identity.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, ErrCustomerInactive
	}

	available, err := o.drivers.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, ErrNoDriversAvailable
	}

	selected, err := o.picker.Pick(available)
	if err != nil {
		return nil, err
	}

	quote, err := o.pricer.Quote(ctx, req.PickupLocation, req.DestinationLocation, req.Class)
	if err != nil {
		return nil, err
	}

	// Party names are snapshots taken now; they are not kept in sync with
	// the identity or driver services afterwards.
	now := time.Now()
	driverID := selected.ID
	newRide := &ride.Ride{
		ID:                  uuid.New(),
		CustomerID:          customer.ID,
		DriverID:            &driverID,
		CustomerName:        customer.Name,
		DriverName:          selected.Name,
		PickupLocation:      req.PickupLocation,
		DestinationLocation: req.DestinationLocation,
		Status:              ride.StatusConfirmed,
		Class:               req.Class,
		EstimatedFare:       quote.TotalFare,
		Distance:            quote.Distance,
		EstimatedDuration:   quote.EstimatedDuration,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := o.rides.Create(ctx, newRide); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingPersistence, err)
	}

	o.logger.Info("Ride booked",
		logger.String("ride_id", newRide.ID.String()),
		logger.String("driver_id", selected.ID.String()),
		logger.String("estimated_fare", quote.TotalFare.String()),
	)

	return &BookingConfirmation{
		RideID:              newRide.ID,
		CustomerName:        customer.Name,
		DriverName:          selected.Name,
		PickupLocation:      newRide.PickupLocation,
		DestinationLocation: newRide.DestinationLocation,
		Status:              newRide.Status,
		Class:               newRide.Class,
		EstimatedFare:       newRide.EstimatedFare,
		Distance:            newRide.Distance,
		EstimatedDuration:   newRide.EstimatedDuration,
		BookingTime:         newRide.CreatedAt,
		Message:             "Ride booked successfully",
		Driver:              selected,
	}, nil
}

// RateDriver records the driver rating on a ride. A confirmed or in-progress
// ride is auto-completed as a side effect. The ride-side write is the durable
// outcome of this call; propagation to the driver directory's aggregate is
// best-effort and its failure is logged, never surfaced.
func (o *Orchestrator) RateDriver(ctx context.Context, rideID uuid.UUID, score int) (*ride.Ride, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidRating
	}

	r, err := o.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if r.Status != ride.StatusCompleted {
		if !r.CanComplete() {
			return nil, ErrInvalidRideState
		}
		r.Complete(time.Now())
	}

	if r.Rated() {
		return nil, ErrAlreadyRated
	}

	r.DriverRating = &score
	r.UpdatedAt = time.Now()

	if err := o.rides.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("persist ride rating: %w", err)
	}

	if r.DriverID != nil {
		update := client.RatingUpdate{Score: score, RideID: r.ID}
		if err := o.drivers.UpdateRating(ctx, *r.DriverID, update); err != nil {
			o.logger.Warn("Failed to propagate rating to driver directory",
				logger.String("ride_id", r.ID.String()),
				logger.String("driver_id", r.DriverID.String()),
				logger.Err(err),
			)
		}
	}

	o.logger.Info("Driver rated",
		logger.String("ride_id", r.ID.String()),
		logger.Int("score", score),
	)

	return r, nil
}

// GetRide retrieves a ride by ID
func (o *Orchestrator) GetRide(ctx context.Context, id uuid.UUID) (*ride.Ride, error) {
	return o.rides.GetByID(ctx, id)
}

// ListRidesByCustomer retrieves a customer's rides, newest first
func (o *Orchestrator) ListRidesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ride.Ride, error) {
	return o.rides.ListByCustomer(ctx, customerID)
}

// ListRidesByDriver retrieves a driver's rides, newest first
func (o *Orchestrator) ListRidesByDriver(ctx context.Context, driverID uuid.UUID) ([]*ride.Ride, error) {
	return o.rides.ListByDriver(ctx, driverID)
}

// ListAllRides retrieves every ride, newest first
func (o *Orchestrator) ListAllRides(ctx context.Context) ([]*ride.Ride, error) {
	return o.rides.ListAll(ctx)
}
