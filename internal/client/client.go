// Package client holds the contracts for the remote collaborators the booking
// flow depends on: the identity service and the driver directory. Both are
// consumed over HTTP in production; tests substitute in-memory fakes.
package client

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStatus mirrors the account states the identity service exposes
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerSuspended CustomerStatus = "suspended"
)

// Customer is the identity service's view of an account
type Customer struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Status CustomerStatus `json:"status"`
}

// IsActive reports whether the account may book rides
func (c *Customer) IsActive() bool {
	return c.Status == CustomerActive
}

// Vehicle is the driver directory's vehicle summary
type Vehicle struct {
	Model       string `json:"model"`
	PlateNumber string `json:"plate_number"`
	Color       string `json:"color"`
}

// Driver is the driver directory's public driver profile
type Driver struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Rating  decimal.Decimal `json:"rating"`
	Vehicle Vehicle         `json:"vehicle"`
}

// RatingUpdate asks the driver directory to fold a new score into a driver's
// aggregate. RideID lets the directory attribute the score.
type RatingUpdate struct {
	Score  int       `json:"score"`
	RideID uuid.UUID `json:"ride_id"`
}

// IdentityClient resolves customer accounts
type IdentityClient interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
}

// DriverClient talks to the driver directory
type DriverClient interface {
	ListAvailable(ctx context.Context) ([]Driver, error)
	UpdateRating(ctx context.Context, driverID uuid.UUID, update RatingUpdate) error
}

var (
	// ErrCustomerNotFound is returned when the identity service has no
	// record of the requested customer
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDriverNotFound is returned when the driver directory has no record
	// of the requested driver
	ErrDriverNotFound = errors.New("driver not found")

	// ErrUnavailable wraps transport failures and timeouts from either
	// collaborator
	ErrUnavailable = errors.New("upstream service unavailable")
)
