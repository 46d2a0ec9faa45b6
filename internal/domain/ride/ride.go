package ride

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents ride lifecycle status
type Status string

const (
	StatusRequested  Status = "requested"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Class represents the pricing tier requested for a ride
type Class string

const (
	ClassEconomy Class = "economy"
	ClassPremium Class = "premium"
	ClassLuxury  Class = "luxury"
)

// Ride represents one trip request and its lifecycle. CustomerName and
// DriverName are snapshots taken at booking time and are never re-synchronized
// with the identity or driver services.
type Ride struct {
	ID                  uuid.UUID        `json:"id"`
	CustomerID          uuid.UUID        `json:"customer_id"`
	DriverID            *uuid.UUID       `json:"driver_id,omitempty"`
	CustomerName        string           `json:"customer_name,omitempty"`
	DriverName          string           `json:"driver_name,omitempty"`
	PickupLocation      string           `json:"pickup_location"`
	DestinationLocation string           `json:"destination_location"`
	Status              Status           `json:"status"`
	Class               Class            `json:"ride_class"`
	EstimatedFare       decimal.Decimal  `json:"estimated_fare"`
	ActualFare          *decimal.Decimal `json:"actual_fare,omitempty"`
	Distance            decimal.Decimal  `json:"distance"`
	EstimatedDuration   int              `json:"estimated_duration_minutes"`
	ActualDuration      *int             `json:"actual_duration_minutes,omitempty"`
	DriverRating        *int             `json:"driver_rating,omitempty"`
	CustomerRating      *int             `json:"customer_rating,omitempty"`
	PickupTime          *time.Time       `json:"pickup_time,omitempty"`
	CompletionTime      *time.Time       `json:"completion_time,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ParseClass validates and normalizes a ride class string
func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassEconomy, ClassPremium, ClassLuxury:
		return Class(s), nil
	}
	return "", ErrUnknownRideClass
}

// IsValid validates the status
func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanComplete reports whether the ride may advance to completed. Rating a
// confirmed or in-progress ride auto-completes it.
func (r *Ride) CanComplete() bool {
	return r.Status == StatusConfirmed || r.Status == StatusInProgress
}

// CanCancel reports whether the ride may still be cancelled
func (r *Ride) CanCancel() bool {
	return r.Status == StatusRequested || r.Status == StatusConfirmed
}

// Rated reports whether the driver has already been rated for this ride
func (r *Ride) Rated() bool {
	return r.DriverRating != nil
}

// Complete advances the ride to completed and stamps the completion time.
func (r *Ride) Complete(now time.Time) {
	r.Status = StatusCompleted
	r.CompletionTime = &now
	r.UpdatedAt = now
}
