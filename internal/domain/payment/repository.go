package payment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for payment persistence. Create must
// enforce uniqueness on RideID atomically: when two concurrent calls race for
// the same ride, exactly one succeeds and the other receives
// ErrDuplicatePayment.
type Repository interface {
	// Create persists a new payment, returning ErrDuplicatePayment when a
	// payment already exists for the same ride
	Create(ctx context.Context, p *Payment) error

	// GetByRideID retrieves the payment for a ride, returning
	// ErrPaymentNotFound when absent
	GetByRideID(ctx context.Context, rideID uuid.UUID) (*Payment, error)

	// Update replaces an existing payment row
	Update(ctx context.Context, p *Payment) error

	// ListByCustomer retrieves a customer's payments, newest first
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Payment, error)

	// ListAll retrieves every payment, newest first
	ListAll(ctx context.Context) ([]*Payment, error)
}
