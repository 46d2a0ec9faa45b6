package ride

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for ride persistence. Implementations must
// provide per-row atomic writes; the service layer does no locking of its own.
type Repository interface {
	// Create persists a new ride
	Create(ctx context.Context, ride *Ride) error

	// GetByID retrieves a ride by ID, returning ErrRideNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*Ride, error)

	// Update replaces an existing ride row
	Update(ctx context.Context, ride *Ride) error

	// ListByCustomer retrieves a customer's rides, newest first
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Ride, error)

	// ListByDriver retrieves a driver's rides, newest first
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Ride, error)

	// ListAll retrieves every ride, newest first
	ListAll(ctx context.Context) ([]*Ride, error)
}
