package booking

import "errors"

var (
	// ErrCustomerInactive is returned when the customer resolves but the
	// account is not in an active state.
	ErrCustomerInactive = errors.New("customer account is not active")

	// ErrNoDriversAvailable is returned when the driver directory has no
	// available drivers.
	ErrNoDriversAvailable = errors.New("no drivers available at the moment")

	// ErrAlreadyRated is returned when the ride's driver rating is already
	// set. A rating is written at most once per ride.
	ErrAlreadyRated = errors.New("driver has already been rated for this ride")

	// ErrInvalidRideState is returned when a ride cannot be rated in its
	// current lifecycle state.
	ErrInvalidRideState = errors.New("ride cannot be rated in its current state")

	// ErrInvalidRating is returned when the score is outside 1..5.
	ErrInvalidRating = errors.New("rating score must be between 1 and 5")

	// ErrBookingPersistence is returned when the ride record cannot be
	// persisted after all read-only steps succeeded.
	ErrBookingPersistence = errors.New("failed to persist ride")
)
