package ride

import "errors"

var (
	ErrRideNotFound     = errors.New("ride not found")
	ErrUnknownRideClass = errors.New("unknown ride class")
	ErrInvalidStatus    = errors.New("invalid status transition")
)
