package requestRepo

import "errors"

var (
	// ErrRequestNotFound is returned when no request matches the given id.
	ErrRequestNotFound = errors.New("request not found")

	// ErrLockHeld is returned when another submission currently holds an
	// advisory lock for one of the requested (date, resource) pairs.
	ErrLockHeld = errors.New("reservation slot is being booked by another request")
)
