package request

import "errors"

var (
	// ErrInvalidInput is returned for malformed submissions.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotFound is returned when the request does not exist.
	ErrNotFound = errors.New("request not found")

	// ErrForbidden is returned when the actor may not act on the request.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidTransition is returned for unknown target statuses.
	ErrInvalidTransition = errors.New("invalid status transition")
)
