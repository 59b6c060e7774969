package availability

import "errors"

// ErrInvalidWindow is returned for a malformed candidate: non-positive
// duration or an empty resource set. Always caller-correctable.
var ErrInvalidWindow = errors.New("invalid reservation window")
