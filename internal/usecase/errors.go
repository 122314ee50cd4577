package usecase

import "errors"

// Sentinel errors the HTTP layer maps onto response statuses. Services wrap
// them with fmt.Errorf("%w: ...") so callers can still errors.Is.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
