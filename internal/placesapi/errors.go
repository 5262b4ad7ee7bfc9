package placesapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers a missing, expired, or invalid session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates a client-side precondition failure,
	// raised before any network call is attempted.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBadResponse indicates the server reply did not match the expected
	// shape. Decoders fail closed rather than propagate partial records.
	ErrBadResponse = errors.New("malformed server response")
)

// APIError is the canonical error envelope for any non-2xx response. Message
// holds the backend's "message" field, falling back to its "error" field, so
// callers never have to guess the extraction shape.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Is maps well-known statuses onto the package sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401
	case ErrNotFound:
		return e.Status == 404
	case ErrInvalidArgument:
		return e.Status == 400
	}
	return false
}
