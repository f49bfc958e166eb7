package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the endpoint could not
	// be reached or did not answer in time.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks requests the server rejected for a missing,
	// invalid or expired bearer token. There is no refresh flow; callers
	// decide how to recover (typically by asking the user to log in again).
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response carrying the server's error envelope.
// Message holds the envelope's "error" field when present, otherwise a
// generic fallback supplied by the call site.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrUnauthorized) match 401/403 responses.
func (e *APIError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.Status == 401 || e.Status == 403
	}
	return false
}
