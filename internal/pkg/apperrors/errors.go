package apperrors

import "errors"

// Sentinel errors for the query layer. Handlers classify failures with
// errors.Is against these and the middleware maps them to HTTP statuses.
var (
	// ErrMissingParameter signals that a required request parameter was
	// absent or empty. No store access happens after this is raised.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrNotFound signals that the primary entity of a query does not
	// exist. Secondary lookups that come up empty are not errors; those
	// produce informational results instead.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable signals a backing-store connectivity failure.
	// It is never retried here; retry policy belongs to the connection
	// layer.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// QueryError carries a user-facing message alongside the sentinel that
// classifies it. The message is what the boundary layer returns verbatim.
type QueryError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements the error interface
func (e *QueryError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap lets errors.Is match the classifying sentinel
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewMissingParameterError builds a client error naming the missing field.
func NewMissingParameterError(message string) error {
	return &QueryError{Err: ErrMissingParameter, Message: message}
}

// NewNotFoundError builds a not-found error with the interpolated lookup value.
func NewNotFoundError(message string) error {
	return &QueryError{Err: ErrNotFound, Message: message}
}

// NewStoreUnavailableError wraps a driver-level failure. The original cause
// is kept for logging but never shown to clients.
func NewStoreUnavailableError(message string, cause error) error {
	return &QueryError{Err: ErrStoreUnavailable, Message: message, Cause: cause}
}
