package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return errors that wrap one of these kinds, and the API layer uses
// `errors.Is()` to map them to HTTP responses without the services knowing
// anything about status codes.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRequest signifies a malformed request body (bad JSON, missing
	// messages array). It is user-correctable and mapped to 400.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource (e.g., creating a
	// profile that already exists).
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized signifies a missing or invalid identity token.
	// This is typically mapped to a 401 Unauthorized HTTP status.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPermission signifies that the authenticated user is not authorized
	// to perform the requested action.
	// This is typically mapped to a 403 Forbidden HTTP status.
	ErrPermission = errors.New("permission denied")

	// ErrConfiguration signifies a missing server-side setting, usually a
	// provider credential. Operator-correctable; mapped to 500 with a
	// sanitized message.
	ErrConfiguration = errors.New("configuration error")

	// ErrUpstream signifies that the upstream LLM provider call failed or
	// returned a non-2xx status. Mapped to 500.
	ErrUpstream = errors.New("upstream provider error")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// Error carries a kind (one of the sentinels above), the message that may be
// shown to a client, and an optional underlying cause. Error() returns only
// the message, never the cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error of the given kind.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns an *Error of the given kind that keeps cause for logging.
func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
