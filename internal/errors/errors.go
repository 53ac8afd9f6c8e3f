package errors

import (
	"errors"
)

// Kind tags an error with its API-level category. The transport layer maps
// kinds to HTTP status codes; everything else compares sentinels.
type Kind string

const (
	KindValidation       Kind = "ValidationError"
	KindConflict         Kind = "ConflictError"
	KindAuthentication   Kind = "AuthenticationError"
	KindRateLimited      Kind = "RateLimitedError"
	KindStoreUnavailable Kind = "StoreUnavailableError"
	KindNotFound         Kind = "NotFoundError"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func RateLimited(msg string) *Error {
	return &Error{Kind: KindRateLimited, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// StoreUnavailable wraps a backing-store failure. The cause stays available
// for logs via Unwrap but is never part of the client-facing message.
func StoreUnavailable(cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "service temporarily unavailable", cause: cause}
}

// KindOf reports the kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

var (
	ErrInvalidCredentials   = Authentication("invalid email or password")
	ErrAccountExists        = Conflict("account already exists")
	ErrTooManyLoginAttempts = RateLimited("too many login attempts, try again later")
	ErrTickerNotFound       = NotFound("ticker not found")

	// ErrDuplicateEmail is returned by the user repository when an insert
	// hits the unique constraint on email. The service maps it to
	// ErrAccountExists.
	ErrDuplicateEmail = errors.New("duplicate email")
)
