package domain

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds. Every error below unwraps to exactly one of them, and the
// handler maps kinds to HTTP statuses.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrUpstream        = errors.New("upstream failure")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Detailf returns base with a client-facing detail appended to its message.
// The result still matches base and base's kind with errors.Is.
func Detailf(base error, format string, args ...any) error {
	return &kindError{kind: base, msg: base.Error() + ": " + fmt.Sprintf(format, args...)}
}

var (
	ErrEventNotFound        = newError(ErrNotFound, "event not found")
	ErrClubNotFound         = newError(ErrNotFound, "club not found")
	ErrUserNotFound         = newError(ErrNotFound, "user not found")
	ErrPaymentNotFound      = newError(ErrNotFound, "payment not found")
	ErrRegistrationNotFound = newError(ErrNotFound, "registration not found")
)

var (
	ErrAlreadyRegistered = newError(ErrConflict, "already registered")
	ErrAlreadyPaid       = newError(ErrConflict, "already paid")
	ErrPaymentExists     = newError(ErrConflict, "payment already exists")
	ErrUserExists        = newError(ErrConflict, "user already exists")
)

var (
	ErrValidation    = newError(ErrInvalidArgument, "validation error")
	ErrInvalidAmount = newError(ErrInvalidArgument, "invalid amount")
)

var (
	ErrMissingCredential = newError(ErrUnauthorized, "unauthorized access")
	ErrInvalidCredential = newError(ErrUnauthorized, "invalid credential")
)

var (
	ErrEmailMismatch = newError(ErrForbidden, "forbidden access")
	ErrNotClubOwner  = newError(ErrForbidden, "forbidden")
)

var (
	ErrGatewayUnavailable = newError(ErrUpstream, "payment gateway unavailable")
	ErrSessionNotFound    = newError(ErrUpstream, "checkout session not found")
	ErrStoreUnavailable   = newError(ErrUpstream, "store unavailable")
)

// Kind names the error kind of err for structured responses.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		return "upstream"
	default:
		return "internal"
	}
}

// Message returns the client-facing text of err: the message of the
// outermost domain error in its chain, or "" if there is none.
func Message(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.msg
	}
	return ""
}
