package model

import (
	"errors"
	"time"

	"encore.dev/beta/errs"
)

// Error categories reported in ErrorDetails.Error.
const (
	ErrValidation     = "ValidationError"
	ErrAmountMismatch = "AmountMismatch"
	ErrAuthentication = "AuthenticationError"
	ErrNotFound       = "NotFound"
	ErrUpstream       = "UpstreamUnavailable"
	ErrConfiguration  = "ConfigurationError"
	ErrInternal       = "InternalError"
)

// ErrorDetails is attached to every error returned to a caller.
type ErrorDetails struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func (ErrorDetails) ErrDetails() {}

func newError(code errs.ErrCode, category, message string) *errs.Error {
	return &errs.Error{
		Code:    code,
		Message: message,
		Details: ErrorDetails{Error: category, Timestamp: time.Now().UTC().Format(time.RFC3339)},
	}
}

func ValidationError(message string) *errs.Error {
	return newError(errs.InvalidArgument, ErrValidation, message)
}

// AmountMismatchError rejects a callback whose amount differs from its order.
func AmountMismatchError() *errs.Error {
	return newError(errs.InvalidArgument, ErrAmountMismatch, "callback amount does not match order")
}

// Category returns the ErrorDetails category of err, or "" when err carries none.
func Category(err error) string {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	if d, ok := e.Details.(ErrorDetails); ok {
		return d.Error
	}
	return ""
}

func AuthenticationError(message string) *errs.Error {
	return newError(errs.Unauthenticated, ErrAuthentication, message)
}

func NotFoundError(message string) *errs.Error {
	return newError(errs.NotFound, ErrNotFound, message)
}

func UpstreamError(message string) *errs.Error {
	return newError(errs.Unavailable, ErrUpstream, message)
}

// ConfigurationError hides which setting is missing from the caller.
func ConfigurationError() *errs.Error {
	return newError(errs.Internal, ErrConfiguration, "payment service is not configured")
}

func InternalError() *errs.Error {
	return newError(errs.Internal, ErrInternal, "internal error")
}
