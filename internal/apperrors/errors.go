package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrRecordNotFound indicates an event references a transfer or payout with no local record.
var ErrRecordNotFound = fmt.Errorf("transaction record not found: %w", ErrNotFound)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a concurrent writer changed the row first. Retry with a fresh read.
var ErrConflict = errors.New("persistence conflict")

// ErrTransient indicates a temporary store failure (connection loss, timeout).
var ErrTransient = errors.New("transient store failure")

// ErrInvalidEvent indicates a webhook payload that is malformed or not signed correctly.
var ErrInvalidEvent = errors.New("invalid event payload")

// ErrUnsupportedEvent indicates a well-formed event type this service does not handle.
var ErrUnsupportedEvent = errors.New("unsupported event type")

// ErrPartialReversal indicates a transfer.reversed event that pulled back only part of the transfer.
// The wallet is not adjusted for it.
var ErrPartialReversal = fmt.Errorf("partial transfer reversal: %w", ErrUnsupportedEvent)

// ErrInsufficientFunds indicates the wallet balance does not cover a withdrawal.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

// ErrGateway indicates the payment gateway rejected or failed a request.
var ErrGateway = errors.New("payment gateway error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the operation may succeed if attempted again.
// Deadline errors count as retryable: a timed-out attempt may or may not have happened.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrTransient) ||
		errors.Is(err, context.DeadlineExceeded)
}
