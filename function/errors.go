package function

import (
	"errors"
	"fmt"
)

// ErrMissingDuration is returned when the request carries no wait parameter.
var ErrMissingDuration = errors.New("query param `wait` is missing, e.g. ?wait=2000")

type (
	// InvalidDurationError means the wait parameter is not a base-10 unsigned integer.
	InvalidDurationError struct {
		Input string
		Err   error
	}

	// DurationTooLongError means the wait parameter parsed but exceeds the maximum.
	DurationTooLongError struct {
		Input uint64
		Max   uint64
	}
)

// Error kinds, as reported to logs and metrics.
const (
	KindMissing = "missing"
	KindInvalid = "invalid"
	KindTooLong = "too_long"
	KindUnknown = "unknown"
)

// NewInvalidDurationError returns a new instance of InvalidDurationError.
func NewInvalidDurationError(input string, err error) error {
	return &InvalidDurationError{
		Input: input,
		Err:   err,
	}
}

// NewDurationTooLongError returns a new instance of DurationTooLongError.
func NewDurationTooLongError(input, max uint64) error {
	return &DurationTooLongError{
		Input: input,
		Max:   max,
	}
}

// Error returns the error string.
func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("`%s` is not a valid duration, error: %v", e.Input, e.Err)
}

// Unwrap exposes the underlying parse error.
func (e *InvalidDurationError) Unwrap() error {
	return e.Err
}

// Error returns the error string.
func (e *DurationTooLongError) Error() string {
	return fmt.Sprintf("the duration `%d` is too long. Only `%d` milliseconds are allowed.", e.Input, e.Max)
}

// Kind classifies err into one of the Kind* labels.
func Kind(err error) string {
	var invalid *InvalidDurationError
	var tooLong *DurationTooLongError

	switch {
	case errors.Is(err, ErrMissingDuration):
		return KindMissing
	case errors.As(err, &invalid):
		return KindInvalid
	case errors.As(err, &tooLong):
		return KindTooLong
	default:
		return KindUnknown
	}
}
