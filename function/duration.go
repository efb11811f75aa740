package function

import (
	"strconv"
	"time"
)

// MaxWaitMillis is the longest wait a caller may ask for.
const MaxWaitMillis uint64 = 10000

// Duration is a validated wait, in milliseconds, never above MaxWaitMillis.
type Duration uint64

// Milliseconds returns the wait as a plain integer.
func (d Duration) Milliseconds() uint64 {
	return uint64(d)
}

// Std converts the wait to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// ParseDuration turns the raw value of the wait parameter into a Duration.
// Only plain base-10 digits are accepted: no sign, whitespace, separators,
// fractions or exponents.
func ParseDuration(raw string) (Duration, error) {
	// ParseUint with base 10 rejects signs and underscores.
	n, parseErr := strconv.ParseUint(raw, 10, 64)
	if parseErr != nil {
		return 0, NewInvalidDurationError(raw, parseErr)
	}

	if n > MaxWaitMillis {
		return 0, NewDurationTooLongError(n, MaxWaitMillis)
	}

	return Duration(n), nil
}
