package function

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDuration_AcceptsRange(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{0, 1, 9, 500, 9999, MaxWaitMillis} {
		d, err := ParseDuration(strconv.FormatUint(n, 10))
		require.NoError(t, err)
		require.Equal(t, n, d.Milliseconds())
	}
}

func TestParseDuration_TooLong(t *testing.T) {
	t.Parallel()

	for _, n := range []uint64{MaxWaitMillis + 1, 5000000, 1<<64 - 1} {
		_, err := ParseDuration(strconv.FormatUint(n, 10))

		var tooLong *DurationTooLongError
		require.ErrorAs(t, err, &tooLong)
		require.Equal(t, &DurationTooLongError{Input: n, Max: 10000}, tooLong)
		require.Equal(t, KindTooLong, Kind(err))
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"500x",
		"x500",
		" 500",
		"500 ",
		"+500",
		"-1",
		"5.0",
		"1e3",
		"1_000",
		"0x10",
		"18446744073709551616",
	}

	for _, input := range inputs {
		_, err := ParseDuration(input)

		var invalid *InvalidDurationError
		require.ErrorAs(t, err, &invalid, "input %q", input)
		require.Equal(t, input, invalid.Input)
		require.Equal(t, KindInvalid, Kind(err))

		var numErr *strconv.NumError
		require.ErrorAs(t, err, &numErr)
	}
}

func TestParseDuration_OverflowKeepsRangeDiagnostic(t *testing.T) {
	t.Parallel()

	_, err := ParseDuration("99999999999999999999999")
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseDuration_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"500", "500x", "10001"} {
		d1, err1 := ParseDuration(input)
		d2, err2 := ParseDuration(input)
		require.Equal(t, d1, d2)
		require.Equal(t, err1, err2)
	}
}

func TestDuration_Std(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1500*time.Millisecond, Duration(1500).Std())
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	_, err := ParseDuration("5000000")
	require.EqualError(t, err, "the duration `5000000` is too long. Only `10000` milliseconds are allowed.")

	_, err = ParseDuration("500x")
	require.Contains(t, err.Error(), "`500x` is not a valid duration, error: ")

	require.Equal(t, KindMissing, Kind(ErrMissingDuration))
	require.Equal(t, KindUnknown, Kind(errors.New("other")))
}
