package function

import "time"

// Sleeper suspends the calling goroutine.
type Sleeper interface {
	Sleep(d time.Duration)
}

// TimeSleeper sleeps on the wall clock.
type TimeSleeper struct{}

// NewTimeSleeper returns a wall-clock Sleeper.
func NewTimeSleeper() *TimeSleeper {
	return &TimeSleeper{}
}

// Sleep blocks for d.
func (s *TimeSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Await suspends for exactly d using sleeper. Once started it always runs to
// completion; there is no cancellation.
func Await(sleeper Sleeper, d Duration) {
	sleeper.Sleep(d.Std())
}
