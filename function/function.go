// Package function implements the wait function: it reads a `wait` query
// parameter in milliseconds, suspends for that long and confirms.
package function

import (
	"fmt"
	"time"

	"github.com/don41382/lambda-delay/logger"
	"github.com/don41382/lambda-delay/metrics"
)

// WaitParam is the query parameter carrying the wait in milliseconds.
const WaitParam = "wait"

// InvalidInputBody is returned to callers for every kind of failure.
const InvalidInputBody = "invalid input"

// QueryArgs gives access to the query string of a request, whatever transport
// it arrived through.
type QueryArgs interface {
	// First returns the first value of key and whether key was present at all.
	First(key string) (string, bool)
}

// Function is the wait function. The zero value is not usable, use New.
type Function struct {
	Log     logger.ILogger
	Sleeper Sleeper
}

// New returns a Function logging to log and sleeping on the wall clock.
// A nil log discards all records.
func New(log logger.ILogger) *Function {
	if log == nil {
		log = &logger.NilLogger{}
	}
	return &Function{
		Log:     log,
		Sleeper: NewTimeSleeper(),
	}
}

// Process validates the wait parameter in query and suspends for it. Nothing
// is awaited when an error is returned.
func (f *Function) Process(query QueryArgs) (Duration, error) {
	raw, ok := query.First(WaitParam)
	if !ok {
		return 0, ErrMissingDuration
	}

	wait, err := ParseDuration(raw)
	if err != nil {
		return 0, err
	}

	f.Log.Info("waiting for %d milliseconds", wait.Milliseconds())
	Await(f.Sleeper, wait)
	return wait, nil
}

// Respond runs Process and renders the response body. Failures are logged in
// full but the caller only ever sees InvalidInputBody.
func (f *Function) Respond(query QueryArgs) string {
	start := time.Now()
	metrics.RequestReceived()

	wait, err := f.Process(query)
	if err != nil {
		metrics.Failed(Kind(err))
		f.Log.Error("error while processing: %v", err)
		return InvalidInputBody
	}

	metrics.Succeeded(wait.Milliseconds(), start)
	return fmt.Sprintf("waited for %d milliseconds", wait.Milliseconds())
}
