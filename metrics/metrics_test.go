package metrics

import (
	"strings"
	"testing"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/stretchr/testify/require"
)

func counter(t *testing.T, sink *metrics.InmemSink, name string) int {
	t.Helper()

	data := sink.Data()
	require.NotEmpty(t, data)

	total := 0
	for _, interval := range data {
		for key, value := range interval.Counters {
			if key == name || strings.HasPrefix(key, name+";") {
				total += value.Count
			}
		}
	}
	return total
}

func TestOutcomesAreCounted(t *testing.T) {
	sink := metrics.NewInmemSink(time.Minute, time.Hour)
	require.NoError(t, SetupWithSink("test", sink))

	RequestReceived()
	RequestReceived()
	Succeeded(500, time.Now())
	Failed("missing")

	require.Equal(t, 2, counter(t, sink, "test.wait.requests"))
	require.Equal(t, 1, counter(t, sink, "test.wait.succeeded"))
	require.Equal(t, 1, counter(t, sink, "test.wait.failed"))

	var found bool
	for _, interval := range sink.Data() {
		if s, ok := interval.Samples["test.wait.duration_ms"]; ok {
			require.Equal(t, float64(500), s.Max)
			found = true
		}
	}
	require.True(t, found)
}
