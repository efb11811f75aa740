// Copyright (c) Jingyuan Zhang. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for full license information.

package metrics

import (
	"net/http"
	"time"

	metrics "github.com/armon/go-metrics"
	prom "github.com/armon/go-metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	keyRequests  = []string{"wait", "requests"}
	keySucceeded = []string{"wait", "succeeded"}
	keyFailed    = []string{"wait", "failed"}
	keyDuration  = []string{"wait", "duration_ms"}
	keyLatency   = []string{"wait", "latency"}
)

// Setup installs a global prometheus sink and returns the handler exposing it.
// Must be called at most once per process.
func Setup(serviceName string) (http.Handler, error) {
	promSink, err := prom.NewPrometheusSink()
	if err != nil {
		return nil, err
	}

	if err := SetupWithSink(serviceName, promSink); err != nil {
		return nil, err
	}
	return promhttp.Handler(), nil
}

// SetupWithSink installs sink as the global metrics sink.
func SetupWithSink(serviceName string, sink metrics.MetricSink) error {
	cfg := metrics.DefaultConfig(serviceName)
	cfg.EnableHostname = false
	cfg.EnableRuntimeMetrics = false

	_, err := metrics.NewGlobal(cfg, sink)
	return err
}

// RequestReceived counts an incoming invocation.
func RequestReceived() {
	metrics.IncrCounter(keyRequests, 1)
}

// Succeeded records a completed wait of millis milliseconds.
func Succeeded(millis uint64, start time.Time) {
	metrics.IncrCounter(keySucceeded, 1)
	metrics.AddSample(keyDuration, float32(millis))
	metrics.MeasureSince(keyLatency, start)
}

// Failed counts a rejected invocation, labelled by error kind.
func Failed(kind string) {
	metrics.IncrCounterWithLabels(keyFailed, 1, []metrics.Label{{Name: "kind", Value: kind}})
}
