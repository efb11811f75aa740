// Copyright (c) Alex Ellis 2017. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for full license information.

package config

import (
	"strconv"
	"strings"
	"time"
)

// Mode selects the transport the function is served through.
type Mode string

const (
	ModeLambda   Mode = "lambda"
	ModeHTTP     Mode = "http"
	ModeFastHTTP Mode = "fasthttp"
)

// HasEnv provides interface for os.Getenv
type HasEnv interface {
	Getenv(key string) string
}

// ReadConfig constitutes config from env variables
type ReadConfig struct {
}

func isBoolValueSet(val string) bool {
	return len(val) > 0
}

func parseBoolValue(val string) bool {
	if val == "true" {
		return true
	}
	return false
}

func parseIntOrDurationValue(val string, fallback time.Duration) time.Duration {
	if len(val) > 0 {
		parsedVal, parseErr := strconv.Atoi(val)
		if parseErr == nil && parsedVal >= 0 {
			return time.Duration(parsedVal) * time.Second
		}
	}

	duration, durationErr := time.ParseDuration(val)
	if durationErr != nil {
		return fallback
	}
	return duration
}

func parseIntValue(val string, fallback int) int {
	if len(val) > 0 {
		parsedVal, parseErr := strconv.Atoi(val)
		if parseErr == nil && parsedVal >= 0 {
			return parsedVal
		}
	}

	return fallback
}

func parseMode(val string, hasEnv HasEnv) Mode {
	switch Mode(strings.ToLower(val)) {
	case ModeLambda:
		return ModeLambda
	case ModeHTTP:
		return ModeHTTP
	case ModeFastHTTP:
		return ModeFastHTTP
	}

	// Running inside the lambda runtime.
	if len(hasEnv.Getenv("AWS_LAMBDA_RUNTIME_API")) > 0 {
		return ModeLambda
	}
	return ModeHTTP
}

// Read fetches config from environmental variables.
func (ReadConfig) Read(hasEnv HasEnv) *FunctionConfig {
	cfg := &FunctionConfig{
		LogLevel:       "info",
		FunctionPrefix: "/function/wait",
	}

	cfg.Mode = parseMode(hasEnv.Getenv("mode"), hasEnv)

	cfg.ReadTimeout = parseIntOrDurationValue(hasEnv.Getenv("read_timeout"), time.Second*5)
	// Must outlast the longest wait.
	cfg.WriteTimeout = parseIntOrDurationValue(hasEnv.Getenv("write_timeout"), time.Second*15)

	cfg.Port = parseIntValue(hasEnv.Getenv("port"), 8080)
	cfg.MetricsPort = parseIntValue(hasEnv.Getenv("metrics_port"), 8081)

	cfg.SuppressLock = parseBoolValue(hasEnv.Getenv("suppress_lock"))

	if logLevel := hasEnv.Getenv("log_level"); isBoolValueSet(logLevel) {
		cfg.LogLevel = logLevel
	}

	if prefix, set := lookupEnv(hasEnv, "function_prefix"); set {
		cfg.FunctionPrefix = prefix
	}

	return cfg
}

// lookupEnv tells an explicitly empty variable from an unset one when hasEnv
// supports it.
func lookupEnv(hasEnv HasEnv, key string) (string, bool) {
	if l, ok := hasEnv.(interface {
		LookupEnv(key string) (string, bool)
	}); ok {
		return l.LookupEnv(key)
	}

	val := hasEnv.Getenv(key)
	return val, len(val) > 0
}

// FunctionConfig for the process.
type FunctionConfig struct {

	// transport the function is served through
	Mode Mode

	// HTTP read timeout
	ReadTimeout time.Duration

	// HTTP write timeout
	WriteTimeout time.Duration

	// port for HTTP server
	Port int

	// port for the prometheus endpoint, 0 disables metrics exposition
	MetricsPort int

	// Don't write a lock file to /tmp/
	SuppressLock bool

	// logrus level name
	LogLevel string

	// path prefix stripped before the request reaches the function
	FunctionPrefix string
}
