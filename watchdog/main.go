// Copyright (c) Alex Ellis 2017. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for full license information.

// Package main serves the wait function. Inside AWS Lambda it hands the
// function to the lambda runtime; elsewhere it is a small HTTP shim with
// health-checking, graceful shutdowns and prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/don41382/lambda-delay/config"
	"github.com/don41382/lambda-delay/function"
	"github.com/don41382/lambda-delay/logger"
	"github.com/don41382/lambda-delay/metrics"
	"github.com/don41382/lambda-delay/types"
)

var (
	versionFlag          bool
	acceptingConnections int32
)

func main() {
	flag.BoolVar(&versionFlag, "version", false, "Print the version and exit")

	flag.Parse()

	osEnv := types.OsEnv{}
	readConfig := config.ReadConfig{}
	cfg := readConfig.Read(osEnv)

	logger.Setup(cfg.LogLevel)
	printVersion()

	if versionFlag {
		return
	}

	atomic.StoreInt32(&acceptingConnections, 0)

	fn := function.New(logger.NewLogrusLogger(log.WithField("function", function.WaitParam)))

	if cfg.Mode == config.ModeLambda {
		log.Info("Starting in lambda mode")
		lambda.Start(fn.HandleLambda)
		return
	}

	configureMetrics(cfg)

	var idleConnsClosed chan struct{}
	switch cfg.Mode {
	case config.ModeFastHTTP:
		idleConnsClosed = listenFastUntilShutdown(cfg, fn)
	default:
		idleConnsClosed = listenUntilShutdown(cfg, fn)
	}

	<-idleConnsClosed
}

func configureMetrics(cfg *config.FunctionConfig) {
	if cfg.MetricsPort == 0 {
		return
	}

	handler, err := metrics.Setup("lambda_delay")
	if err != nil {
		log.WithError(err).Warn("Metrics disabled")
		return
	}

	log.Infof("Starting prometheus handler on port %d", cfg.MetricsPort)
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.MetricsPort), handler); err != nil {
			log.WithError(err).Error("Metrics listener stopped")
		}
	}()
}

func printVersion() {
	sha := "unknown"
	if len(GitCommit) > 0 {
		sha = GitCommit
	}

	log.Infof("Version: %v\tSHA: %v", BuildVersion(), sha)
}
