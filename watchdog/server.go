// Copyright (c) Alex Ellis 2017. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for full license information.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/don41382/lambda-delay/config"
	"github.com/don41382/lambda-delay/function"
)

// listenUntilShutdown will listen for HTTP requests until SIGTERM
// is sent at which point the code will wait the write timeout before
// closing off connections and a further write timeout before
// exiting
func listenUntilShutdown(cfg *config.FunctionConfig, fn *function.Function) chan struct{} {
	s := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        makeMux(fn, cfg.FunctionPrefix, cfg.SuppressLock),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // Max header of 1MB
	}

	log.Infof("Read/write timeout: %s, %s. Port: %d", cfg.ReadTimeout, cfg.WriteTimeout, cfg.Port)

	idleConnsClosed := make(chan struct{})
	go func() {
		shutdownTimeout := waitForSigterm(cfg)

		if err := s.Shutdown(context.Background()); err != nil {
			// Error from closing listeners, or context timeout:
			log.WithError(err).Error("Error in Shutdown")
		}

		log.Infof("No new connections allowed. Exiting in: %s", shutdownTimeout)
		<-time.After(shutdownTimeout)

		close(idleConnsClosed)
	}()

	// Run the HTTP server in a separate go-routine.
	go func() {
		if err := s.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Error("Error ListenAndServe")
			close(idleConnsClosed)
		}
	}()

	acceptConnections(cfg)

	return idleConnsClosed
}

// listenFastUntilShutdown is listenUntilShutdown on top of fasthttp.
func listenFastUntilShutdown(cfg *config.FunctionConfig, fn *function.Function) chan struct{} {
	s := &fasthttp.Server{
		Handler:      makeFastRouter(fn, cfg.FunctionPrefix, cfg.SuppressLock),
		Name:         "lambda-delay",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Infof("fasthttp read/write timeout: %s, %s. Port: %d", cfg.ReadTimeout, cfg.WriteTimeout, cfg.Port)

	idleConnsClosed := make(chan struct{})
	go func() {
		waitForSigterm(cfg)

		// Shutdown waits for open connections, so in-flight waits complete.
		if err := s.Shutdown(); err != nil {
			log.WithError(err).Error("Error in Shutdown")
		}

		close(idleConnsClosed)
	}()

	go func() {
		if err := s.ListenAndServe(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.WithError(err).Error("Error ListenAndServe")
			close(idleConnsClosed)
		}
	}()

	acceptConnections(cfg)

	return idleConnsClosed
}

// waitForSigterm blocks until SIGTERM, marks the shim unhealthy and gives
// load balancers one write timeout to notice.
func waitForSigterm(cfg *config.FunctionConfig) time.Duration {
	shutdownTimeout := cfg.WriteTimeout

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM)

	<-sig

	log.Infof("SIGTERM received.. shutting down server in %s", shutdownTimeout)

	if !cfg.SuppressLock {
		if healthErr := markUnhealthy(); healthErr != nil {
			log.WithError(healthErr).Warn("Unable to mark unhealthy during shutdown")
		}
	} else {
		atomic.StoreInt32(&acceptingConnections, 0)
	}

	<-time.After(shutdownTimeout)
	return shutdownTimeout
}

func acceptConnections(cfg *config.FunctionConfig) {
	if cfg.SuppressLock == false {
		path, writeErr := createLockFile()

		if writeErr != nil {
			log.Panicf("Cannot write %s. To disable lock-file set env suppress_lock=true.\n Error: %s.\n", path, writeErr.Error())
		}
	} else {
		log.Warn("\"suppress_lock\" is enabled. No automated health-checks will be in place for your function.")

		atomic.StoreInt32(&acceptingConnections, 1)
	}
}
