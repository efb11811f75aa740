// Copyright (c) Alex Ellis 2017. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for full license information.

package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/don41382/lambda-delay/function"
)

const healthPath = "/_/health"

func lockFilePath() string {
	return filepath.Join(os.TempDir(), ".lock")
}

func lockFilePresent() bool {
	if _, err := os.Stat(lockFilePath()); os.IsNotExist(err) {
		return false
	}
	return true
}

func createLockFile() (string, error) {
	path := lockFilePath()
	log.Infof("Writing lock-file to: %s", path)
	writeErr := os.WriteFile(path, []byte{}, 0660)

	atomic.StoreInt32(&acceptingConnections, 1)

	return path, writeErr
}

func markUnhealthy() error {
	atomic.StoreInt32(&acceptingConnections, 0)

	path := lockFilePath()
	log.Infof("Removing lock-file : %s", path)
	return os.Remove(path)
}

// healthy reports whether the shim accepts traffic. Without a lock file only
// the accepting flag counts.
func healthy(suppressLock bool) bool {
	if atomic.LoadInt32(&acceptingConnections) == 0 {
		return false
	}
	return suppressLock || lockFilePresent()
}

// isFunctionPath reports whether path addresses the function once prefix is
// stripped: the prefix itself, or the root.
func isFunctionPath(path string, prefix string) bool {
	if len(prefix) > 0 && strings.HasPrefix(path, prefix) {
		path = strings.TrimPrefix(path, prefix)
	}
	return path == "" || path == "/"
}

func makeHealthHandler(suppressLock bool) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if !healthy(suppressLock) {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

// makeFunctionHandler routes requests under prefix to next and rejects any
// other path.
func makeFunctionHandler(next http.HandlerFunc, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL == nil || !isFunctionPath(r.URL.Path, prefix) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet, http.MethodPost:
			next(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func makeMux(fn *function.Function, prefix string, suppressLock bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(healthPath, makeHealthHandler(suppressLock))
	mux.HandleFunc("/", makeFunctionHandler(fn.ServeHTTP, prefix))
	return mux
}

func makeFastRouter(fn *function.Function, prefix string, suppressLock bool) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())

		switch {
		case path == healthPath:
			if !ctx.IsGet() {
				ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
				return
			}
			if !healthy(suppressLock) {
				ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
				return
			}
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.WriteString("OK")
		case isFunctionPath(path, prefix):
			if !ctx.IsGet() && !ctx.IsPost() {
				ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
				return
			}
			fn.HandleFastHTTP(ctx)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	}
}
