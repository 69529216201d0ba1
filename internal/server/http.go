// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := listenWithFallback(cfg.Host, cfg.Port, cfg.PortAttempts, logger)
	if err != nil {
		return nil, err
	}

	return &httpServer{
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

// listenWithFallback binds host:port and, when that port is taken, the
// following ones up to attempts ports in total.
func listenWithFallback(host string, port, attempts int, logger *logger.Logger) (net.Listener, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		addr := net.JoinHostPort(host, strconv.Itoa(port+i))

		listener, err := net.Listen("tcp", addr)
		if err == nil {
			return listener, nil
		}

		logger.Warn().Err(err).Str("address", addr).Msg("port is not available, trying the next one")
		lastErr = err
	}

	return nil, fmt.Errorf("%w in %d..%d: %w", errNoFreePort, port, port+attempts-1, lastErr)
}

// RunServer serves until Shutdown is called. It reports unexpected serve
// errors on errCh.
func (h *httpServer) RunServer(errCh chan<- error) {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server Serve")
		errCh <- err
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}

func (h *httpServer) Addr() string {
	return h.listener.Addr().String()
}
