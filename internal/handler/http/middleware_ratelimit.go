// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/go-chi/httprate"
)

// withRateLimit returns a sliding-window limiter allowing
// server.RateLimitMax requests per server.RateLimitWindow for each client
// address. Every call builds an independent counter.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.server.RateLimitMax,
		h.server.RateLimitWindow,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return clientAddress(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeFailure(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
		}),
	)
}
