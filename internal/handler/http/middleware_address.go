// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/utils"
	"github.com/rs/zerolog"
)

// withClientAddress resolves the caller's address once and stores it in the
// request context and in the request logger.
func withClientAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := utils.ClientAddress(r)

		ctx := utils.WithClientAddress(r.Context(), address)
		log := logger.FromContext(ctx)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("client_address", address)
		})

		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}

// clientAddress returns the address stored by withClientAddress and resolves
// it from r when the middleware did not run.
func clientAddress(r *http.Request) string {
	if address, ok := utils.GetClientAddressFromContext(r.Context()); ok {
		return address
	}
	return utils.ClientAddress(r)
}
