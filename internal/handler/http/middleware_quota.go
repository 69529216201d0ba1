// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
)

// withQuotaCheck rejects a creation request before its body is read when the
// caller has no gifts left. The store checks again when the gift is saved.
func (h *Handler) withQuotaCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := clientAddress(r)

		if h.services.GiftService.RemainingQuota(r.Context(), address) == 0 {
			logger.FromRequest(r).Info().Str("address", address).Msg("gift limit reached")
			h.writeError(w, r, store.ErrQuotaExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}
