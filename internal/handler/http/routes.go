// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecovery,
		middleware.StripSlashes,
		withSecurityHeaders,
		withCORS(),
		withClientAddress,
		withGZip,
	)

	// pages and files
	router.Get("/", h.createPage)
	router.Get("/gift/{id}", h.revealPage)
	router.Get("/static/*", h.staticFiles)
	router.Get("/uploads/*", h.uploadedFile)
	router.Get("/health", h.health)

	// JSON API, rate limited per client address
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit())

		r.With(h.withQuotaCheck).Post("/api/gifts", h.createGift)
		r.Get("/api/gifts/remaining", h.remainingQuota)
		r.Get("/api/gifts/{id}", h.getGift)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
