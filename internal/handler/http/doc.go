// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the gift server.
//
// It exposes route wiring, request handlers and middleware for the JSON API
// under /api, the embedded creation and reveal pages and the uploaded images.
// Cross-cutting concerns such as request tracing, access logging, panic
// recovery, security headers, CORS, response compression, client address
// resolution and rate limiting are handled in this package before requests
// are delegated to the service layer.
//
// Every API response uses the {success, error} envelope from the models
// package; errors are mapped to statuses through errorStatusMap.
package http
