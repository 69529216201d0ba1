// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the gift server from the terminal client.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and the
// JSON "error" field by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrQuotaExceeded] for a quota 429, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-scratch-gift/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the gift server.
type ServerAdapter interface {
	// BaseURL returns the normalised server origin, e.g. "http://localhost:3005".
	BaseURL() string

	// CreateGift sends a multipart creation request to POST /api/gifts and
	// returns the server's response carrying the gift id and share link.
	CreateGift(ctx context.Context, upload models.GiftUpload) (models.CreateGiftResponse, error)

	// GetGift fetches a gift by id from GET /api/gifts/{id}.
	GetGift(ctx context.Context, id string) (models.Gift, error)

	// RemainingQuota fetches GET /api/gifts/remaining for the caller's address.
	RemainingQuota(ctx context.Context) (models.RemainingQuotaResponse, error)

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)
}
