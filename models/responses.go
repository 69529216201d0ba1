// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope shared by every API response. Failed responses
// carry a human-readable Error.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CreateGiftResponse is returned by POST /api/gifts on success.
type CreateGiftResponse struct {
	Success bool `json:"success"`

	// GiftID is the identifier of the stored gift.
	GiftID string `json:"giftId"`

	// GiftURL is the absolute link to the reveal page:
	// {origin}/gift/{giftId}.
	GiftURL string `json:"giftUrl"`
}

// GiftResponse is returned by GET /api/gifts/{id}.
type GiftResponse struct {
	Success bool `json:"success"`
	Gift    Gift `json:"gift"`
}

// RemainingQuotaResponse is returned by GET /api/gifts/remaining.
type RemainingQuotaResponse struct {
	Success bool `json:"success"`

	// Remaining is the number of gifts the caller can still create.
	Remaining int `json:"remaining"`

	// Total is the lifetime limit per address.
	Total int `json:"total"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
