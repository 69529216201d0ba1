// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-scratch-gift/models"
)

// GiftStorage keeps live gifts together with the per-address creation counts.
// Every method is safe for concurrent use and observes a consistent state.
type GiftStorage interface {
	// Create stores gift under a fresh id and the current time. It fails with
	// [ErrQuotaExceeded] when gift.CreatorAddress has no quota left.
	Create(ctx context.Context, gift models.Gift) (models.Gift, error)
	// Get returns the gift with id or [ErrGiftNotFound].
	Get(ctx context.Context, id string) (models.Gift, error)
	// RemainingQuota returns how many gifts address may still create.
	RemainingQuota(ctx context.Context, address string) int
	// Sweep removes every gift older than [models.GiftLifetime] at now,
	// rebuilds the counts from the survivors and returns the removed gifts.
	Sweep(ctx context.Context, now time.Time) []models.Gift
}

// UploadStorage persists uploaded gift images.
type UploadStorage interface {
	// Save writes content under a fresh unique name carrying ext and returns
	// that name.
	Save(ctx context.Context, ext string, content io.Reader) (string, error)
	// Delete removes the upload called name.
	Delete(ctx context.Context, name string) error
	// Dir is the directory uploads are written to and served from.
	Dir() string
}

// IDGenerator produces unique opaque identifiers.
type IDGenerator interface {
	Generate() string
}
