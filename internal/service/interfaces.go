// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-scratch-gift/models"
)

// GiftService is the server-side gift use-case layer.
type GiftService interface {
	// CreateGift stores an optional image and then the gift record. The image
	// is removed again when the record cannot be stored.
	CreateGift(ctx context.Context, req models.CreateGiftRequest) (models.Gift, error)
	// GetGift returns the live gift with id.
	GetGift(ctx context.Context, id string) (models.Gift, error)
	// RemainingQuota returns how many gifts address may still create.
	RemainingQuota(ctx context.Context, address string) int
	// SweepExpired removes expired gifts and schedules deletion of their
	// uploads. It returns the number of gifts removed.
	SweepExpired(ctx context.Context) int
}

// GiftServiceWrapper defines middleware composition for GiftService.
// Implementations wrap an existing GiftService to add behavior such as
// validation.
type GiftServiceWrapper interface {
	Wrap(GiftService) GiftService // returns a decorated GiftService applying additional behavior
}

// AppInfoService exposes build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
