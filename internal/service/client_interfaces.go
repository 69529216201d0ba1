// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-scratch-gift/models"
)

// ClientGiftService defines the terminal client's contract for creating,
// revealing and listing gifts. Server errors come back as the same sentinel
// errors the server side uses (e.g. [store.ErrQuotaExceeded]).
type ClientGiftService interface {
	// CreateGift validates form, uploads it together with the optional image
	// file and records the returned link in the local history.
	// A failed history write is logged and does not fail the call.
	CreateGift(ctx context.Context, form models.NewGiftForm) (models.CreateGiftResponse, error)

	// GetGift resolves ref (a full share link or a bare id) and fetches the
	// gift from the server.
	GetGift(ctx context.Context, ref string) (models.Gift, error)

	// RemainingQuota asks the server how many gifts this client may still create.
	RemainingQuota(ctx context.Context) (models.RemainingQuotaResponse, error)

	// History lists the locally recorded gifts, newest first. A zero limit
	// returns everything.
	History(ctx context.Context, limit uint64) ([]models.HistoryEntry, error)

	// ForgetGift removes a gift from the local history only.
	ForgetGift(ctx context.Context, giftID string) error

	// ImageURL returns the absolute address of the gift's image, or "" when
	// the gift has none.
	ImageURL(gift models.Gift) string

	// ServerHealth reports the server status and version.
	ServerHealth(ctx context.Context) (models.HealthResponse, error)
}
