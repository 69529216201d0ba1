// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-scratch-gift/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalHistoryRepository is the client-side list of created gift links.
type LocalHistoryRepository interface {
	SaveEntry(ctx context.Context, entry models.HistoryEntry) error
	ListEntries(ctx context.Context, limit uint64) ([]models.HistoryEntry, error)
	DeleteEntry(ctx context.Context, giftID string) error
}
