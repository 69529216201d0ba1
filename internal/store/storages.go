// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/utils"
)

// Storages groups the server-side storage backends.
type Storages struct {
	GiftStorage   GiftStorage
	UploadStorage UploadStorage
}

// NewStorages builds the in-memory gift storage and the upload directory
// storage described by cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	ids := utils.NewUUIDGenerator()

	uploads, err := NewUploadFileStorage(cfg.Files.UploadsDir, ids, logger)
	if err != nil {
		return nil, fmt.Errorf("upload storage error: %w", err)
	}

	return &Storages{
		GiftStorage:   NewMemoryGiftStorage(ids, logger),
		UploadStorage: uploads,
	}, nil
}
