// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
)

type Services struct {
	GiftService    GiftService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	gifts := NewGiftValidationService(cfg.Storage.Files.MaxFileSize).
		Wrap(NewGiftService(storages.GiftStorage, storages.UploadStorage, logger))

	return &Services{
		GiftService:    gifts,
		AppInfoService: appInfo,
	}, nil
}
