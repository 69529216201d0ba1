// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scratch-gift/internal/validators"
	"github.com/MKhiriev/go-scratch-gift/models"
)

// GiftValidationService rejects malformed creation requests before they reach
// the storage, so a rejected request never consumes quota.
type GiftValidationService struct {
	inner     GiftService
	validator validators.Validator
}

func NewGiftValidationService(maxImageSize int64) GiftServiceWrapper {
	return &GiftValidationService{
		validator: validators.NewGiftValidator(maxImageSize),
	}
}

func (v *GiftValidationService) CreateGift(ctx context.Context, req models.CreateGiftRequest) (models.Gift, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Gift{}, fmt.Errorf("error during gift validation before saving: %w", err)
	}

	return v.inner.CreateGift(ctx, req)
}

func (v *GiftValidationService) GetGift(ctx context.Context, id string) (models.Gift, error) {
	return v.inner.GetGift(ctx, id)
}

func (v *GiftValidationService) RemainingQuota(ctx context.Context, address string) int {
	return v.inner.RemainingQuota(ctx, address)
}

func (v *GiftValidationService) SweepExpired(ctx context.Context) int {
	return v.inner.SweepExpired(ctx)
}

func (v *GiftValidationService) Wrap(wrapped GiftService) GiftService {
	v.inner = wrapped
	return v
}
