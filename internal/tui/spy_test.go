// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-scratch-gift/models"
)

// spyGiftService records calls and returns preset results.
type spyGiftService struct {
	created    models.CreateGiftResponse
	createErr  error
	createForm *models.NewGiftForm

	gift    models.Gift
	getErr  error
	lastRef string

	quota    models.RemainingQuotaResponse
	quotaErr error

	history    []models.HistoryEntry
	historyErr error

	forgotten string
	forgetErr error

	imageBase string
}

func (s *spyGiftService) CreateGift(_ context.Context, form models.NewGiftForm) (models.CreateGiftResponse, error) {
	s.createForm = &form
	return s.created, s.createErr
}

func (s *spyGiftService) GetGift(_ context.Context, ref string) (models.Gift, error) {
	s.lastRef = ref
	return s.gift, s.getErr
}

func (s *spyGiftService) RemainingQuota(context.Context) (models.RemainingQuotaResponse, error) {
	return s.quota, s.quotaErr
}

func (s *spyGiftService) History(context.Context, uint64) ([]models.HistoryEntry, error) {
	return s.history, s.historyErr
}

func (s *spyGiftService) ForgetGift(_ context.Context, giftID string) error {
	s.forgotten = giftID
	return s.forgetErr
}

func (s *spyGiftService) ImageURL(gift models.Gift) string {
	if gift.ImageURL == "" {
		return ""
	}
	return s.imageBase + gift.ImageURL
}

func (s *spyGiftService) ServerHealth(context.Context) (models.HealthResponse, error) {
	return models.HealthResponse{Success: true, Status: "ok"}, nil
}
