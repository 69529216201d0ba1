// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-scratch-gift/internal/adapter"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/MKhiriev/go-scratch-gift/internal/validators"
	"github.com/MKhiriev/go-scratch-gift/models"
)

// previewLen is the number of message runes kept in a history entry.
const previewLen = 40

type clientGiftService struct {
	history       store.LocalHistoryRepository
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewClientGiftService returns the [ClientGiftService] talking to the server
// through serverAdapter and recording created gifts in history.
func NewClientGiftService(history store.LocalHistoryRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientGiftService {
	return &clientGiftService{
		history:       history,
		serverAdapter: serverAdapter,
		validator:     validators.NewGiftValidator(0),
		now:           time.Now,
		logger:        logger,
	}
}

func (s *clientGiftService) CreateGift(ctx context.Context, form models.NewGiftForm) (models.CreateGiftResponse, error) {
	if err := s.validator.Validate(ctx, form); err != nil {
		return models.CreateGiftResponse{}, err
	}

	upload := models.GiftUpload{
		Message: strings.TrimSpace(form.Message),
		Theme:   form.Theme,
	}

	if form.ImagePath != "" {
		file, err := os.Open(form.ImagePath)
		if err != nil {
			return models.CreateGiftResponse{}, fmt.Errorf("%w: %w", ErrOpeningImage, err)
		}
		defer file.Close()

		upload.ImageName = filepath.Base(form.ImagePath)
		upload.Image = file
	}

	created, err := s.serverAdapter.CreateGift(ctx, upload)
	if err != nil {
		return models.CreateGiftResponse{}, mapAdapterError(err)
	}

	entry := models.HistoryEntry{
		GiftID:    created.GiftID,
		GiftURL:   created.GiftURL,
		Theme:     upload.Theme,
		Preview:   preview(upload.Message),
		CreatedAt: s.now().UTC(),
	}
	if err = s.history.SaveEntry(ctx, entry); err != nil {
		s.logger.Err(err).Str("gift_id", created.GiftID).Msg("error saving gift to local history")
	}

	return created, nil
}

func (s *clientGiftService) GetGift(ctx context.Context, ref string) (models.Gift, error) {
	id, err := ParseGiftRef(ref)
	if err != nil {
		return models.Gift{}, err
	}

	gift, err := s.serverAdapter.GetGift(ctx, id)
	if err != nil {
		return models.Gift{}, mapAdapterError(err)
	}

	return gift, nil
}

func (s *clientGiftService) RemainingQuota(ctx context.Context) (models.RemainingQuotaResponse, error) {
	quota, err := s.serverAdapter.RemainingQuota(ctx)
	if err != nil {
		return models.RemainingQuotaResponse{}, mapAdapterError(err)
	}

	return quota, nil
}

func (s *clientGiftService) History(ctx context.Context, limit uint64) ([]models.HistoryEntry, error) {
	entries, err := s.history.ListEntries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing gift history: %w", err)
	}

	return entries, nil
}

func (s *clientGiftService) ForgetGift(ctx context.Context, giftID string) error {
	if err := s.history.DeleteEntry(ctx, giftID); err != nil {
		return fmt.Errorf("error removing gift %s from history: %w", giftID, err)
	}

	return nil
}

func (s *clientGiftService) ImageURL(gift models.Gift) string {
	if !gift.HasImage() {
		return ""
	}
	if strings.Contains(gift.ImageURL, "://") {
		return gift.ImageURL
	}

	return s.serverAdapter.BaseURL() + "/" + strings.TrimLeft(gift.ImageURL, "/")
}

func (s *clientGiftService) ServerHealth(ctx context.Context) (models.HealthResponse, error) {
	health, err := s.serverAdapter.Health(ctx)
	if err != nil {
		return models.HealthResponse{}, mapAdapterError(err)
	}

	return health, nil
}

// ParseGiftRef extracts the gift id from a share link such as
// "http://host/gift/<id>" or returns ref itself when it is a bare id.
// The id is the last non-empty path segment; query and fragment are ignored.
func ParseGiftRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	ref = strings.TrimRight(ref, "/")
	ref = ref[strings.LastIndex(ref, "/")+1:]

	id, err := url.PathUnescape(ref)
	if err != nil || id == "" {
		return "", ErrInvalidGiftRef
	}

	return id, nil
}

func preview(message string) string {
	message = strings.Join(strings.Fields(message), " ")
	if utf8.RuneCountInString(message) <= previewLen {
		return message
	}

	runes := []rune(message)
	return string(runes[:previewLen-1]) + "…"
}
