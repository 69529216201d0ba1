// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/MKhiriev/go-scratch-gift/internal/validators"
	"github.com/MKhiriev/go-scratch-gift/models"
)

// UploadsURLPrefix is the path under which uploaded images are served.
const UploadsURLPrefix = "/uploads/"

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

type giftService struct {
	gifts   store.GiftStorage
	uploads store.UploadStorage

	now     func() time.Time
	cleanup sync.WaitGroup

	logger *logger.Logger
}

// NewGiftService returns the [GiftService] over the given storages.
func NewGiftService(gifts store.GiftStorage, uploads store.UploadStorage, logger *logger.Logger) GiftService {
	return newGiftService(gifts, uploads, time.Now, logger)
}

func newGiftService(gifts store.GiftStorage, uploads store.UploadStorage, now func() time.Time, logger *logger.Logger) *giftService {
	return &giftService{
		gifts:   gifts,
		uploads: uploads,
		now:     now,
		logger:  logger,
	}
}

func (s *giftService) CreateGift(ctx context.Context, req models.CreateGiftRequest) (models.Gift, error) {
	log := logger.FromContext(ctx)

	if s.gifts.RemainingQuota(ctx, req.CreatorAddress) == 0 {
		return models.Gift{}, store.ErrQuotaExceeded
	}

	gift := models.Gift{
		Message:        strings.TrimSpace(req.Message),
		Theme:          req.Theme,
		CreatorAddress: req.CreatorAddress,
	}

	var uploadName string
	if req.Image != nil {
		name, err := s.saveImage(ctx, req.Image)
		if err != nil {
			return models.Gift{}, err
		}
		uploadName = name
		gift.ImageURL = UploadsURLPrefix + name
	}

	stored, err := s.gifts.Create(ctx, gift)
	if err != nil {
		if uploadName != "" {
			if delErr := s.uploads.Delete(ctx, uploadName); delErr != nil {
				log.Err(delErr).Str("file", uploadName).Msg("error removing orphaned upload")
			}
		}
		return models.Gift{}, fmt.Errorf("error storing gift: %w", err)
	}

	log.Info().
		Str("gift_id", stored.ID).
		Str("theme", stored.Theme.String()).
		Bool("image", stored.HasImage()).
		Msg("gift created")

	return stored, nil
}

// saveImage sniffs the leading bytes of the upload, rejects anything that is
// not jpeg, png or gif, and writes it under a fresh name.
func (s *giftService) saveImage(ctx context.Context, image *models.ImageUpload) (string, error) {
	content := bufio.NewReaderSize(image.Content, sniffLen)
	head, err := content.Peek(sniffLen)
	if len(head) == 0 && err != nil {
		return "", fmt.Errorf("%w: empty image", ErrUnsupportedImageType)
	}

	sniffed := http.DetectContentType(head)
	if !validators.IsAllowedImageType(sniffed) {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedImageType, sniffed)
	}

	name, err := s.uploads.Save(ctx, imageExtension(image.FileName, sniffed), content)
	if err != nil {
		return "", fmt.Errorf("error saving image: %w", err)
	}

	return name, nil
}

// imageExtension keeps the client's extension when it belongs to the
// detected type and falls back to the canonical one otherwise.
func imageExtension(fileName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	canonical := validators.AllowedImageTypes[contentType]

	switch {
	case ext == canonical:
		return ext
	case contentType == "image/jpeg" && ext == ".jpeg":
		return ext
	default:
		return canonical
	}
}

func (s *giftService) GetGift(ctx context.Context, id string) (models.Gift, error) {
	gift, err := s.gifts.Get(ctx, id)
	if err != nil {
		return models.Gift{}, fmt.Errorf("error getting gift %s: %w", id, err)
	}

	return gift, nil
}

func (s *giftService) RemainingQuota(ctx context.Context, address string) int {
	return s.gifts.RemainingQuota(ctx, address)
}

func (s *giftService) SweepExpired(ctx context.Context) int {
	removed := s.gifts.Sweep(ctx, s.now())

	var names []string
	for _, gift := range removed {
		if gift.HasImage() {
			names = append(names, path.Base(gift.ImageURL))
		}
	}

	if len(names) > 0 {
		s.cleanup.Add(1)
		go s.deleteUploads(names)
	}

	return len(removed)
}

// deleteUploads runs detached from the sweep; failures are only logged.
func (s *giftService) deleteUploads(names []string) {
	defer s.cleanup.Done()

	for _, name := range names {
		if err := s.uploads.Delete(context.Background(), name); err != nil {
			s.logger.Err(err).Str("file", name).Msg("error removing expired upload")
		}
	}
}

// wait blocks until every scheduled upload deletion finished.
func (s *giftService) wait() {
	s.cleanup.Wait()
}
