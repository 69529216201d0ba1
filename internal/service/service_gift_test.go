// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")
	gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
)

// ── spies ────────────────────────────────────────────────────────────────────

type spyGiftStorage struct {
	remaining int
	createErr error
	getErr    error
	swept     []models.Gift

	created []models.Gift
	sweptAt time.Time
}

func (s *spyGiftStorage) Create(_ context.Context, gift models.Gift) (models.Gift, error) {
	if s.createErr != nil {
		return models.Gift{}, s.createErr
	}
	gift.ID = "gift-1"
	s.created = append(s.created, gift)
	return gift, nil
}

func (s *spyGiftStorage) Get(_ context.Context, id string) (models.Gift, error) {
	if s.getErr != nil {
		return models.Gift{}, s.getErr
	}
	return models.Gift{ID: id}, nil
}

func (s *spyGiftStorage) RemainingQuota(_ context.Context, _ string) int {
	return s.remaining
}

func (s *spyGiftStorage) Sweep(_ context.Context, now time.Time) []models.Gift {
	s.sweptAt = now
	return s.swept
}

type spyUploadStorage struct {
	mu sync.Mutex

	saveErr   error
	deleteErr error

	saved   map[string][]byte
	deleted []string
	exts    []string
}

func newSpyUploadStorage() *spyUploadStorage {
	return &spyUploadStorage{saved: map[string][]byte{}}
}

func (s *spyUploadStorage) Save(_ context.Context, ext string, content io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	name := "upload" + ext
	s.saved[name] = data
	s.exts = append(s.exts, ext)
	return name, nil
}

func (s *spyUploadStorage) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, name)
	return s.deleteErr
}

func (s *spyUploadStorage) Dir() string { return "uploads" }

func newTestGiftSvc(gifts *spyGiftStorage, uploads *spyUploadStorage, now time.Time) *giftService {
	return newGiftService(gifts, uploads, func() time.Time { return now }, logger.Nop())
}

func imageUpload(name, contentType string, data []byte) *models.ImageUpload {
	return &models.ImageUpload{
		FileName:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Content:     bytes.NewReader(data),
	}
}

// ── CreateGift ───────────────────────────────────────────────────────────────

func TestGiftService_CreateGift_WithoutImage(t *testing.T) {
	gifts := &spyGiftStorage{remaining: 3}
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	gift, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message:        "  Happy holidays  ",
		Theme:          models.ThemeStars,
		CreatorAddress: "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, "gift-1", gift.ID)
	assert.Equal(t, "Happy holidays", gift.Message)
	assert.Empty(t, gift.ImageURL)
	require.Len(t, gifts.created, 1)
	assert.Equal(t, "10.0.0.1", gifts.created[0].CreatorAddress)
	assert.Empty(t, uploads.saved)
}

func TestGiftService_CreateGift_WithImage(t *testing.T) {
	gifts := &spyGiftStorage{remaining: 1}
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	gift, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message: "Hi",
		Theme:   models.ThemeLights,
		Image:   imageUpload("photo.PNG", "image/png", pngBytes),
	})

	require.NoError(t, err)
	assert.Equal(t, UploadsURLPrefix+"upload.png", gift.ImageURL)
	assert.Equal(t, pngBytes, uploads.saved["upload.png"], "sniffed bytes must be written too")
}

func TestGiftService_CreateGift_QuotaExhaustedBeforeUpload(t *testing.T) {
	gifts := &spyGiftStorage{remaining: 0}
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	_, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message: "Hi",
		Theme:   models.ThemeLights,
		Image:   imageUpload("a.png", "image/png", pngBytes),
	})

	require.ErrorIs(t, err, store.ErrQuotaExceeded)
	assert.Empty(t, uploads.saved, "nothing is written when quota is gone")
	assert.Empty(t, gifts.created)
}

func TestGiftService_CreateGift_SniffRejectsDisguisedFile(t *testing.T) {
	gifts := &spyGiftStorage{remaining: 3}
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	_, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message: "Hi",
		Theme:   models.ThemeLights,
		Image:   imageUpload("evil.png", "image/png", []byte("<html><script>alert(1)</script></html>")),
	})

	require.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Empty(t, uploads.saved)
	assert.Empty(t, gifts.created)
}

func TestGiftService_CreateGift_EmptyImage(t *testing.T) {
	svc := newTestGiftSvc(&spyGiftStorage{remaining: 3}, newSpyUploadStorage(), time.Now())

	_, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message: "Hi",
		Theme:   models.ThemeLights,
		Image:   imageUpload("a.png", "image/png", nil),
	})

	require.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestGiftService_CreateGift_StoreRejectsRemovesUpload(t *testing.T) {
	gifts := &spyGiftStorage{remaining: 1, createErr: store.ErrQuotaExceeded}
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	_, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message: "Hi",
		Theme:   models.ThemeRibbon,
		Image:   imageUpload("a.gif", "image/gif", gifBytes),
	})

	require.ErrorIs(t, err, store.ErrQuotaExceeded)
	assert.Equal(t, []string{"upload.gif"}, uploads.deleted)
}

func TestGiftService_CreateGift_SaveError(t *testing.T) {
	uploads := newSpyUploadStorage()
	uploads.saveErr = errors.New("disk full")
	gifts := &spyGiftStorage{remaining: 3}
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	_, err := svc.CreateGift(context.Background(), models.CreateGiftRequest{
		Message: "Hi",
		Theme:   models.ThemeRibbon,
		Image:   imageUpload("a.gif", "image/gif", gifBytes),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, gifts.created)
}

// ── imageExtension ───────────────────────────────────────────────────────────

func TestImageExtension(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		contentType string
		want        string
	}{
		{"matching png", "a.png", "image/png", ".png"},
		{"upper case", "A.PNG", "image/png", ".png"},
		{"jpeg long form", "a.jpeg", "image/jpeg", ".jpeg"},
		{"jpg", "a.jpg", "image/jpeg", ".jpg"},
		{"wrong extension", "a.png", "image/gif", ".gif"},
		{"no extension", "photo", "image/jpeg", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageExtension(tt.fileName, tt.contentType))
		})
	}
}

// ── GetGift / RemainingQuota ─────────────────────────────────────────────────

func TestGiftService_GetGift_NotFound(t *testing.T) {
	svc := newTestGiftSvc(&spyGiftStorage{getErr: store.ErrGiftNotFound}, newSpyUploadStorage(), time.Now())

	_, err := svc.GetGift(context.Background(), "nope")

	require.ErrorIs(t, err, store.ErrGiftNotFound)
	assert.Contains(t, err.Error(), "nope")
}

func TestGiftService_RemainingQuota(t *testing.T) {
	svc := newTestGiftSvc(&spyGiftStorage{remaining: 2}, newSpyUploadStorage(), time.Now())

	assert.Equal(t, 2, svc.RemainingQuota(context.Background(), "10.0.0.1"))
}

// ── SweepExpired ─────────────────────────────────────────────────────────────

func TestGiftService_SweepExpired_DeletesUploads(t *testing.T) {
	now := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	gifts := &spyGiftStorage{swept: []models.Gift{
		{ID: "a", ImageURL: UploadsURLPrefix + "a.png"},
		{ID: "b"},
		{ID: "c", ImageURL: UploadsURLPrefix + "c.gif"},
	}}
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(gifts, uploads, now)

	removed := svc.SweepExpired(context.Background())
	svc.wait()

	assert.Equal(t, 3, removed)
	assert.Equal(t, now, gifts.sweptAt)
	assert.ElementsMatch(t, []string{"a.png", "c.gif"}, uploads.deleted)
}

func TestGiftService_SweepExpired_DeleteFailureIsNotPropagated(t *testing.T) {
	gifts := &spyGiftStorage{swept: []models.Gift{{ID: "a", ImageURL: UploadsURLPrefix + "a.png"}}}
	uploads := newSpyUploadStorage()
	uploads.deleteErr = errors.New("permission denied")
	svc := newTestGiftSvc(gifts, uploads, time.Now())

	assert.Equal(t, 1, svc.SweepExpired(context.Background()))
	svc.wait()
	assert.Equal(t, []string{"a.png"}, uploads.deleted)
}

func TestGiftService_SweepExpired_Nothing(t *testing.T) {
	uploads := newSpyUploadStorage()
	svc := newTestGiftSvc(&spyGiftStorage{}, uploads, time.Now())

	assert.Zero(t, svc.SweepExpired(context.Background()))
	svc.wait()
	assert.Empty(t, uploads.deleted)
}

// ── with the real storages ───────────────────────────────────────────────────

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return strings.Repeat("x", s.n)
}

func TestGiftService_RejectedImageDoesNotConsumeQuota(t *testing.T) {
	gifts := store.NewMemoryGiftStorage(&seqIDs{}, logger.Nop())
	uploads, err := store.NewUploadFileStorage(t.TempDir(), &seqIDs{}, logger.Nop())
	require.NoError(t, err)

	svc := NewGiftValidationService(1 << 20).Wrap(NewGiftService(gifts, uploads, logger.Nop()))
	ctx := context.Background()

	_, err = svc.CreateGift(ctx, models.CreateGiftRequest{
		Message:        "Hi",
		Theme:          models.ThemeStars,
		Image:          imageUpload("doc.pdf", "application/pdf", []byte("%PDF-1.4")),
		CreatorAddress: "1.2.3.4",
	})
	require.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Equal(t, models.MaxGiftsPerAddress, svc.RemainingQuota(ctx, "1.2.3.4"))

	_, err = svc.CreateGift(ctx, models.CreateGiftRequest{
		Message:        "Hi",
		Theme:          models.ThemeStars,
		Image:          imageUpload("fake.png", "image/png", []byte("not an image at all")),
		CreatorAddress: "1.2.3.4",
	})
	require.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Equal(t, models.MaxGiftsPerAddress, svc.RemainingQuota(ctx, "1.2.3.4"))
}
