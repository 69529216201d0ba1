// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientA = "203.0.113.7"

func remaining(t *testing.T, router http.Handler, address string) int {
	t.Helper()

	rec := getJSON(router, "/api/gifts/remaining", address)
	require.Equal(t, http.StatusOK, rec.Code)

	quota := decode[models.RemainingQuotaResponse](t, rec)
	require.True(t, quota.Success)
	require.Equal(t, models.MaxGiftsPerAddress, quota.Total)
	return quota.Remaining
}

// ─────────────────────────────────────────────
// createGift
// ─────────────────────────────────────────────

func TestCreateGift_QuotaLifecycle(t *testing.T) {
	_, router := newTestRouter(t, nil)

	assert.Equal(t, 3, remaining(t, router, clientA))

	for want := 2; want >= 0; want-- {
		rec := postGift(t, router, clientA, "Merry Christmas", "stars", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		created := decode[models.CreateGiftResponse](t, rec)
		assert.True(t, created.Success)
		assert.NotEmpty(t, created.GiftID)
		assert.Equal(t, want, remaining(t, router, clientA))
	}

	rec := postGift(t, router, clientA, "One more", "stars", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	failed := decode[models.Response](t, rec)
	assert.False(t, failed.Success)
	assert.Equal(t, app.MsgQuotaExceeded, failed.Error)
	assert.Equal(t, 0, remaining(t, router, clientA))
}

func TestCreateGift_AddressesHaveSeparateQuotas(t *testing.T) {
	_, router := newTestRouter(t, nil)

	for i := 0; i < models.MaxGiftsPerAddress; i++ {
		require.Equal(t, http.StatusOK, postGift(t, router, clientA, "Hi", "lights", nil).Code)
	}

	rec := postGift(t, router, "198.51.100.1, 10.0.0.1", "Hi", "lights", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, remaining(t, router, "198.51.100.1"))
}

func TestCreateGift_ReturnsLinkAndStoresGift(t *testing.T) {
	_, router := newTestRouter(t, nil)

	rec := postGift(t, router, clientA, "  Happy New Year  ", "RIBBON", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	created := decode[models.CreateGiftResponse](t, rec)
	assert.Equal(t, "http://example.com/gift/"+created.GiftID, created.GiftURL)

	rec = getJSON(router, "/api/gifts/"+created.GiftID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), clientA, "creator address must not leak")

	found := decode[models.GiftResponse](t, rec)
	assert.True(t, found.Success)
	assert.Equal(t, created.GiftID, found.Gift.ID)
	assert.Equal(t, "Happy New Year", found.Gift.Message)
	assert.Equal(t, models.ThemeRibbon, found.Gift.Theme)
	assert.Empty(t, found.Gift.ImageURL)
	assert.False(t, found.Gift.CreatedAt.IsZero())
}

func TestCreateGift_PublicURL(t *testing.T) {
	_, router := newTestRouter(t, func(cfg *config.StructuredConfig) {
		cfg.App.PublicURL = "https://gifts.example.org/"
	})

	rec := postGift(t, router, clientA, "Hi", "sweater", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	created := decode[models.CreateGiftResponse](t, rec)
	assert.Equal(t, "https://gifts.example.org/gift/"+created.GiftID, created.GiftURL)
}

func TestCreateGift_WithImage(t *testing.T) {
	h, router := newTestRouter(t, nil)

	rec := postGift(t, router, clientA, "Look!", "stars", &imagePart{name: "tree.png", contentType: "image/png", data: pngBytes})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[models.CreateGiftResponse](t, rec)

	found := decode[models.GiftResponse](t, getJSON(router, "/api/gifts/"+created.GiftID, ""))
	require.True(t, strings.HasPrefix(found.Gift.ImageURL, "/uploads/"), found.Gift.ImageURL)
	assert.Equal(t, ".png", path.Ext(found.Gift.ImageURL))

	stored, err := os.ReadFile(filepath.Join(h.files.UploadsDir, path.Base(found.Gift.ImageURL)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)

	rec = getJSON(router, found.Gift.ImageURL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestCreateGift_RejectedRequestsDoNotConsumeQuota(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		theme      string
		image      *imagePart
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty message",
			message:    "   ",
			theme:      "stars",
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgMessageRequired,
		},
		{
			name:       "unknown theme",
			message:    "Hi",
			theme:      "easter",
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidTheme,
		},
		{
			name:       "missing theme",
			message:    "Hi",
			theme:      "",
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidTheme,
		},
		{
			name:       "unsupported declared type",
			message:    "Hi",
			theme:      "stars",
			image:      &imagePart{name: "doc.pdf", contentType: "application/pdf", data: []byte("%PDF-1.4")},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidFileType,
		},
		{
			name:       "content does not match declared type",
			message:    "Hi",
			theme:      "stars",
			image:      &imagePart{name: "fake.png", contentType: "image/png", data: []byte("<html><body>not an image</body></html>")},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidFileType,
		},
		{
			name:       "image over the size limit",
			message:    "Hi",
			theme:      "stars",
			image:      &imagePart{name: "big.png", contentType: "image/png", data: append(append([]byte{}, pngBytes...), make([]byte, 2048)...)},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  app.MsgFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, router := newTestRouter(t, nil)

			rec := postGift(t, router, clientA, tt.message, tt.theme, tt.image)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			failed := decode[models.Response](t, rec)
			assert.False(t, failed.Success)
			assert.Equal(t, tt.wantError, failed.Error)

			assert.Equal(t, models.MaxGiftsPerAddress, remaining(t, router, clientA))

			entries, err := os.ReadDir(h.files.UploadsDir)
			require.NoError(t, err)
			assert.Empty(t, entries, "rejected uploads must not stay on disk")
		})
	}
}

func TestCreateGift_BodyOverLimit(t *testing.T) {
	_, router := newTestRouter(t, func(cfg *config.StructuredConfig) {
		cfg.Storage.Files.MaxFileSize = 16
	})

	big := append(append([]byte{}, pngBytes...), make([]byte, formOverhead+1024)...)
	rec := postGift(t, router, clientA, "Hi", "stars", &imagePart{name: "big.png", contentType: "image/png", data: big})

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgFileTooLarge, decode[models.Response](t, rec).Error)
}

func TestCreateGift_NotMultipart(t *testing.T) {
	_, router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/gifts", bytes.NewBufferString(`{"message":"hi","theme":"stars"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidFormData, decode[models.Response](t, rec).Error)
}

func TestCreateGift_ConcurrentLastSlot(t *testing.T) {
	_, router := newTestRouter(t, nil)

	for i := 0; i < models.MaxGiftsPerAddress-1; i++ {
		require.Equal(t, http.StatusOK, postGift(t, router, clientA, "Hi", "stars", nil).Code)
	}

	const attempts = 10
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, contentType := giftForm(t, "Race", "stars", nil)
			req := httptest.NewRequest(http.MethodPost, "/api/gifts", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("X-Forwarded-For", clientA)
			statuses[i] = doRequest(router, req).Code
		}(i)
	}
	wg.Wait()

	var ok, limited int
	for _, status := range statuses {
		switch status {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, limited)
	assert.Equal(t, 0, remaining(t, router, clientA))
}

// ─────────────────────────────────────────────
// getGift
// ─────────────────────────────────────────────

func TestGetGift_UnknownID(t *testing.T) {
	_, router := newTestRouter(t, nil)

	rec := getJSON(router, "/api/gifts/does-not-exist", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	failed := decode[models.Response](t, rec)
	assert.False(t, failed.Success)
	assert.Equal(t, app.MsgGiftNotFound, failed.Error)
}

// ─────────────────────────────────────────────
// giftURL
// ─────────────────────────────────────────────

func TestGiftURL(t *testing.T) {
	tests := []struct {
		name      string
		publicURL string
		target    string
		tls       bool
		want      string
	}{
		{"request host", "", "http://localhost:3005/api/gifts", false, "http://localhost:3005/gift/g1"},
		{"tls request", "", "https://gifts.local/api/gifts", true, "https://gifts.local/gift/g1"},
		{"public url wins", "https://public.example", "http://localhost:3005/api/gifts", false, "https://public.example/gift/g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{app: config.App{PublicURL: tt.publicURL}}
			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if !tt.tls {
				req.TLS = nil
			}
			assert.Equal(t, tt.want, h.giftURL(req, "g1"))
		})
	}
}
