// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/stretchr/testify/require"
)

// pngBytes is enough for content sniffing to report image/png.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{Mode: config.ModeProduction, Version: "1.0.0-test"},
		Storage: config.Storage{
			Files: config.Files{UploadsDir: t.TempDir(), MaxFileSize: 1024},
		},
		Server: config.Server{
			RequestTimeout:  time.Second,
			RateLimitWindow: time.Minute,
			RateLimitMax:    1000,
		},
	}
}

// newTestRouter wires the real services over in-memory storages. mutate may
// adjust the configuration before anything is built.
func newTestRouter(t *testing.T, mutate func(cfg *config.StructuredConfig)) (*Handler, http.Handler) {
	t.Helper()

	cfg := testConfig(t)
	if mutate != nil {
		mutate(cfg)
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, cfg, logger.Nop())
	return h, h.Init()
}

type imagePart struct {
	name        string
	contentType string
	data        []byte
}

// giftForm builds a multipart creation body. A nil image leaves the part out.
func giftForm(t *testing.T, message, theme string, image *imagePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("message", message))
	require.NoError(t, mw.WriteField("theme", theme))

	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, image.name))
		header.Set("Content-Type", image.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image.data)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postGift(t *testing.T, router http.Handler, address, message, theme string, image *imagePart) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := giftForm(t, message, theme, image)
	req := httptest.NewRequest(http.MethodPost, "/api/gifts", body)
	req.Header.Set("Content-Type", contentType)
	if address != "" {
		req.Header.Set("X-Forwarded-For", address)
	}
	return doRequest(router, req)
}

func getJSON(router http.Handler, path, address string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if address != "" {
		req.Header.Set("X-Forwarded-For", address)
	}
	return doRequest(router, req)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
