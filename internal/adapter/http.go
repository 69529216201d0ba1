// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/utils"
	"github.com/MKhiriev/go-scratch-gift/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

// CreateGift implements [ServerAdapter]. It POSTs a multipart form with the
// "message" and "theme" fields and, when upload.Image is set, an "image" file
// part.
func (h *httpServerAdapter) CreateGift(ctx context.Context, upload models.GiftUpload) (models.CreateGiftResponse, error) {
	var created models.CreateGiftResponse

	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"message": upload.Message,
			"theme":   upload.Theme.String(),
		}).
		SetResult(&created)

	if upload.Image != nil {
		req.SetFileReader("image", upload.ImageName, upload.Image)
	}

	resp, err := req.Post("/api/gifts")
	if err != nil {
		return models.CreateGiftResponse{}, fmt.Errorf("create gift request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Int("status", resp.StatusCode()).Msg("create gift rejected")
		return models.CreateGiftResponse{}, err
	}

	return created, nil
}

// GetGift implements [ServerAdapter].
func (h *httpServerAdapter) GetGift(ctx context.Context, id string) (models.Gift, error) {
	var found models.GiftResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&found).
		Get("/api/gifts/{id}")
	if err != nil {
		return models.Gift{}, fmt.Errorf("get gift request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Gift{}, err
	}

	return found.Gift, nil
}

// RemainingQuota implements [ServerAdapter].
func (h *httpServerAdapter) RemainingQuota(ctx context.Context) (models.RemainingQuotaResponse, error) {
	var quota models.RemainingQuotaResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&quota).
		Get("/api/gifts/remaining")
	if err != nil {
		return models.RemainingQuotaResponse{}, fmt.Errorf("remaining quota request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemainingQuotaResponse{}, err
	}

	return quota, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}
