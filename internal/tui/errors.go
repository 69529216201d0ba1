// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
)

const msgServerUnavailable = "Network error: please make sure the server is running"

var errorMessages = []struct {
	target  error
	message string
}{
	{store.ErrQuotaExceeded, app.MsgQuotaExceeded},
	{store.ErrGiftNotFound, app.MsgGiftNotFound},
	{service.ErrEmptyMessage, "Please write a message"},
	{service.ErrThemeNotSelected, "Please select a theme"},
	{service.ErrUnknownTheme, app.MsgInvalidTheme},
	{service.ErrUnsupportedImageType, "Only JPEG, PNG and GIF images are allowed"},
	{service.ErrImageTooLarge, "The image is too large"},
	{service.ErrRateLimited, app.MsgTooManyRequests},
	{service.ErrInvalidGiftRef, "This does not look like a gift link"},
}

// humanizeError turns a client service error into the text shown in the
// error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, e := range errorMessages {
		if errors.Is(err, e.target) {
			return e.message
		}
	}

	if errors.Is(err, service.ErrOpeningImage) {
		return "Cannot open the image: " + err.Error()
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
