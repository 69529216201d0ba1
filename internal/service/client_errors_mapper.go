// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/adapter"
	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrQuotaExceeded):
		return store.ErrQuotaExceeded

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrGiftNotFound

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgMessageRequired:
			return ErrEmptyMessage
		case app.MsgInvalidTheme:
			return ErrUnknownTheme
		case app.MsgInvalidFileType:
			return ErrUnsupportedImageType
		case app.MsgFileTooLarge:
			return ErrImageTooLarge
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrImageTooLarge

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrRateLimited

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", ErrServer, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
