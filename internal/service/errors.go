// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-scratch-gift/internal/validators"
)

// Validation errors shared by the server and the client.
var (
	ErrEmptyMessage         = validators.ErrEmptyMessage
	ErrUnknownTheme         = validators.ErrInvalidTheme
	ErrThemeNotSelected     = validators.ErrThemeNotSelected
	ErrUnsupportedImageType = validators.ErrUnsupportedImageType
	ErrImageTooLarge        = validators.ErrImageTooLarge
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidGiftRef = errors.New("invalid gift link")
	ErrRateLimited    = errors.New("too many requests")
	ErrServer         = errors.New("gift server error")
	ErrOpeningImage   = errors.New("error opening image")
)
