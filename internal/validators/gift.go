// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldMessage targets the gift text.
	FieldMessage = "message"

	// FieldTheme targets the selected decoration.
	FieldTheme = "theme"

	// FieldImageType targets the declared MIME type of the attachment.
	FieldImageType = "image_type"

	// FieldImageSize targets the attachment length.
	FieldImageSize = "image_size"
)

// AllowedImageTypes maps every accepted image MIME type to its canonical
// file extension.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// IsAllowedImageType reports whether contentType (parameters ignored) is one
// of [AllowedImageTypes].
func IsAllowedImageType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, ok := AllowedImageTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}

// GiftValidator validates gift creation input on the server
// ([models.CreateGiftRequest]) and on the client ([models.NewGiftForm]).
type GiftValidator struct {
	maxImageSize int64
}

// NewGiftValidator returns a [Validator] rejecting images larger than
// maxImageSize bytes. A non-positive maxImageSize disables the size check.
func NewGiftValidator(maxImageSize int64) Validator {
	return &GiftValidator{maxImageSize: maxImageSize}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields is empty every field is validated.
func (v *GiftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateGiftRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateGiftRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.NewGiftForm:
		return v.validateForm(ctx, value, fields...)
	case *models.NewGiftForm:
		return v.validateForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GiftValidator) validateCreateRequest(_ context.Context, req models.CreateGiftRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldTheme, FieldImageType, FieldImageSize}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldTheme:
			if !req.Theme.IsValid() {
				return ErrInvalidTheme
			}
		case FieldImageType:
			if req.Image != nil && !IsAllowedImageType(req.Image.ContentType) {
				return ErrUnsupportedImageType
			}
		case FieldImageSize:
			if req.Image != nil && v.maxImageSize > 0 && req.Image.Size > v.maxImageSize {
				return ErrImageTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateForm checks what the client can know before talking to the server.
// Image checks are left to the server, which sniffs the bytes.
func (v *GiftValidator) validateForm(_ context.Context, form models.NewGiftForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldTheme}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(form.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldTheme:
			if form.Theme == "" {
				return ErrThemeNotSelected
			}
			if !form.Theme.IsValid() {
				return ErrInvalidTheme
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
