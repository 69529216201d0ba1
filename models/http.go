// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// CreateGiftRequest carries a validated creation request from the HTTP layer
// to the gift service.
type CreateGiftRequest struct {
	// Message is the gift text, already trimmed.
	Message string

	// Theme is the selected decoration.
	Theme Theme

	// Image is the optional uploaded attachment.
	Image *ImageUpload

	// CreatorAddress is the resolved client address of the caller.
	CreatorAddress string
}

// ImageUpload describes a single image attachment of a creation request.
type ImageUpload struct {
	// FileName is the name supplied by the client. Only its extension is kept.
	FileName string

	// ContentType is the declared MIME type of the part.
	ContentType string

	// Size is the length of the attachment in bytes.
	Size int64

	// Content streams the attachment bytes.
	Content io.Reader
}

// NewGiftForm is the client-side state of the creation form before it is
// sent to the server.
type NewGiftForm struct {
	Message string

	// Theme is empty until the user selects one.
	Theme Theme

	// ImagePath is an optional local file path of the attached image.
	ImagePath string
}

// GiftUpload is the multipart payload the client sends to POST /api/gifts.
type GiftUpload struct {
	Message string
	Theme   Theme

	// ImageName is the base name sent as the part file name. Empty when the
	// gift has no image.
	ImageName string

	// Image streams the attachment bytes. Nil when the gift has no image.
	Image io.Reader
}
