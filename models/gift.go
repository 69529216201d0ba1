// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// MaxGiftsPerAddress is the number of live gifts a single client address
	// may own at any moment.
	MaxGiftsPerAddress = 3

	// GiftLifetime is the age after which a gift is removed by the sweep.
	GiftLifetime = 30 * 24 * time.Hour
)

// Gift is a message/image/theme bundle revealed through a scratch card.
//
// A Gift is immutable once stored; the only lifecycle transition after
// creation is deletion by the expiry sweep.
type Gift struct {
	// ID is the opaque unique identifier used in share links.
	ID string `json:"id"`

	// Message is the text revealed to the recipient.
	Message string `json:"message"`

	// ImageURL is the relative path of the uploaded image
	// (e.g. "/uploads/<uuid>.png"). Empty when the gift has no image.
	ImageURL string `json:"imageUrl,omitempty"`

	// Theme selects the decoration of the reveal page.
	Theme Theme `json:"theme"`

	// CreatedAt is the moment the gift was stored.
	CreatedAt time.Time `json:"createdAt"`

	// CreatorAddress is the resolved client address of the creator. It drives
	// the per-address quota and is never sent to API clients.
	CreatorAddress string `json:"-"`
}

// HasImage reports whether the gift references an uploaded image.
func (g Gift) HasImage() bool {
	return g.ImageURL != ""
}

// ExpiredAt reports whether the gift is older than [GiftLifetime] at now.
func (g Gift) ExpiredAt(now time.Time) bool {
	return now.Sub(g.CreatedAt) > GiftLifetime
}
