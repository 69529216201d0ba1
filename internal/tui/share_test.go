// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-scratch-gift/internal/app"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGiftURL = "http://localhost:3005/gift/0b8e5c1e-7d2a-4c8a-9b0c-1f2e3d4c5b6a"

func TestWhatsAppLink(t *testing.T) {
	link := whatsAppLink(testGiftURL)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, shareIntro+testGiftURL, parsed.Query().Get("text"))
}

func TestMailtoLink(t *testing.T) {
	link := mailtoLink(testGiftURL)

	assert.Contains(t, link, "subject=A%20Christmas%20Gift%20for%20You")
	assert.NotContains(t, link, "+")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mailto", parsed.Scheme)
	assert.Equal(t, shareText(testGiftURL), parsed.Query().Get("body"))
}

func TestShareView(t *testing.T) {
	view := newShareModel(testGiftURL).View("Link copied to clipboard")

	assert.Contains(t, view, testGiftURL)
	assert.Contains(t, view, "Link copied to clipboard")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "quota", err: store.ErrQuotaExceeded, want: app.MsgQuotaExceeded},
		{name: "not found wrapped", err: fmt.Errorf("get: %w", store.ErrGiftNotFound), want: app.MsgGiftNotFound},
		{name: "empty message", err: service.ErrEmptyMessage, want: "Please write a message"},
		{name: "no theme", err: service.ErrThemeNotSelected, want: "Please select a theme"},
		{name: "bad image", err: service.ErrUnsupportedImageType, want: "Only JPEG, PNG and GIF images are allowed"},
		{name: "rate limit", err: service.ErrRateLimited, want: app.MsgTooManyRequests},
		{name: "bad link", err: service.ErrInvalidGiftRef, want: "This does not look like a gift link"},
		{name: "network", err: errors.New("Get \"http://x\": dial tcp: connection refused"), want: msgServerUnavailable},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: msgServerUnavailable},
		{name: "other", err: errors.New("something odd"), want: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestHumanizeError_OpeningImage(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrOpeningImage, errors.New("open /tmp/x.png: no such file or directory"))

	got := humanizeError(err)

	assert.Contains(t, got, "Cannot open the image")
	assert.Contains(t, got, "/tmp/x.png")
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ёжи", fitText("ёжик", 3))
	assert.Equal(t, "-", valueOrDash("  "))
	assert.Equal(t, "You have used all 3 gifts", quotaLine(0, 3))
	assert.Equal(t, "Gifts remaining: 1 of 3", quotaLine(1, 3))

	assert.Equal(t, []string{"hello", "world"}, wrapText("hello world", 7))
	assert.Equal(t, []string{"hello world"}, wrapText("hello world", 11))
	assert.Equal(t, []string{"abcd", "ef"}, wrapText("abcdef", 4))
	assert.Equal(t, []string{"a", "", "b"}, wrapText("a\n\nb", 4))
	assert.Nil(t, wrapText("x", 0))
}
