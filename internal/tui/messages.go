// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-scratch-gift/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type openGiftMsg struct {
	ref string
}

type giftLoadedMsg struct {
	gift     models.Gift
	imageURL string
	err      error
}

type quotaLoadedMsg struct {
	quota models.RemainingQuotaResponse
	err   error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type giftCreatedMsg struct {
	created models.CreateGiftResponse
	err     error
}

type historyForgottenMsg struct {
	err error
}

type copiedMsg struct {
	what string
}

type clipboardErrMsg struct {
	err error
}

type clearStatusMsg struct{}

type hideOverlayMsg struct{}
