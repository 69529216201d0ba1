// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	shareSubject = "A Christmas Gift for You"
	shareIntro   = "I created a Christmas gift for you! Open it here: "
)

// shareModel is the modal shown after a gift was created.
type shareModel struct {
	giftURL string
}

func newShareModel(giftURL string) *shareModel {
	return &shareModel{giftURL: giftURL}
}

func (m shareModel) View(status string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Your gift is ready!"))
	b.WriteString("\n\n")
	b.WriteString("Share this link:\n")
	b.WriteString(focusStyle.Render(m.giftURL))
	b.WriteString("\n\n")
	if status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("c: copy link · w: copy WhatsApp link · e: copy e-mail link · esc: close"))

	return overlayBoxStyle.Render(b.String())
}

func shareText(giftURL string) string {
	return shareIntro + giftURL
}

// whatsAppLink opens a WhatsApp chat prefilled with the gift link.
func whatsAppLink(giftURL string) string {
	return "https://wa.me/?text=" + url.QueryEscape(shareText(giftURL))
}

// mailtoLink opens a new e-mail with the gift link in the body.
func mailtoLink(giftURL string) string {
	return fmt.Sprintf("mailto:?subject=%s&body=%s",
		mailEscape(shareSubject),
		mailEscape(shareText(giftURL)),
	)
}

// mailEscape percent-encodes v for a mailto header; spaces become %20
// since mail clients do not decode "+".
func mailEscape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clipboardErrMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
