// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/models"
)

func (m createModel) View() string {
	switch {
	case m.showError:
		return m.errorOverlay.View()
	case m.share != nil:
		return m.share.View(m.status)
	case m.showConfirm:
		return m.confirm.View()
	}

	var b strings.Builder

	switch {
	case m.quotaErr != "":
		b.WriteString(errorStyle.Render("Quota unavailable: " + m.quotaErr))
	case m.quota != nil:
		b.WriteString(quotaLine(m.quota.Remaining, m.quota.Total))
	default:
		b.WriteString(helpStyle.Render("Checking your gift quota..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.label("Message", fieldMessage))
	b.WriteString("\n")
	b.WriteString(m.message.View())
	b.WriteString("\n\n")

	b.WriteString(m.label("Theme", fieldTheme))
	b.WriteString("\n")
	b.WriteString(m.themesView())
	b.WriteString("\n\n")

	b.WriteString(m.label("Image", fieldImage))
	b.WriteString("\n")
	b.WriteString(m.image.View())
	b.WriteString("\n\n")

	switch {
	case m.submitting:
		b.WriteString(m.spinner.View() + " Creating your gift...")
	case m.quotaExhausted():
		b.WriteString(errorStyle.Render("Limit reached: no more gifts can be created"))
	default:
		b.WriteString(focusStyle.Render("ctrl+s: create gift"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(m.label("Your gifts", fieldHistory))
	b.WriteString("\n")
	b.WriteString(m.historyView())

	return appStyle.Render(renderPage("SCRATCH GIFT · NEW GIFT", b.String(), m.hotKeys()))
}

func (m createModel) label(name string, field createField) string {
	if m.focus == field {
		return focusStyle.Render("> " + name)
	}
	return "  " + name
}

func (m createModel) themesView() string {
	parts := make([]string, 0, len(models.Themes))
	for i, theme := range models.Themes {
		look := lookOf(theme)
		if i == m.themeIdx {
			parts = append(parts, look.style.Bold(true).Render("["+look.title+"]"))
			continue
		}
		parts = append(parts, " "+look.title+" ")
	}

	view := strings.Join(parts, " ")
	if m.themeIdx == noTheme {
		view += "\n" + helpStyle.Render("no theme selected")
	}
	return view
}

func (m createModel) historyView() string {
	if m.historyErr != "" {
		return errorStyle.Render(m.historyErr)
	}
	if len(m.history) == 0 {
		return helpStyle.Render("No gifts yet")
	}

	var b strings.Builder
	for i, entry := range m.history {
		cursor := "  "
		if m.focus == fieldHistory && i == m.historyIdx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%-8s %s  %s\n",
			cursor,
			entry.Theme,
			entry.CreatedAt.Local().Format("02 Jan 2006"),
			fitText(valueOrDash(entry.Preview), 40),
		)
	}

	if entry, ok := m.currentEntry(); ok && m.focus == fieldHistory {
		b.WriteString(helpStyle.Render(entry.GiftURL))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m createModel) hotKeys() string {
	switch m.focus {
	case fieldTheme:
		return "←/→: choose theme · tab: next field · q: quit"
	case fieldHistory:
		return "↑/↓: select · enter: open · c: copy link · d: remove · tab: next field · q: quit"
	default:
		return "tab: next field · ctrl+s: create gift"
	}
}
