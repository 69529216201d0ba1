// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/store"
	"github.com/MKhiriev/go-scratch-gift/internal/validators"
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type createField int

const (
	fieldMessage createField = iota
	fieldTheme
	fieldImage
	fieldHistory

	fieldCount
)

const (
	// historyLimit is how many history entries the create page lists.
	historyLimit = 10

	noTheme = -1
)

// createModel is the gift creation page: form, quota, share modal and the
// local history of created gifts.
type createModel struct {
	ctx       context.Context
	svc       service.ClientGiftService
	validator validators.Validator

	message  textarea.Model
	image    textinput.Model
	themeIdx int
	focus    createField

	submitting bool
	spinner    spinner.Model

	quota    *models.RemainingQuotaResponse
	quotaErr string

	history    []models.HistoryEntry
	historyIdx int
	historyErr string

	share  *shareModel
	status string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingForget string
}

func newCreateModel(ctx context.Context, svc service.ClientGiftService) createModel {
	message := textarea.New()
	message.Placeholder = "Write your holiday message..."
	message.ShowLineNumbers = false
	message.CharLimit = 1000
	message.SetWidth(56)
	message.SetHeight(4)
	message.Focus()

	image := textinput.New()
	image.Placeholder = "optional: path to a .jpg, .png or .gif"
	image.CharLimit = 4096
	image.Width = 54

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return createModel{
		ctx:       ctx,
		svc:       svc,
		validator: validators.NewGiftValidator(0),
		message:   message,
		image:     image,
		themeIdx:  noTheme,
		focus:     fieldMessage,
		spinner:   sp,
	}
}

func (m createModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdLoadQuota(), m.cmdLoadHistory())
}

func (m createModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := min(max(msg.Width-8, 20), 80)
		m.message.SetWidth(width)
		m.image.Width = width - 2
		return m, nil

	case quotaLoadedMsg:
		if msg.err != nil {
			m.quota = nil
			m.quotaErr = humanizeError(msg.err)
			return m, nil
		}
		quota := msg.quota
		m.quota = &quota
		m.quotaErr = ""
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.historyErr = humanizeError(msg.err)
			return m, nil
		}
		m.history = msg.entries
		m.historyErr = ""
		m.historyIdx = max(0, min(m.historyIdx, len(m.history)-1))
		return m, nil

	case giftCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.setError(humanizeError(msg.err))
			if errors.Is(msg.err, store.ErrQuotaExceeded) {
				return m, m.cmdLoadQuota()
			}
			return m, nil
		}

		m.share = newShareModel(msg.created.GiftURL)
		m.status = ""
		focusCmd := m.resetForm()
		return m, tea.Batch(focusCmd, m.cmdLoadQuota(), m.cmdLoadHistory())

	case historyForgottenMsg:
		if msg.err != nil {
			m.setError(humanizeError(msg.err))
		}
		return m, m.cmdLoadHistory()

	case copiedMsg:
		m.status = msg.what + " copied to clipboard"
		return m, cmdClearStatus()

	case clipboardErrMsg:
		m.setError(humanizeError(msg.err))
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateFocused(msg)
}

func (m createModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.showError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil

	case m.share != nil:
		return m.updateShare(msg)

	case m.showConfirm:
		if key.Matches(msg, keys.yes) {
			m.showConfirm = false
			giftID := m.pendingForget
			m.pendingForget = ""
			if giftID == "" {
				return m, nil
			}
			return m, m.cmdForget(giftID)
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.showConfirm = false
			m.pendingForget = ""
		}
		return m, nil

	case m.submitting:
		// submit stays disabled while the request is in flight
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, cmd
	case key.Matches(msg, keys.submit):
		return m.submit()
	}

	switch m.focus {
	case fieldTheme:
		switch {
		case key.Matches(msg, keys.left):
			if m.themeIdx <= 0 {
				m.themeIdx = len(models.Themes) - 1
			} else {
				m.themeIdx--
			}
		case key.Matches(msg, keys.right):
			m.themeIdx = (m.themeIdx + 1) % len(models.Themes)
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil

	case fieldImage:
		if key.Matches(msg, keys.enter) {
			return m.submit()
		}

	case fieldHistory:
		return m.updateHistory(msg)
	}

	return m.updateFocused(msg)
}

func (m createModel) updateShare(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	giftURL := m.share.giftURL

	switch {
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(giftURL, "Link")
	case key.Matches(msg, keys.whatsApp):
		return m, cmdCopyToClipboard(whatsAppLink(giftURL), "WhatsApp link")
	case key.Matches(msg, keys.email):
		return m, cmdCopyToClipboard(mailtoLink(giftURL), "E-mail link")
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.share = nil
		m.status = ""
	}

	return m, nil
}

func (m createModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case key.Matches(msg, keys.down):
		if m.historyIdx < len(m.history)-1 {
			m.historyIdx++
		}
	case key.Matches(msg, keys.open):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		nav := NavigateTo{Page: pageReveal, Payload: openGiftMsg{ref: entry.GiftURL}}
		return m, func() tea.Msg { return nav }
	case key.Matches(msg, keys.copy):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(entry.GiftURL, "Link")
	case key.Matches(msg, keys.forget):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = valueOrDash(entry.Preview)
		m.pendingForget = entry.GiftID
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m createModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	case fieldImage:
		m.image, cmd = m.image.Update(msg)
	}

	return m, cmd
}

func (m createModel) submit() (tea.Model, tea.Cmd) {
	form := m.form()
	if err := m.validator.Validate(m.ctx, form); err != nil {
		m.setError(humanizeError(err))
		return m, nil
	}

	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, m.cmdCreateGift(form))
}

func (m createModel) form() models.NewGiftForm {
	form := models.NewGiftForm{
		Message:   m.message.Value(),
		ImagePath: strings.TrimSpace(m.image.Value()),
	}
	if m.themeIdx >= 0 && m.themeIdx < len(models.Themes) {
		form.Theme = models.Themes[m.themeIdx]
	}
	return form
}

func (m *createModel) setFocus(field createField) tea.Cmd {
	m.focus = field
	m.message.Blur()
	m.image.Blur()

	switch field {
	case fieldMessage:
		return m.message.Focus()
	case fieldImage:
		return m.image.Focus()
	}
	return nil
}

func (m *createModel) resetForm() tea.Cmd {
	m.message.Reset()
	m.image.Reset()
	m.themeIdx = noTheme
	return m.setFocus(fieldMessage)
}

func (m *createModel) setError(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m createModel) currentEntry() (models.HistoryEntry, bool) {
	if m.historyIdx < 0 || m.historyIdx >= len(m.history) {
		return models.HistoryEntry{}, false
	}
	return m.history[m.historyIdx], true
}

func (m createModel) quotaExhausted() bool {
	return m.quota != nil && m.quota.Remaining <= 0
}

func (m createModel) cmdLoadQuota() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		quota, err := svc.RemainingQuota(ctx)
		return quotaLoadedMsg{quota: quota, err: err}
	}
}

func (m createModel) cmdLoadHistory() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		entries, err := svc.History(ctx, historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m createModel) cmdCreateGift(form models.NewGiftForm) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		created, err := svc.CreateGift(ctx, form)
		return giftCreatedMsg{created: created, err: err}
	}
}

func (m createModel) cmdForget(giftID string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		return historyForgottenMsg{err: svc.ForgetGift(ctx, giftID)}
	}
}
