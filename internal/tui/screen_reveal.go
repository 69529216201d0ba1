// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"image"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/scratch"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Card position on screen; it must match the rows written by View above the card.
const (
	cardTop  = 4
	cardLeft = 2

	defaultCardWidth  = 60
	defaultCardHeight = 12
)

// revealModel shows one gift under a scratch overlay.
type revealModel struct {
	ctx    context.Context
	svc    service.ClientGiftService
	logger *logger.Logger

	loading  bool
	spinner  spinner.Model
	progress progress.Model

	gift     *models.Gift
	imageURL string
	surface  *scratch.Surface

	revealed      bool
	overlayHidden bool

	width, height int
	status        string

	showError    bool
	errorOverlay errorOverlayModel
}

func newRevealModel(ctx context.Context, svc service.ClientGiftService, logger *logger.Logger) revealModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = defaultCardWidth

	return revealModel{
		ctx:      ctx,
		svc:      svc,
		logger:   logger,
		spinner:  sp,
		progress: bar,
	}
}

func (m revealModel) Init() tea.Cmd {
	return nil
}

func (m revealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openGiftMsg:
		m.gift = nil
		m.imageURL = ""
		m.surface = nil
		m.revealed = false
		m.overlayHidden = false
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadGift(msg.ref))

	case giftLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setError(humanizeError(msg.err))
			return m, nil
		}

		gift := msg.gift
		m.gift = &gift
		m.imageURL = msg.imageURL

		width, height := m.cardSize()
		log := m.logger
		m.surface = scratch.New(width, height, scratch.Options{
			OnReveal: func() { log.Info().Str("gift_id", gift.ID).Msg("gift revealed") },
		})
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		width, height := m.cardSize()
		m.progress.Width = width
		if m.surface != nil && m.surface.Bounds().Size() != image.Pt(width, height) {
			m.surface.Resize(width, height)
		}
		return m, nil

	case hideOverlayMsg:
		m.overlayHidden = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		m.status = msg.what + " copied to clipboard"
		return m, cmdClearStatus()

	case clipboardErrMsg:
		m.setError(humanizeError(msg.err))
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m revealModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
			return m, navigate(pageCreate)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageCreate)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		if m.revealed && m.imageURL != "" {
			return m, cmdCopyToClipboard(m.imageURL, "Image link")
		}
	}

	return m, nil
}

// updateMouse maps left-button drags on the card to scratch strokes.
func (m revealModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.surface == nil || m.overlayHidden || m.showError {
		return m, nil
	}

	p := image.Pt(msg.X-cardLeft, msg.Y-cardTop)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.surface.Begin(p)
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.surface.Stroking() {
			m.surface.Begin(p)
		}
		m.surface.Move(p)
	case tea.MouseActionRelease:
		m.surface.End()
	}

	if m.surface.Revealed() && !m.revealed {
		m.revealed = true
		return m, tea.Tick(scratch.HideDelay, func(time.Time) tea.Msg {
			return hideOverlayMsg{}
		})
	}

	return m, nil
}

func (m revealModel) cardSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return defaultCardWidth, defaultCardHeight
	}

	width = min(max(m.width-2*cardLeft, 20), 72)
	height = min(max(m.height-cardTop-4, 6), 18)
	return width, height
}

func (m *revealModel) setError(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m revealModel) cmdLoadGift(ref string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		gift, err := svc.GetGift(ctx, ref)
		if err != nil {
			return giftLoadedMsg{err: err}
		}
		return giftLoadedMsg{gift: gift, imageURL: svc.ImageURL(gift)}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
