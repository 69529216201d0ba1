// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit   = errors.New("user quit")
	errNoServices = errors.New("client services are not created")
)

const (
	pageCreate = "create"
	pageReveal = "reveal"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.GiftService == nil {
		return nil, errNoServices
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run opens the create page, or the reveal page of giftRef when it is set,
// and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, giftRef string) error {
	pages := map[string]tea.Model{
		pageCreate: newCreateModel(ctx, t.services.GiftService),
		pageReveal: newRevealModel(ctx, t.services.GiftService, t.logger),
	}

	root := NewRootModel(pages, pageCreate, t.buildInfo)
	if giftRef != "" {
		root = root.openOnStart(NavigateTo{Page: pageReveal, Payload: openGiftMsg{ref: giftRef}})
	}

	finalModel, err := tea.NewProgram(root,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
