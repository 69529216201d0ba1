// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
	"github.com/MKhiriev/go-scratch-gift/internal/tui"
)

// healthTimeout bounds the startup server check.
const healthTimeout = 3 * time.Second

var (
	errNoServices = errors.New("client services are not created")
	errNoUI       = errors.New("ui is not created")
)

type App struct {
	services *service.ClientServices
	ui       UI
	giftRef  string

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, giftRef string, logger *logger.Logger) (*App, error) {
	if services == nil || services.GiftService == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{services: services, ui: ui, giftRef: giftRef, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.checkServer(ctx)

	err := a.ui.Run(ctx, a.giftRef)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}

	return err
}

// checkServer only logs: the UI reports request failures to the user itself.
func (a *App) checkServer(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	health, err := a.services.GiftService.ServerHealth(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("gift server is not reachable")
		return
	}

	a.logger.Info().Str("status", health.Status).Str("server_version", health.Version).Msg("gift server is reachable")
}
