// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-scratch-gift/internal/config"
	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{
		workers: []Worker{
			NewSweepWorker(services.GiftService, cfg.SweepInterval, logger),
		},
	}
}

// Start launches every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker and waits for all of them.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
