// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
)

// defaultSweepInterval is used when the configured interval is not positive.
const defaultSweepInterval = 24 * time.Hour

type sweepWorker struct {
	sweeper  Sweeper
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSweepWorker creates a worker that calls sweeper.SweepExpired every
// interval. The first sweep happens one interval after Start.
func NewSweepWorker(sweeper Sweeper, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &sweepWorker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Start implements Worker. Any previously running sweep loop is stopped
// first.
func (w *sweepWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("gift sweep worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				removed := w.sweeper.SweepExpired(jobCtx)
				w.logger.Info().Int("removed", removed).Msg("expired gifts swept")
			}
		}
	}()
}

// Stop implements Worker.
func (w *sweepWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
