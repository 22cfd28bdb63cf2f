// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/poller"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/models"
)

type namedWorker struct {
	name string
	Worker
}

// Workers starts and stops the background workers as one unit.
type Workers struct {
	queue   service.QueueService
	workers []namedWorker
	logger  *logger.Logger
}

// NewWorkers wires the background workers of the service. p may be nil, in
// which case no poll loop runs.
func NewWorkers(services *service.Services, p poller.ChangePoller, cfg config.StructuredConfig, logger *logger.Logger) (*Workers, error) {
	syncService := services.SyncService
	queueService := services.QueueService

	w := &Workers{queue: queueService, logger: logger}

	w.add("incremental-sync", service.NewTickerJob("incremental-sync", cfg.Workers.SyncInterval,
		syncAll(syncService, models.SyncTypeIncremental), logger))

	w.add("queue-drain", service.NewTickerJob("queue-drain", cfg.Workers.QueueInterval,
		func(ctx context.Context) error {
			_, err := queueService.ProcessPendingUpdates(ctx)
			return err
		}, logger))

	if cfg.Sync.DailyCron != "" {
		daily, err := newCronWorker("daily-sync", cfg.Sync.DailyCron, nil,
			syncAll(syncService, models.SyncTypeDaily), logger)
		if err != nil {
			return nil, err
		}
		w.add("daily-sync", daily)
	}

	if cfg.Poller.Enabled && p != nil {
		w.add("poll", service.NewPollLoop(p, syncService, cfg.Poller.Report, cfg.Poller.Interval, logger))
	}

	return w, nil
}

func (w *Workers) add(name string, worker Worker) {
	w.workers = append(w.workers, namedWorker{name: name, Worker: worker})
}

// syncAll runs mode over every configured report. Per-report failures are
// already logged and recorded by the sync service.
func syncAll(syncService service.SyncService, mode models.SyncType) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		syncService.SyncReports(ctx, nil, mode)
		return ctx.Err()
	}
}

// Start recovers queue rows stranded by a previous crash, then starts every
// worker. If one fails to start, the ones already running are stopped.
func (w *Workers) Start(ctx context.Context) error {
	ctx = logger.EnsureContext(ctx, w.logger)
	log := logger.FromContext(ctx)

	if w.queue != nil {
		if _, err := w.queue.RecoverStale(ctx); err != nil {
			log.Err(err).
				Str("func", "Workers.Start").
				Msg("failed to recover stale queue rows")
		}
	}

	for i, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				w.workers[j].Stop()
			}
			return fmt.Errorf("%w %s: %w", ErrWorkerStart, worker.name, err)
		}
	}

	log.Info().
		Str("func", "Workers.Start").
		Int("count", len(w.workers)).
		Msg("workers started")
	return nil
}

// Stop stops every worker in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Names returns the names of the configured workers in start order.
func (w *Workers) Names() []string {
	names := make([]string, 0, len(w.workers))
	for _, worker := range w.workers {
		names = append(names, worker.name)
	}
	return names
}
