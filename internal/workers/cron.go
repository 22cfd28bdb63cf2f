// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stagehaus/zoho-sync/internal/logger"
)

// cronWorker calls fn on a standard five-field cron schedule.
type cronWorker struct {
	name     string
	spec     string
	schedule cron.Schedule
	location *time.Location
	fn       func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

func newCronWorker(name, spec string, location *time.Location, fn func(ctx context.Context) error, logger *logger.Logger) (*cronWorker, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, spec, err)
	}
	if location == nil {
		location = time.Local
	}
	return &cronWorker{
		name:     name,
		spec:     spec,
		schedule: schedule,
		location: location,
		fn:       fn,
		logger:   logger,
	}, nil
}

// Start implements Worker. A run still executing when the next one is due
// is skipped rather than stacked.
func (w *cronWorker) Start(ctx context.Context) error {
	w.Stop()

	ctx = logger.EnsureContext(ctx, w.logger)
	runCtx, cancel := context.WithCancel(ctx)

	c := cron.New(
		cron.WithLocation(w.location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	c.Schedule(w.schedule, cron.FuncJob(func() { w.run(runCtx) }))

	w.mu.Lock()
	w.cron = c
	w.cancel = cancel
	w.mu.Unlock()

	c.Start()

	logger.FromContext(ctx).Info().
		Str("func", "cronWorker.Start").
		Str("job", w.name).
		Str("schedule", w.spec).
		Time("next", w.schedule.Next(time.Now().In(w.location))).
		Msg("cron job scheduled")
	return nil
}

func (w *cronWorker) run(ctx context.Context) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "cronWorker.run").
				Str("job", w.name).
				Interface("panic", r).
				Msg("cron run panicked")
		}
	}()

	if err := w.fn(ctx); err != nil && ctx.Err() == nil {
		log.Err(err).
			Str("func", "cronWorker.run").
			Str("job", w.name).
			Msg("cron run failed")
	}
}

// Stop implements Worker. It waits for a run in progress to return.
func (w *cronWorker) Stop() {
	w.mu.Lock()
	c, cancel := w.cron, w.cancel
	w.cron, w.cancel = nil, nil
	w.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
}
