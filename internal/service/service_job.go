// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/stagehaus/zoho-sync/internal/logger"
)

const defaultJobInterval = 5 * time.Minute

type tickerJob struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTickerJob creates a Job that calls fn every interval. The job is idle
// until Start is called. A non-positive interval defaults to 5 minutes.
func NewTickerJob(name string, interval time.Duration, fn func(ctx context.Context) error, logger *logger.Logger) Job {
	if interval <= 0 {
		interval = defaultJobInterval
	}
	return &tickerJob{name: name, interval: interval, fn: fn, logger: logger}
}

// Start implements Job. It stops any previously running loop, then launches
// a goroutine that calls fn on every tick until ctx is cancelled or Stop is
// called. Errors returned by fn are logged and do not stop the loop.
func (j *tickerJob) Start(ctx context.Context) error {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(logger.EnsureContext(ctx, j.logger))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()

	logger.FromContext(jobCtx).Info().
		Str("func", "tickerJob.Start").
		Str("job", j.name).
		Dur("interval", j.interval).
		Msg("job started")
	return nil
}

func (j *tickerJob) tick(ctx context.Context) {
	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("func", "tickerJob.tick").
				Str("job", j.name).
				Interface("panic", r).
				Msg("job run panicked")
		}
	}()

	if err := j.fn(ctx); err != nil && ctx.Err() == nil {
		log.Err(err).
			Str("func", "tickerJob.tick").
			Str("job", j.name).
			Msg("job run failed")
	}
}

// Stop implements Job. It cancels the loop and blocks until the goroutine
// has exited. Safe to call when the job is not running.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
