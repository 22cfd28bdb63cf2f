// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/metrics"
	"github.com/stagehaus/zoho-sync/internal/poller"
	"github.com/stagehaus/zoho-sync/models"
)

// PollLoop runs a ChangePoller on a fixed interval and applies what it finds.
type PollLoop struct {
	poller      poller.ChangePoller
	syncService SyncService
	report      string
	job         Job

	stopped atomic.Bool
	logger  *logger.Logger
}

// NewPollLoop builds a loop applying polls of p to report.
func NewPollLoop(p poller.ChangePoller, syncService SyncService, report string, interval time.Duration, logger *logger.Logger) *PollLoop {
	l := &PollLoop{
		poller:      p,
		syncService: syncService,
		report:      report,
		logger:      logger,
	}
	l.job = NewTickerJob("poll", interval, l.RunOnce, logger)
	return l
}

// Start implements Job. The poller is initialized before the first tick.
func (l *PollLoop) Start(ctx context.Context) error {
	if l.poller == nil || l.report == "" {
		return ErrPollerNotConfigured
	}
	ctx = logger.EnsureContext(ctx, l.logger)
	if err := l.poller.Init(ctx); err != nil {
		return err
	}
	l.stopped.Store(false)
	return l.job.Start(ctx)
}

// RunOnce polls once and applies the detected records.
func (l *PollLoop) RunOnce(ctx context.Context) error {
	if l.poller == nil {
		return ErrPollerNotConfigured
	}
	if l.stopped.Load() {
		return nil
	}

	name := l.poller.Name()
	records, err := l.poller.Poll(ctx)
	if err != nil {
		metrics.PollCycles.WithLabelValues(name, "error").Inc()
		return err
	}
	if len(records) == 0 {
		metrics.PollCycles.WithLabelValues(name, "empty").Inc()
		return nil
	}
	metrics.PollCycles.WithLabelValues(name, "changes").Inc()

	_, err = l.syncService.ApplyPolledRecords(ctx, l.report, records, models.SyncType(name))
	return err
}

// Stop implements Job.
func (l *PollLoop) Stop() {
	l.stopped.Store(true)
	l.job.Stop()
	if l.poller == nil {
		return
	}
	if err := l.poller.Close(); err != nil {
		l.logger.Warn().Err(err).Str("func", "PollLoop.Stop").Msg("failed to close poller")
	}
}
