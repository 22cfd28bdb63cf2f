// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/mock"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/models"
)

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Sync: config.Sync{DailyCron: "0 3 * * *"},
		Workers: config.Workers{
			SyncInterval:  time.Hour,
			QueueInterval: time.Hour,
		},
		Poller: config.Poller{Report: "Item_Report", Interval: time.Hour},
	}
}

// fakeWorker records its lifecycle calls.
type fakeWorker struct {
	startErr error
	started  atomic.Int32
	stopped  atomic.Int32
}

func (f *fakeWorker) Start(context.Context) error {
	f.started.Add(1)
	return f.startErr
}

func (f *fakeWorker) Stop() { f.stopped.Add(1) }

// ── NewWorkers ───────────────────────────────────────────────────────────────

func TestNewWorkers_Names(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		SyncService:  mock.NewMockSyncService(ctrl),
		QueueService: mock.NewMockQueueService(ctrl),
	}

	w, err := NewWorkers(services, nil, testConfig(), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"incremental-sync", "queue-drain", "daily-sync"}, w.Names())

	cfg := testConfig()
	cfg.Poller.Enabled = true
	cfg.Sync.DailyCron = ""
	w, err = NewWorkers(services, mock.NewMockChangePoller(ctrl), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"incremental-sync", "queue-drain", "poll"}, w.Names())
}

func TestNewWorkers_InvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		SyncService:  mock.NewMockSyncService(ctrl),
		QueueService: mock.NewMockQueueService(ctrl),
	}
	cfg := testConfig()
	cfg.Sync.DailyCron = "every night"

	_, err := NewWorkers(services, nil, cfg, logger.Nop())

	require.ErrorIs(t, err, ErrInvalidSchedule)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestWorkers_Start_RunsJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockSyncService(ctrl)
	queueService := mock.NewMockQueueService(ctrl)

	synced := make(chan struct{}, 1)
	drained := make(chan struct{}, 1)

	queueService.EXPECT().RecoverStale(gomock.Any()).Return(int64(2), nil)
	syncService.EXPECT().SyncReports(gomock.Any(), gomock.Nil(), models.SyncTypeIncremental).
		DoAndReturn(func(context.Context, []string, models.SyncType) []models.SyncResult {
			select {
			case synced <- struct{}{}:
			default:
			}
			return nil
		}).AnyTimes()
	queueService.EXPECT().ProcessPendingUpdates(gomock.Any()).
		DoAndReturn(func(context.Context) (models.ProcessResult, error) {
			select {
			case drained <- struct{}{}:
			default:
			}
			return models.ProcessResult{}, nil
		}).AnyTimes()

	cfg := testConfig()
	cfg.Workers.SyncInterval = 10 * time.Millisecond
	cfg.Workers.QueueInterval = 10 * time.Millisecond

	w, err := NewWorkers(&service.Services{SyncService: syncService, QueueService: queueService}, nil, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, w.Start(testContext()))
	defer w.Stop()

	for _, ch := range []chan struct{}{synced, drained} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatal("job did not run")
		}
	}
}

func TestWorkers_Start_RecoverFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	queueService := mock.NewMockQueueService(ctrl)
	queueService.EXPECT().RecoverStale(gomock.Any()).Return(int64(0), errors.New("db locked"))

	worker := &fakeWorker{}
	w := &Workers{queue: queueService, logger: logger.Nop()}
	w.add("fake", worker)

	require.NoError(t, w.Start(testContext()))
	assert.Equal(t, int32(1), worker.started.Load())
}

func TestWorkers_Start_RollsBackOnFailure(t *testing.T) {
	first := &fakeWorker{}
	broken := &fakeWorker{startErr: errors.New("no browser")}
	never := &fakeWorker{}

	w := &Workers{logger: logger.Nop()}
	w.add("first", first)
	w.add("broken", broken)
	w.add("never", never)

	err := w.Start(testContext())

	require.ErrorIs(t, err, ErrWorkerStart)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, int32(1), first.stopped.Load())
	assert.Equal(t, int32(0), never.started.Load())
}

func TestWorkers_Stop_AllWorkers(t *testing.T) {
	a, b := &fakeWorker{}, &fakeWorker{}
	w := &Workers{logger: logger.Nop()}
	w.add("a", a)
	w.add("b", b)

	w.Stop()

	assert.Equal(t, int32(1), a.stopped.Load())
	assert.Equal(t, int32(1), b.stopped.Load())
}

func TestWorkers_Stop_Empty(t *testing.T) {
	w := &Workers{}

	// Should not panic when no workers are configured
	w.Stop()
}

// ── cronWorker ───────────────────────────────────────────────────────────────

func TestCronWorker_StartStop(t *testing.T) {
	calls := atomic.Int32{}
	w, err := newCronWorker("daily", "0 3 * * *", time.UTC, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, w.Start(testContext()))
	require.NoError(t, w.Start(testContext()))
	w.Stop()
	w.Stop()

	assert.Equal(t, int32(0), calls.Load())
}

func TestCronWorker_RunRecoversPanic(t *testing.T) {
	w, err := newCronWorker("daily", "@daily", nil, func(context.Context) error {
		panic("boom")
	}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, time.Local, w.location)

	assert.NotPanics(t, func() { w.run(testContext()) })
}

func TestCronWorker_Schedule(t *testing.T) {
	w, err := newCronWorker("daily", "0 3 * * *", time.UTC, func(context.Context) error { return nil }, logger.Nop())
	require.NoError(t, err)

	next := w.schedule.Next(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC), next)
}
