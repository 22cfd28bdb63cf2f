// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehaus/zoho-sync/internal/logger"
)

type counter struct {
	calls atomic.Int64
	err   error
}

func (c *counter) run(context.Context) error {
	c.calls.Add(1)
	return c.err
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestTickerJob_Start_CallsFn(t *testing.T) {
	c := &counter{}
	job := NewTickerJob("test", 10*time.Millisecond, c.run, logger.Nop())

	require.NoError(t, job.Start(context.Background()))
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := c.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "fn should run on every tick, ran %d times", got)
}

func TestTickerJob_Stop_StopsGoroutine(t *testing.T) {
	c := &counter{}
	job := NewTickerJob("test", 10*time.Millisecond, c.run, logger.Nop())

	require.NoError(t, job.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := c.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, c.calls.Load())
}

func TestTickerJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewTickerJob("test", time.Second, (&counter{}).run, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestTickerJob_DefaultInterval(t *testing.T) {
	c := &counter{}
	job := NewTickerJob("test", 0, c.run, logger.Nop())
	assert.Equal(t, defaultJobInterval, job.(*tickerJob).interval)

	require.NoError(t, job.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, c.calls.Load())
}

func TestTickerJob_Restart_StopsPrevious(t *testing.T) {
	c := &counter{}
	job := NewTickerJob("test", 10*time.Millisecond, c.run, logger.Nop())

	require.NoError(t, job.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	before := c.calls.Load()
	assert.Positive(t, before)

	require.NoError(t, job.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, c.calls.Load(), before)
}

func TestTickerJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewTickerJob("test", 10*time.Millisecond, (&counter{}).run, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, job.Start(ctx))
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestTickerJob_ErrorsAndPanicsDoNotStopJob(t *testing.T) {
	var calls atomic.Int64
	fn := func(context.Context) error {
		if calls.Add(1)%2 == 0 {
			panic("boom")
		}
		return assert.AnError
	}
	job := NewTickerJob("test", 10*time.Millisecond, fn, logger.Nop())

	require.NoError(t, job.Start(context.Background()))
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}
