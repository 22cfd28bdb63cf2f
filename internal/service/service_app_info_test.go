// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

func TestAppInfoService_BuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	s, ok := svc.(*appInfoService)
	require.True(t, ok)
	s.startedAt = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return s.startedAt.Add(90*time.Minute + 400*time.Millisecond) }

	info := svc.BuildInfo(context.Background())

	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "2026-10-01", info.Date)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, s.startedAt, info.StartedAt)
	assert.Equal(t, "1h30m0s", info.Uptime)
}

func TestAppInfoService_BuildInfo_EmptyFields(t *testing.T) {
	svc := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	info := svc.BuildInfo(context.Background())

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
	assert.False(t, info.StartedAt.IsZero())
}
