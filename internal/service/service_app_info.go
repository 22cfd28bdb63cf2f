// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	build     models.AppBuildInfo
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService for build. Empty build fields
// are reported as "N/A".
func NewAppInfoService(build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		build:     build,
		startedAt: time.Now().UTC(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.BuildInfoResponse {
	return models.BuildInfoResponse{
		Version:   orNotAvailable(s.build.BuildVersion()),
		Date:      orNotAvailable(s.build.BuildDate()),
		Commit:    orNotAvailable(s.build.BuildCommit()),
		StartedAt: s.startedAt,
		Uptime:    s.now().UTC().Sub(s.startedAt).Truncate(time.Second).String(),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
