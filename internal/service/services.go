// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/imageurl"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

// Services groups the application services.
type Services struct {
	SyncService    SyncService
	QueueService   QueueService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, client adapter.ZohoClient, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	rewriter := imageurl.NewRewriter(cfg.Images, cfg.Zoho, cfg.Sync.PrimaryKeyField)

	return &Services{
		SyncService:    NewSyncService(storages, client, rewriter, cfg.Sync, cfg.Zoho, cfg.Workers, logger),
		QueueService:   NewQueueService(storages, client, cfg.Workers, logger),
		AppInfoService: NewAppInfoService(build, logger),
	}
}
