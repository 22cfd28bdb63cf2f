// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

type Handler struct {
	services *service.Services
	auth     config.Auth
	server   config.Server
	validate *validator.Validate

	// primaryKey is the sanitized record identifier column.
	primaryKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	primaryKey, err := store.SanitizeIdentifier(cfg.Sync.PrimaryKeyField)
	if err != nil {
		primaryKey = models.DefaultPrimaryKey
	}
	return &Handler{
		services: services,
		auth:     cfg.Auth,
		server:   cfg.Server,
		validate: validator.New(validator.WithRequiredStructEnabled()),

		primaryKey: primaryKey,

		logger: logger,
	}
}
