// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/handler"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/poller"
	"github.com/stagehaus/zoho-sync/internal/server"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/internal/workers"
	"github.com/stagehaus/zoho-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	if err := run(build); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo) error {
	log := logger.NewLogger("zohosync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, cfg.Sync.PrimaryKeyField, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	client, err := adapter.NewZohoClient(cfg.Zoho, cfg.Sync, log)
	if err != nil {
		return fmt.Errorf("error creating zoho client: %w", err)
	}

	services := service.NewServices(storages, client, *cfg, build, log)

	var changePoller poller.ChangePoller
	if cfg.Poller.Enabled {
		changePoller, err = poller.New(cfg.Poller, client, cfg.Sync.PrimaryKeyField, log)
		if err != nil {
			return fmt.Errorf("error creating change poller: %w", err)
		}
	}

	bg, err := workers.NewWorkers(services, changePoller, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating workers: %w", err)
	}
	log.Info().Strs("workers", bg.Names()).Msg("background workers registered")

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(build.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(build.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(build.BuildCommit()))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
