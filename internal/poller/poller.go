// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"fmt"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
)

// New builds the poller selected by cfg.Strategy.
func New(cfg config.Poller, client adapter.ZohoClient, primaryKey string, logger *logger.Logger) (ChangePoller, error) {
	switch cfg.Strategy {
	case config.PollerStrategyAPI:
		return NewAPIPoller(client, cfg.Report), nil
	case config.PollerStrategyScrape:
		return NewScrapePoller(cfg, primaryKey, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPoller, cfg.Strategy)
	}
}
