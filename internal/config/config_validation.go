// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Poller strategies.
const (
	PollerStrategyAPI    = "api"
	PollerStrategyScrape = "scrape"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Zoho.Validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Sync.PrimaryKeyField == "" || cfg.Sync.ModifiedField == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Images.ExportHost == "" {
		return ErrInvalidImageConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.QueueInterval <= 0 ||
		cfg.Workers.QueueBatchSize <= 0 || cfg.Workers.QueueMaxRetries <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return cfg.Poller.validate()
}

// Validate checks that the remote credentials and application coordinates
// are complete. It is usable on its own by the connection check.
func (z Zoho) Validate() error {
	var missing []string
	if z.ClientID == "" {
		missing = append(missing, "client id")
	}
	if z.ClientSecret == "" {
		missing = append(missing, "client secret")
	}
	if z.RefreshToken == "" {
		missing = append(missing, "refresh token")
	}
	if z.OwnerName == "" {
		missing = append(missing, "owner name")
	}
	if z.AppName == "" {
		missing = append(missing, "app name")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingZohoCredentials, strings.Join(missing, ", "))
	}

	if z.AccountsURL == "" || z.APIBaseURL == "" || z.PageSize <= 0 || z.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%w: accounts url, api base url, page size and rate limit are required",
			ErrMissingZohoCredentials)
	}

	return nil
}

func (p Poller) validate() error {
	if !p.Enabled {
		return nil
	}

	if p.Interval <= 0 {
		return ErrInvalidPollerConfigs
	}

	switch p.Strategy {
	case PollerStrategyAPI:
		if p.Report == "" {
			return fmt.Errorf("%w: report is required", ErrInvalidPollerConfigs)
		}
	case PollerStrategyScrape:
		if p.Report == "" || p.PermalinkURL == "" {
			return fmt.Errorf("%w: report and permalink url are required", ErrInvalidPollerConfigs)
		}
		if len(p.HeaderMap) == 0 {
			return fmt.Errorf("%w: header map is required for the scrape strategy", ErrInvalidPollerConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidPollerConfigs, p.Strategy)
	}

	return nil
}
