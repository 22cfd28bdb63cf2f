// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package poller detects records changed in Zoho Creator between scheduled
// syncs. Two strategies exist: reading the modified-since criteria through
// the REST API and scraping a published report page with a headless browser.
package poller

import (
	"context"

	"github.com/stagehaus/zoho-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/poller_mock.go -package=mock

// ChangePoller returns records that may have changed since the previous poll.
// Records are keyed by field name and must carry the record identifier to be
// applied.
type ChangePoller interface {
	// Init prepares long-lived resources such as a browser session.
	Init(ctx context.Context) error
	Poll(ctx context.Context) ([]models.Record, error)
	// Close releases what Init acquired. It is safe to call more than once.
	Close() error
	// Name is recorded as the sync type of applied polls.
	Name() string
}
