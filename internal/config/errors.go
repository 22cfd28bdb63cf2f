// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingZohoCredentials indicates that the OAuth credentials or the
	// application coordinates of the remote Zoho app are not set.
	ErrMissingZohoCredentials = errors.New("missing zoho credentials")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an in-memory DSN that would lose the queue).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid dashboard settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSyncConfigs indicates invalid sync engine settings.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidImageConfigs indicates invalid image URL settings.
	ErrInvalidImageConfigs = errors.New("invalid image configuration")
	// ErrInvalidPollerConfigs indicates an enabled poller without a target.
	ErrInvalidPollerConfigs = errors.New("invalid poller configuration")
)
