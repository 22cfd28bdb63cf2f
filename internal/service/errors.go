// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSyncInProgress  = errors.New("sync already in progress for report")
	ErrUnknownSyncMode = errors.New("unknown sync mode")
	ErrEmptyReport     = errors.New("empty report name")
	ErrEmptyRecordID   = errors.New("empty record id")
	ErrNoChanges       = errors.New("no changed fields provided")
	ErrSyncPanicked    = errors.New("sync run panicked")

	ErrPollerNotConfigured = errors.New("change poller is not configured")
)
