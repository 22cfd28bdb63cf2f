// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import "errors"

var (
	ErrNotInitialized = errors.New("poller is not initialized")
	ErrPageLoad       = errors.New("failed to load report page")
	ErrExtraction     = errors.New("failed to extract report rows")
	ErrUnknownPoller  = errors.New("unknown poller strategy")
)
