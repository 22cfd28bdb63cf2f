// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid cron schedule")
	ErrWorkerStart     = errors.New("failed to start worker")
)
