// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background activities of the sync service: the
// periodic incremental sync, the write-behind queue drain, the change poll
// loop and the cron-scheduled daily sync.
package workers

import "context"

// Worker is a background activity with an explicit lifecycle.
//
// Start must return promptly; long-running work belongs in goroutines the
// worker owns. Stop blocks until those goroutines have exited and is safe to
// call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
