// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/stagehaus/zoho-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService keeps the local report tables consistent with Zoho Creator.
//
// Every run method returns a populated SyncResult. When the run fails the
// result has status failed and the same error is returned, after it has been
// written to the sync log.
type SyncService interface {
	FullSync(ctx context.Context, report string) (models.SyncResult, error)
	IncrementalSync(ctx context.Context, report string) (models.SyncResult, error)
	DailySync(ctx context.Context, report string) (models.SyncResult, error)
	SmartSync(ctx context.Context, report string) (models.SyncResult, error)

	// SyncReport dispatches to the run method of mode.
	SyncReport(ctx context.Context, report string, mode models.SyncType) (models.SyncResult, error)
	// SyncReports runs mode for every report sequentially. An empty list
	// means every configured report. A failing report does not stop the rest.
	SyncReports(ctx context.Context, reports []string, mode models.SyncType) []models.SyncResult

	// ApplyPolledRecords ingests records detected by a change poller.
	ApplyPolledRecords(ctx context.Context, report string, records []models.Record, syncType models.SyncType) (models.SyncResult, error)
	// ApplyLocalEdit reflects an admin edit in the local table, marking the
	// row pending_push until the queue confirms the remote write.
	ApplyLocalEdit(ctx context.Context, report, recordID string, changes map[string]string) error

	History(ctx context.Context, limit int) ([]models.SyncLogEntry, error)
	Issues(ctx context.Context, limit int) ([]models.SyncIssue, error)
	IssueCount(ctx context.Context, report string) (int, error)
	Conflicts(ctx context.Context, limit int) ([]models.SyncConflict, error)
	Metadata(ctx context.Context, report string) (models.SyncMetadata, error)
	Status(ctx context.Context, report string) (models.SyncStatusResponse, error)
	Preview(ctx context.Context, report string, limit int) ([]models.Record, error)
	ListReports(ctx context.Context) ([]models.ReportInfo, error)
	TestConnection(ctx context.Context) models.ConnectionTestResponse
}

// QueueService is the write-behind queue of local edits.
type QueueService interface {
	// QueueUpdate durably stores one pending row per changed field before
	// returning. It returns the number of rows queued.
	QueueUpdate(ctx context.Context, recordID, report string, changes, oldValues map[string]string) (int, error)
	// ProcessPendingUpdates pushes one batch of records to Zoho.
	ProcessPendingUpdates(ctx context.Context) (models.ProcessResult, error)
	Status(ctx context.Context) (models.QueueStatusCounts, error)
	// PendingForRecord counts open rows of a record. An empty report
	// matches any report.
	PendingForRecord(ctx context.Context, recordID, report string) (int, error)
	// RecoverStale returns rows left in syncing by a crash to pending.
	RecoverStale(ctx context.Context) (int64, error)
}

// AppInfoService reports metadata of the running build.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.BuildInfoResponse
}

// Job is a background activity with an explicit lifecycle.
type Job interface {
	Start(ctx context.Context) error
	Stop()
}
