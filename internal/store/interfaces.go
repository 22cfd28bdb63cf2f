// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/stagehaus/zoho-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ReportRepository manages the dynamically shaped per-report tables.
// Table and field names are sanitized with [SanitizeIdentifier].
type ReportRepository interface {
	TableExists(ctx context.Context, table string) (bool, error)
	// EnsureTable creates the table from the given fields when it is missing
	// and adds any unseen fields as columns otherwise.
	EnsureTable(ctx context.Context, table string, fields []string) error
	// EnsureColumns adds unseen fields as nullable TEXT columns and returns
	// the names that were added.
	EnsureColumns(ctx context.Context, table string, fields []string) ([]string, error)
	Columns(ctx context.Context, table string) ([]string, error)

	// UpsertRecords inserts or updates records by primary key in a single
	// transaction. Records without a primary key are returned as skipped and
	// never written.
	UpsertRecords(ctx context.Context, table string, records []models.Record) (int, []models.SkippedRecord, error)

	GetRecord(ctx context.Context, table, id string) (models.Record, error)
	GetRecords(ctx context.Context, table string, ids []string) (map[string]models.Record, error)
	ListRecords(ctx context.Context, table string, limit, offset int) ([]models.Record, error)
	CountRecords(ctx context.Context, table string) (int, error)
	ListIDs(ctx context.Context, table string) ([]string, error)
	SnapshotRecords(ctx context.Context, table string) (map[string]models.Record, error)
	ClearTable(ctx context.Context, table string) error

	// RestoreFields writes the given field values back onto existing rows,
	// keyed by primary key. Rows that no longer exist are ignored.
	RestoreFields(ctx context.Context, table string, values map[string]models.Record) (int, error)
	UpdateFields(ctx context.Context, table, id string, fields models.Record, status string) error
	SetSyncStatus(ctx context.Context, table, id, status string) error
}

// SyncMetadataRepository stores the per-table sync cursor.
type SyncMetadataRepository interface {
	Get(ctx context.Context, table string) (models.SyncMetadata, error)
	Upsert(ctx context.Context, meta models.SyncMetadata) error
	List(ctx context.Context) ([]models.SyncMetadata, error)
}

// SyncLogRepository is the append-only audit of sync attempts.
type SyncLogRepository interface {
	Insert(ctx context.Context, entry models.SyncLogEntry) (int64, error)
	// List returns the newest entries first. An empty table matches all.
	List(ctx context.Context, table string, limit int) ([]models.SyncLogEntry, error)
}

// SyncIssueRepository stores records that could not be synced.
type SyncIssueRepository interface {
	Insert(ctx context.Context, issues ...models.SyncIssue) error
	List(ctx context.Context, table string, limit int) ([]models.SyncIssue, error)
	Count(ctx context.Context, table string) (int, error)
}

// PendingUpdateRepository is the durable write-behind queue.
type PendingUpdateRepository interface {
	// Insert stores all updates in one transaction.
	Insert(ctx context.Context, updates []models.PendingUpdate) error
	// SelectPendingRecords returns up to limit distinct records with pending
	// rows below maxRetries, oldest first.
	SelectPendingRecords(ctx context.Context, maxRetries, limit int) ([]models.PendingRecordKey, error)
	ListPendingForRecord(ctx context.Context, key models.PendingRecordKey, maxRetries int) ([]models.PendingUpdate, error)
	MarkSyncing(ctx context.Context, ids []int64) error
	MarkSynced(ctx context.Context, ids []int64, syncedAt time.Time) error
	MarkFailed(ctx context.Context, ids []int64, errMsg string) error
	// ResetSyncing moves rows stuck in syncing back to pending.
	ResetSyncing(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, maxRetries int) (models.QueueStatusCounts, error)
	// CountOpenForRecord counts syncing rows and pending rows below
	// maxRetries of a record. An empty report matches any report.
	CountOpenForRecord(ctx context.Context, recordID, report string, maxRetries int) (int, error)
	// OpenFieldValues returns the newest queued value per field of records
	// with open rows, as counted by CountOpenForRecord. Empty recordIDs
	// matches every record of report.
	OpenFieldValues(ctx context.Context, report string, recordIDs []string, maxRetries int) (map[string]models.Record, error)
}

// SyncConflictRepository is a write-only diagnostic log.
type SyncConflictRepository interface {
	Insert(ctx context.Context, conflicts ...models.SyncConflict) error
	List(ctx context.Context, limit int) ([]models.SyncConflict, error)
}
