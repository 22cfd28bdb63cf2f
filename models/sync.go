// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncType identifies the kind of sync run recorded in the sync log.
type SyncType string

const (
	SyncTypeFull        SyncType = "full"
	SyncTypeIncremental SyncType = "incremental"
	SyncTypeDaily       SyncType = "daily"
	SyncTypeSmart       SyncType = "smart"
	SyncTypePageScrape  SyncType = "page-scrape"
	SyncTypeAPIPoll     SyncType = "api-poll"
)

// ParseSyncType maps a user-supplied mode name to a SyncType.
func ParseSyncType(mode string) (SyncType, bool) {
	switch SyncType(mode) {
	case SyncTypeFull, SyncTypeIncremental, SyncTypeDaily, SyncTypeSmart:
		return SyncType(mode), true
	}
	return "", false
}

// SyncStatus is the terminal outcome of a sync run.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncResult is the structured outcome returned to callers of the sync engine.
// A failed run carries the error text instead of an error value so that
// callers can report it without aborting other reports.
type SyncResult struct {
	Report           string        `json:"report"`
	Table            string        `json:"table"`
	Type             SyncType      `json:"type"`
	Status           SyncStatus    `json:"status"`
	RecordsFetched   int           `json:"records_fetched"`
	RecordsSynced    int           `json:"records_synced"`
	RecordsSkipped   int           `json:"records_skipped"`
	RecordsUnchanged int           `json:"records_unchanged"`
	RecordsPruned    int           `json:"records_pruned"`
	ImagesConverted  int           `json:"images_converted"`
	ImagesSkipped    int           `json:"images_skipped"`
	ImagesPreserved  int           `json:"images_preserved"`
	Conflicts        int           `json:"conflicts"`
	Error            string        `json:"error,omitempty"`
	Duration         time.Duration `json:"duration"`
}

// SyncMetadata is the per-table cursor used to choose between incremental
// and full sync.
type SyncMetadata struct {
	TableName    string    `json:"table_name"`
	LastModified string    `json:"last_modified"`
	RecordCount  int       `json:"record_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SyncLogEntry is one append-only audit row per sync attempt.
type SyncLogEntry struct {
	ID            int64      `json:"id"`
	SyncType      SyncType   `json:"sync_type"`
	TableName     string     `json:"table_name"`
	Status        SyncStatus `json:"status"`
	RecordsSynced int        `json:"records_synced"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SyncIssue records a single record that could not be synced.
type SyncIssue struct {
	ID         int64     `json:"id"`
	TableName  string    `json:"table_name"`
	RecordID   *string   `json:"record_id,omitempty"`
	Identifier string    `json:"identifier"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// SkippedRecord is a record the store refused to write.
type SkippedRecord struct {
	Index  int
	Record Record
	Reason string
}

// SyncConflict is a write-only diagnostic row describing an inbound value
// that overwrote a field with a pending local edit.
type SyncConflict struct {
	ID          int64     `json:"id"`
	RecordID    string    `json:"record_id"`
	ReportName  string    `json:"report_name"`
	FieldName   string    `json:"field_name"`
	LocalValue  *string   `json:"local_value,omitempty"`
	RemoteValue *string   `json:"remote_value,omitempty"`
	Resolution  string    `json:"resolution"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConflictResolutionRemoteOverwrite marks an inbound overwrite of a field
// whose local edit is still queued for upload.
const ConflictResolutionRemoteOverwrite = "remote_overwrite_pending_push"

// ReportPage is one page of a Zoho report read.
type ReportPage struct {
	Records []RawRecord
	HasMore bool
	Count   int
}

// ReportInfo describes a report defined in the Zoho application.
type ReportInfo struct {
	LinkName    string `json:"link_name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type,omitempty"`
}
