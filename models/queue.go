// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QueueStatus is the lifecycle state of a pending outbound field update.
type QueueStatus string

const (
	QueueStatusPending QueueStatus = "pending"
	QueueStatusSyncing QueueStatus = "syncing"
	QueueStatusSynced  QueueStatus = "synced"
)

// PendingUpdate is one (record, field) edit waiting to be pushed to Zoho.
type PendingUpdate struct {
	ID           int64       `json:"id"`
	RecordID     string      `json:"record_id"`
	ReportName   string      `json:"report_name"`
	FieldName    string      `json:"field_name"`
	NewValue     *string     `json:"new_value,omitempty"`
	OldValue     *string     `json:"old_value,omitempty"`
	Status       QueueStatus `json:"status"`
	RetryCount   int         `json:"retry_count"`
	ErrorMessage *string     `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	SyncedAt     *time.Time  `json:"synced_at,omitempty"`
}

// PendingRecordKey identifies a record with at least one drainable update.
type PendingRecordKey struct {
	RecordID   string
	ReportName string
}

// QueueStatusCounts summarizes the write-behind queue. Failed counts rows
// that reached the retry ceiling and are no longer attempted.
type QueueStatusCounts struct {
	Pending int `json:"pending"`
	Syncing int `json:"syncing"`
	Synced  int `json:"synced"`
	Failed  int `json:"failed"`
}

// ProcessResult summarizes one drain pass of the write-behind queue.
type ProcessResult struct {
	Records      int `json:"records"`
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`
	FieldsPushed int `json:"fields_pushed"`
}
