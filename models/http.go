// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncTriggerRequest is the body of a manual sync trigger from the dashboard.
// An empty Reports list means every configured report.
type SyncTriggerRequest struct {
	Reports []string `json:"reports" validate:"omitempty,dive,required"`
}

// SyncTriggerResponse lists per-report results of a manual sync.
type SyncTriggerResponse struct {
	Results []SyncResult `json:"results"`
}

// RecordUpdateRequest is an admin edit of a single record.
type RecordUpdateRequest struct {
	Changes   map[string]string `json:"changes" validate:"required,min=1,dive,keys,required,endkeys"`
	OldValues map[string]string `json:"old_values"`
}

// RecordUpdateResponse confirms a queued edit.
type RecordUpdateResponse struct {
	RecordID string `json:"record_id"`
	Queued   int    `json:"queued"`
	Pending  int    `json:"pending"`
}

// PendingCountResponse backs the admin "sync pending" indicator.
type PendingCountResponse struct {
	RecordID string `json:"record_id"`
	Pending  int    `json:"pending"`
}

// SyncStatusResponse reports the cursor and issue count for one report table.
type SyncStatusResponse struct {
	Report     string        `json:"report"`
	Metadata   *SyncMetadata `json:"metadata,omitempty"`
	IssueCount int           `json:"issue_count"`
}

// ConnectionTestResponse is returned by the connectivity check.
type ConnectionTestResponse struct {
	OK      bool   `json:"ok"`
	Reports int    `json:"reports"`
	Error   string `json:"error,omitempty"`
}

// BuildInfoResponse describes the running binary.
type BuildInfoResponse struct {
	Version   string    `json:"version"`
	Date      string    `json:"build_date"`
	Commit    string    `json:"commit"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string             `json:"status"`
	Build  *BuildInfoResponse `json:"build,omitempty"`
}
