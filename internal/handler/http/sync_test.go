// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

// ── POST /api/sync/{mode} ────────────────────────────────────────────────────

func TestTriggerSync_Success(t *testing.T) {
	f := newAPIFixture(t)
	results := []models.SyncResult{{Report: "Item_Report", Type: models.SyncTypeFull, Status: models.SyncStatusSuccess, RecordsSynced: 3}}
	f.sync.EXPECT().SyncReports(gomock.Any(), []string{"Item_Report"}, models.SyncTypeFull).Return(results)

	rr := f.do(t, http.MethodPost, "/api/sync/full", `{"reports":["Item_Report"]}`, adminToken(t))

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.SyncTriggerResponse
	decodeBody(t, rr, &body)
	require.Len(t, body.Results, 1)
	assert.Equal(t, 3, body.Results[0].RecordsSynced)
}

func TestTriggerSync_EmptyBodyMeansConfiguredReports(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().SyncReports(gomock.Any(), gomock.Nil(), models.SyncTypeSmart).Return(nil)

	rr := f.do(t, http.MethodPost, "/api/sync/smart", "", adminToken(t))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTriggerSync_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "unknown mode", path: "/api/sync/turbo", body: `{}`},
		{name: "poller modes are not manual", path: "/api/sync/api-poll", body: `{}`},
		{name: "invalid json", path: "/api/sync/full", body: `{"reports":`},
		{name: "blank report name", path: "/api/sync/full", body: `{"reports":[""]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)

			rr := f.do(t, http.MethodPost, tt.path, tt.body, adminToken(t))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestTriggerSync_RateLimited(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().SyncReports(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	token := adminToken(t)

	var last int
	for i := 0; i < 101; i++ {
		last = f.do(t, http.MethodPost, "/api/sync/daily", "", token).Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

// ── GET /api/sync/* ──────────────────────────────────────────────────────────

func TestSyncHistory(t *testing.T) {
	f := newAPIFixture(t)
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	f.sync.EXPECT().History(gomock.Any(), 5).Return([]models.SyncLogEntry{
		{ID: 1, SyncType: models.SyncTypeIncremental, TableName: "item_report", Status: models.SyncStatusSuccess, RecordsSynced: 2, CreatedAt: created},
	}, nil)

	rr := f.do(t, http.MethodGet, "/api/sync/history?limit=5", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var entries []models.SyncLogEntry
	decodeBody(t, rr, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "item_report", entries[0].TableName)
}

func TestSyncHistory_InvalidLimit(t *testing.T) {
	f := newAPIFixture(t)

	for _, q := range []string{"limit=abc", "limit=0", "limit=-3"} {
		rr := f.do(t, http.MethodGet, "/api/sync/history?"+q, "", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestSyncHistory_StoreError(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().History(gomock.Any(), 0).Return(nil, fmt.Errorf("%w: disk I/O", store.ErrExecutingQuery))

	rr := f.do(t, http.MethodGet, "/api/sync/history", "", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSyncIssuesAndConflicts(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Issues(gomock.Any(), 0).Return([]models.SyncIssue{{ID: 1, TableName: "item_report", Identifier: "record #4", Reason: "missing ID"}}, nil)
	f.sync.EXPECT().Conflicts(gomock.Any(), 20).Return([]models.SyncConflict{}, nil)

	rr := f.do(t, http.MethodGet, "/api/sync/issues", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "record #4")

	rr = f.do(t, http.MethodGet, "/api/sync/conflicts?limit=20", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSyncStatus(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Status(gomock.Any(), "Item_Report").Return(models.SyncStatusResponse{
		Report:     "Item_Report",
		Metadata:   &models.SyncMetadata{TableName: "item_report", LastModified: "15-Oct-2026 09:00:00", RecordCount: 12},
		IssueCount: 1,
	}, nil)

	rr := f.do(t, http.MethodGet, "/api/sync/status/Item_Report", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.SyncStatusResponse
	decodeBody(t, rr, &body)
	require.NotNil(t, body.Metadata)
	assert.Equal(t, 12, body.Metadata.RecordCount)
	assert.Equal(t, 1, body.IssueCount)
}

func TestSyncStatus_InvalidReport(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Status(gomock.Any(), "___").Return(models.SyncStatusResponse{}, fmt.Errorf("%w: %q", store.ErrInvalidIdentifier, "___"))

	rr := f.do(t, http.MethodGet, "/api/sync/status/___", "", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── statusFromError ──────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrSyncInProgress, http.StatusConflict},
		{fmt.Errorf("%w: item_report", store.ErrTableNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrDatabaseBusy), http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
