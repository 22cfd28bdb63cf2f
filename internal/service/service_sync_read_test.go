// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

func TestSyncService_Status(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	ctx := testContext()

	status, err := f.svc.Status(ctx, testReport)
	require.NoError(t, err)
	assert.Nil(t, status.Metadata)
	assert.Zero(t, status.IssueCount)

	f.fullSync(t,
		item("1001", "Chair", "10", "14-Oct-2026 09:00:00"),
		item("", "Ghost", "0", "14-Oct-2026 09:00:00"),
	)

	status, err = f.svc.Status(ctx, testReport)
	require.NoError(t, err)
	require.NotNil(t, status.Metadata)
	assert.Equal(t, 1, status.Metadata.RecordCount)
	assert.Equal(t, 1, status.IssueCount)

	_, err = f.svc.Metadata(ctx, "Other_Report")
	require.ErrorIs(t, err, store.ErrMetadataNotFound)
}

func TestSyncService_HistoryPreviewAndIssues(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	ctx := testContext()
	f.fullSync(t,
		item("1001", "Chair", "10", "14-Oct-2026 09:00:00"),
		item("1002", "Table", "25", "14-Oct-2026 11:30:00"),
	)

	history, err := f.svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	preview, err := f.svc.Preview(ctx, testReport, 1)
	require.NoError(t, err)
	require.Len(t, preview, 1)
	assert.Equal(t, "1001", preview[0].Value("ID"))

	issues, err := f.svc.Issues(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, issues)

	conflicts, err := f.svc.Conflicts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestSyncService_ListReports(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	want := []models.ReportInfo{{LinkName: testReport, DisplayName: "Item Report"}}
	f.client.EXPECT().ListAllReports(gomock.Any()).Return(want, nil)

	got, err := f.svc.ListReports(testContext())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSyncService_TestConnection(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newSyncFixture(t, testSyncConfig())
		f.client.EXPECT().GetAccessToken(gomock.Any()).Return("token", nil)
		f.client.EXPECT().ListAllReports(gomock.Any()).Return([]models.ReportInfo{{LinkName: "A"}, {LinkName: "B"}}, nil)

		resp := f.svc.TestConnection(testContext())

		assert.True(t, resp.OK)
		assert.Equal(t, 2, resp.Reports)
	})

	t.Run("token failure", func(t *testing.T) {
		f := newSyncFixture(t, testSyncConfig())
		f.client.EXPECT().GetAccessToken(gomock.Any()).Return("", errRemote)

		resp := f.svc.TestConnection(testContext())

		assert.False(t, resp.OK)
		assert.Contains(t, resp.Error, errRemote.Error())
	})

	t.Run("incomplete configuration", func(t *testing.T) {
		f := newSyncFixture(t, testSyncConfig())
		f.svc.zohoCfg = config.Zoho{}

		resp := f.svc.TestConnection(testContext())

		assert.False(t, resp.OK)
		assert.Contains(t, resp.Error, "client id")
	})
}
