// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

func TestSyncService_ApplyPolledRecords_WritesChangedRows(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	f.fullSync(t,
		item("1001", "Chair", "10", "14-Oct-2026 09:00:00"),
		item("1002", "Table", "25", "14-Oct-2026 11:30:00"),
	)

	polled := []models.Record{
		rec("ID", "1001", "Item Name", "Chair", "Price", "10"),
		rec("ID", "1002", "Item Name", "Table", "Price", "27"),
	}

	res, err := f.svc.ApplyPolledRecords(testContext(), testReport, polled, models.SyncTypePageScrape)

	require.NoError(t, err)
	assert.Equal(t, models.SyncTypePageScrape, res.Type)
	assert.Equal(t, 1, res.RecordsSynced)
	assert.Equal(t, 1, res.RecordsUnchanged)
	assert.Equal(t, "27", f.row(t, "1002").Value("Price"))

	logs, err := f.storages.Logs.List(testContext(), "", 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.SyncTypePageScrape, logs[0].SyncType)
}

func TestSyncService_ApplyPolledRecords_ComparesMarkersWhenPresent(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	f.fullSync(t, item("1001", "Chair", "10", "14-Oct-2026 09:00:00"))

	polled := []models.Record{
		rec("ID", "1001", "Item_Name", "Chair", "Price", "10", "Modified_Time", "15-Oct-2026 10:00:00"),
	}

	res, err := f.svc.ApplyPolledRecords(testContext(), testReport, polled, models.SyncTypeAPIPoll)

	require.NoError(t, err)
	assert.Equal(t, 1, res.RecordsSynced)
	assert.Equal(t, "15-Oct-2026 10:00:00", f.row(t, "1001").Value(models.ColumnLastModified))
}

func TestSyncService_ApplyPolledRecords_ResolvesImagesFromAPI(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	f.fullSync(t, item("1001", "Chair", "10", "14-Oct-2026 09:00:00"))

	polled := []models.Record{
		rec("ID", "1001", "Item_Name", "Chair", "Price", "11", "Photo", "https://creator.zoho.com/thumb/image/opaque"),
	}
	fresh := item("1001", "Chair", "11", "15-Oct-2026 10:00:00")
	fresh["Image"] = "https://creator.zoho.com/api/v2/stagehaus/inventory/report/Item_Report/1001/Image/download?filepath=chair.jpg"
	f.client.EXPECT().GetRecord(gomock.Any(), testReport, "1001").Return(fresh, nil)

	res, err := f.svc.ApplyPolledRecords(testContext(), testReport, polled, models.SyncTypePageScrape)

	require.NoError(t, err)
	assert.Equal(t, 1, res.RecordsSynced)
	assert.Equal(t, 1, res.ImagesConverted)
	row := f.row(t, "1001")
	assert.Equal(t,
		"https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/1001/Image/image-download/fixedsecret?filepath=/chair.jpg",
		row.Value("Image"))
	assert.Equal(t, "15-Oct-2026 10:00:00", row.Value(models.ColumnLastModified))
}

func TestSyncService_ApplyPolledRecords_ResolveFailureIsNotFatal(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())

	polled := []models.Record{
		rec("ID", "1001", "Item_Name", "Chair", "Photo", "https://creator.zoho.com/thumb/image/opaque"),
	}
	f.client.EXPECT().GetRecord(gomock.Any(), testReport, "1001").Return(nil, errRemote)

	res, err := f.svc.ApplyPolledRecords(testContext(), testReport, polled, models.SyncTypePageScrape)

	require.NoError(t, err)
	assert.Equal(t, 1, res.RecordsSynced)
	assert.Equal(t, 1, res.ImagesSkipped)
}

func TestSyncService_ApplyLocalEdit(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	ctx := testContext()
	f.fullSync(t, item("1001", "Chair", "10", "14-Oct-2026 09:00:00"))

	err := f.svc.ApplyLocalEdit(ctx, testReport, "1001", map[string]string{"Price": "12", "Item Name": "Armchair"})

	require.NoError(t, err)
	row := f.row(t, "1001")
	assert.Equal(t, "12", row.Value("Price"))
	assert.Equal(t, "Armchair", row.Value("Item_Name"))
	assert.Equal(t, models.RowStatusPendingPush, row.Value(models.ColumnSyncStatus))
}

func TestSyncService_ApplyLocalEdit_Errors(t *testing.T) {
	f := newSyncFixture(t, testSyncConfig())
	ctx := testContext()

	require.ErrorIs(t, f.svc.ApplyLocalEdit(ctx, testReport, "", map[string]string{"Price": "1"}), ErrEmptyRecordID)
	require.ErrorIs(t, f.svc.ApplyLocalEdit(ctx, testReport, "1001", nil), ErrNoChanges)
	require.ErrorIs(t, f.svc.ApplyLocalEdit(ctx, testReport, "1001", map[string]string{"Price": "1"}), store.ErrTableNotFound)

	f.fullSync(t, item("1001", "Chair", "10", "14-Oct-2026 09:00:00"))
	require.ErrorIs(t, f.svc.ApplyLocalEdit(ctx, testReport, "9999", map[string]string{"Price": "1"}), store.ErrRecordNotFound)
	require.ErrorIs(t, f.svc.ApplyLocalEdit(ctx, testReport, "1001", map[string]string{"ID": "2"}), ErrNoChanges)
}
