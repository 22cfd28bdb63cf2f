// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/imageurl"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/mock"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

const testReport = "Item_Report"

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func testZohoConfig() config.Zoho {
	return config.Zoho{
		ClientID:           "client",
		ClientSecret:       "secret",
		RefreshToken:       "refresh",
		AccountsURL:        "https://accounts.zoho.com",
		APIBaseURL:         "https://creator.zoho.com/api/v2",
		OwnerName:          "stagehaus",
		AppName:            "inventory",
		PageSize:           200,
		RateLimitPerMinute: 60,
	}
}

func testSyncConfig() config.Sync {
	return config.Sync{
		Reports:           []string{testReport},
		PrimaryKeyField:   "ID",
		ModifiedField:     "Modified_Time",
		PreservedFields:   []string{"Model_3D_URL"},
		SmartFields:       []string{"Item_Name", "Price"},
		IdentifyingFields: []string{"Item_Name", "SKU"},
	}
}

func newTestStorages(t *testing.T, path string) *store.Storages {
	t.Helper()
	if path == "" {
		path = filepath.Join(t.TempDir(), "cache.db")
	}
	s, err := store.NewStorages(testContext(), config.Storage{DB: config.DB{DSN: path}}, models.DefaultPrimaryKey, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type syncFixture struct {
	svc      *syncService
	client   *mock.MockZohoClient
	storages *store.Storages
}

func newSyncFixture(t *testing.T, cfg config.Sync) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockZohoClient(ctrl)
	storages := newTestStorages(t, "")

	zoho := testZohoConfig()
	rewriter := imageurl.NewRewriter(
		config.Images{ExportHost: "creatorexport.zoho.com", FieldSecrets: map[string]string{"Image": "fixedsecret"}},
		zoho, cfg.PrimaryKeyField,
	)

	svc := NewSyncService(storages, client, rewriter, cfg, zoho, testWorkersConfig(), logger.Nop()).(*syncService)
	svc.now = func() time.Time { return fixedNow }

	return &syncFixture{svc: svc, client: client, storages: storages}
}

func item(id, name, price, modified string) models.RawRecord {
	r := models.RawRecord{"Item_Name": name, "Price": price, "Modified_Time": modified}
	if id != "" {
		r["ID"] = id
	}
	return r
}

func rec(kv ...string) models.Record {
	r := models.Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

func (f *syncFixture) row(t *testing.T, id string) models.Record {
	t.Helper()
	r, err := f.storages.Reports.GetRecord(testContext(), testReport, id)
	require.NoError(t, err)
	return r
}

func (f *syncFixture) fullSync(t *testing.T, records ...models.RawRecord) models.SyncResult {
	t.Helper()
	f.client.EXPECT().GetAllReportData(gomock.Any(), testReport, "").Return(records, nil)
	res, err := f.svc.FullSync(testContext(), testReport)
	require.NoError(t, err)
	return res
}
