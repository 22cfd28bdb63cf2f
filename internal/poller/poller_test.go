// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/mock"
	"github.com/stagehaus/zoho-sync/models"
)

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func TestAPIPoller_AdvancesCursorOnSuccessOnly(t *testing.T) {
	client := mock.NewMockZohoClient(gomock.NewController(t))
	p := NewAPIPoller(client, "Item_Report")

	first := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	second := first.Add(2 * time.Minute)
	third := second.Add(2 * time.Minute)
	clock := []time.Time{first, second, third}
	p.now = func() time.Time {
		next := clock[0]
		clock = clock[1:]
		return next
	}

	midnight := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	gomock.InOrder(
		client.EXPECT().GetModifiedRecordsSince(gomock.Any(), "Item_Report", midnight).
			Return([]models.RawRecord{{"ID": "1001", "Price": float64(12)}}, nil),
		client.EXPECT().GetModifiedRecordsSince(gomock.Any(), "Item_Report", first).
			Return(nil, errors.New("boom")),
		client.EXPECT().GetModifiedRecordsSince(gomock.Any(), "Item_Report", first).
			Return(nil, nil),
	)

	records, err := p.Poll(testContext())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "12", records[0].Value("Price"))

	_, err = p.Poll(testContext())
	require.Error(t, err)

	records, err = p.Poll(testContext())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNew(t *testing.T) {
	client := mock.NewMockZohoClient(gomock.NewController(t))

	p, err := New(config.Poller{Strategy: config.PollerStrategyAPI, Report: "Item_Report"}, client, "ID", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, string(models.SyncTypeAPIPoll), p.Name())

	p, err = New(config.Poller{Strategy: config.PollerStrategyScrape, PermalinkURL: "https://example.com"}, client, "ID", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, string(models.SyncTypePageScrape), p.Name())

	_, err = New(config.Poller{Strategy: "webhook"}, client, "ID", logger.Nop())
	require.ErrorIs(t, err, ErrUnknownPoller)
}

func TestScrapePoller_PollBeforeInit(t *testing.T) {
	p := NewScrapePoller(config.Poller{PermalinkURL: "https://example.com"}, "", logger.Nop())

	_, err := p.Poll(testContext())

	require.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, defaultPageTimeout, p.cfg.PageTimeout)
	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close())
}

func TestScrapePoller_MapsPrimaryKeyHeader(t *testing.T) {
	rows := []scrapedRow{{Values: map[string]string{"ID": "1001", "Item Name": "Chair"}}}

	t.Run("without configured headers", func(t *testing.T) {
		p := NewScrapePoller(config.Poller{PermalinkURL: "https://example.com"}, "", logger.Nop())

		records, discarded := normalizeRows(rows, p.headers, p.primaryKey)

		assert.Zero(t, discarded)
		require.Len(t, records, 1)
		assert.Equal(t, models.Record{"ID": strPtr("1001")}, records[0])
	})

	t.Run("configured header wins", func(t *testing.T) {
		p := NewScrapePoller(config.Poller{
			PermalinkURL: "https://example.com",
			HeaderMap:    map[string]string{"Item Name": "Item_Name", "ID": "Record_ID"},
		}, "Record_ID", logger.Nop())

		records, discarded := normalizeRows(rows, p.headers, p.primaryKey)

		assert.Zero(t, discarded)
		require.Len(t, records, 1)
		assert.Equal(t, "1001", records[0].Value("Record_ID"))
		assert.Equal(t, "Chair", records[0].Value("Item_Name"))
	})
}

func strPtr(s string) *string { return &s }
