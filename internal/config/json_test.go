// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeJSONFile(t, `{
		"zoho": {
			"client_id": "cid",
			"client_secret": "secret",
			"refresh_token": "refresh",
			"owner_name": "stagehaus",
			"app_name": "inventory",
			"request_timeout": "15s",
			"page_size": 50
		},
		"storage": { "db": { "dsn": "/data/cache.db" } },
		"server": { "http_address": "localhost:8080", "request_timeout": "30s" },
		"auth": { "token_sign_key": "jwt_secret", "token_issuer": "admin" },
		"sync": {
			"reports": ["All_Items"],
			"preserved_fields": ["Model_3D_URL", "Notes"],
			"smart_view_report": "Recently_Modified",
			"daily_cron": "30 2 * * *"
		},
		"images": { "field_secrets": { "Image": "abc" } },
		"poller": {
			"enabled": true,
			"strategy": "scrape",
			"report": "All_Items",
			"permalink_url": "https://creatorapp.zohopublic.com/p/items",
			"interval": "90s",
			"header_map": { "Item Name": "Item_Name" }
		},
		"workers": { "sync_interval": "10m", "queue_batch_size": 25 },
		"log_level": "warn"
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cid", cfg.Zoho.ClientID)
	assert.Equal(t, "secret", cfg.Zoho.ClientSecret)
	assert.Equal(t, 15*time.Second, cfg.Zoho.RequestTimeout)
	assert.Equal(t, 50, cfg.Zoho.PageSize)
	assert.Equal(t, "/data/cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "admin", cfg.Auth.TokenIssuer)
	assert.Equal(t, []string{"All_Items"}, cfg.Sync.Reports)
	assert.Equal(t, []string{"Model_3D_URL", "Notes"}, cfg.Sync.PreservedFields)
	assert.Equal(t, "Recently_Modified", cfg.Sync.SmartViewReport)
	assert.Equal(t, "30 2 * * *", cfg.Sync.DailyCron)
	assert.Equal(t, "abc", cfg.Images.FieldSecrets["Image"])
	assert.True(t, cfg.Poller.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Poller.Interval)
	assert.Equal(t, "Item_Name", cfg.Poller.HeaderMap["Item Name"])
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 25, cfg.Workers.QueueBatchSize)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{ this is not json }`))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"workers": {"sync_interval": "forever"}}`))

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{}`))

	require.NoError(t, err)
	assert.Empty(t, cfg.Zoho.ClientID)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"x"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := Duration(2 * time.Minute).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(out))
}
