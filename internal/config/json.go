// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	Zoho struct {
		ClientID           string   `json:"client_id"`
		ClientSecret       string   `json:"client_secret"`
		RefreshToken       string   `json:"refresh_token"`
		AccountsURL        string   `json:"accounts_url"`
		APIBaseURL         string   `json:"api_base_url"`
		OwnerName          string   `json:"owner_name"`
		AppName            string   `json:"app_name"`
		RequestTimeout     Duration `json:"request_timeout"`
		RateLimitPerMinute int      `json:"rate_limit_per_minute"`
		PageSize           int      `json:"page_size"`
		ReportsCacheTTL    Duration `json:"reports_cache_ttl"`
	} `json:"zoho,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress           string   `json:"http_address"`
		RequestTimeout        Duration `json:"request_timeout"`
		SyncTriggersPerMinute int      `json:"sync_triggers_per_minute"`
	} `json:"server,omitempty"`

	Auth struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"auth,omitempty"`

	Sync struct {
		Reports           []string `json:"reports"`
		PrimaryKeyField   string   `json:"primary_key_field"`
		ModifiedField     string   `json:"modified_field"`
		PreservedFields   []string `json:"preserved_fields"`
		SmartFields       []string `json:"smart_fields"`
		SmartViewReport   string   `json:"smart_view_report"`
		IdentifyingFields []string `json:"identifying_fields"`
		VerifyCount       bool     `json:"verify_count"`
		DailyCron         string   `json:"daily_cron"`
	} `json:"sync,omitempty"`

	Images struct {
		ExportHost   string            `json:"export_host"`
		FieldSecrets map[string]string `json:"field_secrets"`
	} `json:"images,omitempty"`

	Poller struct {
		Enabled      bool              `json:"enabled"`
		Strategy     string            `json:"strategy"`
		Report       string            `json:"report"`
		PermalinkURL string            `json:"permalink_url"`
		Interval     Duration          `json:"interval"`
		RemoteURL    string            `json:"remote_url"`
		NoSandbox    bool              `json:"no_sandbox"`
		PageTimeout  Duration          `json:"page_timeout"`
		HeaderMap    map[string]string `json:"header_map"`
	} `json:"poller,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		QueueInterval   Duration `json:"queue_interval"`
		QueueBatchSize  int      `json:"queue_batch_size"`
		QueueMaxRetries int      `json:"queue_max_retries"`
	} `json:"workers,omitempty"`

	LogLevel string `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Zoho: Zoho{
			ClientID:           j.Zoho.ClientID,
			ClientSecret:       j.Zoho.ClientSecret,
			RefreshToken:       j.Zoho.RefreshToken,
			AccountsURL:        j.Zoho.AccountsURL,
			APIBaseURL:         j.Zoho.APIBaseURL,
			OwnerName:          j.Zoho.OwnerName,
			AppName:            j.Zoho.AppName,
			RequestTimeout:     time.Duration(j.Zoho.RequestTimeout),
			RateLimitPerMinute: j.Zoho.RateLimitPerMinute,
			PageSize:           j.Zoho.PageSize,
			ReportsCacheTTL:    time.Duration(j.Zoho.ReportsCacheTTL),
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:           j.Server.HTTPAddress,
			RequestTimeout:        time.Duration(j.Server.RequestTimeout),
			SyncTriggersPerMinute: j.Server.SyncTriggersPerMinute,
		},
		Auth: Auth{
			TokenSignKey: j.Auth.TokenSignKey,
			TokenIssuer:  j.Auth.TokenIssuer,
		},
		Sync: Sync{
			Reports:           j.Sync.Reports,
			PrimaryKeyField:   j.Sync.PrimaryKeyField,
			ModifiedField:     j.Sync.ModifiedField,
			PreservedFields:   j.Sync.PreservedFields,
			SmartFields:       j.Sync.SmartFields,
			SmartViewReport:   j.Sync.SmartViewReport,
			IdentifyingFields: j.Sync.IdentifyingFields,
			VerifyCount:       j.Sync.VerifyCount,
			DailyCron:         j.Sync.DailyCron,
		},
		Images: Images{
			ExportHost:   j.Images.ExportHost,
			FieldSecrets: j.Images.FieldSecrets,
		},
		Poller: Poller{
			Enabled:      j.Poller.Enabled,
			Strategy:     j.Poller.Strategy,
			Report:       j.Poller.Report,
			PermalinkURL: j.Poller.PermalinkURL,
			Interval:     time.Duration(j.Poller.Interval),
			RemoteURL:    j.Poller.RemoteURL,
			NoSandbox:    j.Poller.NoSandbox,
			PageTimeout:  time.Duration(j.Poller.PageTimeout),
			HeaderMap:    j.Poller.HeaderMap,
		},
		Workers: Workers{
			SyncInterval:    time.Duration(j.Workers.SyncInterval),
			QueueInterval:   time.Duration(j.Workers.QueueInterval),
			QueueBatchSize:  j.Workers.QueueBatchSize,
			QueueMaxRetries: j.Workers.QueueMaxRetries,
		},
		LogLevel: j.LogLevel,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
