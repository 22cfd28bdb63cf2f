// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// zoho-sync service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// Zoho holds the OAuth credentials and API coordinates of the remote
	// Zoho Creator application.
	Zoho Zoho `envPrefix:"ZOHO_"`

	// Storage holds configuration for the embedded SQLite cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the dashboard.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds JWT verification settings for admin write endpoints.
	Auth Auth `envPrefix:"AUTH_"`

	// Sync holds the report list and field conventions of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Images holds stable image URL construction settings.
	Images Images `envPrefix:"IMAGES_"`

	// Poller holds change-detection poller settings.
	Poller Poller `envPrefix:"POLLER_"`

	// Workers holds background job intervals and queue limits.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogLevel is the minimum zerolog level (debug, info, warn, error).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Zoho holds remote credentials and API coordinates.
type Zoho struct {
	// ClientID of the Zoho self-client.
	// Env: ZOHO_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret of the Zoho self-client. Must be kept confidential.
	// Env: ZOHO_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// RefreshToken is the long-lived OAuth refresh token used to mint access
	// tokens. Must be kept confidential.
	// Env: ZOHO_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// AccountsURL is the OAuth server base URL.
	// Env: ZOHO_ACCOUNTS_URL
	AccountsURL string `env:"ACCOUNTS_URL" envDefault:"https://accounts.zoho.com"`

	// APIBaseURL is the Creator REST API base URL.
	// Env: ZOHO_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://creator.zoho.com/api/v2"`

	// OwnerName is the Zoho account that owns the application.
	// Env: ZOHO_OWNER_NAME
	OwnerName string `env:"OWNER_NAME"`

	// AppName is the link name of the Creator application.
	// Env: ZOHO_APP_NAME
	AppName string `env:"APP_NAME"`

	// RequestTimeout bounds a single outbound API call.
	// Env: ZOHO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// RateLimitPerMinute is the API-call budget shared by every caller.
	// Env: ZOHO_RATE_LIMIT_PER_MINUTE
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`

	// PageSize is the number of records requested per report page.
	// Env: ZOHO_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE" envDefault:"200"`

	// ReportsCacheTTL is how long the discovered report list is reused.
	// Env: ZOHO_REPORTS_CACHE_TTL
	ReportsCacheTTL time.Duration `env:"REPORTS_CACHE_TTL" envDefault:"10m"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "file:zohosync.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" envDefault:"zohosync.db"`
}

// Server holds network and timeout settings for the dashboard.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5m"`

	// SyncTriggersPerMinute limits manual sync triggers per client IP.
	// Env: SERVER_SYNC_TRIGGERS_PER_MINUTE
	SyncTriggersPerMinute int `env:"SYNC_TRIGGERS_PER_MINUTE" envDefault:"6"`
}

// Auth holds settings for verifying admin bearer tokens.
type Auth struct {
	// TokenSignKey is the HMAC key used to verify JWT tokens. When empty,
	// admin write endpoints are rejected.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"zohosync"`
}

// Sync holds the conventions of the sync engine.
type Sync struct {
	// Reports lists the report link names kept in sync.
	// Env: SYNC_REPORTS (comma separated)
	Reports []string `env:"REPORTS" envSeparator:","`

	// PrimaryKeyField is the remote record identifier field.
	// Env: SYNC_PRIMARY_KEY_FIELD
	PrimaryKeyField string `env:"PRIMARY_KEY_FIELD" envDefault:"ID"`

	// ModifiedField is the remote last-modified timestamp field.
	// Env: SYNC_MODIFIED_FIELD
	ModifiedField string `env:"MODIFIED_FIELD" envDefault:"Modified_Time"`

	// PreservedFields are local-only fields carried across a full sync.
	// Env: SYNC_PRESERVED_FIELDS (comma separated)
	PreservedFields []string `env:"PRESERVED_FIELDS" envSeparator:"," envDefault:"Model_3D_URL"`

	// SmartFields are compared by smart sync to detect real changes.
	// Env: SYNC_SMART_FIELDS (comma separated)
	SmartFields []string `env:"SMART_FIELDS" envSeparator:"," envDefault:"Item_Name,Price,Status,Quantity,Description"`

	// SmartViewReport is the recently-modified view used by smart sync.
	// When empty, the synced report itself is queried with today's criteria.
	// Env: SYNC_SMART_VIEW_REPORT
	SmartViewReport string `env:"SMART_VIEW_REPORT"`

	// IdentifyingFields are recorded in sync_issues for records without a key.
	// Env: SYNC_IDENTIFYING_FIELDS (comma separated)
	IdentifyingFields []string `env:"IDENTIFYING_FIELDS" envSeparator:"," envDefault:"Item_Name,SKU"`

	// VerifyCount enables the post full-sync count check.
	// Env: SYNC_VERIFY_COUNT
	VerifyCount bool `env:"VERIFY_COUNT" envDefault:"true"`

	// DailyCron is the cron expression of the daily sync.
	// Env: SYNC_DAILY_CRON
	DailyCron string `env:"DAILY_CRON" envDefault:"0 3 * * *"`
}

// Images holds settings for stable image URL construction.
type Images struct {
	// ExportHost is the host serving stable image downloads.
	// Env: IMAGES_EXPORT_HOST
	ExportHost string `env:"EXPORT_HOST" envDefault:"creatorexport.zoho.com"`

	// FieldSecrets maps an image field name to its fixed download secret.
	// Env: IMAGES_FIELD_SECRETS (e.g. "Image:abc,Photo_2:def")
	FieldSecrets map[string]string `env:"FIELD_SECRETS"`
}

// Poller holds change-detection poller settings.
type Poller struct {
	// Enabled starts the poll loop.
	// Env: POLLER_ENABLED
	Enabled bool `env:"ENABLED"`

	// Strategy is "api" or "scrape".
	// Env: POLLER_STRATEGY
	Strategy string `env:"STRATEGY" envDefault:"api"`

	// Report is the report the poller watches.
	// Env: POLLER_REPORT
	Report string `env:"REPORT"`

	// PermalinkURL is the published report page read by the scrape strategy.
	// Env: POLLER_PERMALINK_URL
	PermalinkURL string `env:"PERMALINK_URL"`

	// Interval between polls.
	// Env: POLLER_INTERVAL
	Interval time.Duration `env:"INTERVAL" envDefault:"2m"`

	// RemoteURL is an optional DevTools websocket of an external browser.
	// Env: POLLER_REMOTE_URL
	RemoteURL string `env:"REMOTE_URL"`

	// NoSandbox disables the Chrome sandbox (required in most containers).
	// Env: POLLER_NO_SANDBOX
	NoSandbox bool `env:"NO_SANDBOX"`

	// PageTimeout bounds one page load and extraction.
	// Env: POLLER_PAGE_TIMEOUT
	PageTimeout time.Duration `env:"PAGE_TIMEOUT" envDefault:"30s"`

	// HeaderMap maps visible column headers to field names.
	// Env: POLLER_HEADER_MAP (e.g. "Item Name:Item_Name,Price:Price")
	HeaderMap map[string]string `env:"HEADER_MAP"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the period of the incremental sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL" envDefault:"15m"`

	// QueueInterval is the period of the write-behind queue drain.
	// Env: WORKERS_QUEUE_INTERVAL
	QueueInterval time.Duration `env:"QUEUE_INTERVAL" envDefault:"30s"`

	// QueueBatchSize is the maximum number of records pushed per drain pass.
	// Env: WORKERS_QUEUE_BATCH_SIZE
	QueueBatchSize int `env:"QUEUE_BATCH_SIZE" envDefault:"10"`

	// QueueMaxRetries is the retry ceiling of a queued update.
	// Env: WORKERS_QUEUE_MAX_RETRIES
	QueueMaxRetries int `env:"QUEUE_MAX_RETRIES" envDefault:"5"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
