// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the Zoho Creator REST API.
//
// The primary abstraction is [ZohoClient], which decouples the sync engine
// from the remote protocol. The package ships a resty implementation
// ([NewZohoClient]) that caches the OAuth access token, spends calls from a
// shared per-minute budget, and fails fast through a circuit breaker while
// the remote side is unhealthy.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from Zoho result codes by mapZohoCode so that callers can
// use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrRemoteUnavailable]
// while the breaker is open). The client never retries.
package adapter

import (
	"context"
	"time"

	"github.com/stagehaus/zoho-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/zoho_client_mock.go -package=mock

// ZohoClient defines every remote operation the sync subsystem performs.
type ZohoClient interface {
	// GetAccessToken returns a cached bearer token, refreshing it through the
	// OAuth refresh-token grant when it is absent or about to expire.
	GetAccessToken(ctx context.Context) (string, error)

	// GetReportData reads one page (1-based) of report records matching
	// criteria. An empty criteria string reads everything.
	GetReportData(ctx context.Context, report, criteria string, page, pageSize int) (models.ReportPage, error)

	// GetAllReportData drives GetReportData until the report is exhausted.
	GetAllReportData(ctx context.Context, report, criteria string) ([]models.RawRecord, error)

	// GetTodayModifiedRecords returns records modified since local midnight.
	GetTodayModifiedRecords(ctx context.Context, report string) ([]models.RawRecord, error)

	// GetModifiedRecordsSince returns records modified at or after since.
	GetModifiedRecordsSince(ctx context.Context, report string, since time.Time) ([]models.RawRecord, error)

	// GetReportTotalCount counts report records by paginating to the end.
	// It costs one call per page and is meant for full-sync verification.
	GetReportTotalCount(ctx context.Context, report string) (int, error)

	// ListAllReports discovers the reports of the application. On failure a
	// fallback list is returned instead of an error.
	ListAllReports(ctx context.Context) ([]models.ReportInfo, error)

	// UpdateRecord applies a partial update of fields to a single record.
	UpdateRecord(ctx context.Context, report, recordID string, fields models.Record) error

	// GetRecord fetches a single record by id.
	GetRecord(ctx context.Context, report, recordID string) (models.RawRecord, error)
}
