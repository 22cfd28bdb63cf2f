// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

const defaultListLimit = 50

func listLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}

func (s *syncService) History(ctx context.Context, limit int) ([]models.SyncLogEntry, error) {
	return s.logs.List(ctx, "", listLimit(limit))
}

func (s *syncService) Issues(ctx context.Context, limit int) ([]models.SyncIssue, error) {
	return s.issues.List(ctx, "", listLimit(limit))
}

func (s *syncService) IssueCount(ctx context.Context, report string) (int, error) {
	table := ""
	if report != "" {
		var err error
		if table, err = s.tableName(report); err != nil {
			return 0, err
		}
	}
	return s.issues.Count(ctx, table)
}

func (s *syncService) Conflicts(ctx context.Context, limit int) ([]models.SyncConflict, error) {
	return s.conflicts.List(ctx, listLimit(limit))
}

func (s *syncService) Metadata(ctx context.Context, report string) (models.SyncMetadata, error) {
	table, err := s.tableName(report)
	if err != nil {
		return models.SyncMetadata{}, err
	}
	return s.metadata.Get(ctx, table)
}

// Status combines the cursor and the issue count of one report. A report
// that has never synced has no metadata.
func (s *syncService) Status(ctx context.Context, report string) (models.SyncStatusResponse, error) {
	resp := models.SyncStatusResponse{Report: report}

	meta, err := s.Metadata(ctx, report)
	switch {
	case errors.Is(err, store.ErrMetadataNotFound):
	case err != nil:
		return resp, err
	default:
		resp.Metadata = &meta
	}

	if resp.IssueCount, err = s.IssueCount(ctx, report); err != nil {
		return resp, err
	}
	return resp, nil
}

func (s *syncService) Preview(ctx context.Context, report string, limit int) ([]models.Record, error) {
	table, err := s.tableName(report)
	if err != nil {
		return nil, err
	}
	return s.reports.ListRecords(ctx, table, listLimit(limit), 0)
}

func (s *syncService) ListReports(ctx context.Context) ([]models.ReportInfo, error) {
	return s.client.ListAllReports(ctx)
}

// TestConnection checks the configuration, the OAuth refresh and one
// authenticated call. It never returns an error; failures are reported in
// the response.
func (s *syncService) TestConnection(ctx context.Context) models.ConnectionTestResponse {
	if err := s.zohoCfg.Validate(); err != nil {
		return models.ConnectionTestResponse{Error: err.Error()}
	}
	if _, err := s.client.GetAccessToken(ctx); err != nil {
		return models.ConnectionTestResponse{Error: err.Error()}
	}
	reports, err := s.client.ListAllReports(ctx)
	if err != nil {
		return models.ConnectionTestResponse{Error: err.Error()}
	}
	return models.ConnectionTestResponse{OK: true, Reports: len(reports)}
}
