// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/imageurl"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

// toRecords converts API records and keys them by column name.
func (s *syncService) toRecords(raw []models.RawRecord) []models.Record {
	records := make([]models.Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, normalizeRecord(r.ToRecord()))
	}
	return records
}

// normalizeRecord renames fields to their column names and drops fields that
// cannot be stored or that collide with system columns.
func normalizeRecord(rec models.Record) models.Record {
	out := make(models.Record, len(rec))
	for _, field := range rec.Fields() {
		col, err := store.SanitizeIdentifier(field)
		if err != nil || models.IsSystemColumn(col) {
			continue
		}
		out[col] = rec[field]
	}
	return out
}

func (s *syncService) normalize(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, normalizeRecord(rec))
	}
	return out
}

func (s *syncService) rewriteImages(ctx context.Context, report string, records []models.Record,
	priors map[string]models.Record, authoritative bool, result *models.SyncResult) imageurl.RewriteStats {
	stats := s.rewriter.Rewrite(ctx, report, records, priors, authoritative)
	result.ImagesConverted += stats.Converted
	result.ImagesSkipped += stats.Skipped
	result.ImagesPreserved += stats.Preserved
	return stats
}

// localRows loads the stored rows matching the ids of records. A missing
// table yields no rows.
func (s *syncService) localRows(ctx context.Context, table string, records []models.Record) (map[string]models.Record, error) {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if id := rec.Value(s.primaryKey); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return map[string]models.Record{}, nil
	}

	rows, err := s.reports.GetRecords(ctx, table, ids)
	if errors.Is(err, store.ErrTableNotFound) {
		return map[string]models.Record{}, nil
	}
	return rows, err
}

// sameMarker reports whether rec carries the modification marker already
// stored on local.
func (s *syncService) sameMarker(rec, local models.Record) bool {
	if local == nil {
		return false
	}
	marker, ok := rec.Get(s.modifiedField)
	if !ok || marker == "" {
		return false
	}
	stored, ok := local.Get(models.ColumnLastModified)
	return ok && stored == marker
}

// differs reports whether any of fields has a different value in rec than in
// local. Fields absent from rec are not compared.
func (s *syncService) differs(rec, local models.Record, fields []string) bool {
	for _, field := range fields {
		incoming, present := rec[field]
		if !present {
			continue
		}
		if !equalValue(incoming, local[field]) {
			return true
		}
	}
	return false
}

func equalValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func schemaOf(records []models.Record) []string {
	schema := models.NewSchema()
	for _, rec := range records {
		schema.Add(rec.Fields()...)
	}
	fields := make([]string, 0, len(schema))
	for f := range schema {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// write stores records in table and records skipped records and conflicts
// once the upsert has committed.
func (s *syncService) write(ctx context.Context, report, table string, records []models.Record, result *models.SyncResult) error {
	if err := s.reports.EnsureTable(ctx, table, schemaOf(records)); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	pendingPush, conflicts, err := s.detectConflicts(ctx, report, records)
	if err != nil {
		return err
	}
	s.stampSystemColumns(records, pendingPush)

	synced, skipped, err := s.reports.UpsertRecords(ctx, table, records)
	if err != nil {
		return err
	}
	result.RecordsSynced += synced
	result.RecordsSkipped += len(skipped)
	result.Conflicts += len(conflicts)

	s.recordIssues(ctx, table, skipped)
	s.recordConflicts(ctx, conflicts)
	return nil
}

// detectConflicts finds inbound values that overwrite fields with queued
// local edits. The inbound value wins; the overwrite is only recorded.
func (s *syncService) detectConflicts(ctx context.Context, report string, records []models.Record) (map[string]bool, []models.SyncConflict, error) {
	open, err := s.pending.OpenFieldValues(ctx, report, nil, s.queueMaxRetries)
	if err != nil {
		return nil, nil, err
	}
	if len(open) == 0 {
		return nil, nil, nil
	}

	pendingPush := make(map[string]bool)
	var conflicts []models.SyncConflict
	for _, rec := range records {
		id := rec.Value(s.primaryKey)
		queued, ok := open[id]
		if id == "" || !ok {
			continue
		}
		pendingPush[id] = true

		for _, field := range queued.Fields() {
			col, err := store.SanitizeIdentifier(field)
			if err != nil {
				continue
			}
			remote, present := rec[col]
			if !present || equalValue(queued[field], remote) {
				continue
			}
			conflicts = append(conflicts, models.SyncConflict{
				RecordID:    id,
				ReportName:  report,
				FieldName:   field,
				LocalValue:  queued[field],
				RemoteValue: remote,
				Resolution:  models.ConflictResolutionRemoteOverwrite,
			})
		}
	}
	return pendingPush, conflicts, nil
}

func (s *syncService) stampSystemColumns(records []models.Record, pendingPush map[string]bool) {
	for _, rec := range records {
		if marker, ok := rec.Get(s.modifiedField); ok {
			rec.Set(models.ColumnLastModified, marker)
		}
		status := models.RowStatusSynced
		if pendingPush[rec.Value(s.primaryKey)] {
			status = models.RowStatusPendingPush
		}
		rec.Set(models.ColumnSyncStatus, status)
	}
}

func (s *syncService) recordIssues(ctx context.Context, table string, skipped []models.SkippedRecord) {
	if len(skipped) == 0 {
		return
	}

	issues := make([]models.SyncIssue, 0, len(skipped))
	for _, sk := range skipped {
		issues = append(issues, models.SyncIssue{
			TableName:  table,
			Identifier: s.identify(sk.Record, sk.Index),
			Reason:     sk.Reason,
		})
	}

	if err := s.issues.Insert(context.WithoutCancel(ctx), issues...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.recordIssues").
			Int("count", len(issues)).
			Msg("failed to record sync issues")
		return
	}
	logger.FromContext(ctx).Warn().
		Str("func", "syncService.recordIssues").
		Int("count", len(issues)).
		Msg("records without primary key were skipped")
}

func (s *syncService) identify(rec models.Record, index int) string {
	parts := make([]string, 0, len(s.identifyingFields))
	for _, field := range s.identifyingFields {
		if v, ok := rec.Get(field); ok && v != "" {
			parts = append(parts, field+"="+v)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("record #%d", index+1)
	}
	return strings.Join(parts, ", ")
}

func (s *syncService) recordConflicts(ctx context.Context, conflicts []models.SyncConflict) {
	if len(conflicts) == 0 {
		return
	}
	log := logger.FromContext(ctx)
	if err := s.conflicts.Insert(context.WithoutCancel(ctx), conflicts...); err != nil {
		log.Err(err).
			Str("func", "syncService.recordConflicts").
			Int("count", len(conflicts)).
			Msg("failed to record sync conflicts")
		return
	}
	log.Warn().
		Str("func", "syncService.recordConflicts").
		Int("count", len(conflicts)).
		Msg("inbound values overwrote fields with queued local edits")
}

// restorePreserved writes local-only fields of the snapshot back onto the
// rows that survived a full sync.
func (s *syncService) restorePreserved(ctx context.Context, table string, records []models.Record, snapshot map[string]models.Record) error {
	if len(s.preservedFields) == 0 || len(snapshot) == 0 {
		return nil
	}

	values := make(map[string]models.Record)
	for _, rec := range records {
		id := rec.Value(s.primaryKey)
		prior, ok := snapshot[id]
		if id == "" || !ok {
			continue
		}
		kept := models.Record{}
		for _, field := range s.preservedFields {
			if v, ok := prior.Get(field); ok && v != "" {
				kept.Set(field, v)
			}
		}
		if len(kept) > 0 {
			values[id] = kept
		}
	}
	if len(values) == 0 {
		return nil
	}

	restored, err := s.reports.RestoreFields(ctx, table, values)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug().
		Str("func", "syncService.restorePreserved").
		Int("rows", restored).
		Msg("preserved local fields restored")
	return nil
}

// restoreSnapshot puts the pre-sync rows back after a failed write on a
// cleared table.
func (s *syncService) restoreSnapshot(ctx context.Context, table string, snapshot map[string]models.Record) {
	if len(snapshot) == 0 {
		return
	}
	rows := make([]models.Record, 0, len(snapshot))
	for _, rec := range snapshot {
		rows = append(rows, rec)
	}

	log := logger.FromContext(ctx)
	if _, _, err := s.reports.UpsertRecords(context.WithoutCancel(ctx), table, rows); err != nil {
		log.Err(err).
			Str("func", "syncService.restoreSnapshot").
			Int("rows", len(rows)).
			Msg("failed to restore table after failed full sync")
		return
	}
	log.Warn().
		Str("func", "syncService.restoreSnapshot").
		Int("rows", len(rows)).
		Msg("table restored from snapshot after failed full sync")
}

func (s *syncService) prunedIDs(snapshot map[string]models.Record, records []models.Record) []string {
	if len(snapshot) == 0 {
		return nil
	}
	fetched := make(map[string]struct{}, len(records))
	for _, rec := range records {
		fetched[rec.Value(s.primaryKey)] = struct{}{}
	}
	var pruned []string
	for id := range snapshot {
		if _, ok := fetched[id]; !ok {
			pruned = append(pruned, id)
		}
	}
	sort.Strings(pruned)
	return pruned
}

// maxMarker returns the latest modification marker among records, or an
// empty string when none parses.
func (s *syncService) maxMarker(records []models.Record) (string, time.Time) {
	var (
		marker string
		latest time.Time
	)
	for _, rec := range records {
		value, ok := rec.Get(s.modifiedField)
		if !ok {
			continue
		}
		t, err := adapter.ParseModifiedTime(value, s.location)
		if err != nil {
			continue
		}
		if marker == "" || t.After(latest) {
			marker, latest = value, t
		}
	}
	return marker, latest
}

// updateMetadata stores the new cursor of table. A full sync replaces the
// marker; other modes only move it forward.
func (s *syncService) updateMetadata(ctx context.Context, table string, records []models.Record, full bool) error {
	marker, latest := s.maxMarker(records)

	if !full {
		prev, err := s.metadata.Get(ctx, table)
		switch {
		case errors.Is(err, store.ErrMetadataNotFound):
		case err != nil:
			return err
		default:
			prevTime, perr := adapter.ParseModifiedTime(prev.LastModified, s.location)
			if perr == nil && (marker == "" || !latest.After(prevTime)) {
				marker = prev.LastModified
			}
		}
	}

	count, err := s.reports.CountRecords(ctx, table)
	if err != nil {
		return err
	}

	return s.metadata.Upsert(ctx, models.SyncMetadata{
		TableName:    table,
		LastModified: marker,
		RecordCount:  count,
		UpdatedAt:    s.now().UTC(),
	})
}

func (s *syncService) verifyTotal(ctx context.Context, report string, fetched int) {
	log := logger.FromContext(ctx)

	total, err := s.client.GetReportTotalCount(ctx, report)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "syncService.verifyTotal").
			Msg("could not verify remote record count")
		return
	}
	if total != fetched {
		log.Warn().
			Str("func", "syncService.verifyTotal").
			Int("remote", total).
			Int("fetched", fetched).
			Msg("remote record count differs from fetched records")
	}
}

func head(ids []string, n int) []string {
	if len(ids) <= n {
		return ids
	}
	return ids[:n]
}
